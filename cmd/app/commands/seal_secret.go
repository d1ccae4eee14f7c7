package commands

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/allisson/user-secrets/internal/envelope"
)

// RunSealSecret seals a plaintext value into an envelope with a freshly
// generated key. The key and the verification hash are printed alongside the
// envelope; the key never leaves the client and must be stored by the caller.
// When value is empty the plaintext is read from the reader until EOF.
func RunSealSecret(cmdIO IOTuple, value, algorithm, format string) error {
	alg, err := envelope.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	plaintext := []byte(value)
	if value == "" {
		plaintext, err = io.ReadAll(cmdIO.Reader)
		if err != nil {
			return fmt.Errorf("failed to read plaintext: %w", err)
		}
	}
	if len(plaintext) == 0 {
		return fmt.Errorf("plaintext cannot be empty")
	}

	key, env, err := envelope.Seal(plaintext, alg)
	if err != nil {
		return fmt.Errorf("failed to seal secret: %w", err)
	}

	keyB64 := base64.StdEncoding.EncodeToString(key)
	hashedHex := envelope.VerificationHash(key)

	if format == "json" {
		writeJSON(cmdIO.Writer, map[string]string{
			"key":             keyB64,
			"encrypted_value": env.EncryptedValue,
			"iv":              env.IV,
			"tag":             env.Tag,
			"hashed_hex":      hashedHex,
			"algorithm":       string(env.Algorithm),
		})
	} else {
		_, _ = fmt.Fprintln(cmdIO.Writer, "\nSecret sealed successfully!")
		_, _ = fmt.Fprintf(cmdIO.Writer, "Key: %s\n", keyB64)
		_, _ = fmt.Fprintf(cmdIO.Writer, "Encrypted value: %s\n", env.EncryptedValue)
		_, _ = fmt.Fprintf(cmdIO.Writer, "IV: %s\n", env.IV)
		_, _ = fmt.Fprintf(cmdIO.Writer, "Tag: %s\n", env.Tag)
		_, _ = fmt.Fprintf(cmdIO.Writer, "Hashed hex: %s\n", hashedHex)
		_, _ = fmt.Fprintln(cmdIO.Writer, "\nIMPORTANT: The key is shown only once and is never sent to the server. Store it securely.")
	}

	return nil
}
