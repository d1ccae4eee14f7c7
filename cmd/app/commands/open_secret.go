package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/allisson/user-secrets/internal/envelope"
)

// RunOpenSecret decrypts an envelope with the caller-held key and writes the
// plaintext to the writer. Any tampering or wrong key fails closed without
// output.
func RunOpenSecret(cmdIO IOTuple, keyB64, encryptedValue, iv, tag, algorithm string) error {
	alg, err := envelope.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return fmt.Errorf("invalid key encoding: %w", err)
	}

	plaintext, err := envelope.Open(key, envelope.Envelope{
		EncryptedValue: encryptedValue,
		IV:             iv,
		Tag:            tag,
		Algorithm:      alg,
	})
	if err != nil {
		return fmt.Errorf("failed to open secret: %w", err)
	}

	_, _ = cmdIO.Writer.Write(plaintext)
	return nil
}
