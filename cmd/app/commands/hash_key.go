package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/allisson/user-secrets/internal/envelope"
)

// RunHashKey prints the hex-encoded verification hash for a key. The hash is
// what the reveal operation compares against; it cannot be reversed into the
// key.
func RunHashKey(cmdIO IOTuple, keyB64 string) error {
	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return fmt.Errorf("invalid key encoding: %w", err)
	}

	_, _ = fmt.Fprintln(cmdIO.Writer, envelope.VerificationHash(key))
	return nil
}
