// Package envelope implements the client-side secret envelope codec.
//
// A secret is sealed on the producing client: a fresh random symmetric key
// encrypts the plaintext with an AEAD cipher, producing the envelope triple
// (encrypted value, IV, authentication tag) plus a one-way verification hash
// of the key. Only the envelope and the hash are ever sent to the server; the
// key stays with the caller. The server can later verify key possession by
// comparing hashes, but its stored state alone is cryptographically useless
// for recovering the plaintext.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Algorithm identifies the AEAD scheme used to seal an envelope.
type Algorithm string

// Supported AEAD algorithms.
const (
	// AESGCM is AES-256-GCM, the default scheme.
	AESGCM Algorithm = "aes-gcm"
	// ChaCha20Poly1305 suits platforms without AES hardware acceleration.
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the symmetric key size in bytes (256 bits).
	KeySize = 32
	// tagSize is the AEAD authentication tag size in bytes (128 bits) for both
	// supported schemes.
	tagSize = 16
)

// Codec errors.
var (
	// ErrAuthenticationFailed indicates the authentication tag did not verify
	// during Open: the envelope was tampered with or the key is wrong. No
	// partial plaintext is ever returned alongside it.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrUnknownAlgorithm indicates an algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown envelope algorithm")

	// ErrInvalidKey indicates a key of the wrong size.
	ErrInvalidKey = errors.New("invalid envelope key")
)

// Envelope is the sealed form of a secret as persisted by the server.
// EncryptedValue, IV and Tag are base64 std-encoded.
type Envelope struct {
	EncryptedValue string
	IV             string
	Tag            string
	Algorithm      Algorithm
}

// Seal generates a fresh random 32-byte key and a fresh nonce, encrypts the
// plaintext with the selected AEAD scheme and returns the key together with
// the envelope. The key is returned to the caller only; it must never be
// transmitted to storage.
func Seal(plaintext []byte, alg Algorithm) ([]byte, Envelope, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, Envelope{}, fmt.Errorf("failed to generate key: %w", err)
	}

	env, err := SealWithKey(key, plaintext, alg)
	if err != nil {
		return nil, Envelope{}, err
	}
	return key, env, nil
}

// SealWithKey encrypts plaintext under a caller-supplied key. Used by Seal and
// by clients re-sealing an updated value under an existing key.
func SealWithKey(key, plaintext []byte, alg Algorithm) (Envelope, error) {
	aead, err := newAEAD(key, alg)
	if err != nil {
		return Envelope{}, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return Envelope{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	// The Go AEAD implementations append the tag to the ciphertext; the wire
	// contract carries them as separate fields.
	split := len(sealed) - tagSize
	encode := base64.StdEncoding.EncodeToString

	return Envelope{
		EncryptedValue: encode(sealed[:split]),
		IV:             encode(nonce),
		Tag:            encode(sealed[split:]),
		Algorithm:      alg,
	}, nil
}

// Open decrypts an envelope with the supplied key. It fails closed: any tag
// mismatch, malformed field or wrong key yields ErrAuthenticationFailed and no
// plaintext.
func Open(key []byte, env Envelope) ([]byte, error) {
	aead, err := newAEAD(key, env.Algorithm)
	if err != nil {
		return nil, err
	}

	decode := base64.StdEncoding.DecodeString
	ciphertext, err := decode(env.EncryptedValue)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	nonce, err := decode(env.IV)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	tag, err := decode(env.Tag)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	if len(nonce) != aead.NonceSize() || len(tag) != tagSize {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// VerificationHash computes the hex-encoded SHA-256 hash of the key. It is
// preimage-resistant and used purely for possession proofs; the key cannot be
// derived from it.
func VerificationHash(key []byte) string {
	sum := sha256.Sum256(key)
	return hex.EncodeToString(sum[:])
}

// newAEAD builds the AEAD primitive for the given key and algorithm.
func newAEAD(key []byte, alg Algorithm) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes", ErrInvalidKey, KeySize)
	}

	switch alg {
	case AESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", err)
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return aead, nil
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// ParseAlgorithm validates a string against the closed algorithm set. An empty
// string selects the default AESGCM.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "":
		return AESGCM, nil
	case AESGCM:
		return AESGCM, nil
	case ChaCha20Poly1305:
		return ChaCha20Poly1305, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}
