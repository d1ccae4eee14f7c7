package envelope

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	algorithms := []Algorithm{AESGCM, ChaCha20Poly1305}

	for _, alg := range algorithms {
		t.Run(string(alg), func(t *testing.T) {
			plaintexts := [][]byte{
				[]byte(""),
				[]byte("a"),
				[]byte("username=admin password=hunter2"),
				[]byte(strings.Repeat("x", 10000)),
			}

			for _, plaintext := range plaintexts {
				key, env, err := Seal(plaintext, alg)
				require.NoError(t, err)
				require.Len(t, key, KeySize)
				assert.Equal(t, alg, env.Algorithm)

				opened, err := Open(key, env)
				require.NoError(t, err)
				assert.Equal(t, plaintext, opened)
			}
		})
	}
}

func TestSealGeneratesFreshKeyAndNonce(t *testing.T) {
	plaintext := []byte("same plaintext")

	key1, env1, err := Seal(plaintext, AESGCM)
	require.NoError(t, err)
	key2, env2, err := Seal(plaintext, AESGCM)
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, env1.IV, env2.IV)
	assert.NotEqual(t, env1.EncryptedValue, env2.EncryptedValue)
}

func TestOpenFailsClosed(t *testing.T) {
	key, env, err := Seal([]byte("tamper target"), AESGCM)
	require.NoError(t, err)

	flipFirstByte := func(encoded string) string {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		raw[0] ^= 0x01
		return base64.StdEncoding.EncodeToString(raw)
	}

	t.Run("TamperedCiphertext", func(t *testing.T) {
		tampered := env
		tampered.EncryptedValue = flipFirstByte(env.EncryptedValue)
		plaintext, err := Open(key, tampered)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
		assert.Nil(t, plaintext)
	})

	t.Run("TamperedIV", func(t *testing.T) {
		tampered := env
		tampered.IV = flipFirstByte(env.IV)
		plaintext, err := Open(key, tampered)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
		assert.Nil(t, plaintext)
	})

	t.Run("TamperedTag", func(t *testing.T) {
		tampered := env
		tampered.Tag = flipFirstByte(env.Tag)
		plaintext, err := Open(key, tampered)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
		assert.Nil(t, plaintext)
	})

	t.Run("WrongKey", func(t *testing.T) {
		wrongKey := make([]byte, KeySize)
		copy(wrongKey, key)
		wrongKey[0] ^= 0x01
		plaintext, err := Open(wrongKey, env)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
		assert.Nil(t, plaintext)
	})

	t.Run("MalformedBase64", func(t *testing.T) {
		tampered := env
		tampered.EncryptedValue = "not-base64!!!"
		_, err := Open(key, tampered)
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestOpenRejectsInvalidKeySize(t *testing.T) {
	_, env, err := Seal([]byte("data"), AESGCM)
	require.NoError(t, err)

	_, err = Open(make([]byte, 16), env)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestVerificationHash(t *testing.T) {
	key, _, err := Seal([]byte("data"), AESGCM)
	require.NoError(t, err)

	hash := VerificationHash(key)

	// Fixed-size hex output, deterministic, and distinct from the key.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, VerificationHash(key))
	assert.NotContains(t, hash, string(key))

	otherKey := make([]byte, KeySize)
	copy(otherKey, key)
	otherKey[KeySize-1] ^= 0xff
	assert.NotEqual(t, hash, VerificationHash(otherKey))
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"", AESGCM, false},
		{"aes-gcm", AESGCM, false},
		{"chacha20-poly1305", ChaCha20Poly1305, false},
		{"des-ede3", "", true},
	}

	for _, tt := range tests {
		alg, err := ParseAlgorithm(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownAlgorithm)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, alg)
	}
}

func TestSealRejectsUnknownAlgorithm(t *testing.T) {
	_, _, err := Seal([]byte("data"), Algorithm("rot13"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
