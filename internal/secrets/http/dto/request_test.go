package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	secretsDomain "github.com/allisson/user-secrets/internal/secrets/domain"
)

func validRequest() CreateUserSecretRequest {
	return CreateUserSecretRequest{
		Name:           "github",
		Kind:           "credentials",
		EncryptedValue: "c2VhbGVkLXZhbHVl",
		IV:             "MTIzNDU2Nzg5MDEy",
		Tag:            "YXV0aC10YWctMTZieXQ=",
		HashedHex:      "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
	}
}

func TestCreateUserSecretRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_NameIsOptional", func(t *testing.T) {
		req := validRequest()
		req.Name = ""
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_NameTooLong", func(t *testing.T) {
		req := validRequest()
		req.Name = strings.Repeat("a", secretsDomain.MaxNameLength+1)
		assert.Error(t, req.Validate())
	})

	t.Run("Error_EncryptedValueNotBase64", func(t *testing.T) {
		req := validRequest()
		req.EncryptedValue = "%%%"
		assert.Error(t, req.Validate())
	})

	t.Run("Success_OversizedValuePassesThrough", func(t *testing.T) {
		// The size cap belongs to the lifecycle service, which enforces it
		// after authorization; the transport only checks the encoding.
		req := validRequest()
		req.EncryptedValue = strings.Repeat("AAAA", secretsDomain.MaxEncryptedValueLength/4+1)
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_MissingIV", func(t *testing.T) {
		req := validRequest()
		req.IV = ""
		assert.Error(t, req.Validate())
	})

	t.Run("Error_MissingTag", func(t *testing.T) {
		req := validRequest()
		req.Tag = ""
		assert.Error(t, req.Validate())
	})

	t.Run("Error_HashNotHex", func(t *testing.T) {
		req := validRequest()
		req.HashedHex = strings.Repeat("z", 64)
		assert.Error(t, req.Validate())
	})

	t.Run("Error_HashWrongLength", func(t *testing.T) {
		req := validRequest()
		req.HashedHex = "abcdef"
		assert.Error(t, req.Validate())
	})
}

func TestRevealUserSecretRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := RevealUserSecretRequest{
			HashedHex: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_MissingHash", func(t *testing.T) {
		req := RevealUserSecretRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_HashWrongLength", func(t *testing.T) {
		req := RevealUserSecretRequest{HashedHex: "abcd"}
		assert.Error(t, req.Validate())
	})
}
