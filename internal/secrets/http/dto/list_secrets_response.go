// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	secretsUseCase "github.com/allisson/user-secrets/internal/secrets/usecase"
)

// ListUserSecretsResponse represents a paginated list of user secrets.
// TotalCount is the historical count including tombstoned rows, so it can
// exceed the number of rows pagination will ever return.
type ListUserSecretsResponse struct {
	Data       []UserSecretResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
}

// MapSecretsToListResponse converts one result page to a list response.
func MapSecretsToListResponse(page *secretsUseCase.SecretPage) ListUserSecretsResponse {
	data := make([]UserSecretResponse, 0, len(page.Secrets))
	for _, secret := range page.Secrets {
		data = append(data, MapSecretToResponse(secret))
	}

	return ListUserSecretsResponse{
		Data:       data,
		TotalCount: page.TotalCount,
	}
}
