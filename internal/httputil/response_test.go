package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/user-secrets/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "not found",
			err:           apperrors.Wrap(apperrors.ErrNotFound, "user secret"),
			expectedCode:  http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "conflict",
			err:           apperrors.ErrConflict,
			expectedCode:  http.StatusConflict,
			expectedError: "conflict",
		},
		{
			name:          "payload too large",
			err:           apperrors.Wrap(apperrors.ErrPayloadTooLarge, "encrypted value"),
			expectedCode:  http.StatusRequestEntityTooLarge,
			expectedError: "payload_too_large",
		},
		{
			name:          "invalid input",
			err:           apperrors.Wrap(apperrors.ErrInvalidInput, "missing org scope"),
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
		},
		{
			name:          "unauthorized",
			err:           apperrors.ErrUnauthorized,
			expectedCode:  http.StatusUnauthorized,
			expectedError: "unauthorized",
		},
		{
			name:          "forbidden",
			err:           apperrors.ErrForbidden,
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
		{
			name:          "storage failure stays internal",
			err:           apperrors.WrapStorage(assert.AnError, "create user secret"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
		},
		{
			name:          "unknown error",
			err:           assert.AnError,
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedError)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, nil)

		assert.Empty(t, w.Body.String())
	})

	t.Run("internal error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, apperrors.WrapStorage(assert.AnError, "create user secret"), nil)

		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, assert.AnError, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, assert.AnError, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}
