package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	var err error = fmt.Errorf("chat: %w", &ValidationError{Reason: ReasonEmpty})

	assert.ErrorIs(t, err, ErrValidationFailed)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, ReasonEmpty, vErr.Reason)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret")
	id := uuid.New()

	token, err := issuer.CreateToken(id, "user")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.AccountID)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenIssuer_RejectsExpiredAndForeignTokens(t *testing.T) {
	issuer := NewTokenIssuer("secret")
	token, err := issuer.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = NewTokenIssuer("other").ValidateToken(token)
	assert.Error(t, err)

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "s3cret!"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	require.NoError(t, err)
	b, err := GenerateSecureToken(16)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestFormatHistoryVN(t *testing.T) {
	ts := time.Date(2024, 12, 31, 20, 5, 0, 0, time.UTC)
	assert.Equal(t, "01/01/2025 03:05", FormatHistoryVN(ts))
	assert.Equal(t, "", FormatHistoryVN(time.Time{}))
}

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		code int
	}{
		{ErrDestinationNotFound, http.StatusNotFound},
		{fmt.Errorf("register: %w", ErrEmailAlreadyExists), http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrDatabaseError, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "trace-1")

		HandleServiceError(c, zap.NewNop(), tc.err)

		var body APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, w.Code)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "trace-1", body.TraceID)
		assert.NotContains(t, body.Message, "boom")
	}
}
