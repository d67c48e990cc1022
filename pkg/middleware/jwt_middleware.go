package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelbot/pkg/utils"
)

const (
	AccountIDKey = "account_id"
	RoleKey      = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

func attachClaims(c *gin.Context, issuer *utils.TokenIssuer, token string) bool {
	claims, err := issuer.ValidateToken(token)
	if err != nil {
		return false
	}
	id, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return false
	}
	c.Set(AccountIDKey, id)
	c.Set(RoleKey, claims.Role)
	return true
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		if !attachClaims(c, issuer, token) {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalJWTMiddleware attaches the account when a valid token is present
// and lets anonymous requests through untouched.
func OptionalJWTMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			attachClaims(c, issuer, token)
		}
		c.Next()
	}
}

// AccountID returns the authenticated account, if any.
func AccountID(c *gin.Context) (*uuid.UUID, bool) {
	v, ok := c.Get(AccountIDKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil, false
	}
	return &id, true
}
