package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotly/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxHostIDKey = "host_id"

// AuthMiddleware authenticates hosts managing their own availability and
// event types. Guest-facing booking pages stay public; guests never hold
// tokens.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		hostID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxHostIDKey, hostID)
		c.Next()
	}
}

func GetHostID(c *gin.Context) (uuid.UUID, bool) {
	hostID, exists := c.Get(ctxHostIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := hostID.(uuid.UUID)
	return id, ok
}
