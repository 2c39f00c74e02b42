package http

import (
	"net/http"
	"strings"

	"github.com/Kuzo404/cs-skins-backend/internal/pkg/jwt"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName    = "Authorization"
	sessionCookieName = "session"

	userIdContextKey = "user_id"
)

// NewAuthMiddleware resolves the session token from the cookie set at login
// or from a bearer header, and puts the local user id into the request
// context.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), token)
		if err != nil {
			logger.Warn("failed to parse session token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set(userIdContextKey, claims.UserID)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader(authHeaderName)
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

func currentUserId(c *gin.Context) int {
	return c.GetInt(userIdContextKey)
}
