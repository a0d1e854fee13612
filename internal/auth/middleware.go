package auth

import (
	"context"
	"net/http"
	"strings"

	"trackr/backend/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionResolver resolves a bearer token to a session.
type SessionResolver interface {
	Current(ctx context.Context, token string) session.Session
}

// BearerToken reads the token from the Authorization header, falling back
// to the access_token query parameter used by event streams.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Query("access_token")
}

// GetSession returns the session stored by the middlewares, or an
// anonymous session.
func GetSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{State: session.StateAnonymous}
}

// AuthMiddleware rejects requests without a valid, unrevoked token.
func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := resolver.Current(c.Request.Context(), BearerToken(c))
		if !s.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}
