package auth

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware resolves the session when a token is present but
// never rejects the request. Invalid tokens leave the caller anonymous.
func OptionalAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, resolver.Current(c.Request.Context(), BearerToken(c)))
		c.Next()
	}
}
