// Package auth guards the protected route group with bearer-token
// authorization.
package auth

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/micromouse-api/service/i"
	"github.com/gin-gonic/gin"
)

// ContextClaims is the key used to store token claims in the Gin context.
const ContextClaims = "tokenClaims"

// Authorize returns middleware rejecting requests without a valid bearer
// token signed by ts.
func Authorize(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach claims to the request context for further use.
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// Disabled returns middleware rejecting every request, used when no
// signing secret is configured and the protected group must stay closed.
func Disabled() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusNotFound)
		c.Abort()
	}
}
