package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"cake_orders/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// JWTAuthMiddleware authenticates requests via a bearer token. The token
// subject is resolved against the credential store on every request, so the
// role seen by handlers is the current one, not whatever was true at
// issuance.
func JWTAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				abortUnauthorized(c, "Invalid or expired token")
				return
			}
			log.Printf("Error resolving token subject: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate request"})
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, user.Username)
		c.Set(AuthRoleKey, user.Role)

		c.Next()
	}
}
