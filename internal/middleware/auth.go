package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moodly-be/internal/jwt"
)

// Context keys set by AuthMiddleware for downstream handlers
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware verifies the bearer token on protected routes. A
// missing token is 401; a token that fails signature or expiry checks
// is 403. On success the decoded identity is placed in the request
// context. No state is retained between requests.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authorization token required",
			})
			return
		}

		// Expected scheme: Authorization: Bearer <token>
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authorization token required",
			})
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
