package auth

import (
	"gamehub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the playerID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if playerID, err := jwt.ParseToken(tokenString); err == nil {
				c.Set(playerIDKey, playerID)
			}
		}
		c.Next()
	}
}
