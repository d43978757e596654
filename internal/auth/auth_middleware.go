package auth

import (
	"gamehub/backend/internal/apperr"
	"gamehub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token and stores the
// player ID in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abort(c, apperr.Unauthorized("Authorization header required"))
			return
		}

		playerID, err := jwt.ParseToken(tokenString)
		if err != nil {
			abort(c, apperr.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(playerIDKey, playerID)
		c.Next()
	}
}
