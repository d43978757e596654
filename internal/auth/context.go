package auth

import (
	"strings"

	"gamehub/backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

const playerIDKey = "playerID"

// PlayerID returns the authenticated player set by one of the middlewares.
func PlayerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(playerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func abort(c *gin.Context, err *apperr.Error) {
	c.AbortWithStatusJSON(err.Kind.Status(), gin.H{"error": err.Message, "code": err.Kind})
}
