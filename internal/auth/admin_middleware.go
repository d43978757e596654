package auth

import (
	"errors"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminMiddleware creates a gin middleware to check for staff players.
// It must be used AFTER the standard AuthMiddleware.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, ok := PlayerID(c)
		if !ok {
			// This should not happen if AuthMiddleware is used before it
			abort(c, apperr.Unauthorized("Player not authenticated"))
			return
		}

		var player models.Player
		err := db.WithContext(c.Request.Context()).Select("id", "is_staff").First(&player, playerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abort(c, apperr.Unauthorized("Authenticated player no longer exists"))
			return
		}
		if err != nil {
			abort(c, apperr.Internal("Failed to load player", err))
			return
		}

		if !player.IsStaff {
			abort(c, apperr.Forbidden("Staff access required"))
			return
		}

		c.Next()
	}
}
