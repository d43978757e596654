package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"game 7 not found"`
	Code  string `json:"code" example:"not_found"`
	Field string `json:"field,omitempty" example:"score"`
}

// MessageResponse is returned by endpoints that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message" example:"Game deleted"`
}

// fail writes err as an ErrorResponse. Untyped and internal errors are logged
// and hidden from the client.
func (h *Handler) fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		h.log.Error("request failed", err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
			Code:  string(apperr.KindInternal),
		})
		return
	}

	c.JSON(appErr.Kind.Status(), ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Kind),
		Field: appErr.Field,
	})
}

// bindError reports a malformed request body.
func (h *Handler) bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperr.KindValidation)})
}

// pathID parses a numeric path parameter, answering 400 when it is not one.
func (h *Handler) pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		h.fail(c, apperr.Validation(name, "Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric filter. Anything non-numeric is treated
// as absent.
func queryID(c *gin.Context, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

// currentPlayer returns the authenticated player, if any.
func currentPlayer(c *gin.Context) *uint {
	id, ok := auth.PlayerID(c)
	if !ok {
		return nil
	}
	return &id
}

// requirePlayer returns the authenticated player on routes behind AuthMiddleware.
func (h *Handler) requirePlayer(c *gin.Context) (uint, bool) {
	id, ok := auth.PlayerID(c)
	if !ok {
		h.fail(c, apperr.Unauthorized("Authentication required"))
		return 0, false
	}
	return id, true
}
