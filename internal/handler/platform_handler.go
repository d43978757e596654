package handler

import (
	"net/http"
	"time"

	"gamehub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type PlatformInput struct {
	Name string `json:"name" binding:"required" example:"PC"`
}

type PlatformResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
}

func newPlatformResponse(platform models.Platform) PlatformResponse {
	return PlatformResponse{
		ID:        platform.ID,
		CreatedAt: platform.CreatedAt,
		UpdatedAt: platform.UpdatedAt,
		Name:      platform.Name,
	}
}

// ListPlatforms godoc
// @Summary      Get all platforms
// @Description  Retrieves every platform ordered by name.
// @Tags         platforms
// @Produce      json
// @Success      200  {array}   PlatformResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /platforms [get]
func (h *Handler) ListPlatforms(c *gin.Context) {
	platforms, err := h.platforms.All(c.Request.Context(), "")
	if err != nil {
		h.fail(c, err)
		return
	}

	response := make([]PlatformResponse, 0, len(platforms))
	for _, p := range platforms {
		response = append(response, newPlatformResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// CreatePlatform godoc
// @Summary      Create a new platform
// @Description  Creates a new platform games can be released on.
// @Tags         admin-platforms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PlatformInput true "Platform Info"
// @Success      201  {object}  PlatformResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      409  {object}  ErrorResponse "Platform already exists"
// @Router       /admin/platforms [post]
func (h *Handler) CreatePlatform(c *gin.Context) {
	var input PlatformInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	platform := models.Platform{Name: input.Name}
	if err := h.platforms.Create(c.Request.Context(), &platform); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPlatformResponse(platform))
}

// UpdatePlatform godoc
// @Summary      Update a platform
// @Description  Renames an existing platform.
// @Tags         admin-platforms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int            true  "Platform ID"
// @Param        input body  PlatformInput  true  "New Platform Info"
// @Success      200  {object}  PlatformResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Platform not found"
// @Failure      409  {object}  ErrorResponse "Name already taken"
// @Router       /admin/platforms/{id} [put]
func (h *Handler) UpdatePlatform(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input PlatformInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	platform, err := h.platforms.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	platform.Name = input.Name
	if err := h.platforms.Update(ctx, platform); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlatformResponse(*platform))
}

// DeletePlatform godoc
// @Summary      Delete a platform
// @Description  Deletes a platform and detaches it from every game.
// @Tags         admin-platforms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Platform ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Platform not found"
// @Router       /admin/platforms/{id} [delete]
func (h *Handler) DeletePlatform(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.platforms.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Platform deleted"})
}
