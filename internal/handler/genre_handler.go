package handler

import (
	"net/http"

	"gamehub/backend/internal/catalog"
	"gamehub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type GenreInput struct {
	Name        string `json:"name" binding:"required" example:"RPG"`
	Description string `json:"description" binding:"required" example:"Role-playing games"`
	Image       string `json:"image" example:"genre_images/rpg.png"`
}

type GenreResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	NumGames    *int64 `json:"num_games,omitempty"`
}

type GenreDetailResponse struct {
	Genre GenreResponse  `json:"genre"`
	Games []GameResponse `json:"games"`
}

func newGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{
		ID:          genre.ID,
		Name:        genre.Name,
		Description: genre.Description,
		Image:       genre.Image,
	}
}

func newGenreSummaryResponse(summary catalog.GenreSummary) GenreResponse {
	response := newGenreResponse(summary.Genre)
	numGames := summary.NumGames
	response.NumGames = &numGames
	return response
}

// ListGenres godoc
// @Summary      Get genres with game counts
// @Description  Lists every genre with the number of its games.
// @Tags         genres
// @Produce      json
// @Param        ordering query string false "name, num_games or -num_games" default(name)
// @Success      200  {array}   GenreResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /genres [get]
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.catalog.SearchGenres(c.Request.Context(), c.Query("ordering"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		response = append(response, newGenreSummaryResponse(g))
	}
	c.JSON(http.StatusOK, response)
}

// GetGenre godoc
// @Summary      Get a genre
// @Description  Retrieves a genre and its games ordered by title.
// @Tags         genres
// @Produce      json
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  GenreDetailResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Router       /genres/{id} [get]
func (h *Handler) GetGenre(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	genre, err := h.catalog.GetGenre(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	games, err := h.catalog.GamesByGenre(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, GenreDetailResponse{
		Genre: newGenreResponse(*genre),
		Games: newGameResponses(games),
	})
}

// CreateGenre godoc
// @Summary      Create a new genre
// @Tags         admin-genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GenreInput true "Genre Info"
// @Success      201  {object}  GenreResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      409  {object}  ErrorResponse "Name or description already taken"
// @Router       /admin/genres [post]
func (h *Handler) CreateGenre(c *gin.Context) {
	var input GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	genre := models.Genre{Name: input.Name, Description: input.Description, Image: input.Image}
	if err := h.genres.Create(c.Request.Context(), &genre); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGenreResponse(genre))
}

// UpdateGenre godoc
// @Summary      Update a genre
// @Tags         admin-genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int         true  "Genre ID"
// @Param        input body  GenreInput  true  "New Genre Info"
// @Success      200  {object}  GenreResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Failure      409  {object}  ErrorResponse "Name or description already taken"
// @Router       /admin/genres/{id} [put]
func (h *Handler) UpdateGenre(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	genre, err := h.genres.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	genre.Name = input.Name
	genre.Description = input.Description
	genre.Image = input.Image
	if err := h.genres.Update(ctx, genre); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newGenreResponse(*genre))
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Deletes a genre. Genres that still have games cannot be deleted.
// @Tags         admin-genres
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Failure      409  {object}  ErrorResponse "Genre still has games"
// @Router       /admin/genres/{id} [delete]
func (h *Handler) DeleteGenre(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.genres.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Genre deleted"})
}
