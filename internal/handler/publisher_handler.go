package handler

import (
	"net/http"

	"gamehub/backend/internal/catalog"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PublisherInput struct {
	Name           string          `json:"name" binding:"required" example:"Valve"`
	Description    string          `json:"description" binding:"required" example:"Bellevue based developer"`
	Country        string          `json:"country" binding:"required" example:"USA"`
	Capitalization decimal.Decimal `json:"capitalization" swaggertype:"string" example:"120.50"`
	Image          string          `json:"image" example:"publisher_images/valve.png"`
}

type PublisherResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Country        string          `json:"country"`
	Capitalization decimal.Decimal `json:"capitalization" swaggertype:"string" example:"120.5"`
	Image          string          `json:"image,omitempty"`
}

type PublisherFilters struct {
	Country  string `json:"country"`
	Ordering string `json:"ordering"`
}

type PublisherListResponse struct {
	Publishers PaginatedResponse[PublisherResponse] `json:"publishers"`
	Countries  []string                             `json:"countries"`
	Filters    PublisherFilters                     `json:"filters"`
}

type PublisherDetailResponse struct {
	Publisher PublisherResponse `json:"publisher"`
	Games     []GameResponse    `json:"games"`
}

func newPublisherResponse(publisher models.Publisher) PublisherResponse {
	return PublisherResponse{
		ID:             publisher.ID,
		Name:           publisher.Name,
		Description:    publisher.Description,
		Country:        publisher.Country,
		Capitalization: publisher.Capitalization,
		Image:          publisher.Image,
	}
}

// ListPublishers godoc
// @Summary      Get a page of publishers
// @Description  Lists publishers, optionally filtered by country, with the list of known countries.
// @Tags         publishers
// @Produce      json
// @Param        country  query  string  false  "Exact country"
// @Param        ordering query  string  false  "name, country or capitalization, prefixed with - for descending" default(capitalization)
// @Param        page     query  int     false  "Page number" default(1)
// @Success      200  {object}  PublisherListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /publishers [get]
func (h *Handler) ListPublishers(c *gin.Context) {
	ctx := c.Request.Context()
	filter := catalog.PublisherFilter{Country: c.Query("country"), Ordering: c.Query("ordering")}
	req := pagination.Request{Page: pagination.ParsePage(c.Query("page")), PageSize: h.cfg.PublishersPageSize}

	page, err := h.catalog.SearchPublishersPage(ctx, filter, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	countries, err := h.catalog.DistinctCountries(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PublisherListResponse{
		Publishers: newPaginatedResponse(page, newPublisherResponse),
		Countries:  countries,
		Filters:    PublisherFilters{Country: filter.Country, Ordering: filter.Ordering},
	})
}

// GetPublisher godoc
// @Summary      Get a publisher
// @Description  Retrieves a publisher and its games ordered by title.
// @Tags         publishers
// @Produce      json
// @Param        id   path      int  true  "Publisher ID"
// @Success      200  {object}  PublisherDetailResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Publisher not found"
// @Router       /publishers/{id} [get]
func (h *Handler) GetPublisher(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	publisher, err := h.catalog.GetPublisher(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	games, err := h.catalog.GamesByPublisher(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PublisherDetailResponse{
		Publisher: newPublisherResponse(*publisher),
		Games:     newGameResponses(games),
	})
}

// CreatePublisher godoc
// @Summary      Create a new publisher
// @Tags         admin-publishers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PublisherInput true "Publisher Info"
// @Success      201  {object}  PublisherResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      409  {object}  ErrorResponse "Name or description already taken"
// @Router       /admin/publishers [post]
func (h *Handler) CreatePublisher(c *gin.Context) {
	var input PublisherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	publisher := models.Publisher{}
	input.apply(&publisher)
	if err := h.publishers.Create(c.Request.Context(), &publisher); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPublisherResponse(publisher))
}

// UpdatePublisher godoc
// @Summary      Update a publisher
// @Tags         admin-publishers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int             true  "Publisher ID"
// @Param        input body  PublisherInput  true  "New Publisher Info"
// @Success      200  {object}  PublisherResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Publisher not found"
// @Failure      409  {object}  ErrorResponse "Name or description already taken"
// @Router       /admin/publishers/{id} [put]
func (h *Handler) UpdatePublisher(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input PublisherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	publisher, err := h.publishers.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	input.apply(publisher)
	if err := h.publishers.Update(ctx, publisher); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newPublisherResponse(*publisher))
}

// DeletePublisher godoc
// @Summary      Delete a publisher
// @Description  Deletes a publisher together with its games.
// @Tags         admin-publishers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Publisher ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Publisher not found"
// @Router       /admin/publishers/{id} [delete]
func (h *Handler) DeletePublisher(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.publishers.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Publisher deleted"})
}

func (in PublisherInput) apply(publisher *models.Publisher) {
	publisher.Name = in.Name
	publisher.Description = in.Description
	publisher.Country = in.Country
	publisher.Capitalization = in.Capitalization
	publisher.Image = in.Image
}
