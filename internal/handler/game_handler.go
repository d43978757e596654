package handler

import (
	"context"
	"net/http"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/catalog"
	"gamehub/backend/internal/collection"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"
	"gamehub/backend/internal/rating"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// region --- DTOs ---

type GameInput struct {
	Title       string `json:"title" binding:"required" example:"Hollow Knight"`
	Description string `json:"description" binding:"required" example:"Metroidvania in a ruined kingdom"`
	ReleaseYear int    `json:"release_year" binding:"required" example:"2017"`
	Image       string `json:"image" binding:"required" example:"game_images/hollow-knight.png"`
	Link        string `json:"link" binding:"required" example:"https://www.hollowknight.com"`
	GenreID     uint   `json:"genre_id" binding:"required" example:"1"`
	PublisherID uint   `json:"publisher_id" binding:"required" example:"1"`
	PlatformIDs []uint `json:"platform_ids"` // IDs of the platforms the game runs on
}

// NamedRef is a short reference to a related record.
type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GameResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ReleaseYear int                `json:"release_year"`
	Image       string             `json:"image"`
	Link        string             `json:"link"`
	Genre       *NamedRef          `json:"genre,omitempty"`
	Publisher   *NamedRef          `json:"publisher,omitempty"`
	Platforms   []PlatformResponse `json:"platforms"`
}

type RatingSummaryResponse struct {
	Average     decimal.Decimal `json:"average" swaggertype:"string" example:"8.3"`
	Votes       int64           `json:"votes" example:"3"`
	PlayerScore *int            `json:"player_score,omitempty" example:"9"`
}

type GameDetailResponse struct {
	Game        GameResponse          `json:"game"`
	Rating      RatingSummaryResponse `json:"rating"`
	InWishlist  *bool                 `json:"in_wishlist,omitempty"`
	InCompleted *bool                 `json:"in_completed,omitempty"`
}

type GameFilters struct {
	Title       string `json:"title"`
	GenreID     *uint  `json:"genre"`
	PublisherID *uint  `json:"publisher"`
	Ordering    string `json:"ordering"`
}

type GameListResponse struct {
	Games      PaginatedResponse[GameResponse] `json:"games"`
	Genres     []GenreResponse                 `json:"genres"`
	Publishers []PublisherResponse             `json:"publishers"`
	Filters    GameFilters                     `json:"filters"`
	Orderings  []string                        `json:"orderings"`
}

type RateInput struct {
	Score *int `json:"score" binding:"required" example:"8"`
}

type RatingResponse struct {
	GameID uint                  `json:"game_id"`
	Score  int                   `json:"score"`
	Rating RatingSummaryResponse `json:"rating"`
}

type ToggleResponse struct {
	List   string `json:"list" example:"wishlist"`
	InList bool   `json:"in_list" example:"true"`
}

func newGameResponse(game models.Game) GameResponse {
	response := GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		ReleaseYear: game.ReleaseYear,
		Image:       game.Image,
		Link:        game.Link,
		Platforms:   make([]PlatformResponse, 0, len(game.Platforms)),
	}
	if game.Genre != nil {
		response.Genre = &NamedRef{ID: game.Genre.ID, Name: game.Genre.Name}
	}
	if game.Publisher != nil {
		response.Publisher = &NamedRef{ID: game.Publisher.ID, Name: game.Publisher.Name}
	}
	for _, platform := range game.Platforms {
		if platform != nil {
			response.Platforms = append(response.Platforms, newPlatformResponse(*platform))
		}
	}
	return response
}

func newGameResponses(games []models.Game) []GameResponse {
	response := make([]GameResponse, 0, len(games))
	for _, g := range games {
		response = append(response, newGameResponse(g))
	}
	return response
}

func newRatingSummaryResponse(summary *rating.Summary) RatingSummaryResponse {
	return RatingSummaryResponse{
		Average:     summary.Average,
		Votes:       summary.Votes,
		PlayerScore: summary.PlayerScore,
	}
}

// endregion

// region --- Public Handlers ---

// ListGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a page of games filtered by title, genre and publisher, with the filter options.
// @Tags         games
// @Produce      json
// @Param        title     query  string  false  "Case-insensitive part of the title"
// @Param        genre     query  int     false  "Genre ID"
// @Param        publisher query  int     false  "Publisher ID"
// @Param        ordering  query  string  false  "title, -title, release_year or -release_year" default(title)
// @Param        page      query  int     false  "Page number" default(1)
// @Success      200  {object}  GameListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	ctx := c.Request.Context()
	filter := catalog.GameFilter{
		TitleContains: c.Query("title"),
		GenreID:       queryID(c, "genre"),
		PublisherID:   queryID(c, "publisher"),
		Ordering:      c.Query("ordering"),
	}
	req := pagination.Request{Page: pagination.ParsePage(c.Query("page")), PageSize: h.cfg.GamesPageSize}

	page, err := h.catalog.SearchGames(ctx, filter, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	genres, err := h.genres.All(ctx, "")
	if err != nil {
		h.fail(c, err)
		return
	}
	publishers, err := h.publishers.All(ctx, "name ASC, id ASC")
	if err != nil {
		h.fail(c, err)
		return
	}

	response := GameListResponse{
		Games:      newPaginatedResponse(page, newGameResponse),
		Genres:     make([]GenreResponse, 0, len(genres)),
		Publishers: make([]PublisherResponse, 0, len(publishers)),
		Filters: GameFilters{
			Title:       filter.TitleContains,
			GenreID:     filter.GenreID,
			PublisherID: filter.PublisherID,
			Ordering:    filter.Ordering,
		},
		Orderings: catalog.GameOrderings,
	}
	for _, g := range genres {
		response.Genres = append(response.Genres, newGenreResponse(g))
	}
	for _, p := range publishers {
		response.Publishers = append(response.Publishers, newPublisherResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// GetGame godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game with its rating summary. Signed-in players also get their own score and list membership.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  GameDetailResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGame(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	game, err := h.catalog.GetGame(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	playerID := currentPlayer(c)
	summary, err := h.ratings.Summary(ctx, id, playerID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response := GameDetailResponse{
		Game:   newGameResponse(*game),
		Rating: newRatingSummaryResponse(summary),
	}
	if playerID != nil {
		if response.InWishlist, err = h.contains(ctx, *playerID, id, collection.Wishlist); err != nil {
			h.fail(c, err)
			return
		}
		if response.InCompleted, err = h.contains(ctx, *playerID, id, collection.Completed); err != nil {
			h.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) contains(ctx context.Context, playerID, gameID uint, kind collection.ListKind) (*bool, error) {
	in, err := h.lists.Contains(ctx, playerID, gameID, kind)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// RandomGame godoc
// @Summary      Get a random game
// @Tags         games
// @Produce      json
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Catalog is empty"
// @Router       /games/random [get]
func (h *Handler) RandomGame(c *gin.Context) {
	game, err := h.catalog.RandomGame(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// RateGame godoc
// @Summary      Rate a game
// @Description  Stores the player's score from 1 to 10. Rating again replaces the previous score.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int        true  "Game ID"
// @Param        input body  RateInput  true  "Score"
// @Success      200  {object}  RatingResponse
// @Failure      400  {object}  ErrorResponse "Score out of range"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id}/rating [post]
func (h *Handler) RateGame(c *gin.Context) {
	playerID, ok := h.requirePlayer(c)
	if !ok {
		return
	}
	gameID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input RateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	stored, err := h.ratings.UpsertRating(ctx, playerID, gameID, *input.Score)
	if err != nil {
		h.fail(c, err)
		return
	}
	summary, err := h.ratings.Summary(ctx, gameID, &playerID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RatingResponse{
		GameID: gameID,
		Score:  stored.Score,
		Rating: newRatingSummaryResponse(summary),
	})
}

// ToggleWishlist godoc
// @Summary      Toggle a game in the wishlist
// @Description  Adds the game to the player's wishlist, or removes it when already there.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  ToggleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id}/wishlist [post]
func (h *Handler) ToggleWishlist(c *gin.Context) {
	h.toggle(c, collection.Wishlist)
}

// ToggleCompleted godoc
// @Summary      Toggle a game in the completed list
// @Description  Marks the game as completed by the player, or unmarks it.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  ToggleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id}/completed [post]
func (h *Handler) ToggleCompleted(c *gin.Context) {
	h.toggle(c, collection.Completed)
}

func (h *Handler) toggle(c *gin.Context, kind collection.ListKind) {
	playerID, ok := h.requirePlayer(c)
	if !ok {
		return
	}
	gameID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		inList bool
		err    error
	)
	switch kind {
	case collection.Wishlist:
		inList, err = h.lists.ToggleWishlist(ctx, playerID, gameID)
	default:
		inList, err = h.lists.ToggleCompleted(ctx, playerID, gameID)
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{List: kind.String(), InList: inList})
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a new game and associates it with given platforms.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      409  {object}  ErrorResponse "Title, description or link already taken"
// @Router       /admin/games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	platforms, err := h.resolveGameRefs(ctx, input)
	if err != nil {
		h.fail(c, err)
		return
	}

	game := models.Game{}
	input.apply(&game)
	if err := h.games.Create(ctx, &game); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.games.ReplaceAssociation(ctx, &game, "Platforms", platforms); err != nil {
		h.fail(c, err)
		return
	}

	h.respondGame(c, http.StatusCreated, game.ID)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Updates a game and replaces its platforms.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int        true  "Game ID"
// @Param        input body  GameInput  true  "New Game Info"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      409  {object}  ErrorResponse "Title, description or link already taken"
// @Router       /admin/games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	game, err := h.games.Get(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	platforms, err := h.resolveGameRefs(ctx, input)
	if err != nil {
		h.fail(c, err)
		return
	}

	input.apply(game)
	if err := h.games.Update(ctx, game); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.games.ReplaceAssociation(ctx, game, "Platforms", platforms); err != nil {
		h.fail(c, err)
		return
	}

	h.respondGame(c, http.StatusOK, id)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game with its ratings and list entries.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Staff access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.games.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Game deleted"})
}

// resolveGameRefs checks that the referenced genre and publisher exist and
// loads the platforms.
func (h *Handler) resolveGameRefs(ctx context.Context, input GameInput) ([]*models.Platform, error) {
	if _, err := h.genres.Get(ctx, input.GenreID); err != nil {
		return nil, asInvalidRef(err, "genre_id", "genre does not exist")
	}
	if _, err := h.publishers.Get(ctx, input.PublisherID); err != nil {
		return nil, asInvalidRef(err, "publisher_id", "publisher does not exist")
	}

	platforms := make([]*models.Platform, 0, len(input.PlatformIDs))
	seen := make(map[uint]bool, len(input.PlatformIDs))
	for _, id := range input.PlatformIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		platform, err := h.platforms.Get(ctx, id)
		if err != nil {
			return nil, asInvalidRef(err, "platform_ids", "platform does not exist")
		}
		platforms = append(platforms, platform)
	}
	return platforms, nil
}

// asInvalidRef turns a missing referenced row into a validation error of the
// referencing field.
func asInvalidRef(err error, field, msg string) error {
	if apperr.Is(err, apperr.KindNotFound) {
		return apperr.Validation(field, msg)
	}
	return err
}

func (h *Handler) respondGame(c *gin.Context, status int, id uint) {
	game, err := h.games.Get(c.Request.Context(), id, "Genre", "Publisher", "Platforms")
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(status, newGameResponse(*game))
}

func (in GameInput) apply(game *models.Game) {
	game.Title = in.Title
	game.Description = in.Description
	game.ReleaseYear = in.ReleaseYear
	game.Image = in.Image
	game.Link = in.Link
	game.GenreID = in.GenreID
	game.PublisherID = in.PublisherID
	game.Genre = nil
	game.Publisher = nil
}

// endregion
