package handler

import (
	"net/http"
	"time"

	"gamehub/backend/internal/account"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"github.com/gin-gonic/gin"
)

// PlayerResponse is the authenticated player's own profile.
type PlayerResponse struct {
	ID          uint    `json:"id" example:"1"`
	Username    string  `json:"username" example:"testplayer"`
	Email       *string `json:"email,omitempty" example:"test@example.com"`
	FirstName   string  `json:"first_name" example:"Ada"`
	LastName    string  `json:"last_name" example:"Lovelace"`
	DateOfBirth *string `json:"date_of_birth,omitempty" example:"1995-12-10"`
	Age         *int    `json:"age,omitempty" example:"28"`
	IsStaff     bool    `json:"is_staff"`
}

type ProfileInput struct {
	FirstName   string `json:"first_name" example:"Ada"`
	LastName    string `json:"last_name" example:"Lovelace"`
	DateOfBirth string `json:"date_of_birth" example:"1995-12-10"`
}

type PersonalListsResponse struct {
	Wishlist  PaginatedResponse[GameResponse] `json:"wishlist"`
	Completed PaginatedResponse[GameResponse] `json:"completed"`
}

func (h *Handler) newPlayerResponse(player *models.Player) PlayerResponse {
	response := PlayerResponse{
		ID:        player.ID,
		Username:  player.Username,
		Email:     player.Email,
		FirstName: player.FirstName,
		LastName:  player.LastName,
		Age:       h.accounts.Age(player),
		IsStaff:   player.IsStaff,
	}
	if player.DateOfBirth != nil {
		dob := player.DateOfBirth.Format(time.DateOnly)
		response.DateOfBirth = &dob
	}
	return response
}

// GetMe godoc
// @Summary      Get current player's profile
// @Description  Retrieves the profile of the authenticated player, including the age.
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PlayerResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /players/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	playerID, ok := h.requirePlayer(c)
	if !ok {
		return
	}

	player, err := h.accounts.Get(c.Request.Context(), playerID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newPlayerResponse(player))
}

// UpdateMe godoc
// @Summary      Update current player's profile
// @Description  Updates name and date of birth of the authenticated player.
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ProfileInput true "Profile"
// @Success      200  {object}  PlayerResponse
// @Failure      400  {object}  ErrorResponse "Date of birth out of range"
// @Failure      401  {object}  ErrorResponse
// @Router       /players/me [put]
func (h *Handler) UpdateMe(c *gin.Context) {
	playerID, ok := h.requirePlayer(c)
	if !ok {
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}
	dob, err := parseDate("date_of_birth", input.DateOfBirth)
	if err != nil {
		h.fail(c, err)
		return
	}

	player, err := h.accounts.UpdateProfile(c.Request.Context(), playerID, account.ProfileInput{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: dob,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newPlayerResponse(player))
}

// GetMyLists godoc
// @Summary      Get current player's lists
// @Description  Retrieves the wishlist and the completed list, each paginated on its own.
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        wishlist_page  query  int  false  "Wishlist page" default(1)
// @Param        completed_page query  int  false  "Completed page" default(1)
// @Success      200  {object}  PersonalListsResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /players/me/lists [get]
func (h *Handler) GetMyLists(c *gin.Context) {
	playerID, ok := h.requirePlayer(c)
	if !ok {
		return
	}

	page, err := h.lists.PersonalPage(c.Request.Context(), playerID,
		pagination.ParsePage(c.Query("wishlist_page")),
		pagination.ParsePage(c.Query("completed_page")),
		h.cfg.PersonalPageSize,
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PersonalListsResponse{
		Wishlist:  newPaginatedResponse(page.Wishlist, newGameResponse),
		Completed: newPaginatedResponse(page.Completed, newGameResponse),
	})
}
