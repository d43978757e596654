package handler

import (
	"net/http"
	"strings"
	"time"

	"gamehub/backend/internal/account"
	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/models"
	"gamehub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// RegisterInput defines the structure for player registration.
type RegisterInput struct {
	Username    string `json:"username" binding:"required" example:"testplayer"`
	Email       string `json:"email" example:"test@example.com"`
	Password    string `json:"password" binding:"required" example:"password123"`
	FirstName   string `json:"first_name" example:"Ada"`
	LastName    string `json:"last_name" example:"Lovelace"`
	DateOfBirth string `json:"date_of_birth" example:"1995-12-10"`
}

// LoginInput defines the structure for player login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"testplayer"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type TokenResponse struct {
	Token  string         `json:"token"`
	Player PlayerResponse `json:"player"`
}

// parseDate reads an optional YYYY-MM-DD value.
func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, apperr.Validation(field, "date must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

// Register godoc
// @Summary      Register a new player
// @Description  Creates a new player and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username or email already taken"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	dob, err := parseDate("date_of_birth", input.DateOfBirth)
	if err != nil {
		h.fail(c, err)
		return
	}

	player, err := h.accounts.Register(c.Request.Context(), account.RegisterInput{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: dob,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.respondToken(c, http.StatusCreated, player)
}

// Login godoc
// @Summary      Log in a player
// @Description  Authenticates a player with username/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "Player not found"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.bindError(c, err)
		return
	}

	player, err := h.accounts.Authenticate(c.Request.Context(), input.Login, input.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.respondToken(c, http.StatusOK, player)
}

func (h *Handler) respondToken(c *gin.Context, status int, player *models.Player) {
	token, err := jwt.GenerateToken(player.ID)
	if err != nil {
		h.fail(c, apperr.Internal("failed to generate token", err))
		return
	}

	c.JSON(status, TokenResponse{Token: token, Player: h.newPlayerResponse(player)})
}
