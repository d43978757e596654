package handler

import (
	"net/http"

	"gamehub/backend/internal/catalog"
	"gamehub/backend/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OverviewResponse struct {
	Players    int64 `json:"players" example:"120"`
	Games      int64 `json:"games" example:"48"`
	Publishers int64 `json:"publishers" example:"12"`
	Genres     int64 `json:"genres" example:"9"`
	Visits     int64 `json:"visits" example:"3"`
}

func newOverviewResponse(o *catalog.Overview) OverviewResponse {
	return OverviewResponse{
		Players:    o.Players,
		Games:      o.Games,
		Publishers: o.Publishers,
		Genres:     o.Genres,
		Visits:     o.Visits,
	}
}

// GetOverview godoc
// @Summary      Get the landing page summary
// @Description  Counts players, games, publishers and genres, and how often this session has seen the page.
// @Tags         overview
// @Produce      json
// @Success      200  {object}  OverviewResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := c.Cookie(session.CookieName)
	if err != nil || !session.ValidID(sessionID) {
		sessionID = session.NewID()
	}

	// The counter is cosmetic; a broken store must not break the page.
	visits, err := h.visits.Visits(ctx, sessionID)
	if err != nil {
		h.log.Warn("failed to read visit counter", zap.Error(err))
		visits = 0
	}

	overview, err := h.catalog.Overview(ctx, visits)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.visits.SaveVisits(ctx, sessionID, overview.Visits); err != nil {
		h.log.Warn("failed to save visit counter", zap.Error(err))
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, sessionID, int(h.cfg.SessionTTL.Seconds()), "/", "", h.cfg.Environment == "production", true)
	c.JSON(http.StatusOK, newOverviewResponse(overview))
}
