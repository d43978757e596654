package catalog

import (
	"context"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/models"
)

// Overview is the landing page summary.
type Overview struct {
	Players    int64 `json:"players"`
	Games      int64 `json:"games"`
	Publishers int64 `json:"publishers"`
	Genres     int64 `json:"genres"`
	Visits     int64 `json:"visits"`
}

// Overview counts the catalog tables. visits is the caller's counter before
// this request; the result carries it incremented and the caller stores it.
func (s *Service) Overview(ctx context.Context, visits int64) (*Overview, error) {
	defer observe("overview")()

	o := &Overview{Visits: visits + 1}
	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.Player{}, &o.Players},
		{&models.Game{}, &o.Games},
		{&models.Publisher{}, &o.Publishers},
		{&models.Genre{}, &o.Genres},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, apperr.Internal("failed to count catalog", err)
		}
	}
	return o, nil
}
