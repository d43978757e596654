package catalog

import (
	"context"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/models"
)

// GenreSummary is a genre with the number of games in it.
type GenreSummary struct {
	models.Genre `gorm:"embedded"`
	NumGames     int64 `json:"num_games"`
}

var genreOrderings = map[string]string{
	"name":       "genres.name ASC",
	"num_games":  "num_games ASC, genres.name ASC",
	"-num_games": "num_games DESC, genres.name ASC",
}

// SearchGenres lists every genre with its game count, including genres
// without games.
func (s *Service) SearchGenres(ctx context.Context, ordering string) ([]GenreSummary, error) {
	defer observe("search_genres")()

	order, ok := genreOrderings[ordering]
	if !ok {
		order = genreOrderings["name"]
	}

	genres := []GenreSummary{}
	err := s.db.WithContext(ctx).Model(&models.Genre{}).
		Select("genres.*, COUNT(games.id) AS num_games").
		Joins("LEFT JOIN games ON games.genre_id = genres.id").
		Group("genres.id").
		Order(order).
		Scan(&genres).Error
	if err != nil {
		return nil, apperr.Internal("failed to search genres", err)
	}
	return genres, nil
}

func (s *Service) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := s.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, apperr.FromDB(err, "genre", id)
	}
	return &genre, nil
}
