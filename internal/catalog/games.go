package catalog

import (
	"context"
	"errors"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GameFilter narrows the game list. Zero values mean "no filter".
type GameFilter struct {
	TitleContains string
	GenreID       *uint
	PublisherID   *uint
	Ordering      string
}

var gameOrderings = map[string]string{
	"title":         "games.title ASC",
	"-title":        "games.title DESC",
	"release_year":  "games.release_year ASC",
	"-release_year": "games.release_year DESC",
}

// GameOrderings lists the accepted values of GameFilter.Ordering.
var GameOrderings = []string{"title", "-title", "release_year", "-release_year"}

func gameOrder(ordering string) string {
	order, ok := gameOrderings[ordering]
	if !ok {
		order = gameOrderings["title"]
	}
	return order + ", games.id ASC"
}

func (f GameFilter) scope(db *gorm.DB) *gorm.DB {
	if f.TitleContains != "" {
		db = db.Where(`LOWER(games.title) LIKE ? ESCAPE '\'`, containsPattern(f.TitleContains))
	}
	if f.GenreID != nil {
		db = db.Where("games.genre_id = ?", *f.GenreID)
	}
	if f.PublisherID != nil {
		db = db.Where("games.publisher_id = ?", *f.PublisherID)
	}
	return db
}

func withGameRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Genre").Preload("Publisher").Preload("Platforms", func(db *gorm.DB) *gorm.DB {
		return db.Order("platforms.name ASC")
	})
}

// SearchGames returns one page of games matching every set filter.
func (s *Service) SearchGames(ctx context.Context, filter GameFilter, req pagination.Request) (*pagination.Page[models.Game], error) {
	defer observe("search_games")()

	order := gameOrder(filter.Ordering)
	page, err := pagination.Paginate[models.Game](ctx, s.db, req, filter.scope, withGameRelations, func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	})
	if err != nil {
		s.log.Error("failed to search games", err, zap.String("title", filter.TitleContains))
		return nil, apperr.Internal("failed to search games", err)
	}
	return page, nil
}

func (s *Service) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	defer observe("get_game")()

	var game models.Game
	if err := s.db.WithContext(ctx).Scopes(withGameRelations).First(&game, id).Error; err != nil {
		return nil, apperr.FromDB(err, "game", id)
	}
	return &game, nil
}

// RandomGame picks one game uniformly at random.
func (s *Service) RandomGame(ctx context.Context) (*models.Game, error) {
	defer observe("random_game")()

	var game models.Game
	err := s.db.WithContext(ctx).Scopes(withGameRelations).Order("RANDOM()").Take(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.Error{Kind: apperr.KindNotFound, Message: "the catalog has no games"}
	}
	if err != nil {
		return nil, apperr.Internal("failed to pick a random game", err)
	}
	return &game, nil
}

func (s *Service) GamesByGenre(ctx context.Context, genreID uint) ([]models.Game, error) {
	defer observe("games_by_genre")()

	if err := s.db.WithContext(ctx).Select("id").First(&models.Genre{}, genreID).Error; err != nil {
		return nil, apperr.FromDB(err, "genre", genreID)
	}
	return s.gamesWhere(ctx, "games.genre_id = ?", genreID)
}

func (s *Service) GamesByPublisher(ctx context.Context, publisherID uint) ([]models.Game, error) {
	defer observe("games_by_publisher")()

	if err := s.db.WithContext(ctx).Select("id").First(&models.Publisher{}, publisherID).Error; err != nil {
		return nil, apperr.FromDB(err, "publisher", publisherID)
	}
	return s.gamesWhere(ctx, "games.publisher_id = ?", publisherID)
}

func (s *Service) gamesWhere(ctx context.Context, cond string, arg any) ([]models.Game, error) {
	games := []models.Game{}
	err := s.db.WithContext(ctx).Scopes(withGameRelations).
		Where(cond, arg).
		Order(gameOrder("title")).
		Find(&games).Error
	if err != nil {
		return nil, apperr.Internal("failed to list games", err)
	}
	return games, nil
}
