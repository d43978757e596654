package handler

import (
	"gamehub/backend/internal/account"
	"gamehub/backend/internal/catalog"
	"gamehub/backend/internal/collection"
	"gamehub/backend/internal/config"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/rating"
	"gamehub/backend/internal/repository"
	"gamehub/backend/internal/session"

	"gorm.io/gorm"
)

// Handler serves the HTTP API on top of the domain services.
type Handler struct {
	catalog    *catalog.Service
	ratings    *rating.Service
	lists      *collection.Service
	accounts   *account.Service
	visits     session.VisitStore
	games      repository.Repository[models.Game]
	genres     repository.Repository[models.Genre]
	publishers repository.Repository[models.Publisher]
	platforms  repository.Repository[models.Platform]
	cfg        *config.Config
	log        *logger.Logger
}

func New(db *gorm.DB, visits session.VisitStore, cfg *config.Config, log *logger.Logger, accountOpts ...account.Option) *Handler {
	return &Handler{
		catalog:    catalog.NewService(db, log),
		ratings:    rating.NewService(db, cfg.RatingPrecision, log),
		lists:      collection.NewService(db, log),
		accounts:   account.NewService(db, log, accountOpts...),
		visits:     visits,
		games:      repository.NewGameRepository(db, log),
		genres:     repository.NewGenreRepository(db, log),
		publishers: repository.NewPublisherRepository(db, log),
		platforms:  repository.NewPlatformRepository(db, log),
		cfg:        cfg,
		log:        log,
	}
}
