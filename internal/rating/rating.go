// Package rating aggregates player scores per game.
package rating

import (
	"context"
	"errors"
	"fmt"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/metrics"
	"gamehub/backend/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPrecision is the number of decimal places of an average.
const DefaultPrecision int32 = 1

type Service struct {
	db        *gorm.DB
	precision int32
	log       *logger.Logger
}

func NewService(db *gorm.DB, precision int32, log *logger.Logger) *Service {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &Service{db: db, precision: precision, log: log.With(zap.String("service", "rating"))}
}

// Summary is what a game page shows about its ratings.
type Summary struct {
	Average     decimal.Decimal `json:"average"`
	Votes       int64           `json:"votes"`
	PlayerScore *int            `json:"player_score"`
}

func ValidateScore(score int) error {
	if score < models.MinScore || score > models.MaxScore {
		return apperr.Validation("score", fmt.Sprintf("score must be between %d and %d", models.MinScore, models.MaxScore))
	}
	return nil
}

// UpsertRating stores the player's score for the game. A second submission
// replaces the first; there is never more than one row per pair.
func (s *Service) UpsertRating(ctx context.Context, playerID, gameID uint, score int) (*models.Rating, error) {
	if err := ValidateScore(score); err != nil {
		return nil, err
	}

	var stored models.Rating
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Player{}, playerID).Error; err != nil {
			return apperr.FromDB(err, "player", playerID)
		}
		if err := tx.Select("id").First(&models.Game{}, gameID).Error; err != nil {
			return apperr.FromDB(err, "game", gameID)
		}

		r := models.Rating{PlayerID: playerID, GameID: gameID, Score: score}
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "game_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(&r).Error
		if err != nil {
			return err
		}

		return tx.Where("player_id = ? AND game_id = ?", playerID, gameID).First(&stored).Error
	})
	if err != nil {
		err = apperr.FromDB(err, "rating", gameID)
		if apperr.Is(err, apperr.KindInternal) {
			s.log.Error("failed to store rating", err, zap.Uint("player_id", playerID), zap.Uint("game_id", gameID))
		}
		return nil, err
	}

	metrics.RatingsSubmittedTotal.Inc()
	s.log.Debug("rating stored", zap.Uint("player_id", playerID), zap.Uint("game_id", gameID), zap.Int("score", score))
	return &stored, nil
}

// AverageRating is the mean score of the game, or 0 without ratings.
func (s *Service) AverageRating(ctx context.Context, gameID uint) (decimal.Decimal, error) {
	var agg struct {
		Total int64
		Votes int64
	}
	err := s.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(SUM(score), 0) AS total, COUNT(*) AS votes").
		Where("game_id = ?", gameID).
		Scan(&agg).Error
	if err != nil {
		return decimal.Zero, apperr.Internal("failed to average ratings", err)
	}
	return average(agg.Total, agg.Votes, s.precision), nil
}

func average(total, votes int64, precision int32) decimal.Decimal {
	if votes == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(total).DivRound(decimal.NewFromInt(votes), precision)
}

func (s *Service) DistinctVoterCount(ctx context.Context, gameID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Rating{}).
		Where("game_id = ?", gameID).
		Distinct("player_id").
		Count(&n).Error
	if err != nil {
		return 0, apperr.Internal("failed to count voters", err)
	}
	return n, nil
}

// RatingFor returns the player's rating of the game, or nil if there is none.
func (s *Service) RatingFor(ctx context.Context, playerID, gameID uint) (*models.Rating, error) {
	var r models.Rating
	err := s.db.WithContext(ctx).Where("player_id = ? AND game_id = ?", playerID, gameID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("failed to load rating", err)
	}
	return &r, nil
}

// Summary collects the average, the voter count and, for a signed-in player,
// their own score.
func (s *Service) Summary(ctx context.Context, gameID uint, playerID *uint) (*Summary, error) {
	avg, err := s.AverageRating(ctx, gameID)
	if err != nil {
		return nil, err
	}
	votes, err := s.DistinctVoterCount(ctx, gameID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Average: avg, Votes: votes}
	if playerID != nil {
		own, err := s.RatingFor(ctx, *playerID, gameID)
		if err != nil {
			return nil, err
		}
		if own != nil {
			summary.PlayerScore = &own.Score
		}
	}
	return summary, nil
}
