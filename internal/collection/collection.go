// Package collection manages the personal game lists of a player.
package collection

import (
	"context"
	"fmt"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/metrics"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListKind selects one of the personal lists.
type ListKind int

const (
	Wishlist ListKind = iota + 1
	Completed
)

func (k ListKind) String() string {
	switch k {
	case Wishlist:
		return "wishlist"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("ListKind(%d)", int(k))
	}
}

func (k ListKind) table() (string, error) {
	switch k {
	case Wishlist:
		return "wishlist_entries", nil
	case Completed:
		return "completed_entries", nil
	}
	return "", apperr.Validation("list", fmt.Sprintf("unknown list %s", k))
}

func (k ListKind) entry(playerID, gameID uint) any {
	if k == Completed {
		return &models.CompletedEntry{PlayerID: playerID, GameID: gameID}
	}
	return &models.WishlistEntry{PlayerID: playerID, GameID: gameID}
}

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewService(db *gorm.DB, log *logger.Logger) *Service {
	return &Service{db: db, log: log.With(zap.String("service", "collection"))}
}

// Toggle adds the game to the list, or removes it when already there. It
// reports whether the game is in the list afterwards.
func (s *Service) Toggle(ctx context.Context, playerID, gameID uint, kind ListKind) (bool, error) {
	table, err := kind.table()
	if err != nil {
		return false, err
	}

	var inList bool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Player{}, playerID).Error; err != nil {
			return apperr.FromDB(err, "player", playerID)
		}
		if err := tx.Select("id").First(&models.Game{}, gameID).Error; err != nil {
			return apperr.FromDB(err, "game", gameID)
		}

		res := tx.Table(table).Where("player_id = ? AND game_id = ?", playerID, gameID).Delete(kind.entry(0, 0))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			inList = false
			return nil
		}

		inList = true
		return tx.Create(kind.entry(playerID, gameID)).Error
	})
	if err != nil {
		err = apperr.FromDB(err, kind.String(), gameID)
		if apperr.Is(err, apperr.KindInternal) {
			s.log.Error("failed to toggle list entry", err, zap.Stringer("list", kind), zap.Uint("game_id", gameID))
		}
		return false, err
	}

	state := "removed"
	if inList {
		state = "added"
	}
	metrics.ListTogglesTotal.WithLabelValues(kind.String(), state).Inc()
	return inList, nil
}

func (s *Service) ToggleWishlist(ctx context.Context, playerID, gameID uint) (bool, error) {
	return s.Toggle(ctx, playerID, gameID, Wishlist)
}

func (s *Service) ToggleCompleted(ctx context.Context, playerID, gameID uint) (bool, error) {
	return s.Toggle(ctx, playerID, gameID, Completed)
}

func (s *Service) Contains(ctx context.Context, playerID, gameID uint, kind ListKind) (bool, error) {
	table, err := kind.table()
	if err != nil {
		return false, err
	}

	var n int64
	err = s.db.WithContext(ctx).Table(table).Where("player_id = ? AND game_id = ?", playerID, gameID).Count(&n).Error
	if err != nil {
		return false, apperr.Internal("failed to read list", err)
	}
	return n > 0, nil
}

// List returns one page of the player's list, ordered by title.
func (s *Service) List(ctx context.Context, playerID uint, kind ListKind, req pagination.Request) (*pagination.Page[models.Game], error) {
	table, err := kind.table()
	if err != nil {
		return nil, err
	}

	inList := func(db *gorm.DB) *gorm.DB {
		return db.Joins(fmt.Sprintf("JOIN %s ON %s.game_id = games.id", table, table)).
			Where(table+".player_id = ?", playerID)
	}
	fetch := func(db *gorm.DB) *gorm.DB {
		return db.Preload("Genre").Preload("Publisher").Order("games.title ASC, games.id ASC")
	}

	page, err := pagination.Paginate[models.Game](ctx, s.db, req, inList, fetch)
	if err != nil {
		return nil, apperr.Internal("failed to list "+kind.String(), err)
	}
	return page, nil
}

// PersonalPage holds both lists of a player, paginated independently.
type PersonalPage struct {
	Wishlist             *pagination.Page[models.Game] `json:"wishlist"`
	Completed            *pagination.Page[models.Game] `json:"completed"`
	WishlistIsPaginated  bool                          `json:"wishlist_is_paginated"`
	CompletedIsPaginated bool                          `json:"completed_is_paginated"`
}

func (s *Service) PersonalPage(ctx context.Context, playerID uint, wishlistPage, completedPage, pageSize int) (*PersonalPage, error) {
	wishlist, err := s.List(ctx, playerID, Wishlist, pagination.Request{Page: wishlistPage, PageSize: pageSize})
	if err != nil {
		return nil, err
	}
	completed, err := s.List(ctx, playerID, Completed, pagination.Request{Page: completedPage, PageSize: pageSize})
	if err != nil {
		return nil, err
	}

	return &PersonalPage{
		Wishlist:             wishlist,
		Completed:            completed,
		WishlistIsPaginated:  wishlist.IsPaginated(),
		CompletedIsPaginated: completed.IsPaginated(),
	}, nil
}
