// Package repository provides CRUD over catalog tables for the admin routes.
package repository

import (
	"context"
	"fmt"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Get(ctx context.Context, id uint, preloads ...string) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, req pagination.Request, order string) (*pagination.Page[T], error)
	All(ctx context.Context, order string) ([]T, error)
	ReplaceAssociation(ctx context.Context, entity *T, name string, values any) error
}

type identifiable interface {
	GetID() uint
}

type gormRepository[T any] struct {
	db           *gorm.DB
	entity       string
	defaultOrder string
	log          *logger.Logger
}

// New returns a Repository for T. entity names the table in error messages;
// defaultOrder is used when List or All get an empty order.
func New[T any](db *gorm.DB, entity, defaultOrder string, log *logger.Logger) Repository[T] {
	return &gormRepository[T]{
		db:           db,
		entity:       entity,
		defaultOrder: defaultOrder,
		log:          log.With(zap.String("repository", entity)),
	}
}

func NewGameRepository(db *gorm.DB, log *logger.Logger) Repository[models.Game] {
	return New[models.Game](db, "game", "title ASC, id ASC", log)
}

func NewGenreRepository(db *gorm.DB, log *logger.Logger) Repository[models.Genre] {
	return New[models.Genre](db, "genre", "name ASC, id ASC", log)
}

func NewPublisherRepository(db *gorm.DB, log *logger.Logger) Repository[models.Publisher] {
	return New[models.Publisher](db, "publisher", "capitalization ASC, id ASC", log)
}

func NewPlatformRepository(db *gorm.DB, log *logger.Logger) Repository[models.Platform] {
	return New[models.Platform](db, "platform", "name ASC, id ASC", log)
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := validate(entity); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.checkUnique(tx, entity, 0); err != nil {
			return err
		}
		return tx.Create(entity).Error
	})
	return r.translate(err, 0)
}

func (r *gormRepository[T]) Get(ctx context.Context, id uint, preloads ...string) (*T, error) {
	query := r.db.WithContext(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}

	entity := new(T)
	if err := query.First(entity, id).Error; err != nil {
		return nil, r.translate(err, id)
	}
	return entity, nil
}

// Update saves every column of an existing row. Callers load the row with Get
// and modify it, so timestamps survive. Associations are left untouched; use
// ReplaceAssociation for those.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	id := idOf(entity)
	if id == 0 {
		return apperr.Validation("id", fmt.Sprintf("%s id is required", r.entity))
	}
	if err := validate(entity); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(new(T), id).Error; err != nil {
			return err
		}
		if err := r.checkUnique(tx, entity, id); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(entity).Error
	})
	return r.translate(err, id)
}

// Delete removes the row and its many-to-many join rows. Other dependants are
// handled by the foreign key actions; a RESTRICT reference yields a conflict.
func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entity := new(T)
		if err := tx.First(entity, id).Error; err != nil {
			return err
		}
		if err := r.checkReferences(tx, entity, id); err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(entity).Error
	})
	return r.translate(err, id)
}

func (r *gormRepository[T]) List(ctx context.Context, req pagination.Request, order string) (*pagination.Page[T], error) {
	page, err := pagination.Paginate[T](ctx, r.db, req, nil, r.orderBy(order))
	if err != nil {
		return nil, r.translate(err, 0)
	}
	return page, nil
}

func (r *gormRepository[T]) All(ctx context.Context, order string) ([]T, error) {
	items := []T{}
	if err := r.db.WithContext(ctx).Scopes(r.orderBy(order)).Find(&items).Error; err != nil {
		return nil, r.translate(err, 0)
	}
	return items, nil
}

func (r *gormRepository[T]) ReplaceAssociation(ctx context.Context, entity *T, name string, values any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(entity).Association(name).Replace(values)
	})
	return r.translate(err, idOf(entity))
}

func (r *gormRepository[T]) orderBy(order string) pagination.Scope {
	if order == "" {
		order = r.defaultOrder
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}

// checkUnique reports the first unique column already used by another row.
func (r *gormRepository[T]) checkUnique(tx *gorm.DB, entity *T, excludeID uint) error {
	uf, ok := any(entity).(models.UniqueFielder)
	if !ok {
		return nil
	}

	for _, f := range uf.UniqueFields() {
		query := tx.Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict(f.Column, fmt.Sprintf("%s with this %s already exists", r.entity, f.Column))
		}
	}
	return nil
}

func (r *gormRepository[T]) checkReferences(tx *gorm.DB, entity *T, id uint) error {
	ref, ok := any(entity).(models.Referencer)
	if !ok {
		return nil
	}

	for _, rf := range ref.RestrictedBy() {
		var count int64
		err := tx.Table(rf.Table).Where(clause.Eq{Column: clause.Column{Name: rf.Column}, Value: id}).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("", fmt.Sprintf("%s %d is still referenced by %d %s", r.entity, id, count, rf.Table))
		}
	}
	return nil
}

func (r *gormRepository[T]) translate(err error, id uint) error {
	if err == nil {
		return nil
	}
	err = apperr.FromDB(err, r.entity, id)
	if apperr.Is(err, apperr.KindInternal) {
		r.log.Error("repository operation failed", err, zap.Uint("id", id))
	}
	return err
}

func validate(entity any) error {
	if v, ok := entity.(models.Validator); ok {
		return v.Validate()
	}
	return nil
}

func idOf(entity any) uint {
	if e, ok := entity.(identifiable); ok {
		return e.GetID()
	}
	return 0
}

