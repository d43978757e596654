package catalog

import (
	"context"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"gorm.io/gorm"
)

type PublisherFilter struct {
	Country  string
	Ordering string
}

var publisherOrderings = map[string]string{
	"name":            "publishers.name ASC",
	"-name":           "publishers.name DESC",
	"country":         "publishers.country ASC",
	"-country":        "publishers.country DESC",
	"capitalization":  "publishers.capitalization ASC",
	"-capitalization": "publishers.capitalization DESC",
}

func publisherOrder(ordering string) string {
	order, ok := publisherOrderings[ordering]
	if !ok {
		order = publisherOrderings["capitalization"]
	}
	return order + ", publishers.id ASC"
}

func (f PublisherFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Country != "" {
		db = db.Where("publishers.country = ?", f.Country)
	}
	return db
}

func (s *Service) SearchPublishers(ctx context.Context, filter PublisherFilter) ([]models.Publisher, error) {
	defer observe("search_publishers")()

	publishers := []models.Publisher{}
	err := s.db.WithContext(ctx).Scopes(filter.scope).Order(publisherOrder(filter.Ordering)).Find(&publishers).Error
	if err != nil {
		return nil, apperr.Internal("failed to search publishers", err)
	}
	return publishers, nil
}

func (s *Service) SearchPublishersPage(ctx context.Context, filter PublisherFilter, req pagination.Request) (*pagination.Page[models.Publisher], error) {
	defer observe("search_publishers")()

	order := publisherOrder(filter.Ordering)
	page, err := pagination.Paginate[models.Publisher](ctx, s.db, req, filter.scope, func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	})
	if err != nil {
		return nil, apperr.Internal("failed to search publishers", err)
	}
	return page, nil
}

// DistinctCountries lists every publisher country once, alphabetically.
func (s *Service) DistinctCountries(ctx context.Context) ([]string, error) {
	countries := []string{}
	err := s.db.WithContext(ctx).Model(&models.Publisher{}).
		Distinct("country").
		Order("country ASC").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, apperr.Internal("failed to list countries", err)
	}
	return countries, nil
}

func (s *Service) GetPublisher(ctx context.Context, id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := s.db.WithContext(ctx).First(&publisher, id).Error; err != nil {
		return nil, apperr.FromDB(err, "publisher", id)
	}
	return &publisher, nil
}
