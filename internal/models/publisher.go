package models

import (
	"strings"

	"gamehub/backend/internal/apperr"

	"github.com/shopspring/decimal"
)

var maxCapitalization = decimal.NewFromInt(1000)

// Publisher releases games. Capitalization is stored as decimal(5,2).
type Publisher struct {
	Model
	Name           string          `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description    string          `gorm:"type:text;uniqueIndex;not null" json:"description"`
	Country        string          `gorm:"size:100;not null;index" json:"country"`
	Capitalization decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"capitalization"`
	Image          string          `gorm:"size:255" json:"image,omitempty"`
}

func (p *Publisher) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return apperr.Validation("name", "name is required")
	case len(p.Name) > 100:
		return apperr.Validation("name", "name must be at most 100 characters")
	case strings.TrimSpace(p.Description) == "":
		return apperr.Validation("description", "description is required")
	case strings.TrimSpace(p.Country) == "":
		return apperr.Validation("country", "country is required")
	case p.Capitalization.IsNegative() || p.Capitalization.GreaterThanOrEqual(maxCapitalization):
		return apperr.Validation("capitalization", "capitalization must be between 0 and 999.99")
	case !p.Capitalization.Equal(p.Capitalization.Round(2)):
		return apperr.Validation("capitalization", "capitalization allows at most 2 decimal places")
	}
	return nil
}

func (p *Publisher) UniqueFields() []UniqueField {
	return []UniqueField{
		{Column: "name", Value: p.Name},
		{Column: "description", Value: p.Description},
	}
}
