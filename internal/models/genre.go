package models

import (
	"strings"

	"gamehub/backend/internal/apperr"
)

// Genre groups games, e.g. "RPG" or "Strategy".
type Genre struct {
	Model
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text;uniqueIndex;not null" json:"description"`
	Image       string `gorm:"size:255" json:"image,omitempty"`
}

func (g *Genre) Validate() error {
	switch {
	case strings.TrimSpace(g.Name) == "":
		return apperr.Validation("name", "name is required")
	case len(g.Name) > 100:
		return apperr.Validation("name", "name must be at most 100 characters")
	case strings.TrimSpace(g.Description) == "":
		return apperr.Validation("description", "description is required")
	}
	return nil
}

func (g *Genre) UniqueFields() []UniqueField {
	return []UniqueField{
		{Column: "name", Value: g.Name},
		{Column: "description", Value: g.Description},
	}
}

// RestrictedBy reports games.genre_id: a genre with games cannot be deleted.
func (g *Genre) RestrictedBy() []Reference {
	return []Reference{{Table: "games", Column: "genre_id"}}
}
