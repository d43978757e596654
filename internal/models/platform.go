package models

import (
	"strings"

	"gamehub/backend/internal/apperr"
)

// Platform represents a platform a game runs on (e.g., "PC", "PS5", "Switch").
type Platform struct {
	Model
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (p *Platform) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return apperr.Validation("name", "name is required")
	}
	if len(name) > 50 {
		return apperr.Validation("name", "name must be at most 50 characters")
	}
	return nil
}

func (p *Platform) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "name", Value: p.Name}}
}
