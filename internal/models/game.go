package models

import (
	"net/url"
	"strings"

	"gamehub/backend/internal/apperr"
)

// Game represents a catalog entry for one video game title.
type Game struct {
	Model
	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Description string `gorm:"type:text;uniqueIndex;not null" json:"description"`
	ReleaseYear int    `gorm:"not null" json:"release_year"`
	Image       string `gorm:"size:255;not null" json:"image"`
	Link        string `gorm:"size:500;uniqueIndex;not null" json:"link"`

	GenreID     uint       `gorm:"not null;index" json:"genre_id"`
	Genre       *Genre     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"genre,omitempty"`
	PublisherID uint       `gorm:"not null;index" json:"publisher_id"`
	Publisher   *Publisher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"publisher,omitempty"`

	Platforms []*Platform `gorm:"many2many:game_platforms;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"platforms,omitempty"`
	// Owners and followers of the game.
	Players []*Player `gorm:"many2many:game_players;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (g *Game) Validate() error {
	switch {
	case strings.TrimSpace(g.Title) == "":
		return apperr.Validation("title", "title is required")
	case len(g.Title) > 100:
		return apperr.Validation("title", "title must be at most 100 characters")
	case strings.TrimSpace(g.Description) == "":
		return apperr.Validation("description", "description is required")
	case g.ReleaseYear <= 0:
		return apperr.Validation("release_year", "release year must be positive")
	case strings.TrimSpace(g.Image) == "":
		return apperr.Validation("image", "image is required")
	case g.GenreID == 0:
		return apperr.Validation("genre_id", "genre is required")
	case g.PublisherID == 0:
		return apperr.Validation("publisher_id", "publisher is required")
	}
	return validateLink(g.Link)
}

func (g *Game) UniqueFields() []UniqueField {
	return []UniqueField{
		{Column: "title", Value: g.Title},
		{Column: "description", Value: g.Description},
		{Column: "link", Value: g.Link},
	}
}

func validateLink(link string) error {
	if link == "" {
		return apperr.Validation("link", "link is required")
	}
	if len(link) > 500 {
		return apperr.Validation("link", "link must be at most 500 characters")
	}
	u, err := url.ParseRequestURI(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.Validation("link", "link must be an absolute http(s) URL")
	}
	return nil
}
