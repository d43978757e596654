package dbtest

import (
	"fmt"
	"testing"

	"gamehub/backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Genre(t testing.TB, db *gorm.DB, name string) *models.Genre {
	t.Helper()
	g := &models.Genre{Name: name, Description: name + " games"}
	require.NoError(t, db.Create(g).Error)
	return g
}

func Publisher(t testing.TB, db *gorm.DB, name, country, capitalization string) *models.Publisher {
	t.Helper()
	p := &models.Publisher{
		Name:           name,
		Description:    name + " description",
		Country:        country,
		Capitalization: decimal.RequireFromString(capitalization),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func Game(t testing.TB, db *gorm.DB, title string, genre *models.Genre, publisher *models.Publisher) *models.Game {
	t.Helper()
	g := &models.Game{
		Title:       title,
		Description: "About " + title,
		ReleaseYear: 2020,
		Image:       "game_images/" + title + ".png",
		Link:        fmt.Sprintf("https://example.com/games/%s", slug(title)),
		GenreID:     genre.ID,
		PublisherID: publisher.ID,
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func Player(t testing.TB, db *gorm.DB, username string) *models.Player {
	t.Helper()
	p := &models.Player{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			r = '-'
		}
		out = append(out, r)
	}
	return string(out)
}
