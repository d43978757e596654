package models

import (
	"testing"
	"time"

	"gamehub/backend/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPlayer_Age(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  *time.Time
		want *int
	}{
		{name: "no birth date", dob: nil, want: nil},
		{name: "birthday already passed", dob: date(2000, time.January, 10), want: intPtr(24)},
		{name: "birthday today", dob: date(2000, time.June, 15), want: intPtr(24)},
		{name: "birthday later this month", dob: date(2000, time.June, 16), want: intPtr(23)},
		{name: "birthday later this year", dob: date(2000, time.December, 1), want: intPtr(23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{DateOfBirth: tt.dob}
			assert.Equal(t, tt.want, p.Age(now))
		})
	}
}

func intPtr(v int) *int { return &v }

func validGame() Game {
	return Game{
		Title:       "Hollow Knight",
		Description: "Metroidvania in a ruined kingdom",
		ReleaseYear: 2017,
		Image:       "game_images/hollow.png",
		Link:        "https://example.com/hollow-knight",
		GenreID:     1,
		PublisherID: 1,
	}
}

func TestGame_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(g *Game)
		wantField string
	}{
		{name: "valid", mutate: func(g *Game) {}},
		{name: "blank title", mutate: func(g *Game) { g.Title = "  " }, wantField: "title"},
		{name: "missing description", mutate: func(g *Game) { g.Description = "" }, wantField: "description"},
		{name: "zero release year", mutate: func(g *Game) { g.ReleaseYear = 0 }, wantField: "release_year"},
		{name: "missing image", mutate: func(g *Game) { g.Image = "" }, wantField: "image"},
		{name: "missing genre", mutate: func(g *Game) { g.GenreID = 0 }, wantField: "genre_id"},
		{name: "missing publisher", mutate: func(g *Game) { g.PublisherID = 0 }, wantField: "publisher_id"},
		{name: "relative link", mutate: func(g *Game) { g.Link = "/games/1" }, wantField: "link"},
		{name: "ftp link", mutate: func(g *Game) { g.Link = "ftp://example.com/game" }, wantField: "link"},
		{name: "missing link", mutate: func(g *Game) { g.Link = "" }, wantField: "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGame()
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestPublisher_Validate(t *testing.T) {
	base := Publisher{Name: "Team Cherry", Description: "Indie studio", Country: "Australia"}

	tests := []struct {
		name           string
		capitalization decimal.Decimal
		wantErr        bool
	}{
		{name: "zero", capitalization: decimal.Zero},
		{name: "two decimals", capitalization: decimal.RequireFromString("999.99")},
		{name: "negative", capitalization: decimal.RequireFromString("-0.01"), wantErr: true},
		{name: "too large", capitalization: decimal.NewFromInt(1000), wantErr: true},
		{name: "three decimals", capitalization: decimal.RequireFromString("1.005"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.Capitalization = tt.capitalization
			err := p.Validate()
			if tt.wantErr {
				assert.True(t, apperr.Is(err, apperr.KindValidation))
				return
			}
			assert.NoError(t, err)
		})
	}

	missingCountry := base
	missingCountry.Country = ""
	assert.True(t, apperr.Is(missingCountry.Validate(), apperr.KindValidation))
}

func TestGenreAndPlatform_Validate(t *testing.T) {
	assert.NoError(t, (&Genre{Name: "RPG", Description: "Role playing"}).Validate())
	assert.True(t, apperr.Is((&Genre{Name: "RPG"}).Validate(), apperr.KindValidation))

	assert.NoError(t, (&Platform{Name: "PC"}).Validate())
	assert.True(t, apperr.Is((&Platform{Name: ""}).Validate(), apperr.KindValidation))
}

func TestUniqueFields(t *testing.T) {
	g := validGame()
	cols := []string{}
	for _, f := range g.UniqueFields() {
		cols = append(cols, f.Column)
	}
	assert.Equal(t, []string{"title", "description", "link"}, cols)
}
