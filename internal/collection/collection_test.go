package collection

import (
	"context"
	"fmt"
	"testing"

	"gamehub/backend/internal/apperr"
	"gamehub/backend/internal/database/dbtest"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/metrics"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/pagination"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T, games int) (*gorm.DB, *Service, *models.Player, []*models.Game) {
	t.Helper()
	db := dbtest.New(t)
	genre := dbtest.Genre(t, db, "Puzzle")
	publisher := dbtest.Publisher(t, db, "Zachtronics", "USA", "5")

	created := make([]*models.Game, 0, games)
	for i := 1; i <= games; i++ {
		created = append(created, dbtest.Game(t, db, fmt.Sprintf("Puzzle %02d", i), genre, publisher))
	}
	return db, NewService(db, logger.Nop()), dbtest.Player(t, db, "alice"), created
}

func TestToggle_AddsThenRemoves(t *testing.T) {
	_, svc, player, games := setup(t, 1)
	ctx := context.Background()
	game := games[0]

	for _, kind := range []ListKind{Wishlist, Completed} {
		t.Run(kind.String(), func(t *testing.T) {
			added, err := svc.Toggle(ctx, player.ID, game.ID, kind)
			require.NoError(t, err)
			assert.True(t, added)

			in, err := svc.Contains(ctx, player.ID, game.ID, kind)
			require.NoError(t, err)
			assert.True(t, in)

			stillIn, err := svc.Toggle(ctx, player.ID, game.ID, kind)
			require.NoError(t, err)
			assert.False(t, stillIn)

			in, err = svc.Contains(ctx, player.ID, game.ID, kind)
			require.NoError(t, err)
			assert.False(t, in)
		})
	}
}

func TestToggle_ListsAreIndependent(t *testing.T) {
	_, svc, player, games := setup(t, 1)
	ctx := context.Background()

	added, err := svc.ToggleWishlist(ctx, player.ID, games[0].ID)
	require.NoError(t, err)
	require.True(t, added)

	completed, err := svc.Contains(ctx, player.ID, games[0].ID, Completed)
	require.NoError(t, err)
	assert.False(t, completed)

	added, err = svc.ToggleCompleted(ctx, player.ID, games[0].ID)
	require.NoError(t, err)
	assert.True(t, added)

	wishlisted, err := svc.Contains(ctx, player.ID, games[0].ID, Wishlist)
	require.NoError(t, err)
	assert.True(t, wishlisted)
}

func TestToggle_Errors(t *testing.T) {
	_, svc, player, games := setup(t, 1)
	ctx := context.Background()

	_, err := svc.ToggleWishlist(ctx, player.ID, 999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.ToggleCompleted(ctx, 999, games[0].ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.Toggle(ctx, player.ID, games[0].ID, ListKind(7))
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestToggle_CountsToggles(t *testing.T) {
	_, svc, player, games := setup(t, 1)
	added := metrics.ListTogglesTotal.WithLabelValues("wishlist", "added")
	removed := metrics.ListTogglesTotal.WithLabelValues("wishlist", "removed")
	addedBefore, removedBefore := testutil.ToFloat64(added), testutil.ToFloat64(removed)

	_, err := svc.ToggleWishlist(context.Background(), player.ID, games[0].ID)
	require.NoError(t, err)
	_, err = svc.ToggleWishlist(context.Background(), player.ID, games[0].ID)
	require.NoError(t, err)

	assert.Equal(t, addedBefore+1, testutil.ToFloat64(added))
	assert.Equal(t, removedBefore+1, testutil.ToFloat64(removed))
}

func TestDeletingGameRemovesEntries(t *testing.T) {
	db, svc, player, games := setup(t, 1)
	ctx := context.Background()

	_, err := svc.ToggleWishlist(ctx, player.ID, games[0].ID)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.Game{}, games[0].ID).Error)

	var n int64
	db.Model(&models.WishlistEntry{}).Count(&n)
	assert.Zero(t, n)
}

func TestPersonalPage(t *testing.T) {
	_, svc, player, games := setup(t, 7)
	ctx := context.Background()

	for _, g := range games {
		_, err := svc.ToggleWishlist(ctx, player.ID, g.ID)
		require.NoError(t, err)
	}
	_, err := svc.ToggleCompleted(ctx, player.ID, games[2].ID)
	require.NoError(t, err)

	page, err := svc.PersonalPage(ctx, player.ID, 2, 1, 5)
	require.NoError(t, err)

	assert.True(t, page.WishlistIsPaginated)
	assert.Equal(t, 2, page.Wishlist.Number)
	require.Len(t, page.Wishlist.Items, 2)
	assert.Equal(t, "Puzzle 06", page.Wishlist.Items[0].Title)
	assert.Equal(t, int64(7), page.Wishlist.TotalItems)

	assert.False(t, page.CompletedIsPaginated)
	require.Len(t, page.Completed.Items, 1)
	assert.Equal(t, "Puzzle 03", page.Completed.Items[0].Title)

	outOfRange, err := svc.PersonalPage(ctx, player.ID, 40, -1, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, outOfRange.Wishlist.Number)
	assert.Equal(t, 1, outOfRange.Completed.Number)
}

func TestListIsPerPlayer(t *testing.T) {
	db, svc, alice, games := setup(t, 2)
	bob := dbtest.Player(t, db, "bob")
	ctx := context.Background()

	_, err := svc.ToggleWishlist(ctx, alice.ID, games[0].ID)
	require.NoError(t, err)

	page, err := svc.List(ctx, bob.ID, Wishlist, defaultRequest())
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func defaultRequest() pagination.Request {
	return pagination.Request{Page: 1, PageSize: 5}
}
