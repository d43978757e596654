package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *RedisVisitStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisVisitStore(client, time.Hour)
}

func TestRedisVisitStore(t *testing.T) {
	mr, store := newStore(t)
	ctx := context.Background()
	id := NewID()

	visits, err := store.Visits(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, visits, "unknown session reads as zero")

	require.NoError(t, store.SaveVisits(ctx, id, 3))

	visits, err = store.Visits(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), visits)

	key := "gamehub:session:" + id + ":visits"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	mr.FastForward(2 * time.Hour)
	visits, err = store.Visits(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, visits, "expired session starts over")
}

func TestRedisVisitStore_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisVisitStore(client, time.Hour)
	mr.Close()

	_, err = store.Visits(context.Background(), NewID())
	assert.Error(t, err)
}

func TestRedisVisitStore_Corrupt(t *testing.T) {
	mr, store := newStore(t)
	id := NewID()
	require.NoError(t, mr.Set(visitsKey(id), "many"))

	_, err := store.Visits(context.Background(), id)
	assert.Error(t, err)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("../../etc/passwd"))
}

func TestVisitStoreProperties(t *testing.T) {
	_, store := newStore(t)
	properties := gopter.NewProperties(nil)

	properties.Property("saved counters read back unchanged", prop.ForAll(
		func(visits int64) bool {
			id := NewID()
			if err := store.SaveVisits(context.Background(), id, visits); err != nil {
				return false
			}
			loaded, err := store.Visits(context.Background(), id)
			return err == nil && loaded == visits
		},
		gen.Int64Range(0, 1<<40),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
