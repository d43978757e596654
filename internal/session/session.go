// Package session keeps per-browser state that outlives a single request.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie that carries the session id.
const CookieName = "gamehub_session"

// VisitStore persists the landing page visit counter of a session.
type VisitStore interface {
	// Visits returns the stored counter, 0 for an unknown session.
	Visits(ctx context.Context, sessionID string) (int64, error)
	SaveVisits(ctx context.Context, sessionID string, visits int64) error
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// RedisVisitStore implements VisitStore using Redis. Keys expire after ttl,
// refreshed on every save.
type RedisVisitStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVisitStore(client *redis.Client, ttl time.Duration) *RedisVisitStore {
	return &RedisVisitStore{client: client, ttl: ttl}
}

func visitsKey(sessionID string) string {
	return fmt.Sprintf("gamehub:session:%s:visits", sessionID)
}

func (s *RedisVisitStore) Visits(ctx context.Context, sessionID string) (int64, error) {
	n, err := s.client.Get(ctx, visitsKey(sessionID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (s *RedisVisitStore) SaveVisits(ctx context.Context, sessionID string, visits int64) error {
	return s.client.Set(ctx, visitsKey(sessionID), visits, s.ttl).Err()
}
