// Package session keeps the latest report status per session in Redis so
// clients that missed the push notification can still query it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/jsonutil"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/notify"
)

// ErrNotFound is returned when a session has no recorded status.
var ErrNotFound = errors.New("session: status not found")

// Store persists the most recent status event per session with a TTL.
// Generation never depends on it: write failures are logged by callers
// and otherwise ignored.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewStore wires a session store. ttl of zero defaults to 24h.
func NewStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, ttl: ttl, logger: logger}
}

func key(sessionID string) string {
	return "report:status:" + sessionID
}

// Put records ev as the latest status for its session.
func (s *Store) Put(ctx context.Context, ev notify.Event) error {
	data, err := jsonutil.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}
	if err := s.client.Set(ctx, key(ev.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store status: %w", err)
	}
	return nil
}

// Get returns the latest status recorded for a session.
func (s *Store) Get(ctx context.Context, sessionID string) (notify.Event, error) {
	var ev notify.Event
	data, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ev, ErrNotFound
	}
	if err != nil {
		return ev, fmt.Errorf("load status: %w", err)
	}
	if err := jsonutil.Unmarshal(data, &ev); err != nil {
		return ev, fmt.Errorf("decode status: %w", err)
	}
	return ev, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
