package session

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestKeyFormat(t *testing.T) {
	t.Parallel()

	if got := key("sess-1"); got != "report:status:sess-1" {
		t.Errorf("key(%q) = %q", "sess-1", got)
	}
}

func TestNewStoreDefaultsTTL(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{})
	for _, ttl := range []time.Duration{0, -time.Hour} {
		s := NewStore(client, ttl, nil)
		if s.ttl != 24*time.Hour {
			t.Errorf("NewStore(ttl=%v).ttl = %v, want 24h", ttl, s.ttl)
		}
		if s.logger == nil {
			t.Error("nil logger not defaulted")
		}
	}
}

func TestNewStoreKeepsExplicitTTL(t *testing.T) {
	t.Parallel()

	s := NewStore(redis.NewClient(&redis.Options{}), time.Hour, nil)
	if s.ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", s.ttl)
	}
}
