package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewFixedWindowLimiter(client), srv
}

func TestFixedWindowLimiter_AllowsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 3, time.Minute)
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 3, time.Minute)
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if allowed {
			t.Fatalf("request over the limit should be denied")
		}
	}
}

func TestFixedWindowLimiter_FirstHitSetsExpiry(t *testing.T) {
	limiter, srv := newTestLimiter(t)

	if _, err := limiter.Allow(context.Background(), "login:1.2.3.4", 5, time.Minute); err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}

	if ttl := srv.TTL("ratelimit:login:1.2.3.4"); ttl != time.Minute {
		t.Fatalf("expected window expiry on first hit, got %v", ttl)
	}
}

func TestFixedWindowLimiter_WindowExpiryResets(t *testing.T) {
	limiter, srv := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := limiter.Allow(ctx, "login:1.2.3.4", 2, time.Minute); err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
	}
	if allowed, _ := limiter.Allow(ctx, "login:1.2.3.4", 2, time.Minute); allowed {
		t.Fatalf("expected denial once the window is full")
	}

	srv.FastForward(time.Minute + time.Second)

	allowed, err := limiter.Allow(ctx, "login:1.2.3.4", 2, time.Minute)
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if !allowed {
		t.Fatalf("counter must reset after the window passes")
	}
}

func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "login:1.2.3.4", 1, time.Minute); !allowed {
		t.Fatalf("first caller should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "login:1.2.3.4", 1, time.Minute); allowed {
		t.Fatalf("first caller should now be over the limit")
	}
	if allowed, _ := limiter.Allow(ctx, "login:5.6.7.8", 1, time.Minute); !allowed {
		t.Fatalf("a different caller must not share the window")
	}
}
