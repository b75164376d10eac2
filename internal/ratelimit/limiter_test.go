package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T) (*RedisLimiter, *time.Time) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := time.UnixMilli(1_700_000_000_000)
	l := NewRedisLimiter(client, "test:")
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestRedisLimiterSlidingWindow(t *testing.T) {
	l, clock := newTestLimiter(t)
	ctx := context.Background()
	start := *clock
	window := 10 * time.Second

	for i, wantRemaining := range []int{2, 1, 0} {
		*clock = start.Add(time.Duration(i) * time.Second)
		res, err := l.Allow(ctx, "contact:10.0.0.1", 3, window)
		if err != nil {
			t.Fatalf("request %d: unexpected error: %v", i+1, err)
		}
		if !res.Allowed || res.Remaining != wantRemaining || res.Limit != 3 {
			t.Fatalf("request %d: unexpected result %+v", i+1, res)
		}
	}

	*clock = start.Add(3 * time.Second)
	res, err := l.Allow(ctx, "contact:10.0.0.1", 3, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed || res.Remaining != 0 {
		t.Fatalf("expected fourth request to be rejected, got %+v", res)
	}
	if want := start.Add(window); !res.ResetAt.Equal(want) {
		t.Fatalf("expected reset at %v, got %v", want, res.ResetAt)
	}

	*clock = start.Add(window)
	res, err = l.Allow(ctx, "contact:10.0.0.1", 3, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Allowed || res.Remaining != 0 {
		t.Fatalf("expected a slot once the oldest request left the window, got %+v", res)
	}
}

func TestRedisLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	if res, err := l.Allow(ctx, "contact:10.0.0.1", 1, time.Minute); err != nil || !res.Allowed {
		t.Fatalf("expected first client to be admitted, got %+v, %v", res, err)
	}
	if res, err := l.Allow(ctx, "contact:10.0.0.1", 1, time.Minute); err != nil || res.Allowed {
		t.Fatalf("expected first client to be limited, got %+v, %v", res, err)
	}
	if res, err := l.Allow(ctx, "contact:10.0.0.2", 1, time.Minute); err != nil || !res.Allowed {
		t.Fatalf("expected second client to be admitted, got %+v, %v", res, err)
	}
}
