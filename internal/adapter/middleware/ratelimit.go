package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// CounterStore tracks request counts per key over a fixed window.
type CounterStore interface {
	// Incr bumps the counter for key, starting the window on first
	// hit, and reports the new count plus the time left in the window.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimit enforces a fixed-window per-IP limit. Requests with no
// determinable address share one bucket rather than bypassing the
// limit. A store failure lets the request through with a log line so a
// Redis outage cannot take the site down.
func RateLimit(store CounterStore, limit int, window time.Duration, name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := ClientIP(c.Request())
			if ip == "" {
				ip = "unknown"
			}
			key := fmt.Sprintf("ratelimit:%s:%s", name, ip)

			count, ttl, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				log.Printf("[RATELIMIT] store error for %s: %v", name, err)
				return next(c)
			}
			if count > int64(limit) {
				retryAfter := int(ttl.Round(time.Second).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":      "rate_limited",
					"message":    "Too many requests, please try again later.",
					"retryAfter": retryAfter,
				})
			}
			return next(c)
		}
	}
}

type memoryEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore is the single-process fallback used when Redis is
// not configured.
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{entries: make(map[string]*memoryEntry), now: time.Now}
}

func (s *MemoryCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &memoryEntry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt.Sub(now), nil
}

// RedisCounterStore shares windows across instances via INCR/EXPIRE.
type RedisCounterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
	}
	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl < 0 {
		// Key survived without an expiry (crash between INCR and
		// EXPIRE); re-arm it or the counter never resets.
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return count, ttl, nil
}
