package books

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Request-scoped cache guard for the read-mostly aggregate endpoints
// (stats, filter options): no PINGs, warn once per request, fail open.
type Cache struct {
	rdb     *redis.Client
	enabled bool
	warned  bool
	prefix  string
	ttl     time.Duration
	shortTO time.Duration
}

// versionKey is a global counter bumped after every successful write; it
// versions the key prefix so stale aggregates simply stop being addressed.
const versionKey = "bk:ver"

// NewCache builds a request-scoped cache wrapper. Prefix resolution:
//  1. BOOKS_CACHE_PREFIX, when set, wins (manual control).
//  2. "bk:v{ver}:" where ver comes from bk:ver (default 1 on miss).
//
// A Redis read failure fails open to "bk:v1:".
func NewCache(rdb *redis.Client) *Cache {
	if rdb == nil || os.Getenv("BOOKS_DISABLE_CACHE") == "1" {
		return &Cache{enabled: false}
	}

	ttl := 10 * time.Minute
	if v := os.Getenv("BOOKS_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	shortTO := 150 * time.Millisecond
	if v := os.Getenv("BOOKS_CACHE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			shortTO = time.Duration(ms) * time.Millisecond
		}
	}

	if p := os.Getenv("BOOKS_CACHE_PREFIX"); p != "" {
		return &Cache{rdb: rdb, enabled: true, prefix: p, ttl: ttl, shortTO: shortTO}
	}

	prefix := "bk:v1:"
	{
		ctx, cancel := context.WithTimeout(context.Background(), shortTO)
		defer cancel()
		ver, err := rdb.Get(ctx, versionKey).Int64()
		if err != nil {
			ver = 1
		}
		prefix = fmt.Sprintf("bk:v%d:", ver)
	}

	return &Cache{rdb: rdb, enabled: true, prefix: prefix, ttl: ttl, shortTO: shortTO}
}

// Get returns the cached payload for a block ("stats", "filters"), or
// (nil, false) on miss, disabled cache, or error.
func (c *Cache) Get(ctx context.Context, block string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}
	var cancel context.CancelFunc
	ctx, cancel = context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	b, err := c.rdb.Get(ctx, c.prefix+block).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.warnOnce("cache get failed: %v; bypassing cache for this request", err)
		return nil, false
	}
	return b, true
}

// Set stores a payload under the current version prefix. Best effort.
func (c *Cache) Set(ctx context.Context, block string, payload []byte) {
	if !c.enabled {
		return
	}
	var cancel context.CancelFunc
	ctx, cancel = context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	if err := c.rdb.SetEx(ctx, c.prefix+block, payload, c.ttl).Err(); err != nil {
		c.warnOnce("cache set failed: %v (muted next)", err)
	}
}

func (c *Cache) warnOnce(format string, args ...any) {
	if c.warned {
		return
	}
	c.warned = true
	log.Printf("[books][cache] "+format, args...)
}

// BumpVersion increments bk:ver. Call it AFTER a successful mutation so the
// aggregate caches stop serving pre-write values. Safe no-op on nil client.
func BumpVersion(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()
	if _, err := rdb.Incr(cctx, versionKey).Result(); err != nil {
		return fmt.Errorf("bump version failed: %w", err)
	}
	return nil
}
