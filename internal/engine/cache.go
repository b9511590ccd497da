package engine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Candidate cache, 2-tier: L1 in-memory + optional L2 Redis. Caching resolved
// candidate lists lets play and download of a just-searched track skip the
// search API. Downloaded artifacts are never cached.
var candidateCache *tieredCache

var (
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
)

type tieredCache struct {
	l1         sync.Map      // key → *cacheEntry
	rdb        *redis.Client // nil if Redis unavailable
	ttl        time.Duration
	maxEntries int
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// InitCache sets up the candidate cache. Call after Init. redisURL can be
// empty to run L1-only.
func InitCache(redisURL string, ttl time.Duration, maxEntries int) {
	c := &tieredCache{ttl: ttl, maxEntries: maxEntries}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	candidateCache = c
	slog.Info("cache: initialized", slog.Duration("ttl", ttl), slog.Bool("redis", c.rdb != nil), slog.Int("max_entries", maxEntries))
}

// CacheKey builds a deterministic cache key from parts.
func CacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("gm:%x", hash[:12])
}

// CacheGet tries L1, then L2. On L2 hit, populates L1.
func CacheGet(ctx context.Context, key string) ([]Candidate, bool) {
	if candidateCache == nil {
		cacheMisses.Add(1)
		return nil, false
	}

	if val, ok := candidateCache.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			var out []Candidate
			if json.Unmarshal(entry.data, &out) == nil {
				cacheHits.Add(1)
				return out, true
			}
		}
		candidateCache.l1.Delete(key) // expired or corrupt
	}

	if candidateCache.rdb != nil {
		data, err := candidateCache.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var out []Candidate
			if json.Unmarshal(data, &out) == nil {
				cacheHits.Add(1)
				candidateCache.l1.Store(key, &cacheEntry{
					data:      data,
					expiresAt: time.Now().Add(candidateCache.ttl),
				})
				return out, true
			}
		}
	}

	cacheMisses.Add(1)
	return nil, false
}

// CacheSet stores candidates in both tiers.
func CacheSet(ctx context.Context, key string, candidates []Candidate) {
	if candidateCache == nil {
		return
	}
	data, err := json.Marshal(candidates)
	if err != nil {
		return
	}

	candidateCache.evictIfNeeded()
	candidateCache.l1.Store(key, &cacheEntry{
		data:      data,
		expiresAt: time.Now().Add(candidateCache.ttl),
	})
	if candidateCache.rdb != nil {
		if err := candidateCache.rdb.Set(ctx, key, data, candidateCache.ttl).Err(); err != nil {
			slog.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// CacheStats returns current hit/miss counters.
func CacheStats() (hits, misses int64) {
	return cacheHits.Load(), cacheMisses.Load()
}

// evictIfNeeded removes entries when L1 reaches maxEntries: expired entries
// first, then the entries closest to expiry until under the limit.
func (c *tieredCache) evictIfNeeded() {
	if c.maxEntries <= 0 {
		return
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count < c.maxEntries {
		return
	}

	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
			c.l1.Delete(key)
			count--
		}
		return count >= c.maxEntries
	})

	for count >= c.maxEntries {
		var oldestKey any
		oldestAt := now.Add(c.ttl + time.Hour)
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && entry.expiresAt.Before(oldestAt) {
				oldestKey = key
				oldestAt = entry.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		c.l1.Delete(oldestKey)
		count--
	}
}
