package predictor

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-process-scheduler/backend/internal/scheduler"
)

// store is the slice of the redis client the cache uses, narrowed so tests
// can fake it.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
}

// CachedPredictor memoizes per-process predictions in redis. Keys cover only
// the fields that identify a process across cycles (pid, cpu, memory,
// priority); the synthetic feature fields change on every build and would
// defeat the cache. Cache trouble is never fatal: on any redis error the
// call falls through to the wrapped predictor, so a dead cache only costs
// latency.
type CachedPredictor struct {
	next scheduler.Predictor
	rdb  store
	ttl  time.Duration
}

func NewCachedPredictor(next scheduler.Predictor, rdb store, ttl time.Duration) *CachedPredictor {
	return &CachedPredictor{next: next, rdb: rdb, ttl: ttl}
}

func (c *CachedPredictor) Predict(ctx context.Context, p scheduler.Process) (float64, error) {
	key := cacheKey(p)
	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if v, perr := strconv.ParseFloat(cached, 64); perr == nil {
			return v, nil
		}
	}

	v, err := c.next.Predict(ctx, p)
	if err != nil {
		return 0, err
	}

	// Best effort; a write failure is not the caller's problem.
	c.rdb.Set(ctx, key, strconv.FormatFloat(v, 'f', -1, 64), c.ttl)
	return v, nil
}

func cacheKey(p scheduler.Process) string {
	raw := fmt.Sprintf("%d|%.2f|%.2f|%d", p.PID, p.CPUUsage, p.MemoryUsage, p.Priority)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("predict:%x", sum[:8])
}
