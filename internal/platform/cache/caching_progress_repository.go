// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"learning_backend/internal/feature/progress/domain/entity"
	"learning_backend/internal/feature/progress/usecase"
)

// CachingProgressRepository decorates a ProgressRepository with a Redis cache of module counts.
// Row reads always go to the store; only CountModules is cached, and Update invalidates it.
// Rows provisioned outside this service are not seen until the entry expires, so ttl bounds
// how stale a summary can be.
type CachingProgressRepository struct {
	inner     usecase.ProgressRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProgressRepository = (*CachingProgressRepository)(nil)

// DefaultSummaryTTL keeps cached counts short-lived.
const DefaultSummaryTTL = 30 * time.Second

// moduleCounts is the cached value of CountModules.
type moduleCounts struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
}

// NewCachingProgressRepository decorates inner with Redis caching.
// If ttl is 0, it uses DefaultSummaryTTL. If namespace is empty, it uses "progress:summary".
func NewCachingProgressRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProgressRepository, namespace string) *CachingProgressRepository {
	if ttl <= 0 {
		ttl = DefaultSummaryTTL
	}
	if namespace == "" {
		namespace = "progress:summary"
	}
	return &CachingProgressRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByUser passes through to the store.
func (c *CachingProgressRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Progress, error) {
	return c.inner.FindByUser(ctx, userID)
}

// FindByUserAndModule passes through to the store.
func (c *CachingProgressRepository) FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*entity.Progress, error) {
	return c.inner.FindByUserAndModule(ctx, userID, moduleID)
}

// Update writes through and drops the user's cached counts.
func (c *CachingProgressRepository) Update(ctx context.Context, p *entity.Progress) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	key := c.cacheKey(p.UserID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		// 書き込み自体は成功しているので失敗にはしない。エントリは ttl で切れる
		slog.Warn("summary cache invalidation failed", "error", err, "key", key, "ttl", c.ttl)
	}
	return nil
}

// CountModules checks the cache first, then falls back to the store.
func (c *CachingProgressRepository) CountModules(ctx context.Context, userID uint) (int64, int64, error) {
	if c.rdb == nil {
		return c.inner.CountModules(ctx, userID)
	}

	key := c.cacheKey(userID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var v moduleCounts
		if err := json.Unmarshal(b, &v); err == nil {
			return v.Total, v.Completed, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	total, completed, err := c.inner.CountModules(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	if b, err := json.Marshal(moduleCounts{Total: total, Completed: completed}); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("summary cache write failed", "error", err, "key", key)
		}
	}
	return total, completed, nil
}

func (c *CachingProgressRepository) cacheKey(userID uint) string {
	return c.namespace + ":" + strconv.FormatUint(uint64(userID), 10)
}
