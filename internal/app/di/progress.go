package di

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	progressadapters "learning_backend/internal/feature/progress/adapters"
	"learning_backend/internal/feature/progress/usecase"
	"learning_backend/internal/platform/cache"
)

// NewProgressRepository creates a ProgressRepository implementation.
// If Redis is available, the SQL store is wrapped with a summary cache.
func NewProgressRepository(rdb *redis.Client, db *sqlx.DB, ttl time.Duration) usecase.ProgressRepository {
	store := progressadapters.NewProgressSQLX(db)
	if rdb != nil {
		return cache.NewCachingProgressRepository(rdb, ttl, store, "")
	}
	return store
}
