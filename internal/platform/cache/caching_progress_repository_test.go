package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning_backend/internal/feature/progress/domain/entity"
)

// mockProgressRepository is a func-field mock of usecase.ProgressRepository.
type mockProgressRepository struct {
	findByUserFn          func(ctx context.Context, userID uint) ([]entity.Progress, error)
	findByUserAndModuleFn func(ctx context.Context, userID, moduleID uint) (*entity.Progress, error)
	updateFn              func(ctx context.Context, p *entity.Progress) error
	countModulesFn        func(ctx context.Context, userID uint) (int64, int64, error)
}

func (m *mockProgressRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Progress, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProgressRepository) FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*entity.Progress, error) {
	if m.findByUserAndModuleFn != nil {
		return m.findByUserAndModuleFn(ctx, userID, moduleID)
	}
	return nil, nil
}

func (m *mockProgressRepository) Update(ctx context.Context, p *entity.Progress) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil
}

func (m *mockProgressRepository) CountModules(ctx context.Context, userID uint) (int64, int64, error) {
	if m.countModulesFn != nil {
		return m.countModulesFn(ctx, userID)
	}
	return 0, 0, nil
}

func countsJSON(t *testing.T, total, completed int64) []byte {
	t.Helper()
	b, err := json.Marshal(moduleCounts{Total: total, Completed: completed})
	require.NoError(t, err)
	return b
}

func TestNewCachingProgressRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", DefaultSummaryTTL, "progress:summary"},
		{"negative ttl uses default", -time.Minute, "", DefaultSummaryTTL, "progress:summary"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingProgressRepository(nil, tt.ttl, &mockProgressRepository{}, tt.namespace)

			assert.Equal(t, tt.expectedTTL, repo.ttl)
			assert.Equal(t, tt.expectedNamespace, repo.namespace)
		})
	}
}

func TestCachingProgressRepository_CountModules_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockProgressRepository{countModulesFn: func(ctx context.Context, userID uint) (int64, int64, error) {
		return 4, 1, nil
	}}
	repo := NewCachingProgressRepository(nil, time.Minute, inner, "")

	total, completed, err := repo.CountModules(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, int64(1), completed)
}

func TestCachingProgressRepository_CountModules_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("progress:summary:7").SetVal(string(countsJSON(t, 4, 1)))

	inner := &mockProgressRepository{countModulesFn: func(ctx context.Context, userID uint) (int64, int64, error) {
		t.Error("inner repository must not be called on a cache hit")
		return 0, 0, nil
	}}
	repo := NewCachingProgressRepository(rdb, 5*time.Minute, inner, "")

	total, completed, err := repo.CountModules(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, int64(1), completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingProgressRepository_CountModules_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("progress:summary:7").RedisNil()
	mock.ExpectSet("progress:summary:7", countsJSON(t, 3, 2), 5*time.Minute).SetVal("OK")

	inner := &mockProgressRepository{countModulesFn: func(ctx context.Context, userID uint) (int64, int64, error) {
		return 3, 2, nil
	}}
	repo := NewCachingProgressRepository(rdb, 5*time.Minute, inner, "")

	total, completed, err := repo.CountModules(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(2), completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingProgressRepository_CountModules_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("progress:summary:7").SetVal("invalid json")
	mock.ExpectDel("progress:summary:7").SetVal(1)
	mock.ExpectSet("progress:summary:7", countsJSON(t, 1, 0), 5*time.Minute).SetVal("OK")

	inner := &mockProgressRepository{countModulesFn: func(ctx context.Context, userID uint) (int64, int64, error) {
		return 1, 0, nil
	}}
	repo := NewCachingProgressRepository(rdb, 5*time.Minute, inner, "")

	_, _, err := repo.CountModules(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingProgressRepository_CountModules_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("progress:summary:7").RedisNil()

	wantErr := errors.New("db down")
	inner := &mockProgressRepository{countModulesFn: func(ctx context.Context, userID uint) (int64, int64, error) {
		return 0, 0, wantErr
	}}
	repo := NewCachingProgressRepository(rdb, 5*time.Minute, inner, "")

	_, _, err := repo.CountModules(context.Background(), 7)

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet(), "nothing is cached on failure")
}

func TestCachingProgressRepository_Update(t *testing.T) {
	t.Parallel()

	t.Run("invalidates on success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectDel("progress:summary:7").SetVal(1)
		repo := NewCachingProgressRepository(rdb, time.Minute, &mockProgressRepository{}, "")

		err := repo.Update(context.Background(), &entity.Progress{UserID: 7, ModuleID: 1})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalidation error does not fail the write", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		mock.ExpectDel("progress:summary:7").SetErr(errors.New("i/o timeout"))
		called := false
		inner := &mockProgressRepository{updateFn: func(ctx context.Context, p *entity.Progress) error {
			called = true
			return nil
		}}
		repo := NewCachingProgressRepository(rdb, time.Minute, inner, "")

		err := repo.Update(context.Background(), &entity.Progress{UserID: 7, ModuleID: 1})

		require.NoError(t, err)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps cache on failure", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		defer func() { _ = rdb.Close() }()

		wantErr := errors.New("not found")
		inner := &mockProgressRepository{updateFn: func(ctx context.Context, p *entity.Progress) error {
			return wantErr
		}}
		repo := NewCachingProgressRepository(rdb, time.Minute, inner, "")

		err := repo.Update(context.Background(), &entity.Progress{UserID: 7})

		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// countingRepository counts CountModules calls and serves fixed numbers.
type countingRepository struct {
	mockProgressRepository
	calls     int
	completed int64
}

func (r *countingRepository) CountModules(ctx context.Context, userID uint) (int64, int64, error) {
	r.calls++
	return 4, r.completed, nil
}

func TestCachingProgressRepository_WithMiniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	inner := &countingRepository{completed: 1}
	repo := NewCachingProgressRepository(client, time.Minute, inner, "")
	ctx := context.Background()

	_, completed, err := repo.CountModules(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), completed)

	_, _, err = repo.CountModules(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "second read is served from cache")
	assert.True(t, mr.Exists("progress:summary:7"))
	assert.Equal(t, time.Minute, mr.TTL("progress:summary:7"))

	inner.completed = 2
	require.NoError(t, repo.Update(ctx, &entity.Progress{UserID: 7, ModuleID: 2, IsCompleted: true}))
	assert.False(t, mr.Exists("progress:summary:7"))

	_, completed, err = repo.CountModules(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed)
	assert.Equal(t, 2, inner.calls)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("progress:summary:7"), "entry expires after ttl")
}

// provisionedRepository serves whatever counts the test has put in place.
type provisionedRepository struct {
	mockProgressRepository
	total, completed int64
}

func (r *provisionedRepository) CountModules(ctx context.Context, userID uint) (int64, int64, error) {
	return r.total, r.completed, nil
}

// Rows added outside the service become visible once the cached entry expires.
func TestCachingProgressRepository_StoreChangesAfterExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	inner := &provisionedRepository{total: 3, completed: 1}
	repo := NewCachingProgressRepository(client, 0, inner, "")
	ctx := context.Background()

	total, _, err := repo.CountModules(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	assert.Equal(t, DefaultSummaryTTL, mr.TTL("progress:summary:7"))

	inner.total = 4
	mr.FastForward(DefaultSummaryTTL + time.Second)

	total, completed, err := repo.CountModules(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total, "expired entry must not be served")
	assert.Equal(t, int64(1), completed)
}
