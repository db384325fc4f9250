package cachesnapshotrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	cacherepo "dochub/internal/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	mock.Mock
}

type mockResponse[T any] struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) cacherepo.CacheResponse[string] {
	args := m.Called(ctx, key)
	return args.Get(0).(cacherepo.CacheResponse[string])
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) cacherepo.CacheResponse[string] {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(cacherepo.CacheResponse[string])
}

func (m *mockCache) Del(ctx context.Context, keys ...string) cacherepo.CacheResponse[int64] {
	args := m.Called(ctx, keys)
	return args.Get(0).(cacherepo.CacheResponse[int64])
}

func (r *mockResponse[T]) Err() error {
	args := r.Called()
	return args.Error(0)
}

func (r *mockResponse[T]) Result() (T, error) {
	args := r.Called()
	return args.Get(0).(T), args.Error(1)
}

func TestSnapshotRepo_Get_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := new(mockCache)
	resp := new(mockResponse[string])
	repo := New(cache, time.Minute)

	cache.On("Get", ctx, "snapshot:doc1").Return(resp)
	resp.On("Result").Return(`{"doc_id":"doc1","version":3,"content":"hello"}`, nil)

	snapJSON, err := repo.Get(ctx, "doc1")
	assert.NoError(t, err)
	assert.Contains(t, snapJSON, `"version":3`)

	cache.AssertExpectations(t)
	resp.AssertExpectations(t)
}

func TestSnapshotRepo_Set_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := new(mockCache)
	resp := new(mockResponse[string])
	repo := New(cache, time.Minute)

	cache.On("Set", ctx, "snapshot:doc1", "value", time.Minute).Return(resp)
	resp.On("Err").Return(errors.New("set error"))

	err := repo.Set(ctx, "doc1", "value")
	assert.Error(t, err)
	assert.EqualError(t, err, "set error")

	cache.AssertExpectations(t)
	resp.AssertExpectations(t)
}

func TestSnapshotRepo_Del_PrefixesKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := new(mockCache)
	resp := new(mockResponse[int64])
	repo := New(cache, time.Minute)

	cache.On("Del", ctx, []string{"snapshot:doc1", "snapshot:doc2"}).Return(resp)
	resp.On("Err").Return(nil)

	err := repo.Del(ctx, "doc1", "doc2")
	assert.NoError(t, err)

	cache.AssertExpectations(t)
	resp.AssertExpectations(t)
}
