package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockCacheManager is a testify mock of CacheManager.
type mockCacheManager[K ~string, V any] struct {
	mock.Mock
}

func (m *mockCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(V), args.Bool(1)
}

func (m *mockCacheManager[K, V]) GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(V), args.Bool(1)
}

func (m *mockCacheManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager[K, V]) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCacheManager[K, V]) Len() int {
	return m.Called().Int(0)
}

func countErrors(calls *int) func(ctx context.Context, source string) (int, error) {
	return func(_ context.Context, source string) (int, error) {
		*calls++
		if source == "fail" {
			return 0, errors.New("read failed")
		}
		return len(source), nil
	}
}

func keyOf(source string) Key { return ContentKey(source) }

func TestReadThroughCache_SkipCache(t *testing.T) {
	m := &mockCacheManager[Key, int]{}
	calls := 0
	r := NewReadThroughCache[Key, int, string](m, keyOf, countErrors(&calls), true)

	got, hit, err := r.Get(context.Background(), "abc", time.Minute)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 3, got)
	require.Equal(t, 1, calls)
	m.AssertNotCalled(t, "GetWithRefresh", mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_Hit(t *testing.T) {
	m := &mockCacheManager[Key, int]{}
	m.On("GetWithRefresh", mock.Anything, keyOf("abc"), time.Minute).Return(7, true)
	calls := 0
	r := NewReadThroughCache[Key, int, string](m, keyOf, countErrors(&calls), false)

	got, hit, err := r.Get(context.Background(), "abc", time.Minute)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, 7, got)
	require.Zero(t, calls)
	m.AssertExpectations(t)
}

func TestReadThroughCache_MissStores(t *testing.T) {
	m := &mockCacheManager[Key, int]{}
	m.On("GetWithRefresh", mock.Anything, keyOf("abcd"), time.Minute).Return(0, false)
	m.On("Set", mock.Anything, keyOf("abcd"), 4, time.Minute).Return()
	calls := 0
	r := NewReadThroughCache[Key, int, string](m, keyOf, countErrors(&calls), false)

	got, hit, err := r.Get(context.Background(), "abcd", time.Minute)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, 4, got)
	m.AssertExpectations(t)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	m := &mockCacheManager[Key, int]{}
	m.On("GetWithRefresh", mock.Anything, keyOf("fail"), time.Minute).Return(0, false)
	calls := 0
	r := NewReadThroughCache[Key, int, string](m, keyOf, countErrors(&calls), false)

	_, _, err := r.Get(context.Background(), "fail", time.Minute)
	require.EqualError(t, err, "read failed")
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_WithInMemoryCache(t *testing.T) {
	cache := NewInMemoryCacheManager[Key, int]("check", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	r := NewReadThroughCache[Key, int, string](cache, keyOf, countErrors(&calls), false)

	for range 3 {
		got, _, err := r.Get(context.Background(), "abc", time.Minute)
		require.NoError(t, err)
		require.Equal(t, 3, got)
	}
	require.Equal(t, 1, calls)
}
