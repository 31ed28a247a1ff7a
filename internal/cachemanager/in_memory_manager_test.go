package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type checkResult struct {
	Errors int
	Report string
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[Key, checkResult]("check", DefaultExpiration, DefaultCleanupInterval)
	want := checkResult{Errors: 1, Report: "error[css::UnclosedBlock]"}
	cache.Set(context.Background(), "a", want, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "a")
	require.True(t, ok)
	require.Equal(t, want, got)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	cache := NewInMemoryCacheManager[Key, string]("check", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_WrongType(t *testing.T) {
	cache := NewInMemoryCacheManager[Key, string]("check", DefaultExpiration, DefaultCleanupInterval)
	cache.cache.Set("a", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := NewInMemoryCacheManager[Key, string]("check", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "x", time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(context.Background(), "a")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := NewInMemoryCacheManager[Key, string]("check", DefaultExpiration, DefaultCleanupInterval)

	_, ok := cache.GetWithRefresh(context.Background(), "a", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "a", "x", 50*time.Millisecond)
	got, ok := cache.GetWithRefresh(context.Background(), "a", time.Hour)
	require.True(t, ok)
	require.Equal(t, "x", got)

	time.Sleep(100 * time.Millisecond)
	_, ok = cache.Get(context.Background(), "a")
	require.True(t, ok, "refresh should have extended the expiry")
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[Key, string]("check", DefaultExpiration, DefaultCleanupInterval)
	require.NoError(t, cache.Flush(ctx))

	cache.Set(ctx, "a", "x", 0)
	cache.Set(ctx, "b", "y", 0)
	require.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Flush(ctx))
	require.Equal(t, 0, cache.Len())
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)
}

func TestContentKey(t *testing.T) {
	require.Equal(t, ContentKey("a{}", "css"), ContentKey("a{}", "css"))
	require.NotEqual(t, ContentKey("a{}", "css"), ContentKey("a{}", "query"))
	require.NotEqual(t, ContentKey("ab", "c"), ContentKey("a", "bc"))
	require.NotEmpty(t, ContentKey())
}
