package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	calls := 0

	readThrough := NewReadThroughCache[string, string, string](cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "loaded:" + input, nil
	}, true)

	got, err := readThrough.Get(context.Background(), "key", "input", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "loaded:input", got)

	// Disabled cache hits the loader every time and never populates.
	_, err = readThrough.Get(context.Background(), "key", "input", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	_, ok := cache.Get(context.Background(), "key")
	require.False(t, ok)
}

func TestReadThroughCache_Get_LoadsOnceThenServesFromCache(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	calls := 0

	readThrough := NewReadThroughCache[string, string, string](cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "loaded:" + input, nil
	}, false)

	for i := 0; i < 3; i++ {
		got, err := readThrough.Get(context.Background(), "key", "input", time.Minute)
		require.NoError(t, err)
		require.Equal(t, "loaded:input", got)
	}
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_Get_WithValueInCache(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "key", "cached", time.Minute)

	readThrough := NewReadThroughCache[string, string, string](cache, func(ctx context.Context, input string) (string, error) {
		t.Fatal("loader must not run on a cache hit")
		return "", nil
	}, false)

	got, err := readThrough.Get(context.Background(), "key", "input", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got)
}

func TestReadThroughCache_Get_LoaderErrorNotCached(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	loadErr := errors.New("read failed")

	readThrough := NewReadThroughCache[string, string, string](cache, func(ctx context.Context, input string) (string, error) {
		calls++
		return "", loadErr
	}, false)

	_, err := readThrough.Get(context.Background(), "key", "input", time.Minute)
	require.ErrorIs(t, err, loadErr)

	_, err = readThrough.Get(context.Background(), "key", "input", time.Minute)
	require.ErrorIs(t, err, loadErr)
	require.Equal(t, 2, calls)
}
