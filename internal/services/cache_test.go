package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func TestCacheService_InMemory(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(nil)

	var got cachedScore
	assert.ErrorIs(t, cache.Get(ctx, GameCacheKey(1), &got), ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, GameCacheKey(1), cachedScore{Home: 21, Away: 14}, 0))
	require.NoError(t, cache.Get(ctx, GameCacheKey(1), &got))
	assert.Equal(t, cachedScore{Home: 21, Away: 14}, got)

	require.NoError(t, cache.Delete(ctx, GameCacheKey(1)))
	assert.ErrorIs(t, cache.Get(ctx, GameCacheKey(1), &got), ErrCacheMiss)
}

func TestCacheService_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(nil)
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", 5, time.Minute))
	var v int
	require.NoError(t, cache.Get(ctx, "k", &v))
	assert.Equal(t, 5, v)

	now = now.Add(time.Minute)
	assert.ErrorIs(t, cache.Get(ctx, "k", &v), ErrCacheMiss)
}

func TestCacheService_UnmarshalError(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(nil)
	require.NoError(t, cache.Set(ctx, "k", "text", 0))

	var v int
	err := cache.Get(ctx, "k", &v)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "game:42", GameCacheKey(42))
	assert.Equal(t, "week:2:7", WeekCacheKey(2, 7))
}
