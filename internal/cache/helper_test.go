package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedEvent struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })

	return mr
}

func TestAside_MissPopulatesCache(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var got cachedEvent
	err := Aside(ctx, EventKey(42), &got, EventTTL, func() error {
		fetches++
		got = cachedEvent{ID: 42, Title: "Go Conference"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Go Conference", got.Title)
	assert.True(t, mr.Exists(EventKey(42)))

	// Second call should be served from cache without fetching.
	var again cachedEvent
	err = Aside(ctx, EventKey(42), &again, EventTTL, func() error {
		fetches++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, got, again)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedEvent
	err := Aside(ctx, EventKey(1), &got, time.Minute, func() error {
		got = cachedEvent{ID: 1, Title: "Offline"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Offline", got.Title)
}

func TestInvalidateEvent(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, EventKey(7), cachedEvent{ID: 7}, time.Minute))
	require.True(t, mr.Exists(EventKey(7)))

	InvalidateEvent(ctx, 7)
	assert.False(t, mr.Exists(EventKey(7)))
}

func TestGetJSON_MissingKey(t *testing.T) {
	setupMiniredis(t)

	var got cachedEvent
	found, err := GetJSON(context.Background(), EventKey(999), &got)
	require.NoError(t, err)
	assert.False(t, found)
}
