package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", ttl)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestCache_RecordAndLastRefresh(t *testing.T) {
	c, mr := setupCache(t, 0)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, c.RecordRefresh(ctx, 42, at))

	got, err := c.LastRefresh(ctx, 42)
	require.NoError(t, err)
	assert.True(t, got.Equal(at), "expected %v, got %v", at, got)

	// stored under a per-feed key with the default ttl
	assert.True(t, mr.Exists("feed:42:refreshed"))
	assert.Equal(t, time.Hour, mr.TTL("feed:42:refreshed"))
}

func TestCache_LastRefreshUnknownFeed(t *testing.T) {
	c, _ := setupCache(t, 0)

	got, err := c.LastRefresh(context.Background(), 99)
	require.NoError(t, err, "missing marker is not an error")
	assert.True(t, got.IsZero())
}

func TestCache_MarkerExpires(t *testing.T) {
	c, mr := setupCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.RecordRefresh(ctx, 1, time.Now()))
	mr.FastForward(2 * time.Minute)

	got, err := c.LastRefresh(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "expired marker reads as never refreshed")
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := setupCache(t, 0)
	require.NoError(t, mr.Set("feed:1:refreshed", "not-a-timestamp"))

	_, err := c.LastRefresh(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestCache_Disabled(t *testing.T) {
	c := New("", "", 0)
	assert.False(t, c.Enabled())

	err := c.RecordRefresh(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = c.LastRefresh(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDisabled)

	assert.NoError(t, c.Close())
}

func TestCache_Enabled(t *testing.T) {
	c, _ := setupCache(t, 0)
	assert.True(t, c.Enabled())
}

func TestCache_ServerGone(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { c.Close() })
	mr.Close()

	err := c.RecordRefresh(context.Background(), 1, time.Now())
	require.Error(t, err)

	_, err = c.LastRefresh(context.Background(), 1)
	require.Error(t, err)
}
