package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-api/internal/scoring/store"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	require.NoError(t, s.CacheSet(ctx, "uid:abc", "3.5", time.Hour))

	value, ok, err := s.CacheGet(ctx, "uid:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3.5", value)
}

func TestMemoryCacheGetMiss(t *testing.T) {
	_, ok, err := store.NewMemory().CacheGet(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryGetNotFound(t *testing.T) {
	_, err := store.NewMemory().Get(context.Background(), "i:404")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestMemoryGetSeeded(t *testing.T) {
	s := store.NewMemory()
	s.Seed(map[string]string{"i:1": `["books", "hi-tech"]`})

	value, err := s.Get(context.Background(), "i:1")
	require.NoError(t, err)
	assert.Equal(t, `["books", "hi-tech"]`, value)
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.CacheSet(ctx, "k", "v", time.Millisecond))

	time.Sleep(5 * time.Millisecond)

	_, ok, err := s.CacheGet(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}
