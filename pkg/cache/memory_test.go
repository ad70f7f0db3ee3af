package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string             `json:"name"`
	Terms map[string]float64 `json:"terms"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer func() { _ = mc.Close() }()

	ctx := context.Background()
	in := payload{Name: "slowdown", Terms: map[string]float64{"SPY": 0.35}}
	require.NoError(t, mc.Set(ctx, "k", in, time.Minute))

	var out payload
	require.NoError(t, mc.Get(ctx, "k", &out))
	assert.Equal(t, in, out)
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer func() { _ = mc.Close() }()

	var out payload
	assert.ErrorIs(t, mc.Get(context.Background(), "absent", &out), ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer func() { _ = mc.Close() }()

	ctx := context.Background()
	require.NoError(t, mc.Set(ctx, "k", payload{Name: "short"}, 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	var out payload
	assert.ErrorIs(t, mc.Get(ctx, "k", &out), ErrCacheMiss)
}

func TestMemoryCacheDeleteAndExists(t *testing.T) {
	mc := NewMemoryCache()
	defer func() { _ = mc.Close() }()

	ctx := context.Background()
	require.NoError(t, mc.Set(ctx, "k", payload{Name: "x"}, time.Minute))

	ok, err := mc.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, mc.Delete(ctx, "k"))
	ok, err = mc.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer func() { _ = mc.Close() }()

	ctx := context.Background()
	require.NoError(t, mc.Set(ctx, "a", payload{Name: "a"}, time.Minute))
	require.NoError(t, mc.Set(ctx, "b", payload{Name: "b"}, time.Minute))
	require.NoError(t, mc.Set(ctx, "c", payload{Name: "c"}, time.Minute))

	count := 0
	for _, k := range []string{"a", "b", "c"} {
		if ok, _ := mc.Exists(ctx, k); ok {
			count++
		}
	}
	assert.Equal(t, 2, count)
}
