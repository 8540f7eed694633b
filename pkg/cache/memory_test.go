package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestMemoryCacheTypedRoundTrip(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	in := []payload{{Name: "a", Value: 1.5}, {Name: "b", Value: -2}}
	require.NoError(t, mc.Set(ctx, "k", in, time.Minute))

	var out []payload
	require.NoError(t, mc.Get(ctx, "k", &out))
	assert.Equal(t, in, out)
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var out string
	err := mc.Get(context.Background(), "absent", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "forever", "v", 0))

	item := mc.data["forever"]
	require.NotNil(t, item)
	assert.True(t, item.ExpireAt.IsZero(), "zero TTL stores without an expiry")
	assert.False(t, item.IsExpired())

	var out string
	require.NoError(t, mc.Get(ctx, "forever", &out))
	assert.Equal(t, "v", out)
}

func TestMemoryCacheExpiredEntryIsGone(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "blink", "v", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	var out string
	assert.ErrorIs(t, mc.Get(ctx, "blink", &out), ErrCacheMiss)
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", "1", 0))
	time.Sleep(time.Millisecond)
	require.NoError(t, mc.Set(ctx, "b", "2", 0))
	time.Sleep(time.Millisecond)
	require.NoError(t, mc.Set(ctx, "c", "3", 0)) // evicts "a"

	var out string
	assert.ErrorIs(t, mc.Get(ctx, "a", &out), ErrCacheMiss)
	require.NoError(t, mc.Get(ctx, "c", &out))
	assert.Equal(t, "3", out)
}

func TestGenerateKeyWithParams(t *testing.T) {
	key := GenerateKeyWithParams("dataset:geo", 49.1427, 9.2109, 500, 0.02, int64(42))
	assert.Equal(t, "dataset:geo:49.1427:9.2109:500:0.02:42", key)

	other := GenerateKeyWithParams("dataset:geo", 49.1427, 9.2109, 500, 0.02, int64(7))
	assert.NotEqual(t, key, other, "any changed param changes the key")
}
