package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_GetSetDel(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "k", "v", 0))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, kv.Del(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryKV_TTLExpiry(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryKV_ScanKeys(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "krooster:shifts:a", "1", 0))
	require.NoError(t, kv.Set(ctx, "krooster:shifts:b", "2", 0))
	require.NoError(t, kv.Set(ctx, "krooster:employees", "3", 0))

	keys, err := kv.ScanKeys(ctx, "krooster:shifts:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"krooster:shifts:a", "krooster:shifts:b"}, keys)
}
