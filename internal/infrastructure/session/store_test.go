package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	sess := &Session{ID: "s-1", Provider: "highcourt_portal", CNR: "DLHC010012342023"}
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "DLHC010012342023", got.CNR)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteAbsentIsNoError(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	assert.NoError(t, store.Delete(context.Background(), "absent"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	now := time.Now()
	store.now = func() time.Time { return now }
	require.NoError(t, store.Put(ctx, &Session{ID: "s-2"}))

	// Still valid just before the deadline.
	store.now = func() time.Time { return now.Add(59 * time.Second) }
	_, err := store.Get(ctx, "s-2")
	require.NoError(t, err)

	// Gone after the TTL elapses.
	store.now = func() time.Time { return now.Add(61 * time.Second) }
	_, err = store.Get(ctx, "s-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Put(ctx, &Session{ID: "s-3", CNR: "first"}))
	require.NoError(t, store.Put(ctx, &Session{ID: "s-3", CNR: "second"}))

	got, err := store.Get(ctx, "s-3")
	require.NoError(t, err)
	assert.Equal(t, "second", got.CNR)
}
