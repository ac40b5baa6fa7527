package datastate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T, demoMode bool) (*Tracker, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, demoMode), mr
}

func TestTracker_MarkAndClear(t *testing.T) {
	tracker, _ := newTestTracker(t, true)
	ctx := context.Background()

	dirty, err := tracker.IsDirty(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)

	tracker.MarkDirty(ctx)

	dirty, err = tracker.IsDirty(ctx)
	require.NoError(t, err)
	assert.True(t, dirty)

	require.NoError(t, tracker.Clear(ctx))

	dirty, err = tracker.IsDirty(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestTracker_FlagExpiresOnItsOwn(t *testing.T) {
	tracker, mr := newTestTracker(t, true)
	ctx := context.Background()

	tracker.MarkDirty(ctx)
	mr.FastForward(48 * time.Hour)

	dirty, err := tracker.IsDirty(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestTracker_DisabledOutsideDemoMode(t *testing.T) {
	tracker, mr := newTestTracker(t, false)
	ctx := context.Background()

	tracker.MarkDirty(ctx)
	assert.False(t, mr.Exists(dirtyKey))

	dirty, err := tracker.IsDirty(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestTracker_NilIsNoop(t *testing.T) {
	var tracker *Tracker
	ctx := context.Background()

	tracker.MarkDirty(ctx)

	dirty, err := tracker.IsDirty(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.NoError(t, tracker.Clear(ctx))
}
