package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(newStubClock())

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "k", "v", 0))

	val, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clk := newStubClock()
	m := NewMemory(clk)

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))

	ttl, ok := m.TTL("k")
	require.True(t, ok)
	assert.Equal(t, time.Minute, ttl)

	clk.Advance(time.Minute)

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	_, ok = m.TTL("k")
	assert.False(t, ok)
}

func TestMemorySetNX(t *testing.T) {
	ctx := context.Background()
	clk := newStubClock()
	m := NewMemory(clk)

	ok, err := m.SetNX(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", val)

	// An expired key can be claimed again.
	clk.Advance(2 * time.Minute)
	ok, err = m.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(newStubClock())

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	require.NoError(t, m.Delete(ctx, "k"))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	// Deleting a missing key is not an error.
	require.NoError(t, m.Delete(ctx, "k"))
}

func TestMemoryIncr(t *testing.T) {
	ctx := context.Background()
	clk := newStubClock()
	m := NewMemory(clk)

	val, err := m.Incr(ctx, "counter", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	// Every increment restarts the window.
	clk.Advance(30 * time.Minute)
	val, err = m.Incr(ctx, "counter", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)

	ttl, ok := m.TTL("counter")
	require.True(t, ok)
	assert.Equal(t, time.Hour, ttl)

	// After expiry the counter restarts.
	clk.Advance(time.Hour + time.Minute)
	val, err = m.Incr(ctx, "counter", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)
}

func TestMemoryIncrNonNumeric(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(newStubClock())

	require.NoError(t, m.Set(ctx, "k", "abc", 0))

	_, err := m.Incr(ctx, "k", 0)
	assert.Error(t, err)
}
