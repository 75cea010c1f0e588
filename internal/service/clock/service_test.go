package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualClock_TracksRealTimeByDefault(t *testing.T) {
	t.Parallel()
	c := NewVirtualClock()

	cfg := c.Config()
	assert.False(t, cfg.Overridden)
	assert.Nil(t, cfg.OverrideInstant)

	now := c.Now()
	assert.WithinDuration(t, time.Now().UTC(), now, time.Second)
}

func TestVirtualClock_MonotonicWithoutOverride(t *testing.T) {
	t.Parallel()
	c := NewVirtualClock()

	prev := c.Now()
	for i := 0; i < 1000; i++ {
		next := c.Now()
		require.False(t, next.Before(prev), "clock went backward: %v -> %v", prev, next)
		prev = next
	}
}

func TestVirtualClock_OverrideAnchorsAndFlows(t *testing.T) {
	t.Parallel()
	c := NewVirtualClock()

	instant := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)
	cfg := c.SetOverride(&instant)
	require.True(t, cfg.Overridden)
	require.NotNil(t, cfg.OverrideInstant)
	assert.Equal(t, instant, *cfg.OverrideInstant)

	first := c.Now()
	assert.WithinDuration(t, instant, first, time.Second)

	// Elapsed real time must keep flowing under the override.
	time.Sleep(20 * time.Millisecond)
	later := c.Now()
	assert.True(t, later.After(first))
	assert.GreaterOrEqual(t, later.Sub(first), 10*time.Millisecond)
}

func TestVirtualClock_MonotonicUnderOverride(t *testing.T) {
	t.Parallel()
	c := NewVirtualClock()

	instant := time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)
	c.SetOverride(&instant)

	prev := c.Now()
	for i := 0; i < 1000; i++ {
		next := c.Now()
		require.False(t, next.Before(prev))
		prev = next
	}
}

func TestVirtualClock_ClearResumesRealTime(t *testing.T) {
	t.Parallel()
	c := NewVirtualClock()

	instant := time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)
	c.SetOverride(&instant)
	require.True(t, c.Config().Overridden)

	cleared := c.SetOverride(nil)
	assert.False(t, cleared.Overridden)
	assert.Nil(t, cleared.OverrideInstant)

	realAtClear := time.Now().UTC()
	now := c.Now()
	assert.WithinDuration(t, realAtClear, now, time.Second)
	assert.False(t, c.Now().Before(now))
}

func TestVirtualClock_ConcurrentReads(t *testing.T) {
	t.Parallel()
	c := NewVirtualClock()

	instant := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	c.SetOverride(&instant)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			prev := c.Now()
			for j := 0; j < 500; j++ {
				next := c.Now()
				if next.Before(prev) {
					t.Errorf("clock went backward: %v -> %v", prev, next)
					return
				}
				prev = next
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
