package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/traincore/schedule-backend-go/internal/domain/clock"
)

// VirtualClock implements clock.Clock. Reads are lock-free: the active
// override regime is held behind an atomic pointer, and monotonicity within
// a regime is enforced with a CAS loop over the last-returned instant.
// SetOverride is rare and administrative; it is serialized by a mutex and
// installs a fresh regime, which is the one place the observable clock is
// allowed to move.
type VirtualClock struct {
	mu  sync.Mutex
	cur atomic.Pointer[regime]
}

type regime struct {
	cfg  clock.OverrideConfig
	last atomic.Int64 // unix nanos of the latest value handed out
}

func NewVirtualClock() *VirtualClock {
	c := &VirtualClock{}
	c.cur.Store(&regime{cfg: clock.OverrideConfig{RealAtSet: time.Now().UTC()}})
	return c
}

func (c *VirtualClock) Now() time.Time {
	r := c.cur.Load()

	real := time.Now().UTC()
	now := real
	if r.cfg.Overridden {
		// Elapsed real time keeps flowing under the override, so
		// durations behave naturally while "today" is simulated.
		now = r.cfg.OverrideInstant.Add(real.Sub(r.cfg.RealAtSet))
	}

	nanos := now.UnixNano()
	for {
		prev := r.last.Load()
		if nanos <= prev {
			return time.Unix(0, prev).UTC()
		}
		if r.last.CompareAndSwap(prev, nanos) {
			return now
		}
	}
}

func (c *VirtualClock) Config() clock.OverrideConfig {
	return c.cur.Load().cfg
}

func (c *VirtualClock) SetOverride(instant *time.Time) clock.OverrideConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := clock.OverrideConfig{RealAtSet: time.Now().UTC()}
	if instant != nil {
		utc := instant.UTC()
		cfg.Overridden = true
		cfg.OverrideInstant = &utc
	}
	c.cur.Store(&regime{cfg: cfg})
	return cfg
}
