package clock

import "time"

// OverrideConfig describes the state of the virtual clock override.
// When Overridden is false, OverrideInstant is ignored and the clock tracks
// real time. While overridden, the reported time is
// OverrideInstant + (real now - RealAtSet), so elapsed real time keeps
// flowing under the override.
type OverrideConfig struct {
	Overridden      bool       `json:"overridden"`
	OverrideInstant *time.Time `json:"override_instant,omitempty"`
	RealAtSet       time.Time  `json:"real_at_set"`
}

// Clock is the process time source. Every component of the scheduling core
// reads "now" through it, never through time.Now directly, so an entire
// evaluation can be pinned to a single instant.
type Clock interface {
	Now() time.Time
	Config() OverrideConfig

	// SetOverride installs instant as the current time, or clears the
	// override when instant is nil. Returns the resulting config.
	SetOverride(instant *time.Time) OverrideConfig
}
