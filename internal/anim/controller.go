// Package anim drives the water level over time: a small state machine with
// a fixed rise rate, a clamped maximum, and exactly one evaluate/apply pass
// per level change.
package anim

import (
	"errors"
	"fmt"
	"time"
)

// Phase is the controller's lifecycle state.
type Phase uint8

const (
	Idle Phase = iota
	Running
	Paused
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "invalid"
}

// Config parameterizes a Controller. Min and Max are the level bounds
// derived from the loaded grid; Baseline is the reset level; Rate is the
// level increase per tick; Period is the tick cadence.
type Config struct {
	Min      float64
	Max      float64
	Baseline float64
	Rate     float64
	Period   time.Duration
}

var errNoApply = errors.New("anim: apply callback must not be nil")

// Controller owns the animation state machine and the current water level.
// It is single-threaded: all methods must be called from the event loop that
// also runs the apply passes.
type Controller struct {
	cfg   Config
	phase Phase
	level float64
	pace  *pacer
	apply func(level float64)
}

// New validates the configuration and returns an Idle controller at the
// baseline level. The apply callback runs exactly once per level change.
// Invalid constants are rejected here rather than surfacing at tick time.
func New(cfg Config, apply func(level float64)) (*Controller, error) {
	if apply == nil {
		return nil, errNoApply
	}
	if cfg.Rate <= 0 {
		return nil, fmt.Errorf("anim: rise rate must be positive, got %v", cfg.Rate)
	}
	if cfg.Period <= 0 {
		return nil, fmt.Errorf("anim: tick period must be positive, got %v", cfg.Period)
	}
	if cfg.Max < cfg.Min {
		return nil, fmt.Errorf("anim: level bounds inverted: [%v, %v]", cfg.Min, cfg.Max)
	}
	return &Controller{
		cfg:   cfg,
		phase: Idle,
		level: clamp(cfg.Baseline, cfg.Min, cfg.Max),
		pace:  newPacer(cfg.Period),
		apply: apply,
	}, nil
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// Level returns the current water level.
func (c *Controller) Level() float64 { return c.level }

// Bounds returns the configured level range.
func (c *Controller) Bounds() (min, max float64) { return c.cfg.Min, c.cfg.Max }

// Start begins or resumes the rise. No-op while already Running.
func (c *Controller) Start() {
	if c.phase == Running {
		return
	}
	c.phase = Running
	c.pace.reset()
}

// Pause suspends a running rise, cancelling any half-elapsed tick. No-op in
// any other phase.
func (c *Controller) Pause() {
	if c.phase != Running {
		return
	}
	c.phase = Paused
	c.pace.reset()
}

// Toggle flips between Running and not-Running.
func (c *Controller) Toggle() {
	if c.phase == Running {
		c.Pause()
		return
	}
	c.Start()
}

// Reset returns to Idle at the baseline level from any phase and runs one
// apply pass there.
func (c *Controller) Reset() {
	c.phase = Idle
	c.pace.reset()
	c.level = clamp(c.cfg.Baseline, c.cfg.Min, c.cfg.Max)
	c.apply(c.level)
}

// SetLevel moves the water level directly (slider drag). The phase is left
// untouched; exactly one apply pass runs at the clamped level.
func (c *Controller) SetLevel(level float64) {
	c.level = clamp(level, c.cfg.Min, c.cfg.Max)
	c.apply(c.level)
}

// Tick advances the level by one rise step. At the upper bound the level is
// clamped to exactly Max and the controller pauses. One apply pass runs at
// the new level.
func (c *Controller) Tick() {
	next := c.level + c.cfg.Rate
	if next >= c.cfg.Max {
		next = c.cfg.Max
		c.phase = Paused
		c.pace.reset()
	}
	c.level = next
	c.apply(c.level)
}

// Advance releases at most one tick for the elapsed time at now. It is the
// per-frame entry point; outside Running it does nothing.
func (c *Controller) Advance(now time.Time) {
	if c.phase != Running {
		return
	}
	if c.pace.shouldStep(now) {
		c.Tick()
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
