package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applyLog struct {
	levels []float64
}

func (a *applyLog) apply(level float64) { a.levels = append(a.levels, level) }

func newTestController(t *testing.T, cfg Config) (*Controller, *applyLog) {
	t.Helper()
	log := &applyLog{}
	c, err := New(cfg, log.apply)
	require.NoError(t, err)
	return c, log
}

func defaultCfg() Config {
	return Config{Min: -5, Max: 110, Baseline: 0, Rate: 0.5, Period: 100 * time.Millisecond}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero rate", func(c *Config) { c.Rate = 0 }},
		{"negative rate", func(c *Config) { c.Rate = -1 }},
		{"zero period", func(c *Config) { c.Period = 0 }},
		{"inverted bounds", func(c *Config) { c.Min, c.Max = c.Max, c.Min }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultCfg()
			tc.mut(&cfg)
			_, err := New(cfg, func(float64) {})
			assert.Error(t, err)
		})
	}

	_, err := New(defaultCfg(), nil)
	assert.Error(t, err, "nil apply callback must be rejected")
}

func TestInitialState(t *testing.T) {
	c, log := newTestController(t, defaultCfg())
	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, 0.0, c.Level())
	assert.Empty(t, log.levels, "construction alone runs no apply pass")
}

func TestTransitions(t *testing.T) {
	c, _ := newTestController(t, defaultCfg())

	c.Start()
	assert.Equal(t, Running, c.Phase())
	c.Start() // no-op while running
	assert.Equal(t, Running, c.Phase())

	c.Pause()
	assert.Equal(t, Paused, c.Phase())
	c.Pause() // no-op while paused
	assert.Equal(t, Paused, c.Phase())

	c.Start() // resume
	assert.Equal(t, Running, c.Phase())

	c.Reset()
	assert.Equal(t, Idle, c.Phase())
}

func TestToggle(t *testing.T) {
	c, _ := newTestController(t, defaultCfg())
	c.Toggle()
	assert.Equal(t, Running, c.Phase())
	c.Toggle()
	assert.Equal(t, Paused, c.Phase())
	c.Toggle()
	assert.Equal(t, Running, c.Phase())
}

func TestTickRaisesLevelByRate(t *testing.T) {
	c, log := newTestController(t, defaultCfg())
	c.Start()
	for i := 1; i <= 4; i++ {
		c.Tick()
		assert.InDelta(t, 0.5*float64(i), c.Level(), 1e-12)
	}
	assert.Len(t, log.levels, 4, "each tick runs exactly one apply pass")
}

func TestTickClampsAtMaxAndPauses(t *testing.T) {
	cfg := defaultCfg()
	cfg.Max = 1.2
	c, log := newTestController(t, cfg)
	c.Start()

	c.Tick() // 0.5
	c.Tick() // 1.0
	c.Tick() // would be 1.5: clamp to 1.2, pause
	assert.Equal(t, 1.2, c.Level(), "level must land exactly on the bound")
	assert.Equal(t, Paused, c.Phase())

	assert.Equal(t, []float64{0.5, 1.0, 1.2}, log.levels)
}

func TestSetLevelKeepsPhase(t *testing.T) {
	c, log := newTestController(t, defaultCfg())

	c.SetLevel(42)
	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, 42.0, c.Level())

	c.Start()
	c.SetLevel(7)
	assert.Equal(t, Running, c.Phase())
	assert.Equal(t, 7.0, c.Level())

	// Out-of-range drags clamp to the slider bounds.
	c.SetLevel(1e9)
	assert.Equal(t, 110.0, c.Level())
	c.SetLevel(-1e9)
	assert.Equal(t, -5.0, c.Level())

	assert.Len(t, log.levels, 4)
}

func TestResetFromEveryPhase(t *testing.T) {
	for _, phase := range []Phase{Idle, Running, Paused} {
		c, log := newTestController(t, defaultCfg())
		c.SetLevel(33)
		switch phase {
		case Running:
			c.Start()
		case Paused:
			c.Start()
			c.Pause()
		}

		c.Reset()
		assert.Equal(t, Idle, c.Phase(), "reset from %v", phase)
		assert.Equal(t, 0.0, c.Level(), "reset from %v", phase)
		assert.Equal(t, 0.0, log.levels[len(log.levels)-1], "reset runs one apply pass at the baseline")
	}
}

func TestAdvancePacesTicks(t *testing.T) {
	c, log := newTestController(t, defaultCfg())
	now := time.Unix(0, 0)

	// Not running: time passing does nothing.
	c.Advance(now)
	c.Advance(now.Add(time.Second))
	assert.Empty(t, log.levels)

	c.Start()
	c.Advance(now)                             // primes the pacer
	c.Advance(now.Add(50 * time.Millisecond))  // half a period: no tick
	assert.Empty(t, log.levels)
	c.Advance(now.Add(100 * time.Millisecond)) // full period elapsed
	assert.Equal(t, []float64{0.5}, log.levels)

	// Pausing cancels the partially elapsed interval.
	c.Advance(now.Add(190 * time.Millisecond))
	c.Pause()
	c.Start()
	c.Advance(now.Add(200 * time.Millisecond)) // primes again after reset
	c.Advance(now.Add(290 * time.Millisecond)) // 90ms since prime: no tick
	assert.Len(t, log.levels, 1)
	c.Advance(now.Add(300 * time.Millisecond))
	assert.Len(t, log.levels, 2)
}

func TestBaselineClampedIntoBounds(t *testing.T) {
	cfg := defaultCfg()
	cfg.Baseline = -50
	c, _ := newTestController(t, cfg)
	assert.Equal(t, -5.0, c.Level())
}
