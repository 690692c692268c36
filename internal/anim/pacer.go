package anim

import "time"

// pacer meters rise ticks to a fixed period. It accumulates wall time handed
// to it by the caller, which keeps the controller deterministic under test
// and lets pause/reset cancel a half-elapsed tick by clearing the
// accumulator.
type pacer struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
}

func newPacer(period time.Duration) *pacer {
	return &pacer{period: period}
}

// reset discards any partially accumulated interval, so the next tick fires
// a full period after the next advance.
func (p *pacer) reset() {
	p.accumulator = 0
	p.last = time.Time{}
}

// shouldStep reports whether one tick period has elapsed at the given time.
// At most one tick is released per call; the remainder stays accumulated.
func (p *pacer) shouldStep(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
		return false
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.period {
		p.accumulator -= p.period
		return true
	}
	return false
}
