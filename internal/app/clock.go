// internal/app/clock.go
package app

import (
	"time"

	"balloon-tower-defense/internal/config"
	"balloon-tower-defense/internal/utils"
)

// FrameClock переводит реальное время в кадры симуляции.
type FrameClock struct {
	last    time.Time
	started bool
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Advance returns the frames elapsed since the previous call, clamped to
// config.MaxDeltaFrames. The first call after Reset only sets the baseline and returns 0.
func (c *FrameClock) Advance(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	if elapsed <= 0 {
		return 0
	}
	return utils.Clamp(elapsed*config.FrameRate, 0, config.MaxDeltaFrames)
}

// Reset forgets the baseline.
func (c *FrameClock) Reset() {
	c.started = false
}
