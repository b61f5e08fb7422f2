package application

import (
	"time"

	"simplenotes/internal/ports"
)

// AutoSaver tracks the auto-save toggle and its interval. Each Enable or
// Disable bumps a generation number, so ticks scheduled under an older
// generation are dropped.
type AutoSaver struct {
	clock    ports.Clock
	interval time.Duration

	enabled bool
	gen     uint64
	due     time.Time
}

// NewAutoSaver creates a disabled auto-saver
func NewAutoSaver(clock ports.Clock, interval time.Duration) *AutoSaver {
	if interval <= 0 {
		interval = DefaultAutoSaveInterval
	}
	return &AutoSaver{clock: clock, interval: interval}
}

// Enable starts a fresh interval from now and returns its generation
func (a *AutoSaver) Enable() uint64 {
	a.enabled = true
	a.gen++
	a.due = a.clock.Now().Add(a.interval)
	return a.gen
}

// Disable cancels the interval
func (a *AutoSaver) Disable() {
	a.enabled = false
	a.gen++
}

// Toggle flips the state and returns the new state and generation
func (a *AutoSaver) Toggle() (bool, uint64) {
	if a.enabled {
		a.Disable()
	} else {
		a.Enable()
	}
	return a.enabled, a.gen
}

// Enabled reports whether auto-save is on
func (a *AutoSaver) Enabled() bool {
	return a.enabled
}

// Interval returns the time between saves
func (a *AutoSaver) Interval() time.Duration {
	return a.interval
}

// Generation returns the current generation
func (a *AutoSaver) Generation() uint64 {
	return a.gen
}

// Due reports whether a tick of generation gen should save now. When it
// does, the next save is scheduled one interval later.
func (a *AutoSaver) Due(gen uint64) bool {
	if !a.enabled || gen != a.gen {
		return false
	}
	now := a.clock.Now()
	if now.Before(a.due) {
		return false
	}
	a.due = now.Add(a.interval)
	return true
}
