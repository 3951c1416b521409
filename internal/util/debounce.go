// Package util holds small shared helpers.
package util

import (
	"sync"
	"time"
)

// Debouncer delays a function until its input has been quiet for a fixed
// interval. Rapid successive calls reset the timer, so only the last call
// within a burst fires.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	interval time.Duration
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Debounce schedules fn after the quiet interval, cancelling any pending call.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
