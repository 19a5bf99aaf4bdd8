// Package debounce collapses bursts of events into a single delayed call.
package debounce

import (
	"sync"
	"time"
)

// afterFunc is swapped out in tests
var afterFunc = time.AfterFunc

// Debouncer runs fn once delay has passed without another Trigger
type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	timer      *time.Timer
	generation uint64
	fn         func()
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger restarts the delay. Only the latest trigger's callback runs.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.timer = afterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.generation
		d.mu.Unlock()
		if current {
			d.fn()
		}
	})
}

// Stop cancels a pending call. A timer that already fired but has not
// reached fn yet is ignored as well.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
