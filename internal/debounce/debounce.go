// Package debounce runs a single delayed action that newer interactions
// supersede. The compose view uses it to clear the recipient suggestion
// list a beat after the field loses focus, unless the user comes back
// first.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds at most one pending action. Schedule replaces any
// pending action with a new one; Cancel drops it. The action runs on a
// timer goroutine, so callers that need to touch single-threaded state
// should have the action post an event instead of mutating directly.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the configured delay. A pending
// action from an earlier Schedule is cancelled first.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops the pending action, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
