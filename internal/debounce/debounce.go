// Package debounce provides a cancellable deferred call that coalesces
// bursts of updates into a single invocation with the latest value.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delays calls to fn until no new value has arrived for the
// configured delay. A zero delay disables coalescing: every Trigger calls fn
// synchronously.
//
// fn runs on the timer's goroutine for delayed calls and on the caller's
// goroutine for immediate calls and Flush. It is never invoked while the
// Debouncer's lock is held, so fn may call back into the Debouncer.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	pending bool
	value   T
}

// New returns a Debouncer that calls fn after delay. Negative delays are
// treated as zero.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: max(delay, 0),
		fn:    fn,
	}
}

// Trigger records v as the latest value and (re)starts the delay window.
// Any call already pending is cancelled in favour of v.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	d.cancelLocked()
	d.value = v

	if d.delay == 0 {
		d.mu.Unlock()
		d.fn(v)
		return
	}

	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

// fire runs the pending call scheduled under gen, unless it was superseded.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}

// cancelLocked stops any scheduled call. Bumping gen makes a timer that has
// already fired (and is waiting on the lock) a no-op.
func (d *Debouncer[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.gen++
}

// Cancel drops the pending call, if any. It reports whether a call was dropped.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	was := d.pending
	d.cancelLocked()
	return was
}

// Flush runs the pending call immediately instead of waiting for the delay.
// It reports whether there was a pending call.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.cancelLocked()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Delay returns the current delay.
func (d *Debouncer[T]) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// SetDelay changes the delay used by subsequent Triggers. A call that is
// already pending keeps its original deadline.
func (d *Debouncer[T]) SetDelay(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = max(delay, 0)
}
