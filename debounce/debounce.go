package debounce

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for construction and Notify settlement.
var (
	// ErrNilFunc is returned by New when fn is nil.
	ErrNilFunc = errors.New("debounce: fn is nil")

	// ErrNonPositiveDelay is returned by New when delay is not positive.
	ErrNonPositiveDelay = errors.New("debounce: delay must be positive")

	// ErrSuperseded settles a Notify channel whose scheduled firing was
	// cancelled by a newer call. Losing is an expected outcome; check
	// with errors.Is.
	ErrSuperseded = errors.New("debounce: call superseded by a newer call")

	// ErrStopped settles a Notify channel whose scheduled firing was
	// cancelled by Stop.
	ErrStopped = errors.New("debounce: debouncer stopped")
)

// Debouncer wraps fn so that only the last call in a delay-wide quiet
// window runs. It owns exactly one pending-timer handle; each call
// cancels the previous pending firing and schedules its own.
// Safe for concurrent use.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	waiter  chan error // settles the pending Notify, nil when none
	gen     uint64     // identity of the installed firing
	stopped bool
}

// New builds a Debouncer around fn with the given quiet window.
// Returns ErrNilFunc or ErrNonPositiveDelay on invalid input.
func New[T any](delay time.Duration, fn func(T)) (*Debouncer[T], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if delay <= 0 {
		return nil, ErrNonPositiveDelay
	}

	return &Debouncer[T]{delay: delay, fn: fn}, nil
}

// Call schedules fn(arg) to run after the quiet window, cancelling any
// previously scheduled firing. After Stop, Call is a no-op.
func (d *Debouncer[T]) Call(arg T) {
	_ = d.schedule(arg, nil)
}

// Notify behaves like Call and returns a buffered channel reporting
// this call's fate: nil when its firing ran, ErrSuperseded when a
// newer call cancelled it, ErrStopped when Stop did (or already had).
// The channel settles exactly once.
func (d *Debouncer[T]) Notify(arg T) <-chan error {
	ch := make(chan error, 1)
	if !d.schedule(arg, ch) {
		ch <- ErrStopped
	}

	return ch
}

// schedule installs a new pending firing, settling the previous
// waiter with ErrSuperseded. Reports false when the debouncer is
// stopped and nothing was scheduled.
func (d *Debouncer[T]) schedule(arg T, waiter chan error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.cancelPendingLocked(ErrSuperseded)

	d.waiter = waiter
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(arg, gen) })

	return true
}

// fire runs on the timer goroutine once the quiet window elapses.
// A firing that lost a race with cancellation (its timer's Stop came
// too late to prevent this callback) carries a stale gen and exits;
// its waiter was already settled by the canceller.
func (d *Debouncer[T]) fire(arg T, gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()

		return
	}
	waiter := d.waiter
	d.timer = nil
	d.waiter = nil
	d.mu.Unlock()

	d.fn(arg)
	if waiter != nil {
		waiter <- nil
	}
}

// Stop cancels any pending firing, settling its waiter with
// ErrStopped. Subsequent Call and Notify do not schedule; Stop is
// idempotent.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPendingLocked(ErrStopped)
	d.stopped = true
}

// Pending reports whether a firing is currently scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

// cancelPendingLocked stops the installed timer and settles its
// waiter with reason; callers hold d.mu.
func (d *Debouncer[T]) cancelPendingLocked(reason error) {
	if d.timer == nil {
		return
	}
	d.timer.Stop()
	d.timer = nil
	if d.waiter != nil {
		d.waiter <- reason
		d.waiter = nil
	}
}
