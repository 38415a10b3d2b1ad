// Package debounce defers invocation of a wrapped function until a
// quiet window has elapsed: only the LAST call within any delay-wide
// window actually runs, with that call's argument.
//
// What
//
//   - New(delay, fn): build a Debouncer around fn.
//   - Call(arg): cancel any pending firing, schedule fn(arg) after delay.
//   - Notify(arg): like Call, returning a channel that settles when
//     this particular firing's fate is decided.
//   - Stop(): cancel the pending firing, if any; later calls are no-ops.
//   - Pending(): whether a firing is currently scheduled.
//
// Settlement
//
//	Every channel returned by Notify settles exactly once:
//	  - nil            — this call's deferred firing ran.
//	  - ErrSuperseded  — a newer call cancelled it.
//	  - ErrStopped     — Stop cancelled it.
//	Superseded waiters are settled the moment they lose, never left
//	pending, so no caller blocks forever on a call that will not run.
//
// Concurrency
//
//	The Debouncer owns a single pending-timer handle guarded by a
//	mutex; Call, Notify, and Stop are safe for concurrent use. fn
//	runs on the timer's goroutine. A new call is the only
//	cancellation mechanism for the prior pending call besides Stop.
//
// Errors
//
//   - ErrNilFunc, ErrNonPositiveDelay — construction-time validation.
//   - ErrSuperseded, ErrStopped       — Notify settlement outcomes.
package debounce
