// Package intmath provides elementary number-theory routines:
// primality testing, Fibonacci numbers, factorials, and greatest
// common divisors.
//
// What
//
//   - IsPrime(n): trial division up to √n with 6k±1 stepping.
//   - Fibonacci(n): memoized recursion, linear in n.
//   - Factorial(n): recursive product with an explicit overflow bound.
//   - GCD(a, b): recursive Euclidean algorithm over absolute values.
//
// Range policy
//
//	Results are int64. Factorial(21) and Fibonacci(93) exceed int64,
//	so both functions refuse arguments past those bounds with
//	ErrOverflow instead of wrapping silently. Negative arguments are
//	a distinct failure, ErrNegative, so callers can tell "out of
//	representable range" from "outside the function's domain".
//	GCD runs on uint64 magnitudes so |math.MinInt64| is handled
//	exactly; its lone unrepresentable result, 2⁶³, is ErrOverflow too.
//
// Memoization
//
//	Fibonacci builds its cache inside each top-level call and discards
//	it on return; nothing is shared across calls, so repeated use
//	cannot grow process-wide state.
//
// Complexity
//
//   - IsPrime: O(√n) time.
//   - Fibonacci, Factorial: O(n) time, O(n) stack.
//   - GCD: O(log min(|a|,|b|)) time.
//
// Errors
//
//   - ErrNegative  — argument below the function's domain.
//   - ErrOverflow  — exact result does not fit in int64.
package intmath
