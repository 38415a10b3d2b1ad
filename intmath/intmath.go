package intmath

import (
	"errors"
	"math"
)

// Sentinel errors for domain and range violations.
var (
	// ErrNegative indicates an argument below the function's domain
	// (negative n for Fibonacci or Factorial).
	ErrNegative = errors.New("intmath: argument must be non-negative")

	// ErrOverflow indicates the exact result exceeds int64.
	ErrOverflow = errors.New("intmath: result exceeds int64 range")
)

// Largest arguments whose exact results still fit in int64:
// Factorial(20) = 2432902008176640000, Fibonacci(92) = 7540113804746346429.
const (
	maxFactorialArg = 20
	maxFibonacciArg = 92
)

// IsPrime reports whether n is prime. Returns false for n <= 1.
// Uses trial division up to √n, skipping multiples of 2 and 3
// (6k±1 stepping), so roughly a third of candidates are tested.
//
// Complexity: O(√n)
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// every prime > 3 has the form 6k±1
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Fibonacci returns the n-th Fibonacci number (Fibonacci(0)=0,
// Fibonacci(1)=1). Computed by memoized recursion: the cache lives for
// one top-level call only, giving linear time without process-global
// state. Returns ErrNegative for n < 0 and ErrOverflow for n > 92.
//
// Complexity: O(n) time, O(n) memory.
func Fibonacci(n int) (int64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > maxFibonacciArg {
		return 0, ErrOverflow
	}
	memo := make(map[int]int64, n)

	return fib(n, memo), nil
}

// fib is the memoized recursive core of Fibonacci.
func fib(n int, memo map[int]int64) int64 {
	if n <= 1 {
		return int64(n)
	}
	if v, ok := memo[n]; ok {
		return v
	}
	v := fib(n-1, memo) + fib(n-2, memo)
	memo[n] = v

	return v
}

// Factorial returns n! for 0 <= n <= 20. Factorial(0) and Factorial(1)
// are 1. Returns ErrNegative for n < 0 (factorial undefined) and
// ErrOverflow for n > 20, where the exact value no longer fits int64.
//
// Complexity: O(n) time, O(n) stack.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > maxFactorialArg {
		return 0, ErrOverflow
	}

	return fact(n), nil
}

// fact is the recursive core of Factorial; n is pre-validated.
func fact(n int) int64 {
	if n <= 1 {
		return 1
	}

	return int64(n) * fact(n-1)
}

// GCD returns the greatest common divisor of a and b via the recursive
// Euclidean algorithm. Negative inputs are supported: the computation
// runs on uint64 magnitudes (|math.MinInt64| included, which in-place
// negation cannot represent), so the result is always non-negative.
// GCD(0, 0) is 0. The single unrepresentable result is 2⁶³ — both
// arguments math.MinInt64, or one of them with the other zero — which
// returns ErrOverflow.
//
// Complexity: O(log min(|a|,|b|))
func GCD(a, b int64) (int64, error) {
	g := euclid(magnitude(a), magnitude(b))
	if g > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(g), nil
}

// magnitude returns |n| as uint64, exact for the full int64 range.
func magnitude(n int64) uint64 {
	if n < 0 {
		return -uint64(n)
	}

	return uint64(n)
}

// euclid applies gcd(a,b) = a when b == 0, else gcd(b, a mod b).
func euclid(a, b uint64) uint64 {
	if b == 0 {
		return a
	}

	return euclid(b, a%b)
}
