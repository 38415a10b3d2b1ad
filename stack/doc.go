// Package stack provides a generic LIFO stack.
//
// What
//
//   - Push(v), Pop(), Peek(): mutation and inspection at the top only.
//   - Empty(), Len(), Clear(), ToSlice(): bookkeeping and snapshots.
//
// Empty-stack policy
//
//	Pop and Peek on an empty stack return the zero value with ok=false
//	instead of failing: an empty stack is an ordinary state, not an
//	error. Callers branch on the flag, never on a sentinel error.
//
// Storage is a plain slice; Push is amortized O(1), everything else is
// O(1) except ToSlice, which is O(n). Stack is not safe for concurrent
// use. The zero value is ready to use.
package stack
