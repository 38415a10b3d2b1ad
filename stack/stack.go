package stack

import "slices"

// Stack is a slice-backed LIFO container. The zero value is an empty
// stack ready for use. Not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// New returns an empty Stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top of the stack.
//
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value. ok is false on an empty
// stack, with the zero value returned.
//
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // release the reference
	s.items = s.items[:len(s.items)-1]

	return top, true
}

// Peek returns the top value without removing it. ok is false on an
// empty stack.
//
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Clear removes all values.
//
// Complexity: O(1)
func (s *Stack[T]) Clear() {
	s.items = nil
}

// ToSlice returns a bottom-to-top snapshot; the stack is not mutated
// and the snapshot shares no storage with it.
//
// Complexity: O(n)
func (s *Stack[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
