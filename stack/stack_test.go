package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokolov/algokit/stack"
)

func TestStack_LIFO(t *testing.T) {
	s := stack.New[int]()
	s.Push(10)
	s.Push(20)
	s.Push(30)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 30, top)

	got, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 30, got)
	assert.Equal(t, 2, s.Len())

	got, _ = s.Pop()
	assert.Equal(t, 20, got)
	got, _ = s.Pop()
	assert.Equal(t, 10, got)
	assert.True(t, s.Empty())
}

func TestStack_EmptySignals(t *testing.T) {
	var s stack.Stack[string] // zero value usable
	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)

	v, ok = s.Peek()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	_, _ = s.Peek()
	_, _ = s.Peek()
	assert.Equal(t, 1, s.Len())
}

func TestStack_Clear(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Clear()
	assert.True(t, s.Empty())
	_, ok := s.Pop()
	assert.False(t, ok)

	// usable after Clear
	s.Push(9)
	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestStack_ToSlice(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	snap := s.ToSlice()
	assert.Equal(t, []int{1, 2, 3}, snap)
	// snapshot is detached and taking it mutates nothing
	snap[0] = 99
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())
}
