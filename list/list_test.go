package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokolov/algokit/list"
)

func TestList_Empty(t *testing.T) {
	l := list.New[int]()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.ToSlice())
	assert.False(t, l.Search(1))
	assert.False(t, l.Delete(1))
}

func TestList_PushFront(t *testing.T) {
	l := list.New[int]()
	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestList_Search(t *testing.T) {
	l := list.New[string]()
	for _, s := range []string{"c", "b", "a"} {
		l.PushFront(s)
	}
	assert.True(t, l.Search("a"))
	assert.True(t, l.Search("c"))
	assert.False(t, l.Search("z"))
}

func TestList_DeleteHead(t *testing.T) {
	l := list.New[int]()
	l.PushFront(2)
	l.PushFront(1)
	require.True(t, l.Delete(1))
	assert.Equal(t, []int{2}, l.ToSlice())
	assert.Equal(t, 1, l.Len())
}

func TestList_DeleteMiddleAndTail(t *testing.T) {
	l := list.New[int]()
	for _, v := range []int{4, 3, 2, 1} {
		l.PushFront(v)
	}
	// list: 1 2 3 4
	require.True(t, l.Delete(3))
	assert.Equal(t, []int{1, 2, 4}, l.ToSlice())
	require.True(t, l.Delete(4))
	assert.Equal(t, []int{1, 2}, l.ToSlice())
	assert.Equal(t, 2, l.Len())
}

func TestList_DeleteFirstMatchOnly(t *testing.T) {
	l := list.New[int]()
	for _, v := range []int{7, 5, 7, 1} {
		l.PushFront(v)
	}
	// list: 1 7 5 7
	require.True(t, l.Delete(7))
	assert.Equal(t, []int{1, 5, 7}, l.ToSlice())
}

func TestList_DeleteAbsentIsNoop(t *testing.T) {
	l := list.New[int]()
	l.PushFront(1)
	assert.False(t, l.Delete(99))
	assert.Equal(t, []int{1}, l.ToSlice())
}

func TestList_Reverse(t *testing.T) {
	l := list.New[int]()
	for _, v := range []int{3, 2, 1} {
		l.PushFront(v)
	}
	// list: 1 2 3
	l.Reverse()
	assert.Equal(t, []int{3, 2, 1}, l.ToSlice())
	assert.Equal(t, 3, l.Len())

	// reversing twice restores the original order
	l.Reverse()
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestList_ReverseEmptyAndSingle(t *testing.T) {
	l := list.New[int]()
	l.Reverse()
	assert.Empty(t, l.ToSlice())

	l.PushFront(42)
	l.Reverse()
	assert.Equal(t, []int{42}, l.ToSlice())
}

// TestList_SlotReuse exercises the free chain: delete then reinsert
// must not grow the logical list or corrupt links.
func TestList_SlotReuse(t *testing.T) {
	l := list.New[int]()
	for i := 5; i >= 1; i-- {
		l.PushFront(i)
	}
	require.True(t, l.Delete(3))
	require.True(t, l.Delete(5))
	l.PushFront(0)
	l.PushFront(-1)
	assert.Equal(t, []int{-1, 0, 1, 2, 4}, l.ToSlice())
	assert.Equal(t, 5, l.Len())
}

// TestList_TraversalTerminates walks exactly Len steps via ToSlice on
// a list churned by mixed operations, guarding the no-cycle invariant.
func TestList_TraversalTerminates(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 100; i++ {
		l.PushFront(i)
		if i%3 == 0 {
			l.Delete(i / 2)
		}
		if i%7 == 0 {
			l.Reverse()
		}
	}
	snap := l.ToSlice()
	assert.Len(t, snap, l.Len())
}
