package list

// none marks the absence of a next node (and an empty list's head).
const none = -1

// node is one arena slot: a value plus the index of its successor.
// Free slots chain through next as well.
type node[T comparable] struct {
	val  T
	next int
}

// List is a singly linked list whose nodes live in an arena slice
// addressed by index. The arena belongs to the List alone; no node
// reference ever escapes. List is not safe for concurrent use.
type List[T comparable] struct {
	arena []node[T]
	head  int // index of first node, none when empty
	free  int // head of recycled-slot chain, none when exhausted
	size  int
}

// New returns an empty List.
func New[T comparable]() *List[T] {
	return &List[T]{head: none, free: none}
}

// Len returns the number of values in the list.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// PushFront inserts v at the head of the list.
//
// Complexity: O(1) amortized.
func (l *List[T]) PushFront(v T) {
	idx := l.alloc()
	l.arena[idx] = node[T]{val: v, next: l.head}
	l.head = idx
	l.size++
}

// Search reports whether v occurs in the list, by linear scan from the
// head using value equality.
//
// Complexity: O(n)
func (l *List[T]) Search(v T) bool {
	for i := l.head; i != none; i = l.arena[i].next {
		if l.arena[i].val == v {
			return true
		}
	}

	return false
}

// Delete removes the first node whose value equals v and reports
// whether a removal happened. Absent values are a no-op. Removing the
// head relinks the list correctly; the freed slot is recycled.
//
// Complexity: O(n)
func (l *List[T]) Delete(v T) bool {
	prev := none
	for i := l.head; i != none; prev, i = i, l.arena[i].next {
		if l.arena[i].val != v {
			continue
		}
		if prev == none {
			l.head = l.arena[i].next
		} else {
			l.arena[prev].next = l.arena[i].next
		}
		l.release(i)
		l.size--

		return true
	}

	return false
}

// Reverse flips the list in place by reversing each node's next link.
//
// Complexity: O(n)
func (l *List[T]) Reverse() {
	prev := none
	for i := l.head; i != none; {
		next := l.arena[i].next
		l.arena[i].next = prev
		prev, i = i, next
	}
	l.head = prev
}

// ToSlice returns a head-to-tail snapshot of the list's values.
// The snapshot shares no storage with the list.
//
// Complexity: O(n)
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for i := l.head; i != none; i = l.arena[i].next {
		out = append(out, l.arena[i].val)
	}

	return out
}

// alloc returns a usable arena index, recycling freed slots first.
func (l *List[T]) alloc() int {
	if l.free != none {
		idx := l.free
		l.free = l.arena[idx].next

		return idx
	}
	l.arena = append(l.arena, node[T]{})

	return len(l.arena) - 1
}

// release pushes slot idx onto the free chain and clears its value so
// the arena does not pin deleted data.
func (l *List[T]) release(idx int) {
	var zero T
	l.arena[idx] = node[T]{val: zero, next: l.free}
	l.free = idx
}
