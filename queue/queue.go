package queue

// minCapacity is the smallest ring allocation; doubling proceeds from here.
const minCapacity = 8

// Queue is a FIFO container on a circular buffer. The zero value is an
// empty queue ready for use. Not safe for concurrent use.
type Queue[T any] struct {
	buf  []T
	head int // index of the front element
	n    int // number of stored elements
}

// New returns an empty Queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue appends v at the tail.
//
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
}

// Dequeue removes and returns the front value. ok is false on an
// empty queue, with the zero value returned.
//
// Complexity: O(1) amortized.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the reference
	q.head = (q.head + 1) % len(q.buf)
	q.n--

	return v, true
}

// Peek returns the front value without removing it. ok is false on an
// empty queue.
//
// Complexity: O(1)
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}

	return q.buf[q.head], true
}

// Empty reports whether the queue holds no values.
func (q *Queue[T]) Empty() bool { return q.n == 0 }

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.n }

// Clear removes all values.
//
// Complexity: O(1)
func (q *Queue[T]) Clear() {
	q.buf = nil
	q.head = 0
	q.n = 0
}

// ToSlice returns a front-to-back snapshot; the queue is not mutated
// and the snapshot shares no storage with it.
//
// Complexity: O(n)
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.n)
	for i := 0; i < q.n; i++ {
		out = append(out, q.buf[(q.head+i)%len(q.buf)])
	}

	return out
}

// grow doubles the ring (or allocates minCapacity) and unrolls the
// wrapped contents to the start of the new buffer.
func (q *Queue[T]) grow() {
	capacity := len(q.buf) * 2
	if capacity < minCapacity {
		capacity = minCapacity
	}
	buf := make([]T, capacity)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
