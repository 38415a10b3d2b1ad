// Package queue provides a generic FIFO queue on a circular buffer.
//
// What
//
//   - Enqueue(v): append at the tail.
//   - Dequeue(), Peek(): remove/inspect at the head.
//   - Empty(), Len(), Clear(), ToSlice(): bookkeeping and snapshots.
//
// Empty-queue policy
//
//	Dequeue and Peek on an empty queue return the zero value with
//	ok=false instead of failing, mirroring the stack package.
//
// Representation
//
//	A ring buffer with head index and doubling growth: dequeuing
//	advances the head instead of shifting the remaining elements, so
//	both ends run in amortized O(1). A plain dynamic array would pay
//	O(n) per head removal.
//
// Construct with New or use the zero value; both start empty. Queue is
// not safe for concurrent use.
package queue
