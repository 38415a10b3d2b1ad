// Package list provides a singly linked list backed by an index arena.
//
// What
//
//   - PushFront(v): O(1) insertion at the head.
//   - Search(v): O(n) scan by value equality.
//   - Delete(v): O(n) removal of the first matching node (head included).
//   - Reverse(): O(n) in-place link reversal.
//   - ToSlice(): O(n) head-to-tail snapshot.
//   - Len(): O(1) logical length.
//
// Representation
//
//	Nodes live in one slice owned exclusively by the List; links are
//	slice indices with -1 marking "no next". There are no node
//	pointers to share or alias, so external code cannot splice the
//	chain, and deleted slots are recycled through an internal free
//	chain instead of leaking. Under the declared operations the chain
//	is always acyclic: a head-to-tail walk terminates in exactly
//	Len() steps.
//
// Construct with New; the zero value is not usable.
package list
