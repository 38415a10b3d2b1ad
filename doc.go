// Package algokit is a small library of classic algorithms and
// elementary data structures — strings, number theory, searching,
// sorting, containers, graph traversal, and a debounce timer.
//
// 🚀 What is algokit?
//
//	A collection of independent, self-contained building blocks:
//		• String utilities: reversal, palindromes, frequencies, anagrams
//		• Number theory: primality, Fibonacci, factorial, GCD
//		• Search: two-sum, binary search, maximum scan
//		• Sorting: bubble sort, two quicksort variants, sorted merge
//		• Containers: arena-backed linked list, stack, ring-buffer queue
//		• Graphs: ordered adjacency list with BFS, DFS, shortest paths
//		• Timing: a latest-call-wins debouncer
//
// ✨ Why choose algokit?
//
//   - Minimal API, clear naming, one package per topic
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic traversals – insertion-ordered adjacency
//   - Extensible – hooks (OnVisit, OnEnqueue…) on every traversal
//
// Everything is organized into leaf packages; none depends on another
// except the traversals on core:
//
//	strutil/  — Unicode-aware string algorithms
//	intmath/  — primality, Fibonacci, factorial, GCD
//	search/   — two-sum, binary search, maximum scan
//	sorting/  — bubble, quicksort ×2, sorted merge
//	list/     — singly linked list on an index arena
//	stack/    — generic LIFO
//	queue/    — generic FIFO ring buffer
//	core/     — the Graph type shared by bfs and dfs
//	bfs/      — level-order traversal and shortest paths
//	dfs/      — recursive and iterative depth-first traversal
//	debounce/ — deferred, cancel-then-reschedule invocation
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D───E
//
//	bfs.BFS visits A B C D E; bfs.ShortestPath(g, "A", "E") has 3 edges.
//
//	go get github.com/isokolov/algokit
package algokit
