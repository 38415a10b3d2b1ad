// Package core defines the central Graph type used by the bfs and dfs
// packages: an insertion-ordered adjacency list over string vertex IDs.
//
// What
//
//   - NewGraph(opts...): empty graph; WithDirected(true) for directed edges.
//   - AddVertex(id): register a vertex; duplicates are a no-op.
//   - AddEdge(from, to): append an adjacency; missing endpoints are
//     auto-added, undirected graphs record the mirror adjacency too.
//   - HasVertex(id), Vertices(), Neighbors(id), VertexCount(), EdgeCount().
//
// Ordering
//
//	Vertices() returns vertices in insertion order and Neighbors()
//	returns each vertex's adjacencies in the order AddEdge recorded
//	them. Traversal results built on this graph are therefore fully
//	reproducible.
//
// Dangling references
//
//	AddEdge creates endpoints it has not seen, so a Graph can never
//	hold a neighbor that is not itself a vertex; traversals need no
//	absent-neighbor handling.
//
// Concurrency
//
//	All methods are guarded by a sync.RWMutex: mutations take the
//	write lock, queries the read lock.
//
// Errors
//
//   - ErrEmptyVertexID  — AddVertex or AddEdge given an empty ID.
//   - ErrVertexNotFound — Neighbors on an unknown vertex.
package core
