// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, edge-count depths, parent links, and
// shortest paths by edge count.
//
// What
//
//   - BFS(g, start, opts...): level-order traversal from start.
//     Result holds Order (visit sequence), Depth (vertex → edges from
//     start), and Parent (vertex → predecessor in the BFS tree).
//   - Result.PathTo(dest): reconstruct start → dest from Parent links.
//   - ShortestPath(g, start, end, opts...): first path reaching end,
//     shortest by edge count.
//
// Determinism
//
//	core.Graph returns neighbors in AddEdge order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Visited discipline
//
//	A vertex is marked visited when ENQUEUED, not when dequeued;
//	otherwise a vertex reachable along two same-length paths would be
//	queued twice.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth, Parent, visited set.
//     ShortestPath stores whole paths on its queue, so its memory is
//     O(V²) worst case.
//
// Options
//
//   - WithContext(ctx):       cancellation via context.Context.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 = no limit.
//   - WithOnEnqueue(fn):      hook before a vertex is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting.
//   - WithOnVisit(fn):        hook during visit; an error aborts BFS.
//   - WithFilterNeighbor(fn): skip edges for which fn returns false.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrEndVertexNotFound    if ShortestPath's end vertex does not exist.
//   - ErrNoPath               if ShortestPath exhausts its queue.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - Wrapped hook errors from OnVisit.
package bfs
