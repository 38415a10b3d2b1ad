// Package dfs implements depth-first search on a core.Graph in two
// variants: recursive and iterative with an explicit stack.
//
// What
//
//   - DFS(g, start, opts...): recursive traversal. Order records each
//     vertex in DISCOVERY (pre-order) sequence; a vertex's neighbors
//     are explored in adjacency-list order.
//   - DFSIterative(g, start, opts...): same contract on an explicit
//     LIFO stack. Neighbors are pushed in REVERSE adjacency order so
//     that popping restores the recursive variant's left-to-right
//     bias; without that reversal the two variants would visit in
//     different orders for the same graph.
//
// Order contracts
//
//	DFS:          pre-order, neighbors by adjacency-list order.
//	DFSIterative: pre-order, neighbors by reversed-push order, which
//	              matches DFS exactly. The agreement is deliberate,
//	              not incidental; tests pin it.
//
// Options
//
//   - WithContext(ctx):       cancellation via context.Context.
//   - WithOnVisit(fn):        pre-order hook; an error aborts traversal.
//   - WithOnExit(fn):         post-order hook (recursive variant only).
//   - WithMaxDepth(limit):    stop descending beyond limit (-1 = none).
//   - WithFilterNeighbor(fn): skip neighbors for which fn returns false.
//   - WithFullTraversal():    continue from every unvisited vertex,
//     covering disconnected components (forest mode).
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E) plus hook and filter overhead.
//   - Memory: O(V) for the stack (implicit or explicit) and metadata.
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing (single-source mode).
//   - context.Canceled        if the context is done.
//   - Wrapped errors from OnVisit or OnExit.
package dfs
