package dfs

import (
	"fmt"

	"github.com/isokolov/algokit/core"
)

// stackItem carries a pushed vertex, its depth, and the vertex that
// pushed it. Parent is only recorded when the item is actually popped
// undiscovered, since a vertex may be pushed from several branches.
type stackItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// DFSIterative performs depth-first search on g from startID using an
// explicit last-in-first-out stack instead of recursion. To preserve
// the recursive variant's left-to-right bias, each vertex's neighbors
// are pushed in REVERSE adjacency order before popping; the two
// variants therefore produce identical Order for the same graph.
// Popping a stale entry (already discovered via another branch) is a
// no-op.
//
// The OnExit hook is not supported here; there is no post-order moment
// on a discovery-time stack. Use DFS for post-order work.
func DFSIterative(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	if w.opts.FullTraversal {
		for _, v := range w.graph.Vertices() {
			if !w.res.Visited[v] {
				if err = w.iterate(v); err != nil {
					return w.res, err
				}
			}
		}

		return w.res, nil
	}

	return w.res, w.iterate(startID)
}

// iterate drains one component from an explicit stack seeded with root.
func (w *walker) iterate(root string) error {
	stack := []stackItem{{id: root}}
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// stale entry: discovered via another branch after the push
		if w.res.Visited[item.id] {
			continue
		}
		if w.opts.MaxDepth >= 0 && item.depth > w.opts.MaxDepth {
			continue
		}

		// discovery (pre-order)
		w.res.Visited[item.id] = true
		w.res.Depth[item.id] = item.depth
		if item.parent != "" {
			w.res.Parent[item.id] = item.parent
		}
		w.res.Order = append(w.res.Order, item.id)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", item.id, err)
			}
		}

		nbrs, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%q): %w", item.id, err)
		}
		// reverse push so the FIRST neighbor is popped first
		for i := len(nbrs) - 1; i >= 0; i-- {
			nid := nbrs[i]
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			stack = append(stack, stackItem{id: nid, depth: item.depth + 1, parent: item.id})
		}
	}

	return nil
}
