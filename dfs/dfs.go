package dfs

import (
	"fmt"

	"github.com/isokolov/algokit/core"
)

// walker encapsulates state shared by the recursive traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs recursive depth-first search on g from startID. Each
// vertex is recorded in Order exactly once, at DISCOVERY time
// (pre-order); a vertex's neighbors are explored in adjacency-list
// order. With WithFullTraversal, traversal continues from every
// unvisited vertex after the start component is exhausted.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts)
	if err != nil {
		return nil, err
	}

	if w.opts.FullTraversal {
		for _, v := range w.graph.Vertices() {
			if !w.res.Visited[v] {
				if err = w.traverse(v, "", 0); err != nil {
					return w.res, err
				}
			}
		}

		return w.res, nil
	}

	return w.res, w.traverse(startID, "", 0)
}

// newWalker validates inputs, builds options, and allocates the Result.
func newWalker(g *core.Graph, startID string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()

	return &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}, nil
}

// traverse discovers id at depth, then recurses into its unvisited
// neighbors in adjacency-list order. Parent is recorded at discovery,
// after the depth gate, so a vertex pruned by MaxDepth leaves no
// metadata behind; the iterative variant records identically.
func (w *walker) traverse(id, parent string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// discovery: record before descending (pre-order)
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, nid := range nbrs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		if err = w.traverse(nid, id, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	return nil
}
