package bfs

import (
	"fmt"

	"github.com/isokolov/algokit/core"
)

// ShortestPath returns a path from start to end with the fewest edges,
// including both endpoints. The queue holds whole paths rather than
// bare vertices: paths are extended in non-decreasing length, so the
// first path whose tip reaches end is returned immediately and is
// shortest by edge count. Among equal-length paths, adjacency-list
// order decides the winner.
//
// Returns [start] when start == end, ErrGraphNil /
// ErrStartVertexNotFound / ErrEndVertexNotFound on invalid input, and
// ErrNoPath when the queue empties without reaching end.
//
// Of the Options, ShortestPath honors WithContext, WithMaxDepth, and
// WithFilterNeighbor; the visit hooks apply to BFS only.
//
// Complexity: O(V + E) extensions, O(V²) worst-case memory for stored paths.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(end) {
		return nil, ErrEndVertexNotFound
	}
	if start == end {
		return []string{start}, nil
	}

	visited := map[string]bool{start: true}
	queue := [][]string{{start}}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		path := queue[0]
		queue = queue[1:]
		tip := path[len(path)-1]

		// a neighbor would extend the path to len(path) edges
		if o.MaxDepth > 0 && len(path) > o.MaxDepth {
			continue
		}
		neighbors, err := g.Neighbors(tip)
		if err != nil {
			return nil, fmt.Errorf("bfs: Neighbors(%q): %w", tip, err)
		}
		for _, nbr := range neighbors {
			if !o.FilterNeighbor(tip, nbr) {
				continue
			}
			if visited[nbr] {
				continue
			}
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			next = append(next, nbr)
			if nbr == end {
				return next, nil
			}
			visited[nbr] = true
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, start, end)
}
