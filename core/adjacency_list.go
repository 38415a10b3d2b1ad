// Thread-safe mutation and query methods over the adjacency list.
// All mutations acquire the write lock; queries acquire the read lock.
package core

import "slices"

// AddVertex registers id in the graph. An already-present id is a
// no-op. Returns ErrEmptyVertexID for the empty string.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if absent; callers hold the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.adj[id]; exists {
		return
	}
	g.order = append(g.order, id)
	g.adj[id] = nil
}

// AddEdge records the adjacency from → to, appended after any existing
// neighbors of from. Endpoints not yet in the graph are auto-added, so
// no adjacency can dangle. Undirected graphs also record the mirror
// adjacency to → from. Returns ErrEmptyVertexID when either ID is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.adj[from] = append(g.adj[from], to)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], from)
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id is a vertex of the graph.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order. The returned
// slice is a copy.
//
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Neighbors returns id's adjacent vertex IDs in the order AddEdge
// recorded them. The returned slice is a copy. Returns
// ErrVertexNotFound for an unknown id.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return slices.Clone(nbrs), nil
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of AddEdge calls recorded; an
// undirected edge counts once.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
