// Options, sentinel errors, and the Result type for depth-first search.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after a vertex's descendants have
	// been explored (post-order). Recursive variant only.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted per neighbor before
	// descending. Return false to skip.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, continues from every unvisited vertex in
	// insertion order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, no hooks,
// no depth limit, no filtering, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook (recursive variant only).
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits descent to limit edges from the start.
// A limit of 0 visits only the start vertex; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers disconnected components: after the start
// vertex's component is exhausted, traversal restarts from each
// unvisited vertex in insertion order.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices in DISCOVERY (pre-order) sequence.
//   - Depth: map from vertex ID to its discovery depth.
//   - Parent: map from vertex ID to the vertex it was discovered from.
//   - Visited: set of all discovered vertices.
type Result struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	Visited map[string]bool
}
