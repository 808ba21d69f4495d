package scc

import "fmt"

// Graph is a directed graph over dense integer node ids [0, N). Edges are
// deduplicated per (u, v) pair; self-loops are recorded and observable via
// HasSelfLoop, since they distinguish a non-trivial singleton component
// from a transient one (spec: "Component... Labelled non-trivial if
// |set| > 1, or if |set| = 1 and the single node has a self-loop").
type Graph struct {
	n   int
	out [][]int
	// selfLoop[u] is true iff an edge u->u was added.
	selfLoop []bool
	// seen deduplicates edges without an O(degree) scan per insert.
	seen []map[int]struct{}
}

// NewGraph allocates an empty Graph over n nodes (ids 0..n-1).
func NewGraph(n int) *Graph {
	return &Graph{
		n:        n,
		out:      make([][]int, n),
		selfLoop: make([]bool, n),
		seen:     make([]map[int]struct{}, n),
	}
}

// N returns the number of nodes the graph was built for.
func (g *Graph) N() int { return g.n }

// AddEdge adds a directed edge u->v, deduplicated. Returns
// ErrNodeOutOfRange if either endpoint is outside [0, N).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("scc: AddEdge(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if g.seen[u] == nil {
		g.seen[u] = make(map[int]struct{})
	}
	if _, dup := g.seen[u][v]; dup {
		return nil
	}
	g.seen[u][v] = struct{}{}
	g.out[u] = append(g.out[u], v)
	if u == v {
		g.selfLoop[u] = true
	}
	return nil
}

// OutEdges returns the out-neighbours of u.
func (g *Graph) OutEdges(u int) []int { return g.out[u] }

// HasSelfLoop reports whether an edge u->u was added.
func (g *Graph) HasSelfLoop(u int) bool { return g.selfLoop[u] }
