package scc

import "sort"

// Result is the outcome of decomposing a Graph into strongly connected
// components.
type Result struct {
	// Components holds one node-index slice per SCC, ordered by size
	// descending; ties are ordered by when the Tarjan walk first
	// discovered each component's root (its earliest-visited node).
	Components [][]int

	// ComponentOf maps a node id to its index into Components.
	ComponentOf []int
}

// IsNonTrivial reports whether component index i is a non-trivial SCC:
// size > 1, or size == 1 with the sole member carrying a self-loop in g.
func (r *Result) IsNonTrivial(g *Graph, i int) bool {
	comp := r.Components[i]
	if len(comp) > 1 {
		return true
	}
	return g.HasSelfLoop(comp[0])
}

// Tarjan decomposes g into strongly connected components using an
// iterative variant of Tarjan's algorithm — no recursion, so the walk
// cannot overflow the goroutine stack regardless of graph size.
func Tarjan(g *Graph) *Result {
	n := g.N()
	indices := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = -1
	}

	var nodeStack []int
	var rawComponents [][]int
	nextIndex := 0

	type frame struct {
		node     int
		childIdx int
	}

	for start := 0; start < n; start++ {
		if indices[start] != -1 {
			continue
		}

		work := []frame{{node: start, childIdx: 0}}
		indices[start] = nextIndex
		lowlink[start] = nextIndex
		nextIndex++
		onStack[start] = true
		nodeStack = append(nodeStack, start)

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.node

			if top.childIdx < len(g.out[v]) {
				w := g.out[v][top.childIdx]
				top.childIdx++

				if indices[w] == -1 {
					indices[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					onStack[w] = true
					nodeStack = append(nodeStack, w)
					work = append(work, frame{node: w, childIdx: 0})
				} else if onStack[w] {
					if indices[w] < lowlink[v] {
						lowlink[v] = indices[w]
					}
				}
				continue
			}

			// all neighbours of v explored; pop v's frame
			work = work[:len(work)-1]

			if lowlink[v] == indices[v] {
				var comp []int
				for {
					w := nodeStack[len(nodeStack)-1]
					nodeStack = nodeStack[:len(nodeStack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				rawComponents = append(rawComponents, comp)
			}

			if len(work) > 0 {
				parent := work[len(work)-1].node
				if lowlink[v] < lowlink[parent] {
					lowlink[parent] = lowlink[v]
				}
			}
		}
	}

	order := make([]int, len(rawComponents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ca, cb := rawComponents[order[a]], rawComponents[order[b]]
		if len(ca) != len(cb) {
			return len(ca) > len(cb)
		}
		// each component's root is its last-popped member and has the
		// smallest discovery index in it
		return indices[ca[len(ca)-1]] < indices[cb[len(cb)-1]]
	})

	components := make([][]int, len(rawComponents))
	componentOf := make([]int, n)
	for rank, rawIdx := range order {
		components[rank] = rawComponents[rawIdx]
		for _, node := range rawComponents[rawIdx] {
			componentOf[node] = rank
		}
	}

	return &Result{Components: components, ComponentOf: componentOf}
}
