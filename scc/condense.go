package scc

// Condense builds the condensation DAG of g given an SCC decomposition:
// one node per component, an edge A->B iff some u in A has an
// out-neighbour in B in the original graph and A != B. Self-loops are
// omitted; parallel edges are deduplicated (both for free, by reusing
// Graph's own dedup and by skipping u==v targets).
func Condense(g *Graph, res *Result) *Graph {
	dag := NewGraph(len(res.Components))
	for u := 0; u < g.N(); u++ {
		cu := res.ComponentOf[u]
		for _, v := range g.OutEdges(u) {
			cv := res.ComponentOf[v]
			if cu == cv {
				continue
			}
			_ = dag.AddEdge(cu, cv)
		}
	}
	return dag
}
