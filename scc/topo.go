package scc

// TopoOrder returns a reverse post-order traversal of dag, which for a DAG
// is a valid topological order (sources first). Ties are broken by the
// node insertion order recorded in dag's adjacency lists. The walk uses an
// explicit stack, never recursion.
func TopoOrder(dag *Graph) []int {
	n := dag.N()
	visited := make([]bool, n)
	post := make([]int, 0, n)

	type frame struct {
		node     int
		childIdx int
	}

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack := []frame{{node: start, childIdx: 0}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.childIdx < len(dag.out[top.node]) {
				w := dag.out[top.node][top.childIdx]
				top.childIdx++
				if !visited[w] {
					visited[w] = true
					stack = append(stack, frame{node: w, childIdx: 0})
				}
				continue
			}
			post = append(post, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}
