package graph

// updateOrder recomputes the cached topological order using Kahn's
// algorithm, grounded on the same in-degree/adjacency sweep used by
// thaiyyal's workflow engine and by the dag package's ToposortKahn found
// elsewhere in the pack. Ties (multiple nodes becoming ready at once) are
// broken by ascending handle, i.e. insertion order, which keeps the order
// deterministic across repeated edits with the same edge set (§4.4).
//
// A cyclic graph clears order to nil rather than erroring: §4.4 mandates
// that a cycle result in an empty order and a no-op Sample, not a panic.
func (g *Graph) updateOrder() {
	n := len(g.modules)
	indeg := make([]int, n)
	adj := make([][]Handle, n)
	for sink, srcs := range g.edges {
		indeg[sink] = len(srcs)
		for _, src := range srcs {
			adj[src] = append(adj[src], Handle(sink))
		}
	}

	queue := make([]Handle, 0, n)
	for h := 0; h < n; h++ {
		if indeg[h] == 0 {
			queue = append(queue, Handle(h))
		}
	}

	order := make([]Handle, 0, n)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, next := range adj[cur] {
			indeg[next]--
			if indeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != n {
		g.order = nil
		return
	}
	g.order = order
}
