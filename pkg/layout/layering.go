package layout

// longestPathLayers assigns each functional node index a layer via Kahn's
// algorithm over the functional-only flow adjacency, seeding zero
// in-degree nodes at layer 0 and pushing each child to
// max(current, parent+1). Cycle members never reach
// zero in-degree during the traversal and are left at their zero-value
// default of layer 0 — the sole cycle policy this layout engine applies.
func longestPathLayers(functional []int, flow flowGraph) map[int]int {
	inDegree := make(map[int]int, len(functional))
	layer := make(map[int]int, len(functional))
	for _, n := range functional {
		inDegree[n] = len(flow.parents[n])
	}

	queue := make([]int, 0, len(functional))
	for _, n := range functional {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range flow.children[curr] {
			if l := layer[curr] + 1; l > layer[child] {
				layer[child] = l
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return layer
}

// compact walks functional nodes in topological order and resets each
// node's layer to one past the maximum layer among its flow parents, or 0
// if it has none. Cycle members have no topological
// order to walk in — per the design note that cycle participants simply
// stay at layer 0 rather than undergo SCC condensation, compaction leaves
// them exactly where longest-path layering put them.
func compact(functional []int, flow flowGraph, layer map[int]int) {
	order, _ := topoOrder(functional, flow)
	for _, n := range order {
		max := -1
		for _, p := range flow.parents[n] {
			if layer[p] > max {
				max = layer[p]
			}
		}
		layer[n] = max + 1
	}
}

// topoOrder returns functional nodes reachable via a Kahn traversal, in
// topological order, plus the set of cycle members that traversal could
// never dequeue (their in-degree never reaches zero).
func topoOrder(functional []int, flow flowGraph) (order []int, cycleMembers map[int]bool) {
	inDegree := make(map[int]int, len(functional))
	for _, n := range functional {
		inDegree[n] = len(flow.parents[n])
	}

	queue := make([]int, 0, len(functional))
	for _, n := range functional {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	visited := make(map[int]bool, len(functional))
	order = make([]int, 0, len(functional))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if visited[curr] {
			continue
		}
		visited[curr] = true
		order = append(order, curr)
		for _, child := range flow.children[curr] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	cycleMembers = make(map[int]bool)
	for _, n := range functional {
		if !visited[n] {
			cycleMembers[n] = true
		}
	}
	return order, cycleMembers
}
