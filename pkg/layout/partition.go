package layout

import "github.com/avnlabs/gsgraph/pkg/gs"

// flowGraph is the parent/child adjacency over flow connections, restricted
// to functional nodes on both ends. Indices not
// present in children/parents have no flow edges.
type flowGraph struct {
	children map[int][]int
	parents  map[int][]int
}

// partition classifies every node index as variable-producing (the source
// of at least one variable connection) or functional (everything else,
// step 1), and builds the functional-only flow adjacency.
func partition(nodeCount int, connections []gs.Connection) (fg flowGraph, varProducers []int) {
	isVarProducer := make([]bool, nodeCount)
	for _, c := range connections {
		if c.Kind == gs.Variable {
			if c.SourceIndex >= 0 && c.SourceIndex < nodeCount {
				isVarProducer[c.SourceIndex] = true
			}
		}
	}

	fg = flowGraph{children: make(map[int][]int), parents: make(map[int][]int)}
	for _, c := range connections {
		if c.Kind != gs.Flow {
			continue
		}
		u, v := c.SourceIndex, c.TargetIndex
		if u < 0 || u >= nodeCount || v < 0 || v >= nodeCount {
			continue
		}
		if isVarProducer[u] || isVarProducer[v] {
			continue
		}
		fg.children[u] = append(fg.children[u], v)
		fg.parents[v] = append(fg.parents[v], u)
	}

	for i, v := range isVarProducer {
		if v {
			varProducers = append(varProducers, i)
		}
	}

	return fg, varProducers
}
