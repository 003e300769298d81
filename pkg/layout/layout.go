// Package layout computes deterministic 2-D node positions for a decoded
// GraphScript graph using a layered (Sugiyama-style) algorithm: longest-path
// layering over flow connections, compaction, oversized-layer splitting,
// multi-pass barycenter crossing reduction, and a separate grid placement
// for variable-producing nodes. Nodes are identified by their integer index
// in the decoded graph.
package layout

import "github.com/avnlabs/gsgraph/pkg/gs"

// Constants fixed by the layout design.
const (
	LayerGapX         = 360
	LayerGapY         = 140
	MaxPerLayer       = 4
	VariableCellWidth = 240
	VariableCellHeight = 100
	VariableColumns   = 6
	VariableZoneGapY  = 160
	OrphanRowGapX     = 300
)

// Point is a single node's computed position. Coordinates may be negative;
// the caller is responsible for framing the viewport around the result.
type Point struct {
	X float64
	Y float64
}

// Compute takes the node count and the full connection set and returns an
// index -> Point mapping covering every node in [0, nodeCount).
func Compute(nodeCount int, connections []gs.Connection) map[int]Point {
	flow, varProducers := partition(nodeCount, connections)
	functional := functionalIndices(nodeCount, varProducers)

	layer := longestPathLayers(functional, flow)
	compact(functional, flow, layer)
	order := splitOversizedLayers(functional, layer)
	order = orderByBarycenter(order, flow)

	positions := make(map[int]Point, nodeCount)
	placeFunctional(order, positions)
	minX, baseY := variableZoneOrigin(positions)
	variableRows := placeVariables(varProducers, minX, baseY, positions)
	placeOrphans(nodeCount, positions, variableRows, minX, baseY)

	return positions
}

// functionalIndices returns every node index in [0, nodeCount) that is not
// in varProducers, in ascending order.
func functionalIndices(nodeCount int, varProducers []int) []int {
	excluded := make(map[int]bool, len(varProducers))
	for _, v := range varProducers {
		excluded[v] = true
	}
	out := make([]int, 0, nodeCount-len(varProducers))
	for i := 0; i < nodeCount; i++ {
		if !excluded[i] {
			out = append(out, i)
		}
	}
	return out
}
