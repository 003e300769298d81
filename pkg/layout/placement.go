package layout

// placeFunctional assigns every node in order its final (x, y): layer L
// sits at x = L*LayerGapX, and within a layer of k members the i'th
// (0-indexed) member's y is centered on zero, symmetric about the layer's
// midpoint: a lone member sits at y=0, and a k-member layer spans from
// -(k-1)*LayerGapY/2 to +(k-1)*LayerGapY/2.
func placeFunctional(order [][]int, positions map[int]Point) {
	for l, members := range order {
		k := len(members)
		x := float64(l) * LayerGapX
		for i, n := range members {
			y := (float64(i) - float64(k-1)/2) * LayerGapY
			positions[n] = Point{X: x, Y: y}
		}
	}
}

// variableZoneOrigin returns the (min_x, bottom_y + VariableZoneGapY)
// origin for the variable grid. If no functional node was placed, both
// max-y and min-x default to 0.
func variableZoneOrigin(positions map[int]Point) (minX, baseY float64) {
	first := true
	var maxY float64
	for _, p := range positions {
		if first {
			minX, maxY = p.X, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, maxY + VariableZoneGapY
}

// placeVariables lays every variable-producing node index out on a
// VariableColumns-wide grid starting at (minX, baseY), in ascending-index
// order (see partition.go for why every variable producer already counts
// as connected to at least one target, which collapses what would
// otherwise be a two-group enumeration into this single ascending pass).
// Returns the number of grid rows used, for placeOrphans to build on.
func placeVariables(varProducers []int, minX, baseY float64, positions map[int]Point) int {
	for i, n := range varProducers {
		col := i % VariableColumns
		row := i / VariableColumns
		positions[n] = Point{
			X: minX + float64(col)*VariableCellWidth,
			Y: baseY + float64(row)*VariableCellHeight,
		}
	}
	rows := 0
	if len(varProducers) > 0 {
		rows = (len(varProducers)-1)/VariableColumns + 1
	}
	return rows
}

// placeOrphans places every node index in [0, nodeCount) still missing
// from positions onto an additional row below the variable grid, spaced
// OrphanRowGapX apart, in ascending-index enumeration order. variableRows
// is the row count returned by placeVariables.
func placeOrphans(nodeCount int, positions map[int]Point, variableRows int, minX, baseY float64) {
	k := 0
	for i := 0; i < nodeCount; i++ {
		if _, ok := positions[i]; ok {
			continue
		}
		positions[i] = Point{
			X: minX + float64(k)*OrphanRowGapX,
			Y: baseY + float64(variableRows)*VariableCellHeight + VariableZoneGapY,
		}
		k++
	}
}
