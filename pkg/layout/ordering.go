package layout

import "sort"

// barycenterPasses is fixed by the layout design: 8 total passes,
// alternating forward and backward sweeps.
const barycenterPasses = 8

// orderByBarycenter runs the classic Sugiyama barycenter heuristic over
// layers: forward passes (layer 1..max) rank each node by the mean rank of
// its flow parents in the layer above, backward passes (layer max-1..0)
// rank by the mean rank of its flow children in the layer below. A node
// with no neighbors in the adjacent layer keeps its current rank. Sorting
// is stable so ties preserve incoming order, which is what makes the whole
// layout deterministic.
func orderByBarycenter(layers [][]int, flow flowGraph) [][]int {
	for pass := 0; pass < barycenterPasses; pass++ {
		if pass%2 == 0 {
			sweepForward(layers, flow)
		} else {
			sweepBackward(layers, flow)
		}
	}
	return layers
}

func sweepForward(layers [][]int, flow flowGraph) {
	for l := 1; l < len(layers); l++ {
		above := rankOf(layers[l-1])
		reorder(layers[l], above, flow.parents)
	}
}

func sweepBackward(layers [][]int, flow flowGraph) {
	for l := len(layers) - 2; l >= 0; l-- {
		below := rankOf(layers[l+1])
		reorder(layers[l], below, flow.children)
	}
}

func rankOf(layer []int) map[int]int {
	r := make(map[int]int, len(layer))
	for i, n := range layer {
		r[n] = i
	}
	return r
}

// reorder sorts layer in place by each node's barycenter — the mean rank,
// within adjRank, of its neighbors per neighborsOf — falling back to the
// node's current rank when it has no neighbors present in adjRank.
func reorder(layer []int, adjRank map[int]int, neighborsOf map[int][]int) {
	currentRank := rankOf(layer)
	bary := make(map[int]float64, len(layer))
	for _, n := range layer {
		neighbors := neighborsOf[n]
		var sum float64
		var count int
		for _, nb := range neighbors {
			if r, ok := adjRank[nb]; ok {
				sum += float64(r)
				count++
			}
		}
		if count == 0 {
			bary[n] = float64(currentRank[n])
		} else {
			bary[n] = sum / float64(count)
		}
	}

	sort.SliceStable(layer, func(i, j int) bool {
		return bary[layer[i]] < bary[layer[j]]
	})
}
