package layout

import "sort"

// splitOversizedLayers groups functional by their (already compacted)
// layer assignment into an ordered list of layers, each initially sorted
// by ascending node index, then splits
// any layer with more than MaxPerLayer members into consecutive chunks of
// at most MaxPerLayer, inserting the extra chunks immediately to the right
// of the layer being split. Working with an ordered
// slice of layers rather than integer layer indices makes the "insert and
// shift everything greater" instruction fall out of a plain slice insert.
func splitOversizedLayers(functional []int, layer map[int]int) [][]int {
	grouped := make(map[int][]int)
	maxLayer := 0
	for _, n := range functional {
		l := layer[n]
		grouped[l] = append(grouped[l], n)
		if l > maxLayer {
			maxLayer = l
		}
	}

	layers := make([][]int, maxLayer+1)
	for l := 0; l <= maxLayer; l++ {
		members := grouped[l]
		sort.Ints(members)
		layers[l] = members
	}

	for l := len(layers) - 1; l >= 0; l-- {
		members := layers[l]
		if len(members) <= MaxPerLayer {
			continue
		}

		var chunks [][]int
		for start := 0; start < len(members); start += MaxPerLayer {
			end := start + MaxPerLayer
			if end > len(members) {
				end = len(members)
			}
			chunks = append(chunks, members[start:end])
		}

		rest := make([][]int, 0, len(layers)-l-1)
		rest = append(rest, layers[l+1:]...)

		layers = layers[:l]
		layers = append(layers, chunks...)
		layers = append(layers, rest...)
	}

	return layers
}
