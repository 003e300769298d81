package layout

import (
	"testing"

	"github.com/avnlabs/gsgraph/pkg/gs"
)

func flowConn(src, dst int) gs.Connection {
	return gs.Connection{SourceIndex: src, TargetIndex: dst, Kind: gs.Flow}
}

func TestComputeEmptyGraph(t *testing.T) {
	positions := Compute(0, nil)
	if len(positions) != 0 {
		t.Fatalf("positions = %v, want empty", positions)
	}
}

func TestComputeSingleNodeNoPins(t *testing.T) {
	positions := Compute(1, nil)
	p, ok := positions[0]
	if !ok {
		t.Fatal("node 0 has no position")
	}
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("position = %+v, want (0, 0)", p)
	}
}

// TestComputeLinearChain is boundary scenario 3: layers 0, 1, 2;
// x-coordinates 0, 360, 720; each y at its layer's midpoint (which is 0,
// since every layer here has exactly one member).
func TestComputeLinearChain(t *testing.T) {
	conns := []gs.Connection{flowConn(0, 1), flowConn(1, 2)}
	positions := Compute(3, conns)

	want := []Point{{X: 0, Y: 0}, {X: 360, Y: 0}, {X: 720, Y: 0}}
	for i, w := range want {
		if got := positions[i]; got != w {
			t.Fatalf("node %d position = %+v, want %+v", i, got, w)
		}
	}
}

// TestComputeFanOutAtMax is boundary scenario 4: node A with five
// flow children ends up, after layer-splitting, with children split 4 and
// 1 across two layers, with no layer exceeding MaxPerLayer members.
func TestComputeFanOutAtMax(t *testing.T) {
	conns := make([]gs.Connection, 0, 5)
	for child := 1; child <= 5; child++ {
		conns = append(conns, flowConn(0, child))
	}
	positions := Compute(6, conns)

	layerOf := func(p Point) float64 { return p.X / LayerGapX }
	counts := map[float64]int{}
	for i := 1; i <= 5; i++ {
		counts[layerOf(positions[i])]++
	}
	for layer, n := range counts {
		if n > MaxPerLayer {
			t.Fatalf("layer %v has %d members, want <= %d", layer, n, MaxPerLayer)
		}
	}
	if len(counts) != 2 {
		t.Fatalf("children span %d layers, want 2: %v", len(counts), counts)
	}
	var sizes []int
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	if !(sizes[0] == 4 && sizes[1] == 1) && !(sizes[0] == 1 && sizes[1] == 4) {
		t.Fatalf("layer sizes = %v, want [4 1]", sizes)
	}
}

func TestComputeDeterministic(t *testing.T) {
	conns := []gs.Connection{flowConn(0, 1), flowConn(0, 2), flowConn(1, 3), flowConn(2, 3)}
	a := Compute(4, conns)
	b := Compute(4, conns)
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic position for node %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestComputeVariableZonePlacement(t *testing.T) {
	conns := []gs.Connection{
		flowConn(0, 1),
		{SourceIndex: 2, TargetIndex: 0, Kind: gs.Variable},
	}
	positions := Compute(3, conns)

	if positions[2].Y <= positions[0].Y && positions[2].Y <= positions[1].Y {
		t.Fatalf("variable node should sit below the functional layout, got %+v", positions[2])
	}
}

func TestComputeCycleMembersStayAtLayerZero(t *testing.T) {
	conns := []gs.Connection{flowConn(0, 1), flowConn(1, 0)}
	positions := Compute(2, conns)
	if positions[0].X != 0 || positions[1].X != 0 {
		t.Fatalf("cycle members should both stay at layer 0 (x=0), got %+v, %+v", positions[0], positions[1])
	}
}
