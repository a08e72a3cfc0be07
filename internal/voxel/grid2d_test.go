package voxel

import (
	"errors"
	"testing"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

func TestGrid2DCounts(t *testing.T) {
	g := NewGrid2D(vmath.Vec2{X: 1, Y: 1}, vmath.Rect{
		Min: vmath.Vec2{},
		Max: vmath.Vec2{X: 3, Y: 2},
	})
	if got := g.CellCounts(); got != (vmath.IVec2{X: 3, Y: 2}) {
		t.Errorf("CellCounts() = %v, want (3,2)", got)
	}
	if got := g.CellCount(); got != 6 {
		t.Errorf("CellCount() = %d, want 6", got)
	}
}

func TestGrid2DRoundTrip(t *testing.T) {
	g := NewGrid2D(vmath.Vec2{X: 0.5, Y: 2}, vmath.Rect{
		Min: vmath.Vec2{X: -1, Y: 0},
		Max: vmath.Vec2{X: 1, Y: 6},
	})
	for i := 0; i < g.CellCount(); i++ {
		c, err := g.CellCoordinate(i)
		if err != nil {
			t.Fatalf("CellCoordinate(%d): %v", i, err)
		}
		back, err := g.CellIndex(c)
		if err != nil {
			t.Fatalf("CellIndex(%v): %v", c, err)
		}
		if back != i {
			t.Errorf("round trip %d -> %v -> %d", i, c, back)
		}
	}
}

func TestGrid2DCellBounds(t *testing.T) {
	g := NewGrid2D(vmath.Vec2{X: 1, Y: 1}, vmath.Rect{
		Min: vmath.Vec2{},
		Max: vmath.Vec2{X: 2, Y: 2},
	})
	b, err := g.CellBounds(vmath.IVec2{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("CellBounds: %v", err)
	}
	if b.Min != (vmath.Vec2{X: 1, Y: 1}) || b.Max != (vmath.Vec2{X: 2, Y: 2}) {
		t.Errorf("cell (1,1) bounds = %v, want [(1,1),(2,2)]", b)
	}
}

func TestGrid2DOutOfBounds(t *testing.T) {
	g := NewGrid2D(vmath.Vec2{X: 1, Y: 1}, vmath.Rect{
		Min: vmath.Vec2{},
		Max: vmath.Vec2{X: 2, Y: 2},
	})
	_, err := g.CellIndexAt(vmath.Vec2{X: 5, Y: 0})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellIndexAt outside: err = %v, want ErrOutOfBounds", err)
	}
}

func TestGrid2DSubGridOffset(t *testing.T) {
	parent := NewGrid2D(vmath.Vec2{X: 1, Y: 1}, vmath.Rect{
		Min: vmath.Vec2{},
		Max: vmath.Vec2{X: 4, Y: 4},
	})
	sub, err := parent.SubGrid(vmath.Rect{
		Min: vmath.Vec2{X: 2, Y: 1},
		Max: vmath.Vec2{X: 4, Y: 3},
	})
	if err != nil {
		t.Fatalf("SubGrid: %v", err)
	}
	offset, ok := sub.Offset()
	if !ok {
		t.Fatal("sub-grid should carry an offset")
	}
	if offset != (vmath.IVec2{X: 2, Y: 1}) {
		t.Errorf("offset = %v, want (2,1)", offset)
	}
}
