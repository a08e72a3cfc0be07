package voxel

import (
	"errors"
	"testing"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

func unitGrid() Grid {
	return NewGrid(vmath.Vec3{X: 1, Y: 1, Z: 1}, vmath.Box{
		Min: vmath.Vec3{},
		Max: vmath.Vec3{X: 2, Y: 2, Z: 2},
	})
}

func TestGridCellCounts(t *testing.T) {
	g := unitGrid()
	if got := g.CellCounts(); got != (vmath.IVec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("CellCounts() = %v, want (2,2,2)", got)
	}
	if got := g.CellCount(); got != 8 {
		t.Errorf("CellCount() = %d, want 8", got)
	}
}

func TestGridBoundsRounding(t *testing.T) {
	// Partially covered cells are included on both sides.
	g := NewGrid(vmath.Vec3{X: 1, Y: 1, Z: 1}, vmath.Box{
		Min: vmath.Vec3{X: 0.2, Y: -0.7, Z: 0},
		Max: vmath.Vec3{X: 1.1, Y: 0.5, Z: 2},
	})
	wantMin := vmath.Vec3{X: 0, Y: -1, Z: 0}
	wantMax := vmath.Vec3{X: 2, Y: 1, Z: 2}
	if g.Bounds().Min != wantMin || g.Bounds().Max != wantMax {
		t.Errorf("rounded bounds = %v, want [%v, %v]", g.Bounds(), wantMin, wantMax)
	}
}

func TestGridCellBoundsScenario(t *testing.T) {
	g := unitGrid()

	b0, err := g.CellBoundsByIndex(0)
	if err != nil {
		t.Fatalf("CellBoundsByIndex(0): %v", err)
	}
	if b0.Min != (vmath.Vec3{}) || b0.Max != (vmath.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("cell 0 bounds = %v, want [(0,0,0),(1,1,1)]", b0)
	}

	c7, err := g.CellCoordinate(7)
	if err != nil {
		t.Fatalf("CellCoordinate(7): %v", err)
	}
	if c7 != (vmath.IVec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("coordinate of index 7 = %v, want (1,1,1)", c7)
	}

	b7, err := g.CellBounds(c7)
	if err != nil {
		t.Fatalf("CellBounds(%v): %v", c7, err)
	}
	if b7.Min != (vmath.Vec3{X: 1, Y: 1, Z: 1}) || b7.Max != (vmath.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("cell 7 bounds = %v, want [(1,1,1),(2,2,2)]", b7)
	}
}

func TestGridIndexCoordinateRoundTrip(t *testing.T) {
	g := NewGrid(vmath.Vec3{X: 0.5, Y: 1, Z: 2}, vmath.Box{
		Min: vmath.Vec3{X: -1, Y: 0, Z: -4},
		Max: vmath.Vec3{X: 1, Y: 3, Z: 4},
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

func TestGridIndicesFromBoundsIdempotent(t *testing.T) {
	// Enumerating the grid's own bounds yields every cell exactly once.
	g := unitGrid()
	indices, err := g.CellIndicesFromBounds(g.Bounds())
	if err != nil {
		t.Fatalf("CellIndicesFromBounds: %v", err)
	}
	if len(indices) != g.CellCount() {
		t.Fatalf("got %d indices, want %d", len(indices), g.CellCount())
	}
	for i, idx := range indices {
		if idx != i {
			t.Errorf("indices[%d] = %d, want %d", i, idx, i)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := unitGrid()
	_, err := g.CellIndexAt(vmath.Vec3{X: 5, Y: 0, Z: 0})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CellIndexAt outside bounds: err = %v, want ErrOutOfBounds", err)
	}
	_, err = g.CellIndex(vmath.IVec3{X: 2, Y: 0, Z: 0})
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("CellIndex invalid coordinate: err = %v, want ErrInvalidCoordinate", err)
	}
	_, err = g.CellCoordinate(8)
	if !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("CellCoordinate(8): err = %v, want ErrInvalidIndex", err)
	}
}

func TestGridMaxFaceLocation(t *testing.T) {
	g := unitGrid()
	// A location exactly on the max face belongs to the last cell.
	idx, err := g.CellIndexAt(vmath.Vec3{X: 2, Y: 2, Z: 2})
	if err != nil {
		t.Fatalf("CellIndexAt(max corner): %v", err)
	}
	if idx != 7 {
		t.Errorf("index of max corner = %d, want 7", idx)
	}
}

func TestSubGridOffsetAndContainment(t *testing.T) {
	parent := NewGrid(vmath.Vec3{X: 1, Y: 1, Z: 1}, vmath.Box{
		Min: vmath.Vec3{},
		Max: vmath.Vec3{X: 4, Y: 4, Z: 4},
	})
	sub, err := parent.SubGrid(vmath.Box{
		Min: vmath.Vec3{X: 1, Y: 2, Z: 0},
		Max: vmath.Vec3{X: 3, Y: 4, Z: 2},
	})
	if err != nil {
		t.Fatalf("SubGrid: %v", err)
	}

	offset, ok := sub.Offset()
	if !ok {
		t.Fatal("sub-grid should carry an offset")
	}
	if offset != (vmath.IVec3{X: 1, Y: 2, Z: 0}) {
		t.Errorf("offset = %v, want (1,2,0)", offset)
	}
	if !parent.Bounds().ContainsBox(sub.Bounds()) {
		t.Error("parent bounds should contain sub-grid bounds")
	}

	// Every sub-grid cell maps to a valid parent cell.
	for i := 0; i < sub.CellCount(); i++ {
		local, err := sub.CellCoordinate(i)
		if err != nil {
			t.Fatalf("CellCoordinate(%d): %v", i, err)
		}
		if _, err := parent.CellIndex(offset.Add(local)); err != nil {
			t.Errorf("sub cell %v does not map into parent: %v", local, err)
		}
	}
}

func TestSubGridOutOfParent(t *testing.T) {
	parent := unitGrid()
	_, err := parent.SubGrid(vmath.Box{
		Min: vmath.Vec3{X: 1, Y: 1, Z: 1},
		Max: vmath.Vec3{X: 3, Y: 3, Z: 3},
	})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SubGrid outside parent: err = %v, want ErrOutOfBounds", err)
	}
}

func TestHeightfieldGridCellSize(t *testing.T) {
	// 9 samples = 3 per axis over a 6x6x4 footprint: 2x2 quads, full-height cells.
	g := NewHeightfieldGrid(9, vmath.Box{
		Min: vmath.Vec3{},
		Max: vmath.Vec3{X: 6, Y: 6, Z: 4},
	})
	want := vmath.Vec3{X: 2, Y: 2, Z: 4}
	if got := g.CellSize(); got != want {
		t.Errorf("CellSize() = %v, want %v", got, want)
	}
}

func TestGridEqual(t *testing.T) {
	a := unitGrid()
	b := unitGrid()
	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}
	sub, err := a.SubGrid(a.Bounds())
	if err != nil {
		t.Fatalf("SubGrid: %v", err)
	}
	// Offset is not part of equality.
	if !a.Equal(sub) {
		t.Error("full-bounds sub-grid should equal the parent")
	}
	c := NewGrid(vmath.Vec3{X: 2, Y: 2, Z: 2}, a.Bounds())
	if a.Equal(c) {
		t.Error("grids with different cell size should not be equal")
	}
}
