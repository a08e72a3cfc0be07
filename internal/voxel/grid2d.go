package voxel

import (
	"fmt"
	"math"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Grid2D is the 2D analog of Grid: a lattice of axis-aligned cells in
// the XY plane. The heightfield proxy uses it to index sample columns.
// Indices run X-fastest: index = x + y*countX.
type Grid2D struct {
	cellSize  vmath.Vec2
	bounds    vmath.Rect
	cellCount vmath.IVec2
	offset    *vmath.IVec2
}

// NewGrid2D builds a 2D grid covering bounds with the given cell size.
// Bounds are rounded outward to cell-size multiples.
func NewGrid2D(cellSize vmath.Vec2, bounds vmath.Rect) Grid2D {
	rounded := vmath.Rect{
		Min: vmath.Vec2{
			X: math.Floor(bounds.Min.X/cellSize.X) * cellSize.X,
			Y: math.Floor(bounds.Min.Y/cellSize.Y) * cellSize.Y,
		},
		Max: vmath.Vec2{
			X: math.Ceil(bounds.Max.X/cellSize.X) * cellSize.X,
			Y: math.Ceil(bounds.Max.Y/cellSize.Y) * cellSize.Y,
		},
	}
	size := rounded.Size()
	return Grid2D{
		cellSize: cellSize,
		bounds:   rounded,
		cellCount: vmath.IVec2{
			X: int(math.Ceil(size.X / cellSize.X)),
			Y: int(math.Ceil(size.Y / cellSize.Y)),
		},
	}
}

// NewSubGrid2D builds a 2D grid covering subBounds within parent, sharing
// the parent's cell size and recording its origin offset.
func NewSubGrid2D(parent Grid2D, subBounds vmath.Rect) (Grid2D, error) {
	if !parent.bounds.ContainsRect(subBounds) {
		return Grid2D{}, fmt.Errorf("%w: sub-grid bounds %v exceed parent bounds %v",
			ErrOutOfBounds, subBounds, parent.bounds)
	}

	g := NewGrid2D(parent.cellSize, subBounds)

	origin, err := parent.CellCoordinateAt(g.bounds.Min)
	if err != nil {
		return Grid2D{}, err
	}
	g.offset = &origin

	return g, nil
}

// Bounds returns the grid bounds.
func (g Grid2D) Bounds() vmath.Rect {
	return g.bounds
}

// CellSize returns the size of a single cell.
func (g Grid2D) CellSize() vmath.Vec2 {
	return g.cellSize
}

// CellCount returns the total number of cells.
func (g Grid2D) CellCount() int {
	return g.cellCount.X * g.cellCount.Y
}

// CellCounts returns the number of cells along each axis.
func (g Grid2D) CellCounts() vmath.IVec2 {
	return g.cellCount
}

// Offset returns the grid's coordinate offset within its parent lattice.
func (g Grid2D) Offset() (offset vmath.IVec2, ok bool) {
	if g.offset == nil {
		return vmath.IVec2{}, false
	}
	return *g.offset, true
}

// IsIndexValid reports whether a flat cell index is in range.
func (g Grid2D) IsIndexValid(index int) bool {
	return index >= 0 && index < g.CellCount()
}

// IsCoordinateValid reports whether a cell coordinate is in range.
func (g Grid2D) IsCoordinateValid(c vmath.IVec2) bool {
	return c.X >= 0 && c.X < g.cellCount.X &&
		c.Y >= 0 && c.Y < g.cellCount.Y
}

// IsLocationInBounds reports whether a location lies in the grid bounds.
func (g Grid2D) IsLocationInBounds(loc vmath.Vec2) bool {
	return g.bounds.IsInsideOrOn(loc)
}

// CellCoordinateAt returns the cell coordinate containing a location.
func (g Grid2D) CellCoordinateAt(loc vmath.Vec2) (vmath.IVec2, error) {
	if !g.IsLocationInBounds(loc) {
		return vmath.IVec2{}, fmt.Errorf("%w: %v", ErrOutOfBounds, loc)
	}

	local := loc.Sub(g.bounds.Min)
	c := vmath.IVec2{
		X: int(math.Floor(local.X / g.cellSize.X)),
		Y: int(math.Floor(local.Y / g.cellSize.Y)),
	}

	if c.X == g.cellCount.X {
		c.X--
	}
	if c.Y == g.cellCount.Y {
		c.Y--
	}

	return c, nil
}

// CellIndexAt returns the flat cell index containing a location.
func (g Grid2D) CellIndexAt(loc vmath.Vec2) (int, error) {
	c, err := g.CellCoordinateAt(loc)
	if err != nil {
		return 0, err
	}
	return g.CellIndex(c)
}

// CellIndex flattens a cell coordinate into an index.
func (g Grid2D) CellIndex(c vmath.IVec2) (int, error) {
	if !g.IsCoordinateValid(c) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}
	return c.X + c.Y*g.cellCount.X, nil
}

// CellCoordinate unflattens an index into a cell coordinate.
func (g Grid2D) CellCoordinate(index int) (vmath.IVec2, error) {
	if !g.IsIndexValid(index) {
		return vmath.IVec2{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return vmath.IVec2{X: index % g.cellCount.X, Y: index / g.cellCount.X}, nil
}

// CellBounds returns the bounds of the cell at a coordinate.
func (g Grid2D) CellBounds(c vmath.IVec2) (vmath.Rect, error) {
	if !g.IsCoordinateValid(c) {
		return vmath.Rect{}, fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}

	min := g.bounds.Min.Add(vmath.Vec2{
		X: float64(c.X) * g.cellSize.X,
		Y: float64(c.Y) * g.cellSize.Y,
	})
	return vmath.Rect{Min: min, Max: min.Add(g.cellSize)}, nil
}

// SubGrid returns a sub-grid covering region within this grid.
func (g Grid2D) SubGrid(region vmath.Rect) (Grid2D, error) {
	return NewSubGrid2D(g, region)
}

// Equal reports whether two grids have identical cell size and bounds.
// Offsets are not compared.
func (g Grid2D) Equal(other Grid2D) bool {
	return g.cellSize == other.cellSize && g.bounds == other.bounds
}
