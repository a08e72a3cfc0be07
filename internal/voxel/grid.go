// Package voxel implements the voxel grid abstraction and the dense
// occupancy store written into by the rasterizer.
package voxel

import (
	"fmt"
	"math"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Grid represents a regularly spaced 3D lattice of axis-aligned cells.
// Bounds are always rounded outward to whole multiples of the cell size,
// so any partially covered cell is included. A Grid is immutable after
// construction.
//
// Flattened cell indices run X-fastest, then Y, then Z:
// index = x + y*countX + z*countX*countY.
type Grid struct {
	cellSize  vmath.Vec3
	bounds    vmath.Box
	cellCount vmath.IVec3
	offset    *vmath.IVec3 // set only for sub-grids: origin coordinate within the parent lattice
}

// NewGrid builds a grid covering bounds with the given cell size.
// Bounds are rounded outward (min down, max up) to cell-size multiples.
func NewGrid(cellSize vmath.Vec3, bounds vmath.Box) Grid {
	rounded := roundBoundsToCells(bounds, cellSize)
	size := rounded.Size()
	return Grid{
		cellSize: cellSize,
		bounds:   rounded,
		cellCount: vmath.IVec3{
			X: int(math.Ceil(size.X / cellSize.X)),
			Y: int(math.Ceil(size.Y / cellSize.Y)),
			Z: int(math.Ceil(size.Z / cellSize.Z)),
		},
	}
}

// NewHeightfieldGrid builds a grid matching a heightfield component's
// native quad resolution: the XY cell size is the component's footprint
// divided by sqrt(sampleCount) samples per axis, and the Z cell size is
// the full vertical extent.
func NewHeightfieldGrid(sampleCount int, bounds vmath.Box) Grid {
	perAxis := math.Sqrt(float64(sampleCount))
	size := bounds.Size()
	quad := vmath.Vec3{
		X: size.X / perAxis,
		Y: size.Y / perAxis,
		Z: size.Z,
	}
	return NewGrid(quad, bounds)
}

// NewSubGrid builds a grid covering subBounds within parent, sharing the
// parent's cell size and recording the integer offset of its origin in
// the parent's lattice. subBounds must lie inside the parent's bounds.
func NewSubGrid(parent Grid, subBounds vmath.Box) (Grid, error) {
	if !parent.bounds.ContainsBox(subBounds) {
		return Grid{}, fmt.Errorf("%w: sub-grid bounds %v exceed parent bounds %v",
			ErrOutOfBounds, subBounds, parent.bounds)
	}

	g := NewGrid(parent.cellSize, subBounds)

	origin, err := parent.CellCoordinateAt(g.bounds.Min)
	if err != nil {
		return Grid{}, err
	}
	g.offset = &origin

	return g, nil
}

// roundBoundsToCells rounds min down and max up to the nearest cell-size
// multiple on every axis.
func roundBoundsToCells(b vmath.Box, cell vmath.Vec3) vmath.Box {
	return vmath.Box{
		Min: vmath.Vec3{
			X: math.Floor(b.Min.X/cell.X) * cell.X,
			Y: math.Floor(b.Min.Y/cell.Y) * cell.Y,
			Z: math.Floor(b.Min.Z/cell.Z) * cell.Z,
		},
		Max: vmath.Vec3{
			X: math.Ceil(b.Max.X/cell.X) * cell.X,
			Y: math.Ceil(b.Max.Y/cell.Y) * cell.Y,
			Z: math.Ceil(b.Max.Z/cell.Z) * cell.Z,
		},
	}
}

// Bounds returns the grid's world-space bounds.
func (g Grid) Bounds() vmath.Box {
	return g.bounds
}

// CellSize returns the size of a single cell.
func (g Grid) CellSize() vmath.Vec3 {
	return g.cellSize
}

// CellCount returns the total number of cells.
func (g Grid) CellCount() int {
	return g.cellCount.X * g.cellCount.Y * g.cellCount.Z
}

// CellCounts returns the number of cells along each axis.
func (g Grid) CellCounts() vmath.IVec3 {
	return g.cellCount
}

// Offset returns the grid's coordinate offset within its parent lattice.
// ok is false for grids that were not constructed as sub-grids.
func (g Grid) Offset() (offset vmath.IVec3, ok bool) {
	if g.offset == nil {
		return vmath.IVec3{}, false
	}
	return *g.offset, true
}

// IsIndexValid reports whether a flat cell index is in range.
func (g Grid) IsIndexValid(index int) bool {
	return index >= 0 && index < g.CellCount()
}

// IsCoordinateValid reports whether a cell coordinate is in range.
func (g Grid) IsCoordinateValid(c vmath.IVec3) bool {
	return c.X >= 0 && c.X < g.cellCount.X &&
		c.Y >= 0 && c.Y < g.cellCount.Y &&
		c.Z >= 0 && c.Z < g.cellCount.Z
}

// IsLocationInBounds reports whether a world location lies in the grid bounds.
func (g Grid) IsLocationInBounds(loc vmath.Vec3) bool {
	return g.bounds.IsInsideOrOn(loc)
}

// ContainsGrid reports whether other's bounds lie fully inside this grid's bounds.
func (g Grid) ContainsGrid(other Grid) bool {
	return g.bounds.ContainsBox(other.bounds)
}

// CellCoordinateAt returns the cell coordinate containing a world location.
func (g Grid) CellCoordinateAt(loc vmath.Vec3) (vmath.IVec3, error) {
	if !g.IsLocationInBounds(loc) {
		return vmath.IVec3{}, fmt.Errorf("%w: %v", ErrOutOfBounds, loc)
	}

	local := loc.Sub(g.bounds.Min)
	c := vmath.IVec3{
		X: int(math.Floor(local.X / g.cellSize.X)),
		Y: int(math.Floor(local.Y / g.cellSize.Y)),
		Z: int(math.Floor(local.Z / g.cellSize.Z)),
	}

	// Locations exactly on the max face belong to the last cell.
	if c.X == g.cellCount.X {
		c.X--
	}
	if c.Y == g.cellCount.Y {
		c.Y--
	}
	if c.Z == g.cellCount.Z {
		c.Z--
	}

	return c, nil
}

// CellIndexAt returns the flat cell index containing a world location.
func (g Grid) CellIndexAt(loc vmath.Vec3) (int, error) {
	c, err := g.CellCoordinateAt(loc)
	if err != nil {
		return 0, err
	}
	return g.CellIndex(c)
}

// CellIndex flattens a cell coordinate into an index.
func (g Grid) CellIndex(c vmath.IVec3) (int, error) {
	if !g.IsCoordinateValid(c) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}
	return c.X + c.Y*g.cellCount.X + c.Z*g.cellCount.X*g.cellCount.Y, nil
}

// CellCoordinate unflattens an index into a cell coordinate.
func (g Grid) CellCoordinate(index int) (vmath.IVec3, error) {
	if !g.IsIndexValid(index) {
		return vmath.IVec3{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	plane := g.cellCount.X * g.cellCount.Y
	z := index / plane
	y := (index - z*plane) / g.cellCount.X
	x := index - z*plane - y*g.cellCount.X

	return vmath.IVec3{X: x, Y: y, Z: z}, nil
}

// CellBounds returns the world-space bounds of the cell at a coordinate.
func (g Grid) CellBounds(c vmath.IVec3) (vmath.Box, error) {
	if !g.IsCoordinateValid(c) {
		return vmath.Box{}, fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}

	min := g.bounds.Min.Add(vmath.Vec3{
		X: float64(c.X) * g.cellSize.X,
		Y: float64(c.Y) * g.cellSize.Y,
		Z: float64(c.Z) * g.cellSize.Z,
	})
	return vmath.Box{Min: min, Max: min.Add(g.cellSize)}, nil
}

// CellBoundsByIndex returns the world-space bounds of the cell at a flat index.
func (g Grid) CellBoundsByIndex(index int) (vmath.Box, error) {
	c, err := g.CellCoordinate(index)
	if err != nil {
		return vmath.Box{}, err
	}
	return g.CellBounds(c)
}

// CellBoundsAt returns the world-space bounds of the cell containing a location.
func (g Grid) CellBoundsAt(loc vmath.Vec3) (vmath.Box, error) {
	c, err := g.CellCoordinateAt(loc)
	if err != nil {
		return vmath.Box{}, err
	}
	return g.CellBounds(c)
}

// CellIndicesFromBounds rounds region outward to cell boundaries and
// returns the indices of every cell in the inclusive range, in
// flattening order.
func (g Grid) CellIndicesFromBounds(region vmath.Box) ([]int, error) {
	coords, err := g.CellCoordinatesFromBounds(region)
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(coords))
	for _, c := range coords {
		idx, err := g.CellIndex(c)
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// CellCoordinatesFromBounds rounds region outward to cell boundaries and
// returns the coordinates of every cell in the inclusive range, in
// flattening order.
func (g Grid) CellCoordinatesFromBounds(region vmath.Box) ([]vmath.IVec3, error) {
	rounded := roundBoundsToCells(region, g.cellSize)

	origin, err := g.CellCoordinateAt(rounded.Min)
	if err != nil {
		return nil, err
	}

	size := rounded.Size()
	nx := int(math.Ceil(size.X / g.cellSize.X))
	ny := int(math.Ceil(size.Y / g.cellSize.Y))
	nz := int(math.Ceil(size.Z / g.cellSize.Z))

	coords := make([]vmath.IVec3, 0, nx*ny*nz)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				c := origin.Add(vmath.IVec3{X: x, Y: y, Z: z})
				if !g.IsCoordinateValid(c) {
					return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
				}
				coords = append(coords, c)
			}
		}
	}
	return coords, nil
}

// SubGrid returns a sub-grid covering region within this grid.
func (g Grid) SubGrid(region vmath.Box) (Grid, error) {
	return NewSubGrid(g, region)
}

// Equal reports whether two grids have identical cell size and bounds.
// Offsets are not compared.
func (g Grid) Equal(other Grid) bool {
	return g.cellSize == other.cellSize && g.bounds == other.bounds
}
