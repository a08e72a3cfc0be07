package voxel

import (
	"fmt"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// MergeOp selects the boolean operator applied when composing two
// occupancy stores.
type MergeOp int

const (
	MergeOr MergeOp = iota
	MergeAnd
	MergeXor
)

// String returns the operator name, for logging and config parsing.
func (op MergeOp) String() string {
	switch op {
	case MergeAnd:
		return "and"
	case MergeXor:
		return "xor"
	default:
		return "or"
	}
}

// ParseMergeOp converts a config string into a MergeOp.
func ParseMergeOp(s string) (MergeOp, error) {
	switch s {
	case "or", "":
		return MergeOr, nil
	case "and":
		return MergeAnd, nil
	case "xor":
		return MergeXor, nil
	default:
		return MergeOr, fmt.Errorf("unknown merge operator %q", s)
	}
}

// OccupancyStore holds one boolean per cell of its grid, in the grid's
// flattening order. The grid is never mutated after construction.
type OccupancyStore struct {
	grid      Grid
	occupancy []bool
}

// NewOccupancyStore creates an all-false store bound to a grid.
func NewOccupancyStore(grid Grid) *OccupancyStore {
	return &OccupancyStore{
		grid:      grid,
		occupancy: make([]bool, grid.CellCount()),
	}
}

// Grid returns the store's grid.
func (s *OccupancyStore) Grid() Grid {
	return s.grid
}

// Len returns the number of cells.
func (s *OccupancyStore) Len() int {
	return len(s.occupancy)
}

// Get returns the occupancy at a flat index.
func (s *OccupancyStore) Get(index int) (bool, error) {
	if !s.grid.IsIndexValid(index) {
		return false, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return s.occupancy[index], nil
}

// GetCoordinate returns the occupancy at a cell coordinate.
func (s *OccupancyStore) GetCoordinate(c vmath.IVec3) (bool, error) {
	index, err := s.grid.CellIndex(c)
	if err != nil {
		return false, err
	}
	return s.occupancy[index], nil
}

// GetLocation returns the occupancy of the cell containing a world location.
func (s *OccupancyStore) GetLocation(loc vmath.Vec3) (bool, error) {
	index, err := s.grid.CellIndexAt(loc)
	if err != nil {
		return false, err
	}
	return s.occupancy[index], nil
}

// Set writes the occupancy at a flat index.
func (s *OccupancyStore) Set(index int, occupied bool) error {
	if !s.grid.IsIndexValid(index) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	s.occupancy[index] = occupied
	return nil
}

// SetCoordinate writes the occupancy at a cell coordinate.
func (s *OccupancyStore) SetCoordinate(c vmath.IVec3, occupied bool) error {
	index, err := s.grid.CellIndex(c)
	if err != nil {
		return err
	}
	s.occupancy[index] = occupied
	return nil
}

// SetLocation writes the occupancy of the cell containing a world location.
func (s *OccupancyStore) SetLocation(loc vmath.Vec3, occupied bool) error {
	index, err := s.grid.CellIndexAt(loc)
	if err != nil {
		return err
	}
	s.occupancy[index] = occupied
	return nil
}

// Or merges other into s with logical OR.
func (s *OccupancyStore) Or(other *OccupancyStore) error {
	return s.Merge(other, MergeOr)
}

// And merges other into s with logical AND.
func (s *OccupancyStore) And(other *OccupancyStore) error {
	return s.Merge(other, MergeAnd)
}

// Xor merges other into s with logical XOR.
func (s *OccupancyStore) Xor(other *OccupancyStore) error {
	return s.Merge(other, MergeXor)
}

// Merge composes other into s with the given operator.
//
// other's grid must be fully contained in s's bounds and must not hold
// more cells than s. When other's grid carries a sub-grid offset, each
// of other's cells is remapped into s via offset + local coordinate and
// the operator is applied at the remapped index (the scatter path used
// when merging per-primitive results into a parent). Without an offset
// the operator is applied index-for-index, both grids assumed identical.
func (s *OccupancyStore) Merge(other *OccupancyStore, op MergeOp) error {
	if !s.grid.ContainsGrid(other.grid) {
		return fmt.Errorf("%w: input bounds %v not contained in %v",
			ErrIncompatibleGrids, other.grid.Bounds(), s.grid.Bounds())
	}
	if len(other.occupancy) > len(s.occupancy) {
		return fmt.Errorf("%w: input has %d cells, target has %d",
			ErrSizeMismatch, len(other.occupancy), len(s.occupancy))
	}

	if offset, ok := other.grid.Offset(); ok {
		for i, v := range other.occupancy {
			local, err := other.grid.CellCoordinate(i)
			if err != nil {
				return err
			}
			target, err := s.grid.CellIndex(offset.Add(local))
			if err != nil {
				return err
			}
			s.occupancy[target] = apply(op, s.occupancy[target], v)
		}
		return nil
	}

	for i, v := range other.occupancy {
		s.occupancy[i] = apply(op, s.occupancy[i], v)
	}
	return nil
}

func apply(op MergeOp, a, b bool) bool {
	switch op {
	case MergeAnd:
		return a && b
	case MergeXor:
		return a != b
	default:
		return a || b
	}
}

// OccupiedIndices returns the indices of all occupied cells in ascending
// (flattening) order.
func (s *OccupancyStore) OccupiedIndices() []int {
	var result []int
	for i, v := range s.occupancy {
		if v {
			result = append(result, i)
		}
	}
	return result
}

// OccupiedCount returns the number of occupied cells.
func (s *OccupancyStore) OccupiedCount() int {
	n := 0
	for _, v := range s.occupancy {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the store.
func (s *OccupancyStore) Clone() *OccupancyStore {
	out := &OccupancyStore{
		grid:      s.grid,
		occupancy: make([]bool, len(s.occupancy)),
	}
	copy(out.occupancy, s.occupancy)
	return out
}
