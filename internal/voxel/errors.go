package voxel

import "errors"

// Precondition violations returned by grid and occupancy accessors.
// These indicate caller logic errors and are not retryable.
var (
	// ErrOutOfBounds is returned when a location or region lies outside a
	// grid's bounds.
	ErrOutOfBounds = errors.New("voxel: location out of grid bounds")

	// ErrInvalidIndex is returned for a flat cell index outside
	// [0, cellCount).
	ErrInvalidIndex = errors.New("voxel: invalid cell index")

	// ErrInvalidCoordinate is returned for a cell coordinate outside the
	// per-axis cell counts.
	ErrInvalidCoordinate = errors.New("voxel: invalid cell coordinate")

	// ErrIncompatibleGrids is returned when merging occupancy data whose
	// grid is not contained in the target grid's bounds.
	ErrIncompatibleGrids = errors.New("voxel: grids are incompatible for merging")

	// ErrSizeMismatch is returned when merging occupancy data larger than
	// the target's.
	ErrSizeMismatch = errors.New("voxel: occupancy size mismatch")
)
