// Package debug generates visualization geometry for inspecting
// voxelization results. Output is line-list vertex data only; rendering
// stays outside this module.
package debug

import (
	"github.com/Faultbox/voxelate/internal/shape"
	"github.com/Faultbox/voxelate/internal/voxel"
	"github.com/Faultbox/voxelate/pkg/vmath"
)

// WireframeVertexCount is the number of line vertices per box wireframe
// (12 edges × 2 endpoints).
const WireframeVertexCount = 24

// BoxWireframe returns 24 line vertices tracing the edges of an
// axis-aligned box: bottom face, top face, then the vertical edges.
func BoxWireframe(b vmath.Box) []vmath.Vec3 {
	corners := [8]vmath.Vec3{
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
	}
	return wireframeFromCorners(corners)
}

// OBBWireframe returns 24 line vertices tracing the edges of an
// oriented box.
func OBBWireframe(o shape.OBB) []vmath.Vec3 {
	return wireframeFromCorners(o.Corners())
}

// wireframeFromCorners expects the OBB.Corners ordering: bit 0 flips Z
// to its min side, bit 1 flips Y, bit 2 flips X.
func wireframeFromCorners(c [8]vmath.Vec3) []vmath.Vec3 {
	edges := [12][2]int{
		// Edges along Z
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		// Edges along Y
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		// Edges along X
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]vmath.Vec3, 0, WireframeVertexCount)
	for _, e := range edges {
		out = append(out, c[e[0]], c[e[1]])
	}
	return out
}

// OccupiedCellWireframes returns box wireframes for every occupied cell
// of the store, in ascending cell index order.
func OccupiedCellWireframes(store *voxel.OccupancyStore) ([]vmath.Vec3, error) {
	indices := store.OccupiedIndices()
	out := make([]vmath.Vec3, 0, len(indices)*WireframeVertexCount)
	for _, index := range indices {
		cell, err := store.Grid().CellBoundsByIndex(index)
		if err != nil {
			return nil, err
		}
		out = append(out, BoxWireframe(cell)...)
	}
	return out, nil
}
