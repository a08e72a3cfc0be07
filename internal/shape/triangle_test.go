package shape

import (
	"math"
	"testing"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

func TestTriangleIntersectsContainingCell(t *testing.T) {
	tri := NewTriangle(
		vmath.Vec3{X: 0.2, Y: 0.2, Z: 0.5},
		vmath.Vec3{X: 0.8, Y: 0.2, Z: 0.5},
		vmath.Vec3{X: 0.5, Y: 0.8, Z: 0.5},
	)
	cell := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	if !tri.Intersects(cell) {
		t.Error("triangle inside the cell must intersect it")
	}
}

func TestTriangleMissesDistantCell(t *testing.T) {
	tri := NewTriangle(
		vmath.Vec3{X: 0.2, Y: 0.2, Z: 0.5},
		vmath.Vec3{X: 0.8, Y: 0.2, Z: 0.5},
		vmath.Vec3{X: 0.5, Y: 0.8, Z: 0.5},
	)
	cell := vmath.Box{Min: vmath.Vec3{X: 3, Y: 3, Z: 3}, Max: vmath.Vec3{X: 4, Y: 4, Z: 4}}
	if tri.Intersects(cell) {
		t.Error("triangle must not intersect a distant cell")
	}
}

func TestTrianglePlaneSeparation(t *testing.T) {
	// A large triangle in the z=2 plane must not touch a cell below it.
	tri := NewTriangle(
		vmath.Vec3{X: -10, Y: -10, Z: 2},
		vmath.Vec3{X: 10, Y: -10, Z: 2},
		vmath.Vec3{X: 0, Y: 10, Z: 2},
	)
	below := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	if tri.Intersects(below) {
		t.Error("triangle plane above the cell must not intersect")
	}

	crossing := vmath.Box{Min: vmath.Vec3{X: -0.5, Y: -0.5, Z: 1.5}, Max: vmath.Vec3{X: 0.5, Y: 0.5, Z: 2.5}}
	if !tri.Intersects(crossing) {
		t.Error("cell straddling the triangle plane must intersect")
	}
}

func TestTriangleEdgeCrossingCell(t *testing.T) {
	// Only one edge passes through the cell; the vertices are outside.
	tri := NewTriangle(
		vmath.Vec3{X: -2, Y: 0.5, Z: 0.5},
		vmath.Vec3{X: 3, Y: 0.5, Z: 0.5},
		vmath.Vec3{X: 0.5, Y: 5, Z: 0.5},
	)
	cell := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	if !tri.Intersects(cell) {
		t.Error("edge passing through the cell must intersect")
	}
}

func TestTriangleWinding(t *testing.T) {
	ccw := NewTriangle(
		vmath.Vec3{X: 1, Y: 0, Z: 1},
		vmath.Vec3{X: 0, Y: 1, Z: 1},
		vmath.Vec3{X: -1, Y: -1, Z: 1},
	)
	if got := ccw.Winding(); got != WindingCCW {
		t.Errorf("Winding() = %v, want CCW", got)
	}

	cw := NewTriangle(ccw.V[0], ccw.V[2], ccw.V[1])
	if got := cw.Winding(); got != WindingCW {
		t.Errorf("Winding() = %v, want CW", got)
	}

	if got := cw.WithWinding(WindingCCW).Winding(); got != WindingCCW {
		t.Errorf("WithWinding(CCW).Winding() = %v, want CCW", got)
	}
	// NewTriangleWithWinding applies the same fix at construction.
	fixed := NewTriangleWithWinding(ccw.V[0], ccw.V[2], ccw.V[1], WindingCCW)
	if got := fixed.Winding(); got != WindingCCW {
		t.Errorf("NewTriangleWithWinding() winding = %v, want CCW", got)
	}
}

func TestTriangleBarycentricRoundTrip(t *testing.T) {
	tri := NewTriangle(
		vmath.Vec3{X: 0, Y: 0, Z: 0},
		vmath.Vec3{X: 2, Y: 0, Z: 0},
		vmath.Vec3{X: 0, Y: 2, Z: 0},
	)
	p := vmath.Vec3{X: 0.5, Y: 0.5, Z: 0}
	bary := tri.Barycentric(p)
	if math.Abs(bary.X+bary.Y+bary.Z-1) > 1e-9 {
		t.Errorf("barycentric weights sum to %v, want 1", bary.X+bary.Y+bary.Z)
	}
	back := tri.BarycentricPoint(bary)
	if !approxVec3(back, p, 1e-9) {
		t.Errorf("BarycentricPoint(Barycentric(p)) = %v, want %v", back, p)
	}
}

func TestTriangleBarycentricDegenerate(t *testing.T) {
	// Zero-area sliver: all vertices colinear. Must not produce NaN.
	tri := NewTriangle(
		vmath.Vec3{X: 0, Y: 0, Z: 0},
		vmath.Vec3{X: 1, Y: 0, Z: 0},
		vmath.Vec3{X: 2, Y: 0, Z: 0},
	)
	bary := tri.Barycentric(vmath.Vec3{X: 1.9, Y: 0, Z: 0})
	if math.IsNaN(bary.X) || math.IsNaN(bary.Y) || math.IsNaN(bary.Z) {
		t.Fatalf("degenerate barycentric produced NaN: %v", bary)
	}
	// Falls back to full weight on the nearest vertex.
	if bary != (vmath.Vec3{Z: 1}) {
		t.Errorf("degenerate barycentric = %v, want (0,0,1)", bary)
	}
}

func TestTriangleCentroidAndNormal(t *testing.T) {
	tri := NewTriangle(
		vmath.Vec3{X: 0, Y: 0, Z: 0},
		vmath.Vec3{X: 3, Y: 0, Z: 0},
		vmath.Vec3{X: 0, Y: 3, Z: 0},
	)
	if got := tri.Centroid(); !approxVec3(got, vmath.Vec3{X: 1, Y: 1, Z: 0}, 1e-12) {
		t.Errorf("Centroid() = %v, want (1,1,0)", got)
	}
	n := tri.Normal()
	if math.Abs(math.Abs(n.Z)-1) > 1e-9 {
		t.Errorf("Normal() = %v, want ±Z", n)
	}
}

func TestTrianglesFromMesh(t *testing.T) {
	vertices := []vmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	indices := []int32{0, 1, 2, 0, 2, 3}
	instance := vmath.Transform{
		Position: vmath.Vec3{X: 10},
		Rotation: vmath.QuatIdentity(),
		Scale:    vmath.Vec3{X: 1, Y: 1, Z: 1},
	}
	triangles := TrianglesFromMesh(vertices, indices, instance)
	if len(triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(triangles))
	}
	if !approxVec3(triangles[0].V[1], vmath.Vec3{X: 11}, 1e-12) {
		t.Errorf("transformed vertex = %v, want (11,0,0)", triangles[0].V[1])
	}
}
