package shape

import (
	"math"
	"testing"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

func unitBoxAt(center vmath.Vec3) vmath.Box {
	half := vmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	return vmath.Box{Min: center.Sub(half), Max: center.Add(half)}
}

func TestOBBFromBoxRoundTrip(t *testing.T) {
	b := vmath.Box{Min: vmath.Vec3{X: -1, Y: 0, Z: 2}, Max: vmath.Vec3{X: 3, Y: 4, Z: 6}}
	o := OBBFromBox(b)
	if o.Center != b.Center() {
		t.Errorf("Center = %v, want %v", o.Center, b.Center())
	}
	if o.Extents != b.Extent() {
		t.Errorf("Extents = %v, want %v", o.Extents, b.Extent())
	}
}

func TestOBBAxisAlignedAgreement(t *testing.T) {
	// For identity rotations the SAT must agree with plain AABB overlap.
	cases := []struct {
		a, b vmath.Box
		want bool
	}{
		{unitBoxAt(vmath.Vec3{}), unitBoxAt(vmath.Vec3{X: 0.5}), true},
		{unitBoxAt(vmath.Vec3{}), unitBoxAt(vmath.Vec3{X: 1}), true}, // touching faces
		{unitBoxAt(vmath.Vec3{}), unitBoxAt(vmath.Vec3{X: 3}), false},
		{unitBoxAt(vmath.Vec3{}), unitBoxAt(vmath.Vec3{X: 1, Y: 1, Z: 1}), true}, // touching corner
		{unitBoxAt(vmath.Vec3{}), unitBoxAt(vmath.Vec3{X: 2, Y: 2, Z: 0}), false},
	}
	for _, c := range cases {
		sat := OBBFromBox(c.a).Intersects(OBBFromBox(c.b))
		aabb := c.a.Intersects(c.b)
		if sat != aabb {
			t.Errorf("SAT(%v,%v) = %v, AABB overlap = %v", c.a, c.b, sat, aabb)
		}
		if sat != c.want {
			t.Errorf("SAT(%v,%v) = %v, want %v", c.a, c.b, sat, c.want)
		}
	}
}

func TestOBBRotatedIntersection(t *testing.T) {
	// A thin box rotated 45° around Z reaches into a neighbor cell its
	// AABB center distance alone would miss.
	rot := vmath.QuatFromAxisAngle(vmath.Vec3{Z: 1}, math.Pi/4)
	long := OBB{
		Center:      vmath.Vec3{},
		Extents:     vmath.Vec3{X: 2, Y: 0.1, Z: 0.1},
		Orientation: rot,
	}
	cell := OBBFromBox(unitBoxAt(vmath.Vec3{X: 1, Y: 1, Z: 0}))
	if !long.Intersects(cell) {
		t.Error("rotated box should reach the diagonal cell")
	}

	offDiagonal := OBBFromBox(unitBoxAt(vmath.Vec3{X: 1.5, Y: -1.5, Z: 0}))
	if long.Intersects(offDiagonal) {
		t.Error("rotated box should not reach the opposite diagonal")
	}
}

func TestOBBSeparatedByRotation(t *testing.T) {
	// Two boxes whose AABBs overlap but which a 45° rotation separates.
	rot := vmath.QuatFromAxisAngle(vmath.Vec3{Z: 1}, math.Pi/4)
	a := OBB{
		Center:      vmath.Vec3{},
		Extents:     vmath.Vec3{X: 1, Y: 1, Z: 1},
		Orientation: rot,
	}
	b := OBBFromBox(unitBoxAt(vmath.Vec3{X: 2, Y: 0, Z: 0}))
	// Rotated support along X is sqrt(2) ≈ 1.414; box b starts at 1.5.
	if a.Intersects(b) {
		t.Error("rotated box should be separated from the corner cell")
	}
}

func TestOBBContainsPoint(t *testing.T) {
	rot := vmath.QuatFromAxisAngle(vmath.Vec3{Z: 1}, math.Pi/2)
	o := OBB{
		Center:      vmath.Vec3{X: 1, Y: 1, Z: 1},
		Extents:     vmath.Vec3{X: 2, Y: 0.5, Z: 0.5},
		Orientation: rot,
	}
	// After a 90° Z rotation the long axis points along Y.
	if !o.ContainsPoint(vmath.Vec3{X: 1, Y: 2.9, Z: 1}) {
		t.Error("point along rotated long axis should be inside")
	}
	if o.ContainsPoint(vmath.Vec3{X: 2.9, Y: 1, Z: 1}) {
		t.Error("point along original long axis should be outside after rotation")
	}
}

func TestOBBCorners(t *testing.T) {
	o := OBBFromBox(vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 2, Y: 2, Z: 2}})
	corners := o.Corners()
	box := vmath.BoxFromPoints(corners[:]...)
	want := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 2, Y: 2, Z: 2}}
	if box != want {
		t.Errorf("corner hull = %v, want %v", box, want)
	}
}

func TestOBBUnion(t *testing.T) {
	a := OBBFromBox(unitBoxAt(vmath.Vec3{}))
	b := OBBFromBox(unitBoxAt(vmath.Vec3{X: 2}))
	u := a.Union(b)
	for _, corner := range b.Corners() {
		if !u.ContainsPoint(corner) {
			t.Errorf("union should contain corner %v", corner)
		}
	}
	for _, corner := range a.Corners() {
		if !u.ContainsPoint(corner) {
			t.Errorf("union should contain corner %v", corner)
		}
	}
}

func TestNewOBBScaledExtents(t *testing.T) {
	local := vmath.Box{Min: vmath.Vec3{X: -1, Y: -1, Z: -1}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	instance := vmath.Transform{
		Position: vmath.Vec3{X: 5},
		Rotation: vmath.QuatIdentity(),
		Scale:    vmath.Vec3{X: 2, Y: -3, Z: 1},
	}
	o := NewOBB(local, instance)
	if o.Center != (vmath.Vec3{X: 5}) {
		t.Errorf("Center = %v, want (5,0,0)", o.Center)
	}
	// Negative scale contributes its absolute value.
	if o.Extents != (vmath.Vec3{X: 2, Y: 3, Z: 1}) {
		t.Errorf("Extents = %v, want (2,3,1)", o.Extents)
	}
}
