package shape

import (
	"testing"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

func TestSphereAtCellCenter(t *testing.T) {
	cell := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	s := Sphere{Center: cell.Center(), Radius: 0.01}
	if !s.Intersects(cell) {
		t.Error("sphere at cell center must intersect the cell")
	}
}

func TestSphereFarAway(t *testing.T) {
	cell := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	// Center farther than radius + half cell diagonal can never touch.
	s := Sphere{Center: vmath.Vec3{X: 4, Y: 4, Z: 4}, Radius: 1}
	if s.Intersects(cell) {
		t.Error("distant sphere must not intersect the cell")
	}
}

func TestSphereTouchingFace(t *testing.T) {
	cell := vmath.Box{Min: vmath.Vec3{}, Max: vmath.Vec3{X: 1, Y: 1, Z: 1}}
	s := Sphere{Center: vmath.Vec3{X: 2, Y: 0.5, Z: 0.5}, Radius: 1}
	if !s.Intersects(cell) {
		t.Error("sphere touching the cell face should intersect")
	}
}

func TestNewSphereMinScale(t *testing.T) {
	instance := vmath.Transform{
		Position: vmath.Vec3{X: 10},
		Rotation: vmath.QuatIdentity(),
		Scale:    vmath.Vec3{X: 3, Y: -0.5, Z: 2},
	}
	s := NewSphere(vmath.Vec3{}, 4, instance)
	if s.Center != (vmath.Vec3{X: 10}) {
		t.Errorf("Center = %v, want (10,0,0)", s.Center)
	}
	// Radius scales by the smallest absolute scale component, 0.5.
	if s.Radius != 2 {
		t.Errorf("Radius = %v, want 2", s.Radius)
	}
}
