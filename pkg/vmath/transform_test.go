package vmath

import (
	"math"
	"testing"
)

func TestTransformIdentity(t *testing.T) {
	tr := TransformIdentity()
	p := Vec3{1, 2, 3}
	if got := tr.TransformPosition(p); !approxVec3(got, p, 1e-12) {
		t.Errorf("identity transform moved point: %v", got)
	}
}

func TestTransformScaleThenTranslate(t *testing.T) {
	tr := Transform{
		Position: Vec3{10, 0, 0},
		Rotation: QuatIdentity(),
		Scale:    Vec3{2, 2, 2},
	}
	got := tr.TransformPosition(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if !approxVec3(got, want, 1e-12) {
		t.Errorf("TransformPosition() = %v, want %v", got, want)
	}
}

func TestTransformRotation(t *testing.T) {
	tr := Transform{
		Position: Vec3{},
		Rotation: QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2),
		Scale:    Vec3{1, 1, 1},
	}
	got := tr.TransformPosition(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if !approxVec3(got, want, 1e-9) {
		t.Errorf("TransformPosition() = %v, want %v", got, want)
	}
}

func TestTransformUp(t *testing.T) {
	tr := TransformIdentity()
	if got := tr.Up(); !approxVec3(got, Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("Up() = %v, want (0,0,1)", got)
	}
}
