package shape

import "github.com/Faultbox/voxelate/pkg/vmath"

// Sphere is a sphere in world space.
type Sphere struct {
	Center vmath.Vec3
	Radius float64
}

// NewSphere builds a sphere proxy from a local-space center, a radius
// and an instance transform. The radius is scaled by the smallest
// absolute scale component, a conservative uniform approximation for
// non-uniform scaling.
func NewSphere(localCenter vmath.Vec3, radius float64, instance vmath.Transform) Sphere {
	return Sphere{
		Center: instance.TransformPosition(localCenter),
		Radius: radius * instance.Scale.Abs().MinComponent(),
	}
}

// Intersects reports whether the sphere overlaps an axis-aligned box,
// by squared distance from the center to the box.
func (s Sphere) Intersects(b vmath.Box) bool {
	return b.IntersectsSphere(s.Center, s.Radius)
}
