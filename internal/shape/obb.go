// Package shape provides world-space geometric proxies built once per
// collision primitive and used for intersection testing against grid
// cell bounds.
package shape

import (
	"math"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// satEpsilon pads the absolute rotation matrix so near-parallel edge
// cross products do not produce a spurious zero axis.
const satEpsilon = 1e-8

// OBB is an oriented bounding box in world space.
type OBB struct {
	// Center of the box in world space.
	Center vmath.Vec3
	// Extents are the half-sizes along the box's local axes.
	Extents vmath.Vec3
	// Orientation rotates local axes into world space.
	Orientation vmath.Quat
	// SlerpRotation selects whether Union blends orientations.
	SlerpRotation bool
}

// NewOBB builds an OBB from local-space bounds and an instance transform.
// Extents are scaled by the absolute instance scale to handle negative
// scaling.
func NewOBB(localBounds vmath.Box, instance vmath.Transform) OBB {
	return OBB{
		Center:      instance.TransformPosition(localBounds.Center()),
		Extents:     localBounds.Extent().Mul(instance.Scale.Abs()),
		Orientation: instance.Rotation,
	}
}

// OBBFromBox wraps an axis-aligned box as an identity-oriented OBB,
// letting grid cells be tested through the same SAT routine.
func OBBFromBox(b vmath.Box) OBB {
	return OBB{
		Center:      b.Center(),
		Extents:     b.Extent(),
		Orientation: vmath.QuatIdentity(),
	}
}

// Axes returns the box's local axes in world space.
func (o OBB) Axes() (x, y, z vmath.Vec3) {
	return o.Orientation.AxisX(), o.Orientation.AxisY(), o.Orientation.AxisZ()
}

// Corners returns the eight corners of the box in world space.
func (o OBB) Corners() [8]vmath.Vec3 {
	ax, ay, az := o.Axes()
	hx := ax.Scale(o.Extents.X)
	hy := ay.Scale(o.Extents.Y)
	hz := az.Scale(o.Extents.Z)

	return [8]vmath.Vec3{
		o.Center.Add(hx).Add(hy).Add(hz),
		o.Center.Add(hx).Add(hy).Sub(hz),
		o.Center.Add(hx).Sub(hy).Add(hz),
		o.Center.Add(hx).Sub(hy).Sub(hz),
		o.Center.Sub(hx).Add(hy).Add(hz),
		o.Center.Sub(hx).Add(hy).Sub(hz),
		o.Center.Sub(hx).Sub(hy).Add(hz),
		o.Center.Sub(hx).Sub(hy).Sub(hz),
	}
}

// ContainsPoint reports whether a world-space point lies inside or on
// the box.
func (o OBB) ContainsPoint(p vmath.Vec3) bool {
	local := o.Orientation.Unrotate(p.Sub(o.Center))
	return math.Abs(local.X) <= o.Extents.X &&
		math.Abs(local.Y) <= o.Extents.Y &&
		math.Abs(local.Z) <= o.Extents.Z
}

// ContainsAnyCorner reports whether any corner of other lies inside or
// on this box. Used as a cheap pre-pass before the full SAT.
func (o OBB) ContainsAnyCorner(other OBB) bool {
	for _, corner := range other.Corners() {
		if o.ContainsPoint(corner) {
			return true
		}
	}
	return false
}

// Intersects tests the two boxes with the Separating Axis Theorem over
// the 15 candidate axes: 3+3 face normals and 9 edge cross products.
func (o OBB) Intersects(other OBB) bool {
	ax, ay, az := o.Axes()
	bx, by, bz := other.Axes()
	axesA := [3]vmath.Vec3{ax, ay, az}
	axesB := [3]vmath.Vec3{bx, by, bz}

	// Rotation matrix expressing other in o's coordinate frame, and its
	// epsilon-padded absolute value.
	var r, absR [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = axesA[i].Dot(axesB[j])
			absR[i][j] = math.Abs(r[i][j]) + satEpsilon
		}
	}

	// Translation brought into o's frame.
	d := other.Center.Sub(o.Center)
	t := [3]float64{d.Dot(axesA[0]), d.Dot(axesA[1]), d.Dot(axesA[2])}

	ea := [3]float64{o.Extents.X, o.Extents.Y, o.Extents.Z}
	eb := [3]float64{other.Extents.X, other.Extents.Y, other.Extents.Z}

	// Face normals of o.
	for i := 0; i < 3; i++ {
		ra := ea[i]
		rb := eb[0]*absR[i][0] + eb[1]*absR[i][1] + eb[2]*absR[i][2]
		if math.Abs(t[i]) > ra+rb {
			return false
		}
	}

	// Face normals of other.
	for i := 0; i < 3; i++ {
		ra := ea[0]*absR[0][i] + ea[1]*absR[1][i] + ea[2]*absR[2][i]
		rb := eb[i]
		if math.Abs(t[0]*r[0][i]+t[1]*r[1][i]+t[2]*r[2][i]) > ra+rb {
			return false
		}
	}

	// Edge cross products A_i x B_j.
	for i := 0; i < 3; i++ {
		i1 := (i + 1) % 3
		i2 := (i + 2) % 3
		for j := 0; j < 3; j++ {
			j1 := (j + 1) % 3
			j2 := (j + 2) % 3

			ra := ea[i1]*absR[i2][j] + ea[i2]*absR[i1][j]
			rb := eb[j1]*absR[i][j2] + eb[j2]*absR[i][j1]
			if math.Abs(t[i2]*r[i1][j]-t[i1]*r[i2][j]) > ra+rb {
				return false
			}
		}
	}

	// No separating axis found.
	return true
}

// IntersectsBox tests against an axis-aligned box.
func (o OBB) IntersectsBox(b vmath.Box) bool {
	return o.Intersects(OBBFromBox(b))
}

// Union grows the box to enclose other, keeping this box's orientation
// unless SlerpRotation is set, in which case the orientations are
// blended halfway.
func (o OBB) Union(other OBB) OBB {
	inv := o.Orientation.Inverse()

	minExt := o.Extents.Neg()
	maxExt := o.Extents
	for _, corner := range other.Corners() {
		local := inv.Rotate(corner.Sub(o.Center))
		minExt = minExt.Min(local)
		maxExt = maxExt.Max(local)
	}

	out := o
	out.Extents = maxExt.Sub(minExt).Scale(0.5)
	localCenter := maxExt.Add(minExt).Scale(0.5)
	out.Center = o.Center.Add(o.Orientation.Rotate(localCenter))

	if o.SlerpRotation {
		out.Orientation = o.Orientation.Slerp(other.Orientation, 0.5)
	}
	return out
}

// ToTransform converts the box to a TRS transform whose unit cube maps
// onto the box (scale is the full size, twice the extents).
func (o OBB) ToTransform() vmath.Transform {
	return vmath.Transform{
		Position: o.Center,
		Rotation: o.Orientation,
		Scale:    o.Extents.Scale(2),
	}
}
