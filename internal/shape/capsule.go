package shape

import "github.com/Faultbox/voxelate/pkg/vmath"

// Capsule is a capsule in world space: a segment from Start to End with
// hemispherical caps of the given radius.
type Capsule struct {
	Start  vmath.Vec3
	End    vmath.Vec3
	Radius float64
}

// NewCapsule builds a capsule proxy from local-space element parameters
// and an instance transform. The segment runs along the element's local
// rotation applied to the instance's up axis, half the element length to
// either side of the transformed center.
func NewCapsule(localCenter vmath.Vec3, length, radius float64, localRotation vmath.Quat, instance vmath.Transform) Capsule {
	center := instance.TransformPosition(localCenter)
	axis := localRotation.Rotate(instance.Rotation.AxisZ())
	half := axis.Scale(length / 2)

	return Capsule{
		Start:  center.Add(half),
		End:    center.Sub(half),
		Radius: radius,
	}
}

// segmentProjection holds the result of projecting a point onto a
// segment: the closest point on the segment and where the unclamped
// projection fell relative to it (-1 before start, 0 on, +1 past end).
type segmentProjection struct {
	point    vmath.Vec3
	relation int
}

// projectPointToSegment projects p onto the segment [start, end].
// ok is false for degenerate (zero-length) segments.
func projectPointToSegment(start, end, p vmath.Vec3) (segmentProjection, bool) {
	edge := end.Sub(start)
	lengthSq := edge.LengthSquared()
	if lengthSq < 1e-12 {
		return segmentProjection{}, false
	}

	rel := p.Sub(start).Dot(edge) / lengthSq
	switch {
	case rel < 0:
		return segmentProjection{point: start, relation: -1}, true
	case rel > 1:
		return segmentProjection{point: end, relation: 1}, true
	default:
		return segmentProjection{point: start.Add(edge.Scale(rel))}, true
	}
}

// Intersects reports whether the capsule overlaps an axis-aligned box.
//
// The box center is projected onto the capsule segment. Projections
// falling past either endpoint reduce to a sphere test at that endpoint.
// Otherwise the point on the capsule surface nearest the box center is
// tested for containment. A zero-length capsule degenerates to a sphere
// at the start point.
func (c Capsule) Intersects(b vmath.Box) bool {
	center := b.Center()

	proj, ok := projectPointToSegment(c.Start, c.End, center)
	if !ok {
		return b.IntersectsSphere(c.Start, c.Radius)
	}

	if proj.relation < 0 {
		return b.IntersectsSphere(c.Start, c.Radius)
	}
	if proj.relation > 0 {
		return b.IntersectsSphere(c.End, c.Radius)
	}

	toward := center.Sub(proj.point).Normalize()
	return b.IsInsideOrOn(proj.point.Add(toward.Scale(c.Radius)))
}
