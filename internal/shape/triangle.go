package shape

import (
	"math"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Winding classifies triangle vertex order relative to the origin.
type Winding int

const (
	WindingCW Winding = iota
	WindingCCW
	WindingColinear
)

// Triangle is a triangle in world space, used for convex-hull faces.
type Triangle struct {
	V [3]vmath.Vec3
}

// NewTriangle builds a triangle from three world-space vertices.
func NewTriangle(v0, v1, v2 vmath.Vec3) Triangle {
	return Triangle{V: [3]vmath.Vec3{v0, v1, v2}}
}

// NewTriangleWithWinding builds a triangle, swapping v1 and v2 if needed
// to achieve the requested winding.
func NewTriangleWithWinding(v0, v1, v2 vmath.Vec3, w Winding) Triangle {
	t := NewTriangle(v0, v1, v2)
	if t.Winding() != w {
		t.V[1], t.V[2] = t.V[2], t.V[1]
	}
	return t
}

// TrianglesFromMesh builds world-space triangles from a local-space
// vertex buffer and a flat index buffer (three indices per face),
// applying the instance transform to every vertex.
func TrianglesFromMesh(vertices []vmath.Vec3, indices []int32, instance vmath.Transform) []Triangle {
	triangles := make([]Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, NewTriangle(
			instance.TransformPosition(vertices[indices[i]]),
			instance.TransformPosition(vertices[indices[i+1]]),
			instance.TransformPosition(vertices[indices[i+2]]),
		))
	}
	return triangles
}

// Normal returns the unit face normal, or the zero vector for a
// degenerate triangle.
func (t Triangle) Normal() vmath.Vec3 {
	e1 := t.V[1].Sub(t.V[0]).Normalize()
	e2 := t.V[2].Sub(t.V[0]).Normalize()
	return e1.Cross(e2).Normalize()
}

// Centroid returns the triangle centroid.
func (t Triangle) Centroid() vmath.Vec3 {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).Scale(1.0 / 3.0)
}

// Winding classifies the vertex order as seen from the origin.
func (t Triangle) Winding() Winding {
	cross := t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0]))
	dot := cross.Dot(t.V[0])
	switch {
	case dot > 0:
		return WindingCCW
	case dot < 0:
		return WindingCW
	default:
		return WindingColinear
	}
}

// WithWinding returns the triangle reordered to the requested winding.
func (t Triangle) WithWinding(w Winding) Triangle {
	if t.Winding() == w {
		return t
	}
	return NewTriangle(t.V[0], t.V[2], t.V[1])
}

// Barycentric returns the barycentric coordinates of a point with
// respect to the triangle. A near-singular system (zero-area sliver)
// falls back to full weight on the nearest vertex instead of
// propagating NaN.
func (t Triangle) Barycentric(p vmath.Vec3) vmath.Vec3 {
	v02 := t.V[0].Sub(t.V[2])
	v12 := t.V[1].Sub(t.V[2])
	pv2 := p.Sub(t.V[2])

	m00 := v02.Dot(v02)
	m01 := v02.Dot(v12)
	m11 := v12.Dot(v12)
	r0 := v02.Dot(pv2)
	r1 := v12.Dot(pv2)

	det := m00*m11 - m01*m01
	if math.Abs(det) < 1e-12 {
		return t.nearestVertexWeights(p)
	}

	invDet := 1.0 / det
	b0 := (m11*r0 - m01*r1) * invDet
	b1 := (m00*r1 - m01*r0) * invDet
	return vmath.Vec3{X: b0, Y: b1, Z: 1 - b0 - b1}
}

// nearestVertexWeights returns unit weight on the vertex closest to p.
func (t Triangle) nearestVertexWeights(p vmath.Vec3) vmath.Vec3 {
	best := 0
	bestDist := p.Sub(t.V[0]).LengthSquared()
	for i := 1; i < 3; i++ {
		if d := p.Sub(t.V[i]).LengthSquared(); d < bestDist {
			best, bestDist = i, d
		}
	}
	switch best {
	case 0:
		return vmath.Vec3{X: 1}
	case 1:
		return vmath.Vec3{Y: 1}
	default:
		return vmath.Vec3{Z: 1}
	}
}

// BarycentricPoint converts barycentric coordinates back to a point.
func (t Triangle) BarycentricPoint(bary vmath.Vec3) vmath.Vec3 {
	return t.V[0].Scale(bary.X).Add(t.V[1].Scale(bary.Y)).Add(t.V[2].Scale(bary.Z))
}

// Expand returns the triangle with each vertex pushed delta away from
// the centroid.
func (t Triangle) Expand(delta float64) Triangle {
	c := t.Centroid()
	return NewTriangle(
		t.V[0].Add(t.V[0].Sub(c).Normalize().Scale(delta)),
		t.V[1].Add(t.V[1].Sub(c).Normalize().Scale(delta)),
		t.V[2].Add(t.V[2].Sub(c).Normalize().Scale(delta)),
	)
}

// Translated returns the triangle moved by offset.
func (t Triangle) Translated(offset vmath.Vec3) Triangle {
	return NewTriangle(t.V[0].Add(offset), t.V[1].Add(offset), t.V[2].Add(offset))
}

// Intersects tests the triangle against an axis-aligned box with the
// Separating Axis Theorem over 13 candidate axes: 9 edge cross products
// with the box axes, the 3 box face normals, and the triangle normal.
func (t Triangle) Intersects(b vmath.Box) bool {
	// Work in box-centered space.
	tri := t.Translated(b.Center().Neg())
	extent := b.Extent()

	ab := tri.V[1].Sub(tri.V[0]).Normalize()
	bc := tri.V[2].Sub(tri.V[1]).Normalize()
	ca := tri.V[0].Sub(tri.V[2]).Normalize()

	axes := [13]vmath.Vec3{
		// Edges crossed with (1,0,0).
		{X: 0, Y: -ab.Z, Z: ab.Y},
		{X: 0, Y: -bc.Z, Z: bc.Y},
		{X: 0, Y: -ca.Z, Z: ca.Y},
		// Edges crossed with (0,1,0).
		{X: ab.Z, Y: 0, Z: -ab.X},
		{X: bc.Z, Y: 0, Z: -bc.X},
		{X: ca.Z, Y: 0, Z: -ca.X},
		// Edges crossed with (0,0,1).
		{X: -ab.Y, Y: ab.X, Z: 0},
		{X: -bc.Y, Y: bc.X, Z: 0},
		{X: -ca.Y, Y: ca.X, Z: 0},
		// Box face normals.
		{X: 1},
		{Y: 1},
		{Z: 1},
		// Triangle normal.
		ab.Cross(bc),
	}

	for _, axis := range axes {
		if separatedOnAxis(tri, extent, axis) {
			return false
		}
	}
	return true
}

// separatedOnAxis reports whether the projections of a box-centered
// triangle and the box are disjoint along the axis.
func separatedOnAxis(tri Triangle, extent, axis vmath.Vec3) bool {
	p0 := tri.V[0].Dot(axis)
	p1 := tri.V[1].Dot(axis)
	p2 := tri.V[2].Dot(axis)

	r := extent.X*math.Abs(axis.X) +
		extent.Y*math.Abs(axis.Y) +
		extent.Z*math.Abs(axis.Z)

	minP := math.Min(p0, math.Min(p1, p2))
	maxP := math.Max(p0, math.Max(p1, p2))

	return math.Max(-maxP, minP) > r
}
