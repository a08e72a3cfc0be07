package vmath

import "math"

// Box is an axis-aligned bounding box in world space.
type Box struct {
	Min, Max Vec3
}

// NewBox returns a box spanning the two corners, fixing up swapped
// components so Min <= Max holds on every axis.
func NewBox(a, b Vec3) Box {
	return Box{Min: a.Min(b), Max: a.Max(b)}
}

// BoxFromPoints returns the smallest box enclosing all points.
func BoxFromPoints(points ...Vec3) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center returns the box center.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box dimensions.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Extent returns the half-size of the box.
func (b Box) Extent() Vec3 {
	return b.Size().Scale(0.5)
}

// IsInsideOrOn reports whether the point lies inside the box or on its surface.
func (b Box) IsInsideOrOn(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether other lies fully inside or on this box.
func (b Box) ContainsBox(other Box) bool {
	return b.IsInsideOrOn(other.Min) && b.IsInsideOrOn(other.Max)
}

// Intersects reports whether the two boxes overlap (touching counts).
func (b Box) Intersects(other Box) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Intersection returns the overlapping region of the two boxes. ok is
// false when the boxes do not overlap.
func (b Box) Intersection(other Box) (Box, bool) {
	r := Box{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y || r.Min.Z > r.Max.Z {
		return Box{}, false
	}
	return r, true
}

// Union returns the smallest box enclosing both boxes.
func (b Box) Union(other Box) Box {
	return Box{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Expand returns the box grown by d on all sides.
func (b Box) Expand(d float64) Box {
	e := Vec3{d, d, d}
	return Box{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

// DistanceSquared returns the squared distance from the point to the box,
// zero if the point is inside.
func (b Box) DistanceSquared(p Vec3) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		v := p.Component(i)
		lo := b.Min.Component(i)
		hi := b.Max.Component(i)
		if v < lo {
			d += (lo - v) * (lo - v)
		} else if v > hi {
			d += (v - hi) * (v - hi)
		}
	}
	return d
}

// IntersectsSphere reports whether a sphere overlaps the box.
func (b Box) IntersectsSphere(center Vec3, radius float64) bool {
	return b.DistanceSquared(center) <= radius*radius
}

// Rect is an axis-aligned rectangle in the XY plane.
type Rect struct {
	Min, Max Vec2
}

// NewRect returns a rect spanning the two corners.
func NewRect(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// Center returns the rect center.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Size returns the rect dimensions.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// IsInsideOrOn reports whether the point lies inside the rect or on its edge.
func (r Rect) IsInsideOrOn(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other lies fully inside or on this rect.
func (r Rect) ContainsRect(other Rect) bool {
	return r.IsInsideOrOn(other.Min) && r.IsInsideOrOn(other.Max)
}
