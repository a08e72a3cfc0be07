// Package scene holds the collision-scene snapshot the voxelator reads:
// objects, their components, the shape elements attached to each
// component, and the overlap query used to enumerate them.
package scene

import (
	"fmt"

	"github.com/Faultbox/voxelate/pkg/vmath"
)

// ShapeKind discriminates the closed set of collision shape variants.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCapsule
	ShapeConvex
	ShapeHeightfield
)

// String returns the kind's scene-file spelling.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCapsule:
		return "capsule"
	case ShapeConvex:
		return "convex"
	case ShapeHeightfield:
		return "heightfield"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShapeKind parses a scene-file shape kind string.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "box":
		return ShapeBox, nil
	case "sphere":
		return ShapeSphere, nil
	case "capsule":
		return ShapeCapsule, nil
	case "convex":
		return ShapeConvex, nil
	case "heightfield":
		return ShapeHeightfield, nil
	default:
		return 0, fmt.Errorf("unknown shape kind %q", s)
	}
}

// Shape is one collision element of a component, in the component's
// local space. Kind selects which fields are meaningful.
type Shape struct {
	Kind ShapeKind

	// Box: local-space bounds.
	LocalBounds vmath.Box

	// Sphere and capsule: local center and radius.
	Center vmath.Vec3
	Radius float64

	// Capsule: segment length along the rotated Z axis.
	Length   float64
	Rotation vmath.Quat

	// Convex: triangle mesh in local space.
	Vertices []vmath.Vec3
	Indices  []int32

	// Heightfield: packed square lattice of height samples.
	Samples []uint16
}
