package vmath

// Transform is a translation-rotation-scale transform applied in the
// order scale, rotate, translate.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// TransformIdentity returns the identity transform.
func TransformIdentity() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// NewTransform builds a transform from position, rotation and scale.
func NewTransform(position Vec3, rotation Quat, scale Vec3) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: scale}
}

// TransformPosition applies the transform to a local-space point.
func (t Transform) TransformPosition(p Vec3) Vec3 {
	return t.Position.Add(t.Rotation.Rotate(p.Mul(t.Scale)))
}

// TransformVector applies rotation and scale without translation.
func (t Transform) TransformVector(v Vec3) Vec3 {
	return t.Rotation.Rotate(v.Mul(t.Scale))
}

// Up returns the transform's local Z axis in world space.
func (t Transform) Up() Vec3 {
	return t.Rotation.AxisZ()
}
