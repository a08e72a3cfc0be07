package vmath

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	halfAngle := angle / 2
	s := math.Sin(halfAngle)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(halfAngle),
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length < 1e-9 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul returns the Hamilton product q * other, the rotation other followed by q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the conjugate quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the inverse rotation. For unit quaternions this is the
// conjugate; non-unit quaternions are normalized first.
func (q Quat) Inverse() Quat {
	return q.Normalize().Conjugate()
}

// Rotate rotates a vector by the quaternion.
func (q Quat) Rotate(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// Unrotate rotates a vector by the inverse of the quaternion.
func (q Quat) Unrotate(v Vec3) Vec3 {
	return q.Conjugate().Rotate(v)
}

// AxisX returns the rotated X basis vector.
func (q Quat) AxisX() Vec3 {
	return q.Rotate(Vec3{X: 1})
}

// AxisY returns the rotated Y basis vector.
func (q Quat) AxisY() Vec3 {
	return q.Rotate(Vec3{Y: 1})
}

// AxisZ returns the rotated Z basis vector.
func (q Quat) AxisZ() Vec3 {
	return q.Rotate(Vec3{Z: 1})
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float64) Quat {
	// Compute cos of angle between quaternions
	dot := q.Dot(other)

	// If dot is negative, negate one quaternion to take the shorter path
	if dot < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		dot = -dot
	}

	// If quaternions are very close, use linear interpolation to avoid division by zero
	if dot > 0.9995 {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	// Standard slerp
	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}
