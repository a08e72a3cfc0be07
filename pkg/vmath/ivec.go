package vmath

// IVec2 is a 2D integer vector, used for 2D grid cell coordinates.
type IVec2 struct {
	X, Y int
}

// Add returns v + other.
func (v IVec2) Add(other IVec2) IVec2 {
	return IVec2{v.X + other.X, v.Y + other.Y}
}

// IVec3 is a 3D integer vector, used for grid cell coordinates and counts.
type IVec3 struct {
	X, Y, Z int
}

// Add returns v + other.
func (v IVec3) Add(other IVec3) IVec3 {
	return IVec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v IVec3) Sub(other IVec3) IVec3 {
	return IVec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Vec3 converts to a float vector.
func (v IVec3) Vec3() Vec3 {
	return Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
