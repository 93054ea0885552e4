package geometry

import "math"

// Matrix4 is a row-major 4x4 matrix applied to row vectors (v * M).
// Row 3 carries the translation and perspective terms.
type Matrix4 [4][4]float32

// Identity returns the identity matrix
func Identity() Matrix4 {
	var m Matrix4
	m[0][0] = 1
	m[1][1] = 1
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// ProjectionMatrix builds a perspective projection.
// aspect is height/width and fov is the full field of view in degrees.
// The input z is copied into w (m[2][3]=1) so Transform performs the
// perspective divide; zNear maps to depth 0 and zFar to depth 1.
func ProjectionMatrix(aspect, fov, zNear, zFar float32) Matrix4 {
	f := float32(1 / math.Tan(float64(fov)*0.5*math.Pi/180))

	var m Matrix4
	m[0][0] = aspect * f
	m[1][1] = f
	m[2][2] = zFar / (zFar - zNear)
	m[3][2] = (-zFar * zNear) / (zFar - zNear)
	m[2][3] = 1
	return m
}

// RotationZ returns a rotation by theta radians about the Z axis
func RotationZ(theta float32) Matrix4 {
	sin, cos := math.Sincos(float64(theta))

	m := Identity()
	m[0][0] = float32(cos)
	m[0][1] = float32(sin)
	m[1][0] = -float32(sin)
	m[1][1] = float32(cos)
	return m
}

// RotationX returns a rotation about the X axis by theta/2 radians.
// The half angle makes the X spin run at half the Z spin's rate when both
// are fed the same theta.
func RotationX(theta float32) Matrix4 {
	sin, cos := math.Sincos(float64(theta) * 0.5)

	m := Identity()
	m[1][1] = float32(cos)
	m[1][2] = float32(sin)
	m[2][1] = -float32(sin)
	m[2][2] = float32(cos)
	return m
}
