package geometry

// Triangle represents a triangular face in 3D space.
// Vertices are wound so that NormalVector points out of the front face.
// Every transform returns a new Triangle; the receiver is never modified.
type Triangle struct {
	A, B, C Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns the three vertices in winding order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.A, t.B, t.C}
}

// Transform applies m to each vertex
func (t Triangle) Transform(m Matrix4) Triangle {
	return Triangle{
		A: t.A.Transform(m),
		B: t.B.Transform(m),
		C: t.C.Transform(m),
	}
}

// RotateZ rotates the triangle by theta radians about the Z axis
func (t Triangle) RotateZ(theta float32) Triangle {
	return t.Transform(RotationZ(theta))
}

// RotateX rotates the triangle about the X axis by theta/2 radians (see RotationX)
func (t Triangle) RotateX(theta float32) Triangle {
	return t.Transform(RotationX(theta))
}

// Translate moves every vertex by (dx, dy, dz)
func (t Triangle) Translate(dx, dy, dz float32) Triangle {
	offset := NewVector3(dx, dy, dz)
	return Triangle{
		A: t.A.Add(offset),
		B: t.B.Add(offset),
		C: t.C.Add(offset),
	}
}

// Project applies a projection matrix built by ProjectionMatrix
func (t Triangle) Project(projection Matrix4) Triangle {
	return t.Transform(projection)
}

// Scale maps normalized device coordinates to screen pixels:
// screen = (ndc + 1) * factor * size. Z is left unchanged.
func (t Triangle) Scale(width, height, factor float32) Triangle {
	scale := func(v Vector3) Vector3 {
		return Vector3{
			X: (v.X + 1) * factor * width,
			Y: (v.Y + 1) * factor * height,
			Z: v.Z,
		}
	}
	return Triangle{A: scale(t.A), B: scale(t.B), C: scale(t.C)}
}

// NormalVector returns the unit normal (B-A) x (C-A).
// A degenerate triangle yields NaN components.
func (t Triangle) NormalVector() Vector3 {
	lineA := t.B.Sub(t.A)
	lineB := t.C.Sub(t.A)
	return lineA.Cross(lineB).Normalize()
}

// Visible reports whether the front face points towards camera,
// i.e. dot(normal, A - camera) < 0.
func (t Triangle) Visible(camera Vector3) bool {
	return t.NormalVector().Dot(t.A.Sub(camera)) < 0
}

// AverageZ returns the mean depth of the three vertices
func (t Triangle) AverageZ() float32 {
	return (t.A.Z + t.B.Z + t.C.Z) / 3
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float32 {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	return edge1.Cross(edge2).Length() / 2
}

// EdgeLengths returns the lengths of AB, BC and CA
func (t Triangle) EdgeLengths() [3]float32 {
	return [3]float32{
		t.A.Distance(t.B),
		t.B.Distance(t.C),
		t.C.Distance(t.A),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float32 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
		Z: (t.A.Z + t.B.Z + t.C.Z) / 3,
	}
}
