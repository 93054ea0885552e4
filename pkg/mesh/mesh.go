// Package mesh holds triangle meshes and the parsers that build them.
package mesh

import (
	"github.com/philipparndt/goobj/pkg/geometry"
)

// Mesh is an ordered list of triangles, in source order.
// A loaded mesh is never modified; per-frame transforms work on copies.
type Mesh struct {
	Name      string
	Triangles []geometry.Triangle
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a triangle to the mesh
func (m *Mesh) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire mesh
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.A)
		bbox.Extend(triangle.B)
		bbox.Extend(triangle.C)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float32 {
	var total float32
	for _, triangle := range m.Triangles {
		total += triangle.Area()
	}
	return total
}

// UnitCube returns the 12-triangle cube spanning {0,1}³.
// The winding of each face decides which faces survive back-face culling.
func UnitCube() *Mesh {
	v := geometry.NewVector3
	tri := geometry.NewTriangle

	return &Mesh{
		Name: "cube",
		Triangles: []geometry.Triangle{
			// South
			tri(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)),
			tri(v(0, 0, 0), v(1, 1, 0), v(1, 0, 0)),
			// East
			tri(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)),
			tri(v(1, 0, 0), v(1, 1, 1), v(1, 0, 1)),
			// North
			tri(v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)),
			tri(v(1, 0, 1), v(0, 1, 1), v(0, 0, 1)),
			// West
			tri(v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)),
			tri(v(0, 0, 1), v(0, 1, 0), v(0, 0, 0)),
			// Top
			tri(v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)),
			tri(v(0, 1, 0), v(1, 1, 1), v(1, 1, 0)),
			// Bottom
			tri(v(1, 0, 1), v(0, 0, 1), v(0, 0, 0)),
			tri(v(1, 0, 1), v(0, 0, 0), v(1, 0, 0)),
		},
	}
}
