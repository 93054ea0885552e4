// Package analysis summarizes a mesh for the info command.
package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

// EdgeInfo describes one triangle edge
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float32
	TriangleID int
}

// Report holds the statistics printed by the info command
type Report struct {
	Name           string
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	SurfaceArea    float32
	TriangleCount  int
	UniqueVertices int
	// Degenerate counts zero-area triangles; their normals are NaN and
	// they are never drawn.
	Degenerate    int
	EdgeCount     int
	MinEdgeLength float32
	MaxEdgeLength float32
	AvgEdgeLength float32
	AllEdges      []EdgeInfo
}

// Analyze computes a Report for m. An empty mesh yields zero statistics.
func Analyze(m *mesh.Mesh) *Report {
	report := &Report{
		Name:          m.Name,
		TriangleCount: m.TriangleCount(),
		SurfaceArea:   m.SurfaceArea(),
		AllEdges:      make([]EdgeInfo, 0, 3*m.TriangleCount()),
	}
	if report.TriangleCount == 0 {
		return report
	}

	report.BoundingBox = m.BoundingBox()
	report.Dimensions = report.BoundingBox.Size()

	vertices := make(map[geometry.Vector3]struct{})
	minLength := float32(math.MaxFloat32)
	var maxLength, totalLength float32

	for i, triangle := range m.Triangles {
		if triangle.Area() == 0 {
			report.Degenerate++
		}

		totalLength += triangle.Perimeter()

		corners := triangle.Vertices()
		lengths := triangle.EdgeLengths()
		for j, start := range corners {
			vertices[start] = struct{}{}

			end := corners[(j+1)%3]
			length := lengths[j]
			report.AllEdges = append(report.AllEdges, EdgeInfo{
				Start:      start,
				End:        end,
				Length:     length,
				TriangleID: i,
			})

			minLength = min(minLength, length)
			maxLength = max(maxLength, length)
		}
	}

	report.UniqueVertices = len(vertices)
	report.EdgeCount = len(report.AllEdges)
	report.MinEdgeLength = minLength
	report.MaxEdgeLength = maxLength
	report.AvgEdgeLength = totalLength / float32(report.EdgeCount)

	return report
}

// LongestEdges returns the count longest edges, longest first
func (r *Report) LongestEdges(count int) []EdgeInfo {
	return r.sortedEdges(count, func(a, b EdgeInfo) int {
		return cmpLength(b, a)
	})
}

// ShortestEdges returns the count shortest edges, shortest first
func (r *Report) ShortestEdges(count int) []EdgeInfo {
	return r.sortedEdges(count, cmpLength)
}

func (r *Report) sortedEdges(count int, cmp func(a, b EdgeInfo) int) []EdgeInfo {
	edges := slices.Clone(r.AllEdges)
	slices.SortStableFunc(edges, cmp)

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

func cmpLength(a, b EdgeInfo) int {
	switch {
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	default:
		return 0
	}
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
