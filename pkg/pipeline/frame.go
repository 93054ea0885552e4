package pipeline

import (
	"slices"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

// Theta returns the rotation angle for a frame drawn elapsedMs after start.
// It grows without bound; the trigonometric functions wrap it.
func Theta(elapsedMs uint64) float32 {
	return 1 + 0.001*float32(elapsedMs)
}

// Frame holds the matrices shared by every triangle of one frame
type Frame struct {
	cfg        Config
	rotateZ    geometry.Matrix4
	rotateX    geometry.Matrix4
	projection geometry.Matrix4
}

// NewFrame builds the per-frame matrices for angle theta
func NewFrame(cfg Config, theta float32) Frame {
	return Frame{
		cfg:        cfg,
		rotateZ:    geometry.RotationZ(theta),
		rotateX:    geometry.RotationX(theta),
		projection: cfg.Projection(),
	}
}

// Process rotates, translates, culls, projects and depth-sorts the mesh.
// The result is in screen space, farthest triangle first.
func (f Frame) Process(m *mesh.Mesh, offset geometry.Vector3) []geometry.Triangle {
	width := float32(f.cfg.ScreenWidth)
	height := float32(f.cfg.ScreenHeight)

	visible := make([]geometry.Triangle, 0, len(m.Triangles))
	for _, tri := range m.Triangles {
		world := tri.Transform(f.rotateZ).Transform(f.rotateX).Translate(offset.X, offset.Y, offset.Z)
		if !world.Visible(f.cfg.Camera) {
			continue
		}
		visible = append(visible, world.Project(f.projection).Scale(width, height, f.cfg.ScreenScale))
	}

	DepthSort(visible)
	return visible
}

// DepthSort orders triangles by descending average Z so that nearer
// triangles are painted last. The sort is stable and NaN compares equal
// to everything. Interpenetrating triangles are not split.
func DepthSort(tris []geometry.Triangle) {
	slices.SortStableFunc(tris, func(a, b geometry.Triangle) int {
		za, zb := a.AverageZ(), b.AverageZ()
		switch {
		case za > zb:
			return -1
		case za < zb:
			return 1
		default:
			return 0
		}
	})
}
