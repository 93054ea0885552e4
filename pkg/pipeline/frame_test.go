package pipeline

import (
	"math"
	"testing"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

func flatAt(z float32) geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewVector3(0, 0, z),
		geometry.NewVector3(1, 0, z),
		geometry.NewVector3(0, 1, z),
	)
}

func TestTheta(t *testing.T) {
	if theta := Theta(0); theta != 1 {
		t.Errorf("Theta(0) failed: expected 1, got %v", theta)
	}
	if theta := Theta(2500); math.Abs(float64(theta-3.5)) > 1e-6 {
		t.Errorf("Theta(2500) failed: expected 3.5, got %v", theta)
	}
}

func TestDepthSortFarthestFirst(t *testing.T) {
	tris := []geometry.Triangle{flatAt(5), flatAt(1), flatAt(3)}
	DepthSort(tris)

	expected := []float32{5, 3, 1}
	for i, want := range expected {
		if got := tris[i].AverageZ(); got != want {
			t.Errorf("DepthSort failed at %d: expected z %v, got %v", i, want, got)
		}
	}
}

func TestDepthSortStableOnTies(t *testing.T) {
	first := geometry.NewTriangle(geometry.NewVector3(1, 0, 2), geometry.NewVector3(0, 0, 2), geometry.NewVector3(0, 1, 2))
	second := flatAt(2)
	tris := []geometry.Triangle{first, second, flatAt(4)}
	DepthSort(tris)

	if tris[1] != first || tris[2] != second {
		t.Errorf("DepthSort reordered equal depths: got %v", tris)
	}
}

func TestDepthSortNaNComparesEqual(t *testing.T) {
	nan := float32(math.NaN())
	tris := []geometry.Triangle{flatAt(nan), flatAt(7)}
	DepthSort(tris)

	if !math.IsNaN(float64(tris[0].AverageZ())) || tris[1].AverageZ() != 7 {
		t.Errorf("DepthSort moved a NaN triangle: got %v", tris)
	}
}

func TestFrameProcessCullsCube(t *testing.T) {
	cfg := DefaultConfig()
	frame := NewFrame(cfg, 0)

	// Centre the unit cube on the view axis, 3 units in front of the camera.
	// Only the south face (z=3, normal -Z) faces the camera.
	tris := frame.Process(mesh.UnitCube(), geometry.NewVector3(-0.5, -0.5, 3))

	if len(tris) != 2 {
		t.Fatalf("Process failed: expected 2 visible triangles, got %d", len(tris))
	}

	// z=3 projects to depth (3*zFar/(zFar-zNear) - zFar*zNear/(zFar-zNear)) / 3
	wantZ := (3*cfg.ZFar/(cfg.ZFar-cfg.ZNear) - cfg.ZFar*cfg.ZNear/(cfg.ZFar-cfg.ZNear)) / 3
	for i, tri := range tris {
		if math.Abs(float64(tri.AverageZ()-wantZ)) > 1e-4 {
			t.Errorf("Triangle %d depth failed: expected %v, got %v", i, wantZ, tri.AverageZ())
		}
		for _, v := range tri.Vertices() {
			if v.X < 0 || v.X > float32(cfg.ScreenWidth) || v.Y < 0 || v.Y > float32(cfg.ScreenHeight) {
				t.Errorf("Triangle %d vertex off screen: %v", i, v)
			}
		}
	}
}

func TestFrameProcessDoesNotModifyMesh(t *testing.T) {
	cube := mesh.UnitCube()
	before := append([]geometry.Triangle(nil), cube.Triangles...)

	NewFrame(DefaultConfig(), Theta(1234)).Process(cube, geometry.NewVector3(0, 0, 4))

	for i := range before {
		if cube.Triangles[i] != before[i] {
			t.Fatalf("Process modified mesh triangle %d", i)
		}
	}
}

func TestFrameProcessMatchesTriangleChain(t *testing.T) {
	cfg := DefaultConfig()
	theta := Theta(4321)
	offset := geometry.NewVector3(0.2, -0.1, 5)
	cube := mesh.UnitCube()

	var expected []geometry.Triangle
	for _, tri := range cube.Triangles {
		world := tri.RotateZ(theta).RotateX(theta).Translate(offset.X, offset.Y, offset.Z)
		if world.Visible(cfg.Camera) {
			expected = append(expected, world.Project(cfg.Projection()).
				Scale(float32(cfg.ScreenWidth), float32(cfg.ScreenHeight), cfg.ScreenScale))
		}
	}
	DepthSort(expected)

	got := NewFrame(cfg, theta).Process(cube, offset)
	if len(got) != len(expected) {
		t.Fatalf("Process failed: expected %d triangles, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Triangle %d failed: expected %v, got %v", i, expected[i], got[i])
		}
	}
}
