package geometry

import (
	"math"
	"testing"
)

func sampleTriangle() Triangle {
	return NewTriangle(
		NewVector3(0.5, -1, 2),
		NewVector3(3, 4, -5),
		NewVector3(-2, 0.25, 7),
	)
}

func TestTriangleRotateZeroIsIdentity(t *testing.T) {
	tri := sampleTriangle()

	for name, rotated := range map[string]Triangle{
		"RotateZ": tri.RotateZ(0),
		"RotateX": tri.RotateX(0),
	} {
		got := rotated.Vertices()
		want := tri.Vertices()
		for i := range want {
			if !nearVector(got[i], want[i], tolerance) {
				t.Errorf("%s(0) failed: vertex %d expected %v, got %v", name, i, want[i], got[i])
			}
		}
	}
}

func TestTriangleTranslate(t *testing.T) {
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	moved := tri.Translate(1, 2, 3)

	expected := NewTriangle(NewVector3(1, 2, 3), NewVector3(2, 2, 3), NewVector3(1, 3, 3))
	if moved != expected {
		t.Errorf("Translate failed: expected %v, got %v", expected, moved)
	}
	if tri.A != (Vector3{}) {
		t.Errorf("Translate modified its receiver: %v", tri)
	}
}

func TestTriangleScale(t *testing.T) {
	tri := NewTriangle(NewVector3(-1, -1, 0.5), NewVector3(0, 0, 0.5), NewVector3(1, 1, 0.5))
	scaled := tri.Scale(1000, 500, 0.3)

	expected := NewTriangle(NewVector3(0, 0, 0.5), NewVector3(300, 150, 0.5), NewVector3(600, 300, 0.5))
	if !nearVector(scaled.A, expected.A, 1e-3) || !nearVector(scaled.B, expected.B, 1e-3) || !nearVector(scaled.C, expected.C, 1e-3) {
		t.Errorf("Scale failed: expected %v, got %v", expected, scaled)
	}
}

func TestTriangleNormalVector(t *testing.T) {
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(2, 0, 0), NewVector3(0, 2, 0))

	expected := NewVector3(0, 0, 1)
	if normal := tri.NormalVector(); !nearVector(normal, expected, tolerance) {
		t.Errorf("NormalVector failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleVisible(t *testing.T) {
	camera := NewVector3(0, 0, 0)

	// Normal (0,0,-1) faces the camera looking down +Z
	front := NewTriangle(NewVector3(0, 0, 5), NewVector3(0, 1, 5), NewVector3(1, 0, 5))
	if n := front.NormalVector(); !nearVector(n, NewVector3(0, 0, -1), tolerance) {
		t.Fatalf("front normal: expected (0,0,-1), got %v", n)
	}
	if !front.Visible(camera) {
		t.Errorf("Visible failed: front-facing triangle was culled")
	}

	back := NewTriangle(front.A, front.C, front.B)
	if back.Visible(camera) {
		t.Errorf("Visible failed: back-facing triangle was kept")
	}
}

func TestTriangleAverageZ(t *testing.T) {
	tri := NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 0, 2), NewVector3(0, 0, 6))

	if avg := tri.AverageZ(); avg != 3 {
		t.Errorf("AverageZ failed: expected 3, got %v", avg)
	}
}

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	if math.Abs(float64(area-6)) > 1e-6 {
		t.Errorf("Area failed: expected %v, got %v", 6, area)
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	if math.Abs(float64(perimeter-12)) > 1e-5 {
		t.Errorf("Perimeter failed: expected %v, got %v", 12, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
