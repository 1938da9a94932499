package geometry

import (
	gomath "math"
	"testing"

	"github.com/omaressa123/RAG-BioL/pkg/math"
)

func almostEqual(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestSphereVerticesOnSurface(t *testing.T) {
	const radius = 2.0
	m := Sphere(radius, 16, 12)

	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Fatal("sphere has no geometry")
	}
	for i, v := range m.Vertices {
		p := v.Position
		r := float32(gomath.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
		if !almostEqual(r, radius, 1e-4) {
			t.Fatalf("vertex %d at distance %v, want %v", i, r, radius)
		}
	}
}

func TestSphereBounds(t *testing.T) {
	m := Sphere(1.5, 16, 12)
	if !almostEqual(m.Bounds.MaxDimension(), 3.0, 1e-3) {
		t.Errorf("sphere max dimension = %v, want ~3", m.Bounds.MaxDimension())
	}
}

func TestCapsuleExtents(t *testing.T) {
	m := Capsule(0.5, 2.0, 8, 16)
	// Total height is cylinder height plus both cap radii
	height := m.Bounds.Max[1] - m.Bounds.Min[1]
	if !almostEqual(height, 3.0, 1e-3) {
		t.Errorf("capsule height = %v, want ~3", height)
	}
	width := m.Bounds.Max[0] - m.Bounds.Min[0]
	if !almostEqual(width, 1.0, 1e-3) {
		t.Errorf("capsule width = %v, want ~1", width)
	}
}

func TestCylinderCapsPresent(t *testing.T) {
	m := Cylinder(1, 1, 2, 16)
	var up, down int
	for _, v := range m.Vertices {
		if v.Normal == ([3]float32{0, 1, 0}) {
			up++
		}
		if v.Normal == ([3]float32{0, -1, 0}) {
			down++
		}
	}
	if up == 0 || down == 0 {
		t.Errorf("cylinder missing cap vertices: up=%d down=%d", up, down)
	}
}

func TestBoxDimensions(t *testing.T) {
	m := Box(2, 4, 6)
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("box has %d vertices / %d indices, want 24/36", len(m.Vertices), len(m.Indices))
	}
	want := [3]float32{2, 4, 6}
	for i := 0; i < 3; i++ {
		d := m.Bounds.Max[i] - m.Bounds.Min[i]
		if !almostEqual(d, want[i], 1e-5) {
			t.Errorf("box extent[%d] = %v, want %v", i, d, want[i])
		}
	}
}

func TestPlaneGridLayout(t *testing.T) {
	m := Plane(2, 2, 4, 4)
	if len(m.Vertices) != 25 {
		t.Fatalf("plane has %d vertices, want 25", len(m.Vertices))
	}
	// All on z=0 facing +Z before any displacement
	for i, v := range m.Vertices {
		if v.Position[2] != 0 {
			t.Fatalf("vertex %d has z=%v, want 0", i, v.Position[2])
		}
		if v.Normal != ([3]float32{0, 0, 1}) {
			t.Fatalf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
	// Corners span the full extent
	if m.Vertices[0].Position[0] != -1 || m.Vertices[0].Position[1] != -1 {
		t.Errorf("first vertex = %v, want (-1,-1,0)", m.Vertices[0].Position)
	}
	last := m.Vertices[len(m.Vertices)-1].Position
	if last[0] != 1 || last[1] != 1 {
		t.Errorf("last vertex = %v, want (1,1,0)", last)
	}
}

func TestTorusKnotClosed(t *testing.T) {
	m := TorusKnot(1, 0.3, 64, 8, 2, 3)
	if len(m.Vertices) != 65*9 {
		t.Fatalf("torus knot has %d vertices, want %d", len(m.Vertices), 65*9)
	}
	if len(m.Indices) != 64*8*6 {
		t.Fatalf("torus knot has %d indices, want %d", len(m.Indices), 64*8*6)
	}
	for i, v := range m.Vertices {
		l := float32(gomath.Sqrt(float64(v.Normal[0]*v.Normal[0] + v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2])))
		if !almostEqual(l, 1, 1e-3) {
			t.Fatalf("vertex %d normal length = %v, want ~1", i, l)
		}
	}
}

func TestRecomputeNormalsPlane(t *testing.T) {
	m := Plane(2, 2, 8, 8)
	// Scramble normals, then recompute; flat plane must come back to +Z
	for i := range m.Vertices {
		m.Vertices[i].Normal = [3]float32{1, 0, 0}
	}
	m.RecomputeNormals()
	for i, v := range m.Vertices {
		if !almostEqual(v.Normal[2], 1, 1e-4) {
			t.Fatalf("vertex %d normal = %v, want +Z after recompute", i, v.Normal)
		}
	}
}

func TestTransformTranslates(t *testing.T) {
	m := Box(1, 1, 1)
	m.Transform(math.Translate(5, 0, 0))
	if !almostEqual(m.Bounds.Min[0], 4.5, 1e-5) || !almostEqual(m.Bounds.Max[0], 5.5, 1e-5) {
		t.Errorf("translated bounds = [%v, %v], want [4.5, 5.5]", m.Bounds.Min[0], m.Bounds.Max[0])
	}
}

func TestBoundsUnionAndMaxDimension(t *testing.T) {
	a := EmptyBounds()
	a.Expand([3]float32{-1, 0, 0})
	a.Expand([3]float32{1, 2, 0})
	b := EmptyBounds()
	b.Expand([3]float32{0, 0, -4})
	b.Expand([3]float32{0, 0, 4})
	a.Union(b)
	if a.MaxDimension() != 8 {
		t.Errorf("union max dimension = %v, want 8", a.MaxDimension())
	}
}
