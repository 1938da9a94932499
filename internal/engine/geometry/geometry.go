// Package geometry provides CPU-side triangle mesh construction for the
// specimen viewer: primitive builders, normal recomputation, and bounds.
package geometry

import (
	gomath "math"

	"github.com/omaressa123/RAG-BioL/pkg/math"
)

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns bounds that any point will expand.
func EmptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// Expand grows the bounds to include point p.
func (b *Bounds) Expand(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union grows the bounds to include other.
func (b *Bounds) Union(other Bounds) {
	b.Expand(other.Min)
	b.Expand(other.Max)
}

// MaxDimension returns the largest extent along any axis.
func (b Bounds) MaxDimension() float32 {
	var max float32
	for i := 0; i < 3; i++ {
		d := b.Max[i] - b.Min[i]
		if d > max {
			max = d
		}
	}
	return max
}

// Mesh holds triangle mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// RecomputeBounds rebuilds the bounding box from the current vertices.
func (m *Mesh) RecomputeBounds() {
	b := EmptyBounds()
	for i := range m.Vertices {
		b.Expand(m.Vertices[i].Position)
	}
	m.Bounds = b
}

// RecomputeNormals replaces vertex normals with area-weighted averages of
// the adjacent face normals. Degenerate triangles contribute nothing.
func (m *Mesh) RecomputeNormals() {
	acc := make([][3]float32, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0 := m.Vertices[i0].Position
		p1 := m.Vertices[i1].Position
		p2 := m.Vertices[i2].Position

		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		// Cross product magnitude is proportional to face area,
		// so accumulating unnormalized gives area weighting.
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}

		for _, vi := range []uint32{i0, i1, i2} {
			acc[vi][0] += n[0]
			acc[vi][1] += n[1]
			acc[vi][2] += n[2]
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = normalize(acc[i])
	}
}

// Transform applies matrix t to all vertex positions and rotates normals by
// its upper 3x3 (assumes uniform scale), then recomputes bounds.
func (m *Mesh) Transform(t math.Mat4) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = t.TransformPoint(v.Position)
		n := v.Normal
		v.Normal = normalize([3]float32{
			t[0]*n[0] + t[4]*n[1] + t[8]*n[2],
			t[1]*n[0] + t[5]*n[1] + t[9]*n[2],
			t[2]*n[0] + t[6]*n[1] + t[10]*n[2],
		})
	}
	m.RecomputeBounds()
}

func normalize(v [3]float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 1e-8 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
