// Package scene provides the specimen scene graph: nodes, materials,
// lights, and fog. Rendering is handled elsewhere; this package is pure data.
package scene

import (
	"github.com/omaressa123/RAG-BioL/internal/engine/geometry"
	"github.com/omaressa123/RAG-BioL/pkg/math"
)

// Side selects which triangle faces a material renders.
type Side int

const (
	// SideFront renders front faces (the default).
	SideFront Side = iota
	// SideBack renders back faces only, used for inside-out shells.
	SideBack
)

// Material holds surface shading parameters.
type Material struct {
	Color       [3]float32
	Emissive    [3]float32
	Roughness   float32
	Metalness   float32
	Opacity     float32
	Transparent bool
	Side        Side
}

// DefaultMaterial returns an opaque mid-gray material.
func DefaultMaterial() *Material {
	return &Material{
		Color:     [3]float32{0.8, 0.8, 0.8},
		Roughness: 0.7,
		Opacity:   1,
	}
}

// Node is a renderable element: a mesh with a material and a local
// transform, or a pure group holding children.
type Node struct {
	Name     string
	Mesh     *geometry.Mesh
	Material *Material

	Position math.Vec3
	Rotation math.Vec3 // Euler XYZ, radians
	Scale    math.Vec3

	children []*Node
}

// NewNode creates a mesh node with the given material.
func NewNode(name string, mesh *geometry.Mesh, mat *Material) *Node {
	return &Node{
		Name:     name,
		Mesh:     mesh,
		Material: mat,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// NewGroup creates an empty group node.
func NewGroup(name string) *Node {
	return &Node{
		Name:  name,
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Add appends child nodes.
func (n *Node) Add(children ...*Node) {
	n.children = append(n.children, children...)
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalMatrix returns the node's local transform (T * Rz * Ry * Rx * S).
func (n *Node) LocalMatrix() math.Mat4 {
	m := math.Translate(n.Position.X, n.Position.Y, n.Position.Z)
	m = m.Mul(math.RotateZ(n.Rotation.Z))
	m = m.Mul(math.RotateY(n.Rotation.Y))
	m = m.Mul(math.RotateX(n.Rotation.X))
	m = m.Mul(math.Scale(n.Scale.X, n.Scale.Y, n.Scale.Z))
	return m
}

// Bounds returns the transform-aware bounding box of the node and all its
// descendants, in the node's parent space.
func (n *Node) Bounds() geometry.Bounds {
	return n.boundsWith(math.Identity())
}

func (n *Node) boundsWith(parent math.Mat4) geometry.Bounds {
	world := parent.Mul(n.LocalMatrix())
	b := geometry.EmptyBounds()

	if n.Mesh != nil {
		for i := range n.Mesh.Vertices {
			b.Expand(world.TransformPoint(n.Mesh.Vertices[i].Position))
		}
	}
	for _, c := range n.children {
		b.Union(c.boundsWith(world))
	}
	return b
}
