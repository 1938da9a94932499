package organelle

import (
	gomath "math"

	"github.com/omaressa123/RAG-BioL/internal/engine/geometry"
	"github.com/omaressa123/RAG-BioL/internal/engine/scene"
	"github.com/omaressa123/RAG-BioL/pkg/math"
)

// glowScale sizes the outer glow shell relative to the specimen's largest
// bounding-box dimension.
const glowScale = 0.7

// recipeTable dispatches a Kind to its mesh builder in a fixed order.
// Every recipe builds fresh geometry and materials on each call.
var recipeTable = map[Kind]func() *scene.Node{
	Nucleus:      buildNucleus,
	Mitochondria: buildMitochondria,
	Chloroplast:  buildChloroplast,
	Ribosome:     buildRibosome,
	ER:           buildER,
	Golgi:        buildGolgi,
	Lysosome:     buildLysosome,
	Membrane:     buildMembrane,
	Wall:         buildWall,
}

// BuildMesh classifies the label and constructs the specimen node for the
// matching recipe. Every recipe except the cell wall is wrapped in a
// translucent back-face glow shell. The returned node is not attached to
// any scene; installing it is the caller's responsibility.
func BuildMesh(name string) *scene.Node {
	kind := Classify(name)
	node := recipeTable[kind]()
	if kind == Wall {
		return node
	}
	return wrapWithGlow(node)
}

// wrapWithGlow surrounds the node with a low-opacity white sphere rendered
// on its back faces, giving a uniform specimen silhouette.
func wrapWithGlow(n *scene.Node) *scene.Node {
	radius := n.Bounds().MaxDimension() * glowScale
	glow := scene.NewNode("glow", geometry.Sphere(radius, 32, 24), &scene.Material{
		Color:       [3]float32{1, 1, 1},
		Roughness:   1,
		Opacity:     0.12,
		Transparent: true,
		Side:        scene.SideBack,
	})

	group := scene.NewGroup("specimen")
	group.Add(n, glow)
	return group
}

func rgb(hex uint32) [3]float32 {
	return [3]float32{
		float32(hex>>16&0xff) / 255,
		float32(hex>>8&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

func buildNucleus() *scene.Node {
	g := scene.NewGroup("nucleus")

	body := scene.NewNode("chromatin", geometry.Sphere(1.5, 48, 32), &scene.Material{
		Color:     rgb(0x8844cc),
		Emissive:  rgb(0x1a0833),
		Roughness: 0.55,
		Opacity:   1,
	})

	nucleolus := scene.NewNode("nucleolus", geometry.Sphere(0.55, 24, 16), &scene.Material{
		Color:     rgb(0x552288),
		Roughness: 0.8,
		Opacity:   1,
	})
	nucleolus.Position = math.Vec3{X: 0.35, Y: 0.25}

	envelope := scene.NewNode("envelope", geometry.Sphere(1.8, 48, 32), &scene.Material{
		Color:       rgb(0xbb99ee),
		Roughness:   0.3,
		Opacity:     0.25,
		Transparent: true,
	})

	g.Add(body, nucleolus, envelope)
	return g
}

func buildMitochondria() *scene.Node {
	g := scene.NewGroup("mitochondria")

	body := scene.NewNode("matrix", geometry.Capsule(0.8, 2.2, 12, 32), &scene.Material{
		Color:     rgb(0xee7733),
		Emissive:  rgb(0x2a0d00),
		Roughness: 0.5,
		Metalness: 0.1,
		Opacity:   1,
	})
	body.Rotation = math.Vec3{Z: float32(gomath.Pi / 2)}

	// Cristae: thin inner folds spaced along the long axis
	for i := 0; i < 5; i++ {
		fold := scene.NewNode("crista", geometry.Box(0.08, 1.15, 0.9), &scene.Material{
			Color:     rgb(0xcc4411),
			Roughness: 0.7,
			Opacity:   1,
		})
		fold.Position = math.Vec3{X: -1.0 + float32(i)*0.5}
		fold.Rotation = math.Vec3{X: float32(i-2) * 0.12}
		g.Add(fold)
	}

	g.Add(body)
	return g
}

func buildChloroplast() *scene.Node {
	g := scene.NewGroup("chloroplast")

	stroma := scene.NewNode("stroma", geometry.Capsule(0.9, 2.4, 12, 32), &scene.Material{
		Color:       rgb(0x33aa44),
		Roughness:   0.45,
		Opacity:     0.8,
		Transparent: true,
	})
	stroma.Rotation = math.Vec3{Z: float32(gomath.Pi / 2)}

	// Grana: stacks of flattened thylakoid discs
	stackX := []float32{-0.9, 0, 0.9}
	for s, x := range stackX {
		for d := 0; d < 4; d++ {
			disc := scene.NewNode("thylakoid", geometry.Cylinder(0.38, 0.38, 0.09, 20), &scene.Material{
				Color:     rgb(0x117722),
				Roughness: 0.6,
				Opacity:   1,
			})
			disc.Position = math.Vec3{
				X: x,
				Y: -0.28 + float32(d)*0.16 + float32(s%2)*0.05,
			}
			g.Add(disc)
		}
	}

	g.Add(stroma)
	return g
}

func buildRibosome() *scene.Node {
	g := scene.NewGroup("ribosome")

	// Large and small subunit with a cluster of accessory globules
	globules := []struct {
		r       float32
		pos     math.Vec3
		shade   uint32
	}{
		{0.75, math.Vec3{}, 0x4455aa},
		{0.5, math.Vec3{Y: 0.85}, 0x5566bb},
		{0.3, math.Vec3{X: 0.65, Y: 0.3}, 0x3c4d99},
		{0.28, math.Vec3{X: -0.6, Y: 0.25, Z: 0.3}, 0x3c4d99},
		{0.26, math.Vec3{X: 0.2, Y: -0.55, Z: -0.45}, 0x5566bb},
		{0.22, math.Vec3{X: -0.45, Z: -0.55}, 0x4455aa},
		{0.2, math.Vec3{X: 0.5, Y: 0.75, Z: 0.4}, 0x4455aa},
	}
	for _, gl := range globules {
		n := scene.NewNode("subunit", geometry.Sphere(gl.r, 20, 14), &scene.Material{
			Color:     rgb(gl.shade),
			Roughness: 0.85,
			Opacity:   1,
		})
		n.Position = gl.pos
		g.Add(n)
	}
	return g
}

func buildER() *scene.Node {
	knot := scene.NewNode("cisternae", geometry.TorusKnot(1.2, 0.32, 128, 16, 2, 3), &scene.Material{
		Color:     rgb(0x4488dd),
		Emissive:  rgb(0x001022),
		Roughness: 0.35,
		Metalness: 0.15,
		Opacity:   1,
	})
	g := scene.NewGroup("endoplasmic reticulum")
	g.Add(knot)
	return g
}

func buildGolgi() *scene.Node {
	g := scene.NewGroup("golgi")

	// Cisternae: flattened sacs shrinking toward the trans face
	radii := []float32{1.5, 1.35, 1.2, 1.05, 0.9}
	for i, r := range radii {
		sac := scene.NewNode("cisterna", geometry.Cylinder(r, r, 0.16, 28), &scene.Material{
			Color:     rgb(0xddaa33),
			Roughness: 0.5,
			Opacity:   1,
		})
		sac.Position = math.Vec3{Y: -0.7 + float32(i)*0.35}
		g.Add(sac)
	}

	// Transport vesicles budding off the stack
	for i, pos := range []math.Vec3{
		{X: 1.6, Y: 0.9},
		{X: -1.5, Y: 1.0, Z: 0.4},
		{X: 1.2, Y: -1.0, Z: -0.5},
	} {
		v := scene.NewNode("vesicle", geometry.Sphere(0.18+float32(i)*0.03, 14, 10), &scene.Material{
			Color:     rgb(0xeecc66),
			Roughness: 0.5,
			Opacity:   1,
		})
		v.Position = pos
		g.Add(v)
	}
	return g
}

func buildLysosome() *scene.Node {
	g := scene.NewGroup("lysosome")

	vesicle := scene.NewNode("vesicle", geometry.Sphere(0.95, 36, 24), &scene.Material{
		Color:       rgb(0x22ccbb),
		Roughness:   0.4,
		Opacity:     0.85,
		Transparent: true,
	})

	// Hydrolytic enzyme granules suspended inside
	for _, pos := range []math.Vec3{
		{X: 0.35, Y: 0.2},
		{X: -0.3, Y: -0.25, Z: 0.25},
		{X: 0.1, Y: 0.45, Z: -0.3},
		{X: -0.4, Y: 0.3, Z: -0.15},
		{X: 0.25, Y: -0.4, Z: -0.2},
		{Z: 0.45},
	} {
		e := scene.NewNode("enzyme", geometry.Sphere(0.14, 12, 8), &scene.Material{
			Color:     rgb(0x117766),
			Roughness: 0.9,
			Opacity:   1,
		})
		e.Position = pos
		g.Add(e)
	}

	g.Add(vesicle)
	return g
}

// membraneHeight is the procedural wave applied to the membrane plane:
// height at local (x, y) is 0.5 * sin(2x) * sin(2y).
func membraneHeight(x, y float32) float32 {
	return 0.5 * float32(gomath.Sin(2*float64(x))*gomath.Sin(2*float64(y)))
}

func buildMembrane() *scene.Node {
	mesh := geometry.Plane(4, 4, 48, 48)
	for i := range mesh.Vertices {
		p := &mesh.Vertices[i].Position
		p[2] = membraneHeight(p[0], p[1])
	}
	mesh.RecomputeNormals()
	mesh.RecomputeBounds()

	sheet := scene.NewNode("bilayer", mesh, &scene.Material{
		Color:     rgb(0xdd6688),
		Roughness: 0.55,
		Opacity:   1,
	})
	sheet.Rotation = math.Vec3{X: -1.0}

	g := scene.NewGroup("membrane")
	g.Add(sheet)
	return g
}

func buildWall() *scene.Node {
	slab := scene.NewNode("cellulose", geometry.Box(3.4, 2.4, 0.6), &scene.Material{
		Color:     rgb(0x99aa55),
		Roughness: 1,
		Opacity:   1,
	})
	g := scene.NewGroup("wall")
	g.Add(slab)
	return g
}
