package scene

// AmbientLight is uniform scene-wide illumination.
type AmbientLight struct {
	Color     [3]float32
	Intensity float32
}

// PointLight is a positional light source.
type PointLight struct {
	Position  [3]float32
	Color     [3]float32
	Intensity float32
	Range     float32
}

// Fog is exponential-squared depth fog.
type Fog struct {
	Color   [3]float32
	Density float32
}

// Scene owns the camera-facing world: background, fog, the light rig, and
// at most one current specimen node.
type Scene struct {
	Background [3]float32
	Fog        Fog
	Ambient    AmbientLight
	Points     [2]PointLight

	specimen *Node
}

// New creates the standard specimen scene: dark background, exponential
// fog, ambient light, and two colored point lights.
func New() *Scene {
	return &Scene{
		Background: [3]float32{0.04, 0.05, 0.09},
		Fog: Fog{
			Color:   [3]float32{0.04, 0.05, 0.09},
			Density: 0.045,
		},
		Ambient: AmbientLight{
			Color:     [3]float32{1, 1, 1},
			Intensity: 0.55,
		},
		Points: [2]PointLight{
			{
				Position:  [3]float32{6, 6, 6},
				Color:     [3]float32{1, 1, 1},
				Intensity: 1.1,
				Range:     50,
			},
			{
				Position:  [3]float32{-6, -4, 4},
				Color:     [3]float32{0.35, 0.55, 1},
				Intensity: 0.8,
				Range:     50,
			},
		},
	}
}

// SetSpecimen installs a new specimen node, detaching any previous one
// first. At most one specimen is ever attached; the displaced node is
// returned so the caller can release its GPU resources.
func (s *Scene) SetSpecimen(n *Node) (previous *Node) {
	previous = s.specimen
	s.specimen = n
	return previous
}

// Specimen returns the currently attached specimen, or nil.
func (s *Scene) Specimen() *Node {
	return s.specimen
}
