package scene

import (
	"testing"

	"github.com/omaressa123/RAG-BioL/internal/engine/geometry"
	"github.com/omaressa123/RAG-BioL/pkg/math"
)

func TestSetSpecimenReplacesPrevious(t *testing.T) {
	s := New()

	first := NewNode("first", geometry.Sphere(1, 8, 6), DefaultMaterial())
	if prev := s.SetSpecimen(first); prev != nil {
		t.Errorf("expected no previous specimen, got %v", prev.Name)
	}
	if s.Specimen() != first {
		t.Error("first specimen not attached")
	}

	second := NewNode("second", geometry.Box(1, 1, 1), DefaultMaterial())
	prev := s.SetSpecimen(second)
	if prev != first {
		t.Error("expected first specimen returned as displaced")
	}
	if s.Specimen() != second {
		t.Error("second specimen not attached")
	}
}

func TestSetSpecimenNilDetaches(t *testing.T) {
	s := New()
	n := NewGroup("g")
	s.SetSpecimen(n)
	if prev := s.SetSpecimen(nil); prev != n {
		t.Error("expected attached node returned on detach")
	}
	if s.Specimen() != nil {
		t.Error("expected empty specimen slot")
	}
}

func TestGroupBoundsUnionChildren(t *testing.T) {
	g := NewGroup("pair")
	left := NewNode("left", geometry.Sphere(1, 8, 6), DefaultMaterial())
	left.Position = math.Vec3{X: -3}
	right := NewNode("right", geometry.Sphere(1, 8, 6), DefaultMaterial())
	right.Position = math.Vec3{X: 3}
	g.Add(left, right)

	b := g.Bounds()
	width := b.Max[0] - b.Min[0]
	if width < 7.9 || width > 8.1 {
		t.Errorf("group width = %v, want ~8", width)
	}
}

func TestNodeBoundsScaled(t *testing.T) {
	n := NewNode("cube", geometry.Box(2, 2, 2), DefaultMaterial())
	n.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	b := n.Bounds()
	if d := b.MaxDimension(); d < 3.9 || d > 4.1 {
		t.Errorf("scaled bounds max dimension = %v, want ~4", d)
	}
}

func TestSceneDefaults(t *testing.T) {
	s := New()
	if s.Fog.Density <= 0 {
		t.Error("expected positive fog density")
	}
	if s.Ambient.Intensity <= 0 {
		t.Error("expected ambient light on")
	}
	for i, p := range s.Points {
		if p.Intensity <= 0 {
			t.Errorf("point light %d has no intensity", i)
		}
	}
	if s.Specimen() != nil {
		t.Error("new scene should have no specimen")
	}
}
