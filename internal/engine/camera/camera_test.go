package camera

import (
	gomath "math"
	"testing"
)

func TestNewStartsOnZAxis(t *testing.T) {
	c := New()
	pos := c.Position()
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("expected camera on +Z axis, got %v", pos)
	}
	if pos.Z <= 0 {
		t.Errorf("expected positive Z position, got %v", pos.Z)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := New()
	c.HandleDrag(0, 1e6)
	for i := 0; i < 300; i++ {
		c.Update(1.0 / 60)
	}
	if c.Pitch > c.MaxPitch+1e-4 {
		t.Errorf("pitch %v exceeds max %v", c.Pitch, c.MaxPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New()
	c.HandleZoom(1e9)
	for i := 0; i < 300; i++ {
		c.Update(1.0 / 60)
	}
	if c.Distance < c.MinDistance-1e-4 {
		t.Errorf("distance %v below min %v", c.Distance, c.MinDistance)
	}

	c.HandleZoom(-1e9)
	for i := 0; i < 300; i++ {
		c.Update(1.0 / 60)
	}
	if c.Distance > c.MaxDistance+1e-4 {
		t.Errorf("distance %v above max %v", c.Distance, c.MaxDistance)
	}
}

func TestUpdateEasesTowardTarget(t *testing.T) {
	c := New()
	c.HandleDrag(100, 0)
	before := c.Yaw
	c.Update(1.0 / 60)
	if c.Yaw == before {
		t.Error("expected yaw to move toward target after update")
	}
	// One step must not land exactly on the target (damped, not snapped)
	if c.Yaw == c.targetYaw {
		t.Error("expected damping, got snap to target")
	}
	for i := 0; i < 1000; i++ {
		c.Update(1.0 / 60)
	}
	if gomath.Abs(float64(c.Yaw-c.targetYaw)) > 1e-3 {
		t.Errorf("yaw %v did not converge to target %v", c.Yaw, c.targetYaw)
	}
}

func TestViewMatrixLooksAtOrigin(t *testing.T) {
	c := New()
	v := c.ViewMatrix()
	// The origin must map onto the -Z view axis at the camera distance
	p := v.TransformPoint([3]float32{0, 0, 0})
	if gomath.Abs(float64(p[0])) > 1e-4 || gomath.Abs(float64(p[1])) > 1e-4 {
		t.Errorf("origin maps to %v, want on view axis", p)
	}
	if gomath.Abs(float64(p[2]+c.Distance)) > 1e-3 {
		t.Errorf("origin depth = %v, want %v", p[2], -c.Distance)
	}
}

func TestSetAspect(t *testing.T) {
	c := New()
	c.SetAspect(2.5)
	if c.Aspect != 2.5 {
		t.Errorf("aspect = %v, want 2.5", c.Aspect)
	}
	m := c.ProjectionMatrix()
	if m[0] <= 0 {
		t.Errorf("projection [0][0] = %v, want positive", m[0])
	}
}
