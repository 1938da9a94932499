// Package camera provides the damped orbit camera for the specimen viewer.
package camera

import (
	gomath "math"

	"github.com/omaressa123/RAG-BioL/pkg/math"
)

// Orbit orbits around the origin with smoothed (damped) motion: drag and
// zoom input adjust target angles, and Update eases the current angles
// toward them each frame.
type Orbit struct {
	// Current spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Targets the damping eases toward
	targetDistance float32
	targetPitch    float32
	targetYaw      float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Tuning
	Damping         float32 // fraction closed per 1/60s step
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32
}

// New returns an orbit camera on the +Z axis looking at the origin.
func New() *Orbit {
	return &Orbit{
		Distance:        8,
		targetDistance:  8,
		MinDistance:     2,
		MaxDistance:     40,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		Damping:         0.12,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            float32(gomath.Pi / 4),
		Aspect:          4.0 / 3.0,
		Near:            0.1,
		Far:             100,
	}
}

// SetAspect updates the aspect ratio. Callers must not pass zero; resize
// handlers guard zero-sized drawables before calling this.
func (c *Orbit) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// HandleDrag adjusts the target orbit angles from a mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.targetYaw -= deltaX * c.DragSensitivity
	c.targetPitch += deltaY * c.DragSensitivity
	c.targetPitch = math.Clamp(c.targetPitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom adjusts the target distance from a scroll delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.targetDistance -= delta * c.targetDistance * c.ZoomSensitivity
	c.targetDistance = math.Clamp(c.targetDistance, c.MinDistance, c.MaxDistance)
}

// Update eases the current angles toward their targets. dt is the frame
// time in seconds.
func (c *Orbit) Update(dt float32) {
	// Normalize damping to the frame time so feel is rate-independent
	t := math.Clamp(c.Damping*dt*60, 0, 1)
	c.Yaw = math.Lerp(c.Yaw, c.targetYaw, t)
	c.Pitch = math.Lerp(c.Pitch, c.targetPitch, t)
	c.Distance = math.Lerp(c.Distance, c.targetDistance, t)
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	cosP := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: c.Distance * cosP * float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * cosP * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix looking at the origin.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Orbit) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}
