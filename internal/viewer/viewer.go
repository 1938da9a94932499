// Package viewer owns the specimen viewer state: the scene, the camera,
// the current specimen, and its continuous tumble animation.
package viewer

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/omaressa123/RAG-BioL/internal/engine/camera"
	"github.com/omaressa123/RAG-BioL/internal/engine/scene"
	"github.com/omaressa123/RAG-BioL/internal/logger"
	"github.com/omaressa123/RAG-BioL/internal/organelle"
)

// Per-frame tumble increments for the current specimen.
const (
	yawStep   = 0.005
	pitchStep = 0.003
)

// settleDelay is how long Show waits before re-measuring the drawable,
// so layout after a visibility change has settled.
const settleDelay = 100 * time.Millisecond

// Renderer draws the scene and manages per-node GPU resources.
type Renderer interface {
	Resize(width, height int)
	Render(s *scene.Scene, cam *camera.Orbit)
	ReleaseNode(n *scene.Node)
}

// SizeFunc reports the current drawable size in pixels.
type SizeFunc func() (width, height int)

// Viewer is the single owner of viewer state. The render loop and the
// analysis-result handler both go through it.
type Viewer struct {
	Scene  *scene.Scene
	Camera *camera.Orbit

	renderer Renderer
	size     SizeFunc

	// SettleDelay overrides the default show-settle delay; used by tests.
	SettleDelay time.Duration

	mu        sync.Mutex
	visible   bool
	measureAt time.Time // zero when no settle re-measure is pending
	inFlight  atomic.Bool
}

// New creates a viewer around an existing scene, camera, and renderer.
func New(s *scene.Scene, cam *camera.Orbit, r Renderer, size SizeFunc) *Viewer {
	return &Viewer{
		Scene:       s,
		Camera:      cam,
		renderer:    r,
		size:        size,
		SettleDelay: settleDelay,
	}
}

// Install attaches a new specimen node, detaching the previous one and
// releasing its GPU resources. Exactly zero or one specimen is attached
// at any time.
func (v *Viewer) Install(n *scene.Node) {
	v.mu.Lock()
	previous := v.Scene.SetSpecimen(n)
	v.mu.Unlock()

	if previous != nil {
		v.renderer.ReleaseNode(previous)
	}
}

// ShowOrganelle builds the specimen for the given organelle label and
// installs it. Unrecognized labels fall back to the nucleus recipe.
func (v *Viewer) ShowOrganelle(name string) {
	logger.Info("installing specimen", zap.String("organelle", name))
	v.Install(organelle.BuildMesh(name))
}

// Resize updates the camera aspect ratio and renderer viewport. Zero-sized
// drawables are skipped entirely to avoid a degenerate aspect ratio.
func (v *Viewer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		logger.Debug("skipping resize for zero-sized drawable",
			zap.Int("width", width),
			zap.Int("height", height),
		)
		return
	}
	v.Camera.SetAspect(float32(width) / float32(height))
	v.renderer.Resize(width, height)
}

// Show marks the viewer visible and schedules a settle re-measure: the
// first Tick at least SettleDelay later re-measures the drawable and
// resizes to its current dimensions. Deferring to Tick keeps the camera
// write and the GL viewport call on the loop thread.
func (v *Viewer) Show() {
	v.mu.Lock()
	v.visible = true
	v.measureAt = time.Now().Add(v.SettleDelay)
	v.mu.Unlock()
}

// Visible reports whether the viewer panel has been shown.
func (v *Viewer) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Tick advances one animation frame: runs any due settle re-measure,
// eases the camera, and applies the fixed tumble increments to the
// current specimen, if any.
func (v *Viewer) Tick(dt float32) {
	v.mu.Lock()
	measure := !v.measureAt.IsZero() && !time.Now().Before(v.measureAt)
	if measure {
		v.measureAt = time.Time{}
	}
	v.mu.Unlock()

	if measure {
		w, h := v.size()
		v.Resize(w, h)
	}

	v.Camera.Update(dt)

	v.mu.Lock()
	defer v.mu.Unlock()
	if n := v.Scene.Specimen(); n != nil {
		n.Rotation.Y += yawStep
		n.Rotation.X += pitchStep
	}
}

// RenderFrame draws the current scene.
func (v *Viewer) RenderFrame() {
	v.renderer.Render(v.Scene, v.Camera)
}

// BeginRequest marks an analysis request in flight. It returns false if one
// is already running; overlapping requests are dropped rather than queued.
func (v *Viewer) BeginRequest() bool {
	return v.inFlight.CompareAndSwap(false, true)
}

// EndRequest clears the in-flight marker.
func (v *Viewer) EndRequest() {
	v.inFlight.Store(false)
}
