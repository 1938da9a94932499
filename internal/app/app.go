// Package app wires the viewer application together: window, renderer,
// scene, camera, backend client, and the main loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/omaressa123/RAG-BioL/internal/backend"
	"github.com/omaressa123/RAG-BioL/internal/config"
	"github.com/omaressa123/RAG-BioL/internal/engine/camera"
	"github.com/omaressa123/RAG-BioL/internal/engine/renderer"
	"github.com/omaressa123/RAG-BioL/internal/engine/scene"
	"github.com/omaressa123/RAG-BioL/internal/engine/window"
	"github.com/omaressa123/RAG-BioL/internal/logger"
	"github.com/omaressa123/RAG-BioL/internal/report"
	"github.com/omaressa123/RAG-BioL/internal/viewer"
)

// App is the running viewer application.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	viewer   *viewer.Viewer
	client   *backend.Client

	running bool
	drops   []string
	results chan outcome
}

type outcome struct {
	analyses []backend.Analysis
	err      error
}

// New creates the application. The window and GL context are created here;
// call Run from the same goroutine.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Viewer.Width),
		zap.Int("height", cfg.Viewer.Height),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	a := &App{
		cfg:     cfg,
		client:  backend.New(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout),
		results: make(chan outcome, 1),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "BioLens",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created
	drawW, drawH := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  drawW,
		Height: drawH,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.viewer = viewer.New(scene.New(), camera.New(), a.renderer, a.window.DrawableSize)
	a.viewer.Resize(drawW, drawH)

	logger.Info("viewer initialized")
	return a, nil
}

// Close releases the renderer and window.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// Run drives the main loop until the window is closed.
func (a *App) Run() error {
	a.running = true
	lastTime := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		a.drops = a.drops[:0]
		a.window.PollEvents(window.Handlers{
			OnQuit:   func() { a.running = false },
			OnDrop:   func(path string) { a.drops = append(a.drops, path) },
			OnResize: a.viewer.Resize,
			OnDrag:   a.viewer.Camera.HandleDrag,
			OnWheel:  a.viewer.Camera.HandleZoom,
		})

		// A multi-file drop arrives as one event per file in the same
		// poll batch
		if len(a.drops) > 0 {
			a.analyze(append([]string(nil), a.drops...))
		}

		select {
		case out := <-a.results:
			a.applyOutcome(out)
		default:
		}

		a.viewer.Tick(dt)
		a.viewer.RenderFrame()
		a.window.SwapBuffers()
	}

	logger.Info("main loop finished")
	return nil
}

// analyze sends dropped files to the backend on a worker goroutine. A drop
// while a request is in flight is logged and ignored.
func (a *App) analyze(paths []string) {
	if !a.viewer.BeginRequest() {
		logger.Warn("analysis already in flight, ignoring drop",
			zap.Int("files", len(paths)))
		return
	}

	logger.Info("analyzing dropped files", zap.Strings("paths", paths))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Backend.RequestTimeout)
		defer cancel()

		analyses, err := a.client.AnalyzeImages(ctx, paths)
		a.results <- outcome{analyses: analyses, err: err}
	}()
}

// applyOutcome installs the analysis result on the main thread, where GL
// calls are allowed.
func (a *App) applyOutcome(out outcome) {
	defer a.viewer.EndRequest()

	if out.err != nil {
		var verr *backend.ValidationError
		var aerr *backend.APIError
		switch {
		case errors.As(out.err, &verr):
			logger.Warn("rejected before upload", zap.String("reason", verr.Reason))
		case errors.As(out.err, &aerr):
			logger.Error("backend rejected analysis", zap.Int("status", aerr.Status), zap.Error(aerr))
		default:
			logger.Error("analysis request failed", zap.Error(out.err))
		}
		return
	}
	if len(out.analyses) == 0 {
		logger.Warn("backend returned no results")
		return
	}

	first := out.analyses[0]
	logger.Info("analysis complete",
		zap.Int("results", len(out.analyses)),
		zap.String("organelle", first.Organelle.Name),
		zap.Float64("confidence", first.Confidence),
	)

	a.viewer.ShowOrganelle(first.Organelle.Name)
	a.viewer.Show()

	if path := a.cfg.Report.HTMLPath; path != "" {
		cards := report.AnalysisCards(out.analyses)
		if err := report.SaveAnalysisHTML(path, cards); err != nil {
			logger.Error("writing report", zap.String("path", path), zap.Error(err))
		} else {
			logger.Info("report written", zap.String("path", path))
		}
	}
}
