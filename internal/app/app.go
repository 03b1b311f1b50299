// Package app owns the viewer: window, render loop, input handling, and
// the live mesh state.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hummingtop/internal/config"
	"github.com/Faultbox/hummingtop/internal/engine/camera"
	"github.com/Faultbox/hummingtop/internal/engine/debug"
	"github.com/Faultbox/hummingtop/internal/engine/input"
	"github.com/Faultbox/hummingtop/internal/engine/lighting"
	"github.com/Faultbox/hummingtop/internal/engine/renderer"
	"github.com/Faultbox/hummingtop/internal/engine/scene"
	"github.com/Faultbox/hummingtop/internal/engine/texture"
	"github.com/Faultbox/hummingtop/internal/engine/transform"
	"github.com/Faultbox/hummingtop/internal/engine/window"
	"github.com/Faultbox/hummingtop/internal/logger"
	"github.com/Faultbox/hummingtop/internal/mesh"
	"github.com/Faultbox/hummingtop/internal/surface"
	"github.com/Faultbox/hummingtop/pkg/math"
)

const tileScaleStep = 0.25

// App is the running viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	cam      *camera.Orbit
	pipeline *transform.Pipeline

	solid *scene.SolidRenderer
	flat  *scene.SolidRenderer
	wire  *scene.WireRenderer

	loader     *texture.Loader
	screenshot debug.Screenshot

	params surface.Params
	res    mesh.Resolution
	bounds mesh.Bounds

	mode      string
	debugMode int
	tileScale float32
	elapsed   float64
}

// New builds the full viewer from configuration. Window and GL context
// come up first; shader or context failures abort startup.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:        cfg,
		params:     surface.Params{H: cfg.Surface.HalfHeight, P: cfg.Surface.Parabola},
		res:        mesh.Resolution{USegments: cfg.Mesh.USegments, VSegments: cfg.Mesh.VSegments},
		mode:       cfg.Render.Mode,
		debugMode:  cfg.Render.DebugMode,
		tileScale:  cfg.Render.TileScale,
		screenshot: debug.Screenshot{Dir: "screenshots", Prefix: "hummingtop"},
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Humming-Top",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	a.input = input.New()
	a.cam = camera.New()

	a.pipeline = transform.New(transform.Config{
		OrientAngle: cfg.View.OrientAngle,
		OrientAxis:  math.Vec3{X: cfg.View.OrientAxis[0], Y: cfg.View.OrientAxis[1], Z: cfg.View.OrientAxis[2]},
		Offset:      math.Vec3{X: cfg.View.Offset[0], Y: cfg.View.Offset[1], Z: cfg.View.Offset[2]},
		Projection:  a.projectionFor(a.mode),
	}, lighting.Orbit{
		Radius: cfg.Light.Radius,
		Height: cfg.Light.Height,
		Speed:  cfg.Light.Speed,
	})

	placeholder := texture.Placeholder()

	a.solid, err = scene.NewSolidRenderer(true, placeholder)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.flat, err = scene.NewSolidRenderer(false, placeholder)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.wire, err = scene.NewWireRenderer()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.solid.SetTexture("normal", texture.FlatNormal())

	a.loader = texture.NewLoader()
	a.requestTextures()

	a.rebuild()

	logger.Info("viewer initialized",
		zap.String("mode", a.mode),
		zap.Int("u_segments", a.res.USegments),
		zap.Int("v_segments", a.res.VSegments),
	)
	return a, nil
}

// requestTextures queues the configured maps for background decode.
// Missing paths simply leave the placeholder in place.
func (a *App) requestTextures() {
	if a.cfg.Render.Texture != "" {
		a.loader.Load("diffuse", a.cfg.Render.Texture)
	}
	if a.cfg.Render.NormalMap != "" {
		a.loader.Load("normal", a.cfg.Render.NormalMap)
	}
	if a.cfg.Render.SpecularMap != "" {
		a.loader.Load("specular", a.cfg.Render.SpecularMap)
	}
}

// rebuild regenerates both mesh representations at the current resolution
// and replaces the GPU buffers. Runs synchronously so the next frame
// already shows the new grid.
func (a *App) rebuild() {
	start := time.Now()

	solid := mesh.BuildSolid(a.params, a.res)
	a.bounds = solid.Bounds
	a.solid.Upload(solid)
	a.flat.Upload(solid)

	wf := mesh.BuildWireframe(a.params, a.res)
	a.wire.Upload(wf)

	logger.Debug("mesh rebuilt",
		zap.Int("u_segments", a.res.USegments),
		zap.Int("v_segments", a.res.VSegments),
		zap.Int("vertices", len(solid.Vertices)),
		zap.Int("triangles", solid.TriangleCount()),
		zap.Any("bounds_min", solid.Bounds.Min),
		zap.Any("bounds_max", solid.Bounds.Max),
		zap.Duration("took", time.Since(start)),
	)
}

// projectionFor maps a render mode to its configured clip range.
func (a *App) projectionFor(mode string) transform.Projection {
	p := a.cfg.Projection
	if mode == config.ModeWireframe {
		return transform.Projection{FovY: p.FovY, Near: p.WireframeNear, Far: p.WireframeFar}
	}
	return transform.Projection{FovY: p.FovY, Near: p.Near, Far: p.Far}
}

// Run drives the main loop until quit.
func (a *App) Run() error {
	a.running = true
	start := time.Now()

	for a.running {
		if a.input.Update() {
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		for _, tex := range a.loader.Poll() {
			a.solid.SetTexture(tex.Name, tex.ID)
		}

		a.cam.Update()

		a.elapsed = time.Since(start).Seconds()
		frame := a.pipeline.Frame(a.cam.ViewMatrix(), a.renderer.Aspect(), a.elapsed)

		a.renderer.Begin()
		switch a.mode {
		case config.ModeWireframe:
			a.wire.Render(frame)
		case config.ModeFlat:
			a.flat.Render(frame, a.debugMode, 1)
		case config.ModeTextured:
			a.solid.Render(frame, a.debugMode, a.tileScale)
		}
		a.window.SwapBuffers()
	}

	return nil
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		a.renderer.Resize(ev.Width, ev.Height)

	case input.EventMouseDrag:
		a.cam.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))

	case input.EventMouseWheel:
		a.cam.HandleZoom(float32(ev.Wheel))

	case input.EventKeyDown:
		a.handleKey(ev.Key)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_TAB:
		a.cycleMode()

	case sdl.SCANCODE_LEFT:
		a.adjustResolution(-1, 0)
	case sdl.SCANCODE_RIGHT:
		a.adjustResolution(1, 0)
	case sdl.SCANCODE_DOWN:
		a.adjustResolution(0, -1)
	case sdl.SCANCODE_UP:
		a.adjustResolution(0, 1)

	case sdl.SCANCODE_0, sdl.SCANCODE_KP_0:
		a.setDebugMode(0)
	case sdl.SCANCODE_1, sdl.SCANCODE_KP_1:
		a.setDebugMode(1)
	case sdl.SCANCODE_2, sdl.SCANCODE_KP_2:
		a.setDebugMode(2)
	case sdl.SCANCODE_3, sdl.SCANCODE_KP_3:
		a.setDebugMode(3)
	case sdl.SCANCODE_4, sdl.SCANCODE_KP_4:
		a.setDebugMode(4)

	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		a.tileScale += tileScaleStep
		logger.Debug("tile scale", zap.Float32("value", a.tileScale))
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		if a.tileScale-tileScaleStep > 0 {
			a.tileScale -= tileScaleStep
		}
		logger.Debug("tile scale", zap.Float32("value", a.tileScale))

	case sdl.SCANCODE_F:
		a.fitView()

	case sdl.SCANCODE_F12:
		a.captureScreenshot()
	}
}

// fitView retargets the camera zoom so the mesh bounds fill the viewport.
func (a *App) fitView() {
	radius := a.bounds.Max.Sub(a.bounds.Min).Length() / 2
	baseline := float64(-a.cfg.View.Offset[2])
	a.cam.Fit(radius, a.cfg.Projection.FovY, baseline)
	logger.Debug("fit view", zap.Float32("radius", radius))
}

// cycleMode advances wireframe -> flat -> textured and switches the
// projection preset with it.
func (a *App) cycleMode() {
	switch a.mode {
	case config.ModeWireframe:
		a.mode = config.ModeFlat
	case config.ModeFlat:
		a.mode = config.ModeTextured
	default:
		a.mode = config.ModeWireframe
	}
	a.pipeline.SetProjection(a.projectionFor(a.mode))
	logger.Info("render mode", zap.String("mode", a.mode))
}

func (a *App) adjustResolution(du, dv int) {
	next := mesh.Resolution{
		USegments: a.res.USegments + du,
		VSegments: a.res.VSegments + dv,
	}.Clamp(a.cfg.Mesh.MinSegments, a.cfg.Mesh.MaxSegments)

	if next == a.res {
		return
	}
	a.res = next
	a.rebuild()
}

func (a *App) setDebugMode(mode int) {
	a.debugMode = mode
	logger.Info("debug mode", zap.Int("mode", mode))
}

// captureScreenshot renders one frame and reads it back before the swap,
// so the saved image matches what the next present would show.
func (a *App) captureScreenshot() {
	frame := a.pipeline.Frame(a.cam.ViewMatrix(), a.renderer.Aspect(), a.elapsed)

	a.renderer.Begin()
	switch a.mode {
	case config.ModeWireframe:
		a.wire.Render(frame)
	case config.ModeFlat:
		a.flat.Render(frame, a.debugMode, 1)
	case config.ModeTextured:
		a.solid.Render(frame, a.debugMode, a.tileScale)
	}

	w, h := a.renderer.Size()
	path, err := a.screenshot.Capture(w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases all resources in reverse creation order.
func (a *App) Close() {
	if a.wire != nil {
		a.wire.Destroy()
	}
	if a.flat != nil {
		a.flat.Destroy()
	}
	if a.solid != nil {
		a.solid.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
