// Package transform composes the per-frame matrix pipeline: camera view,
// fixed presentation offset, projection, and the eye-space light position.
package transform

import (
	"github.com/Faultbox/hummingtop/internal/engine/lighting"
	"github.com/Faultbox/hummingtop/pkg/math"
)

// Projection is the perspective policy. Historically the wireframe and
// solid paths drifted apart on near/far planes; both are explicit
// parameters here and presets pick the values.
type Projection struct {
	FovY float32
	Near float32
	Far  float32
}

// SolidProjection is the default policy for shaded rendering.
func SolidProjection() Projection {
	return Projection{FovY: 0.39269908, Near: 2, Far: 20} // fovY = pi/8
}

// WireframeProjection is the tighter clip range used for wireframe views.
func WireframeProjection() Projection {
	return Projection{FovY: 0.39269908, Near: 8, Far: 12}
}

// Config holds the fixed presentation transform applied on top of the
// camera view. The defaults present the shape at a pleasing angle and
// distance; none of it derives from user input.
type Config struct {
	OrientAngle float32   // Rotation angle in radians
	OrientAxis  math.Vec3 // Rotation axis, normalized at use
	Offset      math.Vec3 // Translation applied after the rotation
	Projection  Projection
}

// DefaultConfig returns the standard presentation: 0.7 rad about the
// diagonal (0.707, 0.707, 0), pushed back 10 units.
func DefaultConfig() Config {
	return Config{
		OrientAngle: 0.7,
		OrientAxis:  math.Vec3{X: 0.707, Y: 0.707, Z: 0},
		Offset:      math.Vec3{X: 0, Y: 0, Z: -10},
		Projection:  SolidProjection(),
	}
}

// Frame is the matrix state for one rendered frame.
type Frame struct {
	ModelView  math.Mat4
	Projection math.Mat4
	MVP        math.Mat4
	LightEye   math.Vec3 // Point light position in eye space
}

// Pipeline derives a Frame from the camera's view matrix each frame.
// Nothing is cached between frames: recomputing from the live view matrix
// keeps camera staleness bugs visible.
type Pipeline struct {
	cfg   Config
	light lighting.Orbit
}

// New creates a pipeline with the given presentation config and light.
func New(cfg Config, light lighting.Orbit) *Pipeline {
	return &Pipeline{cfg: cfg, light: light}
}

// SetProjection replaces the projection policy, e.g. when switching
// between solid and wireframe presets.
func (p *Pipeline) SetProjection(proj Projection) {
	p.cfg.Projection = proj
}

// Frame composes the per-frame state from the camera view matrix, the
// viewport aspect ratio, and the elapsed time in seconds.
//
// The model-view matrix is translate * (rotate * view): the fixed
// reorientation applies to the camera's view, then the whole scene is
// pushed back by the offset.
func (p *Pipeline) Frame(view math.Mat4, aspect float32, elapsed float64) Frame {
	rotate := math.RotateAxis(p.cfg.OrientAxis.Normalize(), p.cfg.OrientAngle)
	translate := math.Translate(p.cfg.Offset.X, p.cfg.Offset.Y, p.cfg.Offset.Z)
	mv := translate.Mul(rotate.Mul(view))

	proj := math.Perspective(p.cfg.Projection.FovY, aspect, p.cfg.Projection.Near, p.cfg.Projection.Far)

	return Frame{
		ModelView:  mv,
		Projection: proj,
		MVP:        proj.Mul(mv),
		LightEye:   p.light.EyePosition(mv, elapsed),
	}
}
