// Package camera provides the interactive rotation controller.
//
// The camera owns only the view matrix; the fixed presentation offset and
// the projection live in the transform pipeline, which reads the view
// matrix fresh every frame.
package camera

import (
	gomath "math"

	"github.com/charmbracelet/harmonica"

	"github.com/Faultbox/hummingtop/pkg/math"
)

// Orbit rotates the model under mouse drag and zooms with the wheel.
// Zoom is spring-damped so wheel steps glide instead of snapping.
type Orbit struct {
	// Rotation state, radians
	Yaw   float32
	Pitch float32

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Zoom spring state. distance is the extra eye distance on top of
	// the pipeline's fixed offset, so 0 is the default framing.
	distance       float64
	distanceVel    float64
	targetDistance float64
	MinDistance    float64
	MaxDistance    float64

	spring harmonica.Spring
}

// New creates an orbit camera with default settings.
func New() *Orbit {
	return &Orbit{
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.5,
		MinDistance:     -4.0,
		MaxDistance:     6.0,
		spring:          harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom moves the zoom target based on scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.targetDistance -= float64(delta) * float64(c.ZoomSensitivity)
	if c.targetDistance < c.MinDistance {
		c.targetDistance = c.MinDistance
	}
	if c.targetDistance > c.MaxDistance {
		c.targetDistance = c.MaxDistance
	}
}

// Fit retargets the zoom so a sphere of the given radius fills the view:
// the target becomes the eye distance needed for that radius at the given
// vertical field of view, minus the baseline distance already applied
// outside the camera. The spring glides there like any other zoom.
func (c *Orbit) Fit(radius, fovY float32, baseline float64) {
	if radius <= 0 || fovY <= 0 {
		return
	}
	needed := float64(radius) / gomath.Tan(float64(fovY)/2)
	c.targetDistance = needed - baseline
	if c.targetDistance < c.MinDistance {
		c.targetDistance = c.MinDistance
	}
	if c.targetDistance > c.MaxDistance {
		c.targetDistance = c.MaxDistance
	}
}

// Update advances the zoom spring by one frame.
func (c *Orbit) Update() {
	c.distance, c.distanceVel = c.spring.Update(c.distance, c.distanceVel, c.targetDistance)
}

// ViewMatrix returns the current view matrix: pitch about X, then yaw
// about Y, then the spring-smoothed zoom translation.
func (c *Orbit) ViewMatrix() math.Mat4 {
	view := math.RotateAxis(math.Vec3{X: 1}, c.Pitch).
		Mul(math.RotateAxis(math.Vec3{Y: 1}, c.Yaw))
	if c.distance != 0 {
		view = math.Translate(0, 0, float32(-c.distance)).Mul(view)
	}
	return view
}
