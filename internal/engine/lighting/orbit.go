// Package lighting provides the light sources used by the surface
// renderers.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/hummingtop/pkg/math"
)

// Orbit is a point light circling the model on a horizontal ring.
// The angle at any instant is elapsed seconds times Speed, so the light
// position is a pure function of time and carries no state.
type Orbit struct {
	Radius float32 // Ring radius in model units
	Height float32 // Constant Y of the ring
	Speed  float32 // Angular speed in radians per second
}

// DefaultOrbit returns the standard presentation light.
func DefaultOrbit() Orbit {
	return Orbit{Radius: 5.0, Height: 2.0, Speed: 0.5}
}

// Position returns the model-space light position after the given elapsed
// time in seconds.
func (o Orbit) Position(elapsed float64) math.Vec3 {
	angle := elapsed * float64(o.Speed)
	sin, cos := gomath.Sincos(angle)
	return math.Vec3{
		X: o.Radius * float32(cos),
		Y: o.Height,
		Z: o.Radius * float32(sin),
	}
}

// EyePosition returns the light position in eye space: the model-space
// position pushed through the affine part of the model-view matrix (no
// perspective divide).
func (o Orbit) EyePosition(modelView math.Mat4, elapsed float64) math.Vec3 {
	return modelView.TransformAffine(o.Position(elapsed))
}
