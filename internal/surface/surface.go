// Package surface defines the parabolic humming-top surface of revolution.
//
// The surface is the sole mathematical definition of the shape: a parabola
// r = (|y| - h)^2 / (2p) swept around the Y axis. Everything the mesh
// builder produces is sampled from here.
package surface

import (
	gomath "math"

	"github.com/Faultbox/hummingtop/pkg/math"
)

// Params holds the shape parameters.
// H is the half-height (> 0); P is the parabola coefficient and must be
// non-zero. A zero P is a caller error, not a runtime-checked condition.
type Params struct {
	H float32
	P float32
}

// Default returns the standard humming-top shape.
func Default() Params {
	return Params{H: 1.0, P: 0.5}
}

// Point evaluates the surface at axial coordinate y in [-h, h] and angular
// coordinate beta in [0, 2pi).
func Point(p Params, y, beta float32) math.Vec3 {
	r := radius(p, y)
	sin, cos := gomath.Sincos(float64(beta))
	return math.Vec3{
		X: r * float32(cos),
		Y: y,
		Z: r * float32(sin),
	}
}

// TangentBeta is the analytic partial derivative of Point with respect to
// beta at fixed y. The radius does not depend on beta, so the derivative is
// purely tangential. The result is not normalized; consumers normalize if
// they need unit length.
func TangentBeta(p Params, y, beta float32) math.Vec3 {
	r := radius(p, y)
	sin, cos := gomath.Sincos(float64(beta))
	return math.Vec3{
		X: -r * float32(sin),
		Y: 0,
		Z: r * float32(cos),
	}
}

func radius(p Params, y float32) float32 {
	rBase := absf(y) - p.H
	return rBase * rBase / (2 * p.P)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
