package surface

import (
	gomath "math"
	"testing"
)

func TestPointPreservesY(t *testing.T) {
	p := Default()
	for _, y := range []float32{-1.0, -0.5, -0.25, 0, 0.125, 0.5, 1.0} {
		got := Point(p, y, 1.3)
		if got.Y != y {
			t.Errorf("Point(y=%v).Y = %v, want exact %v", y, got.Y, y)
		}
	}
}

func TestPointEvenInY(t *testing.T) {
	p := Default()
	for _, y := range []float32{0.1, 0.3, 0.77, 1.0} {
		for _, beta := range []float32{0, 0.5, 2.0, 5.5} {
			a := Point(p, y, beta)
			b := Point(p, -y, beta)
			if a.X != b.X || a.Z != b.Z {
				t.Errorf("Point not even in y at y=%v beta=%v: (%v,%v) vs (%v,%v)",
					y, beta, a.X, a.Z, b.X, b.Z)
			}
		}
	}
}

func TestPointAxisAngles(t *testing.T) {
	p := Default()

	// beta=0 lies in the XZ plane with z exactly zero.
	got := Point(p, 0.5, 0)
	if got.Z != 0 {
		t.Errorf("Point(beta=0).Z = %v, want 0", got.Z)
	}

	// beta=pi/2 should have x within float tolerance of zero.
	got = Point(p, 0.5, float32(gomath.Pi/2))
	if absf(got.X) > 1e-6 {
		t.Errorf("Point(beta=pi/2).X = %v, want ~0", got.X)
	}
}

func TestPointRadius(t *testing.T) {
	// At the equator (y=0) the radius is h^2/(2p); at the poles it is 0.
	p := Params{H: 1.0, P: 0.5}

	got := Point(p, 0, 0)
	if got.X != 1.0 {
		t.Errorf("equator radius = %v, want 1.0", got.X)
	}

	for _, y := range []float32{-1.0, 1.0} {
		got := Point(p, y, 0)
		if got.X != 0 || got.Z != 0 {
			t.Errorf("pole at y=%v has radius (%v,%v), want (0,0)", y, got.X, got.Z)
		}
	}
}

func TestTangentBetaOrthogonalToRadial(t *testing.T) {
	p := Default()
	for _, beta := range []float32{0, 0.8, 2.4, 4.0} {
		pt := Point(p, 0.3, beta)
		tan := TangentBeta(p, 0.3, beta)

		// Tangent must have no axial component and be orthogonal to the
		// radial direction in the XZ plane.
		if tan.Y != 0 {
			t.Errorf("TangentBeta.Y = %v, want 0", tan.Y)
		}
		dot := pt.X*tan.X + pt.Z*tan.Z
		if absf(dot) > 1e-5 {
			t.Errorf("tangent not orthogonal to radial at beta=%v: dot=%v", beta, dot)
		}
	}
}

func TestTangentBetaMatchesNumericDerivative(t *testing.T) {
	p := Default()
	const eps = 1e-3

	for _, beta := range []float32{0.2, 1.1, 3.0, 5.9} {
		analytic := TangentBeta(p, 0.4, beta)
		a := Point(p, 0.4, beta+eps)
		b := Point(p, 0.4, beta-eps)
		numX := (a.X - b.X) / (2 * eps)
		numZ := (a.Z - b.Z) / (2 * eps)

		if absf(analytic.X-numX) > 1e-2 || absf(analytic.Z-numZ) > 1e-2 {
			t.Errorf("beta=%v: analytic (%v,%v) vs numeric (%v,%v)",
				beta, analytic.X, analytic.Z, numX, numZ)
		}
	}
}
