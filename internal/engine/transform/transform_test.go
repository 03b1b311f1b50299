package transform

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hummingtop/internal/engine/lighting"
	"github.com/Faultbox/hummingtop/pkg/math"
)

func TestFrameCompositionOrder(t *testing.T) {
	// With no rotation, the frame's model-view must be offset * view:
	// a point at the origin lands at the offset.
	cfg := Config{
		OrientAngle: 0,
		OrientAxis:  math.Vec3{X: 0, Y: 1, Z: 0},
		Offset:      math.Vec3{X: 0, Y: 0, Z: -10},
		Projection:  SolidProjection(),
	}
	p := New(cfg, lighting.DefaultOrbit())

	f := p.Frame(math.Identity(), 1.0, 0)
	got := f.ModelView.TransformAffine(math.Vec3{})
	if got.X != 0 || got.Y != 0 || got.Z != -10 {
		t.Errorf("origin maps to %v, want (0,0,-10)", got)
	}
}

func TestFrameRotationBeforeOffset(t *testing.T) {
	// translate * rotate: the offset must not be rotated. A point on the
	// rotation axis stays put under the rotation, so it lands exactly at
	// axis + offset.
	cfg := DefaultConfig()
	p := New(cfg, lighting.DefaultOrbit())

	axis := cfg.OrientAxis.Normalize()
	f := p.Frame(math.Identity(), 1.0, 0)
	got := f.ModelView.TransformAffine(axis)
	want := axis.Add(cfg.Offset)
	if absf(got.X-want.X) > 1e-5 || absf(got.Y-want.Y) > 1e-5 || absf(got.Z-want.Z) > 1e-5 {
		t.Errorf("axis point maps to %v, want %v", got, want)
	}
}

func TestFrameMVPMatchesProjTimesMV(t *testing.T) {
	p := New(DefaultConfig(), lighting.DefaultOrbit())
	f := p.Frame(math.Identity(), 1.5, 3.0)

	want := f.Projection.Mul(f.ModelView)
	if f.MVP != want {
		t.Error("MVP != Projection * ModelView")
	}
}

func TestFrameLightInEyeSpace(t *testing.T) {
	// At t=0 the light sits at (radius, height, 0) in model space; with an
	// identity view and no rotation it must appear offset by the fixed
	// translation in eye space.
	cfg := Config{
		OrientAngle: 0,
		OrientAxis:  math.Vec3{X: 0, Y: 1, Z: 0},
		Offset:      math.Vec3{X: 0, Y: 0, Z: -10},
		Projection:  SolidProjection(),
	}
	p := New(cfg, lighting.Orbit{Radius: 5, Height: 2, Speed: 0.5})

	f := p.Frame(math.Identity(), 1.0, 0)
	want := math.Vec3{X: 5, Y: 2, Z: -10}
	if absf(f.LightEye.X-want.X) > 1e-5 || absf(f.LightEye.Y-want.Y) > 1e-5 || absf(f.LightEye.Z-want.Z) > 1e-5 {
		t.Errorf("LightEye = %v, want %v", f.LightEye, want)
	}
}

func TestProjectionPresets(t *testing.T) {
	solid := SolidProjection()
	wire := WireframeProjection()

	wantFov := float32(gomath.Pi / 8)
	if absf(solid.FovY-wantFov) > 1e-6 || absf(wire.FovY-wantFov) > 1e-6 {
		t.Errorf("fovY = %v/%v, want pi/8", solid.FovY, wire.FovY)
	}
	if solid.Near != 2 || solid.Far != 20 {
		t.Errorf("solid near/far = %v/%v, want 2/20", solid.Near, solid.Far)
	}
	if wire.Near != 8 || wire.Far != 12 {
		t.Errorf("wireframe near/far = %v/%v, want 8/12", wire.Near, wire.Far)
	}
}

func TestSetProjection(t *testing.T) {
	p := New(DefaultConfig(), lighting.DefaultOrbit())
	p.SetProjection(WireframeProjection())

	a := p.Frame(math.Identity(), 1.0, 0)
	p.SetProjection(SolidProjection())
	b := p.Frame(math.Identity(), 1.0, 0)

	if a.Projection == b.Projection {
		t.Error("projection did not change with the policy")
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
