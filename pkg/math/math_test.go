package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateAffine(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformAffine(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformAffine: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{1, 2, 3})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestRotateAxisY90(t *testing.T) {
	m := RotateAxis(Vec3{0, 1, 0}, float32(math.Pi/2))
	got := m.TransformAffine(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should land near (0,0,-1).
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z+1) > 1e-5 {
		t.Errorf("RotateAxis Y 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateAxisMatchesComposition(t *testing.T) {
	// Rotating about a diagonal axis must preserve points on the axis.
	axis := Vec3{0.707, 0.707, 0}.Normalize()
	m := RotateAxis(axis, 0.7)
	got := m.TransformAffine(axis)
	if abs(got.X-axis.X) > 1e-5 || abs(got.Y-axis.Y) > 1e-5 || abs(got.Z-axis.Z) > 1e-5 {
		t.Errorf("axis point moved under its own rotation: got %v, want %v", got, axis)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/8), 1.0, 2.0, 20.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero focal elements")
	}
	// Element [11] must be -1 and [15] must be 0 for a perspective projection.
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	got := m.TransformAffine(eye)
	if abs(got.X) > 1e-4 || abs(got.Y) > 1e-4 || abs(got.Z) > 1e-4 {
		t.Errorf("view matrix should map eye to origin, got %v", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
