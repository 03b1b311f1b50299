package mesh

import (
	"testing"

	"github.com/Faultbox/hummingtop/internal/surface"
)

func TestBuildSolidCounts(t *testing.T) {
	params := surface.Default()

	tests := []struct {
		name string
		res  Resolution
	}{
		{"minimal", Resolution{1, 1}},
		{"small", Resolution{4, 2}},
		{"square", Resolution{10, 10}},
		{"wide", Resolution{40, 3}},
		{"tall", Resolution{3, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildSolid(params, tt.res)

			wantVerts := (tt.res.USegments + 1) * (tt.res.VSegments + 1)
			if len(m.Vertices) != wantVerts {
				t.Errorf("vertex count = %d, want %d", len(m.Vertices), wantVerts)
			}

			wantTris := 2 * tt.res.USegments * tt.res.VSegments
			if m.TriangleCount() != wantTris {
				t.Errorf("triangle count = %d, want %d", m.TriangleCount(), wantTris)
			}

			for _, idx := range m.Indices {
				if int(idx) >= len(m.Vertices) {
					t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
				}
			}
		})
	}
}

func TestBuildSolidScenario4x2(t *testing.T) {
	m := BuildSolid(surface.Params{H: 1.0, P: 0.5}, Resolution{USegments: 4, VSegments: 2})

	if len(m.Vertices) != 15 {
		t.Errorf("vertex count = %d, want 15", len(m.Vertices))
	}
	if m.TriangleCount() != 16 {
		t.Errorf("triangle count = %d, want 16", m.TriangleCount())
	}
	for _, idx := range m.Indices {
		if idx >= 15 {
			t.Fatalf("index %d out of range, want < 15", idx)
		}
	}
}

func TestNormalsUnitOrFallback(t *testing.T) {
	m := BuildSolid(surface.Default(), Resolution{USegments: 16, VSegments: 12})

	for i, v := range m.Vertices {
		l := v.Normal.Length()
		if l > 1.0-1e-4 && l < 1.0+1e-4 {
			continue
		}
		if v.Normal == fallbackNormal {
			continue
		}
		t.Errorf("vertex %d: normal %v has length %v, want unit or fallback", i, v.Normal, l)
	}
}

func TestQuadWinding(t *testing.T) {
	// First quad of the first row must reference the documented corner
	// order: (i0,i2,i1) then (i1,i2,i3) with rowWidth = uSegments+1.
	m := BuildSolid(surface.Default(), Resolution{USegments: 4, VSegments: 2})

	want := []uint32{0, 5, 1, 1, 5, 6}
	for k, w := range want {
		if m.Indices[k] != w {
			t.Fatalf("indices[0:6] = %v, want %v", m.Indices[:6], want)
		}
	}
}

func TestUVCoversUnitSquare(t *testing.T) {
	res := Resolution{USegments: 8, VSegments: 4}
	m := BuildSolid(surface.Default(), res)

	first := m.Vertices[0]
	last := m.Vertices[len(m.Vertices)-1]
	if first.UV.X != 0 || first.UV.Y != 0 {
		t.Errorf("first UV = %v, want (0,0)", first.UV)
	}
	if last.UV.X != 1 || last.UV.Y != 1 {
		t.Errorf("last UV = %v, want (1,1)", last.UV)
	}
}

func TestTangentsUnnormalized(t *testing.T) {
	// Tangents follow the analytic derivative: magnitude equals the local
	// radius, which is zero at the poles and h^2/(2p) at the equator.
	params := surface.Params{H: 1.0, P: 0.5}
	m := BuildSolid(params, Resolution{USegments: 4, VSegments: 2})

	rowWidth := 5
	pole := m.Vertices[0]
	if pole.Tangent.Length() > 1e-6 {
		t.Errorf("pole tangent length = %v, want 0", pole.Tangent.Length())
	}

	equator := m.Vertices[rowWidth] // j=1 row is y=0 for vSegments=2
	if l := equator.Tangent.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("equator tangent length = %v, want ~1 (radius h^2/2p)", l)
	}
}

func TestRebuildReplacesWholesale(t *testing.T) {
	params := surface.Default()

	big := BuildSolid(params, Resolution{USegments: 40, VSegments: 40})
	small := BuildSolid(params, Resolution{USegments: 10, VSegments: 10})

	if len(small.Vertices) != 121 {
		t.Fatalf("small vertex count = %d, want 121", len(small.Vertices))
	}
	// The smaller build must be self-contained: no index can reach into
	// the larger build's range.
	for _, idx := range small.Indices {
		if int(idx) >= len(small.Vertices) {
			t.Fatalf("stale index %d after rebuild (%d vertices)", idx, len(small.Vertices))
		}
	}
	if len(small.Indices) >= len(big.Indices) {
		t.Errorf("rebuild kept old size: %d indices vs %d", len(small.Indices), len(big.Indices))
	}
}

func TestBuildWireframePolylines(t *testing.T) {
	tests := []struct {
		name string
		res  Resolution
	}{
		{"minimal", Resolution{1, 1}},
		{"small", Resolution{4, 2}},
		{"default", Resolution{40, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := BuildWireframe(surface.Default(), tt.res)

			if len(w.ULines) != tt.res.VSegments+1 {
				t.Errorf("U-polyline count = %d, want %d", len(w.ULines), tt.res.VSegments+1)
			}
			for _, pl := range w.ULines {
				if pl.Count != int32(tt.res.USegments+1) {
					t.Errorf("U-polyline length = %d, want %d", pl.Count, tt.res.USegments+1)
				}
			}

			if len(w.VLines) != tt.res.USegments+1 {
				t.Errorf("V-polyline count = %d, want %d", len(w.VLines), tt.res.USegments+1)
			}
			for _, pl := range w.VLines {
				if pl.Count != int32(tt.res.VSegments+1) {
					t.Errorf("V-polyline length = %d, want %d", pl.Count, tt.res.VSegments+1)
				}
			}

			// Every polyline must fit inside the shared buffer.
			total := int32(len(w.Positions))
			for _, pl := range append(append([]Polyline{}, w.ULines...), w.VLines...) {
				if pl.Offset < 0 || pl.Offset+pl.Count > total {
					t.Errorf("polyline {%d,%d} outside buffer of %d points", pl.Offset, pl.Count, total)
				}
			}
		})
	}
}

func TestResolutionClamp(t *testing.T) {
	tests := []struct {
		in   Resolution
		want Resolution
	}{
		{Resolution{0, 0}, Resolution{1, 1}},
		{Resolution{-5, 3}, Resolution{1, 3}},
		{Resolution{500, 40}, Resolution{200, 40}},
		{Resolution{10, 10}, Resolution{10, 10}},
	}

	for _, tt := range tests {
		got := tt.in.Clamp(1, 200)
		if got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBoundsEnclosesSurface(t *testing.T) {
	params := surface.Params{H: 1.0, P: 0.5}
	m := BuildSolid(params, Resolution{USegments: 32, VSegments: 16})

	// The shape spans [-h, h] axially and the equator radius radially.
	if m.Bounds.Min.Y != -1.0 || m.Bounds.Max.Y != 1.0 {
		t.Errorf("Y bounds = [%v, %v], want [-1, 1]", m.Bounds.Min.Y, m.Bounds.Max.Y)
	}
	if m.Bounds.Max.X < 0.99 || m.Bounds.Max.X > 1.001 {
		t.Errorf("X max = %v, want ~1 (equator radius)", m.Bounds.Max.X)
	}
}
