package mesh

import (
	gomath "math"

	"github.com/Faultbox/hummingtop/internal/surface"
	"github.com/Faultbox/hummingtop/pkg/math"
)

// BuildSolid samples the surface over the given grid and returns an indexed
// triangle mesh with averaged normals and analytic tangents.
//
// Sampling is row-major: the axial index j is the outer loop, the angular
// index i the inner one. Texture coordinates are (i/uSeg, j/vSeg). Both
// segment counts must be >= 1; clamp resolutions at the input boundary
// before calling.
func BuildSolid(params surface.Params, res Resolution) *Mesh {
	uSeg := res.USegments
	vSeg := res.VSegments
	rowWidth := uSeg + 1

	vertices := make([]Vertex, 0, res.VertexCount())
	bounds := newBounds()

	for j := 0; j <= vSeg; j++ {
		y := -params.H + 2*params.H*float32(j)/float32(vSeg)
		for i := 0; i <= uSeg; i++ {
			beta := 2 * float32(gomath.Pi) * float32(i) / float32(uSeg)
			pos := surface.Point(params, y, beta)
			bounds.update(pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				UV: math.Vec2{
					X: float32(i) / float32(uSeg),
					Y: float32(j) / float32(vSeg),
				},
				Tangent: surface.TangentBeta(params, y, beta),
			})
		}
	}

	// Two triangles per quad. The winding matches back-face culling with
	// the clockwise-front convention.
	indices := make([]uint32, 0, 6*uSeg*vSeg)
	for j := 0; j < vSeg; j++ {
		for i := 0; i < uSeg; i++ {
			i0 := uint32(j*rowWidth + i)
			i1 := i0 + 1
			i2 := i0 + uint32(rowWidth)
			i3 := i2 + 1
			indices = append(indices,
				i0, i2, i1,
				i1, i2, i3,
			)
		}
	}

	m := &Mesh{Vertices: vertices, Indices: indices, Bounds: bounds}
	accumulateNormals(m)
	return m
}

// normalEpsilon discards contributions from near-zero-area faces and
// triggers the fallback normal for vertices whose accumulated sum is
// degenerate.
const normalEpsilon = 1e-6

// fallbackNormal is assigned when a vertex accumulates no usable face
// normals, so no NaN or zero-length normal ever reaches the rasterizer.
var fallbackNormal = math.Vec3{X: 0, Y: 1, Z: 0}

// accumulateNormals computes facet-averaged smooth normals: every triangle
// adds its unit face normal to each of its vertices with equal weight (no
// angle weighting), and the per-vertex sums are normalized afterwards.
func accumulateNormals(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3{}
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.Indices[t]
		b := m.Indices[t+1]
		c := m.Indices[t+2]

		e1 := m.Vertices[b].Position.Sub(m.Vertices[a].Position)
		e2 := m.Vertices[c].Position.Sub(m.Vertices[a].Position)
		n := e1.Cross(e2)

		// Degenerate faces contribute nothing.
		if n.Length() <= normalEpsilon {
			continue
		}
		n = n.Normalize()

		m.Vertices[a].Normal = m.Vertices[a].Normal.Add(n)
		m.Vertices[b].Normal = m.Vertices[b].Normal.Add(n)
		m.Vertices[c].Normal = m.Vertices[c].Normal.Add(n)
	}

	for i := range m.Vertices {
		sum := m.Vertices[i].Normal
		if sum.Length() <= normalEpsilon {
			m.Vertices[i].Normal = fallbackNormal
			continue
		}
		m.Vertices[i].Normal = sum.Normalize()
	}
}
