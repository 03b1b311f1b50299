// Package mesh builds renderable geometry from the humming-top surface.
//
// Solid builds produce an indexed triangle mesh with smooth normals and
// analytic tangents; wireframe builds produce line-strip polylines over a
// shared vertex buffer. Builds are full replacements: callers swap the
// whole mesh, never patch one in place.
package mesh

import "github.com/Faultbox/hummingtop/pkg/math"

// Vertex is one interleaved mesh vertex. The field order defines the GPU
// attribute layout: position, normal, texture coordinate, tangent.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Tangent  math.Vec3
}

// Resolution holds the grid subdivision counts: USegments around the axis
// (angular) and VSegments along it (axial). Both must be at least 1 before
// a build is invoked; Clamp enforces that at the input boundary.
type Resolution struct {
	USegments int
	VSegments int
}

// Clamp limits both segment counts to [min, max].
func (r Resolution) Clamp(min, max int) Resolution {
	clamp := func(v int) int {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
	return Resolution{USegments: clamp(r.USegments), VSegments: clamp(r.VSegments)}
}

// VertexCount returns the number of grid vertices for this resolution.
func (r Resolution) VertexCount() int {
	return (r.USegments + 1) * (r.VSegments + 1)
}

// Bounds is the axis-aligned bounding box of a build.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Mesh holds an indexed triangle mesh ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Polyline locates one line strip inside a shared wireframe buffer.
type Polyline struct {
	Offset int32
	Count  int32
}

// Wireframe holds constant-y and constant-beta polylines over one
// contiguous position buffer, so every strip can be drawn without
// re-uploading data per line.
type Wireframe struct {
	Positions []math.Vec3
	// ULines hold points at constant y swept across beta; VLines hold
	// points at constant beta swept across y.
	ULines []Polyline
	VLines []Polyline
	Bounds Bounds
}

func newBounds() Bounds {
	return Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
}

func (b *Bounds) update(p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
