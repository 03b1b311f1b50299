package mesh

import (
	gomath "math"

	"github.com/Faultbox/hummingtop/internal/surface"
	"github.com/Faultbox/hummingtop/pkg/math"
)

// BuildWireframe samples the surface into two families of polylines over a
// single shared position buffer: U-polylines at constant y swept across
// beta, then V-polylines at constant beta swept across y. Each polyline
// records its offset and vertex count so line strips draw straight out of
// the one buffer.
func BuildWireframe(params surface.Params, res Resolution) *Wireframe {
	uSeg := res.USegments
	vSeg := res.VSegments

	uCount := (vSeg + 1) * (uSeg + 1)
	vCount := (uSeg + 1) * (vSeg + 1)

	w := &Wireframe{
		Positions: make([]math.Vec3, 0, uCount+vCount),
		ULines:    make([]Polyline, 0, vSeg+1),
		VLines:    make([]Polyline, 0, uSeg+1),
		Bounds:    newBounds(),
	}

	// Rings: constant y, beta sweeps a full turn and closes on the seam.
	for j := 0; j <= vSeg; j++ {
		y := -params.H + 2*params.H*float32(j)/float32(vSeg)
		offset := int32(len(w.Positions))
		for i := 0; i <= uSeg; i++ {
			beta := 2 * float32(gomath.Pi) * float32(i) / float32(uSeg)
			p := surface.Point(params, y, beta)
			w.Bounds.update(p)
			w.Positions = append(w.Positions, p)
		}
		w.ULines = append(w.ULines, Polyline{Offset: offset, Count: int32(uSeg + 1)})
	}

	// Profiles: constant beta, y sweeps pole to pole.
	for i := 0; i <= uSeg; i++ {
		beta := 2 * float32(gomath.Pi) * float32(i) / float32(uSeg)
		offset := int32(len(w.Positions))
		for j := 0; j <= vSeg; j++ {
			y := -params.H + 2*params.H*float32(j)/float32(vSeg)
			p := surface.Point(params, y, beta)
			w.Bounds.update(p)
			w.Positions = append(w.Positions, p)
		}
		w.VLines = append(w.VLines, Polyline{Offset: offset, Count: int32(vSeg + 1)})
	}

	return w
}
