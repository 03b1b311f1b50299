package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hummingtop/internal/engine/scene/shaders"
	"github.com/Faultbox/hummingtop/internal/engine/shader"
	"github.com/Faultbox/hummingtop/internal/engine/transform"
	"github.com/Faultbox/hummingtop/internal/mesh"
	"github.com/Faultbox/hummingtop/pkg/math"
)

// WireRenderer draws the surface as line strips. All polylines share one
// position buffer; each strip selects its points by offset and count.
type WireRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	uLines []mesh.Polyline
	vLines []mesh.Polyline

	locMVP   int32
	locColor int32

	// The two polyline families get slightly different shades so the
	// parameter directions stay readable when the strips overlap.
	uColor math.Vec3
	vColor math.Vec3
}

func NewWireRenderer() (*WireRenderer, error) {
	r := &WireRenderer{
		uColor: math.Vec3{X: 0.85, Y: 0.85, Z: 0.85},
		vColor: math.Vec3{X: 0.55, Y: 0.75, Z: 0.85},
	}

	var err error
	r.program, err = shader.CompileProgram(shaders.WireVertexShader, shaders.WireFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("wire shader: %w", err)
	}

	if r.locMVP, err = shader.MustUniform(r.program, "uMVP"); err != nil {
		gl.DeleteProgram(r.program)
		return nil, err
	}
	if r.locColor, err = shader.MustUniform(r.program, "uColor"); err != nil {
		gl.DeleteProgram(r.program)
		return nil, err
	}

	return r, nil
}

// Upload replaces the shared position buffer and polyline tables.
func (r *WireRenderer) Upload(w *mesh.Wireframe) {
	r.deleteBuffers()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	pointSize := int(unsafe.Sizeof(math.Vec3{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(w.Positions)*pointSize, unsafe.Pointer(&w.Positions[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(pointSize), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	r.uLines = w.ULines
	r.vLines = w.VLines
}

// Render draws every polyline of both families as a LINE_STRIP.
func (r *WireRenderer) Render(f transform.Frame) {
	if len(r.uLines) == 0 && len(r.vLines) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, f.MVP.Ptr())
	gl.BindVertexArray(r.vao)

	gl.Uniform3f(r.locColor, r.uColor.X, r.uColor.Y, r.uColor.Z)
	for _, line := range r.uLines {
		gl.DrawArrays(gl.LINE_STRIP, line.Offset, line.Count)
	}

	gl.Uniform3f(r.locColor, r.vColor.X, r.vColor.Y, r.vColor.Z)
	for _, line := range r.vLines {
		gl.DrawArrays(gl.LINE_STRIP, line.Offset, line.Count)
	}

	gl.BindVertexArray(0)
}

func (r *WireRenderer) deleteBuffers() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	r.uLines = nil
	r.vLines = nil
}

// Destroy releases all GPU resources.
func (r *WireRenderer) Destroy() {
	r.deleteBuffers()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
