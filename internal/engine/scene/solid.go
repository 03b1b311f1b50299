// Package scene renders the humming-top mesh in its three fidelity
// levels: wireframe, flat-Phong, and textured-Phong with normal mapping.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hummingtop/internal/engine/scene/shaders"
	"github.com/Faultbox/hummingtop/internal/engine/shader"
	"github.com/Faultbox/hummingtop/internal/engine/transform"
	"github.com/Faultbox/hummingtop/internal/mesh"
)

// SolidRenderer draws the indexed triangle mesh with either the flat or
// the textured program. Mesh uploads replace the GPU buffers wholesale;
// there is no partial update path.
type SolidRenderer struct {
	program  uint32
	textured bool

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	locMVP       int32
	locModelView int32
	locLightPos  int32
	locDebugMode int32

	// Textured program only
	locTileScale   int32
	locDiffuse     int32
	locNormalMap   int32
	locSpecularMap int32

	texDiffuse  uint32
	texNormal   uint32
	texSpecular uint32
}

// NewSolidRenderer compiles the program for the requested fidelity level.
// The placeholder texture is bound to every sampler until real textures
// arrive. Missing required uniforms are fatal here, at initialization.
func NewSolidRenderer(textured bool, placeholder uint32) (*SolidRenderer, error) {
	r := &SolidRenderer{
		textured:    textured,
		texDiffuse:  placeholder,
		texNormal:   placeholder,
		texSpecular: placeholder,
	}

	var err error
	if textured {
		r.program, err = shader.CompileProgram(shaders.TexturedVertexShader, shaders.TexturedFragmentShader)
	} else {
		r.program, err = shader.CompileProgram(shaders.FlatVertexShader, shaders.FlatFragmentShader)
	}
	if err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}

	required := map[string]*int32{
		"uMVP":       &r.locMVP,
		"uModelView": &r.locModelView,
		"uLightPos":  &r.locLightPos,
	}
	if textured {
		required["uTileScale"] = &r.locTileScale
		required["uDiffuse"] = &r.locDiffuse
		required["uNormalMap"] = &r.locNormalMap
		required["uSpecularMap"] = &r.locSpecularMap
	}
	for name, loc := range required {
		*loc, err = shader.MustUniform(r.program, name)
		if err != nil {
			gl.DeleteProgram(r.program)
			return nil, err
		}
	}
	r.locDebugMode = shader.GetUniform(r.program, "uDebugMode")

	return r, nil
}

// Upload replaces the GPU mesh with a new build. The previous buffers are
// deleted first, so a draw after Upload can only reference the new index
// range.
func (r *SolidRenderer) Upload(m *mesh.Mesh) {
	r.deleteBuffers()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	if r.textured {
		// UV
		gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
		gl.EnableVertexAttribArray(2)
		// Tangent
		gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, int32(vertexSize), 8*4)
		gl.EnableVertexAttribArray(3)
	}

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	r.indexCount = int32(len(m.Indices))
	gl.BindVertexArray(0)
}

// SetTexture swaps in a loaded texture. name is one of diffuse, normal,
// specular.
func (r *SolidRenderer) SetTexture(name string, id uint32) {
	switch name {
	case "diffuse":
		r.texDiffuse = id
	case "normal":
		r.texNormal = id
	case "specular":
		r.texSpecular = id
	}
}

// Render draws the current mesh with the frame's matrices and light.
func (r *SolidRenderer) Render(f transform.Frame, debugMode int, tileScale float32) {
	if r.indexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, f.MVP.Ptr())
	gl.UniformMatrix4fv(r.locModelView, 1, false, f.ModelView.Ptr())
	gl.Uniform3f(r.locLightPos, f.LightEye.X, f.LightEye.Y, f.LightEye.Z)
	gl.Uniform1i(r.locDebugMode, int32(debugMode))

	if r.textured {
		gl.Uniform1f(r.locTileScale, tileScale)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.texDiffuse)
		gl.Uniform1i(r.locDiffuse, 0)

		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, r.texNormal)
		gl.Uniform1i(r.locNormalMap, 1)

		gl.ActiveTexture(gl.TEXTURE2)
		gl.BindTexture(gl.TEXTURE_2D, r.texSpecular)
		gl.Uniform1i(r.locSpecularMap, 2)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *SolidRenderer) deleteBuffers() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}

// Destroy releases all GPU resources.
func (r *SolidRenderer) Destroy() {
	r.deleteBuffers()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
