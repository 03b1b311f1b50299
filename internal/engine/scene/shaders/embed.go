// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// FlatVertexShader is the vertex shader for flat-Phong rendering.
//
//go:embed flat.vert
var FlatVertexShader string

// FlatFragmentShader is the fragment shader for flat-Phong rendering.
//
//go:embed flat.frag
var FlatFragmentShader string

// TexturedVertexShader is the vertex shader for textured rendering with
// normal mapping.
//
//go:embed textured.vert
var TexturedVertexShader string

// TexturedFragmentShader is the fragment shader for textured rendering
// with normal mapping.
//
//go:embed textured.frag
var TexturedFragmentShader string

// WireVertexShader is the vertex shader for wireframe rendering.
//
//go:embed wire.vert
var WireVertexShader string

// WireFragmentShader is the fragment shader for wireframe rendering.
//
//go:embed wire.frag
var WireFragmentShader string
