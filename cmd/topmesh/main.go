// Package main is a command line exporter that bakes the humming-top
// surface into a glTF mesh, so the shape can be inspected in external
// tools without running the viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/hummingtop/internal/mesh"
	"github.com/Faultbox/hummingtop/internal/surface"
)

func main() {
	var (
		halfHeight = flag.Float64("h", 1.0, "half height of the shape (> 0)")
		parabola   = flag.Float64("p", 0.5, "parabola parameter (non-zero)")
		uSegments  = flag.Int("u", 40, "angular segments")
		vSegments  = flag.Int("v", 40, "axial segments")
		output     = flag.String("o", "hummingtop.glb", "output path (.glb or .gltf)")
	)
	flag.Parse()

	if *halfHeight <= 0 {
		fmt.Fprintln(os.Stderr, "half height must be > 0")
		os.Exit(1)
	}
	if *parabola == 0 {
		fmt.Fprintln(os.Stderr, "parabola parameter must be non-zero")
		os.Exit(1)
	}

	params := surface.Params{H: float32(*halfHeight), P: float32(*parabola)}
	res := mesh.Resolution{USegments: *uSegments, VSegments: *vSegments}.Clamp(1, 2000)

	m := mesh.BuildSolid(params, res)

	if err := export(m, *output); err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d vertices, %d triangles\n", *output, len(m.Vertices), m.TriangleCount())
}

func export(m *mesh.Mesh, path string) error {
	positions := make([][3]float32, len(m.Vertices))
	normals := make([][3]float32, len(m.Vertices))
	uvs := make([][2]float32, len(m.Vertices))
	tangents := make([][4]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
		normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
		uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		tangents[i] = [4]float32{v.Tangent.X, v.Tangent.Y, v.Tangent.Z, 1}
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: "hummingtop",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, m.Indices)),
			Attributes: map[string]int{
				gltf.POSITION:   modeler.WritePosition(doc, positions),
				gltf.NORMAL:     modeler.WriteNormal(doc, normals),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
				gltf.TANGENT:    modeler.WriteTangent(doc, tangents),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "hummingtop", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []int{0}

	if filepath.Ext(path) == ".glb" {
		return gltf.SaveBinary(doc, path)
	}
	return gltf.Save(doc, path)
}
