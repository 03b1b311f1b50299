// Package config handles viewer configuration loading and management.
package config

import "fmt"

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Surface    SurfaceConfig    `yaml:"surface"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Render     RenderConfig     `yaml:"render"`
	Projection ProjectionConfig `yaml:"projection"`
	View       ViewConfig       `yaml:"view"`
	Light      LightConfig      `yaml:"light"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SurfaceConfig holds the shape parameters of the humming-top.
type SurfaceConfig struct {
	HalfHeight float32 `yaml:"half_height"` // h > 0
	Parabola   float32 `yaml:"parabola"`    // p != 0
}

// MeshConfig holds the sampling grid resolution and its runtime limits.
type MeshConfig struct {
	USegments   int `yaml:"u_segments"`
	VSegments   int `yaml:"v_segments"`
	MinSegments int `yaml:"min_segments"`
	MaxSegments int `yaml:"max_segments"`
}

// Render modes.
const (
	ModeWireframe = "wireframe"
	ModeFlat      = "flat"
	ModeTextured  = "textured"
)

// RenderConfig holds the render mode and texturing settings.
type RenderConfig struct {
	Mode        string  `yaml:"mode"`       // wireframe, flat, textured
	DebugMode   int     `yaml:"debug_mode"` // 0 = shaded, shader-defined otherwise
	TileScale   float32 `yaml:"tile_scale"` // Texture tiling factor
	Texture     string  `yaml:"texture"`    // Diffuse map path (textured mode)
	NormalMap   string  `yaml:"normal_map"`
	SpecularMap string  `yaml:"specular_map"`
}

// ProjectionConfig holds the perspective policy. The wireframe overrides
// exist because the two views historically used different clip ranges;
// keeping both explicit avoids guessing which one was intended.
type ProjectionConfig struct {
	FovY          float32 `yaml:"fov_y"` // Radians
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	WireframeNear float32 `yaml:"wireframe_near"`
	WireframeFar  float32 `yaml:"wireframe_far"`
}

// ViewConfig holds the fixed presentation transform applied on top of the
// interactive camera.
type ViewConfig struct {
	OrientAngle float32    `yaml:"orient_angle"` // Radians
	OrientAxis  [3]float32 `yaml:"orient_axis"`
	Offset      [3]float32 `yaml:"offset"`
}

// LightConfig holds the orbiting point light parameters.
type LightConfig struct {
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"`
	Speed  float32 `yaml:"speed"` // Radians per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
		},
		Surface: SurfaceConfig{
			HalfHeight: 1.0,
			Parabola:   0.5,
		},
		Mesh: MeshConfig{
			USegments:   40,
			VSegments:   40,
			MinSegments: 1,
			MaxSegments: 200,
		},
		Render: RenderConfig{
			Mode:      ModeTextured,
			DebugMode: 0,
			TileScale: 1.0,
		},
		Projection: ProjectionConfig{
			FovY:          0.39269908, // pi/8
			Near:          2,
			Far:           20,
			WireframeNear: 8,
			WireframeFar:  12,
		},
		View: ViewConfig{
			OrientAngle: 0.7,
			OrientAxis:  [3]float32{0.707, 0.707, 0},
			Offset:      [3]float32{0, 0, -10},
		},
		Light: LightConfig{
			Radius: 5.0,
			Height: 2.0,
			Speed:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks invariants and clamps the mesh resolution into its
// configured bounds. It returns an error for values that cannot be fixed
// by clamping.
func (c *Config) Validate() error {
	if c.Surface.HalfHeight <= 0 {
		return fmt.Errorf("surface.half_height must be > 0, got %v", c.Surface.HalfHeight)
	}
	if c.Surface.Parabola == 0 {
		return fmt.Errorf("surface.parabola must be non-zero")
	}

	switch c.Render.Mode {
	case ModeWireframe, ModeFlat, ModeTextured:
	default:
		return fmt.Errorf("render.mode %q is not one of wireframe, flat, textured", c.Render.Mode)
	}

	if c.Mesh.MinSegments < 1 {
		c.Mesh.MinSegments = 1
	}
	if c.Mesh.MaxSegments < c.Mesh.MinSegments {
		c.Mesh.MaxSegments = c.Mesh.MinSegments
	}
	c.Mesh.USegments = clampInt(c.Mesh.USegments, c.Mesh.MinSegments, c.Mesh.MaxSegments)
	c.Mesh.VSegments = clampInt(c.Mesh.VSegments, c.Mesh.MinSegments, c.Mesh.MaxSegments)

	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		return fmt.Errorf("projection near/far %v/%v invalid", c.Projection.Near, c.Projection.Far)
	}
	if c.Projection.WireframeNear <= 0 || c.Projection.WireframeFar <= c.Projection.WireframeNear {
		return fmt.Errorf("projection wireframe near/far %v/%v invalid",
			c.Projection.WireframeNear, c.Projection.WireframeFar)
	}

	if c.Render.TileScale <= 0 {
		c.Render.TileScale = 1.0
	}

	return nil
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
