package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMode       = flag.String("mode", "", "Render mode: wireframe, flat, textured")
	flagUSegments  = flag.Int("usegments", 0, "Angular subdivision count")
	flagVSegments  = flag.Int("vsegments", 0, "Axial subdivision count")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagTexture    = flag.String("texture", "", "Diffuse texture path (textured mode)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Render.Mode = *flagMode
	}
	if *flagUSegments > 0 {
		cfg.Mesh.USegments = *flagUSegments
	}
	if *flagVSegments > 0 {
		cfg.Mesh.VSegments = *flagVSegments
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagTexture != "" {
		cfg.Render.Texture = *flagTexture
	}
}
