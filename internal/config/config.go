// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds settings for the demo mesh and how it is shown.
type ViewerConfig struct {
	// SpinDegPerSec is the model rotation speed in degrees per second.
	SpinDegPerSec float32 `yaml:"spin_deg_per_sec"`
	// Wireframe renders the mesh as lines instead of filled triangles.
	Wireframe bool `yaml:"wireframe"`
	// SphereRings and SphereSegments control the demo sphere density.
	SphereRings    int `yaml:"sphere_rings"`
	SphereSegments int `yaml:"sphere_segments"`
	// NarrowIndices requests the 16-bit index encoding. The upload
	// gateway still forces 32-bit indices for large meshes.
	NarrowIndices bool `yaml:"narrow_indices"`
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			SpinDegPerSec:  30,
			Wireframe:      false,
			SphereRings:    24,
			SphereSegments: 48,
			NarrowIndices:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
