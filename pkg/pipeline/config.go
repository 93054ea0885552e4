// Package pipeline turns a mesh into depth-sorted screen-space triangles
// and drives a Canvas with them.
package pipeline

import (
	"fmt"
	"os"

	"github.com/philipparndt/goobj/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Config carries every constant the frame pipeline depends on.
// It is a value; pass it explicitly rather than sharing globals.
type Config struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	ZNear        float32 `yaml:"zNear"`
	ZFar         float32 `yaml:"zFar"`
	FOV          float32 `yaml:"fov"` // degrees

	// ScreenScale maps NDC to pixels as (ndc+1)*ScreenScale*size.
	// 0.3 is an empirical framing factor rather than the half-screen 0.5.
	ScreenScale float32 `yaml:"screenScale"`

	Camera geometry.Vector3 `yaml:"camera"`
	Light  geometry.Vector3 `yaml:"light"`

	// Shading fills with the lit colour; otherwise fills are opaque white
	Shading bool `yaml:"shading"`

	// Input sensitivity: wheel ticks divide by ZoomDivisor, mouse pixels by PanDivisor
	ZoomDivisor float32 `yaml:"zoomDivisor"`
	PanDivisor  float32 `yaml:"panDivisor"`

	Offset geometry.Vector3 `yaml:"offset"` // initial scene offset
}

// DefaultConfig returns the stock viewer settings
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 960,
		ZNear:        0.1,
		ZFar:         1000,
		FOV:          90,
		ScreenScale:  0.3,
		Camera:       geometry.NewVector3(0, 0, 0),
		Light:        geometry.NewVector3(0, 0, -1),
		Shading:      true,
		ZoomDivisor:  2,
		PanDivisor:   15,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings that would make the projection meaningless
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.ZNear <= 0 || c.ZFar <= c.ZNear {
		return fmt.Errorf("need 0 < zNear < zFar, got %v and %v", c.ZNear, c.ZFar)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %v", c.FOV)
	}
	if c.ZoomDivisor == 0 || c.PanDivisor == 0 {
		return fmt.Errorf("zoomDivisor and panDivisor must be non-zero")
	}
	return nil
}

// AspectRatio returns height/width
func (c Config) AspectRatio() float32 {
	return float32(c.ScreenHeight) / float32(c.ScreenWidth)
}

// Projection returns the perspective matrix for this configuration
func (c Config) Projection() geometry.Matrix4 {
	return geometry.ProjectionMatrix(c.AspectRatio(), c.FOV, c.ZNear, c.ZFar)
}
