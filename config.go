package neuroview

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default framing parameters.
const (
	DefaultFOV           = 50   // vertical field of view, degrees
	DefaultNear          = 0.1  // near clip plane
	DefaultFar           = 2000 // far clip plane
	DefaultFrustumSize   = 20   // orthographic vertical extent at zoom 1
	DefaultFillFraction  = 0.7  // share of the viewport a framed box occupies
	DefaultDuration      = 0.6  // seconds per framing animation
	defaultOrthoStandoff = 100  // orthographic eye distance from the look-at point
)

// RigConfig holds the CameraRig settings.
type RigConfig struct {
	// Projection is "perspective" (default) or "orthographic".
	Projection string `yaml:"projection"`
	// FOV is the vertical field of view in degrees (perspective only).
	FOV float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// FrustumSize is the orthographic vertical extent at zoom 1.
	FrustumSize float32 `yaml:"frustumSize"`
	// FillFraction keeps a framed box from touching the viewport edges.
	// Values outside (0, 1] are replaced by the default.
	FillFraction float32 `yaml:"fillFraction"`
	// Duration is the length of a framing animation in seconds.
	Duration float32 `yaml:"duration"`
	// Tilts maps a focus mode name to the camera pitch in degrees.
	Tilts map[string]float32 `yaml:"tilts" validate:"dive,keys,oneof=overview modelFocus layerFocus neuronFocus,endkeys,gte=0,lt=90"`
	// Width and Height are the initial viewport size.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the top-level configuration document.
type Config struct {
	Rig      RigConfig `yaml:"rig"`
	Debug    bool      `yaml:"debug"`
	LogLevel string    `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error fatal"`
}

// defaultTilts is the per-mode pitch table in degrees.
func defaultTilts() map[string]float32 {
	return map[string]float32{
		FocusOverview.String(): 0,
		FocusModel.String():    30,
		FocusLayer.String():    50,
		FocusNeuron.String():   60,
	}
}

// DefaultRigConfig returns a perspective rig for an 800x600 viewport.
func DefaultRigConfig() RigConfig {
	return RigConfig{
		Projection:   ProjectionPerspective.String(),
		FOV:          DefaultFOV,
		Near:         DefaultNear,
		Far:          DefaultFar,
		FrustumSize:  DefaultFrustumSize,
		FillFraction: DefaultFillFraction,
		Duration:     DefaultDuration,
		Tilts:        defaultTilts(),
		Width:        800,
		Height:       600,
	}
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{Rig: DefaultRigConfig(), LogLevel: "warn"}
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports an unknown projection, tilt mode or log level, or a tilt
// outside [0, 90) degrees.
func (c Config) Validate() error {
	if _, err := parseProjection(c.Rig.Projection); err != nil {
		return err
	}
	if err := validate.Struct(&c); err != nil {
		return validationError(err)
	}
	return nil
}

// normalized fills zero or out-of-range values with defaults.
func (c RigConfig) normalized() RigConfig {
	def := DefaultRigConfig()
	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = def.FOV
	}
	if c.Near <= 0 {
		c.Near = def.Near
	}
	if c.Far <= c.Near {
		c.Far = c.Near + def.Far
	}
	if c.FrustumSize <= 0 {
		c.FrustumSize = def.FrustumSize
	}
	if c.FillFraction <= 0 || c.FillFraction > 1 {
		c.FillFraction = def.FillFraction
	}
	if c.Duration <= 0 {
		c.Duration = def.Duration
	}
	tilts := defaultTilts()
	for k, v := range c.Tilts {
		tilts[k] = v
	}
	c.Tilts = tilts
	return c
}

func parseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perspective":
		return ProjectionPerspective, nil
	case "orthographic", "ortho":
		return ProjectionOrthographic, nil
	default:
		return ProjectionPerspective, fmt.Errorf("unknown projection %q", s)
	}
}

func parseFocusMode(s string) (FocusMode, bool) {
	for m := FocusOverview; m <= FocusNeuron; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return FocusOverview, false
}
