package neuroview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "perspective", cfg.Rig.Projection)
	assert.Equal(t, float32(DefaultFillFraction), cfg.Rig.FillFraction)
	assert.Equal(t, float32(DefaultDuration), cfg.Rig.Duration)
	assert.Len(t, cfg.Rig.Tilts, 4)
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
debug: true
logLevel: debug
rig:
  projection: ortho
  frustumSize: 40
  tilts:
    neuronFocus: 50
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ortho", cfg.Rig.Projection)
	assert.Equal(t, float32(40), cfg.Rig.FrustumSize)
	assert.Equal(t, float32(50), cfg.Rig.Tilts["neuronFocus"])
	assert.Equal(t, float32(DefaultFOV), cfg.Rig.FOV, "omitted keys keep defaults")
	assert.Equal(t, 800, cfg.Rig.Width)

	rig, err := NewCameraRig(NewGroup("root"), cfg.Rig)
	require.NoError(t, err)
	assert.Equal(t, ProjectionOrthographic, rig.Projection())
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "rig: [1, 2"},
		{"bad projection", "rig:\n  projection: fisheye\n"},
		{"bad tilt mode", "rig:\n  tilts:\n    sideways: 10\n"},
		{"tilt too steep", "rig:\n  tilts:\n    layerFocus: 90\n"},
		{"negative tilt", "rig:\n  tilts:\n    overview: -5\n"},
		{"bad log level", "logLevel: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.LogLevel")

	cfg = DefaultConfig()
	cfg.Rig.Tilts = map[string]float32{"sideways": 10}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")

	cfg = DefaultConfig()
	cfg.Rig.Projection = "fisheye"
	assert.Error(t, cfg.Validate())
}

func TestRigConfigNormalized(t *testing.T) {
	cfg := RigConfig{FOV: 200, Near: -1, Far: 0, FillFraction: 3, Duration: -2}.normalized()
	assert.Equal(t, float32(DefaultFOV), cfg.FOV)
	assert.Equal(t, float32(DefaultNear), cfg.Near)
	assert.Greater(t, cfg.Far, cfg.Near)
	assert.Equal(t, float32(DefaultFrustumSize), cfg.FrustumSize)
	assert.Equal(t, float32(DefaultFillFraction), cfg.FillFraction)
	assert.Equal(t, float32(DefaultDuration), cfg.Duration)
	assert.Equal(t, float32(50), cfg.Tilts["layerFocus"])
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		in      string
		want    Projection
		wantErr bool
	}{
		{"", ProjectionPerspective, false},
		{"Perspective", ProjectionPerspective, false},
		{" orthographic ", ProjectionOrthographic, false},
		{"ortho", ProjectionOrthographic, false},
		{"iso", ProjectionPerspective, true},
	}
	for _, tt := range tests {
		got, err := parseProjection(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseProjection(%q)", tt.in)
			continue
		}
		assert.NoError(t, err, "parseProjection(%q)", tt.in)
		assert.Equal(t, tt.want, got, "parseProjection(%q)", tt.in)
	}
}

func TestFocusModeNames(t *testing.T) {
	for m := FocusOverview; m <= FocusNeuron; m++ {
		got, ok := parseFocusMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "unknown", FocusMode(9).String())
}
