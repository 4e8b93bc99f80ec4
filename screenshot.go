package neuroview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// viewState is the navigation and camera state recorded with a capture.
// It is written as a YAML sidecar next to the PNG so a frame can be matched
// to the focus and pose that produced it.
type viewState struct {
	Label      string     `yaml:"label"`
	Mode       string     `yaml:"mode"`
	Focus      string     `yaml:"focus,omitempty"`
	Hover      string     `yaml:"hover,omitempty"`
	Projection string     `yaml:"projection"`
	Position   [3]float32 `yaml:"position,flow"`
	Target     [3]float32 `yaml:"target,flow"`
	TiltDeg    float32    `yaml:"tilt"`
	Zoom       float32    `yaml:"zoom,omitempty"`
	Animating  bool       `yaml:"animating"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
}

// Screenshot queues a capture of the current frame. The navigation state is
// recorded now; the pixels are read at the end of the next Draw.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, s.captureView(label))
}

// captureView snapshots the rig and, if present, the navigator.
func (s *Scene) captureView(label string) viewState {
	r := s.rig
	w, h := r.Viewport()
	v := viewState{
		Label:      label,
		Mode:       FocusOverview.String(),
		Projection: r.Projection().String(),
		Position:   vec3(r.Position()),
		Target:     vec3(r.Target()),
		TiltDeg:    math32.RadToDeg(r.Tilt()),
		Animating:  r.Animating(),
		Width:      w,
		Height:     h,
	}
	if r.Projection() == ProjectionOrthographic {
		v.Zoom = r.Zoom()
	}
	if s.nav != nil {
		v.Mode = s.nav.Mode().String()
		if f := s.nav.Focused(); f != nil {
			v.Focus = f.Path()
		}
		if hv := s.nav.Hovered(); hv != nil {
			v.Hover = hv.Path()
		}
	}
	return v
}

func vec3(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// shotName builds the file stem for a capture: timestamp, sequence within
// the frame, label, mode and, when focused, the focus path.
// e.g. 20260102_150405_00_after-click_layerFocus_mlp_hidden
func shotName(stamp string, seq int, v viewState) string {
	parts := []string{stamp, fmt.Sprintf("%02d", seq), sanitizeLabel(v.Label), v.Mode}
	if v.Focus != "" {
		parts = append(parts, sanitizeLabel(v.Focus))
	}
	return strings.Join(parts, "_")
}

// flushScreenshots writes every queued capture of screen. Called at the end
// of Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		logger.Error("screenshot: mkdir", "dir", s.ScreenshotDir, "err", err)
		return
	}

	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	img := straightAlpha(pix, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for i, v := range s.screenshotQueue {
		base := filepath.Join(s.ScreenshotDir, shotName(stamp, i, v))
		if err := writeCapture(base, img, v); err != nil {
			logger.Error("screenshot", "err", err)
			continue
		}
		logger.Info("screenshot written", "path", base+".png", "mode", v.Mode, "focus", v.Focus)
	}
}

// straightAlpha wraps premultiplied RGBA pixels read from ebiten as an
// NRGBA image, undoing the premultiplication in place.
func straightAlpha(pix []byte, w, h int) *image.NRGBA {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := i; c < i+3; c++ {
			pix[c] = uint8(min(int(pix[c])*255/a, 255))
		}
	}
	return &image.NRGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
}

// writeCapture writes base.png and its base.yaml state sidecar.
func writeCapture(base string, img image.Image, v viewState) error {
	if err := writePNG(base+".png", img); err != nil {
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s.yaml: %w", base, err)
	}
	if err := os.WriteFile(base+".yaml", data, 0o644); err != nil {
		return fmt.Errorf("write %s.yaml: %w", base, err)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', maps everything else to
// '_' and falls back to "unlabeled" for blank input.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
