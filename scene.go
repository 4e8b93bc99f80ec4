package neuroview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the pointer
// surface, the camera rig and, once Navigate is called, the navigator.
type Scene struct {
	root    *Node
	surface *Surface
	rig     *CameraRig
	nav     *Navigator
	debug   bool

	// ClearColor fills the screen before the wireframe is drawn.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files and their state
	// sidecars.
	ScreenshotDir string

	screenshotQueue []viewState
	testRunner      *TestRunner
	fps             fpsCounter
}

// NewScene creates a scene with an empty root group, a headless surface
// covering the configured viewport, and a camera rig framing the root.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	root := NewGroup("root")
	rig, err := NewCameraRig(root, cfg.Rig)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	w, h := rig.Viewport()
	s := &Scene{
		root:          root,
		surface:       NewSurface(Rect{Width: float64(w), Height: float64(h)}),
		rig:           rig,
		ClearColor:    Color{R: 0.06, G: 0.07, B: 0.1, A: 1},
		ScreenshotDir: "screenshots",
	}
	if cfg.LogLevel != "" {
		SetLogLevel(cfg.LogLevel)
	}
	s.SetDebugMode(cfg.Debug)
	return s, nil
}

// Root returns the scene's root group.
func (s *Scene) Root() *Node {
	return s.root
}

// Surface returns the pointer surface the navigator listens on.
func (s *Scene) Surface() *Surface {
	return s.surface
}

// Rig returns the scene's camera rig.
func (s *Scene) Rig() *CameraRig {
	return s.rig
}

// Navigator returns the navigator created by Navigate, or nil.
func (s *Scene) Navigator() *Navigator {
	return s.nav
}

// Navigate creates the scene's navigator. Host and Rig default to the
// scene's own surface and rig. Any previous navigator is disposed.
func (s *Scene) Navigate(cfg NavigatorConfig) (*Navigator, error) {
	if cfg.Host == nil {
		cfg.Host = s.surface
	}
	if cfg.Rig == nil {
		cfg.Rig = s.rig
	}
	nav, err := NewNavigator(cfg)
	if err != nil {
		return nil, err
	}
	if s.nav != nil {
		s.nav.Dispose()
	}
	s.nav = nav
	return nav, nil
}

// Update processes input and advances the camera by one tick of the game
// loop.
func (s *Scene) Update() {
	s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step advances the scene by dt seconds: the test runner queues its next
// step, the surface delivers one frame of input, then the rig runs its
// per-frame update.
func (s *Scene) Step(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.surface.Poll()
	s.rig.Update(dt)
	if s.debug {
		s.fps.update(dt)
	}
}

// Resize forwards a new viewport size to the surface and rig. When the size
// actually changed and a navigator exists, the current focus is re-framed.
func (s *Scene) Resize(width, height int) {
	w, h := s.rig.Viewport()
	s.rig.Resize(width, height)
	nw, nh := s.rig.Viewport()
	s.surface.SetBounds(Rect{Width: float64(nw), Height: float64(nh)})
	if (nw != w || nh != h) && s.nav != nil {
		s.nav.Refocus()
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged and the logger drops to
// debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		SetLogLevel("debug")
	}
}

// Dispose tears down the navigator. The node tree belongs to the caller.
func (s *Scene) Dispose() {
	if s.nav != nil {
		s.nav.Dispose()
	}
}
