package neuroview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a navigation script.
type testStep struct {
	Action string   `yaml:"action" json:"action"`
	Label  string   `yaml:"label,omitempty" json:"label,omitempty"`
	X      float64  `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64  `yaml:"y,omitempty" json:"y,omitempty"`
	Path   []string `yaml:"path,omitempty" json:"path,omitempty"`
	Frames int      `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// testScript is the top-level structure for a navigation script.
type testScript struct {
	Steps []testStep `yaml:"steps" json:"steps"`
}

// TestRunner sequences injected pointer events, Goto calls and screenshots
// across frames for automated walkthroughs. Attach to a Scene via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML or JSON navigation script. Recognised
// actions are move, click, goto, wait and screenshot.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "goto", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Step before input is polled each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Step.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.surface.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "move":
		s.surface.InjectMove(st.X, st.Y)
	case "click":
		s.surface.InjectClick(st.X, st.Y)
	case "goto":
		if s.nav != nil {
			s.nav.Goto(st.Path...)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.surface.Pending() == 0 {
		r.done = true
	}
}
