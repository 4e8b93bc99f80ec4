package neuroview

import (
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	yamlScript := `
steps:
  - action: goto
    path: [mA, l0]
  - action: wait
    frames: 2
  - action: click
    x: 10
    y: 20
  - action: screenshot
    label: after click
`
	r, err := LoadTestScript([]byte(yamlScript))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("steps = %d, want 4", len(r.steps))
	}
	if got := r.steps[0].Path; len(got) != 2 || got[1] != "l0" {
		t.Errorf("goto path = %v", got)
	}
	if r.steps[2].X != 10 || r.steps[2].Y != 20 {
		t.Errorf("click at %v,%v, want 10,20", r.steps[2].X, r.steps[2].Y)
	}
}

func TestLoadTestScriptJSON(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"move","x":1,"y":2}]}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if r.steps[0].Action != "move" {
		t.Errorf("action = %q", r.steps[0].Action)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no steps", `steps: []`},
		{"unknown action", "steps:\n  - action: jump\n"},
		{"malformed", "steps: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTestRunnerDrivesScene(t *testing.T) {
	f := newNavFixture(t)
	f.reset()
	x, y := f.screenPos(t, f.model("mB"))

	script := []byte(`
steps:
  - action: goto
    path: [mA, l1]
  - action: wait
    frames: 2
  - action: goto
  - action: click
`)
	r, err := LoadTestScript(script)
	if err != nil {
		t.Fatal(err)
	}
	// Aim the click at mB as seen from the overview the script returns to.
	r.steps[3].X, r.steps[3].Y = x, y
	f.scene.SetTestRunner(r)

	for i := 0; i < 20 && !r.Done(); i++ {
		f.scene.Step(f.rig.Duration())
	}
	if !r.Done() {
		t.Fatal("runner did not finish")
	}
	want := []string{"layer:l1", "nothing", "in:mB", "out:mB", "model:mB"}
	if len(f.events) != len(want) {
		t.Fatalf("events = %v, want %v", f.events, want)
	}
	for i := range want {
		if f.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", f.events, want)
		}
	}
	if f.nav.Mode() != FocusModel {
		t.Errorf("mode = %v, want modelFocus", f.nav.Mode())
	}
}

func TestTestRunnerScreenshotQueues(t *testing.T) {
	scene, err := NewScene(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	r, err := LoadTestScript([]byte("steps:\n  - action: screenshot\n    label: first\n"))
	if err != nil {
		t.Fatal(err)
	}
	scene.SetTestRunner(r)
	scene.Step(0)
	if len(scene.screenshotQueue) != 1 || scene.screenshotQueue[0].Label != "first" {
		t.Errorf("queue = %+v, want one capture labeled first", scene.screenshotQueue)
	}
	if !r.Done() {
		t.Error("single-step script should be done")
	}
}
