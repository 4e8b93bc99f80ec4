package neuroview

import (
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestBoxCorners(t *testing.T) {
	b := math32.B3(0, 1, 2, 3, 4, 5)
	cs := boxCorners(b)
	if cs[0] != b.Min {
		t.Errorf("corner 0 = %v, want Min", cs[0])
	}
	if cs[7] != b.Max {
		t.Errorf("corner 7 = %v, want Max", cs[7])
	}
	if cs[5] != math32.Vec3(3, 1, 5) {
		t.Errorf("corner 5 = %v, want (3,1,5)", cs[5])
	}
	for _, e := range boxEdges {
		a, c := cs[e[0]], cs[e[1]]
		diff := 0
		if a.X != c.X {
			diff++
		}
		if a.Y != c.Y {
			diff++
		}
		if a.Z != c.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("edge %v joins %v and %v, want one axis apart", e, a, c)
		}
	}
}

func TestDrawColorFollowsHoveredOwner(t *testing.T) {
	layer := NewLayer(Record{ID: "l"})
	layer.Color = Color{R: 0.5, A: 1}
	layer.Hover = NewHighlight(Color{R: 1, G: 1, A: 1})
	panel := NewMesh("panel", math32.B3(0, 0, 0, 1, 1, 1))
	panel.Color = Color{B: 1, A: 1}
	layer.AddChild(panel)

	if got := drawColor(panel); got != panel.Color {
		t.Errorf("drawColor = %v, want mesh color when idle", got)
	}
	layer.HoverIn()
	if got := drawColor(panel); got != (Color{R: 1, G: 1, A: 1}) {
		t.Errorf("drawColor = %v, want owner highlight", got)
	}
	layer.HoverOut()
	if got := drawColor(panel); got != panel.Color {
		t.Errorf("drawColor = %v, want mesh color after hover out", got)
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 2, A: 0.5}.toRGBA()
	if c.A != 127 || c.R != 127 || c.G != 63 || c.B != 255 {
		t.Errorf("toRGBA = %+v", c)
	}
}

func TestStatusLine(t *testing.T) {
	scene, err := NewScene(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := scene.statusLine(); got != "no navigator" {
		t.Errorf("statusLine = %q", got)
	}

	model := NewModel(Record{ID: "m", Label: "Model M"})
	scene.Root().AddChild(model)
	nav, err := scene.Navigate(NavigatorConfig{Models: []*Node{model}})
	if err != nil {
		t.Fatal(err)
	}
	nav.Goto("m")
	got := scene.statusLine()
	if !strings.Contains(got, "mode: modelFocus") || !strings.Contains(got, "focus: Model M") {
		t.Errorf("statusLine = %q", got)
	}
}

func TestSceneDrawSmoke(t *testing.T) {
	scene, err := NewScene(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	model := NewModel(Record{ID: "m"})
	scene.Root().AddChild(model)
	model.AddChild(NewMesh("box", math32.B3(-1, -1, -1, 1, 1, 1)))
	if _, err := scene.Navigate(NavigatorConfig{Models: []*Node{model}}); err != nil {
		t.Fatal(err)
	}
	scene.Navigator().Goto("m")
	scene.Step(1)

	screen := ebiten.NewImage(800, 600)
	scene.Draw(screen)
}
