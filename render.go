package neuroview

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	strokeNormal  = 1
	strokeFocused = 2
)

// boxEdges lists the 12 edges of a box as index pairs into boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // min z face
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // max z face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

// boxCorners returns the 8 corners of b. Bit 0 selects max X, bit 1 max Y,
// bit 2 max Z.
func boxCorners(b math32.Box3) [8]math32.Vector3 {
	var cs [8]math32.Vector3
	for i := range cs {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		cs[i] = c
	}
	return cs
}

// Draw renders every visible node's geometry as a wireframe seen through
// the rig, then a status line, then any queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	var focused *Node
	if s.nav != nil {
		focused = s.nav.Focused()
	}
	s.root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Bounds.IsEmpty() {
			return true
		}
		width := float32(strokeNormal)
		if focused != nil && isAncestor(focused, n) {
			width = strokeFocused
		}
		s.drawBox(screen, n.WorldBounds(), drawColor(n), width)
		return true
	})

	status := s.statusLine()
	if s.debug && s.fps.text != "" {
		status += "\n" + s.fps.text
	}
	ebitenutil.DebugPrint(screen, status)
	s.flushScreenshots(screen)
}

// drawColor returns the tint of the closest hovered node on n's parent
// chain, so a mesh lights up with its owner, falling back to n's own color.
func drawColor(n *Node) Color {
	for p := n; p != nil; p = p.Parent {
		if p.hovered {
			return p.Color
		}
	}
	return n.Color
}

// drawBox strokes the projected edges of a world box. Edges with a corner
// behind the camera are skipped.
func (s *Scene) drawBox(dst *ebiten.Image, b math32.Box3, c Color, width float32) {
	corners := boxCorners(b)
	var pts [8][2]float32
	var ok [8]bool
	for i, p := range corners {
		nx, ny, vis := s.rig.Project(p)
		if !vis {
			continue
		}
		x, y := s.rig.NDCToScreen(nx, ny)
		pts[i] = [2]float32{float32(x), float32(y)}
		ok[i] = true
	}
	clr := c.toRGBA()
	for _, e := range boxEdges {
		i, j := e[0], e[1]
		if !ok[i] || !ok[j] {
			continue
		}
		vector.StrokeLine(dst, pts[i][0], pts[i][1], pts[j][0], pts[j][1], width, clr, true)
	}
}

// statusLine describes the navigation state for the on-screen overlay.
func (s *Scene) statusLine() string {
	if s.nav == nil {
		return "no navigator"
	}
	line := fmt.Sprintf("mode: %s", s.nav.Mode())
	if f := s.nav.Focused(); f != nil {
		line += fmt.Sprintf("  focus: %s", f.Name)
	}
	if h := s.nav.Hovered(); h != nil {
		line += fmt.Sprintf("\nhover: %s (%s)", h.Name, h.Kind)
	}
	return line
}
