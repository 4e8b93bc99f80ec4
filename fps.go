package neuroview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsInterval is how often the overlay's frame-rate readout refreshes, in
// seconds.
const fpsInterval = 0.5

// fpsCounter keeps the FPS/TPS line shown under the status overlay. The
// text only changes every fpsInterval so it stays readable.
type fpsCounter struct {
	elapsed float32
	text    string
}

func (c *fpsCounter) update(dt float32) {
	c.elapsed += dt
	if c.text != "" && c.elapsed < fpsInterval {
		return
	}
	c.elapsed = 0
	c.text = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}
