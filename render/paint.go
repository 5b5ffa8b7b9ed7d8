package render

import (
	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/palette"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// PaintGrid fills the buffer with one space per grid value, colored by the palette
// Only the overlapping region is painted when grid and buffer sizes differ
func PaintGrid(b *Buffer, g fractal.Grid, p palette.Palette) {
	w := min(b.width, g.Width)
	h := min(b.height, g.Height)

	// Runs of equal values share one Scale call
	var (
		prev  fractal.Value
		color = p.Scale(0, g.Max)
	)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := g.Values[row*g.Width+col]
			if v != prev {
				prev = v
				color = p.Scale(v, g.Max)
			}
			b.SetWithBg(col, row, ' ', terminal.RGBWhite, color)
		}
	}
}
