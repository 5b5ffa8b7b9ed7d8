package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// PanelWidth is the column width of text panels including padding
const PanelWidth = 50

// Panel colors
var (
	PanelFg = terminal.RGB{R: 220, G: 220, B: 220}
	PanelBg = terminal.RGBBlack
)

// Rule is the horizontal border line of a panel
var Rule = strings.Repeat("-", PanelWidth)

// Panel is a block of text lines framed by rules, drawn at the top-left corner
type Panel struct {
	Lines []string
}

// Rows returns every row the panel draws, borders included, each padded to PanelWidth
func (p Panel) Rows() []string {
	rows := make([]string, 0, len(p.Lines)+2)
	rows = append(rows, Rule)
	for _, l := range p.Lines {
		rows = append(rows, Pad(l, PanelWidth))
	}
	rows = append(rows, Rule)
	return rows
}

// Draw writes the panel into the buffer, clipped to its size
func (p Panel) Draw(b *Buffer) {
	for y, row := range p.Rows() {
		if y >= b.height {
			return
		}
		DrawText(b, 0, y, row, PanelFg, PanelBg)
	}
}

// DrawText writes s at (x, y), truncated at the buffer edge
// Wide runes take two cells; the trailing cell is blanked
func DrawText(b *Buffer, x, y int, s string, fg, bg terminal.RGB) {
	if y < 0 || y >= b.height || x >= b.width {
		return
	}
	s = runewidth.Truncate(s, b.width-x, "")
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetWithBg(x, y, r, fg, bg)
		if w == 2 {
			b.SetWithBg(x+1, y, ' ', fg, bg)
		}
		x += w
	}
}

// Pad right-pads s with spaces to width display columns
func Pad(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
