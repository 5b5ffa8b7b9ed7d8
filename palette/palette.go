// Package palette quantizes instability values into colors.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// NoEscape is the color of points that stayed bounded
var NoEscape = terminal.RGBBlack

// Palette is an ordered list of evenly spaced anchor colors
type Palette struct {
	Name    string
	Anchors []terminal.RGB
}

// Heaven is the default palette
var Heaven = Palette{
	Name: "heaven",
	Anchors: []terminal.RGB{
		{R: 13, G: 0, B: 51},
		{R: 20, G: 28, B: 132},
		{R: 111, G: 118, B: 210},
		{R: 220, G: 106, B: 136},
		{R: 240, G: 120, B: 140},
	},
}

var Fire = Palette{
	Name: "fire",
	Anchors: []terminal.RGB{
		{R: 32, G: 0, B: 0},
		{R: 128, G: 16, B: 0},
		{R: 220, G: 80, B: 0},
		{R: 255, G: 180, B: 40},
		{R: 255, G: 250, B: 200},
	},
}

var Ocean = Palette{
	Name: "ocean",
	Anchors: []terminal.RGB{
		{R: 0, G: 8, B: 32},
		{R: 0, G: 48, B: 96},
		{R: 0, G: 120, B: 160},
		{R: 80, G: 200, B: 210},
		{R: 220, G: 250, B: 255},
	},
}

var Mono = Palette{
	Name: "mono",
	Anchors: []terminal.RGB{
		{R: 24, G: 24, B: 24},
		{R: 255, G: 255, B: 255},
	},
}

// Scale maps value against maxValue onto the palette
// The lower anchor is chosen by percentage, but the blend between it and the
// next anchor is driven by the same global percentage, not the fraction
// within that bucket, so colors jump at bucket boundaries
func (p Palette) Scale(value, maxValue fractal.Value) terminal.RGB {
	if value == fractal.Bounded || len(p.Anchors) < 2 {
		return NoEscape
	}

	percentage := float64(value) / float64(maxValue)
	last := len(p.Anchors) - 2
	low := int(percentage * float64(last))
	if low > last {
		low = last
	}
	if low < 0 {
		low = 0
	}

	lo, hi := p.Anchors[low], p.Anchors[low+1]
	return terminal.RGB{
		R: lerp(percentage, lo.R, hi.R),
		G: lerp(percentage, lo.G, hi.G),
		B: lerp(percentage, lo.B, hi.B),
	}
}

// lerp blends low toward high by perc clamped to [0,1], truncating the result
func lerp(perc float64, low, high uint8) uint8 {
	if perc > 1 {
		perc = 1
	} else if !(perc > 0) {
		perc = 0
	}
	l, h := float64(low), float64(high)
	return uint8(l + float64((h-l)*perc))
}

// FromHex builds a palette from "#rrggbb" anchor strings
func FromHex(name string, anchors []string) (Palette, error) {
	if len(anchors) < 2 {
		return Palette{}, fmt.Errorf("palette %q: need at least 2 anchors, got %d", name, len(anchors))
	}
	p := Palette{Name: strings.ToLower(name), Anchors: make([]terminal.RGB, 0, len(anchors))}
	for i, s := range anchors {
		c, err := colorful.Hex(strings.TrimSpace(s))
		if err != nil {
			return Palette{}, fmt.Errorf("palette %q anchor %d: %w", name, i, err)
		}
		r, g, b := c.RGB255()
		p.Anchors = append(p.Anchors, terminal.RGB{R: r, G: g, B: b})
	}
	return p, nil
}
