package explorer

import "strings"

// Overlays is a set of pending overlay requests
// At most one is shown per redraw, in precedence order help, iterations, coordinates, statistics
type Overlays uint8

const (
	OverlayStats Overlays = 1 << iota
	OverlayCoords
	OverlayIterations
	OverlayHelp

	OverlayNone Overlays = 0
)

// precedence lists overlays from highest to lowest
var precedence = [...]Overlays{OverlayHelp, OverlayIterations, OverlayCoords, OverlayStats}

func (o *Overlays) Set(x Overlays) { *o |= x }

func (o Overlays) Has(x Overlays) bool { return o&x != 0 }

// Pop removes and returns the highest-precedence pending overlay
// Lower requests stay pending
func (o *Overlays) Pop() Overlays {
	for _, x := range precedence {
		if *o&x != 0 {
			*o &^= x
			return x
		}
	}
	return OverlayNone
}

func (o Overlays) String() string {
	if o == OverlayNone {
		return "none"
	}
	var parts []string
	for _, x := range precedence {
		if o&x == 0 {
			continue
		}
		switch x {
		case OverlayHelp:
			parts = append(parts, "help")
		case OverlayIterations:
			parts = append(parts, "iterations")
		case OverlayCoords:
			parts = append(parts, "coords")
		case OverlayStats:
			parts = append(parts, "stats")
		}
	}
	return strings.Join(parts, "|")
}
