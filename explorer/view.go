package explorer

import (
	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/viewport"
)

// View is the explorer's position in the plane and its iteration budget
type View struct {
	Origin     fractal.Point
	Size       viewport.Extent
	Iterations uint32
}

// DefaultView is the whole set at a modest budget
var DefaultView = View{
	Origin:     fractal.Point{Re: -0.75, Im: 0.0},
	Size:       viewport.Extent{X: 3.0, Y: 3.0},
	Iterations: 50,
}

// Bounds maps the view onto a terminal of width x height cells
func (v View) Bounds(width, height int) viewport.Bounds {
	return viewport.ForView(v.Origin, v.Size, width, height)
}

// IncreaseIterations steps up by 1000, 100, 10 or 1 depending on magnitude, capped at fractal.MaxIterations
func IncreaseIterations(n uint32) uint32 {
	var step uint32
	switch {
	case n >= 1000:
		step = 1000
	case n >= 100:
		step = 100
	case n >= 10:
		step = 10
	default:
		step = 1
	}
	if n >= fractal.MaxIterations || fractal.MaxIterations-n < step {
		return fractal.MaxIterations
	}
	return n + step
}

// DecreaseIterations steps down by 1000, 100, 10 or 1 without dropping below the step's threshold; floor 1
func DecreaseIterations(n uint32) uint32 {
	switch {
	case n >= 2000:
		return n - 1000
	case n >= 200:
		return n - 100
	case n >= 20:
		return n - 10
	case n >= 2:
		return n - 1
	}
	return 1
}
