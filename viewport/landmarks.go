package viewport

import "github.com/lixenwraith/mandelbrots-in-heaven/fractal"

// Region is a named rectangle of the plane
type Region struct {
	Name       string
	XMin, XMax float64
	YMin, YMax float64
}

// Origin returns the center of the region
func (r Region) Origin() fractal.Point {
	return fractal.Point{Re: (r.XMin + r.XMax) / 2, Im: (r.YMin + r.YMax) / 2}
}

// Size returns the extent of the region
func (r Region) Size() Extent {
	return Extent{X: r.XMax - r.XMin, Y: r.YMax - r.YMin}
}

// Classic landmarks, bound to the digit keys in order
var Landmarks = []Region{
	// Dense filaments and repeating seahorse curls
	{Name: "Seahorse Valley", XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},
	// Large bulb with trunk-like tendrils
	{Name: "Elephant Valley", XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02},
	// Small copy with tight spiral arms
	{Name: "Spiral Minibrot", XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325},
	// Threefold symmetric spiral
	{Name: "Triple Spiral", XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980},
	{Name: "Valley of the Dragon", XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850},
	{Name: "Minibrot in a Mini-Spiral", XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220},
}

// Landmark returns the region at index i, false when out of range
func Landmark(i int) (Region, bool) {
	if i < 0 || i >= len(Landmarks) {
		return Region{}, false
	}
	return Landmarks[i], true
}
