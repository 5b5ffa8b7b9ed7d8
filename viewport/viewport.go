// Package viewport maps a view description (center and extent) onto plane
// bounds for a terminal grid and maps terminal cells back onto the plane.
package viewport

import (
	"math"

	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
)

// CellAspect is how many times taller a terminal cell is than it is wide
const CellAspect = 2.5

// Extent is the plane-space width and height of the visible window
type Extent struct {
	X, Y float64
}

// Scale returns the extent with both axes multiplied by f
func (e Extent) Scale(f float64) Extent {
	return Extent{X: e.X * f, Y: e.Y * f}
}

// Abs returns the extent with non-negative components
func (e Extent) Abs() Extent {
	return Extent{X: math.Abs(e.X), Y: math.Abs(e.Y)}
}

// Bounds is the rectangle of the plane currently mapped onto the terminal
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint of the rectangle
func (b Bounds) Center() fractal.Point {
	return fractal.Point{Re: (b.XMin + b.XMax) / 2, Im: (b.YMin + b.YMax) / 2}
}

// Ratios returns plane units per terminal column and per terminal row,
// the row ratio corrected by CellAspect
func (b Bounds) Ratios(termWidth, termHeight int) (xRatio, yRatio float64) {
	xRatio = b.Width() / float64(termWidth)
	yRatio = (b.Height() / float64(termHeight)) / CellAspect
	return xRatio, yRatio
}

// PointAt maps a terminal cell to the plane using the cell's top-left corner
func (b Bounds) PointAt(row, col, termWidth, termHeight int) fractal.Point {
	return fractal.Point{
		Re: (float64(col)/float64(termWidth))*b.Width() + b.XMin,
		Im: (float64(row)/float64(termHeight))*b.Height() + b.YMin,
	}
}

// GetBounds centers a window of the given size on the origin and widens the
// axis whose cells would otherwise be too coarse
// TODO: grow by the missing extent (termHeight*xRatio - height) so both ratios match
func GetBounds(originX, originY, xSize, ySize float64, termWidth, termHeight int) Bounds {
	xSize = math.Abs(xSize)
	ySize = math.Abs(ySize)

	b := Bounds{
		XMin: originX - xSize*0.5,
		XMax: originX + xSize*0.5,
		YMin: originY - ySize*0.5,
		YMax: originY + ySize*0.5,
	}

	xRatio, yRatio := b.Ratios(termWidth, termHeight)

	if xRatio > yRatio {
		grow := float64(termHeight) * xRatio
		b.YMin -= grow / 2
		b.YMax += grow / 2
	}
	if yRatio > xRatio {
		grow := float64(termWidth) * yRatio
		b.XMin -= grow / 2
		b.XMax += grow / 2
	}
	return b
}

// ForView is GetBounds for an origin point and extent
func ForView(origin fractal.Point, size Extent, termWidth, termHeight int) Bounds {
	return GetBounds(origin.Re, origin.Im, size.X, size.Y, termWidth, termHeight)
}
