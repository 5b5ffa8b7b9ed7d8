package fractal

// Grid is a row-major sweep of instability values with the largest value seen
// Values[row*Width+col] holds the cell at (row, col)
type Grid struct {
	Values []Value
	Width  int
	Height int
	Max    Value
}

// At returns the value at row, col; out of range reads return Bounded
func (g *Grid) At(row, col int) Value {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return Bounded
	}
	return g.Values[row*g.Width+col]
}

// BoundedCount returns the number of cells that never escaped
func (g *Grid) BoundedCount() int {
	n := 0
	for _, v := range g.Values {
		if v == Bounded {
			n++
		}
	}
	return n
}

// Generate samples the rectangle [xMin,xMax] x [yMin,yMax] at the center of
// each of width x height cells and tracks the maximum in the same pass
// Non-positive dimensions yield an empty grid with Max 0
func Generate(xMin, xMax, yMin, yMax float64, width, height int, maxIterations uint32) Grid {
	if width <= 0 || height <= 0 {
		return Grid{Values: []Value{}, Width: max(width, 0), Height: max(height, 0)}
	}

	g := Grid{
		Values: make([]Value, 0, width*height),
		Width:  width,
		Height: height,
	}

	dx := (xMax - xMin) / float64(width)
	dy := (yMax - yMin) / float64(height)
	x0 := xMin + dx/2
	y0 := yMin + dy/2

	for row := 0; row < height; row++ {
		y := y0 + offset(row, dy)
		for col := 0; col < width; col++ {
			v := Instability(Point{Re: x0 + offset(col, dx), Im: y}, maxIterations)
			if v > g.Max {
				g.Max = v
			}
			g.Values = append(g.Values, v)
		}
	}
	return g
}

// offset is the distance of cell i from the first sample, rounded before the add
func offset(i int, delta float64) float64 {
	return float64(float64(i) * delta)
}
