package explorer

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/mandelbrots-in-heaven/render"
	"github.com/lixenwraith/mandelbrots-in-heaven/status"
)

// Title is shown in the terminal title bar and the help panel
const Title = "Mandelbrot's in Heaven"

var helpPanel = render.Panel{Lines: []string{
	" " + Title + " - joe@joedean.dev",
	" Left click: Zoom in on point",
	" Right click: Zoom out from point",
	" i: Increase iterations",
	" j: Decrease iterations",
	" r: Reset settings",
	" c: See coords",
	" q: Quit program",
	" p: Next palette    s: Render stats",
	" Arrows: Pan        +/-: Zoom",
	" 1-6: Landmarks",
}}

func iterationsPanel(n uint32) render.Panel {
	return render.Panel{Lines: []string{fmt.Sprintf(" Iterations: %d", n)}}
}

func coordsPanel(v View) render.Panel {
	return render.Panel{Lines: []string{
		" Origin X: " + formatFloat(v.Origin.Re),
		" Origin Y: " + formatFloat(v.Origin.Im),
		" Size (X): " + formatFloat(v.Size.X),
		" Size (Y): " + formatFloat(v.Size.Y),
	}}
}

func statsPanel(reg *status.Registry) render.Panel {
	lines := reg.Lines()
	for i, l := range lines {
		lines[i] = " " + l
	}
	return render.Panel{Lines: lines}
}

// formatFloat prints the shortest decimal that round-trips, never in exponent form
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
