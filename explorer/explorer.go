// Package explorer owns the view state and turns input intents into redraws
package explorer

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mandelbrots-in-heaven/audio"
	"github.com/lixenwraith/mandelbrots-in-heaven/core"
	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/input"
	"github.com/lixenwraith/mandelbrots-in-heaven/palette"
	"github.com/lixenwraith/mandelbrots-in-heaven/render"
	"github.com/lixenwraith/mandelbrots-in-heaven/status"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
	"github.com/lixenwraith/mandelbrots-in-heaven/viewport"
)

// Cues receives audible feedback requests
type Cues interface {
	Play(audio.Cue)
}

type silentCues struct{}

func (silentCues) Play(audio.Cue) {}

// Options configures an Explorer; zero fields take defaults
type Options struct {
	Home        View    // Startup and reset view
	ZoomFactor  float64 // Extent multiplier per zoom in, in (0, 1)
	PanFraction float64 // Share of the extent moved per pan key
	Palettes    *palette.Set
	Palette     string // Initial palette name
	Keys        *input.KeyTable
	Cues        Cues
}

func (o *Options) applyDefaults() {
	if o.Home.Iterations == 0 {
		o.Home = DefaultView
	}
	if !(o.ZoomFactor > 0 && o.ZoomFactor < 1) {
		o.ZoomFactor = 0.25
	}
	if !(o.PanFraction > 0 && o.PanFraction <= 1) {
		o.PanFraction = 0.25
	}
	if o.Palettes == nil || o.Palettes.Len() == 0 {
		o.Palettes = palette.Builtin()
	}
	if o.Cues == nil {
		o.Cues = silentCues{}
	}
}

// Explorer is the interaction state machine
// Single-threaded: every method runs on the event loop goroutine
type Explorer struct {
	term    terminal.Terminal
	machine *input.Machine
	opts    Options

	view    View
	palette palette.Palette
	width   int
	height  int

	// Results of the last redraw; clicks map through these bounds
	bounds viewport.Bounds
	grid   fractal.Grid
	buf    *render.Buffer

	dirty    bool
	helpNow  bool // Draw help over the current frame without recomputing
	overlays Overlays

	stats      *status.Registry
	redraws    *atomic.Int64
	cells      *atomic.Int64
	bounded    *atomic.Int64
	maxValue   *atomic.Int64
	iterations *atomic.Int64
	renderMs   *status.AtomicFloat
	paletteNm  *status.AtomicString
}

// New creates an explorer drawing to term
// The startup frame is dirty with the help overlay pending
func New(term terminal.Terminal, opts Options) *Explorer {
	opts.applyDefaults()

	pal, ok := opts.Palettes.Lookup(opts.Palette)
	if !ok {
		pal = opts.Palettes.Next("")
	}

	stats := status.NewRegistry()
	e := &Explorer{
		term:       term,
		machine:    input.NewMachine(opts.Keys),
		opts:       opts,
		view:       opts.Home,
		palette:    pal,
		buf:        render.NewBuffer(0, 0),
		dirty:      true,
		overlays:   OverlayHelp,
		stats:      stats,
		redraws:    stats.Ints.Get(status.KeyRedraws),
		cells:      stats.Ints.Get(status.KeyCells),
		bounded:    stats.Ints.Get(status.KeyBounded),
		maxValue:   stats.Ints.Get(status.KeyMaxValue),
		iterations: stats.Ints.Get(status.KeyIterations),
		renderMs:   stats.Floats.Get(status.KeyRenderMs),
		paletteNm:  stats.Strings.Get(status.KeyPalette),
	}
	e.width, e.height = term.Size()
	return e
}

func (e *Explorer) View() View { return e.view }
func (e *Explorer) Palette() palette.Palette { return e.palette }
func (e *Explorer) Bounds() viewport.Bounds { return e.bounds }
func (e *Explorer) Grid() fractal.Grid { return e.grid }
func (e *Explorer) Overlays() Overlays { return e.overlays }
func (e *Explorer) Dirty() bool { return e.dirty }
func (e *Explorer) Size() (int, int) { return e.width, e.height }
func (e *Explorer) Stats() *status.Registry { return e.stats }
func (e *Explorer) Buffer() *render.Buffer { return e.buf }
func (e *Explorer) ZoomFactor() float64 { return e.opts.ZoomFactor }
func (e *Explorer) KeyTable() *input.KeyTable { return e.machine.KeyTable() }

// Run draws the first frame then processes events until quit, input close or ctx cancellation
func (e *Explorer) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	core.Go(func() {
		select {
		case <-ctx.Done():
			e.term.PostEvent(terminal.Event{Type: terminal.EventClosed})
		case <-stop:
		}
	})

	e.term.SetTitle(Title)
	e.Redraw()
	for {
		in := e.machine.Process(e.term.PollEvent())
		if in == nil {
			continue
		}
		if e.Apply(in) {
			log.Printf("explorer: quit after %d redraws", e.redraws.Load())
			return ctx.Err()
		}
		e.Redraw()
	}
}

// Apply performs one intent's state transition; true means quit
func (e *Explorer) Apply(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return true

	case input.IntentReset:
		e.view = e.opts.Home
		e.dirty = true

	case input.IntentIterationsUp:
		e.setIterations(IncreaseIterations(e.view.Iterations))

	case input.IntentIterationsDown:
		e.setIterations(DecreaseIterations(e.view.Iterations))

	case input.IntentShowCoords:
		e.overlays.Set(OverlayCoords)
		e.dirty = true

	case input.IntentShowStats:
		e.overlays.Set(OverlayStats)
		e.dirty = true

	case input.IntentPaletteNext:
		e.palette = e.opts.Palettes.Next(e.palette.Name)
		log.Printf("explorer: palette %s", e.palette.Name)
		e.dirty = true

	case input.IntentLandmark:
		r, ok := viewport.Landmark(in.Index)
		if !ok {
			e.helpNow = true
			break
		}
		e.view.Origin = r.Origin()
		e.view.Size = r.Size()
		e.overlays.Set(OverlayCoords)
		e.dirty = true
		log.Printf("explorer: landmark %q", r.Name)

	case input.IntentPanLeft:
		e.view.Origin.Re -= e.opts.PanFraction * abs(e.view.Size.X)
		e.dirty = true
	case input.IntentPanRight:
		e.view.Origin.Re += e.opts.PanFraction * abs(e.view.Size.X)
		e.dirty = true
	case input.IntentPanUp:
		// Row 0 is YMin
		e.view.Origin.Im -= e.opts.PanFraction * abs(e.view.Size.Y)
		e.dirty = true
	case input.IntentPanDown:
		e.view.Origin.Im += e.opts.PanFraction * abs(e.view.Size.Y)
		e.dirty = true

	case input.IntentZoomIn:
		e.zoomIn()
	case input.IntentZoomOut:
		e.zoomOut()

	case input.IntentClickZoomIn:
		e.view.Origin = e.bounds.PointAt(in.Row, in.Col, e.width, e.height)
		e.zoomIn()
	case input.IntentClickZoomOut:
		e.view.Origin = e.bounds.PointAt(in.Row, in.Col, e.width, e.height)
		e.zoomOut()
	case input.IntentClickOther:
		e.view.Origin = e.bounds.PointAt(in.Row, in.Col, e.width, e.height)
		e.helpNow = true

	case input.IntentResize:
		e.width, e.height = in.Width, in.Height
		e.overlays.Set(OverlayHelp)
		e.dirty = true

	case input.IntentHelp:
		e.helpNow = true
	}
	return false
}

func (e *Explorer) setIterations(n uint32) {
	if n == e.view.Iterations {
		e.opts.Cues.Play(audio.CueLimit)
	}
	e.view.Iterations = n
	e.overlays.Set(OverlayIterations)
	e.dirty = true
}

func (e *Explorer) zoomIn() {
	e.view.Size = e.view.Size.Scale(e.opts.ZoomFactor)
	e.opts.Cues.Play(audio.CueZoomIn)
	e.dirty = true
}

func (e *Explorer) zoomOut() {
	z := e.opts.ZoomFactor
	e.view.Size = viewport.Extent{X: e.view.Size.X / z, Y: e.view.Size.Y / z}
	e.opts.Cues.Play(audio.CueZoomOut)
	e.dirty = true
}

// Redraw renders a dirty frame and at most one overlay, or draws help over the
// current frame when only that was requested
func (e *Explorer) Redraw() {
	if e.dirty {
		e.renderFrame()
		e.dirty = false
		e.helpNow = false

		switch e.overlays.Pop() {
		case OverlayHelp:
			helpPanel.Draw(e.buf)
		case OverlayIterations:
			iterationsPanel(e.view.Iterations).Draw(e.buf)
		case OverlayCoords:
			coordsPanel(e.view).Draw(e.buf)
		case OverlayStats:
			statsPanel(e.stats).Draw(e.buf)
		}
		e.buf.Flush(e.term)
		return
	}

	if e.helpNow {
		e.helpNow = false
		helpPanel.Draw(e.buf)
		e.buf.Flush(e.term)
	}
}

// renderFrame recomputes bounds and grid for the current view and paints them
func (e *Explorer) renderFrame() {
	start := time.Now()

	e.bounds = e.view.Bounds(e.width, e.height)
	b := e.bounds
	e.grid = fractal.Generate(b.XMin, b.XMax, b.YMin, b.YMax, e.width, e.height, e.view.Iterations)

	if w, h := e.buf.Size(); w != e.width || h != e.height {
		e.buf.Resize(e.width, e.height)
	}
	render.PaintGrid(e.buf, e.grid, e.palette)

	elapsed := time.Since(start)
	e.redraws.Add(1)
	e.cells.Store(int64(len(e.grid.Values)))
	e.bounded.Store(int64(e.grid.BoundedCount()))
	e.maxValue.Store(int64(e.grid.Max))
	e.iterations.Store(int64(e.view.Iterations))
	e.renderMs.Set(float64(elapsed.Microseconds()) / 1000)
	e.paletteNm.Store(e.palette.Name)

	log.Printf("explorer: redraw %dx%d bounds=[%g,%g]x[%g,%g] iterations=%d max=%d in %s",
		e.width, e.height, b.XMin, b.XMax, b.YMin, b.YMax, e.view.Iterations, e.grid.Max, elapsed)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
