package explorer

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/mandelbrots-in-heaven/audio"
	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/input"
	"github.com/lixenwraith/mandelbrots-in-heaven/palette"
	"github.com/lixenwraith/mandelbrots-in-heaven/render"
	"github.com/lixenwraith/mandelbrots-in-heaven/status"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
	"github.com/lixenwraith/mandelbrots-in-heaven/viewport"
)

// scriptTerm replays queued events and reports EventClosed once drained
type scriptTerm struct {
	mu      sync.Mutex
	width   int
	height  int
	events  []terminal.Event
	flushes int
	title   string
	last    []terminal.Cell
}

func newScriptTerm(w, h int, events ...terminal.Event) *scriptTerm {
	return &scriptTerm{width: w, height: h, events: events}
}

func (s *scriptTerm) Init() error { return nil }
func (s *scriptTerm) Fini() {}
func (s *scriptTerm) Size() (int, int) { return s.width, s.height }
func (s *scriptTerm) ColorMode() terminal.ColorMode { return terminal.ColorModeTrueColor }
func (s *scriptTerm) SetMouseMode(terminal.MouseMode) error { return nil }

func (s *scriptTerm) SetTitle(title string) {
	s.mu.Lock()
	s.title = title
	s.mu.Unlock()
}

func (s *scriptTerm) Flush(cells []terminal.Cell, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	s.last = append(s.last[:0], cells...)
}

func (s *scriptTerm) PollEvent() terminal.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *scriptTerm) PostEvent(ev terminal.Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *scriptTerm) flushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

type cueRecorder struct {
	cues []audio.Cue
}

func (c *cueRecorder) Play(cue audio.Cue) { c.cues = append(c.cues, cue) }

func (c *cueRecorder) last() (audio.Cue, bool) {
	if len(c.cues) == 0 {
		return 0, false
	}
	return c.cues[len(c.cues)-1], true
}

func keyEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func newTestExplorer(t *testing.T, w, h int) (*Explorer, *scriptTerm, *cueRecorder) {
	t.Helper()
	term := newScriptTerm(w, h)
	cues := &cueRecorder{}
	return New(term, Options{Cues: cues}), term, cues
}

// rowText reads the runes of one buffer row
func rowText(b *render.Buffer, y int) string {
	w, _ := b.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(b.Cell(x, y).Rune)
	}
	return sb.String()
}

func TestNewDefaults(t *testing.T) {
	e, _, _ := newTestExplorer(t, 80, 24)

	if e.View() != DefaultView {
		t.Errorf("View = %+v, want %+v", e.View(), DefaultView)
	}
	if !e.Dirty() {
		t.Error("startup frame not dirty")
	}
	if !e.Overlays().Has(OverlayHelp) {
		t.Errorf("startup overlays = %s, want help", e.Overlays())
	}
	if e.ZoomFactor() != 0.25 {
		t.Errorf("ZoomFactor = %v, want 0.25", e.ZoomFactor())
	}
	if e.Palette().Name != palette.Heaven.Name {
		t.Errorf("Palette = %s, want %s", e.Palette().Name, palette.Heaven.Name)
	}
	if w, h := e.Size(); w != 80 || h != 24 {
		t.Errorf("Size = %dx%d", w, h)
	}
}

func TestOptionsOutOfRangeFallBack(t *testing.T) {
	e := New(newScriptTerm(10, 10), Options{ZoomFactor: 1.5, PanFraction: -1, Palette: "missing"})
	if e.opts.ZoomFactor != 0.25 || e.opts.PanFraction != 0.25 {
		t.Errorf("zoom/pan = %v/%v, want defaults", e.opts.ZoomFactor, e.opts.PanFraction)
	}
	if e.Palette().Name == "" {
		t.Error("unknown palette name left no palette selected")
	}
}

func TestStartupRedrawShowsHelp(t *testing.T) {
	e, term, _ := newTestExplorer(t, 80, 24)
	e.Redraw()

	if e.Dirty() {
		t.Error("dirty after redraw")
	}
	if e.Overlays() != OverlayNone {
		t.Errorf("overlays = %s after redraw, want none", e.Overlays())
	}
	if term.flushCount() != 1 {
		t.Errorf("flushes = %d, want 1", term.flushCount())
	}
	if got := rowText(e.Buffer(), 0); !strings.HasPrefix(got, render.Rule) {
		t.Errorf("row 0 = %q, want rule", got)
	}
	if got := rowText(e.Buffer(), 1); !strings.Contains(got, Title) {
		t.Errorf("row 1 = %q, want title", got)
	}
	if g := e.Grid(); g.Width != 80 || g.Height != 24 {
		t.Errorf("grid = %dx%d", g.Width, g.Height)
	}
}

func TestClickZoomIn(t *testing.T) {
	e, _, cues := newTestExplorer(t, 80, 40)
	e.bounds = viewport.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	start := e.View().Size

	if quit := e.Apply(&input.Intent{Type: input.IntentClickZoomIn, Row: 20, Col: 40}); quit {
		t.Fatal("click reported quit")
	}
	v := e.View()
	if v.Origin != (fractal.Point{Re: 0, Im: 0}) {
		t.Errorf("origin = %+v, want (0,0)", v.Origin)
	}
	if v.Size != start.Scale(0.25) {
		t.Errorf("size = %+v, want %+v", v.Size, start.Scale(0.25))
	}
	if c, _ := cues.last(); c != audio.CueZoomIn {
		t.Errorf("cue = %v, want zoom in", c)
	}
	if !e.Dirty() {
		t.Error("click zoom did not mark dirty")
	}
}

func TestClickZoomOut(t *testing.T) {
	e, _, cues := newTestExplorer(t, 80, 40)
	e.bounds = viewport.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

	e.Apply(&input.Intent{Type: input.IntentClickZoomOut, Row: 0, Col: 0})
	v := e.View()
	if v.Origin != (fractal.Point{Re: -1, Im: -1}) {
		t.Errorf("origin = %+v, want (-1,-1)", v.Origin)
	}
	if v.Size != (viewport.Extent{X: 12, Y: 12}) {
		t.Errorf("size = %+v, want 12x12", v.Size)
	}
	if c, _ := cues.last(); c != audio.CueZoomOut {
		t.Errorf("cue = %v, want zoom out", c)
	}
}

func TestClickOtherMovesOriginWithoutRedraw(t *testing.T) {
	e, term, _ := newTestExplorer(t, 80, 40)
	e.Redraw()
	e.bounds = viewport.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	redraws := e.Stats().Ints.Get(status.KeyRedraws).Load()

	e.Apply(&input.Intent{Type: input.IntentClickOther, Row: 10, Col: 60})
	if e.Dirty() {
		t.Error("middle click marked dirty")
	}
	if want := (fractal.Point{Re: 0.5, Im: -0.5}); e.View().Origin != want {
		t.Errorf("origin = %+v, want %+v", e.View().Origin, want)
	}

	e.Redraw()
	if term.flushCount() != 2 {
		t.Errorf("flushes = %d, want 2", term.flushCount())
	}
	if got := e.Stats().Ints.Get(status.KeyRedraws).Load(); got != redraws {
		t.Errorf("redraws = %d, want %d (help only)", got, redraws)
	}
}

func TestHelpDrawsOverCurrentFrame(t *testing.T) {
	e, term, _ := newTestExplorer(t, 80, 24)
	e.Redraw()
	e.Apply(&input.Intent{Type: input.IntentShowCoords})
	e.Redraw()
	if got := rowText(e.Buffer(), 1); !strings.HasPrefix(got, " Origin X: ") {
		t.Fatalf("row 1 = %q, want coords", got)
	}

	e.Apply(&input.Intent{Type: input.IntentHelp})
	if e.Dirty() {
		t.Fatal("help marked dirty")
	}
	e.Redraw()
	if got := rowText(e.Buffer(), 1); !strings.Contains(got, Title) {
		t.Errorf("row 1 = %q, want help title", got)
	}
	if term.flushCount() != 3 {
		t.Errorf("flushes = %d, want 3", term.flushCount())
	}

	// Nothing pending: no flush
	e.Redraw()
	if term.flushCount() != 3 {
		t.Errorf("idle redraw flushed")
	}
}

func TestOverlayPrecedence(t *testing.T) {
	e, _, _ := newTestExplorer(t, 80, 24)
	e.Redraw()

	e.Apply(&input.Intent{Type: input.IntentShowCoords})
	e.Apply(&input.Intent{Type: input.IntentIterationsUp})
	e.Redraw()
	if got := rowText(e.Buffer(), 1); !strings.HasPrefix(got, " Iterations: 60") {
		t.Errorf("row 1 = %q, want iterations panel", got)
	}
	if !e.Overlays().Has(OverlayCoords) {
		t.Fatalf("coords request dropped, overlays = %s", e.Overlays())
	}

	e.Apply(&input.Intent{Type: input.IntentPanLeft})
	e.Redraw()
	if got := rowText(e.Buffer(), 1); !strings.HasPrefix(got, " Origin X: ") {
		t.Errorf("row 1 = %q, want coords panel", got)
	}
	if e.Overlays() != OverlayNone {
		t.Errorf("overlays = %s, want none", e.Overlays())
	}
}

func TestStatsOverlay(t *testing.T) {
	e, _, _ := newTestExplorer(t, 20, 10)
	e.Redraw()
	e.Apply(&input.Intent{Type: input.IntentShowStats})
	e.Redraw()

	reg := e.Stats()
	if got := reg.Ints.Get(status.KeyRedraws).Load(); got != 2 {
		t.Errorf("redraws = %d, want 2", got)
	}
	if got := reg.Ints.Get(status.KeyCells).Load(); got != 200 {
		t.Errorf("cells = %d, want 200", got)
	}
	if got := reg.Strings.Get(status.KeyPalette).Load(); got != palette.Heaven.Name {
		t.Errorf("palette stat = %q", got)
	}
	if got := rowText(e.Buffer(), 1); !strings.HasPrefix(got, " bounded: ") {
		t.Errorf("row 1 = %q, want first stats line", got)
	}
}

func TestIterationLimitsCue(t *testing.T) {
	e, _, cues := newTestExplorer(t, 10, 10)

	e.view.Iterations = 1
	e.Apply(&input.Intent{Type: input.IntentIterationsDown})
	if e.View().Iterations != 1 {
		t.Errorf("iterations = %d, want 1", e.View().Iterations)
	}
	if c, ok := cues.last(); !ok || c != audio.CueLimit {
		t.Errorf("floor cue = %v (%v), want limit", c, ok)
	}

	e.view.Iterations = fractal.MaxIterations
	e.Apply(&input.Intent{Type: input.IntentIterationsUp})
	if e.View().Iterations != fractal.MaxIterations {
		t.Errorf("iterations = %d, want cap", e.View().Iterations)
	}
	if len(cues.cues) != 2 {
		t.Errorf("cues = %v, want two limit cues", cues.cues)
	}

	e.view.Iterations = 50
	e.Apply(&input.Intent{Type: input.IntentIterationsUp})
	if len(cues.cues) != 2 {
		t.Errorf("normal step played a cue")
	}
	if !e.Overlays().Has(OverlayIterations) || !e.Dirty() {
		t.Errorf("overlays = %s dirty = %v", e.Overlays(), e.Dirty())
	}
}

func TestResetRestoresHome(t *testing.T) {
	e, _, _ := newTestExplorer(t, 80, 24)
	e.bounds = viewport.Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	e.Apply(&input.Intent{Type: input.IntentClickZoomIn, Row: 3, Col: 7})
	e.Apply(&input.Intent{Type: input.IntentIterationsUp})
	e.Redraw()

	e.Apply(&input.Intent{Type: input.IntentReset})
	if e.View() != DefaultView {
		t.Errorf("View = %+v, want home", e.View())
	}
	if !e.Dirty() {
		t.Error("reset did not mark dirty")
	}
}

func TestPan(t *testing.T) {
	tests := []struct {
		name   string
		intent input.IntentType
		want   fractal.Point
	}{
		{"left", input.IntentPanLeft, fractal.Point{Re: -1.5, Im: 0}},
		{"right", input.IntentPanRight, fractal.Point{Re: 0, Im: 0}},
		{"up", input.IntentPanUp, fractal.Point{Re: -0.75, Im: -0.75}},
		{"down", input.IntentPanDown, fractal.Point{Re: -0.75, Im: 0.75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestExplorer(t, 80, 24)
			e.Apply(&input.Intent{Type: tt.intent})
			if got := e.View().Origin; got != tt.want {
				t.Errorf("origin = %+v, want %+v", got, tt.want)
			}
			if e.View().Size != DefaultView.Size {
				t.Errorf("pan changed size to %+v", e.View().Size)
			}
			if !e.Dirty() {
				t.Error("pan did not mark dirty")
			}
		})
	}
}

func TestKeyZoomKeepsOrigin(t *testing.T) {
	e, _, cues := newTestExplorer(t, 80, 24)
	e.Apply(&input.Intent{Type: input.IntentZoomIn})
	if e.View().Origin != DefaultView.Origin {
		t.Errorf("origin moved to %+v", e.View().Origin)
	}
	if e.View().Size != (viewport.Extent{X: 0.75, Y: 0.75}) {
		t.Errorf("size = %+v", e.View().Size)
	}
	e.Apply(&input.Intent{Type: input.IntentZoomOut})
	if e.View().Size != DefaultView.Size {
		t.Errorf("size after in+out = %+v", e.View().Size)
	}
	if len(cues.cues) != 2 || cues.cues[0] != audio.CueZoomIn || cues.cues[1] != audio.CueZoomOut {
		t.Errorf("cues = %v", cues.cues)
	}
}

func TestLandmark(t *testing.T) {
	e, _, _ := newTestExplorer(t, 80, 24)
	e.Redraw()

	e.Apply(&input.Intent{Type: input.IntentLandmark, Index: 2})
	r, _ := viewport.Landmark(2)
	if e.View().Origin != r.Origin() || e.View().Size != r.Size() {
		t.Errorf("view = %+v, want region %s", e.View(), r.Name)
	}
	if !e.Overlays().Has(OverlayCoords) || !e.Dirty() {
		t.Errorf("overlays = %s dirty = %v", e.Overlays(), e.Dirty())
	}

	e.Redraw()
	before := e.View()
	e.Apply(&input.Intent{Type: input.IntentLandmark, Index: 99})
	if e.View() != before || e.Dirty() {
		t.Error("out of range landmark changed the view")
	}
	if !e.helpNow {
		t.Error("out of range landmark did not request help")
	}
}

func TestPaletteNext(t *testing.T) {
	e, _, _ := newTestExplorer(t, 10, 10)
	first := e.Palette().Name
	e.Apply(&input.Intent{Type: input.IntentPaletteNext})
	if e.Palette().Name == first {
		t.Errorf("palette still %s", first)
	}
	if !e.Dirty() {
		t.Error("palette change did not mark dirty")
	}
}

func TestResize(t *testing.T) {
	e, _, _ := newTestExplorer(t, 80, 24)
	e.Redraw()

	e.Apply(&input.Intent{Type: input.IntentResize, Width: 100, Height: 30})
	if w, h := e.Size(); w != 100 || h != 30 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	if !e.Overlays().Has(OverlayHelp) || !e.Dirty() {
		t.Errorf("overlays = %s dirty = %v", e.Overlays(), e.Dirty())
	}
	e.Redraw()
	if w, h := e.Buffer().Size(); w != 100 || h != 30 {
		t.Errorf("buffer = %dx%d", w, h)
	}
	if g := e.Grid(); len(g.Values) != 3000 {
		t.Errorf("grid cells = %d, want 3000", len(g.Values))
	}
}

func TestQuit(t *testing.T) {
	e, _, _ := newTestExplorer(t, 10, 10)
	if !e.Apply(&input.Intent{Type: input.IntentQuit}) {
		t.Error("quit intent did not report quit")
	}
}

func TestRunScript(t *testing.T) {
	term := newScriptTerm(40, 12,
		keyEvent('i'),
		keyEvent('x'),
		terminal.Event{Type: terminal.EventMouse, MouseBtn: terminal.MouseBtnLeft, MouseAction: terminal.MouseActionRelease},
		keyEvent('q'),
		keyEvent('i'),
	)
	e := New(term, Options{})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.View().Iterations != 60 {
		t.Errorf("iterations = %d, want 60", e.View().Iterations)
	}
	// Startup, 'i' and the help for 'x'
	if term.flushCount() != 3 {
		t.Errorf("flushes = %d, want 3", term.flushCount())
	}
	if term.title != Title {
		t.Errorf("title = %q", term.title)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	term := &blockingTerm{scriptTerm: newScriptTerm(10, 5), posted: make(chan terminal.Event, 1)}
	e := New(term, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

// blockingTerm only returns posted events
type blockingTerm struct {
	*scriptTerm
	posted chan terminal.Event
}

func (b *blockingTerm) PollEvent() terminal.Event { return <-b.posted }
func (b *blockingTerm) PostEvent(ev terminal.Event) { b.posted <- ev }
