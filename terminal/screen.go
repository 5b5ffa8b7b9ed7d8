package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// screenTerm implements Terminal on a tcell.Screen
type screenTerm struct {
	screen     tcell.Screen
	sim        tcell.SimulationScreen
	simW, simH int
	colorMode  ColorMode
	requireTTY bool

	mu          sync.Mutex
	initialized bool
	finalized   bool

	// Buttons held at the previous mouse event, to tell presses from drags
	lastButtons tcell.ButtonMask
}

// New creates a Terminal on the controlling tty
// Without an explicit mode the color capability is detected from the environment
func New(colorMode ...ColorMode) (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return &screenTerm{screen: s, colorMode: c, requireTTY: true}, nil
}

// NewSimulation creates a Terminal on an in-memory screen of the given size
// The returned SimulationScreen lets callers inspect content and inject input
func NewSimulation(width, height int, colorMode ColorMode) (Terminal, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &screenTerm{
		screen:    sim,
		sim:       sim,
		simW:      width,
		simH:      height,
		colorMode: colorMode,
	}, sim
}

// Init enters the alternate screen, hides the cursor and clears
func (t *screenTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if t.requireTTY && !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if t.sim != nil {
		t.sim.SetSize(t.simW, t.simH)
	}

	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *screenTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.DisableMouse()
	t.screen.Fini()
	t.finalized = true
}

func (t *screenTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *screenTerm) ColorMode() ColorMode {
	return t.colorMode
}

// Flush writes every cell then shows the frame; short buffers are ignored
func (t *screenTerm) Flush(cells []Cell, width, height int) {
	if width <= 0 || height <= 0 || len(cells) < width*height {
		return
	}
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, styleFor(c, t.colorMode))
		}
	}
	t.screen.Show()
}

// PollEvent blocks until an event this package understands arrives
// A finalized screen yields EventClosed
func (t *screenTerm) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.translate(ev); ok {
			return out
		}
	}
}

// PostEvent queues a synthetic event; a full queue drops it
func (t *screenTerm) PostEvent(ev Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

func (t *screenTerm) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return errors.New("terminal not initialized")
	}
	switch mode {
	case MouseModeNone:
		t.screen.DisableMouse()
	case MouseModeClick:
		t.screen.EnableMouse(tcell.MouseButtonEvents)
	default:
		return fmt.Errorf("unsupported mouse mode %d", mode)
	}
	return nil
}

func (t *screenTerm) SetTitle(title string) {
	t.screen.SetTitle(title)
}

// translate converts a tcell event; false for events with no meaning here
func (t *screenTerm) translate(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return keyEvent(e), true

	case *tcell.EventMouse:
		return t.mouseEvent(e)

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: e}, true

	case *tcell.EventInterrupt:
		if data, ok := e.Data().(Event); ok {
			return data, true
		}
	}
	return Event{}, false
}

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

func (t *screenTerm) mouseEvent(e *tcell.EventMouse) (Event, bool) {
	x, y := e.Position()
	btns := e.Buttons()
	mods := modifiers(e.Modifiers())

	out := Event{Type: EventMouse, MouseX: x, MouseY: y, Modifiers: mods}

	switch {
	case btns&tcell.WheelUp != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelUp, MouseActionPress
		return out, true
	case btns&tcell.WheelDown != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelDown, MouseActionPress
		return out, true
	}

	held := btns & clickButtons
	prev := t.lastButtons
	t.lastButtons = held

	pressed := held &^ prev
	switch {
	case pressed != 0:
		out.MouseBtn, out.MouseAction = buttonOf(pressed), MouseActionPress
	case held == 0 && prev != 0:
		out.MouseBtn, out.MouseAction = buttonOf(prev), MouseActionRelease
	case held != 0:
		out.MouseBtn, out.MouseAction = buttonOf(held), MouseActionDrag
	default:
		// Plain motion
		return Event{}, false
	}
	return out, true
}

// buttonOf picks one button from a mask, primary first
func buttonOf(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	}
	return MouseBtnNone
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyHome:  KeyHome,
	tcell.KeyEnd:   KeyEnd,
	tcell.KeyPgUp:  KeyPageUp,
	tcell.KeyPgDn:  KeyPageDown,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,

	tcell.KeyCtrlC: KeyCtrlC,
	tcell.KeyCtrlD: KeyCtrlD,
	tcell.KeyCtrlL: KeyCtrlL,
	tcell.KeyCtrlQ: KeyCtrlQ,
	tcell.KeyCtrlR: KeyCtrlR,
	tcell.KeyCtrlZ: KeyCtrlZ,
}

func keyEvent(e *tcell.EventKey) Event {
	out := Event{Type: EventKey, Modifiers: modifiers(e.Modifiers())}
	if e.Key() == tcell.KeyRune {
		out.Key = KeyRune
		out.Rune = e.Rune()
		return out
	}
	if k, ok := tcellKeys[e.Key()]; ok {
		out.Key = k
	}
	return out
}

func modifiers(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	return out
}

// styleFor converts a cell's colors and attributes for the active color mode
func styleFor(c Cell, mode ColorMode) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(toColor(c.Fg, mode)).
		Background(toColor(c.Bg, mode))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	return st
}

func toColor(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}
