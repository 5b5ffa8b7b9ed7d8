package input

import (
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// Machine parses terminal.Event into semantic Intent
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates an input machine; nil selects the default bindings
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no effect: read errors, releases, drags, wheel
func (m *Machine) Process(ev terminal.Event) *Intent {
	switch ev.Type {
	case terminal.EventResize:
		return &Intent{Type: IntentResize, Width: ev.Width, Height: ev.Height}
	case terminal.EventKey:
		return m.processKey(ev)
	case terminal.EventMouse:
		return m.processMouse(ev)
	case terminal.EventClosed:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev terminal.Event) *Intent {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok || entry.IntentType == IntentNone {
		return &Intent{Type: IntentHelp}
	}
	return &Intent{Type: entry.IntentType, Index: entry.Index}
}

func (m *Machine) processMouse(ev terminal.Event) *Intent {
	if ev.MouseAction != terminal.MouseActionPress {
		return nil
	}

	in := &Intent{Row: ev.MouseY, Col: ev.MouseX}
	switch ev.MouseBtn {
	case terminal.MouseBtnLeft:
		in.Type = IntentClickZoomIn
	case terminal.MouseBtnRight:
		in.Type = IntentClickZoomOut
	case terminal.MouseBtnMiddle:
		in.Type = IntentClickOther
	default:
		return nil
	}
	return in
}
