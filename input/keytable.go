package input

import (
	"maps"

	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// KeyEntry is the action bound to one key
// The zero value (IntentNone) marks an unbinding in override tables
type KeyEntry struct {
	IntentType IntentType
	Index      int
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable characters
	Runes map[rune]KeyEntry

	// Named keys (arrows, Ctrl+*, function keys)
	Keys map[terminal.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'r': {IntentType: IntentReset},
			'i': {IntentType: IntentIterationsUp},
			'j': {IntentType: IntentIterationsDown},
			'c': {IntentType: IntentShowCoords},
			's': {IntentType: IntentShowStats},
			'p': {IntentType: IntentPaletteNext},
			'+': {IntentType: IntentZoomIn},
			'=': {IntentType: IntentZoomIn},
			'-': {IntentType: IntentZoomOut},
			'1': {IntentType: IntentLandmark, Index: 0},
			'2': {IntentType: IntentLandmark, Index: 1},
			'3': {IntentType: IntentLandmark, Index: 2},
			'4': {IntentType: IntentLandmark, Index: 3},
			'5': {IntentType: IntentLandmark, Index: 4},
			'6': {IntentType: IntentLandmark, Index: 5},
		},

		Keys: map[terminal.Key]KeyEntry{
			terminal.KeyCtrlC: {IntentType: IntentQuit},
			terminal.KeyLeft:  {IntentType: IntentPanLeft},
			terminal.KeyRight: {IntentType: IntentPanRight},
			terminal.KeyUp:    {IntentType: IntentPanUp},
			terminal.KeyDown:  {IntentType: IntentPanDown},
		},
	}
}

// Lookup returns the binding for a key event
func (kt *KeyTable) Lookup(ev terminal.Event) (KeyEntry, bool) {
	if ev.Key == terminal.KeyRune {
		e, ok := kt.Runes[ev.Rune]
		return e, ok
	}
	e, ok := kt.Keys[ev.Key]
	return e, ok
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]KeyEntry, len(kt.Runes)),
		Keys:  make(map[terminal.Key]KeyEntry, len(kt.Keys)),
	}
	maps.Copy(c.Runes, kt.Runes)
	maps.Copy(c.Keys, kt.Keys)
	return c
}
