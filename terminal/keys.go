package terminal

import "strings"

// Key represents a decoded input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlZ
)

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlC: "ctrl_c",
	KeyCtrlD: "ctrl_d",
	KeyCtrlL: "ctrl_l",
	KeyCtrlQ: "ctrl_q",
	KeyCtrlR: "ctrl_r",
	KeyCtrlZ: "ctrl_z",
}

// nameToKey is the reverse of keyToName, built at init
var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName))
	for k, n := range keyToName {
		m[n] = k
	}
	return m
}()

// KeyByName resolves a config key name such as "page_up" or "ctrl_c"
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// String returns the config name of the key
func (k Key) String() string {
	if n, ok := keyToName[k]; ok {
		return n
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}
