package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // q, Ctrl+C, input closed
	IntentResize // Terminal resize event
	IntentHelp   // Any key without a binding

	// View
	IntentReset          // r
	IntentIterationsUp   // i
	IntentIterationsDown // j
	IntentPaletteNext    // p
	IntentLandmark       // 1-6, Index selects the region

	// Overlays
	IntentShowCoords // c
	IntentShowStats  // s

	// Keyboard navigation
	IntentPanLeft
	IntentPanRight
	IntentPanUp
	IntentPanDown
	IntentZoomIn  // +, =
	IntentZoomOut // -

	// Mouse
	IntentClickZoomIn  // Primary button press at Row, Col
	IntentClickZoomOut // Secondary button press at Row, Col
	IntentClickOther   // Any other button press at Row, Col
)

var intentNames = map[IntentType]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentResize:         "resize",
	IntentHelp:           "help",
	IntentReset:          "reset",
	IntentIterationsUp:   "iterations_up",
	IntentIterationsDown: "iterations_down",
	IntentPaletteNext:    "palette_next",
	IntentLandmark:       "landmark",
	IntentShowCoords:     "show_coords",
	IntentShowStats:      "show_stats",
	IntentPanLeft:        "pan_left",
	IntentPanRight:       "pan_right",
	IntentPanUp:          "pan_up",
	IntentPanDown:        "pan_down",
	IntentZoomIn:         "zoom_in",
	IntentZoomOut:        "zoom_out",
	IntentClickZoomIn:    "click_zoom_in",
	IntentClickZoomOut:   "click_zoom_out",
	IntentClickOther:     "click_other",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or explorer dependencies
type Intent struct {
	Type   IntentType
	Row    int // Mouse cell row, 0-indexed from top
	Col    int // Mouse cell column, 0-indexed from left
	Width  int // For IntentResize
	Height int // For IntentResize
	Index  int // For IntentLandmark, 0-based
}
