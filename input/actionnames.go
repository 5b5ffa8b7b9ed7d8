package input

import (
	"maps"
	"slices"
)

// actionRegistry maps config action names to key entries
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":            {IntentType: IntentQuit},
	"reset":           {IntentType: IntentReset},
	"iterations_up":   {IntentType: IntentIterationsUp},
	"iterations_down": {IntentType: IntentIterationsDown},
	"show_coords":     {IntentType: IntentShowCoords},
	"show_stats":      {IntentType: IntentShowStats},
	"palette_next":    {IntentType: IntentPaletteNext},

	"pan_left":  {IntentType: IntentPanLeft},
	"pan_right": {IntentType: IntentPanRight},
	"pan_up":    {IntentType: IntentPanUp},
	"pan_down":  {IntentType: IntentPanDown},
	"zoom_in":   {IntentType: IntentZoomIn},
	"zoom_out":  {IntentType: IntentZoomOut},

	"landmark_1": {IntentType: IntentLandmark, Index: 0},
	"landmark_2": {IntentType: IntentLandmark, Index: 1},
	"landmark_3": {IntentType: IntentLandmark, Index: 2},
	"landmark_4": {IntentType: IntentLandmark, Index: 3},
	"landmark_5": {IntentType: IntentLandmark, Index: 4},
	"landmark_6": {IntentType: IntentLandmark, Index: 5},
}

// ActionEntry resolves a config action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	return slices.Sorted(maps.Keys(actionRegistry))
}
