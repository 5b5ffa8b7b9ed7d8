// Package audio plays short synthesized cues for view changes
package audio

// Cue identifies one audible event
type Cue uint8

const (
	CueZoomIn  Cue = iota // Rising chirp
	CueZoomOut            // Falling chirp
	CueLimit              // Low buzz at the iteration floor or cap
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueZoomIn:
		return "zoom_in"
	case CueZoomOut:
		return "zoom_out"
	case CueLimit:
		return "limit"
	}
	return "unknown"
}
