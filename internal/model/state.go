package model

import "fmt"

// DisplayMode selects whether the chord or the scale table is active.
type DisplayMode string

const (
	// ModeChord shows the selected chord.
	ModeChord DisplayMode = "chord"
	// ModeScale shows the selected scale.
	ModeScale DisplayMode = "scale"
)

// LabelMode selects how member positions are labelled.
type LabelMode string

const (
	// LabelInterval labels positions with their interval from the root.
	LabelInterval LabelMode = "interval"
	// LabelNote labels positions with their note name.
	LabelNote LabelMode = "note"
)

// DefaultFrets is the number of frets shown, open string included.
const DefaultFrets = 15

// MaxFrets bounds the fret count accepted anywhere a grid is built.
const MaxFrets = 36

// ValidFrets reports whether n frets can be drawn.
func ValidFrets(n int) bool {
	return n >= 1 && n <= MaxFrets
}

// CustomPreset is the ID of the user-defined tuning sentinel.
const CustomPreset = "custom"

// StringCounts lists the string counts offered for a user-defined tuning.
var StringCounts = []int{6, 7, 8}

// ParseDisplayMode validates a display mode name.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case ModeChord, ModeScale:
		return DisplayMode(s), nil
	default:
		return "", fmt.Errorf("%w: display mode %q", ErrInvalidMode, s)
	}
}

// ParseLabelMode validates a label mode name.
func ParseLabelMode(s string) (LabelMode, error) {
	switch LabelMode(s) {
	case LabelInterval, LabelNote:
		return LabelMode(s), nil
	default:
		return "", fmt.Errorf("%w: label mode %q", ErrInvalidMode, s)
	}
}

// State is everything the user can change during a session.
type State struct {
	Preset string
	Tuning Tuning
	Mode   DisplayMode
	Chord  string
	Scale  string
	Root   PitchClass
	Labels LabelMode
	Frets  int
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.Tuning = s.Tuning.Clone()
	return s
}
