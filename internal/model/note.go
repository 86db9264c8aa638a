// Package model defines the data structures shared by the fretboard workflow.
package model

import (
	"fmt"
	"strings"
)

// PitchClass is one of the 12 equal-tempered note identities, counted in
// semitones from C.
type PitchClass int

// PitchClasses is the number of pitch classes in an octave.
const PitchClasses = 12

// NoteNames holds the canonical name of every pitch class. Index is the
// semitone distance from C.
var NoteNames = [PitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// IntervalLabels holds the short label for each semitone offset from a root.
// Sharps-default spelling: offset 8 is "#5", offset 6 is "b5".
var IntervalLabels = [PitchClasses]string{"R", "b2", "2", "b3", "3", "4", "b5", "5", "#5", "6", "b7", "7"}

// Valid reports whether p is in [0,11].
func (p PitchClass) Valid() bool {
	return p >= 0 && p < PitchClasses
}

// Transpose moves p by n semitones and wraps the result into [0,11].
func (p PitchClass) Transpose(n int) PitchClass {
	return PitchClass(mod12(int(p) + n))
}

// String returns the canonical note name.
func (p PitchClass) String() string {
	return NameOf(p)
}

// NameOf returns the canonical name of p. Values outside [0,11] are reduced
// mod 12 first.
func NameOf(p PitchClass) string {
	return NoteNames[mod12(int(p))]
}

// IndexOf returns the pitch class named by name. Matching ignores case and
// surrounding whitespace; anything other than the 12 canonical names is
// rejected.
func IndexOf(name string) (PitchClass, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range NoteNames {
		if strings.EqualFold(n, trimmed) {
			return PitchClass(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
}

// IntervalLabel returns the label for a semitone offset from the root.
func IntervalLabel(offset int) string {
	return IntervalLabels[mod12(offset)]
}

func mod12(n int) int {
	return ((n % PitchClasses) + PitchClasses) % PitchClasses
}
