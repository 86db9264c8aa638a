package model

import (
	"fmt"
	"strings"
)

// Tuning lists the open pitch of every string. Presets are written from the
// lowest string to the highest, so the last entry is the 1st string.
type Tuning []PitchClass

// ParseTuning reads a comma or whitespace separated list of note names,
// e.g. "E,A,D,G,B,E" or "D A D G B E".
func ParseTuning(spec string) (Tuning, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, ErrEmptyTuning
	}

	tuning := make(Tuning, 0, len(fields))

	for i, field := range fields {
		pc, err := IndexOf(field)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i+1, err)
		}

		tuning = append(tuning, pc)
	}

	return tuning, nil
}

// Validate checks that the tuning has strings and every pitch is in range.
func (t Tuning) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTuning
	}

	for i, pc := range t {
		if !pc.Valid() {
			return fmt.Errorf("string %d pitch %d: %w", i+1, int(pc), ErrInvalidNoteName)
		}
	}

	return nil
}

// Names returns the canonical note name of every string.
func (t Tuning) Names() []string {
	names := make([]string, len(t))
	for i, pc := range t {
		names[i] = NameOf(pc)
	}

	return names
}

// Clone returns a copy that can be edited without touching t.
func (t Tuning) Clone() Tuning {
	if t == nil {
		return nil
	}

	out := make(Tuning, len(t))
	copy(out, t)

	return out
}

// Equal reports whether both tunings have the same strings in the same order.
func (t Tuning) Equal(other Tuning) bool {
	if len(t) != len(other) {
		return false
	}

	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}

	return true
}

func (t Tuning) String() string {
	return strings.Join(t.Names(), " ")
}
