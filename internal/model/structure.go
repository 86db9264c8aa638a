package model

import "fmt"

// Structure is the set of semitone offsets from a root that make up a chord
// or scale. The zero value is the empty set.
type Structure struct {
	bits uint16
}

// NewStructure builds a Structure from offsets. Every offset must lie in
// [0,11]; duplicates collapse.
func NewStructure(offsets ...int) (Structure, error) {
	var s Structure

	for _, off := range offsets {
		if off < 0 || off >= PitchClasses {
			return Structure{}, fmt.Errorf("%w: %d", ErrInvalidOffset, off)
		}

		s.bits |= 1 << uint(off)
	}

	return s, nil
}

// Contains reports whether offset is a member.
func (s Structure) Contains(offset int) bool {
	if offset < 0 || offset >= PitchClasses {
		return false
	}

	return s.bits&(1<<uint(offset)) != 0
}

// Offsets returns the members in ascending order.
func (s Structure) Offsets() []int {
	out := make([]int, 0, s.Len())

	for off := range PitchClasses {
		if s.Contains(off) {
			out = append(out, off)
		}
	}

	return out
}

// Len returns the number of members.
func (s Structure) Len() int {
	n := 0

	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}

	return n
}

// Empty reports whether the set has no members.
func (s Structure) Empty() bool {
	return s.bits == 0
}
