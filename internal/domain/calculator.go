package domain

import (
	"fmt"

	m "github.com/mouse-blink/fretviz/internal/model"
)

// CalcPositions maps every (string, fret) position in [0, numFrets) to its
// offset from root and keeps the ones that belong to structure.
//
// String s with open pitch base sounds (base+f) mod 12 at fret f; that note's
// offset from root is (note-root) mod 12, always non-negative.
func CalcPositions(tuning m.Tuning, numFrets int, root m.PitchClass, structure m.Structure) (m.Grid, error) {
	if !m.ValidFrets(numFrets) {
		return m.Grid{}, fmt.Errorf("%w: %d", m.ErrInvalidFretCount, numFrets)
	}

	if err := tuning.Validate(); err != nil {
		return m.Grid{}, err
	}

	if !root.Valid() {
		return m.Grid{}, fmt.Errorf("root %d: %w", int(root), m.ErrInvalidNoteName)
	}

	grid := m.NewGrid(len(tuning), numFrets)

	for s, base := range tuning {
		for f := range numFrets {
			note := base.Transpose(f)
			offset := int(note.Transpose(-int(root)))

			if structure.Contains(offset) {
				grid.Set(s, f, offset)
			}
		}
	}

	return grid, nil
}
