package domain

import (
	"fmt"

	m "github.com/mouse-blink/fretviz/internal/model"
)

// DefaultState is the state a fresh session starts from: the first preset
// with a tuning, the first chord and scale, root C, interval labels.
func DefaultState(c Catalog) m.State {
	state := m.State{
		Preset: m.CustomPreset,
		Tuning: m.Tuning{4, 9, 2, 7, 11, 4},
		Mode:   m.ModeChord,
		Root:   0,
		Labels: m.LabelInterval,
		Frets:  m.DefaultFrets,
	}

	for _, p := range c.Presets() {
		if !p.UserDefined() {
			state.Preset = p.ID
			state.Tuning = p.Tuning
			break
		}
	}

	if chords := c.Chords(); len(chords) > 0 {
		state.Chord = chords[0].ID
	}

	if scales := c.Scales(); len(scales) > 0 {
		state.Scale = scales[0].ID
	}

	return state
}

// Render resolves state against the catalog and computes the diagram. It has
// no side effects; call it after every state transition.
func Render(state m.State, c Catalog) (m.Diagram, error) {
	def, err := activeDefinition(state, c)
	if err != nil {
		return m.Diagram{}, err
	}

	structure, err := def.Structure()
	if err != nil {
		return m.Diagram{}, fmt.Errorf("%s: %w", def.Name, err)
	}

	if _, err := m.ParseLabelMode(string(state.Labels)); err != nil {
		return m.Diagram{}, err
	}

	grid, err := CalcPositions(state.Tuning, state.Frets, state.Root, structure)
	if err != nil {
		return m.Diagram{}, err
	}

	return m.Diagram{
		Title:      fmt.Sprintf("%s %s", m.NameOf(state.Root), def.Name),
		Tuning:     state.Tuning.Clone(),
		Root:       state.Root,
		Definition: def,
		Mode:       state.Mode,
		Labels:     state.Labels,
		Grid:       grid,
	}, nil
}

func activeDefinition(state m.State, c Catalog) (m.Definition, error) {
	switch state.Mode {
	case m.ModeChord:
		return c.Chord(state.Chord)
	case m.ModeScale:
		return c.Scale(state.Scale)
	default:
		return m.Definition{}, fmt.Errorf("%w: display mode %q", m.ErrInvalidMode, state.Mode)
	}
}
