package controller

import (
	"errors"

	m "github.com/mouse-blink/fretviz/internal/model"
)

var errFake = errors.New("fake failure")

// fakeSession records the mutations a model asks for.
type fakeSession struct {
	state   m.State
	diagram m.Diagram
	calls   []string
	fail    bool
}

func newFakeSession() *fakeSession {
	grid := m.NewGrid(6, 5)
	grid.Set(5, 0, 4) // open high E over a C root
	grid.Set(1, 3, 0) // C on the A string

	tuning := m.Tuning{4, 9, 2, 7, 11, 4}

	return &fakeSession{
		state: m.State{
			Preset: "standard",
			Tuning: tuning,
			Mode:   m.ModeChord,
			Chord:  "major",
			Labels: m.LabelInterval,
			Frets:  5,
		},
		diagram: m.Diagram{
			Title:      "C メジャー",
			Tuning:     tuning,
			Definition: m.Definition{ID: "major", Name: "メジャー", Offsets: []int{0, 4, 7}},
			Mode:       m.ModeChord,
			Labels:     m.LabelInterval,
			Grid:       grid,
		},
	}
}

func (f *fakeSession) record(call string) error {
	f.calls = append(f.calls, call)
	if f.fail {
		return errFake
	}

	return nil
}

func (f *fakeSession) Diagram() m.Diagram { return f.diagram }
func (f *fakeSession) State() m.State     { return f.state.Clone() }
func (f *fakeSession) PresetName() string { return "Standard (6弦)" }

func (f *fakeSession) CycleRoot(delta int) error {
	if delta > 0 {
		return f.record("root+")
	}

	return f.record("root-")
}

func (f *fakeSession) CycleStructure(delta int) error {
	if delta > 0 {
		return f.record("structure+")
	}

	return f.record("structure-")
}

func (f *fakeSession) CyclePreset(delta int) error {
	if delta > 0 {
		return f.record("preset+")
	}

	return f.record("preset-")
}

func (f *fakeSession) CycleStringNote(idx, delta int) error {
	if delta > 0 {
		return f.record("note+")
	}

	return f.record("note-")
}

func (f *fakeSession) CycleStringCount(_ int) error {
	if err := f.record("strings"); err != nil {
		return err
	}

	f.state.Tuning = m.Tuning{4, 4, 4, 4, 4, 4, 4}

	return nil
}

func (f *fakeSession) ToggleMode() error   { return f.record("mode") }
func (f *fakeSession) ToggleLabels() error { return f.record("labels") }

func (f *fakeSession) SetFrets(n int) error {
	if err := f.record("frets"); err != nil {
		return err
	}

	f.state.Frets = n

	return nil
}
