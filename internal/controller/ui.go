// Package controller provides the user interfaces that draw fretboard diagrams.
package controller

import (
	m "github.com/mouse-blink/fretviz/internal/model"
)

// Table names accepted by DisplayCatalog.
const (
	TableChords  = "chords"
	TableScales  = "scales"
	TablePresets = "presets"
)

// Listing is a snapshot of the theory tables to print. Table restricts the
// output to one table; empty means all of them.
type Listing struct {
	Table   string
	Chords  []m.Definition
	Scales  []m.Definition
	Presets []m.Preset
}

// Includes reports whether the named table should be shown.
func (l Listing) Includes(table string) bool {
	return l.Table == "" || l.Table == table
}

// Session is the interaction state driven by an interactive UI. Each method
// mutates one field and recomputes the diagram.
type Session interface {
	Diagram() m.Diagram
	State() m.State
	PresetName() string
	CycleRoot(delta int) error
	CycleStructure(delta int) error
	CyclePreset(delta int) error
	CycleStringNote(idx, delta int) error
	CycleStringCount(delta int) error
	ToggleMode() error
	ToggleLabels() error
	SetFrets(n int) error
}

// UI defines the interface for presenting diagrams and tables.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDiagram(d m.Diagram) error
	DisplayCatalog(l Listing) error
	DisplayExport(files []m.Path, err error) error
	Interact(s Session) error
}
