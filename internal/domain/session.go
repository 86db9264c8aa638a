package domain

import (
	"fmt"
	"slices"

	m "github.com/mouse-blink/fretviz/internal/model"
	"go.uber.org/zap"
)

// Selection describes a starting state in user terms. Empty fields keep the
// defaults.
type Selection struct {
	Preset string
	Tuning string
	Root   string
	Mode   string
	Chord  string
	Scale  string
	Labels string
	Frets  int
}

// Session owns the interaction state of one user. Every mutation replaces a
// single field and recomputes the diagram before returning; a rejected
// mutation leaves the session untouched.
type Session struct {
	catalog Catalog
	logger  *zap.Logger
	state   m.State
	diagram m.Diagram
}

// NewSession starts a session from the catalog defaults.
func NewSession(c Catalog, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	state := DefaultState(c)

	diagram, err := Render(state, c)
	if err != nil {
		return nil, fmt.Errorf("failed to render default state: %w", err)
	}

	return &Session{catalog: c, logger: logger, state: state, diagram: diagram}, nil
}

// NewSessionFrom starts a session and applies sel on top of the defaults.
func NewSessionFrom(c Catalog, sel Selection, logger *zap.Logger) (*Session, error) {
	s, err := NewSession(c, logger)
	if err != nil {
		return nil, err
	}

	if err := s.Apply(sel); err != nil {
		return nil, err
	}

	return s, nil
}

// Apply runs the mutations implied by sel in a fixed order: preset, tuning,
// root, chord, scale, mode, labels, frets. A chord or scale without an
// explicit mode switches to that mode.
func (s *Session) Apply(sel Selection) error {
	if sel.Preset != "" {
		if err := s.SelectPreset(sel.Preset); err != nil {
			return err
		}
	}

	if sel.Tuning != "" {
		tuning, err := m.ParseTuning(sel.Tuning)
		if err != nil {
			return err
		}

		if err := s.SetTuning(tuning); err != nil {
			return err
		}
	}

	if sel.Root != "" {
		root, err := m.IndexOf(sel.Root)
		if err != nil {
			return fmt.Errorf("root: %w", err)
		}

		if err := s.SetRoot(root); err != nil {
			return err
		}
	}

	if err := s.applyStructure(sel); err != nil {
		return err
	}

	if sel.Labels != "" {
		labels, err := m.ParseLabelMode(sel.Labels)
		if err != nil {
			return err
		}

		if err := s.SetLabels(labels); err != nil {
			return err
		}
	}

	if sel.Frets != 0 {
		return s.SetFrets(sel.Frets)
	}

	return nil
}

func (s *Session) applyStructure(sel Selection) error {
	if sel.Chord != "" {
		if err := s.SelectChord(sel.Chord); err != nil {
			return err
		}
	}

	if sel.Scale != "" {
		if err := s.SelectScale(sel.Scale); err != nil {
			return err
		}
	}

	if sel.Mode != "" {
		mode, err := m.ParseDisplayMode(sel.Mode)
		if err != nil {
			return err
		}

		return s.SetMode(mode)
	}

	switch {
	case sel.Chord != "":
		return s.SetMode(m.ModeChord)
	case sel.Scale != "":
		return s.SetMode(m.ModeScale)
	}

	return nil
}

// State returns a copy of the current state.
func (s *Session) State() m.State {
	return s.state.Clone()
}

// Diagram returns the diagram for the current state.
func (s *Session) Diagram() m.Diagram {
	d := s.diagram
	d.Tuning = d.Tuning.Clone()

	return d
}

// Catalog returns the tables the session resolves against.
func (s *Session) Catalog() Catalog {
	return s.catalog
}

// PresetName returns the display name of the current preset.
func (s *Session) PresetName() string {
	p, err := s.catalog.Preset(s.state.Preset)
	if err != nil {
		return s.state.Preset
	}

	return p.Name
}

// SelectPreset switches to a named tuning. The user-defined sentinel only
// changes the marker and keeps the current tuning and string count.
func (s *Session) SelectPreset(key string) error {
	preset, err := s.catalog.Preset(key)
	if err != nil {
		return err
	}

	return s.apply("preset", func(st *m.State) error {
		st.Preset = preset.ID
		if !preset.UserDefined() {
			st.Tuning = preset.Tuning.Clone()
		}

		return nil
	})
}

// SetTuning replaces the whole tuning and marks it user-defined.
func (s *Session) SetTuning(t m.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}

	return s.apply("tuning", func(st *m.State) error {
		st.Tuning = t.Clone()
		st.Preset = m.CustomPreset

		return nil
	})
}

// SetStringCount resets the tuning to n strings of E. Only the counts in
// m.StringCounts are accepted.
func (s *Session) SetStringCount(n int) error {
	if !slices.Contains(m.StringCounts, n) {
		return fmt.Errorf("%w: %d", m.ErrInvalidStringCount, n)
	}

	e, _ := m.IndexOf("E")

	tuning := make(m.Tuning, n)
	for i := range tuning {
		tuning[i] = e
	}

	return s.apply("string count", func(st *m.State) error {
		st.Tuning = tuning
		st.Preset = m.CustomPreset

		return nil
	})
}

// SetStringNote retunes a single string.
func (s *Session) SetStringNote(idx int, pc m.PitchClass) error {
	if idx < 0 || idx >= len(s.state.Tuning) {
		return fmt.Errorf("%w: %d", m.ErrStringIndex, idx)
	}

	if !pc.Valid() {
		return fmt.Errorf("pitch %d: %w", int(pc), m.ErrInvalidNoteName)
	}

	return s.apply("string note", func(st *m.State) error {
		st.Tuning[idx] = pc
		st.Preset = m.CustomPreset

		return nil
	})
}

// SetMode switches between the chord and scale tables.
func (s *Session) SetMode(mode m.DisplayMode) error {
	if _, err := m.ParseDisplayMode(string(mode)); err != nil {
		return err
	}

	return s.apply("mode", func(st *m.State) error {
		st.Mode = mode
		return nil
	})
}

// SelectChord chooses the chord shown in chord mode.
func (s *Session) SelectChord(key string) error {
	def, err := s.catalog.Chord(key)
	if err != nil {
		return err
	}

	return s.apply("chord", func(st *m.State) error {
		st.Chord = def.ID
		return nil
	})
}

// SelectScale chooses the scale shown in scale mode.
func (s *Session) SelectScale(key string) error {
	def, err := s.catalog.Scale(key)
	if err != nil {
		return err
	}

	return s.apply("scale", func(st *m.State) error {
		st.Scale = def.ID
		return nil
	})
}

// SetRoot changes the root note.
func (s *Session) SetRoot(root m.PitchClass) error {
	if !root.Valid() {
		return fmt.Errorf("root %d: %w", int(root), m.ErrInvalidNoteName)
	}

	return s.apply("root", func(st *m.State) error {
		st.Root = root
		return nil
	})
}

// SetLabels switches between interval and note name labels.
func (s *Session) SetLabels(labels m.LabelMode) error {
	if _, err := m.ParseLabelMode(string(labels)); err != nil {
		return err
	}

	return s.apply("labels", func(st *m.State) error {
		st.Labels = labels
		return nil
	})
}

// SetFrets changes how many frets are drawn, open string included.
func (s *Session) SetFrets(n int) error {
	if !m.ValidFrets(n) {
		return fmt.Errorf("%w: %d", m.ErrInvalidFretCount, n)
	}

	return s.apply("frets", func(st *m.State) error {
		st.Frets = n
		return nil
	})
}

// ToggleMode flips between chord and scale mode.
func (s *Session) ToggleMode() error {
	if s.state.Mode == m.ModeChord {
		return s.SetMode(m.ModeScale)
	}

	return s.SetMode(m.ModeChord)
}

// ToggleLabels flips between interval and note labels.
func (s *Session) ToggleLabels() error {
	if s.state.Labels == m.LabelInterval {
		return s.SetLabels(m.LabelNote)
	}

	return s.SetLabels(m.LabelInterval)
}

// CycleRoot moves the root by delta semitones.
func (s *Session) CycleRoot(delta int) error {
	return s.SetRoot(s.state.Root.Transpose(delta))
}

// CycleStructure steps through the active table in display order.
func (s *Session) CycleStructure(delta int) error {
	if s.state.Mode == m.ModeScale {
		scales := s.catalog.Scales()
		if len(scales) == 0 {
			return fmt.Errorf("%w: no scales", m.ErrUnknownScale)
		}

		next := cycleIndex(len(scales), definitionIndex(scales, s.state.Scale), delta)

		return s.SelectScale(scales[next].ID)
	}

	chords := s.catalog.Chords()
	if len(chords) == 0 {
		return fmt.Errorf("%w: no chords", m.ErrUnknownChord)
	}

	next := cycleIndex(len(chords), definitionIndex(chords, s.state.Chord), delta)

	return s.SelectChord(chords[next].ID)
}

// CyclePreset steps through the tuning presets in display order.
func (s *Session) CyclePreset(delta int) error {
	presets := s.catalog.Presets()
	if len(presets) == 0 {
		return fmt.Errorf("%w: no presets", m.ErrUnknownPreset)
	}

	current := -1

	for i, p := range presets {
		if p.ID == s.state.Preset {
			current = i
			break
		}
	}

	return s.SelectPreset(presets[cycleIndex(len(presets), current, delta)].ID)
}

// CycleStringNote moves one string's open pitch by delta semitones.
func (s *Session) CycleStringNote(idx, delta int) error {
	if idx < 0 || idx >= len(s.state.Tuning) {
		return fmt.Errorf("%w: %d", m.ErrStringIndex, idx)
	}

	return s.SetStringNote(idx, s.state.Tuning[idx].Transpose(delta))
}

// CycleStringCount steps through the supported string counts.
func (s *Session) CycleStringCount(delta int) error {
	current := slices.Index(m.StringCounts, len(s.state.Tuning))

	return s.SetStringCount(m.StringCounts[cycleIndex(len(m.StringCounts), current, delta)])
}

func (s *Session) apply(field string, mutate func(*m.State) error) error {
	next := s.state.Clone()
	if err := mutate(&next); err != nil {
		return err
	}

	diagram, err := Render(next, s.catalog)
	if err != nil {
		s.logger.Debug("rejected state change", zap.String("field", field), zap.Error(err))
		return err
	}

	s.state = next
	s.diagram = diagram

	s.logger.Debug("state changed",
		zap.String("field", field),
		zap.String("preset", next.Preset),
		zap.Stringer("tuning", next.Tuning),
		zap.Stringer("root", next.Root),
		zap.String("mode", string(next.Mode)),
		zap.String("title", diagram.Title),
		zap.Int("members", diagram.Grid.Members()),
	)

	return nil
}

func definitionIndex(defs []m.Definition, id string) int {
	for i, d := range defs {
		if d.ID == id {
			return i
		}
	}

	return -1
}

// cycleIndex moves from current by delta and wraps into [0, n). An unknown
// current position (-1) starts from the beginning.
func cycleIndex(n, current, delta int) int {
	if n == 0 {
		return 0
	}

	if current < 0 {
		current = 0
		if delta > 0 {
			delta--
		}
	}

	return ((current+delta)%n + n) % n
}
