package domain

import (
	_ "embed"
	"fmt"
	"strings"

	m "github.com/mouse-blink/fretviz/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed theory.yaml
var builtinTables []byte

// Catalog exposes the chord, scale and tuning preset tables in display order.
type Catalog interface {
	Chords() []m.Definition
	Scales() []m.Definition
	Presets() []m.Preset
	Chord(key string) (m.Definition, error)
	Scale(key string) (m.Definition, error)
	Preset(key string) (m.Preset, error)
}

type catalog struct {
	chords  []m.Definition
	scales  []m.Definition
	presets []m.Preset
}

// DefaultCatalog returns the built-in tables followed by any extensions.
func DefaultCatalog(extensions ...m.TableSpec) (Catalog, error) {
	return LoadCatalog(builtinTables, extensions...)
}

// LoadCatalog parses a YAML table document and appends the extensions after it.
func LoadCatalog(data []byte, extensions ...m.TableSpec) (Catalog, error) {
	var base m.TableSpec
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("failed to parse theory tables: %w", err)
	}

	return NewCatalog(append([]m.TableSpec{base}, extensions...)...)
}

// NewCatalog validates and concatenates the given tables. Entries keep the
// order in which they appear.
func NewCatalog(tables ...m.TableSpec) (Catalog, error) {
	c := &catalog{}
	chordKeys := make(map[string]bool)
	scaleKeys := make(map[string]bool)
	presetKeys := make(map[string]bool)

	for _, table := range tables {
		for _, spec := range table.Chords {
			def, err := buildDefinition(spec, chordKeys)
			if err != nil {
				return nil, fmt.Errorf("chord %q: %w", spec.Name, err)
			}

			c.chords = append(c.chords, def)
		}

		for _, spec := range table.Scales {
			def, err := buildDefinition(spec, scaleKeys)
			if err != nil {
				return nil, fmt.Errorf("scale %q: %w", spec.Name, err)
			}

			c.scales = append(c.scales, def)
		}

		for _, spec := range table.Presets {
			preset, err := buildPreset(spec, presetKeys)
			if err != nil {
				return nil, fmt.Errorf("preset %q: %w", spec.Name, err)
			}

			c.presets = append(c.presets, preset)
		}
	}

	return c, nil
}

func buildDefinition(spec m.DefinitionSpec, seen map[string]bool) (m.Definition, error) {
	id, name, err := claimKeys(spec.ID, spec.Name, seen)
	if err != nil {
		return m.Definition{}, err
	}

	if _, err := m.NewStructure(spec.Offsets...); err != nil {
		return m.Definition{}, err
	}

	offsets := make([]int, len(spec.Offsets))
	copy(offsets, spec.Offsets)

	return m.Definition{ID: id, Name: name, Offsets: offsets}, nil
}

func buildPreset(spec m.PresetSpec, seen map[string]bool) (m.Preset, error) {
	id, name, err := claimKeys(spec.ID, spec.Name, seen)
	if err != nil {
		return m.Preset{}, err
	}

	tuning := make(m.Tuning, 0, len(spec.Tuning))

	for i, note := range spec.Tuning {
		pc, err := m.IndexOf(note)
		if err != nil {
			return m.Preset{}, fmt.Errorf("string %d: %w", i+1, err)
		}

		tuning = append(tuning, pc)
	}

	return m.Preset{ID: id, Name: name, Tuning: tuning}, nil
}

// claimKeys registers the id and name of an entry in seen. The id falls back
// to the name when omitted.
func claimKeys(id, name string, seen map[string]bool) (string, string, error) {
	name = strings.TrimSpace(name)
	id = strings.TrimSpace(id)

	if name == "" {
		return "", "", m.ErrEmptyName
	}

	if id == "" {
		id = name
	}

	keys := []string{normalizeKey(id)}
	if nk := normalizeKey(name); nk != keys[0] {
		keys = append(keys, nk)
	}

	for _, k := range keys {
		if seen[k] {
			return "", "", fmt.Errorf("%w: %q", m.ErrDuplicateName, k)
		}
	}

	for _, k := range keys {
		seen[k] = true
	}

	return id, name, nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (c *catalog) Chords() []m.Definition {
	return cloneDefinitions(c.chords)
}

func (c *catalog) Scales() []m.Definition {
	return cloneDefinitions(c.scales)
}

func (c *catalog) Presets() []m.Preset {
	out := make([]m.Preset, len(c.presets))
	for i, p := range c.presets {
		p.Tuning = p.Tuning.Clone()
		out[i] = p
	}

	return out
}

func (c *catalog) Chord(key string) (m.Definition, error) {
	def, ok := findDefinition(c.chords, key)
	if !ok {
		return m.Definition{}, fmt.Errorf("%w: %q", m.ErrUnknownChord, key)
	}

	return def, nil
}

func (c *catalog) Scale(key string) (m.Definition, error) {
	def, ok := findDefinition(c.scales, key)
	if !ok {
		return m.Definition{}, fmt.Errorf("%w: %q", m.ErrUnknownScale, key)
	}

	return def, nil
}

func (c *catalog) Preset(key string) (m.Preset, error) {
	k := normalizeKey(key)
	for _, p := range c.presets {
		if normalizeKey(p.ID) == k || normalizeKey(p.Name) == k {
			p.Tuning = p.Tuning.Clone()
			return p, nil
		}
	}

	return m.Preset{}, fmt.Errorf("%w: %q", m.ErrUnknownPreset, key)
}

func findDefinition(defs []m.Definition, key string) (m.Definition, bool) {
	k := normalizeKey(key)
	for _, d := range defs {
		if normalizeKey(d.ID) == k || normalizeKey(d.Name) == k {
			return cloneDefinition(d), true
		}
	}

	return m.Definition{}, false
}

func cloneDefinitions(defs []m.Definition) []m.Definition {
	out := make([]m.Definition, len(defs))
	for i, d := range defs {
		out[i] = cloneDefinition(d)
	}

	return out
}

func cloneDefinition(d m.Definition) m.Definition {
	offsets := make([]int, len(d.Offsets))
	copy(offsets, d.Offsets)
	d.Offsets = offsets

	return d
}
