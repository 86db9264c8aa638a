package model

// Definition is a named chord or scale.
type Definition struct {
	ID      string
	Name    string
	Offsets []int
}

// Structure converts the offsets into a Structure.
func (d Definition) Structure() (Structure, error) {
	return NewStructure(d.Offsets...)
}

// Preset is a named tuning. An empty Tuning marks the user-defined entry.
type Preset struct {
	ID     string
	Name   string
	Tuning Tuning
}

// UserDefined reports whether p is the "no preset" sentinel.
func (p Preset) UserDefined() bool {
	return len(p.Tuning) == 0
}

// TableSpec is the serialized form of the theory tables. It is used for the
// built-in tables and for user extensions loaded from the config file.
type TableSpec struct {
	Chords  []DefinitionSpec `yaml:"chords"`
	Scales  []DefinitionSpec `yaml:"scales"`
	Presets []PresetSpec     `yaml:"presets"`
}

// DefinitionSpec is the serialized form of a Definition.
type DefinitionSpec struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Offsets []int  `yaml:"offsets"`
}

// PresetSpec is the serialized form of a Preset; notes are canonical names.
type PresetSpec struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Tuning []string `yaml:"tuning"`
}
