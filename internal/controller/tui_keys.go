package controller

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	RootUp      key.Binding
	RootDown    key.Binding
	Next        key.Binding
	Prev        key.Binding
	Mode        key.Binding
	Labels      key.Binding
	Preset      key.Binding
	PresetPrev  key.Binding
	StringUp    key.Binding
	StringDown  key.Binding
	NoteUp      key.Binding
	NoteDown    key.Binding
	StringCount key.Binding
	MoreFrets   key.Binding
	FewerFrets  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		RootUp:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r/R", "root ±")),
		RootDown:    key.NewBinding(key.WithKeys("R")),
		Next:        key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("←/→", "chord/scale")),
		Prev:        key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
		Mode:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "chord ⇄ scale")),
		Labels:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "interval ⇄ note")),
		Preset:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p/P", "tuning preset")),
		PresetPrev:  key.NewBinding(key.WithKeys("P")),
		StringUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select string")),
		StringDown:  key.NewBinding(key.WithKeys("down", "j")),
		NoteUp:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "retune string")),
		NoteDown:    key.NewBinding(key.WithKeys("-", "_")),
		StringCount: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "string count")),
		MoreFrets:   key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "frets ±")),
		FewerFrets:  key.NewBinding(key.WithKeys("[")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RootUp, k.Next, k.Mode, k.Labels, k.Preset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RootUp, k.Next, k.Mode, k.Labels},
		{k.Preset, k.StringUp, k.NoteUp, k.StringCount},
		{k.MoreFrets, k.Help, k.Quit},
	}
}
