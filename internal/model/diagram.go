package model

// Diagram is a fully resolved fretboard ready for drawing.
type Diagram struct {
	Title      string
	Tuning     Tuning
	Root       PitchClass
	Definition Definition
	Mode       DisplayMode
	Labels     LabelMode
	Grid       Grid
}

// Label returns the text shown at (s, f), or "" when the position is not a
// member.
func (d Diagram) Label(s, f int) string {
	offset, ok := d.Grid.At(s, f)
	if !ok {
		return ""
	}

	if d.Labels == LabelNote {
		return NameOf(d.Root.Transpose(offset))
	}

	return IntervalLabel(offset)
}
