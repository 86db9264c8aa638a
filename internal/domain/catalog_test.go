package domain

import (
	"testing"

	m "github.com/mouse-blink/fretviz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_BuiltinTables(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	chords := c.Chords()
	require.Len(t, chords, 6)
	assert.Equal(t, "major", chords[0].ID)
	assert.Equal(t, "メジャー", chords[0].Name)
	assert.Equal(t, []int{0, 4, 7}, chords[0].Offsets)

	scales := c.Scales()
	require.Len(t, scales, 4)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, scales[0].Offsets)

	presets := c.Presets()
	require.Len(t, presets, 7)
	assert.Equal(t, "standard", presets[0].ID)
	assert.Equal(t, "E A D G B E", presets[0].Tuning.String())
	assert.Equal(t, "F# B E A D G B E", presets[5].Tuning.String())
	assert.True(t, presets[6].UserDefined())
}

func TestCatalog_LookupByIDOrName(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	byID, err := c.Chord("MAJOR")
	require.NoError(t, err)

	byName, err := c.Chord("メジャー")
	require.NoError(t, err)
	assert.Equal(t, byID, byName)

	scale, err := c.Scale(" minor-blues ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 5, 6, 7, 10}, scale.Offsets)

	preset, err := c.Preset("Drop D")
	require.NoError(t, err)
	assert.Equal(t, "drop-d", preset.ID)

	_, err = c.Chord("maj13")
	require.ErrorIs(t, err, m.ErrUnknownChord)

	_, err = c.Scale("lydian")
	require.ErrorIs(t, err, m.ErrUnknownScale)

	_, err = c.Preset("banjo")
	require.ErrorIs(t, err, m.ErrUnknownPreset)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	chords := c.Chords()
	chords[0].Offsets[0] = 11

	preset, err := c.Preset("standard")
	require.NoError(t, err)
	preset.Tuning[0] = 0

	again, err := c.Chord("major")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7}, again.Offsets)

	preset, err = c.Preset("standard")
	require.NoError(t, err)
	assert.Equal(t, m.PitchClass(4), preset.Tuning[0])
}

func TestDefaultCatalog_Extensions(t *testing.T) {
	c, err := DefaultCatalog(m.TableSpec{
		Chords:  []m.DefinitionSpec{{ID: "maj7", Name: "maj7", Offsets: []int{0, 4, 7, 11}}},
		Scales:  []m.DefinitionSpec{{Name: "dorian", Offsets: []int{0, 2, 3, 5, 7, 9, 10}}},
		Presets: []m.PresetSpec{{ID: "dadgad", Name: "DADGAD", Tuning: []string{"D", "A", "D", "G", "A", "D"}}},
	})
	require.NoError(t, err)

	chords := c.Chords()
	assert.Equal(t, "maj7", chords[len(chords)-1].ID)

	dorian, err := c.Scale("dorian")
	require.NoError(t, err)
	assert.Equal(t, "dorian", dorian.ID)

	dadgad, err := c.Preset("dadgad")
	require.NoError(t, err)
	assert.Equal(t, "D A D G A D", dadgad.Tuning.String())
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		table m.TableSpec
		want  error
	}{
		{
			name: "duplicate chord id",
			table: m.TableSpec{Chords: []m.DefinitionSpec{
				{ID: "x", Name: "one", Offsets: []int{0}},
				{ID: "X", Name: "two", Offsets: []int{0}},
			}},
			want: m.ErrDuplicateName,
		},
		{
			name: "name clashes with id",
			table: m.TableSpec{Scales: []m.DefinitionSpec{
				{ID: "a", Name: "b", Offsets: []int{0}},
				{ID: "b", Name: "c", Offsets: []int{0}},
			}},
			want: m.ErrDuplicateName,
		},
		{
			name:  "empty name",
			table: m.TableSpec{Chords: []m.DefinitionSpec{{ID: "x", Offsets: []int{0}}}},
			want:  m.ErrEmptyName,
		},
		{
			name:  "offset out of range",
			table: m.TableSpec{Chords: []m.DefinitionSpec{{Name: "bad", Offsets: []int{0, 12}}}},
			want:  m.ErrInvalidOffset,
		},
		{
			name:  "unknown tuning note",
			table: m.TableSpec{Presets: []m.PresetSpec{{Name: "bad", Tuning: []string{"E", "H"}}}},
			want:  m.ErrInvalidNoteName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.table)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadCatalog_InvalidYAML(t *testing.T) {
	_, err := LoadCatalog([]byte("chords: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse theory tables")
}

func TestLoadCatalog_SameNameAcrossTables(t *testing.T) {
	c, err := LoadCatalog([]byte(`
chords:
  - name: x
    offsets: [0]
scales:
  - name: x
    offsets: [0, 2]
`))
	require.NoError(t, err)

	chord, err := c.Chord("x")
	require.NoError(t, err)

	scale, err := c.Scale("x")
	require.NoError(t, err)
	assert.NotEqual(t, chord.Offsets, scale.Offsets)
}
