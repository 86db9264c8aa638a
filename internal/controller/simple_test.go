package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/fretviz/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return cmd
}

func TestSimpleUI_DisplayDiagram_PrintsGrid(t *testing.T) {
	var buf bytes.Buffer

	ui := NewSimpleUI(newTestCmd(&buf))
	require.NoError(t, ui.DisplayDiagram(newFakeSession().Diagram()))

	output := buf.String()
	for _, want := range []string{"C メジャー", "E A D G B E", "R 3 5", "3", "R", emptyCell} {
		require.Contains(t, output, want)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := lines[len(lines)-1]
	require.Contains(t, last, "E", "lowest string is printed last")
}

func TestSimpleUI_DisplayDiagram_NoteLabels(t *testing.T) {
	var buf bytes.Buffer

	d := newFakeSession().Diagram()
	d.Labels = m.LabelNote

	require.NoError(t, NewSimpleUI(newTestCmd(&buf)).DisplayDiagram(d))
	require.Contains(t, buf.String(), "note labels")
}

func TestSimpleUI_DisplayCatalog(t *testing.T) {
	listing := Listing{
		Chords:  []m.Definition{{ID: "major", Name: "メジャー", Offsets: []int{0, 4, 7}}},
		Scales:  []m.Definition{{ID: "minor-blues", Name: "ブルース（マイナー）", Offsets: []int{0, 3, 5, 6, 7, 10}}},
		Presets: []m.Preset{{ID: "drop-d", Name: "Drop D", Tuning: m.Tuning{2, 9, 2, 7, 11, 4}}, {ID: "custom", Name: "オリジナル"}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewSimpleUI(newTestCmd(&buf)).DisplayCatalog(listing))

	output := buf.String()
	for _, want := range []string{"Chords", "メジャー", "0,4,7", "Scales", "b3 4 b5 5 b7", "Drop D", "D A D G B E", "(user-defined)"} {
		require.Contains(t, output, want)
	}

	buf.Reset()

	listing.Table = TablePresets
	require.NoError(t, NewSimpleUI(newTestCmd(&buf)).DisplayCatalog(listing))
	require.NotContains(t, buf.String(), "メジャー")
	require.Contains(t, buf.String(), "Drop D")
}

func TestSimpleUI_DisplayExport(t *testing.T) {
	var buf bytes.Buffer

	ui := NewSimpleUI(newTestCmd(&buf))
	require.NoError(t, ui.DisplayExport([]m.Path{"out/chord-major-C.svg", "out/index.yaml"}, nil))
	require.Contains(t, buf.String(), "out/chord-major-C.svg")
	require.Contains(t, buf.String(), "TOTAL FILES 2")

	buf.Reset()

	boom := errors.New("boom")
	require.ErrorIs(t, ui.DisplayExport(nil, boom), boom)
	require.Contains(t, buf.String(), "export error: boom")
}

func TestSimpleUI_InteractPrintsCurrentDiagram(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewSimpleUI(newTestCmd(&buf)).Interact(newFakeSession()))
	require.Contains(t, buf.String(), "C メジャー")
}
