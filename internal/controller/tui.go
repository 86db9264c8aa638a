package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fretviz/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output:  output,
		options: []tea.ProgramOption{tea.WithOutput(output), tea.WithAltScreen()},
	}
}

// DisplayDiagram prints a styled, non-interactive fretboard.
func (t *TUI) DisplayDiagram(d m.Diagram) error {
	_, err := fmt.Fprintln(t.output, renderDiagram(d, 0))
	return err
}

// DisplayCatalog prints the requested theory tables.
func (t *TUI) DisplayCatalog(l Listing) error {
	sections := []string{titleStyle.Render("🎼 Fretviz Catalog")}

	if l.Includes(TableChords) {
		sections = append(sections, renderDefinitions("Chords", l.Chords))
	}

	if l.Includes(TableScales) {
		sections = append(sections, renderDefinitions("Scales", l.Scales))
	}

	if l.Includes(TablePresets) {
		rows := make([]string, 0, len(l.Presets))

		for _, p := range l.Presets {
			tuning := p.Tuning.String()
			if p.UserDefined() {
				tuning = wireStyle.Render("(user-defined)")
			}

			rows = append(rows, fmt.Sprintf("%s  %s  %s",
				accentStyle.Render(fmt.Sprintf("%-12s", p.ID)), p.Name, tuning))
		}

		sections = append(sections, boardStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, append([]string{cursorStyle.Render("Tuning presets")}, rows...)...)))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, sections...))

	return err
}

// DisplayExport prints a summary of the export run.
func (t *TUI) DisplayExport(files []m.Path, err error) error {
	if err != nil {
		_, _ = fmt.Fprintln(t.output, errorStyle.Render(fmt.Sprintf("export error: %v", err)))
		return err
	}

	_, werr := fmt.Fprintln(t.output, infoStyle.Render(fmt.Sprintf("Exported %d file(s)", len(files))))

	return werr
}

// Interact runs the interactive fretboard until the user quits.
func (t *TUI) Interact(s Session) error {
	program := tea.NewProgram(newFretboardModel(s), t.options...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func renderDefinitions(title string, defs []m.Definition) string {
	rows := make([]string, 0, len(defs)+1)
	rows = append(rows, cursorStyle.Render(title))

	for _, d := range defs {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			accentStyle.Render(fmt.Sprintf("%-18s", d.ID)), d.Name, wireStyle.Render(intervalList(d.Offsets))))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
