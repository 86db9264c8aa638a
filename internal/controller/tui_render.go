package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fretviz/internal/model"
)

const cellWidth = 3

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)

	rootCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	memberCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	wireStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fretNumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(cellWidth).Align(lipgloss.Center)
	stringStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(3)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 0, 0, 2)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 0, 0, 2)
	footnoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 0, 0, 2)
)

// renderFretboard draws the grid with the 1st string on top. cursor is a
// tuning index to mark, or -1.
func renderFretboard(d m.Diagram, cursor int) string {
	strs := d.Grid.Strings()
	frets := d.Grid.Frets()

	var b strings.Builder

	b.WriteString("    ")

	for f := range frets {
		b.WriteString(fretNumStyle.Render(fmt.Sprintf("%d", f)))

		if f < frets-1 {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n")

	for row := range strs {
		s := strs - 1 - row

		marker := " "
		if s == cursor {
			marker = cursorStyle.Render("›")
		}

		b.WriteString(marker)
		b.WriteString(stringStyle.Render(m.NameOf(d.Tuning[s])))

		for f := range frets {
			b.WriteString(renderCell(d, s, f))

			switch {
			case f == 0:
				b.WriteString(wireStyle.Render("║"))
			case f < frets-1:
				b.WriteString(wireStyle.Render("│"))
			}
		}

		if row < strs-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderCell(d m.Diagram, s, f int) string {
	offset, ok := d.Grid.At(s, f)
	if !ok {
		return wireStyle.Render(strings.Repeat("─", cellWidth))
	}

	label := d.Label(s, f)
	if offset == 0 {
		return rootCellStyle.Render(label)
	}

	return memberCellStyle.Render(label)
}

// renderSummary describes the diagram in two lines. preset may be empty.
func renderSummary(d m.Diagram, preset string) string {
	tuning := d.Tuning.String()
	if preset != "" {
		tuning = accentStyle.Render(preset) + "  " + tuning
	}

	return summaryStyle.Render(fmt.Sprintf(
		"Root: %s   %s: %s   Labels: %s\nTuning: %s",
		accentStyle.Render(m.NameOf(d.Root)),
		modeTitle(d.Mode),
		accentStyle.Render(d.Definition.Name),
		accentStyle.Render(string(d.Labels)),
		tuning,
	))
}

// renderDiagram is the non-interactive styled rendering.
func renderDiagram(d m.Diagram, width int) string {
	title := titleStyle.Render(truncateToWidth("🎸 "+d.Title, width))
	intervals := footnoteStyle.Render("Intervals: " + intervalList(d.Definition.Offsets))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		renderSummary(d, ""),
		boardStyle.Render(renderFretboard(d, -1)),
		intervals,
	)
}

func modeTitle(mode m.DisplayMode) string {
	if mode == m.ModeScale {
		return "Scale"
	}

	return "Chord"
}

// truncateToWidth shortens text to fit width cells, ending in an ellipsis.
// A non-positive width disables truncation.
func truncateToWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
