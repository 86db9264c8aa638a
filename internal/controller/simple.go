package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/fretviz/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const emptyCell = "·"

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiagram prints the fretboard as a table, 1st string on top.
func (s *SimpleUI) DisplayDiagram(d m.Diagram) error {
	frets := d.Grid.Frets()
	strs := d.Grid.Strings()

	s.printf("%s (%s, %s labels)\n", d.Title, d.Mode, d.Labels)
	s.printf("Tuning: %s\n", d.Tuning)
	s.printf("Intervals: %s\n", intervalList(d.Definition.Offsets))

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)

	header := make([]string, 0, frets+1)
	header = append(header, "")

	alignments := make([]int, 0, frets+1)
	alignments = append(alignments, tablewriter.ALIGN_LEFT)

	for f := range frets {
		header = append(header, strconv.Itoa(f))
		alignments = append(alignments, tablewriter.ALIGN_CENTER)
	}

	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(alignments)

	for row := range strs {
		str := strs - 1 - row
		line := make([]string, 0, frets+1)
		line = append(line, m.NameOf(d.Tuning[str]))

		for f := range frets {
			label := d.Label(str, f)
			if label == "" {
				label = emptyCell
			}

			line = append(line, label)
		}

		table.Append(line)
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCatalog prints the requested theory tables in display order.
func (s *SimpleUI) DisplayCatalog(l Listing) error {
	if l.Includes(TableChords) {
		s.printf("Chords\n%s\n", definitionTable(l.Chords))
	}

	if l.Includes(TableScales) {
		s.printf("Scales\n%s\n", definitionTable(l.Scales))
	}

	if l.Includes(TablePresets) {
		s.printf("Tuning presets\n%s\n", presetTable(l.Presets))
	}

	return nil
}

// DisplayExport prints the exported files or the export error.
func (s *SimpleUI) DisplayExport(files []m.Path, err error) error {
	if err != nil {
		s.printf("export error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, f := range files {
		table.Append([]string{string(f)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files))})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Interact cannot prompt without a terminal; it prints the current diagram.
func (s *SimpleUI) Interact(session Session) error {
	return s.DisplayDiagram(session.Diagram())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func definitionTable(defs []m.Definition) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"ID", "Name", "Offsets", "Intervals"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, d := range defs {
		table.Append([]string{d.ID, d.Name, offsetList(d.Offsets), intervalList(d.Offsets)})
	}

	table.Render()

	return buf.String()
}

func presetTable(presets []m.Preset) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"ID", "Name", "Strings", "Tuning"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, p := range presets {
		tuning := p.Tuning.String()
		if p.UserDefined() {
			tuning = "(user-defined)"
		}

		table.Append([]string{p.ID, p.Name, strconv.Itoa(len(p.Tuning)), tuning})
	}

	table.Render()

	return buf.String()
}

func offsetList(offsets []int) string {
	parts := make([]string, len(offsets))
	for i, off := range offsets {
		parts[i] = strconv.Itoa(off)
	}

	return strings.Join(parts, ",")
}

func intervalList(offsets []int) string {
	parts := make([]string, len(offsets))
	for i, off := range offsets {
		parts[i] = m.IntervalLabel(off)
	}

	return strings.Join(parts, " ")
}
