package adapter

import (
	"fmt"
	"html"
	"io"
	"strings"

	m "github.com/mouse-blink/fretviz/internal/model"
)

// Diagram geometry, in SVG user units.
const (
	stringSpacing = 36
	fretSpacing   = 34
	nutWidth      = 38
	markerRadius  = 13
)

// RenderSVG draws d as a standalone SVG document. The last tuning entry (the
// 1st string) is drawn on top; fret 0 sits left of the thick first fret line.
func RenderSVG(w io.Writer, d m.Diagram) error {
	strs := d.Grid.Strings()
	frets := d.Grid.Frets()

	if strs == 0 || frets == 0 {
		return fmt.Errorf("render svg: %w", m.ErrEmptyTuning)
	}

	width := nutWidth + fretSpacing*frets + 18
	height := stringSpacing*(strs-1) + 50

	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" style="background:#fafafa">`+"\n", width, height)
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(d.Title))

	for row := range strs {
		stroke := 2.0
		if row == 0 || row == strs-1 {
			stroke = 1.4
		}

		fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333" stroke-width="%g"/>`+"\n",
			nutWidth+fretSpacing, rowY(row), width-14, rowY(row), stroke)
	}

	for f := 1; f <= frets; f++ {
		stroke := 2
		if f == 1 {
			stroke = 6
		}

		fmt.Fprintf(&b, `  <line x1="%d" y1="26" x2="%d" y2="%d" stroke="#aaa" stroke-width="%d"/>`+"\n",
			nutWidth+fretSpacing*f, nutWidth+fretSpacing*f, height-22, stroke)
	}

	for f := range frets {
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="12" fill="#666" text-anchor="middle">%d</text>`+"\n",
			fretX(f), height-5, f)
	}

	for row := range strs {
		s := strs - 1 - row

		for f := range frets {
			label := d.Label(s, f)
			if label == "" {
				continue
			}

			fmt.Fprintf(&b, `  <g><circle cx="%d" cy="%d" r="%d" fill="#2c9" stroke="#0b7" stroke-width="2"/>`,
				fretX(f), rowY(row), markerRadius)
			fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="13" text-anchor="middle" fill="#184" font-weight="bold">%s</text></g>`+"\n",
				fretX(f), rowY(row)+6, html.EscapeString(label))
		}
	}

	for row := range strs {
		s := strs - 1 - row
		fmt.Fprintf(&b, `  <text x="28" y="%d" font-size="13" fill="#555" text-anchor="end">%s</text>`+"\n",
			rowY(row)+6, html.EscapeString(m.NameOf(d.Tuning[s])))
	}

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func rowY(row int) int {
	return stringSpacing*row + 28
}

func fretX(f int) int {
	return nutWidth + fretSpacing*f + fretSpacing/2
}
