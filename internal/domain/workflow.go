// Package domain contains the fretboard theory tables, position calculator
// and the workflows behind each command.
package domain

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mouse-blink/fretviz/internal/adapter"
	"github.com/mouse-blink/fretviz/internal/controller"
	m "github.com/mouse-blink/fretviz/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Output formats for Show.
const (
	FormatText = "text"
	FormatSVG  = "svg"
)

// ErrUnknownFormat is returned for an output format other than text or svg.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrUnknownTable is returned when listing a table that does not exist.
var ErrUnknownTable = errors.New("unknown table")

// ShowArgs holds the arguments for rendering a single diagram.
type ShowArgs struct {
	Selection Selection
	Format    string
	Out       io.Writer
}

// ListArgs selects which theory table to list; empty lists all of them.
type ListArgs struct {
	Table string
}

// InteractiveArgs holds the starting selection of an interactive session.
type InteractiveArgs struct {
	Selection Selection
}

// ExportArgs holds the arguments for exporting every chord and scale.
type ExportArgs struct {
	Selection Selection
	Dir       m.Path
	Threads   int
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Show(args ShowArgs) error
	List(args ListArgs) error
	Interactive(args InteractiveArgs) error
	Export(args ExportArgs) error
}

type workflow struct {
	catalog Catalog
	store   adapter.DiagramStore
	ui      controller.UI
	logger  *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(c Catalog, store adapter.DiagramStore, ui controller.UI, logger *zap.Logger) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{catalog: c, store: store, ui: ui, logger: logger}
}

func (w *workflow) Show(args ShowArgs) error {
	session, err := NewSessionFrom(w.catalog, args.Selection, w.logger)
	if err != nil {
		return err
	}

	d := session.Diagram()
	w.logger.Debug("showing diagram", zap.String("title", d.Title), zap.String("format", args.Format))

	switch args.Format {
	case "", FormatText:
		return w.ui.DisplayDiagram(d)
	case FormatSVG:
		if args.Out == nil {
			return fmt.Errorf("svg output: no writer")
		}

		return adapter.RenderSVG(args.Out, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, args.Format)
	}
}

func (w *workflow) List(args ListArgs) error {
	switch args.Table {
	case "", controller.TableChords, controller.TableScales, controller.TablePresets:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTable, args.Table)
	}

	return w.ui.DisplayCatalog(controller.Listing{
		Table:   args.Table,
		Chords:  w.catalog.Chords(),
		Scales:  w.catalog.Scales(),
		Presets: w.catalog.Presets(),
	})
}

func (w *workflow) Interactive(args InteractiveArgs) error {
	session, err := NewSessionFrom(w.catalog, args.Selection, w.logger)
	if err != nil {
		return err
	}

	w.logger.Info("starting interactive session", zap.String("title", session.Diagram().Title))

	return w.ui.Interact(session)
}

// exportJob is one diagram to render during Export.
type exportJob struct {
	name string
	mode m.DisplayMode
	key  string
}

// Export renders every chord and scale for the selected root and tuning into
// args.Dir, then writes an index. Diagrams are rendered by up to
// args.Threads workers.
func (w *workflow) Export(args ExportArgs) error {
	files, err := w.export(args)

	return w.ui.DisplayExport(files, err)
}

func (w *workflow) export(args ExportArgs) ([]m.Path, error) {
	base, err := NewSessionFrom(w.catalog, args.Selection, w.logger)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	jobs := w.exportJobs(base.State().Root)
	files := make([]m.Path, len(jobs))
	entries := make([]adapter.IndexEntry, len(jobs))

	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(threads)

	for i, job := range jobs {
		g.Go(func() error {
			d, err := renderJob(base.State(), w.catalog, job)
			if err != nil {
				return fmt.Errorf("%s: %w", job.name, err)
			}

			path, err := w.store.SaveDiagram(args.Dir, job.name, d)
			if err != nil {
				return err
			}

			mu.Lock()
			files[i] = path
			entries[i] = indexEntry(path, d)
			mu.Unlock()

			w.logger.Debug("exported diagram", zap.String("file", string(path)), zap.Int("members", d.Grid.Members()))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	index, err := w.store.SaveIndex(args.Dir, entries)
	if err != nil {
		return nil, err
	}

	files = append(files, index)
	w.logger.Info("export finished", zap.String("dir", string(args.Dir)), zap.Int("diagrams", len(jobs)))

	return files, nil
}

func (w *workflow) exportJobs(root m.PitchClass) []exportJob {
	chords := w.catalog.Chords()
	scales := w.catalog.Scales()
	jobs := make([]exportJob, 0, len(chords)+len(scales))
	stems := make(map[string]bool, cap(jobs))

	for i, d := range chords {
		name := uniqueStem(stems, fmt.Sprintf("chord-%s-%s", d.ID, m.NameOf(root)), i+1)
		jobs = append(jobs, exportJob{name: name, mode: m.ModeChord, key: d.ID})
	}

	for i, d := range scales {
		name := uniqueStem(stems, fmt.Sprintf("scale-%s-%s", d.ID, m.NameOf(root)), i+1)
		jobs = append(jobs, exportJob{name: name, mode: m.ModeScale, key: d.ID})
	}

	return jobs
}

// uniqueStem returns name, or name suffixed with the entry's table position,
// such that no two jobs share a SafeFileName stem.
func uniqueStem(seen map[string]bool, name string, position int) string {
	candidate := name

	for n := 0; seen[adapter.SafeFileName(candidate)]; n++ {
		if n == 0 {
			candidate = fmt.Sprintf("%s-%d", name, position)
		} else {
			candidate = fmt.Sprintf("%s-%d-%d", name, position, n)
		}
	}

	seen[adapter.SafeFileName(candidate)] = true

	return candidate
}

// renderJob computes one export diagram from a private copy of the state.
func renderJob(state m.State, c Catalog, job exportJob) (m.Diagram, error) {
	state.Mode = job.mode
	if job.mode == m.ModeChord {
		state.Chord = job.key
	} else {
		state.Scale = job.key
	}

	return Render(state, c)
}

func indexEntry(path m.Path, d m.Diagram) adapter.IndexEntry {
	offsets := make([]int, len(d.Definition.Offsets))
	copy(offsets, d.Definition.Offsets)

	return adapter.IndexEntry{
		File:    string(path),
		Title:   d.Title,
		Mode:    string(d.Mode),
		Root:    m.NameOf(d.Root),
		Tuning:  d.Tuning.Names(),
		Offsets: offsets,
		Members: d.Grid.Members(),
	}
}
