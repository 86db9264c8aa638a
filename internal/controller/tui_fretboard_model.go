package controller

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fretboardModel drives a Session from the keyboard. Every key maps to one
// session mutation; the view is redrawn from the resulting diagram.
type fretboardModel struct {
	session  Session
	keys     keyMap
	help     help.Model
	width    int
	height   int
	cursor   int // tuning index of the selected string
	status   string
	failed   bool
	statusID int
	quitting bool
}

func newFretboardModel(session Session) fretboardModel {
	return fretboardModel{
		session: session,
		keys:    newKeyMap(),
		help:    help.New(),
		cursor:  len(session.State().Tuning) - 1,
	}
}

func (fm fretboardModel) Init() tea.Cmd {
	return nil
}

func (fm fretboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.width = msg.Width
		fm.height = msg.Height
		fm.help.Width = msg.Width

		return fm, nil

	case clearStatusMsg:
		if msg.id == fm.statusID {
			fm.status = ""
			fm.failed = false
		}

		return fm, nil

	case tea.KeyMsg:
		return fm.handleKeyPress(msg)
	}

	return fm, nil
}

//nolint:cyclop // one case per binding
func (fm fretboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, fm.keys.Quit):
		fm.quitting = true
		return fm, tea.Quit
	case key.Matches(msg, fm.keys.Help):
		fm.help.ShowAll = !fm.help.ShowAll
		return fm, nil
	case key.Matches(msg, fm.keys.StringUp):
		fm.cursor = fm.clampCursor(fm.cursor + 1)
		return fm, nil
	case key.Matches(msg, fm.keys.StringDown):
		fm.cursor = fm.clampCursor(fm.cursor - 1)
		return fm, nil
	case key.Matches(msg, fm.keys.RootUp):
		err = fm.session.CycleRoot(1)
	case key.Matches(msg, fm.keys.RootDown):
		err = fm.session.CycleRoot(-1)
	case key.Matches(msg, fm.keys.Next):
		err = fm.session.CycleStructure(1)
	case key.Matches(msg, fm.keys.Prev):
		err = fm.session.CycleStructure(-1)
	case key.Matches(msg, fm.keys.Mode):
		err = fm.session.ToggleMode()
	case key.Matches(msg, fm.keys.Labels):
		err = fm.session.ToggleLabels()
	case key.Matches(msg, fm.keys.Preset):
		err = fm.session.CyclePreset(1)
	case key.Matches(msg, fm.keys.PresetPrev):
		err = fm.session.CyclePreset(-1)
	case key.Matches(msg, fm.keys.NoteUp):
		err = fm.session.CycleStringNote(fm.cursor, 1)
	case key.Matches(msg, fm.keys.NoteDown):
		err = fm.session.CycleStringNote(fm.cursor, -1)
	case key.Matches(msg, fm.keys.StringCount):
		err = fm.session.CycleStringCount(1)
	case key.Matches(msg, fm.keys.MoreFrets):
		err = fm.session.SetFrets(fm.session.State().Frets + 1)
	case key.Matches(msg, fm.keys.FewerFrets):
		err = fm.session.SetFrets(fm.session.State().Frets - 1)
	default:
		return fm, nil
	}

	fm.cursor = fm.clampCursor(fm.cursor)

	if err != nil {
		return fm.setStatus(err.Error(), true)
	}

	return fm, nil
}

func (fm fretboardModel) setStatus(text string, failed bool) (tea.Model, tea.Cmd) {
	fm.statusID++
	fm.status = text
	fm.failed = failed
	id := fm.statusID

	return fm, tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (fm fretboardModel) clampCursor(c int) int {
	n := len(fm.session.State().Tuning)
	if c >= n {
		c = n - 1
	}

	if c < 0 {
		c = 0
	}

	return c
}

func (fm fretboardModel) View() string {
	if fm.quitting {
		return ""
	}

	d := fm.session.Diagram()

	title := titleStyle.Render(truncateToWidth("🎸 Fretviz  "+d.Title, fm.width))

	status := ""
	if fm.status != "" {
		style := infoStyle
		if fm.failed {
			style = errorStyle
		}

		status = style.Render(fm.status)
	}

	intervals := footnoteStyle.Render("Intervals: " + intervalList(d.Definition.Offsets))

	footer := lipgloss.NewStyle().Padding(1, 0, 0, 2).Render(fm.help.View(fm.keys))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		renderSummary(d, fm.session.PresetName()),
		boardStyle.Render(renderFretboard(d, fm.cursor)),
		intervals,
		status,
		footer,
	)
}
