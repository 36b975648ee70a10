package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/meetings/internal/schedule"
	"github.com/idilsaglam/meetings/internal/tz"
	"github.com/idilsaglam/meetings/internal/ui"
)

type mode int

const (
	modeEdit mode = iota
	modeConfirm
	modeNotice
)

// formHeight is the rows taken by everything but the table body.
const formHeight = 14

// Model is the interactive scheduler: an add form above the results table.
type Model struct {
	coll *schedule.Collection
	log  logrus.FieldLogger

	form  form
	table table.Model
	help  help.Model
	focus field

	// rows backs the table; row i of the table is rows[i].
	rows []schedule.Row

	mode    mode
	pending uuid.UUID
	notice  ui.Notice
}

func New(coll *schedule.Collection, log logrus.FieldLogger, defaultZone tz.Zone) Model {
	cols := []table.Column{{Title: "Title", Width: 30}}
	for _, z := range tz.Zones {
		cols = append(cols, table.Column{Title: z.String(), Width: 20})
	}
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.Current().BorderColor).
		BorderBottom(true).
		Bold(true)
	st.Selected = ui.Current().Selected

	m := Model{
		coll:  coll,
		log:   log,
		form:  newForm(defaultZone),
		table: table.New(table.WithColumns(cols), table.WithHeight(10), table.WithStyles(st)),
		help:  help.New(),
	}
	m.setFocus(fieldTitle)
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-formHeight, 3))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeNotice:
			m.mode = modeEdit
			return m, nil
		case modeConfirm:
			return m.updateConfirm(msg)
		}

		switch {
		case key.Matches(msg, keys.Next):
			m.setFocus((m.focus + 1) % numFields)
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.setFocus((m.focus - 1 + numFields) % numFields)
			return m, nil
		}
		if m.focus == fieldTable {
			return m.updateTable(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Add) {
		m.add()
		return m, nil
	}
	if msg.String() == "ctrl+d" {
		m.requestDelete()
		return m, nil
	}

	if c := m.form.choiceFor(m.focus); c != nil {
		switch {
		case key.Matches(msg, keys.Cycle):
			c.next()
		case key.Matches(msg, keys.Back):
			c.prev()
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	if m.focus == fieldDate {
		switch {
		case key.Matches(msg, keys.DayUp):
			m.form.stepDate(1, time.Now())
			return m, nil
		case key.Matches(msg, keys.DayDown):
			m.form.stepDate(-1, time.Now())
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldDate:
		m.form.date, cmd = m.form.date.Update(msg)
	}
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Delete):
		m.requestDelete()
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		m.mode = modeEdit
		if _, err := m.coll.Remove(m.pending); err != nil {
			m.log.WithError(err).Error("delete failed")
			m.show(ui.DeleteNotice(err))
		}
		m.pending = uuid.Nil
		m.refresh()
	case key.Matches(msg, keys.Cancel):
		m.mode = modeEdit
		m.pending = uuid.Nil
	}
	return m, nil
}

func (m *Model) add() {
	if _, err := m.coll.Add(m.form.input()); err != nil {
		m.log.WithError(err).Warn("add rejected")
		m.show(ui.AddNotice(err))
		return
	}
	m.form.reset()
	m.refresh()
}

// requestDelete asks for confirmation before removing the selected row.
func (m *Model) requestDelete() {
	id := m.selected()
	if id == uuid.Nil {
		m.show(ui.DeleteNotice(schedule.ErrNoSelection))
		return
	}
	m.pending = id
	m.mode = modeConfirm
}

func (m Model) selected() uuid.UUID {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return uuid.Nil
	}
	return m.rows[i].ID
}

func (m *Model) show(n ui.Notice) {
	m.notice = n
	m.mode = modeNotice
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.form.focus(f)
	if f == fieldTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// refresh rebuilds the table in chronological order.
func (m *Model) refresh() {
	rows, err := m.coll.Rows()
	if err != nil {
		m.log.WithError(err).Error("render meetings")
		m.show(ui.Notice{Level: ui.LevelError, Title: "Error", Msg: err.Error()})
		return
	}
	m.rows = rows
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row(ui.Cells(r)))
	}
	m.table.SetRows(trows)
	// The table parks its cursor at -1 while empty; move it back onto a row.
	if n, c := len(trows), m.table.Cursor(); n > 0 && (c < 0 || c >= n) {
		m.table.SetCursor(min(max(c, 0), n-1))
	}
}

func (m Model) View() string {
	t := ui.Current()
	title := t.Title.Render("Meeting Scheduler")
	content := title + "\n" +
		ui.PanelString(m.form.view(m.focus)) + "\n" +
		ui.PanelString(m.table.View())

	switch m.mode {
	case modeNotice:
		style := t.Error
		if m.notice.Level == ui.LevelWarn {
			style = t.Warn
		}
		content += "\n" + ui.PanelString(style.Render(m.notice.Title)+"\n"+m.notice.Msg+"\n"+t.Muted.Render("press any key"))
	case modeConfirm:
		content += "\n" + ui.PanelString(t.Warn.Render("Confirm Delete")+"\n"+
			"Are you sure you want to delete this meeting? "+t.Muted.Render("[y/N]"))
	default:
		bindings := keys.formHelp()
		switch m.focus {
		case fieldDate:
			bindings = keys.dateHelp()
		case fieldTable:
			bindings = keys.tableHelp()
		}
		content += "\n" + m.help.ShortHelpView(bindings)
	}
	return content
}

// Run starts the interactive program. Every change is persisted as it
// happens, so quitting never loses work.
func Run(coll *schedule.Collection, log logrus.FieldLogger, defaultZone tz.Zone) error {
	p := tea.NewProgram(New(coll, log, defaultZone), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
