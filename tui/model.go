// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tui provides an interactive terminal rendering of a
// picker.Widget.
package tui

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cloudeng.io/rangepicker/picker"
	"cloudeng.io/rangepicker/selection"
)

type editing int

const (
	notEditing editing = iota
	editingStart
	editingEnd
)

// Model is a bubbletea model for a picker.Widget. The arrow keys move
// the focus, which also moves the end of the range while it is being
// picked, enter or space activate the focused day, pgup/pgdown or '<'
// and '>' change month, 's' and 'e' edit the start and end as text, 'o'
// opens and closes the grid and 'q' quits.
type Model struct {
	ctx     context.Context
	widget  *picker.Widget
	theme   Theme
	focus   int
	input   textinput.Model
	editing editing
	message string
}

// NewModel returns a Model for w. The widget's overlay is opened if
// it is closed.
func NewModel(ctx context.Context, w *picker.Widget, th Theme) *Model {
	if !w.Open() {
		w.ToggleOpen()
	}
	ti := textinput.New()
	ti.CharLimit = picker.InputWidth
	ti.Placeholder = "YYYY/MM/DD"
	ti.Validate = picker.CheckMask
	m := &Model{
		ctx:    ctx,
		widget: w,
		theme:  th,
		input:  ti,
	}
	m.focusOn(w.View().Range.Start.Day)
	return m
}

// Focus returns the ID of the focused cell.
func (m *Model) Focus() string {
	cells := m.widget.View().Grid.Cells
	if m.focus < 0 || m.focus >= len(cells) {
		return ""
	}
	return cells[m.focus].ID
}

// Message returns the most recent status message.
func (m *Model) Message() string {
	return m.message
}

// Input returns the text being edited, if any.
func (m *Model) Input() string {
	return m.input.Value()
}

// focusOn focuses the in-month cell for day, or the month's last day.
func (m *Model) focusOn(day int) {
	g := m.widget.View().Grid
	m.focus = g.Offset + min(max(day, 1), g.Days()) - 1
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing != notEditing {
		return m.updateInput(km)
	}
	switch km.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-7)
	case "down", "j":
		m.move(7)
	case "enter", " ":
		m.activate()
	case "pgup", "<":
		m.navigate(m.widget.DecreaseMonth)
	case "pgdown", ">":
		m.navigate(m.widget.IncreaseMonth)
	case "o":
		m.widget.ToggleOpen()
	case "s", "e":
		return m, m.startEditing(km.String() == "s")
	}
	return m, nil
}

func (m *Model) move(n int) {
	cells := m.widget.View().Grid.Cells
	next := min(max(m.focus+n, 0), len(cells)-1)
	if next == m.focus {
		return
	}
	m.focus = next
	if l := m.widget.Listeners(); l.OnHover != nil {
		m.report(l.OnHover(m.ctx, cells[next].ID))
	}
}

func (m *Model) activate() {
	id := m.Focus()
	l := m.widget.Listeners()
	if l.OnActivate != nil {
		m.report(l.OnActivate(m.ctx, id))
		return
	}
	m.report(l.OnConfirm(m.ctx, id))
}

func (m *Model) navigate(fn func(context.Context) error) {
	day := 1
	if cells := m.widget.View().Grid.Cells; m.focus >= 0 && m.focus < len(cells) {
		day = cells[m.focus].Date.Day
	}
	if err := fn(m.ctx); err != nil {
		m.message = err.Error()
		return
	}
	m.message = ""
	m.focusOn(day)
}

func (m *Model) report(o selection.Outcome, err error) {
	switch {
	case err != nil:
		m.message = err.Error()
	case o.IsNoOp() && o.Reason == selection.ReasonDisabled:
		m.message = "that day is not available"
	default:
		m.message = ""
	}
}

func (m *Model) startEditing(start bool) tea.Cmd {
	r := m.widget.View().Range
	m.editing = editingEnd
	m.input.Prompt = "end: "
	m.input.SetValue(r.End.Format())
	if start {
		m.editing = editingStart
		m.input.Prompt = "start: "
		m.input.SetValue(r.Start.Format())
	}
	return m.input.Focus()
}

func (m *Model) updateInput(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		if m.input.Err != nil {
			m.message = m.input.Err.Error()
			return m, nil
		}
		val := m.input.Value()
		var ok bool
		if m.editing == editingStart {
			ok = m.widget.SetStartText(m.ctx, val)
		} else {
			ok = m.widget.SetEndText(m.ctx, val)
		}
		m.message = ""
		if !ok {
			m.message = "ignored " + val
		}
		m.stopEditing()
		return m, nil
	}
	prev, pos := m.input.Value(), m.input.Position()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km)
	// textinput records mask violations in Err but keeps the runes;
	// deletions are always allowed.
	if val := m.input.Value(); picker.CheckMask(val) != nil && utf8.RuneCountInString(val) >= utf8.RuneCountInString(prev) {
		m.input.SetValue(prev)
		m.input.SetCursor(pos)
	}
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = notEditing
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) View() string {
	var out strings.Builder
	out.WriteString(Render(m.widget.View(), m.Focus(), m.theme))
	if m.editing != notEditing {
		out.WriteString(m.theme.Input.Render(m.input.View()))
		out.WriteString("\n")
	}
	if len(m.message) > 0 {
		out.WriteString(m.message)
		out.WriteString("\n")
	}
	return out.String()
}

// Run runs an interactive program for w until the user quits or ctx
// is canceled.
func Run(ctx context.Context, w *picker.Widget, th Theme, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(NewModel(ctx, w, th), opts...).Run()
	return err
}
