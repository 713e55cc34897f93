// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
	"cloudeng.io/rangepicker/picker"
	"cloudeng.io/rangepicker/rangestatus"
)

const cellWidth = 4

func (th Theme) cellStyle(c monthgrid.DayCell, tag rangestatus.Tag) lipgloss.Style {
	switch {
	case !c.InMonth:
		return th.Padding
	case tag.Endpoint():
		return th.Endpoint
	case tag == rangestatus.InRange:
		return th.InRange
	case c.Disabled:
		return th.Disabled
	}
	return th.Outside
}

func pad(s string) string {
	if n := cellWidth - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// RenderGrid renders the month header, weekday names and the weeks of
// the grid in v. The cell whose ID is focus is highlighted.
func RenderGrid(v picker.View, focus string, th Theme) string {
	var out strings.Builder
	g := v.Grid
	width := cellWidth * 7
	title := th.Header.Render(monthgrid.Name(g.Year, g.Month, th.Locale))
	gap := max(width-lipgloss.Width(title)-4, 2)
	out.WriteString(th.Arrow.Render(" <"))
	out.WriteString(strings.Repeat(" ", gap/2))
	out.WriteString(title)
	out.WriteString(strings.Repeat(" ", gap-gap/2))
	out.WriteString(th.Arrow.Render("> "))
	out.WriteString("\n")

	for i := range 7 {
		wd := time.Weekday((int(g.FirstWeekday) + i) % 7)
		out.WriteString(th.Weekday.Render(pad(jalali.WeekdayName(wd, th.Locale))))
	}
	out.WriteString("\n")

	col := 0
	if len(g.Cells) > 0 {
		col = g.Column(0)
		out.WriteString(strings.Repeat(" ", col*cellWidth))
	}
	for i, c := range g.Cells {
		text := jalali.LocalizeDigits(strconv.Itoa(c.Date.Day), th.Locale)
		style := th.cellStyle(c, v.Tag(i))
		if c.ID == focus {
			style = th.Focus.Inherit(style)
			text = "[" + text + "]"
		}
		out.WriteString(style.Render(pad(text)))
		col++
		if col == 7 && i < len(g.Cells)-1 {
			out.WriteString("\n")
			col = 0
		}
	}
	out.WriteString("\n")
	return out.String()
}

// RenderSummary renders the range, its summary label and span.
func RenderSummary(v picker.View, th Theme) string {
	return th.Summary.Render(fmt.Sprintf("%s: %s - %s (%d days, %s)",
		v.Status.Summary,
		v.Range.Start.FormatDigits(th.Locale),
		v.Range.End.FormatDigits(th.Locale),
		v.Status.Span,
		v.Phase))
}

// Render renders the complete picker: the grid, when the overlay is
// open, followed by the summary.
func Render(v picker.View, focus string, th Theme) string {
	var out strings.Builder
	if v.Open {
		out.WriteString(RenderGrid(v, focus, th))
	}
	out.WriteString(RenderSummary(v, th))
	out.WriteString("\n")
	return out.String()
}
