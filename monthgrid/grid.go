// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package monthgrid builds the grid of day cells displayed for a single
// Jalali month, optionally padded to whole weeks with days from the
// adjacent months.
package monthgrid

import (
	"fmt"
	"iter"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/rangepicker/jalali"
)

// DayCell represents a single day in a month grid.
type DayCell struct {
	Date jalali.CalendarDate
	// InMonth is false for padding cells taken from the adjacent months.
	InMonth bool
	// Disabled is true for padding cells and for days excluded by
	// the grid's constraints.
	Disabled bool
	// ID is the canonical form of Date and identifies the cell in events.
	ID string
}

// Grid represents the days of a month in calendar order.
type Grid struct {
	Year  int
	Month jalali.Month
	Name  string
	Cells []DayCell
	// Offset is the index of the first in-month cell.
	Offset int
	// FirstWeekday is the day of the week of the grid's first column.
	FirstWeekday time.Weekday
}

// Options controls how a Grid is built. Weeks start on Saturday unless
// another day is set with WithWeekStart.
type Options struct {
	// Padded pads the grid to whole weeks.
	Padded bool
	// Constraints are used to disable in-month days.
	Constraints jalali.Constraints
	// Locale is used for the grid's name.
	Locale jalali.Locale

	firstWeekday time.Weekday
	weekStartSet bool
}

// WeekStart returns the first day of the week specified by the options.
func (o Options) WeekStart() time.Weekday {
	if !o.weekStartSet {
		return time.Saturday
	}
	return o.firstWeekday
}

// WithWeekStart returns a copy of the options with the first day of
// the week set to wd.
func (o Options) WithWeekStart(wd time.Weekday) Options {
	o.firstWeekday = wd
	o.weekStartSet = true
	return o
}

// Name returns the display name of the month, eg. 'Farvardin 1402' or
// 'فروردین ۱۴۰۲'.
func Name(year int, month jalali.Month, loc jalali.Locale) string {
	return jalali.LocalizeDigits(fmt.Sprintf("%s %d", month.Name(loc), year), loc)
}

// Build returns the grid for the month containing d; only the year and
// month of d are used. An invalid date results in an error and an
// empty Grid.
func Build(d jalali.CalendarDate, opts Options) (Grid, error) {
	first := d.FirstOfMonth()
	var errs errors.M
	errs.Append(first.Validate())
	if wd := opts.WeekStart(); wd < time.Sunday || wd > time.Saturday {
		errs.Append(fmt.Errorf("invalid first weekday: %d", int(wd)))
	}
	if err := errs.Err(); err != nil {
		return Grid{}, err
	}

	n := jalali.DaysInMonth(first.Year, first.Month)
	g := Grid{
		Year:  first.Year,
		Month: first.Month,
		Name:  Name(first.Year, first.Month, opts.Locale),
		Cells: make([]DayCell, 0, n+12),

		FirstWeekday: opts.WeekStart(),
	}

	if opts.Padded {
		lead := (int(first.Weekday()) - int(opts.WeekStart()) + 7) % 7
		for i := lead; i > 0; i-- {
			if pd, err := first.AddDays(-i); err == nil {
				g.Cells = append(g.Cells, padding(pd))
			}
		}
	}
	g.Offset = len(g.Cells)

	for day := 1; day <= n; day++ {
		cd := jalali.CalendarDate{Year: first.Year, Month: first.Month, Day: day}
		g.Cells = append(g.Cells, DayCell{
			Date:     cd,
			InMonth:  true,
			Disabled: !opts.Constraints.Include(cd),
			ID:       cd.Format(),
		})
	}

	if opts.Padded {
		last := first.LastOfMonth()
		trail := (int(opts.WeekStart()) + 6 - int(last.Weekday()) + 7) % 7
		for i := 1; i <= trail; i++ {
			if pd, err := last.AddDays(i); err == nil {
				g.Cells = append(g.Cells, padding(pd))
			}
		}
	}
	return g, nil
}

func padding(cd jalali.CalendarDate) DayCell {
	return DayCell{Date: cd, Disabled: true, ID: cd.Format()}
}

// Lookup returns the cell with the specified ID.
func (g Grid) Lookup(id string) (DayCell, bool) {
	for _, c := range g.Cells {
		if c.ID == id {
			return c, true
		}
	}
	return DayCell{}, false
}

// Contains returns true if d is one of the grid's in-month days.
func (g Grid) Contains(d jalali.CalendarDate) bool {
	return d.Year == g.Year && d.Month == g.Month
}

// InMonth returns an iterator over the in-month cells of the grid.
func (g Grid) InMonth() iter.Seq[DayCell] {
	return func(yield func(DayCell) bool) {
		for _, c := range g.Cells {
			if c.InMonth && !yield(c) {
				return
			}
		}
	}
}

// Days returns the number of in-month cells.
func (g Grid) Days() int {
	return jalali.DaysInMonth(g.Year, g.Month)
}

// Column returns the column, 0 to 6, in which cell i is displayed.
func (g Grid) Column(i int) int {
	if i < 0 || i >= len(g.Cells) {
		return -1
	}
	return (int(g.Cells[i].Date.Weekday()) - int(g.FirstWeekday) + 7) % 7
}

// Weeks returns the grid's cells split into rows of 7. For an unpadded
// grid the first row starts with the first day of the month and the last
// row may be short.
func (g Grid) Weeks() [][]DayCell {
	var rows [][]DayCell
	for i := 0; i < len(g.Cells); i += 7 {
		rows = append(rows, g.Cells[i:min(i+7, len(g.Cells))])
	}
	return rows
}

// IsZero returns true for the empty Grid.
func (g Grid) IsZero() bool {
	return g.Year == 0 && len(g.Cells) == 0
}
