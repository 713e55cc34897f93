// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rangestatus classifies the days of a month grid relative to
// a selected date range.
package rangestatus

import (
	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
)

// Tag is the classification of a single day relative to a range.
type Tag int

const (
	Outside Tag = iota
	Start
	End
	StartAndEnd
	InRange
)

func (t Tag) String() string {
	switch t {
	case Start:
		return "start"
	case End:
		return "end"
	case StartAndEnd:
		return "start-and-end"
	case InRange:
		return "in-range"
	default:
		return "outside"
	}
}

// Endpoint returns true for Start, End and StartAndEnd.
func (t Tag) Endpoint() bool {
	return t == Start || t == End || t == StartAndEnd
}

// Summary describes the shape of a range as a whole.
type Summary int

const (
	// SameDay is used when the start and end are the same day.
	SameDay Summary = iota
	// Ascending is used when the end is after the start.
	Ascending
	// NeedsNormalization is used when the end is before the start. The
	// endpoints are never swapped, the condition is reported instead.
	NeedsNormalization
)

func (s Summary) String() string {
	switch s {
	case SameDay:
		return "same-day"
	case Ascending:
		return "ascending"
	default:
		return "needs-normalization"
	}
}

// Status is the classification of every cell in a grid.
type Status struct {
	// Tags is aligned with the grid's cells.
	Tags    []Tag
	Summary Summary
	// Span is the number of days in the normalized range, including
	// both endpoints.
	Span int
}

// Classify returns the tag for d relative to r. Every date receives
// exactly one tag.
func Classify(r jalali.Range, d jalali.CalendarDate) Tag {
	switch {
	case d == r.Start && d == r.End:
		return StartAndEnd
	case d == r.Start:
		return Start
	case d == r.End:
		return End
	}
	n := r.Normalized()
	if d.After(n.Start) && d.Before(n.End) {
		return InRange
	}
	return Outside
}

// Summarize returns the summary label for r.
func Summarize(r jalali.Range) Summary {
	switch jalali.Compare(r.End, r.Start) {
	case jalali.Same:
		return SameDay
	case jalali.After:
		return Ascending
	default:
		return NeedsNormalization
	}
}

// Resolve classifies every cell of g, including padding cells, relative
// to r.
func Resolve(r jalali.Range, g monthgrid.Grid) Status {
	st := Status{
		Tags:    make([]Tag, len(g.Cells)),
		Summary: Summarize(r),
		Span:    r.Days(),
	}
	for i, c := range g.Cells {
		st.Tags[i] = Classify(r, c.Date)
	}
	return st
}

// Tag returns the tag for the cell with the specified index, or Outside
// if the index is out of range.
func (s Status) Tag(i int) Tag {
	if i < 0 || i >= len(s.Tags) {
		return Outside
	}
	return s.Tags[i]
}

// Counts returns the number of cells with each tag.
func (s Status) Counts() map[Tag]int {
	counts := map[Tag]int{}
	for _, t := range s.Tags {
		counts[t]++
	}
	return counts
}
