// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents a pair of dates, inclusive of Start and End. The
// endpoints are stored exactly as supplied, so End may be before Start;
// Normalized returns the ordered form.
type Range struct {
	Start, End CalendarDate
}

// NewRange returns a Range with the specified endpoints, in the order given.
func NewRange(start, end CalendarDate) Range {
	return Range{Start: start, End: end}
}

// ParseRange parses a range in the format '<start>:<end>', eg.
// '1402/01/01:1402/01/05'. The endpoints are not reordered.
func ParseRange(val string) (Range, error) {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q expected '<start>:<end>'", ErrInvalidDate, val)
	}
	start, err := Parse(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := Parse(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid end: %w", err)
	}
	return Range{Start: start, End: end}, nil
}

// Ascending returns true if End is not before Start.
func (r Range) Ascending() bool {
	return !r.End.Before(r.Start)
}

// Normalized returns the range with the earlier date as Start.
func (r Range) Normalized() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Contains returns true if d is within the normalized range.
func (r Range) Contains(d CalendarDate) bool {
	n := r.Normalized()
	return !d.Before(n.Start) && !d.After(n.End)
}

// Days returns the number of days in the normalized range, including
// both endpoints.
func (r Range) Days() int {
	n := r.Normalized()
	return n.End.DayNumber() - n.Start.DayNumber() + 1
}

// Dates returns an iterator that yields each date in the normalized range.
func (r Range) Dates() iter.Seq[CalendarDate] {
	n := r.Normalized()
	return func(yield func(CalendarDate) bool) {
		for jdn := n.Start.DayNumber(); jdn <= n.End.DayNumber(); jdn++ {
			cd, err := FromDayNumber(jdn)
			if err != nil || !yield(cd) {
				return
			}
		}
	}
}

// Months returns an iterator that yields the first day of each month
// spanned by the normalized range.
func (r Range) Months() iter.Seq[CalendarDate] {
	n := r.Normalized()
	return func(yield func(CalendarDate) bool) {
		last := n.End.FirstOfMonth()
		for m := n.Start.FirstOfMonth(); !m.After(last); {
			if !yield(m) {
				return
			}
			next, err := m.AddMonths(1)
			if err != nil {
				return
			}
			m = next
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}
