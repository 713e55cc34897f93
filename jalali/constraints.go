// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"slices"
	"strings"
	"time"
)

// Constraints represents constraints on the dates that may be selected,
// such as weekends, holidays or dates outside of a booking window.
// The zero value includes all dates.
type Constraints struct {
	Weekdays []time.Weekday // Exclude these days of the week.
	Dates    []CalendarDate // Exclude these dates.
	Min      CalendarDate   // If set, exclude dates before Min.
	Max      CalendarDate   // If set, exclude dates after Max.
}

// Include returns true if the given date satisfies the constraints.
func (dc Constraints) Include(d CalendarDate) bool {
	if !dc.Min.IsZero() && d.Before(dc.Min) {
		return false
	}
	if !dc.Max.IsZero() && d.After(dc.Max) {
		return false
	}
	if slices.Contains(dc.Dates, d) {
		return false
	}
	if len(dc.Weekdays) > 0 && slices.Contains(dc.Weekdays, d.Weekday()) {
		return false
	}
	return true
}

// Empty returns true if no constraints are specified.
func (dc Constraints) Empty() bool {
	return len(dc.Weekdays) == 0 && len(dc.Dates) == 0 && dc.Min.IsZero() && dc.Max.IsZero()
}

func (dc Constraints) String() string {
	if dc.Empty() {
		return "everyday"
	}
	var out strings.Builder
	if len(dc.Weekdays) > 0 {
		out.WriteString("excluding weekdays:")
		for _, wd := range dc.Weekdays {
			out.WriteString(" ")
			out.WriteString(wd.String())
		}
	}
	if len(dc.Dates) > 0 {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
		out.WriteString("excluding dates:")
		for _, d := range dc.Dates {
			out.WriteString(" ")
			out.WriteString(d.Format())
		}
	}
	if !dc.Min.IsZero() || !dc.Max.IsZero() {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
		out.WriteString("within ")
		if dc.Min.IsZero() {
			out.WriteString("*")
		} else {
			out.WriteString(dc.Min.Format())
		}
		out.WriteString(":")
		if dc.Max.IsZero() {
			out.WriteString("*")
		} else {
			out.WriteString(dc.Max.Format())
		}
	}
	return out.String()
}
