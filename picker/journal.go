// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"

	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/selection"
)

// Entry records an event applied to, or ignored by, a Widget.
type Entry struct {
	Seq     int
	Event   string
	Outcome selection.Outcome
	Err     error
	Phase   selection.Phase
	Range   jalali.Range
}

func (e Entry) String() string {
	s := fmt.Sprintf("%3d %-24s %-28s %-11s %s", e.Seq, e.Event, e.Outcome, e.Phase, e.Range)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (w *Widget) record(event string, o selection.Outcome, err error) {
	w.seq++
	w.journal.Append([]Entry{{
		Seq:     w.seq,
		Event:   event,
		Outcome: o,
		Err:     err,
		Phase:   w.state.Phase,
		Range:   w.state.Range,
	}})
	if over := w.journal.Len() - w.opts.JournalSize; over > 0 {
		w.journal.Head(over)
	}
}

// Journal returns the most recent entries, oldest first.
func (w *Widget) Journal() []Entry {
	entries := w.journal.Head(w.journal.Len())
	w.journal.Append(entries)
	return entries
}
