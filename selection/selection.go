// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package selection implements the state machine used to select a date
// range. Reduce is a pure function from a State and an Event to a new
// State; callers replace their state with its result.
//
// In the Idle phase activating a day starts a new selection with the
// end two days after the start and moves to the PickingEnd phase. While
// picking, hovering over a day moves the end to that day and activating
// or confirming returns to Idle. The endpoints are never reordered, so
// the end may be before the start once the selection is complete.
package selection

import (
	"fmt"

	"cloudeng.io/rangepicker/jalali"
)

// Phase of the state machine.
type Phase int

const (
	Idle Phase = iota
	PickingEnd
)

func (p Phase) String() string {
	if p == PickingEnd {
		return "picking-end"
	}
	return "idle"
}

// State is the complete state of a selection.
type State struct {
	Phase Phase
	Range jalali.Range
	// Cursor is the date whose month is displayed.
	Cursor jalali.CalendarDate
}

// NewState returns an Idle state for r with the cursor at r's start.
func NewState(r jalali.Range) State {
	return State{Phase: Idle, Range: r, Cursor: r.Start}
}

// Event is implemented by all events accepted by Reduce.
type Event interface {
	fmt.Stringer
	event()
}

// Activate is sent when a day cell is clicked or otherwise activated.
type Activate struct {
	ID       string
	Disabled bool
}

// Hover is sent when the pointer, or focus, moves over a day cell.
type Hover struct {
	ID       string
	Disabled bool
}

// Confirm completes the selection of the end date.
type Confirm struct{}

// Navigate moves the cursor by the specified number of months.
type Navigate struct {
	Months int
}

// Reset replaces the range and returns to Idle with the cursor at the
// new start.
type Reset struct {
	Range jalali.Range
}

func (Activate) event() {}
func (Hover) event()    {}
func (Confirm) event()  {}
func (Navigate) event() {}
func (Reset) event()    {}

func (e Activate) String() string { return "activate " + e.ID }
func (e Hover) String() string    { return "hover " + e.ID }
func (Confirm) String() string    { return "confirm" }
func (e Navigate) String() string { return fmt.Sprintf("navigate %+d", e.Months) }
func (e Reset) String() string    { return "reset " + e.Range.String() }

// Reasons reported for events that do not change the state.
const (
	ReasonDisabled    = "disabled"
	ReasonInvalidDate = "invalid-date"
	ReasonIdle        = "idle"
	ReasonUnchanged   = "unchanged"
	ReasonOutOfRange  = "out-of-range"
	ReasonUnknown     = "unknown-event"
)

// Outcome describes the effect of an event.
type Outcome struct {
	Changed bool
	// Reason is set when Changed is false.
	Reason string
}

// IsNoOp returns true if the event did not change the state.
func (o Outcome) IsNoOp() bool {
	return !o.Changed
}

func (o Outcome) String() string {
	if o.Changed {
		return "changed"
	}
	return "no-op: " + o.Reason
}

func noop(reason string) Outcome {
	return Outcome{Reason: reason}
}

var changed = Outcome{Changed: true}

// Reduce applies e to s and returns the resulting state. If the event
// is ignored, the returned state is s and the Outcome describes why.
// Errors are returned for cell IDs that cannot be parsed and for
// navigation beyond the supported range of dates; in both cases the
// returned state is s. Disabled cells are not an error.
func Reduce(s State, e Event) (State, Outcome, error) {
	switch ev := e.(type) {
	case Activate:
		return activate(s, ev)
	case Hover:
		return hover(s, ev)
	case Confirm:
		return confirm(s)
	case Navigate:
		return navigate(s, ev)
	case Reset:
		return reset(s, ev)
	}
	return s, noop(ReasonUnknown), fmt.Errorf("unsupported event: %T", e)
}

func activate(s State, ev Activate) (State, Outcome, error) {
	if ev.Disabled {
		return s, noop(ReasonDisabled), nil
	}
	if s.Phase == PickingEnd {
		return confirm(s)
	}
	start, err := jalali.Parse(ev.ID)
	if err != nil {
		return s, noop(ReasonInvalidDate), err
	}
	end, err := start.AddDays(2)
	if err != nil {
		end = start
	}
	n := s
	n.Phase = PickingEnd
	n.Range = jalali.NewRange(start, end)
	return n, changed, nil
}

func hover(s State, ev Hover) (State, Outcome, error) {
	if ev.Disabled {
		return s, noop(ReasonDisabled), nil
	}
	if s.Phase != PickingEnd {
		return s, noop(ReasonIdle), nil
	}
	end, err := jalali.Parse(ev.ID)
	if err != nil {
		return s, noop(ReasonInvalidDate), err
	}
	if end == s.Range.End {
		return s, noop(ReasonUnchanged), nil
	}
	n := s
	n.Range.End = end
	return n, changed, nil
}

func confirm(s State) (State, Outcome, error) {
	if s.Phase != PickingEnd {
		return s, noop(ReasonIdle), nil
	}
	n := s
	n.Phase = Idle
	return n, changed, nil
}

func navigate(s State, ev Navigate) (State, Outcome, error) {
	if ev.Months == 0 {
		return s, noop(ReasonUnchanged), nil
	}
	cursor, err := s.Cursor.AddMonths(ev.Months)
	if err != nil {
		return s, noop(ReasonOutOfRange), err
	}
	n := s
	n.Cursor = cursor
	return n, changed, nil
}

func reset(s State, ev Reset) (State, Outcome, error) {
	if err := ev.Range.Start.Validate(); err != nil {
		return s, noop(ReasonInvalidDate), err
	}
	if err := ev.Range.End.Validate(); err != nil {
		return s, noop(ReasonInvalidDate), err
	}
	return NewState(ev.Range), changed, nil
}
