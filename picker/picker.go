// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides the controller for an interactive Jalali
// date-range picker. A Widget owns the selection state, the grid for the
// displayed month and its range status; rendering layers display the
// View it returns and feed user input back via the handlers returned by
// Listeners, the month navigation methods and the text input methods.
//
// A Widget is not safe for concurrent use.
package picker

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/algo/container/circular"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
	"cloudeng.io/rangepicker/rangestatus"
	"cloudeng.io/rangepicker/selection"
)

// DefaultJournalSize is the number of journal entries retained when
// Options.JournalSize is not set.
const DefaultJournalSize = 64

// DefaultOverlayZIndex is the stacking order of the overlay when
// Options.OverlayZIndex is not set.
const DefaultOverlayZIndex = 9999

// Options configures a Widget.
type Options struct {
	// Start and End are the initial endpoints in YYYY/MM/DD form,
	// today if empty.
	Start, End string
	// Now returns the current time, time.Now if nil.
	Now func() time.Time
	// Location is used to determine today's date, jalali.Tehran if nil.
	Location *time.Location
	// Grid controls how month grids are built.
	Grid monthgrid.Options
	// JournalSize is the number of events retained by the journal.
	JournalSize int
	// OverlayZIndex is carried for rendering layers that stack the
	// picker above other content.
	OverlayZIndex int
	// Resolver, if set, is used to memoize range status computations
	// and may be shared between widgets.
	Resolver *rangestatus.Resolver
}

// Widget is the controller for a date-range picker.
type Widget struct {
	opts     Options
	state    selection.State
	grid     monthgrid.Grid
	status   rangestatus.Status
	resolver *rangestatus.Resolver
	open     bool
	journal  *circular.Buffer[Entry]
	seq      int
}

// View is a snapshot of everything needed to render the widget.
type View struct {
	Grid      monthgrid.Grid
	Status    rangestatus.Status
	MonthName string
	Phase     selection.Phase
	Range     jalali.Range
	Cursor    jalali.CalendarDate
	Open      bool
	ZIndex    int
}

// Tag returns the tag of the i'th cell.
func (v View) Tag(i int) rangestatus.Tag {
	return v.Status.Tag(i)
}

// New creates a new Widget. Invalid initial dates result in an error.
func New(ctx context.Context, opts Options) (*Widget, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = jalali.Tehran
	}
	if opts.JournalSize <= 0 {
		opts.JournalSize = DefaultJournalSize
	}
	if opts.OverlayZIndex == 0 {
		opts.OverlayZIndex = DefaultOverlayZIndex
	}
	if opts.Resolver == nil {
		opts.Resolver = rangestatus.NewResolver()
	}
	r, err := opts.initialRange()
	if err != nil {
		return nil, err
	}
	w := &Widget{
		opts:     opts,
		resolver: opts.Resolver,
		journal:  circular.NewBuffer[Entry](opts.JournalSize),
	}
	if err := w.apply(ctx, selection.NewState(r), true); err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Debug("picker: created", "range", r.String(), "grid", w.grid.Name)
	return w, nil
}

func (o Options) parse(val string) (jalali.CalendarDate, error) {
	if len(val) == 0 {
		return jalali.OnDay(o.Now(), o.Location), nil
	}
	return jalali.Parse(val)
}

func (o Options) initialRange() (jalali.Range, error) {
	start, err := o.parse(o.Start)
	if err != nil {
		return jalali.Range{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := o.parse(o.End)
	if err != nil {
		return jalali.Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	return jalali.NewRange(start, end), nil
}

// apply replaces the widget's state, rebuilding the grid only when the
// displayed month changes.
func (w *Widget) apply(ctx context.Context, n selection.State, force bool) error {
	if force || !n.Cursor.SameMonth(w.state.Cursor) {
		g, err := monthgrid.Build(n.Cursor, w.opts.Grid)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("picker: grid rebuilt", "month", g.Name)
		w.grid = g
	}
	w.state = n
	w.status = w.resolver.Resolve(n.Range, w.grid)
	return nil
}

// View returns a snapshot of the widget.
func (w *Widget) View() View {
	return View{
		Grid:      w.grid,
		Status:    w.status,
		MonthName: w.grid.Name,
		Phase:     w.state.Phase,
		Range:     w.state.Range,
		Cursor:    w.state.Cursor,
		Open:      w.open,
		ZIndex:    w.opts.OverlayZIndex,
	}
}

// State returns the widget's current selection state.
func (w *Widget) State() selection.State {
	return w.state
}

// Dispatch applies e to the widget's state. Events that are ignored, or
// that fail, leave the state unchanged.
func (w *Widget) Dispatch(ctx context.Context, e selection.Event) (selection.Outcome, error) {
	logger := ctxlog.Logger(ctx)
	n, o, err := selection.Reduce(w.state, e)
	if err == nil && o.Changed {
		err = w.apply(ctx, n, false)
		if err != nil {
			o = selection.Outcome{Reason: selection.ReasonOutOfRange}
		}
	}
	w.record(e.String(), o, err)
	switch {
	case err != nil:
		logger.Info("picker: event failed", "event", e.String(), "reason", o.Reason, "error", err)
	case o.IsNoOp():
		logger.Debug("picker: event ignored", "event", e.String(), "reason", o.Reason)
	default:
		logger.Debug("picker: event applied", "event", e.String(), "phase", w.state.Phase.String(), "range", w.state.Range.String())
	}
	return o, err
}

// IncreaseMonth displays the next month.
func (w *Widget) IncreaseMonth(ctx context.Context) error {
	_, err := w.Dispatch(ctx, selection.Navigate{Months: 1})
	return err
}

// DecreaseMonth displays the previous month.
func (w *Widget) DecreaseMonth(ctx context.Context) error {
	_, err := w.Dispatch(ctx, selection.Navigate{Months: -1})
	return err
}

// SetProps replaces the selected range, as happens when the widget's
// initial values are changed externally. Invalid dates result in an error
// and the state is unchanged.
func (w *Widget) SetProps(ctx context.Context, start, end string) error {
	o := w.opts
	o.Start, o.End = start, end
	r, err := o.initialRange()
	if err != nil {
		w.record(fmt.Sprintf("props %q %q", start, end), selection.Outcome{Reason: selection.ReasonInvalidDate}, err)
		ctxlog.Logger(ctx).Info("picker: invalid props", "start", start, "end", end, "error", err)
		return err
	}
	_, err = w.Dispatch(ctx, selection.Reset{Range: r})
	return err
}

// ToggleOpen opens or closes the overlay containing the grid.
func (w *Widget) ToggleOpen() {
	w.open = !w.open
}

// Open returns true if the overlay is open.
func (w *Widget) Open() bool {
	return w.open
}
