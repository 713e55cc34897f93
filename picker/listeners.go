// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"context"

	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/selection"
)

// Handler is called with the ID of the day cell that an event refers to.
type Handler func(ctx context.Context, id string) (selection.Outcome, error)

// Listeners is the set of handlers appropriate to the current phase of
// the selection. Handlers that do not apply are nil: when idle, only
// OnActivate is set, when picking the end date only OnHover and OnConfirm
// are set.
type Listeners struct {
	OnActivate Handler
	OnHover    Handler
	OnConfirm  Handler
}

// Listeners returns the handlers for the widget's current phase. The
// returned value should not be retained across events since the phase
// may have changed.
func (w *Widget) Listeners() Listeners {
	if w.state.Phase == selection.Idle {
		return Listeners{OnActivate: w.activate}
	}
	return Listeners{OnHover: w.hover, OnConfirm: w.activate}
}

// disabled returns true if the cell for id is disabled in the displayed
// grid or, for days in other months, if the grid's constraints exclude
// it. Unparseable IDs are left for the reducer to reject.
func (w *Widget) disabled(id string) bool {
	if c, ok := w.grid.Lookup(id); ok {
		return c.Disabled
	}
	d, err := jalali.Parse(id)
	if err != nil {
		return false
	}
	return !w.opts.Grid.Constraints.Include(d)
}

func (w *Widget) activate(ctx context.Context, id string) (selection.Outcome, error) {
	return w.Dispatch(ctx, selection.Activate{ID: id, Disabled: w.disabled(id)})
}

func (w *Widget) hover(ctx context.Context, id string) (selection.Outcome, error) {
	return w.Dispatch(ctx, selection.Hover{ID: id, Disabled: w.disabled(id)})
}
