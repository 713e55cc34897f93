// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/selection"
)

// mask lists the characters accepted at each position of a text input,
// an empty entry is a literal '/'.
var mask = [...]string{"01", "01234", "0123456789", "0123456789", "",
	"01", "0123456789", "", "0123", "0123456789"}

// InputWidth is the number of characters in a complete text input.
const InputWidth = len(mask)

// CheckMask returns an error if val cannot be the prefix of an input
// that conforms to the input mask, ie. 'YYYY/MM/DD' with years 0000..1499,
// months 00..19 and days 00..39.
func CheckMask(val string) error {
	val = jalali.NormalizeDigits(val)
	if len(val) > len(mask) {
		return fmt.Errorf("%q is longer than %d characters", val, len(mask))
	}
	for i := 0; i < len(val); i++ {
		c := val[i]
		allowed := mask[i]
		if len(allowed) == 0 {
			if c != '/' {
				return fmt.Errorf("%q: expected '/' at position %d", val, i+1)
			}
			continue
		}
		ok := false
		for j := 0; j < len(allowed); j++ {
			if allowed[j] == c {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%q: unexpected %q at position %d", val, c, i+1)
		}
	}
	return nil
}

// SetStartText sets the start of the range from a text input. Text that
// is not a valid date, or a date excluded by the grid's constraints, is
// ignored and false returned.
func (w *Widget) SetStartText(ctx context.Context, val string) bool {
	d, ok := w.parseText(ctx, "start", val)
	if !ok {
		return false
	}
	n := w.state
	n.Range.Start = d
	return w.applyText(ctx, "start", val, n)
}

// SetEndText sets the end of the range from a text input. Text that is
// not a valid date, a date excluded by the grid's constraints, or a date
// that is not after the start of the range, is ignored and false returned.
func (w *Widget) SetEndText(ctx context.Context, val string) bool {
	d, ok := w.parseText(ctx, "end", val)
	if !ok {
		return false
	}
	if jalali.Compare(d, w.state.Range.Start) != jalali.After {
		w.ignoreText(ctx, "end", val, ReasonNotAfterStart, nil)
		return false
	}
	n := w.state
	n.Range.End = d
	return w.applyText(ctx, "end", val, n)
}

// ReasonNotAfterStart is recorded when an end date entered as text is not
// after the start date.
const ReasonNotAfterStart = "not-after-start"

func (w *Widget) parseText(ctx context.Context, field, val string) (jalali.CalendarDate, bool) {
	d, err := jalali.Parse(val)
	if err != nil {
		w.ignoreText(ctx, field, val, selection.ReasonInvalidDate, err)
		return jalali.CalendarDate{}, false
	}
	if !w.opts.Grid.Constraints.Include(d) {
		w.ignoreText(ctx, field, val, selection.ReasonDisabled, nil)
		return jalali.CalendarDate{}, false
	}
	return d, true
}

func (w *Widget) ignoreText(ctx context.Context, field, val, reason string, err error) {
	w.record(field+" "+val, selection.Outcome{Reason: reason}, err)
	ctxlog.Logger(ctx).Debug("picker: text ignored", "field", field, "text", val, "reason", reason, "error", err)
}

func (w *Widget) applyText(ctx context.Context, field, val string, n selection.State) bool {
	if n == w.state {
		w.record(field+" "+val, selection.Outcome{Reason: selection.ReasonUnchanged}, nil)
		return true
	}
	if err := w.apply(ctx, n, false); err != nil {
		w.ignoreText(ctx, field, val, selection.ReasonInvalidDate, err)
		return false
	}
	w.record(field+" "+val, selection.Outcome{Changed: true}, nil)
	ctxlog.Logger(ctx).Debug("picker: text applied", "field", field, "range", n.Range.String())
	return true
}
