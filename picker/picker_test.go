// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
	"cloudeng.io/rangepicker/picker"
	"cloudeng.io/rangepicker/rangestatus"
	"cloudeng.io/rangepicker/selection"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2023, 3, 21, 10, 0, 0, 0, time.UTC)
}

func newWidget(t *testing.T, start, end string) (context.Context, *picker.Widget, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.Context(context.Background(), logger)
	w, err := picker.New(ctx, picker.Options{Start: start, End: end, Now: fixedNow})
	require.NoError(t, err)
	return ctx, w, out
}

func nr(start, end string) jalali.Range {
	return jalali.NewRange(jalali.MustParse(start), jalali.MustParse(end))
}

func TestNewDefaults(t *testing.T) {
	_, w, _ := newWidget(t, "", "")
	v := w.View()
	require.Equal(t, nr("1402/01/01", "1402/01/01"), v.Range)
	require.Equal(t, "Farvardin 1402", v.MonthName)
	require.Equal(t, selection.Idle, v.Phase)
	require.False(t, v.Open)
	require.Equal(t, picker.DefaultOverlayZIndex, v.ZIndex)

	// Scenario: a single day range.
	require.Equal(t, "same-day", v.Status.Summary.String())
	require.Equal(t, rangestatus.StartAndEnd, v.Tag(0))
	require.Len(t, v.Status.Tags, len(v.Grid.Cells))
	require.Equal(t, 1, v.Status.Counts()[rangestatus.StartAndEnd])

	_, err := picker.New(context.Background(), picker.Options{Start: "1402/13/01"})
	require.ErrorIs(t, err, jalali.ErrInvalidDate)
	_, err = picker.New(context.Background(), picker.Options{Start: "1402/01/01", End: "x"})
	require.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestListeners(t *testing.T) {
	ctx, w, _ := newWidget(t, "1402/01/01", "1402/01/01")

	l := w.Listeners()
	require.NotNil(t, l.OnActivate)
	require.Nil(t, l.OnHover)
	require.Nil(t, l.OnConfirm)

	o, err := l.OnActivate(ctx, "1402/01/05")
	require.NoError(t, err)
	require.True(t, o.Changed)
	v := w.View()
	require.Equal(t, selection.PickingEnd, v.Phase)
	require.Equal(t, nr("1402/01/05", "1402/01/07"), v.Range)

	l = w.Listeners()
	require.Nil(t, l.OnActivate)
	require.NotNil(t, l.OnHover)
	require.NotNil(t, l.OnConfirm)

	_, err = l.OnHover(ctx, "1402/01/03")
	require.NoError(t, err)
	v = w.View()
	require.Equal(t, rangestatus.NeedsNormalization, v.Status.Summary)
	require.Equal(t, rangestatus.InRange, v.Tag(3))
	require.Equal(t, rangestatus.End, v.Tag(2))
	require.Equal(t, rangestatus.Start, v.Tag(4))

	_, err = l.OnConfirm(ctx, "1402/01/03")
	require.NoError(t, err)
	v = w.View()
	require.Equal(t, selection.Idle, v.Phase)
	require.Equal(t, nr("1402/01/05", "1402/01/03"), v.Range)
}

func TestDisabledCells(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := ctxlog.Context(context.Background(),
		slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	w, err := picker.New(ctx, picker.Options{
		Start: "1402/01/01",
		End:   "1402/01/02",
		Grid: monthgrid.Options{
			Padded:      true,
			Constraints: jalali.Constraints{Weekdays: []time.Weekday{time.Friday}},
		},
	})
	require.NoError(t, err)

	// 1402/01/04 is a Friday.
	before := w.View()
	o, err := w.Listeners().OnActivate(ctx, "1402/01/04")
	require.NoError(t, err)
	require.Equal(t, selection.ReasonDisabled, o.Reason)
	require.Equal(t, before.Range, w.View().Range)
	require.Equal(t, selection.Idle, w.View().Phase)

	// Padding cells are disabled.
	o, err = w.Listeners().OnActivate(ctx, "1401/12/27")
	require.NoError(t, err)
	require.Equal(t, selection.ReasonDisabled, o.Reason)

	_, err = w.Listeners().OnActivate(ctx, "1402/01/10")
	require.NoError(t, err)
	o, err = w.Listeners().OnHover(ctx, "1402/01/11")
	require.NoError(t, err)
	require.Equal(t, selection.ReasonDisabled, o.Reason)
	require.Equal(t, nr("1402/01/10", "1402/01/12"), w.View().Range)
	require.Contains(t, out.String(), "picker: event ignored")
}

func TestConstraintsOutsideGrid(t *testing.T) {
	ctx := context.Background()
	w, err := picker.New(ctx, picker.Options{
		Start: "1402/01/01",
		End:   "1402/01/02",
		Grid: monthgrid.Options{
			Constraints: jalali.Constraints{
				Dates: []jalali.CalendarDate{jalali.MustParse("1402/02/13")},
				Max:   jalali.MustParse("1402/03/31"),
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Farvardin 1402", w.View().MonthName)

	// 1402/02/13 is not in the displayed grid.
	o, err := w.Listeners().OnActivate(ctx, "1402/02/13")
	require.NoError(t, err)
	require.Equal(t, selection.ReasonDisabled, o.Reason)
	require.Equal(t, selection.Idle, w.View().Phase)
	require.Equal(t, nr("1402/01/01", "1402/01/02"), w.View().Range)

	require.False(t, w.SetStartText(ctx, "1402/02/13"))
	require.False(t, w.SetEndText(ctx, "1402/04/01"))
	require.Equal(t, nr("1402/01/01", "1402/01/02"), w.View().Range)
	require.True(t, w.SetEndText(ctx, "1402/03/31"))
	require.Equal(t, nr("1402/01/01", "1402/03/31"), w.View().Range)

	var reasons []string
	for _, e := range w.Journal() {
		reasons = append(reasons, e.Outcome.Reason)
	}
	require.Equal(t, []string{
		selection.ReasonDisabled,
		selection.ReasonDisabled,
		selection.ReasonDisabled,
		"",
	}, reasons)

	_, err = w.Listeners().OnActivate(ctx, "1402/02/14")
	require.NoError(t, err)
	o, err = w.Listeners().OnHover(ctx, "1402/04/02")
	require.NoError(t, err)
	require.Equal(t, selection.ReasonDisabled, o.Reason)
	require.Equal(t, nr("1402/02/14", "1402/02/16"), w.View().Range)
}

func TestNavigation(t *testing.T) {
	ctx, w, out := newWidget(t, "1402/01/15", "1402/01/17")
	require.Equal(t, 1, strings.Count(out.String(), "picker: grid rebuilt"))

	require.NoError(t, w.IncreaseMonth(ctx))
	require.NoError(t, w.IncreaseMonth(ctx))
	v := w.View()
	require.Equal(t, jalali.MustParse("1402/03/15"), v.Cursor)
	require.Len(t, v.Grid.Cells, jalali.DaysInMonth(1402, jalali.Khordad))
	require.Equal(t, "Khordad 1402", v.MonthName)
	require.Equal(t, nr("1402/01/15", "1402/01/17"), v.Range)
	require.Equal(t, 3, strings.Count(out.String(), "picker: grid rebuilt"))

	// Events that do not change the month do not rebuild the grid.
	_, err := w.Listeners().OnActivate(ctx, "1402/03/02")
	require.NoError(t, err)
	_, err = w.Listeners().OnHover(ctx, "1402/03/20")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out.String(), "picker: grid rebuilt"))

	require.NoError(t, w.DecreaseMonth(ctx))
	v = w.View()
	require.Equal(t, selection.PickingEnd, v.Phase)
	require.Equal(t, nr("1402/03/02", "1402/03/20"), v.Range)
	require.Equal(t, 4, strings.Count(out.String(), "picker: grid rebuilt"))

	ctx, w, out = newWidget(t, "3177/12/01", "3177/12/01")
	err = w.IncreaseMonth(ctx)
	require.ErrorIs(t, err, jalali.ErrOutOfRange)
	require.Equal(t, jalali.MustParse("3177/12/01"), w.View().Cursor)
	require.Contains(t, out.String(), "picker: event failed")
}

func TestTextInput(t *testing.T) {
	ctx, w, _ := newWidget(t, "1402/01/05", "1402/01/10")

	// Scenario: an invalid month is ignored.
	require.False(t, w.SetStartText(ctx, "1402/13/01"))
	require.Equal(t, nr("1402/01/05", "1402/01/10"), w.View().Range)

	require.True(t, w.SetStartText(ctx, "1402/02/01"))
	require.Equal(t, nr("1402/02/01", "1402/01/10"), w.View().Range)
	require.Equal(t, rangestatus.NeedsNormalization, w.View().Status.Summary)

	require.False(t, w.SetEndText(ctx, "1402/02/01"))
	require.False(t, w.SetEndText(ctx, "1402/01/20"))
	require.False(t, w.SetEndText(ctx, "1402/02/32"))
	require.Equal(t, nr("1402/02/01", "1402/01/10"), w.View().Range)

	require.True(t, w.SetEndText(ctx, "۱۴۰۲/۰۲/۰۲"))
	require.Equal(t, nr("1402/02/01", "1402/02/02"), w.View().Range)
	require.Equal(t, selection.Idle, w.View().Phase)

	entries := w.Journal()
	var reasons []string
	for _, e := range entries {
		reasons = append(reasons, e.Outcome.Reason)
	}
	require.Equal(t, []string{
		selection.ReasonInvalidDate,
		"",
		picker.ReasonNotAfterStart,
		picker.ReasonNotAfterStart,
		selection.ReasonInvalidDate,
		"",
	}, reasons)
}

func TestCheckMask(t *testing.T) {
	for _, tc := range []string{"", "1", "14", "1402/", "1402/01/0", "1402/01/31", "۱۴۰۲/۰۱"} {
		require.NoError(t, picker.CheckMask(tc), tc)
	}
	for _, tc := range []string{"2", "15", "1402-", "1402/2", "1402/01/4", "1402/01/011", "x"} {
		require.Error(t, picker.CheckMask(tc), tc)
	}
	require.Equal(t, 10, picker.InputWidth)
}

func TestSetProps(t *testing.T) {
	ctx, w, _ := newWidget(t, "1402/01/05", "1402/01/10")
	_, err := w.Listeners().OnActivate(ctx, "1402/01/20")
	require.NoError(t, err)
	require.NoError(t, w.IncreaseMonth(ctx))

	require.Error(t, w.SetProps(ctx, "1402/01/01", "1402/13/01"))
	require.Equal(t, selection.PickingEnd, w.View().Phase)

	require.NoError(t, w.SetProps(ctx, "1403/06/01", "1403/06/03"))
	v := w.View()
	require.Equal(t, selection.Idle, v.Phase)
	require.Equal(t, nr("1403/06/01", "1403/06/03"), v.Range)
	require.Equal(t, jalali.MustParse("1403/06/01"), v.Cursor)
	require.Equal(t, "Shahrivar 1403", v.MonthName)
}

func TestOpen(t *testing.T) {
	_, w, _ := newWidget(t, "", "")
	require.False(t, w.Open())
	w.ToggleOpen()
	require.True(t, w.Open())
	require.True(t, w.View().Open)
	w.ToggleOpen()
	require.False(t, w.Open())
}

func TestJournal(t *testing.T) {
	ctx := context.Background()
	w, err := picker.New(ctx, picker.Options{Start: "1402/01/01", End: "1402/01/01", JournalSize: 3})
	require.NoError(t, err)
	require.Empty(t, w.Journal())

	for range 5 {
		require.NoError(t, w.IncreaseMonth(ctx))
	}
	_, err = w.Dispatch(ctx, selection.Confirm{})
	require.NoError(t, err)

	entries := w.Journal()
	require.Len(t, entries, 3)
	require.Equal(t, []int{4, 5, 6}, []int{entries[0].Seq, entries[1].Seq, entries[2].Seq})
	require.Equal(t, "confirm", entries[2].Event)
	require.Equal(t, selection.ReasonIdle, entries[2].Outcome.Reason)
	require.Equal(t, "navigate +1", entries[0].Event)
	require.True(t, entries[0].Outcome.Changed)

	// Journal does not consume entries.
	require.Equal(t, entries, w.Journal())
	require.Contains(t, entries[2].String(), "no-op: idle")
}
