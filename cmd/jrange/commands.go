// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangepicker/config"
	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
	"cloudeng.io/rangepicker/picker"
	"cloudeng.io/rangepicker/rangestatus"
	"cloudeng.io/rangepicker/selection"
	"cloudeng.io/rangepicker/tui"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file'"`
	Start  string `subcmd:"start,,'start date, overrides the configuration'"`
	End    string `subcmd:"end,,'end date, overrides the configuration'"`
}

type monthFlags struct {
	CommonFlags
	Padded bool `subcmd:"padded,false,'pad the grid to whole weeks'"`
}

type statusFlags struct {
	CommonFlags
	Months int `subcmd:"months,12,'maximum number of months to display'"`
}

type replayFlags struct {
	CommonFlags
	Journal bool `subcmd:"journal,true,'display the journal of events'"`
}

type commands struct {
	out io.Writer
}

// setup loads the configuration, if any, and creates a logger. The
// returned function must be called to close the logger.
func setup(ctx context.Context, fv *CommonFlags) (context.Context, config.Config, func(), error) {
	var cfg config.Config
	if len(fv.Config) > 0 {
		var err error
		if cfg, err = config.Load(ctx, fv.Config); err != nil {
			return ctx, cfg, nil, err
		}
	}
	if len(fv.Start) > 0 {
		cfg.Start = fv.Start
	}
	if len(fv.End) > 0 {
		cfg.End = fv.End
	}
	lc := fv.LoggingConfig()
	if len(fv.Config) > 0 && len(cfg.Logging.Format) > 0 {
		lc = cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, cfg, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	return ctx, cfg, func() { logger.Close() }, nil
}

func newWidget(ctx context.Context, fv *CommonFlags) (context.Context, *picker.Widget, config.Config, func(), error) {
	ctx, cfg, cleanup, err := setup(ctx, fv)
	if err != nil {
		return ctx, nil, cfg, nil, err
	}
	opts, err := cfg.PickerOptions()
	if err != nil {
		cleanup()
		return ctx, nil, cfg, nil, err
	}
	return newWidgetWithOptions(ctx, opts, cfg, cleanup)
}

func newWidgetWithOptions(ctx context.Context, opts picker.Options, cfg config.Config, cleanup func()) (context.Context, *picker.Widget, config.Config, func(), error) {
	w, err := picker.New(ctx, opts)
	if err != nil {
		cleanup()
		return ctx, nil, cfg, nil, err
	}
	return ctx, w, cfg, cleanup, nil
}

func monthsBetween(from, to jalali.CalendarDate) int {
	return (to.Year*12 + int(to.Month)) - (from.Year*12 + int(from.Month))
}

func (c *commands) month(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*monthFlags)
	ctx, cfg, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	opts, err := cfg.PickerOptions()
	if err != nil {
		cleanup()
		return err
	}
	opts.Grid.Padded = opts.Grid.Padded || fv.Padded
	ctx, w, cfg, cleanup, err := newWidgetWithOptions(ctx, opts, cfg, cleanup)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 1 {
		d, err := jalali.Parse(args[0])
		if err != nil {
			return err
		}
		if _, err := w.Dispatch(ctx, selection.Navigate{Months: monthsBetween(w.View().Cursor, d)}); err != nil {
			return err
		}
	}
	w.ToggleOpen()
	fmt.Fprint(c.out, tui.Render(w.View(), "", cfg.Theme()))
	return nil
}

func (c *commands) status(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*statusFlags)
	if fv.Months < 1 {
		return fmt.Errorf("--months must be at least 1, not %d", fv.Months)
	}
	r, err := jalali.ParseRange(args[0] + ":" + args[1])
	if err != nil {
		return err
	}
	ctx, cfg, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	opts, err := cfg.PickerOptions()
	if err != nil {
		return err
	}
	opts.Grid.Padded = false
	resolver := rangestatus.NewResolver()
	fmt.Fprintf(c.out, "%v: %v (%d days)\n", rangestatus.Summarize(r), r, r.Days())
	n := 0
	for first := range r.Months() {
		if n == fv.Months {
			fmt.Fprintf(c.out, "... truncated after %d months\n", n)
			break
		}
		n++
		g, err := monthgrid.Build(first, opts.Grid)
		if err != nil {
			return err
		}
		st := resolver.Resolve(r, g)
		fmt.Fprintf(c.out, "%v\n", g.Name)
		for i, cell := range g.Cells {
			tag := st.Tag(i)
			if tag == rangestatus.Outside {
				continue
			}
			disabled := ""
			if cell.Disabled {
				disabled = " (disabled)"
			}
			fmt.Fprintf(c.out, "  %v %v%v\n", cell.Date.FormatDigits(opts.Grid.Locale), tag, disabled)
		}
	}
	ctxlog.Logger(ctx).Debug("jrange: status", "range", r.String(), "months", n, "cached", resolver.Len())
	return nil
}

func (c *commands) pick(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*CommonFlags)
	ctx, w, cfg, cleanup, err := newWidget(ctx, fv)
	if err != nil {
		return err
	}
	defer cleanup()
	if err := tui.Run(ctx, w, cfg.Theme(), tea.WithAltScreen()); err != nil {
		return err
	}
	v := w.View()
	fmt.Fprintf(c.out, "%v: %v\n", v.Status.Summary, v.Range)
	return nil
}

func (c *commands) replay(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*replayFlags)
	ctx, w, cfg, cleanup, err := newWidget(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	steps, err := loadScript(ctx, args[0])
	if err != nil {
		return err
	}
	for _, s := range steps {
		s.apply(ctx, w)
	}
	if !w.Open() {
		w.ToggleOpen()
	}
	fmt.Fprint(c.out, tui.Render(w.View(), "", cfg.Theme()))
	if fv.Journal {
		for _, e := range w.Journal() {
			fmt.Fprintln(c.out, e.String())
		}
	}
	return nil
}
