// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/rangepicker/picker"
	"cloudeng.io/rangepicker/selection"
)

// step is a single line of a replay script.
type step struct {
	line int
	op   string
	args []string
}

// number of arguments required by each operation.
var operations = map[string]int{
	"activate": 1,
	"hover":    1,
	"confirm":  0,
	"next":     0,
	"prev":     0,
	"start":    1,
	"end":      1,
	"reset":    2,
	"open":     0,
}

// parseScript parses a replay script, one operation per line. Blank
// lines and lines starting with '#' are ignored. All syntax errors are
// reported.
func parseScript(script []byte) ([]step, error) {
	var (
		steps []step
		errs  errors.M
	)
	sc := bufio.NewScanner(bytes.NewReader(script))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		want, ok := operations[fields[0]]
		if !ok {
			errs.Append(fmt.Errorf("line %d: unknown operation %q", n, fields[0]))
			continue
		}
		if got := len(fields) - 1; got != want {
			errs.Append(fmt.Errorf("line %d: %v: expected %d argument(s), got %d", n, fields[0], want, got))
			continue
		}
		steps = append(steps, step{line: n, op: fields[0], args: fields[1:]})
	}
	errs.Append(sc.Err())
	return steps, errs.Err()
}

func loadScript(ctx context.Context, name string) ([]step, error) {
	script, err := file.FSReadFile(ctx, name)
	if err != nil {
		return nil, err
	}
	steps, err := parseScript(script)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return steps, nil
}

// apply applies the step to w. Events that are ignored or that fail are
// recorded in w's journal and are not treated as errors.
func (s step) apply(ctx context.Context, w *picker.Widget) {
	ctx = ctxlog.ContextWith(ctx, "line", s.line)
	l := w.Listeners()
	switch s.op {
	case "activate":
		h := l.OnActivate
		if h == nil {
			h = l.OnConfirm
		}
		h(ctx, s.args[0]) //nolint:errcheck
	case "hover":
		if l.OnHover != nil {
			l.OnHover(ctx, s.args[0]) //nolint:errcheck
			return
		}
		w.Dispatch(ctx, selection.Hover{ID: s.args[0]}) //nolint:errcheck
	case "confirm":
		w.Dispatch(ctx, selection.Confirm{}) //nolint:errcheck
	case "next":
		w.IncreaseMonth(ctx) //nolint:errcheck
	case "prev":
		w.DecreaseMonth(ctx) //nolint:errcheck
	case "start":
		w.SetStartText(ctx, s.args[0])
	case "end":
		w.SetEndText(ctx, s.args[0])
	case "reset":
		w.SetProps(ctx, s.args[0], s.args[1]) //nolint:errcheck
	case "open":
		w.ToggleOpen()
	}
}
