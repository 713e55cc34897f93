// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Usage of jrange:
//
//	jrange month [date]
//	jrange status <start> <end>
//	jrange pick
//	jrange replay <script>
//
// jrange displays and selects ranges of dates in the Jalali calendar.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: jrange
summary: display and select ranges of dates in the Jalali calendar
commands:
  - name: month
    summary: display the grid for a month, with the configured range highlighted
    arguments:
      - "[date]"
  - name: status
    summary: display the status of every day in a range
    arguments:
      - <start>
      - <end>
  - name: pick
    summary: select a range interactively
  - name: replay
    summary: apply a script of events to a picker and display the result
    arguments:
      - <script>
`

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{out: out}
	cmdSet.Set("month").MustRunnerAndFlags(c.month,
		subcmd.MustRegisteredFlagSet(&monthFlags{}))
	cmdSet.Set("status").MustRunnerAndFlags(c.status,
		subcmd.MustRegisteredFlagSet(&statusFlags{}))
	cmdSet.Set("pick").MustRunnerAndFlags(c.pick,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("replay").MustRunnerAndFlags(c.replay,
		subcmd.MustRegisteredFlagSet(&replayFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}
