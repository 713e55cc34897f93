// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration for a date-range picker.
// An example configuration is:
//
//	start: 1402/01/05
//	end: 1402/01/10
//	padded: true
//	first_weekday: saturday
//	locale: persian
//	constraints:
//	  weekdays: [friday]
//	  dates: [1402/01/13]
//	  min: 1402/01/01
//	  max: 1402/12/29
//	theme:
//	  primary: "#2c7be5"
//	logging:
//	  level: 3
//	  format: text
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
	"cloudeng.io/rangepicker/picker"
	"cloudeng.io/rangepicker/tui"
)

// Config represents the configuration of a picker.
type Config struct {
	Start         string                `yaml:"start" cmd:"initial start date, YYYY/MM/DD, today if not set"`
	End           string                `yaml:"end" cmd:"initial end date, YYYY/MM/DD, today if not set"`
	Padded        bool                  `yaml:"padded" cmd:"pad month grids to whole weeks"`
	FirstWeekday  Weekday               `yaml:"first_weekday" cmd:"first day of the week, saturday if not set"`
	Locale        string                `yaml:"locale" cmd:"latin or persian"`
	OverlayZIndex int                   `yaml:"overlay_z_index" cmd:"stacking order of the overlay"`
	JournalSize   int                   `yaml:"journal_size" cmd:"number of events retained in the journal"`
	Constraints   Constraints           `yaml:"constraints" cmd:"days that may not be selected"`
	Theme         tui.Colors            `yaml:"theme" cmd:"colors used for display"`
	Logging       cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

// Constraints represents the days that may not be selected.
type Constraints struct {
	Weekdays []Weekday `yaml:"weekdays" cmd:"days of the week to exclude"`
	Dates    []string  `yaml:"dates" cmd:"dates to exclude"`
	Min      string    `yaml:"min" cmd:"earliest selectable date"`
	Max      string    `yaml:"max" cmd:"latest selectable date"`
}

// Weekday is a time.Weekday that is specified in YAML by name, eg.
// 'friday' or 'Fri'.
type Weekday struct {
	time.Weekday
	Set bool
}

var weekdays = map[string]time.Weekday{}

func init() {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		weekdays[name] = wd
		weekdays[name[:3]] = wd
	}
}

// ParseWeekday parses the full or three letter name of a weekday.
func ParseWeekday(val string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(val))]
	if !ok {
		return 0, fmt.Errorf("invalid weekday: %q", val)
	}
	return wd, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Weekday) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: weekday must be a scalar", value.Line)
	}
	wd, err := ParseWeekday(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	w.Weekday, w.Set = wd, true
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (w Weekday) MarshalYAML() (any, error) {
	return strings.ToLower(w.Weekday.String()), nil
}

// Parse parses a YAML configuration and validates it.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Load reads and parses the named configuration file. The file is read
// using file.FSReadFile and hence may be read from a filesystem stored
// in ctx.
func Load(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

func parseOptional(field, val string, errs *errors.M) jalali.CalendarDate {
	if len(val) == 0 {
		return jalali.CalendarDate{}
	}
	d, err := jalali.Parse(val)
	if err != nil {
		errs.Append(fmt.Errorf("%v: %w", field, err))
	}
	return d
}

// locale returns the configured locale.
func (c Config) locale() (jalali.Locale, error) {
	switch strings.ToLower(c.Locale) {
	case "", "latin":
		return jalali.Latin, nil
	case "persian", "fa":
		return jalali.Persian, nil
	}
	return jalali.Latin, fmt.Errorf("locale: unsupported locale %q", c.Locale)
}

func (c Config) constraints(errs *errors.M) jalali.Constraints {
	var jc jalali.Constraints
	for _, wd := range c.Constraints.Weekdays {
		jc.Weekdays = append(jc.Weekdays, wd.Weekday)
	}
	for i, d := range c.Constraints.Dates {
		if cd := parseOptional(fmt.Sprintf("constraints.dates[%d]", i), d, errs); !cd.IsZero() {
			jc.Dates = append(jc.Dates, cd)
		}
	}
	jc.Min = parseOptional("constraints.min", c.Constraints.Min, errs)
	jc.Max = parseOptional("constraints.max", c.Constraints.Max, errs)
	if !jc.Min.IsZero() && !jc.Max.IsZero() && jc.Max.Before(jc.Min) {
		errs.Append(fmt.Errorf("constraints: max %v is before min %v", jc.Max, jc.Min))
	}
	return jc
}

// Validate returns an error describing every problem with the
// configuration.
func (c Config) Validate() error {
	_, err := c.PickerOptions()
	return err
}

// PickerOptions returns the picker.Options represented by the
// configuration. An end date before the start is allowed.
func (c Config) PickerOptions() (picker.Options, error) {
	var errs errors.M
	parseOptional("start", c.Start, &errs)
	parseOptional("end", c.End, &errs)
	loc, err := c.locale()
	errs.Append(err)
	jc := c.constraints(&errs)
	if c.OverlayZIndex < 0 {
		errs.Append(fmt.Errorf("overlay_z_index: must not be negative: %d", c.OverlayZIndex))
	}
	if c.JournalSize < 0 {
		errs.Append(fmt.Errorf("journal_size: must not be negative: %d", c.JournalSize))
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs.Append(fmt.Errorf("logging.format: unknown log format %q", c.Logging.Format))
	}
	if err := errs.Err(); err != nil {
		return picker.Options{}, err
	}
	grid := monthgrid.Options{
		Padded:      c.Padded,
		Constraints: jc,
		Locale:      loc,
	}
	if c.FirstWeekday.Set {
		grid = grid.WithWeekStart(c.FirstWeekday.Weekday)
	}
	return picker.Options{
		Start:         c.Start,
		End:           c.End,
		Grid:          grid,
		JournalSize:   c.JournalSize,
		OverlayZIndex: c.OverlayZIndex,
	}, nil
}

// Theme returns the tui.Theme represented by the configuration.
func (c Config) Theme() tui.Theme {
	loc, _ := c.locale()
	return tui.NewTheme(c.Theme, loc)
}
