// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"cloudeng.io/rangepicker/jalali"
)

// Colors are the colors used by a Theme. Each may be an ANSI color
// number, eg. "205", or a hex color, eg. "#ff00aa". Empty values use
// the corresponding default.
type Colors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Range     string `yaml:"range"`
	Disabled  string `yaml:"disabled"`
	Text      string `yaml:"text"`
}

// DefaultColors returns the default colors.
func DefaultColors() Colors {
	return Colors{
		Primary:   "#2c7be5",
		Secondary: "#6e84a3",
		Range:     "#d2ddec",
		Disabled:  "#b1c2d9",
		Text:      "#12263f",
	}
}

func (c Colors) merge(d Colors) Colors {
	pick := func(a, b string) string {
		if len(a) == 0 {
			return b
		}
		return a
	}
	return Colors{
		Primary:   pick(c.Primary, d.Primary),
		Secondary: pick(c.Secondary, d.Secondary),
		Range:     pick(c.Range, d.Range),
		Disabled:  pick(c.Disabled, d.Disabled),
		Text:      pick(c.Text, d.Text),
	}
}

// Theme contains the styles used to render a picker.
type Theme struct {
	Header   lipgloss.Style
	Arrow    lipgloss.Style
	Weekday  lipgloss.Style
	Endpoint lipgloss.Style
	InRange  lipgloss.Style
	Outside  lipgloss.Style
	Disabled lipgloss.Style
	Padding  lipgloss.Style
	Focus    lipgloss.Style
	Summary  lipgloss.Style
	Input    lipgloss.Style
	Locale   jalali.Locale
}

// NewTheme returns a Theme using the specified colors and locale.
func NewTheme(c Colors, loc jalali.Locale) Theme {
	c = c.merge(DefaultColors())
	return Theme{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Primary)),
		Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Secondary)),
		Weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Secondary)),
		Endpoint: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(c.Primary)),
		InRange:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)).Background(lipgloss.Color(c.Range)),
		Outside:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Disabled)).Strikethrough(true),
		Padding:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Disabled)).Faint(true),
		Focus:    lipgloss.NewStyle().Reverse(true),
		Summary:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(c.Secondary)),
		Input:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		Locale:   loc,
	}
}

// DefaultTheme returns a Theme using the default colors.
func DefaultTheme() Theme {
	return NewTheme(Colors{}, jalali.Latin)
}
