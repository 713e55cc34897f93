// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	toASCII = runes.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	})
	toPersian = runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	})
)

// NormalizeDigits replaces Persian and Arabic-Indic digits with their
// ASCII equivalents.
func NormalizeDigits(s string) string {
	out, _, err := transform.String(toASCII, s)
	if err != nil {
		return s
	}
	return out
}

// LocalizeDigits replaces ASCII digits with those of the given locale.
func LocalizeDigits(s string, loc Locale) string {
	if loc != Persian {
		return s
	}
	out, _, err := transform.String(toPersian, s)
	if err != nil {
		return s
	}
	return out
}
