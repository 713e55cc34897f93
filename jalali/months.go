// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, 1 (Farvardin) to 12 (Esfand).
type Month int

const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

// Locale selects the script used for month names and digits.
type Locale int

const (
	// Latin uses transliterated month names and ASCII digits.
	Latin Locale = iota
	// Persian uses Persian month names and Persian digits.
	Persian
)

var (
	latinMonths = []string{"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
		"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand"}
	persianMonths = []string{"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
		"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند"}

	// Saturday is the first day of the week.
	latinWeekdays   = []string{"Sh", "Ye", "Do", "Se", "Ch", "Pa", "Jo"}
	persianWeekdays = []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}
)

// Valid returns true if m is in the range Farvardin..Esfand.
func (m Month) Valid() bool {
	return m >= Farvardin && m <= Esfand
}

// Name returns the name of the month for the given locale.
func (m Month) Name(loc Locale) string {
	if !m.Valid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	if loc == Persian {
		return persianMonths[m-1]
	}
	return latinMonths[m-1]
}

func (m Month) String() string {
	return m.Name(Latin)
}

// ParseMonth parses a month as a 1 or 2 digit number, in ASCII or Persian
// digits, or as a case-insensitive prefix of its Latin or Persian name.
func ParseMonth(val string) (Month, error) {
	val = strings.TrimSpace(NormalizeDigits(val))
	if n, err := strconv.Atoi(val); err == nil {
		if m := Month(n); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("%w: month %d", ErrInvalidDate, n)
	}
	if len(val) == 0 {
		return 0, fmt.Errorf("%w: empty month", ErrInvalidDate)
	}
	lc := strings.ToLower(val)
	for i := range latinMonths {
		if strings.HasPrefix(strings.ToLower(latinMonths[i]), lc) || strings.HasPrefix(persianMonths[i], val) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: month %q", ErrInvalidDate, val)
}

// WeekdayName returns the abbreviated name of the weekday for the
// given locale.
func WeekdayName(wd time.Weekday, loc Locale) string {
	i := (int(wd) + 1) % 7
	if loc == Persian {
		return persianWeekdays[i]
	}
	return latinWeekdays[i]
}
