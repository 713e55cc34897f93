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

// CalendarDate represents a Jalali date with a year, month and day.
// Values returned by this package are always valid dates; the zero
// value is not a valid date and can be used to mean 'not set'.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// Order is the result of comparing two dates.
type Order int

const (
	Before Order = iota - 1
	Same
	After
)

func (o Order) String() string {
	switch o {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "same"
	}
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day, or an error if that date does not exist.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	cd := CalendarDate{Year: year, Month: month, Day: day}
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// MustNewCalendarDate is like NewCalendarDate but panics on error.
func MustNewCalendarDate(year int, month Month, day int) CalendarDate {
	cd, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

// Validate returns an error wrapping ErrInvalidDate if cd does not refer
// to a day in the supported range.
func (cd CalendarDate) Validate() error {
	if !supportedYear(cd.Year) {
		return fmt.Errorf("%w: year %d not in %d..%d", ErrInvalidDate, cd.Year, MinYear, MaxYear)
	}
	if !cd.Month.Valid() {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, int(cd.Month))
	}
	if n := DaysInMonth(cd.Year, cd.Month); cd.Day < 1 || cd.Day > n {
		return fmt.Errorf("%w: day %d for %v %d has %d days", ErrInvalidDate, cd.Day, cd.Month, cd.Year, n)
	}
	return nil
}

// IsZero returns true for the zero value.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// Parse parses a date in the canonical YYYY/MM/DD format. Years may have
// 1 to 4 digits, months and days 1 or 2. Persian and Arabic-Indic digits
// are accepted. Malformed dates and dates that do not exist return an
// error wrapping ErrInvalidDate.
func Parse(val string) (CalendarDate, error) {
	val = strings.TrimSpace(NormalizeDigits(val))
	parts := strings.Split(val, "/")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q, expected format 'YYYY/MM/DD'", ErrInvalidDate, val)
	}
	var fields [3]int
	for i, p := range parts {
		if len(p) == 0 || len(p) > 4 || (i > 0 && len(p) > 2) {
			return CalendarDate{}, fmt.Errorf("%w: %q, expected format 'YYYY/MM/DD'", ErrInvalidDate, val)
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return CalendarDate{}, fmt.Errorf("%w: %q: unexpected character %q", ErrInvalidDate, val, c)
			}
		}
		fields[i], _ = strconv.Atoi(p)
	}
	cd := CalendarDate{Year: fields[0], Month: Month(fields[1]), Day: fields[2]}
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, fmt.Errorf("%q: %w", val, err)
	}
	return cd, nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) CalendarDate {
	cd, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return cd
}

// Parse parses val as per the Parse function. cd is left unchanged on error.
func (cd *CalendarDate) Parse(val string) error {
	d, err := Parse(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

// Format returns the canonical YYYY/MM/DD form of the date.
func (cd CalendarDate) Format() string {
	return fmt.Sprintf("%04d/%02d/%02d", cd.Year, int(cd.Month), cd.Day)
}

// FormatDigits returns the canonical form of the date using the digits
// of the specified locale.
func (cd CalendarDate) FormatDigits(loc Locale) string {
	return LocalizeDigits(cd.Format(), loc)
}

func (cd CalendarDate) String() string {
	return cd.Format()
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.Format()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	return cd.Parse(string(text))
}

// Compare returns Before, Same or After according to whether a is before,
// the same as or after b.
func Compare(a, b CalendarDate) Order {
	switch {
	case a.Year != b.Year:
		if a.Year < b.Year {
			return Before
		}
		return After
	case a.Month != b.Month:
		if a.Month < b.Month {
			return Before
		}
		return After
	case a.Day != b.Day:
		if a.Day < b.Day {
			return Before
		}
		return After
	}
	return Same
}

// Before returns true if cd is before d.
func (cd CalendarDate) Before(d CalendarDate) bool {
	return Compare(cd, d) == Before
}

// After returns true if cd is after d.
func (cd CalendarDate) After(d CalendarDate) bool {
	return Compare(cd, d) == After
}

// Equal returns true if cd and d refer to the same day.
func (cd CalendarDate) Equal(d CalendarDate) bool {
	return cd == d
}

// DayNumber returns the julian day number for the date.
func (cd CalendarDate) DayNumber() int {
	return j2d(cd.Year, int(cd.Month), cd.Day)
}

// FromDayNumber returns the date for the given julian day number or
// an error wrapping ErrOutOfRange.
func FromDayNumber(jdn int) (CalendarDate, error) {
	if jdn < minDayNumber || jdn > maxDayNumber {
		return CalendarDate{}, fmt.Errorf("%w: day number %d", ErrOutOfRange, jdn)
	}
	y, m, d := d2j(jdn)
	return CalendarDate{Year: y, Month: Month(m), Day: d}, nil
}

// YearDay returns the day of the year, 1 to 365 or 366.
func (cd CalendarDate) YearDay() int {
	return cd.DayNumber() - j2d(cd.Year, 1, 1) + 1
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return time.Weekday((cd.DayNumber() + 1) % 7)
}

// AddDays returns the date n days after (or before for negative n) cd.
func (cd CalendarDate) AddDays(n int) (CalendarDate, error) {
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return FromDayNumber(cd.DayNumber() + n)
}

// AddMonths returns the date n months after (or before for negative n) cd.
// The day is clamped to the length of the resulting month, so that
// Shahrivar 31st plus one month is Mehr 30th and Esfand 30th of a leap
// year plus a year's worth of months is Esfand 29th.
func (cd CalendarDate) AddMonths(n int) (CalendarDate, error) {
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	months := cd.Year*12 + int(cd.Month) - 1 + n
	year, month := months/12, Month(months%12+1)
	if months < 0 || !supportedYear(year) {
		return CalendarDate{}, fmt.Errorf("%w: %v plus %d months", ErrOutOfRange, cd, n)
	}
	day := min(cd.Day, DaysInMonth(year, month))
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// Tomorrow returns the date of the next day. The last supported
// day is returned unchanged.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if n, err := cd.AddDays(1); err == nil {
		return n
	}
	return cd
}

// Yesterday returns the date of the previous day. The first supported
// day is returned unchanged.
func (cd CalendarDate) Yesterday() CalendarDate {
	if n, err := cd.AddDays(-1); err == nil {
		return n
	}
	return cd
}

// FirstOfMonth returns the first day of the month containing cd.
func (cd CalendarDate) FirstOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: 1}
}

// LastOfMonth returns the last day of the month containing cd.
func (cd CalendarDate) LastOfMonth() CalendarDate {
	return CalendarDate{Year: cd.Year, Month: cd.Month, Day: DaysInMonth(cd.Year, cd.Month)}
}

// SameMonth returns true if cd and d are in the same month of the same year.
func (cd CalendarDate) SameMonth(d CalendarDate) bool {
	return cd.Year == d.Year && cd.Month == d.Month
}

// FromTime returns the Jalali date for the Gregorian date of t in t's
// location.
func FromTime(t time.Time) (CalendarDate, error) {
	y, m, d := t.Date()
	return FromDayNumber(g2d(y, int(m), d))
}

// Time returns midnight of the date in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	y, m, d := d2g(cd.DayNumber())
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// Tehran is the location used by Today when none is supplied. It
// is a fixed offset of +03:30 since Iran no longer observes daylight
// saving time.
var Tehran = time.FixedZone("Asia/Tehran", 3*60*60+30*60)

// Today returns the current date in the specified location, Tehran
// if loc is nil.
func Today(loc *time.Location) CalendarDate {
	return OnDay(time.Now(), loc)
}

// OnDay returns the date of t in the specified location, Tehran if loc
// is nil. Times outside of the supported range return the nearest
// supported day.
func OnDay(t time.Time, loc *time.Location) CalendarDate {
	if loc == nil {
		loc = Tehran
	}
	cd, err := FromTime(t.In(loc))
	if err == nil {
		return cd
	}
	y, _, _ := t.Date()
	if y < MinYear+621 {
		d, _ := FromDayNumber(minDayNumber)
		return d
	}
	d, _ := FromDayNumber(maxDayNumber)
	return d
}
