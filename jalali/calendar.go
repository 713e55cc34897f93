// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jalali provides support for working with dates in the Jalali
// (Persian, solar hijri) calendar: parsing and formatting of the canonical
// YYYY/MM/DD form, day and month arithmetic, comparison, conversion to and
// from Gregorian dates and date ranges.
//
// The first six months have 31 days, the next five have 30 and Esfand has
// 29 days, or 30 in a leap year. Leap years are determined using the
// 33-year cycle break table, which is accurate for years -61 to 3177;
// this package supports years 1 to 3177.
package jalali

import "errors"

const (
	// MinYear is the earliest supported year.
	MinYear = 1
	// MaxYear is the latest supported year.
	MaxYear = 3177
)

var (
	// ErrInvalidDate is returned for malformed dates or dates that do not
	// exist in the calendar.
	ErrInvalidDate = errors.New("invalid jalali date")
	// ErrOutOfRange is returned when arithmetic would produce a date
	// outside of MinYear..MaxYear.
	ErrOutOfRange = errors.New("jalali date out of supported range")
)

// years at which the 33-year cycle is broken.
var breaks = [...]int{-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178}

var (
	minDayNumber int // day number of MinYear/01/01
	maxDayNumber int // day number of MaxYear/12/<last>
)

func init() {
	minDayNumber = j2d(MinYear, 1, 1)
	maxDayNumber = j2d(MaxYear, 12, DaysInMonth(MaxYear, Esfand))
}

// jalCal returns the Gregorian year in which the Jalali year jy begins, the
// day in March of Farvardin 1st and the number of years since the last
// leap year, which is zero for a leap year. jy must be supported by the
// break table.
func jalCal(jy int) (gy, march, leap int) {
	gy = jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march = 20 + leapJ - leapG
	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return
}

// g2d returns the julian day number for a Gregorian date.
func g2d(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

// d2g returns the Gregorian date for a julian day number.
func d2g(jdn int) (gy, gm, gd int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := j%1461/4*5 + 308
	gd = i%153/5 + 1
	gm = i/153%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return
}

// j2d returns the julian day number for a Jalali date.
func j2d(jy, jm, jd int) int {
	gy, march, _ := jalCal(jy)
	return g2d(gy, 3, march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1
}

// d2j returns the Jalali date for a julian day number in the
// supported range.
func d2j(jdn int) (jy, jm, jd int) {
	gy, _, _ := d2g(jdn)
	jy = min(gy-621, MaxYear)
	first := j2d(jy, 1, 1)
	if jdn < first {
		jy--
		first = j2d(jy, 1, 1)
	}
	k := jdn - first
	if k <= 185 {
		return jy, 1 + k/31, k%31 + 1
	}
	k -= 186
	return jy, 7 + k/30, k%30 + 1
}

func supportedYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// IsLeap returns true if the given year is a leap year, ie. Esfand has
// 30 days. It returns false for unsupported years.
func IsLeap(year int) bool {
	if !supportedYear(year) {
		return false
	}
	_, _, leap := jalCal(year)
	return leap == 0
}

// DaysInMonth returns the number of days in the given month for the given
// year. It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	switch {
	case month < Farvardin || month > Esfand:
		return 0
	case month <= Shahrivar:
		return 31
	case month <= Bahman:
		return 30
	case IsLeap(year):
		return 30
	default:
		return 29
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}
