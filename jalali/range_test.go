// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali_test

import (
	"errors"
	"slices"
	"testing"

	"cloudeng.io/rangepicker/jalali"
)

func TestRange(t *testing.T) {
	for _, tc := range []struct {
		r         jalali.Range
		ascending bool
		days      int
		norm      jalali.Range
	}{
		{nr("1402/01/05", "1402/01/07"), true, 3, nr("1402/01/05", "1402/01/07")},
		{nr("1402/01/05", "1402/01/05"), true, 1, nr("1402/01/05", "1402/01/05")},
		{nr("1402/01/10", "1402/01/04"), false, 7, nr("1402/01/04", "1402/01/10")},
		{nr("1402/12/28", "1403/01/02"), true, 4, nr("1402/12/28", "1403/01/02")},
		{nr("1403/01/01", "1402/01/01"), false, 366, nr("1402/01/01", "1403/01/01")},
	} {
		if got, want := tc.r.Ascending(), tc.ascending; got != want {
			t.Errorf("%v: got %v, want %v", tc.r, got, want)
		}
		if got, want := tc.r.Days(), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.r, got, want)
		}
		if got, want := tc.r.Normalized(), tc.norm; got != want {
			t.Errorf("%v: got %v, want %v", tc.r, got, want)
		}
		dates := slices.Collect(tc.r.Dates())
		if got, want := len(dates), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.r, got, want)
		}
		if got, want := dates[0], tc.norm.Start; got != want {
			t.Errorf("%v: got %v, want %v", tc.r, got, want)
		}
		if got, want := dates[len(dates)-1], tc.norm.End; got != want {
			t.Errorf("%v: got %v, want %v", tc.r, got, want)
		}
		for _, d := range dates {
			if !tc.r.Contains(d) {
				t.Errorf("%v: does not contain %v", tc.r, d)
			}
		}
		if tc.r.Contains(tc.norm.Start.Yesterday()) || tc.r.Contains(tc.norm.End.Tomorrow()) {
			t.Errorf("%v: contains dates outside of the range", tc.r)
		}
	}

	r := nr("1402/01/10", "1402/01/04")
	_ = r.Normalized()
	if got, want := r, nr("1402/01/10", "1402/01/04"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRangeMonths(t *testing.T) {
	months := slices.Collect(nr("1402/11/20", "1403/02/03").Months())
	if got, want := months, []jalali.CalendarDate{
		ncd(1402, 11, 1), ncd(1402, 12, 1), ncd(1403, 1, 1), ncd(1403, 2, 1),
	}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	months = slices.Collect(nr("3177/12/05", "3177/11/01").Months())
	if got, want := len(months), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRange(t *testing.T) {
	r, err := jalali.ParseRange("1402/01/10:1402/01/04")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r, nr("1402/01/10", "1402/01/04"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.String(), "1402/01/10 - 1402/01/04"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []string{"", "1402/01/01", "1402/01/01:", "1402/13/01:1402/01/01", "a:b:c"} {
		if _, err := jalali.ParseRange(tc); !errors.Is(err, jalali.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate: %v", tc, err)
		}
	}
}
