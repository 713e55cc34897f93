// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali_test

import (
	"testing"
	"time"

	"cloudeng.io/rangepicker/jalali"
)

func TestConstraints(t *testing.T) {
	var dc jalali.Constraints
	if !dc.Empty() {
		t.Errorf("expected empty constraints")
	}
	if got, want := dc.String(), "everyday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// 1402/01/01 is a Tuesday, so 1402/01/04 is a Friday.
	dc = jalali.Constraints{
		Weekdays: []time.Weekday{time.Friday},
		Dates:    []jalali.CalendarDate{ncd(1402, 1, 13)},
		Min:      ncd(1402, 1, 2),
		Max:      ncd(1402, 1, 20),
	}
	for _, tc := range []struct {
		cd      jalali.CalendarDate
		include bool
	}{
		{ncd(1402, 1, 1), false},
		{ncd(1402, 1, 2), true},
		{ncd(1402, 1, 3), true},
		{ncd(1402, 1, 4), false},
		{ncd(1402, 1, 11), false},
		{ncd(1402, 1, 12), true},
		{ncd(1402, 1, 13), false},
		{ncd(1402, 1, 20), true},
		{ncd(1402, 1, 21), false},
	} {
		if got, want := dc.Include(tc.cd), tc.include; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
	if got, want := dc.String(), "excluding weekdays: Friday, excluding dates: 1402/01/13, within 1402/01/02:1402/01/20"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	dc = jalali.Constraints{Max: ncd(1402, 1, 20)}
	if got, want := dc.String(), "within *:1402/01/20"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !dc.Include(ncd(1, 1, 1)) {
		t.Errorf("expected 0001/01/01 to be included")
	}
}
