// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali_test

import (
	"time"

	"cloudeng.io/rangepicker/jalali"
)

func ncd(year, month, day int) jalali.CalendarDate {
	return jalali.MustNewCalendarDate(year, jalali.Month(month), day)
}

func gd(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func nr(start, end string) jalali.Range {
	return jalali.NewRange(jalali.MustParse(start), jalali.MustParse(end))
}
