// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"fmt"

	"cloudeng.io/calendar"
)

func ExampleDate_WeekDate() {
	d := calendar.MustNewDate(2020, 12, 31)
	wd := d.WeekDate()
	fmt.Println(wd, wd.Date())
	fmt.Println(calendar.MustNewDate(2005, 1, 1).WeekDate())
	// Output:
	// 2020-W53-4 2020-12-31
	// 2004-W53-6
}

func ExampleNewDate() {
	_, err := calendar.NewDate(2021, 2, 29)
	fmt.Println(err)
	var oor *calendar.OutOfRangeError
	if errors.As(err, &oor) {
		fmt.Println(oor.Field, oor.Value, oor.Max)
	}
	// Output:
	// day 29 out of range [1, 28]
	// day 29 28
}

func ExampleNewDateFromYearDay() {
	d, _ := calendar.NewDateFromYearDay(2016, 268)
	fmt.Println(d, d.Weekday(), d.Ordinal())
	// Output:
	// 2016-09-24 Saturday 736231
}

func ExampleWeeksInYear() {
	for year := 2019; year <= 2021; year++ {
		fmt.Println(year, calendar.WeeksInYear(year))
	}
	// Output:
	// 2019 52
	// 2020 53
	// 2021 52
}
