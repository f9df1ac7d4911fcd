// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{1600, true},
		{1601, false},
		{2038, false},
		{2100, false},
		{0, true},
		{-1, false},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		if got, want := calendar.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		want := 365
		if tc.leap {
			want = 366
		}
		if got := calendar.DaysInYear(tc.year); got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month calendar.Month
		days  int
	}{
		{2023, calendar.January, 31},
		{2023, calendar.February, 28},
		{2024, calendar.February, 29},
		{1900, calendar.February, 28},
		{2000, calendar.February, 29},
		{2023, calendar.April, 30},
		{2023, calendar.June, 30},
		{2023, calendar.September, 30},
		{2023, calendar.November, 30},
		{2023, calendar.December, 31},
		{-4, calendar.February, 29},
	} {
		days, err := calendar.DaysInMonth(tc.year, tc.month)
		if err != nil {
			t.Errorf("%v %v: %v", tc.year, tc.month, err)
			continue
		}
		if got, want := days, tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}

	for _, month := range []calendar.Month{0, 13, -1} {
		_, err := calendar.DaysInMonth(2024, month)
		var oor *calendar.OutOfRangeError
		if !errors.As(err, &oor) {
			t.Errorf("%v: expected an OutOfRangeError: %v", month, err)
			continue
		}
		if got, want := oor.Field, calendar.FieldMonth; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := oor.Min, int64(1); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := oor.Max, int64(12); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestNames(t *testing.T) {
	if got, want := calendar.February.String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Thursday.String(), "Thursday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Sunday.String(), "Sunday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Weekday(0).String(), "%!Weekday(0)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if calendar.Weekday(8).Valid() || calendar.Month(13).Valid() {
		t.Errorf("expected invalid values")
	}
	if got, want := calendar.FieldWeekday.String(), "weekday"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
