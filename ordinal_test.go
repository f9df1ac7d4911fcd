// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"cloudeng.io/calendar"
)

func TestKnownOrdinals(t *testing.T) {
	ncd := calendar.MustNewDate
	for _, tc := range []struct {
		date    calendar.Date
		ordinal calendar.Ordinal
		weekday calendar.Weekday
	}{
		{ncd(1, 1, 1), 1, calendar.Monday},
		{ncd(1970, 1, 1), 719163, calendar.Thursday},
		{ncd(2000, 3, 1), 730180, calendar.Wednesday},
		{ncd(2001, 1, 1), 730486, calendar.Monday},
		{ncd(2024, 2, 29), 738945, calendar.Thursday},
		{ncd(0, 12, 31), 0, calendar.Sunday},
		{ncd(0, 1, 1), -365, calendar.Saturday},
		{ncd(-1, 12, 31), -366, calendar.Friday},
	} {
		if got, want := tc.date.Ordinal(), tc.ordinal; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := tc.ordinal.Date(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.ordinal, got, want)
		}
		if got, want := tc.date.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	// Walk every day from 2001 BCE to 2400 CE, this spans several
	// 400 year cycles and the transition across year zero.
	start := calendar.MustNewDate(-2000, 1, 1)
	end := calendar.MustNewDate(2400, 12, 31)
	prev := start.Ordinal() - 1
	prevWeekday := calendar.Sunday
	for d := start; !d.After(end); d = d.Tomorrow() {
		o := d.Ordinal()
		if got, want := o, prev+1; got != want {
			t.Fatalf("%v: ordinals are not monotonic: got %v, want %v", d, got, want)
		}
		if got, want := o.Date(), d; got != want {
			t.Fatalf("%v: got %v, want %v", o, got, want)
		}
		wd := d.Weekday()
		if got, want := wd, prevWeekday%7+1; got != want && d != start {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
		prev, prevWeekday = o, wd
	}
}

func TestOrdinalCycles(t *testing.T) {
	// 400 years always contain 146097 days.
	for _, year := range []int{-999999, -801, -400, -1, 0, 1, 1600, 1900, 2000, 999599} {
		a := calendar.MustNewDate(year, 3, 1).Ordinal()
		b := calendar.MustNewDate(year+400, 3, 1).Ordinal()
		if got, want := b-a, calendar.Ordinal(146097); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := a.Weekday(), b.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestOrdinalExtremes(t *testing.T) {
	for _, d := range []calendar.Date{
		calendar.MustNewDate(calendar.MinYear, 1, 1),
		calendar.MustNewDate(calendar.MaxYear, 12, 31),
		calendar.MustNewDate(calendar.MinYear, 2, 28),
		calendar.MustNewDate(calendar.MaxYear, 2, 28),
	} {
		if got, want := d.Ordinal().Date(), d; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.WeekDate().Date(), d; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := calendar.MustNewDate(calendar.MinYear, 1, 1).Ordinal(), calendar.Ordinal(-365242499); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.MustNewDate(calendar.MaxYear, 12, 31).Ordinal(), calendar.Ordinal(365242134); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrdinalArithmetic(t *testing.T) {
	ncd := calendar.MustNewDate
	for _, tc := range []struct {
		date calendar.Date
		days int64
		want calendar.Date
	}{
		{ncd(2024, 2, 28), 1, ncd(2024, 2, 29)},
		{ncd(2023, 2, 28), 1, ncd(2023, 3, 1)},
		{ncd(2024, 12, 31), 1, ncd(2025, 1, 1)},
		{ncd(2025, 1, 1), -1, ncd(2024, 12, 31)},
		{ncd(1, 1, 1), -1, ncd(0, 12, 31)},
		{ncd(2000, 1, 1), 146097, ncd(2400, 1, 1)},
		{ncd(2000, 1, 1), -146097, ncd(1600, 1, 1)},
	} {
		if got, want := tc.date.AddDays(tc.days), tc.want; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.date, tc.days, got, want)
		}
		if got, want := tc.want.Sub(tc.date), tc.days; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.want, tc.date, got, want)
		}
		if got, want := tc.date.Ordinal().Add(tc.days), tc.want.Ordinal(); got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.date, tc.days, got, want)
		}
	}
}
