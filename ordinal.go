// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

const (
	daysPer4Years   = 365*4 + 1
	daysPer100Years = 365*100 + 24
	daysPer400Years = 365*400 + 97
)

// Ordinal is a count of days in the proleptic Gregorian calendar with
// 0001-01-01 as day 1. Days before that are zero or negative. Ordinals
// may be compared and subtracted directly to order and difference dates.
type Ordinal int64

// floorDiv returns the quotient and the non-negative remainder of n / d
// for d > 0.
func floorDiv(n, d int64) (int64, int64) {
	q, r := n/d, n%d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}

// daysBeforeYear returns the number of days between 0001-01-01 and the
// first day of year.
func daysBeforeYear(year int) int64 {
	y := int64(year) - 1
	q4, _ := floorDiv(y, 4)
	q100, _ := floorDiv(y, 100)
	q400, _ := floorDiv(y, 400)
	return y*365 + q4 - q100 + q400
}

// OrdinalOf returns the Ordinal for the given year, month and day without
// validating them; use NewDate to validate.
func OrdinalOf(year int, month Month, day int) Ordinal {
	return Ordinal(daysBeforeYear(year) + int64(daysBeforeMonth(year, month)) + int64(day))
}

// Date returns the calendar date for o.
func (o Ordinal) Date() Date {
	// Decompose the zero based day count into 400, 100, 4 and 1 year
	// cycles. The final year of a 100 or 4 year cycle is one day longer
	// and the quotient is 4 on its last day.
	n400, n := floorDiv(int64(o)-1, daysPer400Years)
	n100, n := n/daysPer100Years, n%daysPer100Years
	n4, n := n/daysPer4Years, n%daysPer4Years
	n1, n := n/365, n%365

	year := int(n400*400 + n100*100 + n4*4 + n1 + 1)
	if n1 == 4 || n100 == 4 {
		return Date{year: year - 1, month: December, day: 31}
	}
	yday := int(n)
	cumulative := dayOfYear
	if IsLeap(year) {
		cumulative = dayOfYearLeap
	}
	// Every month has at least 28 and at most 31 days so the estimate
	// is either correct or one too large.
	month := (yday + 50) >> 5
	if cumulative[month-1] > yday {
		month--
	}
	return Date{year: year, month: Month(month), day: yday - cumulative[month-1] + 1}
}

// Weekday returns the day of the week for o; 0001-01-01 is a Monday.
func (o Ordinal) Weekday() Weekday {
	_, r := floorDiv(int64(o)-1, 7)
	return Weekday(r + 1)
}

// Add returns o plus the specified number of days.
func (o Ordinal) Add(days int64) Ordinal {
	return o + Ordinal(days)
}

// WeekDate returns the ISO-8601 week date for o.
func (o Ordinal) WeekDate() WeekDate {
	wd := o.Weekday()
	// The ISO year of a week is the calendar year of its Thursday.
	thursday := o + Ordinal(Thursday-wd)
	year := thursday.Date().year
	week := int((thursday-OrdinalOf(year, January, 1))/7) + 1
	return WeekDate{year: year, week: week, weekday: wd}
}
