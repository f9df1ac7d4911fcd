// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
)

// Date represents a valid proleptic Gregorian calendar date. Dates are
// created by NewDate, NewDateFromYearDay or by converting an Ordinal or
// WeekDate and are immutable. The zero value is not a valid date.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns the Date for year, month and day. An error is returned
// if any of the fields are out of range; each such field is reported
// as an *OutOfRangeError.
func NewDate(year int, month Month, day int) (Date, error) {
	yerr := checkRange(FieldYear, int64(year), MinYear, MaxYear)
	merr := checkRange(FieldMonth, int64(month), int64(January), int64(December))
	if merr != nil {
		return Date{}, validationError(yerr, merr)
	}
	ndays := daysInMonthForYear(year)[month-1]
	derr := checkRange(FieldDay, int64(day), 1, int64(ndays))
	if err := validationError(yerr, derr); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNewDate is like NewDate but panics on error.
func MustNewDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDateFromYearDay returns the Date for the given day of the year,
// where 1 is January 1st and 365 or 366 is December 31st.
func NewDateFromYearDay(year, yearDay int) (Date, error) {
	yerr := checkRange(FieldYear, int64(year), MinYear, MaxYear)
	derr := checkRange(FieldYearDay, int64(yearDay), 1, int64(DaysInYear(year)))
	if err := validationError(yerr, derr); err != nil {
		return Date{}, err
	}
	return Ordinal(daysBeforeYear(year) + int64(yearDay)).Date(), nil
}

// Year returns the year, which may be zero or negative.
func (d Date) Year() int {
	return d.year
}

// Month returns the month.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// Ordinal returns the ordinal day number for d.
func (d Date) Ordinal() Ordinal {
	return OrdinalOf(d.year, d.month, d.day)
}

// Weekday returns the ISO-8601 day of the week for d.
func (d Date) Weekday() Weekday {
	return d.Ordinal().Weekday()
}

// YearDay returns the day of the year for d as 1-365 for non-leap
// years and 1-366 for leap years.
func (d Date) YearDay() int {
	return daysBeforeMonth(d.year, d.month) + d.day
}

// IsLeap returns true if d is in a leap year.
func (d Date) IsLeap() bool {
	return IsLeap(d.year)
}

// DaysInMonth returns the number of days in the month of d.
func (d Date) DaysInMonth() int {
	return daysInMonthForYear(d.year)[d.month-1]
}

// WeekDate returns the ISO-8601 week date for d. The ISO year of
// the result differs from d.Year() for dates in the first or last week
// of a year that straddles a year boundary.
func (d Date) WeekDate() WeekDate {
	return d.Ordinal().WeekDate()
}

// AddDays returns the date that is the specified number of days after d,
// or before d for negative values.
func (d Date) AddDays(days int64) Date {
	return d.Ordinal().Add(days).Date()
}

// Tomorrow returns the date of the next day.
func (d Date) Tomorrow() Date {
	if d.day < d.DaysInMonth() {
		d.day++
		return d
	}
	if d.month == December {
		return Date{year: d.year + 1, month: January, day: 1}
	}
	return Date{year: d.year, month: d.month + 1, day: 1}
}

// Yesterday returns the date of the previous day.
func (d Date) Yesterday() Date {
	if d.day > 1 {
		d.day--
		return d
	}
	if d.month == January {
		return Date{year: d.year - 1, month: December, day: 31}
	}
	m := d.month - 1
	return Date{year: d.year, month: m, day: daysInMonthForYear(d.year)[m-1]}
}

// Sub returns the number of days between d and other, ie. d - other.
func (d Date) Sub(other Date) int64 {
	return int64(d.Ordinal() - other.Ordinal())
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(d.month, other.month)
	}
	return cmp.Compare(d.day, other.day)
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String returns d as YYYY-MM-DD. Years outside of 0 to 9999 are
// prefixed with their sign.
func (d Date) String() string {
	if d.year < 0 || d.year > 9999 {
		return fmt.Sprintf("%+05d-%02d-%02d", d.year, int(d.month), d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
