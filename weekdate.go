// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
)

// WeekDate represents an ISO-8601 week date: an ISO week-numbering year,
// a week in the range 1-52 or 1-53 and a day of the week. Week 1 of an
// ISO year is the week that contains the first Thursday of the calendar
// year, or equivalently, January 4th. The zero value is not a valid
// week date.
type WeekDate struct {
	year    int
	week    int
	weekday Weekday
}

// NewWeekDate returns the WeekDate for the given ISO year, week and
// weekday. All invalid fields are reported, each as an *OutOfRangeError.
func NewWeekDate(isoYear, week int, weekday Weekday) (WeekDate, error) {
	yerr := checkRange(FieldYear, int64(isoYear), MinYear, MaxYear)
	werr := checkRange(FieldWeek, int64(week), 1, int64(WeeksInYear(isoYear)))
	derr := checkRange(FieldWeekday, int64(weekday), int64(Monday), int64(Sunday))
	if err := validationError(yerr, werr, derr); err != nil {
		return WeekDate{}, err
	}
	return WeekDate{year: isoYear, week: week, weekday: weekday}, nil
}

// MustNewWeekDate is like NewWeekDate but panics on error.
func MustNewWeekDate(isoYear, week int, weekday Weekday) WeekDate {
	wd, err := NewWeekDate(isoYear, week, weekday)
	if err != nil {
		panic(err)
	}
	return wd
}

// WeeksInYear returns the number of ISO weeks, 52 or 53, in the
// specified ISO year. A year has 53 weeks if it starts on a Thursday,
// or if it is a leap year that starts on a Wednesday.
func WeeksInYear(isoYear int) int {
	switch OrdinalOf(isoYear, January, 1).Weekday() {
	case Thursday:
		return 53
	case Wednesday:
		if IsLeap(isoYear) {
			return 53
		}
	}
	return 52
}

// firstMonday returns the Monday of ISO week 1 of isoYear, ie. the
// Monday of the week containing January 4th.
func firstMonday(isoYear int) Ordinal {
	jan4 := OrdinalOf(isoYear, January, 4)
	return jan4 - Ordinal(jan4.Weekday()-Monday)
}

// Year returns the ISO week-numbering year.
func (w WeekDate) Year() int {
	return w.year
}

// Week returns the week number.
func (w WeekDate) Week() int {
	return w.week
}

// Weekday returns the day of the week.
func (w WeekDate) Weekday() Weekday {
	return w.weekday
}

// Ordinal returns the ordinal day number for w.
func (w WeekDate) Ordinal() Ordinal {
	return firstMonday(w.year) + Ordinal((w.week-1)*7) + Ordinal(w.weekday-Monday)
}

// Date returns the calendar date for w. The calendar year of the result
// may be the year before or after w.Year() for dates in the first or
// last ISO week.
func (w WeekDate) Date() Date {
	return w.Ordinal().Date()
}

// String returns w as YYYY-Www-D.
func (w WeekDate) String() string {
	if w.year < 0 || w.year > 9999 {
		return fmt.Sprintf("%+05d-W%02d-%d", w.year, w.week, int(w.weekday))
	}
	return fmt.Sprintf("%04d-W%02d-%d", w.year, w.week, int(w.weekday))
}
