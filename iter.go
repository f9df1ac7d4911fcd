// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
)

// YearMonth represents a month in a specific year.
type YearMonth struct {
	year  int
	month Month
}

// NewYearMonth returns the YearMonth for year and month.
func NewYearMonth(year int, month Month) (YearMonth, error) {
	yerr := checkRange(FieldYear, int64(year), MinYear, MaxYear)
	merr := checkRange(FieldMonth, int64(month), int64(January), int64(December))
	if err := validationError(yerr, merr); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: year, month: month}, nil
}

func (ym YearMonth) Year() int {
	return ym.year
}

func (ym YearMonth) Month() Month {
	return ym.month
}

// Len returns the number of days in the month.
func (ym YearMonth) Len() int {
	return daysInMonthForYear(ym.year)[ym.month-1]
}

// First returns the first day of the month.
func (ym YearMonth) First() Date {
	return Date{year: ym.year, month: ym.month, day: 1}
}

// Last returns the last day of the month.
func (ym YearMonth) Last() Date {
	return Date{year: ym.year, month: ym.month, day: ym.Len()}
}

// Dates returns an iterator that yields each day of the month.
func (ym YearMonth) Dates() iter.Seq[Date] {
	n := ym.Len()
	return func(yield func(Date) bool) {
		for day := 1; day <= n; day++ {
			if !yield(Date{year: ym.year, month: ym.month, day: day}) {
				return
			}
		}
	}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%v %d", ym.month, ym.year)
}

// Months returns an iterator over the twelve months of year.
func Months(year int) iter.Seq[YearMonth] {
	return func(yield func(YearMonth) bool) {
		for m := January; m <= December; m++ {
			if !yield(YearMonth{year: year, month: m}) {
				return
			}
		}
	}
}

// Weeks returns an iterator that yields the Monday of each ISO week in
// isoYear.
func Weeks(isoYear int) iter.Seq[WeekDate] {
	n := WeeksInYear(isoYear)
	return func(yield func(WeekDate) bool) {
		for week := 1; week <= n; week++ {
			if !yield(WeekDate{year: isoYear, week: week, weekday: Monday}) {
				return
			}
		}
	}
}
