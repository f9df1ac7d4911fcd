// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides exact conversions between proleptic Gregorian
// calendar dates, ISO-8601 week dates and ordinal day numbers.
//
// All conversions are routed through Ordinal, a count of days where day 1
// is 0001-01-01. Years use astronomical numbering, so year 0 is 1 BCE and
// year -1 is 2 BCE. Values are validated once, when constructed via NewDate,
// NewDateFromYearDay or NewWeekDate, and all subsequent conversions are
// total. No operation consults the time package's calendar or the local
// clock.
package calendar

import (
	"strconv"
	"time"
)

const (
	// MinYear and MaxYear bound the years accepted by the constructors.
	MinYear = -999999
	MaxYear = 999999
)

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// Month as an int, January is 1.
type Month time.Month

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Valid returns true if m is in the range January to December.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

func (m Month) String() string {
	return time.Month(m).String()
}

// Weekday is an ISO-8601 day of the week, Monday is 1 and Sunday is 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid returns true if wd is in the range Monday to Sunday.
func (wd Weekday) Valid() bool {
	return wd >= Monday && wd <= Sunday
}

func (wd Weekday) String() string {
	if !wd.Valid() {
		return "%!Weekday(" + strconv.Itoa(int(wd)) + ")"
	}
	return weekdayNames[wd-1]
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given
// year. An *OutOfRangeError is returned if month is not in the range 1-12.
func DaysInMonth(year int, month Month) (int, error) {
	if !month.Valid() {
		return 0, newOutOfRange(FieldMonth, int64(month), int64(January), int64(December))
	}
	return daysInMonthForYear(year)[month-1], nil
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

func daysBeforeMonth(year int, month Month) int {
	if IsLeap(year) {
		return dayOfYearLeap[month-1]
	}
	return dayOfYear[month-1]
}
