// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrOutOfRange is matched, via errors.Is, by every *OutOfRangeError.
var ErrOutOfRange = errors.New("calendar field out of range")

// Field identifies the field of a date or week date that failed validation.
type Field int

const (
	FieldYear Field = iota + 1
	FieldMonth
	FieldDay
	FieldWeek
	FieldWeekday
	FieldYearDay
)

var fieldNames = map[Field]string{
	FieldYear:    "year",
	FieldMonth:   "month",
	FieldDay:     "day",
	FieldWeek:    "week",
	FieldWeekday: "weekday",
	FieldYearDay: "day of year",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// OutOfRangeError is the only error returned by this package. It identifies
// the invalid field, its value and the inclusive range of valid values.
type OutOfRangeError struct {
	Field    Field
	Value    int64
	Min, Max int64
}

func newOutOfRange(f Field, value, min, max int64) *OutOfRangeError {
	return &OutOfRangeError{Field: f, Value: value, Min: min, Max: max}
}

// Error implements error.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Is supports errors.Is for ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// validationError returns nil, the single non-nil error, or an errors.M
// holding all of the non-nil errors.
func validationError(errs ...*OutOfRangeError) error {
	var m errors.M
	var first error
	n := 0
	for _, err := range errs {
		if err == nil {
			continue
		}
		if n == 0 {
			first = err
		}
		m.Append(err)
		n++
	}
	switch n {
	case 0:
		return nil
	case 1:
		return first
	}
	return m.Err()
}

func checkRange(f Field, value, min, max int64) *OutOfRangeError {
	if value < min || value > max {
		return newOutOfRange(f, value, min, max)
	}
	return nil
}
