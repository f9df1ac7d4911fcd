// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/calendar"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

const maxVerifyErrors = 100

type verifySummary struct {
	From      int `yaml:"from"`
	To        int `yaml:"to"`
	Dates     int `yaml:"dates"`
	WeekDates int `yaml:"week_dates"`
	Errors    int `yaml:"errors"`
}

type verifier struct {
	errs    errors.M
	nerrors int
}

func (v *verifier) failf(format string, args ...any) {
	v.nerrors++
	if v.nerrors <= maxVerifyErrors {
		v.errs.Append(fmt.Errorf(format, args...))
	}
}

func (c *commands) verifyRange(fv *verifyFlags) (VerifyConfig, error) {
	vc := c.config.Verify
	if len(fv.From) > 0 {
		y, err := strconv.Atoi(fv.From)
		if err != nil {
			return vc, fmt.Errorf("invalid --from %q: %w", fv.From, err)
		}
		vc.From = y
	}
	if len(fv.To) > 0 {
		y, err := strconv.Atoi(fv.To)
		if err != nil {
			return vc, fmt.Errorf("invalid --to %q: %w", fv.To, err)
		}
		vc.To = y
	}
	return vc, vc.validate()
}

func (c *commands) verify(ctx context.Context, values any, _ []string) error {
	vc, err := c.verifyRange(values.(*verifyFlags))
	if err != nil {
		return err
	}
	ctx = ctxlog.WithAttributes(ctx, "from", vc.From, "to", vc.To)
	logger := ctxlog.Logger(ctx)
	logger.Info("verify: starting")

	var v verifier
	summary := verifySummary{From: vc.From, To: vc.To}
	if summary.WeekDates, err = v.weekDates(ctx, vc.From, vc.To); err != nil {
		return err
	}
	if summary.Dates, err = v.dates(ctx, vc.From, vc.To); err != nil {
		return err
	}
	summary.Errors = v.nerrors
	logger.Info("verify: done", "dates", summary.Dates, "week_dates", summary.WeekDates, "errors", v.nerrors)
	if err := c.write(summary); err != nil {
		return err
	}
	return v.errs.Err()
}

// weekDates checks that every week date in the ISO years from..to
// converts to a calendar date and back, and that consecutive week
// dates have consecutive ordinals.
func (v *verifier) weekDates(ctx context.Context, from, to int) (int, error) {
	logger := ctxlog.Logger(ctx)
	n := 0
	prev := calendar.MustNewWeekDate(from, 1, calendar.Monday).Ordinal() - 1
	for year := from; year <= to; year++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		weeks := calendar.WeeksInYear(year)
		logger.Debug("verify: week dates", "year", year, "weeks", weeks)
		for week := 1; week <= weeks; week++ {
			for day := calendar.Monday; day <= calendar.Sunday; day++ {
				wd, err := calendar.NewWeekDate(year, week, day)
				if err != nil {
					v.failf("%v-W%02d-%d: %w", year, week, day, err)
					continue
				}
				n++
				o := wd.Ordinal()
				if o != prev+1 {
					v.failf("%v: ordinal %v does not follow %v", wd, o, prev)
				}
				prev = o
				d := wd.Date()
				if got := d.WeekDate(); got != wd {
					v.failf("%v: converts to %v which converts back to %v", wd, d, got)
				}
				if got := d.Weekday(); got != day {
					v.failf("%v: %v is a %v", wd, d, got)
				}
			}
		}
	}
	return n, nil
}

// dates checks that every calendar date in the years from..to converts
// to an ordinal and a week date and back, and that ordinals increase
// by one from day to day.
func (v *verifier) dates(ctx context.Context, from, to int) (int, error) {
	logger := ctxlog.Logger(ctx)
	n := 0
	d := calendar.MustNewDate(from, calendar.January, 1)
	end := calendar.MustNewDate(to, calendar.December, 31)
	prev := d.Ordinal() - 1
	for ; !d.After(end); d = d.Tomorrow() {
		if d.Month() == calendar.January && d.Day() == 1 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
			logger.Debug("verify: dates", "year", d.Year())
		}
		n++
		o := d.Ordinal()
		if o != prev+1 {
			v.failf("%v: ordinal %v does not follow %v", d, o, prev)
		}
		prev = o
		if got := o.Date(); got != d {
			v.failf("%v: ordinal %v converts back to %v", d, o, got)
		}
		wd := d.WeekDate()
		if got := wd.Date(); got != d {
			v.failf("%v: week date %v converts back to %v", d, wd, got)
		}
		if wd.Year() > calendar.MaxYear {
			continue
		}
		if _, err := calendar.NewWeekDate(wd.Year(), wd.Week(), wd.Weekday()); err != nil {
			v.failf("%v: week date %v is invalid: %w", d, wd, err)
		}
	}
	return n, nil
}
