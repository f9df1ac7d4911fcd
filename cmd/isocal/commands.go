// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/calendar"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type commands struct {
	out    io.Writer
	config Config
}

// dateInfo is the yaml rendering of a calendar date.
type dateInfo struct {
	Date        string `yaml:"date"`
	Ordinal     int64  `yaml:"ordinal"`
	Weekday     string `yaml:"weekday"`
	YearDay     int    `yaml:"year_day"`
	Leap        bool   `yaml:"leap"`
	DaysInMonth int    `yaml:"days_in_month"`
	WeekDate    string `yaml:"week_date"`
}

func newDateInfo(d calendar.Date) dateInfo {
	return dateInfo{
		Date:        d.String(),
		Ordinal:     int64(d.Ordinal()),
		Weekday:     d.Weekday().String(),
		YearDay:     d.YearDay(),
		Leap:        d.IsLeap(),
		DaysInMonth: d.DaysInMonth(),
		WeekDate:    d.WeekDate().String(),
	}
}

type weeksInfo struct {
	Year  int `yaml:"year"`
	Weeks int `yaml:"weeks"`
}

func (c *commands) write(v any) error {
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func parseInts(names []string, args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			name := "argument"
			if i < len(names) {
				name = names[i]
			}
			return nil, fmt.Errorf("invalid %s %q: %w", name, a, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func (c *commands) date(ctx context.Context, _ any, args []string) error {
	v, err := parseInts([]string{"year", "month", "day"}, args)
	if err != nil {
		return err
	}
	d, err := calendar.NewDate(v[0], calendar.Month(v[1]), v[2])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("date", "date", d.String())
	return c.write(newDateInfo(d))
}

func (c *commands) yearDay(ctx context.Context, _ any, args []string) error {
	v, err := parseInts([]string{"year", "day of year"}, args)
	if err != nil {
		return err
	}
	d, err := calendar.NewDateFromYearDay(v[0], v[1])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("yearday", "year", v[0], "yearday", v[1], "date", d.String())
	return c.write(newDateInfo(d))
}

func (c *commands) week(ctx context.Context, _ any, args []string) error {
	v, err := parseInts([]string{"iso year", "week", "weekday"}, args)
	if err != nil {
		return err
	}
	wd, err := calendar.NewWeekDate(v[0], v[1], calendar.Weekday(v[2]))
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("week", "week_date", wd.String())
	return c.write(newDateInfo(wd.Date()))
}

func (c *commands) ordinal(ctx context.Context, _ any, args []string) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ordinal %q: %w", args[0], err)
	}
	first := calendar.MustNewDate(calendar.MinYear, calendar.January, 1).Ordinal()
	last := calendar.MustNewDate(calendar.MaxYear, calendar.December, 31).Ordinal()
	if o := calendar.Ordinal(n); o < first || o > last {
		return fmt.Errorf("ordinal %d out of range [%d, %d]", n, first, last)
	}
	ctxlog.Logger(ctx).Debug("ordinal", "ordinal", n)
	return c.write(newDateInfo(calendar.Ordinal(n).Date()))
}

func (c *commands) weeks(ctx context.Context, _ any, args []string) error {
	years, err := parseInts(nil, args)
	if err != nil {
		return err
	}
	out := make([]weeksInfo, 0, len(years))
	for _, y := range years {
		if y < calendar.MinYear || y > calendar.MaxYear {
			return fmt.Errorf("year %d out of range [%d, %d]", y, calendar.MinYear, calendar.MaxYear)
		}
		out = append(out, weeksInfo{Year: y, Weeks: calendar.WeeksInYear(y)})
	}
	ctxlog.Logger(ctx).Debug("weeks", "years", len(years))
	return c.write(out)
}
