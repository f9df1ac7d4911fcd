// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command isocal converts between calendar dates, ordinal dates and
// ISO-8601 week dates and can exhaustively verify the conversions over
// a range of years.
package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const isocalYAML = `name: isocal
summary: convert between calendar, ordinal and ISO-8601 week dates
commands:
  - name: date
    summary: describe a calendar date
    arguments:
      - <year>
      - <month>
      - <day>
  - name: yearday
    summary: convert a year and day of year to a calendar date
    arguments:
      - <year>
      - <day-of-year>
  - name: week
    summary: convert an ISO year, week and weekday (1=Monday) to a calendar date
    arguments:
      - <iso-year>
      - <week>
      - <weekday>
  - name: ordinal
    summary: convert an ordinal day number, where 1 is 0001-01-01, to a calendar date
    arguments:
      - <ordinal>
  - name: weeks
    summary: print the number of ISO weeks in each of the specified years
    arguments:
      - <iso-year>
      - ...
  - name: verify
    summary: verify the round trip conversions for every date in a range of years
`

type GlobalFlags struct {
	Config        string `subcmd:"config,,'yaml configuration file'"`
	LogLevel      int    `subcmd:"log-level,-1,'logging level: 0=error, 1=warn, 2=info, 3=debug, overrides the config file if set'"`
	LogFile       string `subcmd:"log-file,,'log file path. If not specified logs are written to stderr, if set to - logs are written to stdout'"`
	LogFormat     string `subcmd:"log-format,,'log format: text or json'"`
	LogSourceCode bool   `subcmd:"log-source-code,false,'include source code file and line number in logs'"`
}

type verifyFlags struct {
	From string `subcmd:"from,,'first year to verify, defaults to the configured value'"`
	To   string `subcmd:"to,,'last year to verify, defaults to the configured value'"`
}

type noFlags struct{}

var (
	globalFlags GlobalFlags
	cmdSet      = subcmd.MustFromYAML(isocalYAML)
	cmds        = &commands{out: os.Stdout, config: defaultConfig()}
)

func init() {
	cmdSet.Set("date").MustRunner(cmds.date, &noFlags{})
	cmdSet.Set("yearday").MustRunner(cmds.yearDay, &noFlags{})
	cmdSet.Set("week").MustRunner(cmds.week, &noFlags{})
	cmdSet.Set("ordinal").MustRunner(cmds.ordinal, &noFlags{})
	cmdSet.Set("weeks").MustRunner(cmds.weeks, &noFlags{})
	cmdSet.Set("verify").MustRunner(cmds.verify, &verifyFlags{})

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.WithMain(mainWrapper)
}

func mainWrapper(ctx context.Context, cmdRunner func(ctx context.Context) error) error {
	if len(globalFlags.Config) > 0 {
		cfg, err := loadConfig(ctx, globalFlags.Config)
		if err != nil {
			return err
		}
		cmds.config = cfg
	}
	logger, err := loggingConfig(cmds.config.Logging, globalFlags).NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	return cmdRunner(ctx)
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
