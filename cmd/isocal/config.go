// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendar"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
)

// VerifyConfig holds the default range of years for the verify command.
type VerifyConfig struct {
	From int `yaml:"from" cmd:"first year to verify"`
	To   int `yaml:"to" cmd:"last year to verify"`
}

type Config struct {
	Verify  VerifyConfig          `yaml:"verify" cmd:"defaults for the verify command"`
	Logging cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

func defaultConfig() Config {
	return Config{
		Verify: VerifyConfig{From: 2001, To: 2022},
		Logging: cmdutil.LoggingConfig{
			Level:  1,
			Format: "text",
		},
	}
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	cfg := defaultConfig()
	if err := cmdyaml.ParseConfigFile(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Verify.validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

func (vc VerifyConfig) validate() error {
	for _, y := range []int{vc.From, vc.To} {
		if y < calendar.MinYear || y > calendar.MaxYear {
			return fmt.Errorf("verify: year %d out of range [%d, %d]", y, calendar.MinYear, calendar.MaxYear)
		}
	}
	if vc.From > vc.To {
		return fmt.Errorf("verify: from %d is later than to %d", vc.From, vc.To)
	}
	return nil
}

// loggingConfig returns cfg overridden by any logging flags that were set.
func loggingConfig(cfg cmdutil.LoggingConfig, gf GlobalFlags) cmdutil.LoggingConfig {
	if gf.LogLevel >= 0 {
		cfg.Level = gf.LogLevel
	}
	if len(gf.LogFile) > 0 {
		cfg.File = gf.LogFile
	}
	if len(gf.LogFormat) > 0 {
		cfg.Format = gf.LogFormat
	}
	if gf.LogSourceCode {
		cfg.SourceCode = true
	}
	return cfg
}
