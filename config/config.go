// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the tool's optional iai.toml configuration
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/nvzqz/iai-callgrind/callgrind"
	"github.com/nvzqz/iai-callgrind/report"
)

// DefaultFile is the configuration file name looked up in the working
// directory when no explicit path is given.
const DefaultFile = "iai.toml"

// Config is the top-level configuration.
type Config struct {
	Callgrind  Callgrind  `toml:"callgrind"`
	Regression Regression `toml:"regression"`
	Output     Output     `toml:"output"`
}

// Callgrind configures how the profiler is invoked.
type Callgrind struct {
	// Valgrind is the valgrind executable. Defaults to "valgrind".
	Valgrind string `toml:"valgrind"`
	// Args are extra arguments appended to the callgrind invocation.
	Args []string `toml:"args"`
	// OutDir is where output files are written. Defaults to the
	// working directory.
	OutDir string `toml:"out-dir"`
}

// Regression configures soft limits that fail a run.
type Regression struct {
	// Limits maps an event kind name to the maximum allowed
	// percentage change against the baseline.
	Limits map[string]float64 `toml:"limits"`
	// FailFast stops at the first exceeded limit.
	FailFast bool `toml:"fail-fast"`
}

// Output configures presentation.
type Output struct {
	// Color is one of "auto", "on" and "off".
	Color string `toml:"color"`
	// Baselines overrides the snapshot directory.
	Baselines string `toml:"baselines"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Callgrind: Callgrind{Valgrind: "valgrind"},
		Output:    Output{Color: "auto"},
	}
}

// Load reads the configuration at path. A missing file is not an
// error: it loads the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Callgrind.Valgrind == "" {
		cfg.Callgrind.Valgrind = "valgrind"
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
	return cfg, nil
}

// ParseLimits converts the configured limits into checkable form, in
// deterministic (name) order.
func (r Regression) ParseLimits() ([]report.Limit, error) {
	names := make([]string, 0, len(r.Limits))
	for name := range r.Limits {
		names = append(names, name)
	}
	sort.Strings(names)
	limits := make([]report.Limit, 0, len(names))
	for _, name := range names {
		kind, err := callgrind.ParseEventKind(name)
		if err != nil {
			return nil, fmt.Errorf("config: regression limit: %w", err)
		}
		limits = append(limits, report.Limit{Kind: kind, Percentage: r.Limits[name]})
	}
	return limits, nil
}
