// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Iai-callgrind profiles binaries under valgrind's callgrind tool,
// extracts the self-cost of a target function and compares it against
// a stored baseline.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvzqz/iai-callgrind/baseline"
	"github.com/nvzqz/iai-callgrind/config"
	"github.com/nvzqz/iai-callgrind/report"
)

var rootCmd = &cobra.Command{
	Use:           "iai-callgrind",
	Short:         "Benchmark binaries with callgrind and compare cost snapshots",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetPrefix("iai-callgrind: ")
	log.SetFlags(0)

	rootCmd.AddCommand(runCmd, compareCmd, historyCmd)
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", config.DefaultFile, "path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the configured iai.toml, falling back to defaults
// when the file does not exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newRenderer picks the output renderer from the --color flag, the
// configuration, and whether stdout is a terminal.
func newRenderer(cmd *cobra.Command, cfg *config.Config) report.Renderer {
	mode := cfg.Output.Color
	if cmd.Flags().Changed("color") {
		mode, _ = cmd.Flags().GetString("color")
	}
	switch mode {
	case "on":
		color.NoColor = false
		return report.ANSIRenderer{}
	case "off":
		return report.PlainRenderer{}
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return report.ANSIRenderer{}
		}
		return report.PlainRenderer{}
	}
}

// openStore opens the baseline snapshot store, honoring a configured
// override of its directory.
func openStore(cfg *config.Config) (*baseline.Store, error) {
	dir := cfg.Output.Baselines
	if dir == "" {
		var err error
		dir, err = baseline.DefaultDir("iai-callgrind")
		if err != nil {
			return nil, err
		}
	}
	return baseline.OpenStore(dir)
}

// historyPath returns the run history database path next to the
// baseline snapshots.
func historyPath(st *baseline.Store) string {
	return filepath.Join(st.Dir(), "history.db")
}
