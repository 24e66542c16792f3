// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	// The run history is kept in sqlite.
	_ "github.com/mattn/go-sqlite3"

	"github.com/nvzqz/iai-callgrind/baseline"
	"github.com/nvzqz/iai-callgrind/callgrind"
	"github.com/nvzqz/iai-callgrind/config"
	"github.com/nvzqz/iai-callgrind/history"
	"github.com/nvzqz/iai-callgrind/report"
	"github.com/nvzqz/iai-callgrind/runner"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] <binary> [args...]",
	Short: "Profile a binary under callgrind and compare against a baseline",
	Long: `Run profiles the given binary under valgrind's callgrind tool,
extracts the self-cost of the sentinel function, renders a comparison
against the named baseline snapshot and records the measurement in the
run history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBenchmark,
}

func init() {
	runCmd.Flags().String("sentinel", "", "function whose self-cost is extracted (required)")
	_ = runCmd.MarkFlagRequired("sentinel")
	runCmd.Flags().String("module", "", "module path shown in the report (default: binary name)")
	runCmd.Flags().String("id", "", "benchmark identifier shown in the report")
	runCmd.Flags().String("description", "", "benchmark description shown in the report")
	runCmd.Flags().String("baseline", "default", "baseline snapshot to compare against")
	runCmd.Flags().Bool("save", false, "save the new measurement as the baseline")
	runCmd.Flags().String("out-dir", "", "directory for callgrind output files")
	runCmd.Flags().Bool("html", false, "also write the comparison as an HTML table")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sentinelPath, _ := cmd.Flags().GetString("sentinel")
	binary := args[0]

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = cfg.Callgrind.OutDir
	}
	command := &runner.Command{
		Valgrind:      cfg.Callgrind.Valgrind,
		OutDir:        outDir,
		ToggleCollect: sentinelPath,
		ExtraArgs:     cfg.Callgrind.Args,
	}
	output, err := command.Run(cmd.Context(), binary, args[1:]...)
	if err != nil {
		return err
	}

	parser := callgrind.NewSentinelParser(callgrind.NewSentinel(sentinelPath))
	newCosts, err := parser.ParseOutput(output)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	baselineName, _ := cmd.Flags().GetString("baseline")
	oldCosts, err := loadBaselineCosts(st, baselineName)
	if err != nil {
		return err
	}

	module, _ := cmd.Flags().GetString("module")
	if module == "" {
		module = filepath.Base(binary)
	}
	id, _ := cmd.Flags().GetString("id")
	description, _ := cmd.Flags().GetString("description")
	header := report.NewHeader(module, id, description)

	renderer := newRenderer(cmd, cfg)
	format := report.NewVerticalFormat(renderer)
	fmt.Println(header.Render(renderer))
	fmt.Print(format.Format(newCosts, oldCosts))

	if html, _ := cmd.Flags().GetBool("html"); html {
		if err := report.FormatHTML(os.Stdout, header.Title(), format.Rows(newCosts, oldCosts)); err != nil {
			return err
		}
	}

	db, err := history.Open("sqlite3", historyPath(st))
	if err != nil {
		return err
	}
	defer db.Close()
	if _, err := db.RecordRun(module, sentinelPath, newCosts); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := st.Save(baselineName, baseline.NewSnapshot(module, sentinelPath, newCosts)); err != nil {
			return err
		}
		log.Printf("saved baseline %q", baselineName)
	}

	return checkRegressions(cfg, newCosts, oldCosts)
}

// loadBaselineCosts returns the stored baseline costs, or nil when no
// baseline of that name exists yet.
func loadBaselineCosts(st *baseline.Store, name string) (*callgrind.Costs, error) {
	snap, err := st.Load(name)
	if err != nil {
		if errors.Is(err, baseline.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return snap.Costs()
}

// checkRegressions enforces the configured soft limits, logging every
// exceeded one.
func checkRegressions(cfg *config.Config, newCosts, oldCosts *callgrind.Costs) error {
	limits, err := cfg.Regression.ParseLimits()
	if err != nil {
		return err
	}
	regressions := report.CheckRegression(newCosts, oldCosts, limits)
	if len(regressions) == 0 {
		return nil
	}
	if cfg.Regression.FailFast {
		regressions = regressions[:1]
	}
	for _, r := range regressions {
		log.Printf("regression: %s", r)
	}
	return fmt.Errorf("%d regression limit(s) exceeded", len(regressions))
}
