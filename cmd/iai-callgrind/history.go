// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nvzqz/iai-callgrind/callgrind"
	"github.com/nvzqz/iai-callgrind/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [flags] <module>",
	Short: "Summarize the recorded runs of a module",
	Args:  cobra.ExactArgs(1),
	RunE:  showHistory,
}

func init() {
	historyCmd.Flags().StringSlice("events", []string{"Ir", "EstimatedCycles"}, "event kinds to summarize")
}

func showHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	db, err := history.Open("sqlite3", historyPath(st))
	if err != nil {
		return err
	}
	defer db.Close()

	module := args[0]
	names, _ := cmd.Flags().GetStringSlice("events")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "event\truns\tmean\tstddev\tmedian\tmin\tmax")
	for _, name := range names {
		kind, err := callgrind.ParseEventKind(name)
		if err != nil {
			return err
		}
		s, err := db.Summarize(module, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.1f\t%.0f\t%.0f\n",
			s.Kind, s.N, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
	}
	return w.Flush()
}
