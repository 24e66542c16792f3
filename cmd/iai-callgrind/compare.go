// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvzqz/iai-callgrind/callgrind"
	"github.com/nvzqz/iai-callgrind/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] <new.out> [old.out]",
	Short: "Compare the sentinel's costs between existing callgrind output files",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  compareOutputs,
}

func init() {
	compareCmd.Flags().String("sentinel", "", "function whose self-cost is extracted (required)")
	_ = compareCmd.MarkFlagRequired("sentinel")
	compareCmd.Flags().String("module", "", "module path shown in the report (default: new output file)")
	compareCmd.Flags().Bool("html", false, "also write the comparison as an HTML table")
}

func compareOutputs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sentinelPath, _ := cmd.Flags().GetString("sentinel")
	parser := callgrind.NewSentinelParser(callgrind.NewSentinel(sentinelPath))

	newCosts, err := parser.ParseOutput(&callgrind.Output{Path: args[0]})
	if err != nil {
		return err
	}
	var oldCosts *callgrind.Costs
	if len(args) == 2 {
		oldCosts, err = parser.ParseOutput(&callgrind.Output{Path: args[1]})
		if err != nil {
			return err
		}
	}

	module, _ := cmd.Flags().GetString("module")
	if module == "" {
		module = args[0]
	}
	header := report.NewHeader(module, "", "")

	renderer := newRenderer(cmd, cfg)
	format := report.NewVerticalFormat(renderer)
	fmt.Println(header.Render(renderer))
	fmt.Print(format.Format(newCosts, oldCosts))

	if html, _ := cmd.Flags().GetBool("html"); html {
		return report.FormatHTML(os.Stdout, header.Title(), format.Rows(newCosts, oldCosts))
	}
	return nil
}
