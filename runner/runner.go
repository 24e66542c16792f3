// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner invokes valgrind's callgrind tool on a benchmark
// binary and hands back the produced output file.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

// A Command describes one callgrind invocation.
type Command struct {
	// Valgrind is the valgrind executable. Defaults to "valgrind".
	Valgrind string

	// OutDir is the directory the output file is written to.
	// Defaults to the working directory.
	OutDir string

	// ToggleCollect restricts collection to the named function, so
	// setup and teardown outside of it stay out of the counters.
	ToggleCollect string

	// ExtraArgs are appended after the default callgrind arguments
	// and may override them.
	ExtraArgs []string
}

// defaultArgs enable what the parser and the derived metrics rely on:
// uncompressed names and positions, and cache simulation.
var defaultArgs = []string{
	"--tool=callgrind",
	"--cache-sim=yes",
	"--compress-pos=no",
	"--compress-strings=no",
	"--combine-dumps=yes",
}

// Args returns the full valgrind argument list for profiling binary
// with the given arguments, writing to outFile.
func (c *Command) Args(outFile, binary string, binaryArgs ...string) []string {
	args := append([]string{}, defaultArgs...)
	if c.ToggleCollect != "" {
		args = append(args, "--collect-atstart=no", "--toggle-collect="+c.ToggleCollect)
	}
	args = append(args, c.ExtraArgs...)
	args = append(args, "--callgrind-out-file="+outFile, "--", binary)
	args = append(args, binaryArgs...)
	return args
}

// Run profiles binary under callgrind and returns a handle to the
// output file. The binary's stdout and stderr pass through; valgrind's
// own diagnostics are captured and reported on failure.
func (c *Command) Run(ctx context.Context, binary string, binaryArgs ...string) (*callgrind.Output, error) {
	valgrind := c.Valgrind
	if valgrind == "" {
		valgrind = "valgrind"
	}
	outFile := callgrind.OutputPath(c.OutDir, binary)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, valgrind, c.Args(outFile, binary, binaryArgs...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s: %w\n%s", valgrind, err, stderr.Bytes())
	}

	output := &callgrind.Output{Path: outFile}
	if !output.Exists() {
		return nil, fmt.Errorf("callgrind produced no output file at %s", outFile)
	}
	return output, nil
}
