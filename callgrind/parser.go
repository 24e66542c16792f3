// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package callgrind extracts per-function cost metrics from the
// callgrind output format.
//
// The format is line oriented: a header block declares the position
// fields and the event kinds counted on each cost line, and the body
// groups cost lines into blocks introduced by "fn=" labels and
// terminated by blank lines. A SentinelParser scans the body for the
// blocks belonging to one target function and aggregates their
// self-cost into a Costs vector.
package callgrind

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// A SentinelParser extracts the total self-cost of a single function
// from a callgrind output file.
//
// A parser holds no mutable state across calls; distinct Parse calls
// own independent accumulators and may run concurrently.
type SentinelParser struct {
	sentinel Sentinel
}

// NewSentinelParser returns a parser extracting the costs of the
// function matched by sentinel.
func NewSentinelParser(sentinel Sentinel) *SentinelParser {
	return &SentinelParser{sentinel: sentinel}
}

// ParseOutput opens the output file and parses it. See Parse.
func (p *SentinelParser) ParseOutput(output *Output) (*Costs, error) {
	f, err := output.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(f, output.String())
}

// Parse scans a callgrind output file read from r and returns the
// total self-cost of the sentinel function, summed across every block
// matching the sentinel anywhere in the file. A function that appears
// in several call contexts therefore contributes all of its
// occurrences, not just the first.
//
// fileName is used in error messages; it is purely diagnostic.
//
// Parse fails with a *HeaderError if the header block is malformed,
// with a *CostLineError if a counter token does not parse, and with a
// *SentinelNotFoundError if the scan completes without any matching
// function block.
func (p *SentinelParser) Parse(r io.Reader, fileName string) (*Costs, error) {
	s := bufio.NewScanner(r)
	lineno := 0
	props, err := parseHeader(s, fileName, &lineno)
	if err != nil {
		return nil, err
	}

	costs := props.Prototype.Clone()
	found := false
	inRecord := false
	for s.Scan() {
		lineno++
		raw := s.Text()
		// Comment lines are skipped regardless of state.
		if strings.HasPrefix(raw, "#") {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			// A blank line terminates the current function's
			// self-cost block.
			inRecord = false
			continue
		}
		if !inRecord {
			if label, ok := strings.CutPrefix(line, "fn="); ok && p.sentinel.Matches(label) {
				inRecord = true
				found = true
			}
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			// A cost line. The first len(positions) tokens are
			// position fields; the rest are counters. A line carrying
			// fewer counters than declared leaves the trailing
			// counters at zero.
			tokens := strings.Fields(line)
			if len(tokens) > len(props.Positions) {
				tokens = tokens[len(props.Positions):]
			} else {
				tokens = nil
			}
			if err := costs.AddTokens(tokens); err != nil {
				var cle *CostLineError
				if errors.As(err, &cle) {
					cle.FileName = fileName
					cle.Line = lineno
				}
				return nil, err
			}
		}
		// Any other line inside a record carries no self-cost.
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, &SentinelNotFoundError{Sentinel: p.sentinel.String(), FileName: fileName}
	}
	return costs, nil
}
