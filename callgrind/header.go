// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import (
	"bufio"
	"strings"
)

// Properties is the parsed preamble of a callgrind output file: the
// declared position-field names and a zero-valued cost prototype keyed
// by the declared event list.
//
// Properties are produced once at the start of a parse and consumed
// immediately; they are not retained across parses.
type Properties struct {
	// Positions names the position fields that lead every cost line,
	// in order. It defaults to "line" when the header declares none.
	Positions []string

	// Prototype is a zero-valued cost vector keyed by the declared
	// event list.
	Prototype *Costs
}

// parseHeader consumes the header block from s, leaving the scanner
// positioned at the line after the "events:" declaration. lineno is
// advanced for every consumed line so the caller can keep reporting
// accurate positions.
func parseHeader(s *bufio.Scanner, fileName string, lineno *int) (*Properties, error) {
	// The first non-empty line is usually the "# callgrind format"
	// marker, skipped like any comment. Old callgrind versions omit it
	// and may lead with a declaration, so every non-comment line goes
	// through the key/value switch. An empty file is an error.
	nonEmpty := false
	props := &Properties{}
	for s.Scan() {
		*lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		nonEmpty = true
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch key {
		case "positions":
			props.Positions = strings.Fields(value)
		case "events":
			fields := strings.Fields(value)
			kinds := make([]EventKind, len(fields))
			for i, f := range fields {
				k, err := ParseEventKind(f)
				if err != nil {
					return nil, &HeaderError{fileName, *lineno, err.Error()}
				}
				kinds[i] = k
			}
			props.Prototype = NewCosts(kinds)
		}
		if props.Prototype != nil {
			break
		}
	}
	if props.Prototype == nil {
		if err := s.Err(); err != nil {
			return nil, &HeaderError{fileName, *lineno, err.Error()}
		}
		if !nonEmpty {
			return nil, &HeaderError{fileName, *lineno, "empty file"}
		}
		return nil, &HeaderError{fileName, *lineno, "missing events line"}
	}
	if len(props.Positions) == 0 {
		// Per the callgrind format, the default position is the source
		// line.
		props.Positions = []string{"line"}
	}
	return props, nil
}
