// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import (
	"bufio"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func parseHeaderString(t *testing.T, data string) (*Properties, error) {
	t.Helper()
	s := bufio.NewScanner(strings.NewReader(data))
	lineno := 0
	return parseHeader(s, "test", &lineno)
}

func TestParseHeader(t *testing.T) {
	props, err := parseHeaderString(t, `# callgrind format
version: 1
creator: callgrind-3.22.0
pid: 2394
cmd: target/release/bench
part: 1

desc: Trigger: Program termination
positions: instr line
events: Ir Dr Dw
`)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"instr", "line"}; !reflect.DeepEqual(props.Positions, want) {
		t.Errorf("Positions = %q, want %q", props.Positions, want)
	}
	if want := []EventKind{Ir, Dr, Dw}; !reflect.DeepEqual(props.Prototype.Kinds(), want) {
		t.Errorf("Kinds = %v, want %v", props.Prototype.Kinds(), want)
	}
	if v, ok := props.Prototype.ByKind(Ir); !ok || v != 0 {
		t.Errorf("prototype Ir = %d, %v; want zero-valued", v, ok)
	}
}

func TestParseHeaderDefaultPositions(t *testing.T) {
	props, err := parseHeaderString(t, "# callgrind format\nevents: Ir\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"line"}; !reflect.DeepEqual(props.Positions, want) {
		t.Errorf("Positions = %q, want %q", props.Positions, want)
	}
}

func TestParseHeaderWithoutMarker(t *testing.T) {
	// Old callgrind versions omit the "# callgrind format" marker; a
	// declaration on the first line must not be lost.
	props, err := parseHeaderString(t, "positions: instr line\nevents: Ir Dr\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"instr", "line"}; !reflect.DeepEqual(props.Positions, want) {
		t.Errorf("Positions = %q, want %q", props.Positions, want)
	}
	if want := []EventKind{Ir, Dr}; !reflect.DeepEqual(props.Prototype.Kinds(), want) {
		t.Errorf("Kinds = %v, want %v", props.Prototype.Kinds(), want)
	}

	props, err = parseHeaderString(t, "events: Ir\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := []EventKind{Ir}; !reflect.DeepEqual(props.Prototype.Kinds(), want) {
		t.Errorf("Kinds = %v, want %v", props.Prototype.Kinds(), want)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"blank lines only", "\n\n\n"},
		{"missing events line", "# callgrind format\nversion: 1\n"},
		{"unknown event kind", "# callgrind format\nevents: Ir Bogus\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseHeaderString(t, test.data)
			var he *HeaderError
			if !errors.As(err, &he) {
				t.Fatalf("parseHeader = %v, want *HeaderError", err)
			}
			if name, _ := he.Pos(); name != "test" {
				t.Errorf("Pos() file = %q, want %q", name, "test")
			}
		})
	}
}
