// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const singleEventHeader = `# callgrind format
version: 1
events: Ir

`

func parseString(t *testing.T, sentinel, data string) (*Costs, error) {
	t.Helper()
	p := NewSentinelParser(NewSentinel(sentinel))
	return p.Parse(strings.NewReader(data), "test")
}

func TestParseSingleBlock(t *testing.T) {
	costs, err := parseString(t, "target", singleEventHeader+`fn=target
12 5
14 3
`)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := costs.ByKind(Ir); got != 8 {
		t.Errorf("Ir = %d, want 8", got)
	}
}

func TestParseAggregatesAllOccurrences(t *testing.T) {
	// The same function in two disjoint call contexts: both blocks
	// contribute to the total self-cost.
	costs, err := parseString(t, "target", singleEventHeader+`fn=target
1 5

fn=other
1 999

fn=target
1 5
`)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := costs.ByKind(Ir); got != 10 {
		t.Errorf("Ir = %d, want 10", got)
	}
}

func TestParseBlankLineEndsRecord(t *testing.T) {
	// The cost line after the blank line belongs to no record and must
	// be ignored.
	costs, err := parseString(t, "target", singleEventHeader+`fn=target
1 5

1 999
`)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := costs.ByKind(Ir); got != 5 {
		t.Errorf("Ir = %d, want 5", got)
	}
}

func TestParseSkipsCommentsAndNonCostLines(t *testing.T) {
	costs, err := parseString(t, "target", singleEventHeader+`fn=target
# a comment inside a record
cfn=callee
calls=1 10
1 5
`)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := costs.ByKind(Ir); got != 5 {
		t.Errorf("Ir = %d, want 5", got)
	}
}

func TestParseSkipsPositionFields(t *testing.T) {
	data := `# callgrind format
positions: instr line
events: Ir Dr

fn=target
0x1234 42 7 3
`
	costs, err := parseString(t, "target", data)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := costs.ByKind(Ir); got != 7 {
		t.Errorf("Ir = %d, want 7", got)
	}
	if got, _ := costs.ByKind(Dr); got != 3 {
		t.Errorf("Dr = %d, want 3", got)
	}
}

func TestParseSentinelNotFound(t *testing.T) {
	_, err := parseString(t, "target", singleEventHeader+`fn=other
1 5
`)
	var nf *SentinelNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Parse = %v, want *SentinelNotFoundError", err)
	}
	if nf.Sentinel != "target" || nf.FileName != "test" {
		t.Errorf("got sentinel %q in %q, want %q in %q", nf.Sentinel, nf.FileName, "target", "test")
	}
}

func TestParseMalformedCostLine(t *testing.T) {
	_, err := parseString(t, "target", singleEventHeader+`fn=target
1 5x
`)
	var cle *CostLineError
	if !errors.As(err, &cle) {
		t.Fatalf("Parse = %v, want *CostLineError", err)
	}
	if _, line := cle.Pos(); line != 6 {
		t.Errorf("Pos() line = %d, want 6", line)
	}
}

func TestParseConcurrent(t *testing.T) {
	// Distinct Parse calls own independent accumulators and need no
	// coordination.
	data := singleEventHeader + `fn=target
1 5
`
	p := NewSentinelParser(NewSentinel("target"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			costs, err := p.Parse(strings.NewReader(data), "test")
			if err != nil {
				t.Error(err)
				return
			}
			if got, _ := costs.ByKind(Ir); got != 5 {
				t.Errorf("Ir = %d, want 5", got)
			}
		}()
	}
	wg.Wait()
}
