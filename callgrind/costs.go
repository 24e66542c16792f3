// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import (
	"fmt"
	"strconv"
)

// Costs is an ordered mapping from EventKind to an accumulated counter
// value.
//
// The set of raw kinds is fixed at construction time from the event
// list declared in an output file's header and never grows. Derived
// kinds appear only after Summarize has run.
type Costs struct {
	order      []EventKind // raw kinds in declared order
	values     [numEventKinds]uint64
	present    [numEventKinds]bool
	summarized bool
}

// NewCosts returns a zero-valued cost vector keyed by the given raw
// kinds, in order.
func NewCosts(kinds []EventKind) *Costs {
	c := &Costs{order: append([]EventKind(nil), kinds...)}
	for _, k := range kinds {
		c.present[k] = true
	}
	return c
}

// NewCostsFrom returns a cost vector keyed by kinds with the
// corresponding initial counter values.
func NewCostsFrom(kinds []EventKind, values []uint64) (*Costs, error) {
	if len(kinds) != len(values) {
		return nil, fmt.Errorf("callgrind: %d kinds but %d values", len(kinds), len(values))
	}
	c := NewCosts(kinds)
	for i, k := range kinds {
		c.values[k] = values[i]
	}
	return c, nil
}

// Clone returns a copy of c that shares no state with c.
func (c *Costs) Clone() *Costs {
	c2 := *c
	c2.order = append([]EventKind(nil), c.order...)
	return &c2
}

// Kinds returns the raw kinds of c in declared order. The caller must
// not modify the returned slice.
func (c *Costs) Kinds() []EventKind {
	return c.order
}

// PresentKinds returns every present kind: the raw kinds in declared
// order, then any derived kinds computed by Summarize.
func (c *Costs) PresentKinds() []EventKind {
	kinds := append([]EventKind(nil), c.order...)
	for k := firstDerived; int(k) < numEventKinds; k++ {
		if c.present[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// AddTokens adds a cost line's counter tokens to c, position by
// position in declared-event order. The caller must already have
// stripped the leading position fields.
//
// A cost line may carry fewer counters than the header declares; the
// missing trailing counters count as zero. Tokens beyond the declared
// count are ignored. A token that does not parse as an unsigned
// integer fails with a *CostLineError.
func (c *Costs) AddTokens(tokens []string) error {
	for i, tok := range tokens {
		if i >= len(c.order) {
			break
		}
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return &CostLineError{Token: tok, Err: err}
		}
		c.values[c.order[i]] += v
	}
	return nil
}

// Add merges o into c by summing corresponding raw counters. Counters
// absent in one operand count as zero. Derived values of c are
// discarded, since they no longer reproduce from the merged raw
// counters.
func (c *Costs) Add(o *Costs) {
	for _, k := range o.order {
		if !c.present[k] {
			c.present[k] = true
			c.order = append(c.order, k)
		}
		c.values[k] += o.values[k]
	}
	c.clearSummary()
}

// ByKind returns the counter for kind k and whether it is present.
// Raw kinds are always present; derived kinds are present only after
// Summarize. A derived kind that has not been computed is absent, not
// zero.
func (c *Costs) ByKind(k EventKind) (uint64, bool) {
	if k < 0 || int(k) >= numEventKinds || !c.present[k] {
		return 0, false
	}
	return c.values[k], true
}

// summaryInputs are the raw counters every derived metric is computed
// from. They are all present whenever callgrind ran with cache
// simulation enabled.
var summaryInputs = [...]EventKind{Ir, Dr, Dw, I1mr, D1mr, D1mw, ILmr, DLmr, DLmw}

// Summarize computes every derived kind from the currently stored raw
// counters. It is idempotent: a second call leaves the derived values
// unchanged. It fails without modifying c if a required raw counter is
// absent.
func (c *Costs) Summarize() error {
	if c.summarized {
		return nil
	}
	for _, k := range summaryInputs {
		if !c.present[k] {
			return fmt.Errorf("callgrind: summarizing costs: missing %s counter", k)
		}
	}

	ramHits := c.values[ILmr] + c.values[DLmr] + c.values[DLmw]
	l1Misses := c.values[I1mr] + c.values[D1mr] + c.values[D1mw]
	llHits := l1Misses - ramHits
	totalRW := c.values[Ir] + c.values[Dr] + c.values[Dw]
	l1Hits := totalRW - ramHits - llHits

	c.values[RamHits] = ramHits
	c.values[LLhits] = llHits
	c.values[L1hits] = l1Hits
	c.values[TotalRW] = totalRW
	c.values[EstimatedCycles] = l1Hits + 5*llHits + 35*ramHits
	for k := firstDerived; int(k) < numEventKinds; k++ {
		c.present[k] = true
	}
	c.summarized = true
	return nil
}

// Summarized reports whether Summarize has run on c.
func (c *Costs) Summarized() bool {
	return c.summarized
}

func (c *Costs) clearSummary() {
	for k := firstDerived; int(k) < numEventKinds; k++ {
		c.present[k] = false
		c.values[k] = 0
	}
	c.summarized = false
}

// Equal reports whether c and o hold the same raw counters. Derived
// values are excluded: they are reproducible from the raw data.
func (c *Costs) Equal(o *Costs) bool {
	for k := EventKind(0); k < firstDerived; k++ {
		if c.present[k] != o.present[k] {
			return false
		}
		if c.present[k] && c.values[k] != o.values[k] {
			return false
		}
	}
	return true
}

// String returns the raw counters in declared order, for diagnostics.
func (c *Costs) String() string {
	s := ""
	for i, k := range c.order {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", k, c.values[k])
	}
	return s
}
