// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

// A Limit is a soft percentage limit on the change of one event kind.
// A positive limit caps how much the counter may grow; a negative
// limit demands at least that much improvement.
type Limit struct {
	Kind       callgrind.EventKind
	Percentage float64
}

// A Regression is one exceeded limit.
type Regression struct {
	Kind  callgrind.EventKind
	New   uint64
	Old   uint64
	Diff  float64 // signed percentage change
	Limit float64
}

func (r Regression) String() string {
	return fmt.Sprintf("%s: %s%% exceeds limit of %s%% (%d -> %d)",
		r.Kind, signedShort(r.Diff), signedShort(r.Limit), r.Old, r.New)
}

// CheckRegression compares newCosts against oldCosts under the given
// limits and returns every exceeded one, in limit order. Kinds absent
// from either vector are skipped: with no baseline there is nothing to
// regress from. Derived kinds summarize newCosts in place the same way
// formatting does; oldCosts is never modified.
func CheckRegression(newCosts, oldCosts *callgrind.Costs, limits []Limit) []Regression {
	if oldCosts == nil {
		return nil
	}
	var regressions []Regression
	for _, limit := range limits {
		if limit.Kind.IsDerived() {
			if !newCosts.Summarized() {
				_ = newCosts.Summarize()
			}
			if !oldCosts.Summarized() {
				old := oldCosts.Clone()
				_ = old.Summarize()
				oldCosts = old
			}
		}
		newCost, ok := newCosts.ByKind(limit.Kind)
		if !ok {
			continue
		}
		oldCost, ok := oldCosts.ByKind(limit.Kind)
		if !ok {
			continue
		}
		diff := percentageDiff(newCost, oldCost)
		if diff > limit.Percentage {
			regressions = append(regressions, Regression{
				Kind:  limit.Kind,
				New:   newCost,
				Old:   oldCost,
				Diff:  diff,
				Limit: limit.Percentage,
			})
		}
	}
	return regressions
}
