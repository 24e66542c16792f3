// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"testing"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

func TestCheckRegression(t *testing.T) {
	newCosts := mustCosts(t,
		[]callgrind.EventKind{callgrind.Ir, callgrind.Dr},
		[]uint64{150, 98})
	oldCosts := mustCosts(t,
		[]callgrind.EventKind{callgrind.Ir, callgrind.Dr},
		[]uint64{100, 100})

	limits := []Limit{
		{callgrind.Ir, 10},  // +50% exceeds +10%
		{callgrind.Dr, -5},  // -2% does not reach the demanded -5%
		{callgrind.Bim, 10}, // absent from both, skipped
	}
	got := CheckRegression(newCosts, oldCosts, limits)
	if len(got) != 2 {
		t.Fatalf("CheckRegression returned %d regressions, want 2: %v", len(got), got)
	}
	if got[0].Kind != callgrind.Ir || got[0].Diff != 50 {
		t.Errorf("first regression = %+v, want Ir at +50%%", got[0])
	}
	if got[1].Kind != callgrind.Dr {
		t.Errorf("second regression = %+v, want Dr", got[1])
	}
}

func TestCheckRegressionWithinLimits(t *testing.T) {
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{104})
	oldCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{100})

	if got := CheckRegression(newCosts, oldCosts, []Limit{{callgrind.Ir, 5}}); got != nil {
		t.Errorf("CheckRegression = %v, want none", got)
	}
}

func TestCheckRegressionNoBaseline(t *testing.T) {
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{100})
	if got := CheckRegression(newCosts, nil, []Limit{{callgrind.Ir, 0}}); got != nil {
		t.Errorf("CheckRegression = %v, want none without a baseline", got)
	}
}
