// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"strings"
	"testing"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

func mustCosts(t *testing.T, kinds []callgrind.EventKind, values []uint64) *callgrind.Costs {
	t.Helper()
	c, err := callgrind.NewCostsFrom(kinds, values)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestFormatComparison(t *testing.T) {
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{150})
	oldCosts := mustCosts(t,
		[]callgrind.EventKind{callgrind.Ir, callgrind.SysCount},
		[]uint64{100, 7})

	got := NewVerticalFormat(PlainRenderer{}).Format(newCosts, oldCosts)
	want := "" +
		"  Instructions:     " + "            150" + "|" + "100            " + " (+50.0000%) [+1.50000x]\n" +
		"  sysCount:         " + "            N/A" + "|" + "7              " + " (*********)\n"
	if got != want {
		t.Errorf("Format:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatNoChange(t *testing.T) {
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{100})
	oldCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{100})

	got := NewVerticalFormat(PlainRenderer{}).Format(newCosts, oldCosts)
	want := "  Instructions:     " + "            100" + "|" + "100            " + " (No change)\n"
	if got != want {
		t.Errorf("Format:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatWithoutBaseline(t *testing.T) {
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{42})

	got := NewVerticalFormat(PlainRenderer{}).Format(newCosts, nil)
	want := "  Instructions:     " + "             42" + "|" + "N/A            " + " (*********)\n"
	if got != want {
		t.Errorf("Format:\n%s\nwant:\n%s", got, want)
	}
}

func TestRowsSummarizeInPlace(t *testing.T) {
	kinds := []callgrind.EventKind{
		callgrind.Ir, callgrind.Dr, callgrind.Dw,
		callgrind.I1mr, callgrind.D1mr, callgrind.D1mw,
		callgrind.ILmr, callgrind.DLmr, callgrind.DLmw,
	}
	newCosts := mustCosts(t, kinds, []uint64{100, 20, 10, 6, 3, 2, 1, 1, 1})

	rows := NewVerticalFormat(PlainRenderer{}).Rows(newCosts, nil)
	if !newCosts.Summarized() {
		t.Error("Rows did not summarize the new costs in place")
	}
	var cycles *Row
	for i := range rows {
		if rows[i].Kind == callgrind.EstimatedCycles {
			cycles = &rows[i]
		}
	}
	if cycles == nil {
		t.Fatal("no EstimatedCycles row")
	}
	if cycles.New.Text != "264" {
		t.Errorf("EstimatedCycles new = %q, want %q", cycles.New.Text, "264")
	}
}

func TestRowsLeaveBaselineUnmodified(t *testing.T) {
	kinds := []callgrind.EventKind{
		callgrind.Ir, callgrind.Dr, callgrind.Dw,
		callgrind.I1mr, callgrind.D1mr, callgrind.D1mw,
		callgrind.ILmr, callgrind.DLmr, callgrind.DLmw,
	}
	values := []uint64{100, 20, 10, 6, 3, 2, 1, 1, 1}
	newCosts := mustCosts(t, kinds, values)
	oldCosts := mustCosts(t, kinds, values)

	rows := NewVerticalFormat(PlainRenderer{}).Rows(newCosts, oldCosts)
	if oldCosts.Summarized() {
		t.Error("Rows summarized the baseline in place")
	}
	for _, r := range rows {
		if r.Kind == callgrind.EstimatedCycles && r.Old.Text != "264" {
			t.Errorf("EstimatedCycles old = %q, want %q", r.Old.Text, "264")
		}
	}
}

func TestRowsSkipDerivedWithoutCacheSim(t *testing.T) {
	// Without cache counters the derived kinds cannot be computed and
	// must produce no rows rather than zeros.
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir}, []uint64{5})
	rows := NewVerticalFormat(PlainRenderer{}).Rows(newCosts, nil)
	if len(rows) != 1 || rows[0].Kind != callgrind.Ir {
		t.Errorf("rows = %v, want only the Ir row", rows)
	}
}

func TestFormatEmphasis(t *testing.T) {
	newCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir, callgrind.Dr}, []uint64{150, 50})
	oldCosts := mustCosts(t, []callgrind.EventKind{callgrind.Ir, callgrind.Dr}, []uint64{100, 100})

	v := &VerticalFormat{EventKinds: []callgrind.EventKind{callgrind.Ir, callgrind.Dr}}
	rows := v.Rows(newCosts, oldCosts)
	byKind := map[callgrind.EventKind]Row{}
	for _, r := range rows {
		byKind[r.Kind] = r
	}
	if e := byKind[callgrind.Ir].Delta.Emphasis; e != EmphasisAlert {
		t.Errorf("regression delta emphasis = %v, want alert", e)
	}
	if e := byKind[callgrind.Dr].Delta.Emphasis; e != EmphasisGood {
		t.Errorf("improvement delta emphasis = %v, want good", e)
	}
	if !strings.Contains(byKind[callgrind.Dr].Delta.Text, "-50.0000%") {
		t.Errorf("improvement delta text = %q", byKind[callgrind.Dr].Delta.Text)
	}
}
