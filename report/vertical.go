// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strconv"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

// Markers for rows without a numeric delta.
const (
	notAvailable = "N/A"
	noChange     = "No change"
	unknown      = "*********"
)

// Column widths of the vertical layout.
const (
	labelWidth = 18
	newWidth   = 15
	oldWidth   = 15
)

// displayOrder is the fixed order event kinds are rendered in: raw
// throughput and cache counters first, then the derived summary
// counters, then the auxiliary counters.
var displayOrder = []callgrind.EventKind{
	callgrind.Ir,
	callgrind.L1hits,
	callgrind.LLhits,
	callgrind.RamHits,
	callgrind.TotalRW,
	callgrind.EstimatedCycles,
	callgrind.SysCount,
	callgrind.SysTime,
	callgrind.SysCpuTime,
	callgrind.Ge,
	callgrind.Bc,
	callgrind.Bcm,
	callgrind.Bi,
	callgrind.Bim,
	callgrind.ILdmr,
	callgrind.DLdmr,
	callgrind.DLdmw,
	callgrind.AcCost1,
	callgrind.AcCost2,
	callgrind.SpLoss1,
	callgrind.SpLoss2,
}

// rowLabels overrides the default "<kind>:" label for the kinds with a
// spelled-out name.
var rowLabels = map[callgrind.EventKind]string{
	callgrind.Ir:              "Instructions:",
	callgrind.L1hits:          "L1 Hits:",
	callgrind.LLhits:          "L2 Hits:",
	callgrind.RamHits:         "RAM Hits:",
	callgrind.TotalRW:         "Total read+write:",
	callgrind.EstimatedCycles: "Estimated Cycles:",
}

// A Row is one event kind's comparison between the new measurement and
// the baseline. Delta and Factor are zero Fields when the row carries
// no numeric delta.
type Row struct {
	Kind   callgrind.EventKind
	Label  string
	New    Field
	Old    Field
	Delta  Field
	Factor Field
}

// A VerticalFormat renders one row per displayed event kind, new value
// against baseline.
type VerticalFormat struct {
	// EventKinds is the display order. A zero value uses the default
	// order.
	EventKinds []callgrind.EventKind

	// Renderer styles the output. A zero value renders plain text.
	Renderer Renderer
}

// NewVerticalFormat returns a VerticalFormat with the default display
// order and renderer.
func NewVerticalFormat(r Renderer) *VerticalFormat {
	return &VerticalFormat{Renderer: r}
}

func rowLabel(kind callgrind.EventKind) string {
	if l, ok := rowLabels[kind]; ok {
		return l
	}
	return kind.String() + ":"
}

// Rows builds the comparison rows between newCosts and oldCosts.
// oldCosts may be nil when no baseline exists. Kinds absent from both
// vectors produce no row.
//
// Derived kinds require summarization. Rows summarizes newCosts in
// place if that has not happened yet; oldCosts is never modified, a
// summarized copy stands in for it when needed. A summarization
// failure (a report without cache simulation) just leaves the derived
// rows out.
func (v *VerticalFormat) Rows(newCosts, oldCosts *callgrind.Costs) []Row {
	order := v.EventKinds
	if order == nil {
		order = displayOrder
	}
	var rows []Row
	for _, kind := range order {
		if kind.IsDerived() {
			if !newCosts.Summarized() {
				_ = newCosts.Summarize()
			}
			if oldCosts != nil && !oldCosts.Summarized() {
				old := oldCosts.Clone()
				_ = old.Summarize()
				oldCosts = old
			}
		}
		newCost, haveNew := newCosts.ByKind(kind)
		oldCost, haveOld := uint64(0), false
		if oldCosts != nil {
			oldCost, haveOld = oldCosts.ByKind(kind)
		}
		row := Row{Kind: kind, Label: rowLabel(kind)}
		switch {
		case !haveNew && !haveOld:
			continue
		case !haveNew:
			row.New = Field{notAvailable, EmphasisStrong}
			row.Old = Field{formatCost(oldCost), EmphasisNone}
			row.Delta = Field{unknown, EmphasisDim}
		case !haveOld:
			row.New = Field{formatCost(newCost), EmphasisStrong}
			row.Old = Field{notAvailable, EmphasisNone}
			row.Delta = Field{unknown, EmphasisDim}
		case newCost == oldCost:
			row.New = Field{formatCost(newCost), EmphasisStrong}
			row.Old = Field{formatCost(oldCost), EmphasisNone}
			row.Delta = Field{noChange, EmphasisDim}
		default:
			row.New = Field{formatCost(newCost), EmphasisStrong}
			row.Old = Field{formatCost(oldCost), EmphasisNone}
			row.Delta = formatFloat(percentageDiff(newCost, oldCost), "%")
			row.Factor = formatFloat(factorDiff(newCost, oldCost), "x")
		}
		rows = append(rows, row)
	}
	return rows
}

// Format renders the comparison as a fixed-width multi-line text
// block. oldCosts may be nil when no baseline exists. Summarization
// follows the Rows rules: newCosts in place, oldCosts never modified.
func (v *VerticalFormat) Format(newCosts, oldCosts *callgrind.Costs) string {
	r := v.Renderer
	if r == nil {
		r = PlainRenderer{}
	}
	var buf bytes.Buffer
	for _, row := range v.Rows(newCosts, oldCosts) {
		buf.WriteString("  ")
		buf.WriteString(padRight(row.Label, labelWidth))
		buf.WriteString(r.Render(Field{padLeft(row.New.Text, newWidth), row.New.Emphasis}))
		buf.WriteString("|")
		buf.WriteString(r.Render(Field{padRight(row.Old.Text, oldWidth), row.Old.Emphasis}))
		buf.WriteString(" (")
		buf.WriteString(r.Render(Field{padCenter(row.Delta.Text, floatWidth), row.Delta.Emphasis}))
		buf.WriteString(")")
		if row.Factor.Text != "" {
			buf.WriteString(" [")
			buf.WriteString(r.Render(Field{padCenter(row.Factor.Text, floatWidth), row.Factor.Emphasis}))
			buf.WriteString("]")
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

func formatCost(v uint64) string {
	return strconv.FormatUint(v, 10)
}
