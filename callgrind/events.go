// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import "fmt"

// An EventKind identifies a single callgrind cost counter.
//
// The set of kinds is closed: it covers every counter callgrind can
// emit on an "events:" header line, plus the derived metrics computed
// by (*Costs).Summarize. Derived kinds never appear in an output file;
// they are synthesized from the raw counters.
type EventKind int

const (
	// Ir counts executed instructions.
	Ir EventKind = iota
	// Dr counts data cache reads (memory reads).
	Dr
	// Dw counts data cache writes (memory writes).
	Dw
	// I1mr counts L1 instruction cache read misses.
	I1mr
	// D1mr counts L1 data cache read misses.
	D1mr
	// D1mw counts L1 data cache write misses.
	D1mw
	// ILmr counts last-level instruction cache read misses.
	ILmr
	// DLmr counts last-level data cache read misses.
	DLmr
	// DLmw counts last-level data cache write misses.
	DLmw
	// SysCount counts performed system calls.
	SysCount
	// SysTime is the elapsed time in system calls.
	SysTime
	// SysCpuTime is the CPU time spent in system calls.
	SysCpuTime
	// Ge counts global bus events.
	Ge
	// Bc counts executed conditional branches.
	Bc
	// Bcm counts mispredicted conditional branches.
	Bcm
	// Bi counts executed indirect branches.
	Bi
	// Bim counts mispredicted indirect branches.
	Bim
	// ILdmr counts dirty misses of the instruction read at the last level.
	ILdmr
	// DLdmr counts dirty misses of the data read at the last level.
	DLdmr
	// DLdmw counts dirty misses of the data write at the last level.
	DLdmw
	// AcCost1 counts first-level counters of events successfully debited.
	AcCost1
	// AcCost2 counts last-level counters of events successfully debited.
	AcCost2
	// SpLoss1 counts first-level counters of events not attributed.
	SpLoss1
	// SpLoss2 counts last-level counters of events not attributed.
	SpLoss2

	// L1hits is the derived number of L1 cache hits.
	L1hits
	// LLhits is the derived number of last-level cache hits.
	LLhits
	// RamHits is the derived number of accesses that went to RAM.
	RamHits
	// TotalRW is the derived total of reads and writes (Ir + Dr + Dw).
	TotalRW
	// EstimatedCycles is the derived cycle estimate
	// (L1hits + 5*LLhits + 35*RamHits).
	EstimatedCycles

	numEventKinds int = iota
)

// firstDerived is the first derived kind. Kinds below it are raw,
// meaning they are read directly from an output file.
const firstDerived = L1hits

var eventKindNames = [numEventKinds]string{
	Ir:              "Ir",
	Dr:              "Dr",
	Dw:              "Dw",
	I1mr:            "I1mr",
	D1mr:            "D1mr",
	D1mw:            "D1mw",
	ILmr:            "ILmr",
	DLmr:            "DLmr",
	DLmw:            "DLmw",
	SysCount:        "sysCount",
	SysTime:         "sysTime",
	SysCpuTime:      "sysCpuTime",
	Ge:              "Ge",
	Bc:              "Bc",
	Bcm:             "Bcm",
	Bi:              "Bi",
	Bim:             "Bim",
	ILdmr:           "ILdmr",
	DLdmr:           "DLdmr",
	DLdmw:           "DLdmw",
	AcCost1:         "AcCost1",
	AcCost2:         "AcCost2",
	SpLoss1:         "SpLoss1",
	SpLoss2:         "SpLoss2",
	L1hits:          "L1hits",
	LLhits:          "LLhits",
	RamHits:         "RamHits",
	TotalRW:         "TotalRW",
	EstimatedCycles: "EstimatedCycles",
}

var eventKindByName = func() map[string]EventKind {
	m := make(map[string]EventKind, numEventKinds)
	for k, name := range eventKindNames {
		m[name] = EventKind(k)
	}
	return m
}()

// String returns the kind's name as it appears on an "events:" header
// line.
func (k EventKind) String() string {
	if k < 0 || int(k) >= numEventKinds {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// IsDerived reports whether k is computed from other counters rather
// than read from an output file.
func (k EventKind) IsDerived() bool {
	return k >= firstDerived && int(k) < numEventKinds
}

// ParseEventKind returns the event kind named by s.
func ParseEventKind(s string) (EventKind, error) {
	k, ok := eventKindByName[s]
	if !ok {
		return 0, fmt.Errorf("unknown event kind %q", s)
	}
	return k, nil
}
