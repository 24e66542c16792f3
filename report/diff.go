// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// percentageDiff returns the signed percentage change from old to new.
// Equal values yield exactly 0. A change from zero is signed infinity,
// rendered as a saturated marker rather than a number.
func percentageDiff(new, old uint64) float64 {
	if new == old {
		return 0
	}
	if old == 0 {
		return math.Inf(1)
	}
	return (float64(new) - float64(old)) / float64(old) * 100
}

// factorDiff returns the signed multiplicative change from old to new.
// The magnitude is always >= 1; the sign distinguishes regression from
// improvement. Equal values yield exactly 1.
func factorDiff(new, old uint64) float64 {
	switch {
	case new == old:
		return 1
	case new > old:
		if old == 0 {
			return math.Inf(1)
		}
		return float64(new) / float64(old)
	default:
		if new == 0 {
			return math.Inf(-1)
		}
		return -(float64(old) / float64(new))
	}
}

// floatWidth is the fixed display width of a formatted delta cell,
// unit suffix included.
const floatWidth = 9

// formatFloat renders a delta value in a fixed-width cell. Positive
// values are regressions (alert emphasis), negative values are
// improvements. Infinite values saturate to an all-plus or all-minus
// marker.
func formatFloat(f float64, unit string) Field {
	switch {
	case math.IsInf(f, 1):
		return Field{strings.Repeat("+", floatWidth), EmphasisAlert}
	case math.IsInf(f, -1):
		return Field{strings.Repeat("-", floatWidth), EmphasisGood}
	}
	text := padCenter(signedShort(f), floatWidth-len(unit)) + unit
	if math.Signbit(f) {
		return Field{text, EmphasisGood}
	}
	return Field{text, EmphasisAlert}
}

// signedShort formats f with an explicit sign and a precision chosen
// to keep the result eight characters wide for magnitudes below 100000.
func signedShort(f float64) string {
	switch abs := math.Abs(f); {
	case abs < 10:
		return fmt.Sprintf("%+.5f", f)
	case abs < 100:
		return fmt.Sprintf("%+.4f", f)
	case abs < 1000:
		return fmt.Sprintf("%+.3f", f)
	case abs < 10000:
		return fmt.Sprintf("%+.2f", f)
	case abs < 100000:
		return fmt.Sprintf("%+.1f", f)
	default:
		return fmt.Sprintf("%+.0f", f)
	}
}

// Width-aware padding. Emphasis is applied after padding, so these
// operate on undecorated text.

func padLeft(s string, w int) string {
	if n := runewidth.StringWidth(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func padRight(s string, w int) string {
	if n := runewidth.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padCenter(s string, w int) string {
	n := runewidth.StringWidth(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
