// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "github.com/fatih/color"

// ANSIRenderer renders emphasis as ANSI color and weight via
// fatih/color. It honors color.NoColor, so output degrades to plain
// text on dumb terminals and pipes.
type ANSIRenderer struct{}

var (
	ansiStrong = color.New(color.Bold)
	ansiDim    = color.New(color.FgHiBlack)
	ansiAlert  = color.New(color.FgHiRed, color.Bold)
	ansiGood   = color.New(color.FgHiGreen, color.Bold)
	ansiTitle  = color.New(color.FgGreen)
	ansiID     = color.New(color.FgCyan)
	ansiDetail = color.New(color.FgBlue, color.Bold)
)

// Render implements Renderer.
func (ANSIRenderer) Render(f Field) string {
	switch f.Emphasis {
	case EmphasisStrong:
		return ansiStrong.Sprint(f.Text)
	case EmphasisDim:
		return ansiDim.Sprint(f.Text)
	case EmphasisAlert:
		return ansiAlert.Sprint(f.Text)
	case EmphasisGood:
		return ansiGood.Sprint(f.Text)
	case EmphasisTitle:
		return ansiTitle.Sprint(f.Text)
	case EmphasisID:
		return ansiID.Sprint(f.Text)
	case EmphasisDetail:
		return ansiDetail.Sprint(f.Text)
	}
	return f.Text
}
