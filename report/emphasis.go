// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders human-readable comparisons between a freshly
// measured cost vector and a stored baseline.
//
// Formatting is split from presentation: formatters emit Fields tagged
// with abstract emphasis, and a Renderer maps each tag to a concrete
// output style. This keeps the comparison logic free of any terminal
// dependency; swapping the renderer switches between plain text, ANSI
// color, and HTML output.
package report

// Emphasis is the presentation intent of a formatted field.
type Emphasis int

const (
	// EmphasisNone renders without decoration.
	EmphasisNone Emphasis = iota
	// EmphasisStrong marks the primary value of a row.
	EmphasisStrong
	// EmphasisDim marks filler such as "N/A" and "No change" markers.
	EmphasisDim
	// EmphasisAlert marks a regression.
	EmphasisAlert
	// EmphasisGood marks an improvement.
	EmphasisGood
	// EmphasisTitle marks a report section title.
	EmphasisTitle
	// EmphasisID marks a benchmark identifier.
	EmphasisID
	// EmphasisDetail marks free-text detail such as a description.
	EmphasisDetail
)

var emphasisNames = map[Emphasis]string{
	EmphasisNone:   "none",
	EmphasisStrong: "strong",
	EmphasisDim:    "dim",
	EmphasisAlert:  "alert",
	EmphasisGood:   "good",
	EmphasisTitle:  "title",
	EmphasisID:     "id",
	EmphasisDetail: "detail",
}

// String returns the emphasis tag's name, also used as the CSS class
// in HTML output.
func (e Emphasis) String() string {
	if s, ok := emphasisNames[e]; ok {
		return s
	}
	return "none"
}

// A Field is a fragment of formatted output carrying its presentation
// intent. Padding is applied to Text before rendering, so renderers
// may wrap the text in invisible styling sequences without breaking
// column alignment.
type Field struct {
	Text     string
	Emphasis Emphasis
}

// A Renderer maps an emphasized field to its final textual form.
type Renderer interface {
	Render(f Field) string
}

// PlainRenderer renders fields as bare text, dropping all emphasis.
type PlainRenderer struct{}

// Render implements Renderer.
func (PlainRenderer) Render(f Field) string {
	return f.Text
}
