// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "strings"

// maxDescriptionWidth is the maximum number of characters of a
// description shown in a title line before truncation.
const maxDescriptionWidth = 37

// truncationMarker is appended to a truncated description.
const truncationMarker = "..."

// A Header labels a report section: the benchmark's module path plus
// an optional identifier and free-text description.
type Header struct {
	ModulePath  string
	ID          string
	Description string
}

// NewHeader returns a header for the given module path. id and
// description may be empty.
func NewHeader(modulePath, id, description string) *Header {
	return &Header{ModulePath: modulePath, ID: id, Description: description}
}

// HeaderFromSegments returns a header whose module path is the
// segments joined by "::".
func HeaderFromSegments(segments []string, id, description string) *Header {
	return &Header{ModulePath: strings.Join(segments, "::"), ID: id, Description: description}
}

// Title renders the header as a single undecorated line. The
// description renders only alongside an identifier and is truncated to
// maxDescriptionWidth characters, never splitting a multi-byte
// character.
func (h *Header) Title() string {
	return h.title(PlainRenderer{})
}

// Render renders the title line through r.
func (h *Header) Render(r Renderer) string {
	return h.title(r)
}

func (h *Header) title(r Renderer) string {
	var sb strings.Builder
	sb.WriteString(r.Render(Field{h.ModulePath, EmphasisTitle}))
	if h.ID == "" {
		return sb.String()
	}
	sb.WriteString(" ")
	sb.WriteString(r.Render(Field{h.ID, EmphasisID}))
	if h.Description == "" {
		return sb.String()
	}
	truncated, cut := truncate(h.Description, maxDescriptionWidth)
	sb.WriteString(r.Render(Field{":", EmphasisID}))
	sb.WriteString(r.Render(Field{truncated, EmphasisDetail}))
	if cut {
		sb.WriteString(truncationMarker)
	}
	return sb.String()
}

// truncate cuts s to at most n characters, reporting whether anything
// was cut. It counts characters of the source text, not bytes.
func truncate(s string, n int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= n {
		return s, false
	}
	return string(runes[:n]), true
}
