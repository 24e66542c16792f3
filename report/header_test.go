// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestHeaderTitle(t *testing.T) {
	tests := []struct {
		name   string
		header *Header
		want   string
	}{
		{
			"module only",
			NewHeader("bench::fib", "", "ignored without id"),
			"bench::fib",
		},
		{
			"module and id",
			NewHeader("bench::fib", "short", ""),
			"bench::fib short",
		},
		{
			"id and description",
			NewHeader("bench::fib", "short", "n = 10"),
			"bench::fib short:n = 10",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.header.Title(); got != test.want {
				t.Errorf("Title() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestHeaderTitleTruncation(t *testing.T) {
	atLimit := strings.Repeat("x", maxDescriptionWidth)
	h := NewHeader("bench::fib", "long", atLimit)
	if got, want := h.Title(), "bench::fib long:"+atLimit; got != want {
		t.Errorf("Title() = %q, want %q (no marker at the limit)", got, want)
	}

	h.Description = atLimit + "overflow"
	want := "bench::fib long:" + atLimit + truncationMarker
	if got := h.Title(); got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestHeaderTitleTruncatesCharactersNotBytes(t *testing.T) {
	// Each 'ä' is two bytes; truncation must count characters and
	// never split one.
	h := NewHeader("m", "id", strings.Repeat("ä", maxDescriptionWidth+3))
	got := h.Title()
	if !utf8.ValidString(got) {
		t.Fatalf("Title() is not valid UTF-8: %q", got)
	}
	want := "m id:" + strings.Repeat("ä", maxDescriptionWidth) + truncationMarker
	if got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestHeaderFromSegments(t *testing.T) {
	h := HeaderFromSegments([]string{"bench", "group", "fib"}, "", "")
	if got, want := h.Title(), "bench::group::fib"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}
