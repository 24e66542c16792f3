// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import "testing"

func TestSentinelMatches(t *testing.T) {
	tests := []struct {
		sentinel string
		label    string
		want     bool
	}{
		{"run", "run", true},
		{"run", "bench::group::run", true},
		{"run", "bench::group::dryrun", false},
		{"run", "run::inner", false},
		{"bench::run", "my::bench::run", true},
		{"bench::run", "bench::run", true},
		{"run", "other", false},
	}
	for _, test := range tests {
		s := NewSentinel(test.sentinel)
		if got := s.Matches(test.label); got != test.want {
			t.Errorf("NewSentinel(%q).Matches(%q) = %v, want %v", test.sentinel, test.label, got, test.want)
		}
	}
}

func TestSentinelFromSegments(t *testing.T) {
	s := SentinelFromSegments("bench", "group", "run")
	if got, want := s.String(), "bench::group::run"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
