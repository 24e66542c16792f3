// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import "strings"

// A Sentinel identifies the target function whose self-cost a
// SentinelParser extracts from an output file.
//
// A sentinel is immutable after construction and matching is
// deterministic and side-effect-free, so a single Sentinel may back
// any number of concurrent parses.
type Sentinel struct {
	path string
}

// NewSentinel returns a sentinel matching the function label path,
// either exactly or by its trailing "::"-separated path segments.
func NewSentinel(path string) Sentinel {
	return Sentinel{path: path}
}

// SentinelFromSegments returns a sentinel for a function path given as
// individual segments.
func SentinelFromSegments(segments ...string) Sentinel {
	return Sentinel{path: strings.Join(segments, "::")}
}

// Matches reports whether the function label matches the sentinel.
// A label matches when it equals the sentinel's path or when its
// trailing path segments do, so "run" matches both "run" and
// "bench::group::run".
func (s Sentinel) Matches(label string) bool {
	return label == s.path || strings.HasSuffix(label, "::"+s.path)
}

// String returns the sentinel's function path.
func (s Sentinel) String() string {
	return s.path
}
