// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import "fmt"

// A HeaderError reports a malformed or missing header section in a
// callgrind output file.
type HeaderError struct {
	FileName string
	Line     int
	Msg      string
}

// Pos returns the position of the error as a file name and a 1-based
// line number within that file.
func (e *HeaderError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s:%d: parsing header: %s", e.FileName, e.Line, e.Msg)
}

// A CostLineError reports a cost line token that could not be parsed
// as a counter.
type CostLineError struct {
	FileName string
	Line     int
	Token    string
	Err      error
}

// Pos returns the position of the error as a file name and a 1-based
// line number within that file.
func (e *CostLineError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *CostLineError) Error() string {
	return fmt.Sprintf("%s:%d: malformed cost line: counter %q: %v", e.FileName, e.Line, e.Token, e.Err)
}

func (e *CostLineError) Unwrap() error {
	return e.Err
}

// A SentinelNotFoundError reports that a scan of an entire output file
// found no function block matching the sentinel. It is distinct from a
// successful parse with zero-valued costs.
type SentinelNotFoundError struct {
	Sentinel string
	FileName string
}

func (e *SentinelNotFoundError) Error() string {
	return fmt.Sprintf("%s: sentinel %q not found", e.FileName, e.Sentinel)
}
