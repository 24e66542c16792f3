// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callgrind

import (
	"fmt"
	"os"
	"path/filepath"
)

// An Output is a handle to a callgrind output file on disk.
//
// The file itself is produced by an external callgrind run; an Output
// only names it and opens it for parsing.
type Output struct {
	Path string
}

// OutputPath returns the canonical output file path for profiling the
// named binary into dir.
func OutputPath(dir, binary string) string {
	return filepath.Join(dir, fmt.Sprintf("callgrind.%s.out", filepath.Base(binary)))
}

// String returns the output's path, for diagnostics.
func (o *Output) String() string {
	return o.Path
}

// Exists reports whether the output file is present on disk.
func (o *Output) Exists() bool {
	info, err := os.Stat(o.Path)
	return err == nil && info.Mode().IsRegular()
}

// open returns a fresh reader over the output file. Every call
// restarts the line sequence from the beginning.
func (o *Output) open() (*os.File, error) {
	return os.Open(o.Path)
}
