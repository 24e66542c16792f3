// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package baseline persists named cost snapshots so a later run can be
// compared against them.
//
// Snapshots live as schema-versioned msgpack files in a cache
// directory. Only raw counters are stored; derived metrics are
// recomputed on load when needed.
package baseline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

// schemaVersion is bumped whenever the Snapshot layout changes, so
// stale files are rejected instead of misread.
const schemaVersion uint16 = 1

const snapshotExt = ".baseline"

// ErrNotExist reports that no snapshot with the requested name is
// stored.
var ErrNotExist = errors.New("baseline does not exist")

// A Snapshot is one persisted cost vector plus the context it was
// measured in.
type Snapshot struct {
	Schema     uint16
	ModulePath string
	Sentinel   string
	CreatedAt  time.Time
	Events     []string
	Values     []uint64
}

// NewSnapshot captures the raw counters of costs under the given
// module path and sentinel.
func NewSnapshot(modulePath, sentinel string, costs *callgrind.Costs) *Snapshot {
	kinds := costs.Kinds()
	s := &Snapshot{
		Schema:     schemaVersion,
		ModulePath: modulePath,
		Sentinel:   sentinel,
		CreatedAt:  time.Now(),
		Events:     make([]string, len(kinds)),
		Values:     make([]uint64, len(kinds)),
	}
	for i, k := range kinds {
		s.Events[i] = k.String()
		v, _ := costs.ByKind(k)
		s.Values[i] = v
	}
	return s
}

// Costs reconstructs the snapshot's cost vector.
func (s *Snapshot) Costs() (*callgrind.Costs, error) {
	kinds := make([]callgrind.EventKind, len(s.Events))
	for i, name := range s.Events {
		k, err := callgrind.ParseEventKind(name)
		if err != nil {
			return nil, fmt.Errorf("baseline: %w", err)
		}
		kinds[i] = k
	}
	return callgrind.NewCostsFrom(kinds, s.Values)
}

// A Store keeps named snapshots in one directory.
type Store struct {
	dir string
}

// DefaultDir returns the conventional snapshot directory for the named
// tool, under XDG_CACHE_HOME or the user cache directory.
func DefaultDir(app string) (string, error) {
	if base := os.Getenv("XDG_CACHE_HOME"); base != "" {
		return filepath.Join(base, app), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, app), nil
}

// OpenStore opens (creating if necessary) a snapshot store at dir.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (st *Store) Dir() string {
	return st.dir
}

func (st *Store) path(name string) string {
	return filepath.Join(st.dir, name+snapshotExt)
}

// Save persists snap under name, atomically replacing any previous
// snapshot of that name.
func (st *Store) Save(name string, snap *Snapshot) error {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("baseline: encoding %q: %w", name, err)
	}
	tmp, err := os.CreateTemp(st.dir, name+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), st.path(name))
}

// Load reads the snapshot stored under name. It fails with ErrNotExist
// when none is stored and rejects snapshots written by an incompatible
// schema.
func (st *Store) Load(name string) (*Snapshot, error) {
	data, err := os.ReadFile(st.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("baseline %q: %w", name, ErrNotExist)
		}
		return nil, err
	}
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("baseline: decoding %q: %w", name, err)
	}
	if snap.Schema != schemaVersion {
		return nil, fmt.Errorf("baseline %q: schema %d, want %d", name, snap.Schema, schemaVersion)
	}
	return &snap, nil
}

// Delete removes the snapshot stored under name, if any.
func (st *Store) Delete(name string) error {
	err := os.Remove(st.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// List returns the names of all stored snapshots, in directory order.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), snapshotExt) {
			names = append(names, strings.TrimSuffix(e.Name(), snapshotExt))
		}
	}
	return names, nil
}
