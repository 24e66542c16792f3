// Copyright 2026 The iai-callgrind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history records every measured cost vector in a SQL
// database and summarizes the stored runs.
//
// It is a thin layer over database/sql; callers pick the driver by
// importing it (the command line tool uses sqlite3). A DB is safe for
// concurrent use by multiple goroutines.
package history

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"

	"github.com/nvzqz/iai-callgrind/callgrind"
)

// DB is a handle to a run history database.
type DB struct {
	sql *sql.DB
	// prepared statements
	insertRun     *sql.Stmt
	insertCounter *sql.Stmt
}

const createStmt = `
CREATE TABLE IF NOT EXISTS Runs (
	RunID INTEGER PRIMARY KEY AUTOINCREMENT,
	Module VARCHAR(255) NOT NULL,
	Sentinel VARCHAR(255) NOT NULL,
	Recorded TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS Counters (
	RunID INTEGER NOT NULL,
	Event VARCHAR(32) NOT NULL,
	Value BIGINT NOT NULL,
	PRIMARY KEY (RunID, Event),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS CountersByEvent ON Counters(Event, RunID);
`

// Open creates a DB backed by a SQL database. The parameters are the
// same as for sql.Open; only sqlite3 is exercised by the tool, but any
// engine accepting the same CREATE syntax works.
func Open(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite3" {
		// An in-memory sqlite database exists per connection; a second
		// pooled connection would see empty tables.
		db.SetMaxOpenConns(1)
	}
	d := &DB{sql: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (db *DB) createTables() error {
	_, err := db.sql.Exec(createStmt)
	return err
}

func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare(
		"INSERT INTO Runs (Module, Sentinel, Recorded) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertCounter, err = db.sql.Prepare(
		"INSERT INTO Counters (RunID, Event, Value) VALUES (?, ?, ?)")
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.insertRun != nil {
		db.insertRun.Close()
	}
	if db.insertCounter != nil {
		db.insertCounter.Close()
	}
	return db.sql.Close()
}

// A Run is one recorded measurement.
type Run struct {
	ID       int64
	Module   string
	Sentinel string
	Recorded time.Time
}

// RecordRun stores every present counter of costs, derived metrics
// included, as a new run of the given module and sentinel, returning
// the new run's ID. The write is transactional: either the run with
// all of its counters is stored, or nothing is.
func (db *DB) RecordRun(module, sentinel string, costs *callgrind.Costs) (int64, error) {
	tx, err := db.sql.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Stmt(db.insertRun).Exec(module, sentinel, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("history: inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	insert := tx.Stmt(db.insertCounter)
	for _, k := range costs.PresentKinds() {
		v, _ := costs.ByKind(k)
		if _, err := insert.Exec(id, k.String(), int64(v)); err != nil {
			return 0, fmt.Errorf("history: inserting %s: %w", k, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Runs returns the recorded runs of a module, oldest first.
func (db *DB) Runs(module string) ([]Run, error) {
	rows, err := db.sql.Query(
		"SELECT RunID, Module, Sentinel, Recorded FROM Runs WHERE Module = ? ORDER BY RunID",
		module)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Module, &r.Sentinel, &r.Recorded); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Counters returns one event kind's values across all runs of a
// module, oldest run first.
func (db *DB) Counters(module string, kind callgrind.EventKind) ([]float64, error) {
	rows, err := db.sql.Query(
		`SELECT c.Value FROM Counters c
		 JOIN Runs r ON r.RunID = c.RunID
		 WHERE r.Module = ? AND c.Event = ? ORDER BY c.RunID`,
		module, kind.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var values []float64
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, float64(v))
	}
	return values, rows.Err()
}

// A Summary describes the distribution of one event kind's counter
// across a module's recorded runs.
type Summary struct {
	Kind   callgrind.EventKind
	N      int
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes summary statistics for one event kind across all
// recorded runs of a module. It fails if no runs carry that counter.
func (db *DB) Summarize(module string, kind callgrind.EventKind) (*Summary, error) {
	values, err := db.Counters(module, kind)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("history: no recorded %s counters for %q", kind, module)
	}
	// Sort for fast order statistics.
	sort.Float64s(values)
	sample := stats.Sample{Xs: values, Sorted: true}
	min, max := sample.Bounds()
	return &Summary{
		Kind:   kind,
		N:      len(values),
		Mean:   sample.Mean(),
		StdDev: sample.StdDev(),
		Median: sample.Quantile(0.5),
		Min:    min,
		Max:    max,
	}, nil
}
