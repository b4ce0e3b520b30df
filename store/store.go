// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store caches capa.Result values in a local SQLite database,
// keyed by a content hash of the inputs that determine them. It exists
// so a host application calling Solve repeatedly over the same window
// (e.g. a dashboard re-rendering) need not re-run the DP every time.
package store

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/capa"

	_ "modernc.org/sqlite"
)

// Store caches solve results in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path and runs
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS solve_cache (
			id          TEXT PRIMARY KEY,
			cache_key   TEXT UNIQUE NOT NULL,
			result_json TEXT NOT NULL,
			created_at  INTEGER NOT NULL
		)`)
	return err
}

// Key computes the content hash used to look up a cached result for
// (family, x, settings). Callers needing a stable key across process
// restarts should compute it once and reuse it rather than
// reconstructing Settings piecemeal.
func Key(family capa.Family, x []float64, s capa.Settings) string {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(family))
	h.Write(buf[:])
	for _, v := range x {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	fmt.Fprintf(h, "|%g|%g|%d|%d", s.PenaltyChange, s.PenaltyOutlier, s.MinSegLength, s.MaxSegLength)
	return fmt.Sprintf("%016x", h.Sum64())
}

// Get returns the cached Result for key, if present.
func (s *Store) Get(key string) (capa.Result, bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT result_json FROM solve_cache WHERE cache_key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return capa.Result{}, false, nil
	}
	if err != nil {
		return capa.Result{}, false, fmt.Errorf("store: get: %w", err)
	}
	var res capa.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return capa.Result{}, false, fmt.Errorf("store: decode: %w", err)
	}
	return res, true, nil
}

// Put stores res under key, replacing any existing entry.
func (s *Store) Put(key string, res capa.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO solve_cache (id, cache_key, result_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			result_json = excluded.result_json,
			created_at  = excluded.created_at`,
		uuid.NewString(), key, string(raw), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	return nil
}

// Stats summarizes the cache's current contents.
type Stats struct {
	Entries int
	Oldest  time.Time
}

// Stats reports how many entries are cached and the oldest entry's
// age.
func (s *Store) Stats() (Stats, error) {
	var count int
	var oldestUnix sql.NullInt64
	err := s.db.QueryRow(`SELECT COUNT(*), MIN(created_at) FROM solve_cache`).Scan(&count, &oldestUnix)
	if err != nil {
		return Stats{}, fmt.Errorf("store: stats: %w", err)
	}
	st := Stats{Entries: count}
	if oldestUnix.Valid {
		st.Oldest = time.Unix(oldestUnix.Int64, 0)
	}
	return st, nil
}
