// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/capa"
)

func TestStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	x := []float64{0, 0, 3, 3, 3, 0, 0, 0}
	settings := capa.Settings{PenaltyChange: 2, PenaltyOutlier: 10, MinSegLength: 2, MaxSegLength: 8}
	key := Key(capa.Mean, x, settings)

	if _, ok, err := s.Get(key); err != nil || ok {
		t.Fatalf("Get on empty cache: ok=%v err=%v", ok, err)
	}

	res, err := capa.Solve(capa.Mean, x, settings)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if err := s.Put(key, res); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(res, got); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
}

func TestKeyStability(t *testing.T) {
	x := []float64{1, 2, 3}
	settings := capa.Settings{PenaltyChange: 1, PenaltyOutlier: 2, MinSegLength: 2, MaxSegLength: 3}
	if Key(capa.Mean, x, settings) != Key(capa.Mean, x, settings) {
		t.Error("Key is not deterministic for identical inputs")
	}
	if Key(capa.Mean, x, settings) == Key(capa.MeanVar, x, settings) {
		t.Error("Key collides across families")
	}
}
