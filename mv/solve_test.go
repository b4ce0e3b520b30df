// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

import (
	"math"
	"testing"
)

func flat(n int) []float64 {
	return make([]float64, n)
}

func TestSolveFlatNoAnomalies(t *testing.T) {
	x := [][]float64{flat(8), flat(8)}
	s := Settings{PenaltyChange: 10, PenaltyOutlier: 10, PerComponentPenalty: 1, MinSegLength: 2, MaxSegLength: 8, Lag: 0}
	res, err := Solve(x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Changepoints) != 0 {
		t.Errorf("Changepoints = %v, want none", res.Changepoints)
	}
}

func TestSolveCollectiveOneComponent(t *testing.T) {
	c1 := []float64{0, 0, 3, 3, 3, 0, 0, 0}
	c2 := flat(8)
	s := Settings{PenaltyChange: 2, PenaltyOutlier: 20, PerComponentPenalty: 0.5, MinSegLength: 2, MaxSegLength: 8, Lag: 0}
	res, err := Solve([][]float64{c1, c2}, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Changepoints) != 1 {
		t.Fatalf("Changepoints = %v, want exactly one", res.Changepoints)
	}
	cp := res.Changepoints[0]
	if cp.Option != 2 || cp.Start != 3 || cp.End != 5 {
		t.Errorf("Changepoint = %+v, want Start=3 End=5 Option=2", cp)
	}
	if len(cp.AffectedComponents) != 2 || cp.AffectedComponents[0] != 1 || cp.AffectedComponents[1] != 0 {
		t.Errorf("AffectedComponents = %v, want [1 0]", cp.AffectedComponents)
	}
}

func TestSolveWithLag(t *testing.T) {
	// Component 0 shifts 3 one sample later than component 1.
	c0 := []float64{0, 0, 0, 3, 3, 3, 0, 0}
	c1 := []float64{0, 0, 3, 3, 3, 0, 0, 0}
	s := Settings{PenaltyChange: 2, PenaltyOutlier: 20, PerComponentPenalty: 0.5, MinSegLength: 2, MaxSegLength: 8, Lag: 1}
	res, err := Solve([][]float64{c0, c1}, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Changepoints) == 0 {
		t.Fatal("expected at least one changepoint")
	}
}

func TestSolveConcurrency(t *testing.T) {
	c1 := []float64{0, 0, 3, 3, 3, 0, 0, 0}
	c2 := flat(8)
	s := Settings{PenaltyChange: 2, PenaltyOutlier: 20, PerComponentPenalty: 0.5, MinSegLength: 2, MaxSegLength: 8, Lag: 0, Concurrency: 4}
	res, err := Solve([][]float64{c1, c2}, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Changepoints) != 1 {
		t.Fatalf("Changepoints = %v, want exactly one", res.Changepoints)
	}
}

func TestSolveValidation(t *testing.T) {
	cases := []struct {
		name string
		x    [][]float64
		s    Settings
	}{
		{"empty series list", nil, Settings{MinSegLength: 2, MaxSegLength: 2}},
		{"ragged", [][]float64{flat(5), flat(4)}, Settings{MinSegLength: 2, MaxSegLength: 2}},
		{"lag too large", [][]float64{flat(5)}, Settings{MinSegLength: 2, MaxSegLength: 5, Lag: 2}},
		{"negative lag", [][]float64{flat(5)}, Settings{MinSegLength: 2, MaxSegLength: 5, Lag: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Solve(c.x, c.s)
			if err == nil {
				t.Errorf("Solve(%q) returned nil error, want a validation error", c.name)
			}
		})
	}
}

func TestSolveFiniteCosts(t *testing.T) {
	c1 := []float64{0, 1, 0, 4, 4, 4, 0, -1, 0, 0}
	c2 := []float64{0, 0, 0, 3, 3, 3, 0, 0, 0, 0}
	s := Settings{PenaltyChange: 2, PenaltyOutlier: 5, PerComponentPenalty: 0.3, MinSegLength: 2, MaxSegLength: 10, Lag: 1}
	res, err := Solve([][]float64{c1, c2}, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, c := range res.OptimalCost {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Errorf("opt_cost[%d] = %v, want finite", i+1, c)
		}
	}
}
