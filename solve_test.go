// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolveFlatNoAnomalies(t *testing.T) {
	// S1: flat series, large penalties, nothing should be flagged.
	x := []float64{0, 0, 0, 0, 0, 0, 0, 0}
	s := Settings{PenaltyChange: 10, PenaltyOutlier: 10, MinSegLength: 2, MaxSegLength: 8}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Changepoints) != 0 {
		t.Errorf("Changepoints = %v, want none", res.Changepoints)
	}
	if got := res.OptimalCost[len(res.OptimalCost)-1]; got != 0 {
		t.Errorf("opt_cost[8] = %v, want 0", got)
	}
}

func TestSolveSingleOutlier(t *testing.T) {
	// S2: a single large sample should be flagged as a point anomaly.
	x := []float64{0, 0, 0, 5, 0, 0, 0, 0}
	s := Settings{PenaltyChange: 10, PenaltyOutlier: 10, MinSegLength: 2, MaxSegLength: 8}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []Changepoint{{Start: 4, End: 4, Option: 1}}
	if diff := cmp.Diff(want, res.Changepoints); diff != "" {
		t.Errorf("Changepoints mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveCollectiveMean(t *testing.T) {
	// S3: a short elevated run is a collective anomaly.
	x := []float64{0, 0, 3, 3, 3, 0, 0, 0}
	s := Settings{PenaltyChange: 2, PenaltyOutlier: 10, MinSegLength: 2, MaxSegLength: 8}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []Changepoint{{Start: 3, End: 5, Option: 2}}
	if diff := cmp.Diff(want, res.Changepoints); diff != "" {
		t.Errorf("Changepoints mismatch (-want +got):\n%s", diff)
	}
}

func TestSolvePoissonCollective(t *testing.T) {
	// S4.
	x := []float64{1, 1, 1, 1, 8, 8, 8, 1, 1, 1}
	s := Settings{PenaltyChange: 3, PenaltyOutlier: 10, MinSegLength: 2, MaxSegLength: 10}
	res, err := Solve(Poisson, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []Changepoint{{Start: 5, End: 7, Option: 2}}
	if diff := cmp.Diff(want, res.Changepoints); diff != "" {
		t.Errorf("Changepoints mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveMaxSegLengthClamp(t *testing.T) {
	// S5: a long constant run is split into segments no longer than
	// MaxSegLength.
	x := make([]float64, 20)
	for i := range x {
		x[i] = 3
	}
	s := Settings{PenaltyChange: 1, PenaltyOutlier: 10, MinSegLength: 2, MaxSegLength: 5}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	maxCollectives := (20 + 4) / 5
	var collectives int
	for _, c := range res.Changepoints {
		if c.Option != 2 {
			continue
		}
		collectives++
		if c.Length() > 5 {
			t.Errorf("changepoint %v has length %d > MaxSegLength", c, c.Length())
		}
	}
	if collectives == 0 {
		t.Error("expected at least one collective anomaly")
	}
	if collectives > maxCollectives {
		t.Errorf("got %d collective anomalies, want <= %d", collectives, maxCollectives)
	}
}

func TestSolveCancellation(t *testing.T) {
	// S6.
	x := make([]float64, 300)
	cancel := make(chan struct{}, 1)
	cancel <- struct{}{}
	s := Settings{PenaltyChange: 1, PenaltyOutlier: 1, MinSegLength: 2, MaxSegLength: 10, Cancel: cancel}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Status != StatusCancelled {
		t.Errorf("Status = %v, want StatusCancelled", res.Status)
	}
}

func TestSolveInfinitePenaltiesSuppressAnomalies(t *testing.T) {
	// Property 7.
	x := []float64{0, 0, 3, 3, 3, 0, 5, 0, 0}
	s := Settings{PenaltyChange: 1e12, PenaltyOutlier: 1e12, MinSegLength: 2, MaxSegLength: 9}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Changepoints) != 0 {
		t.Errorf("Changepoints = %v, want none under infinite penalties", res.Changepoints)
	}
}

func TestSolveZeroPenaltyChangeDetectsStep(t *testing.T) {
	// Property 8.
	x := []float64{0, 0, 0, 5, 5, 5, 5, 0, 0, 0}
	s := Settings{PenaltyChange: 0, PenaltyOutlier: 1e12, MinSegLength: 2, MaxSegLength: 10}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []Changepoint{{Start: 4, End: 7, Option: 2}}
	if diff := cmp.Diff(want, res.Changepoints); diff != "" {
		t.Errorf("Changepoints mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveDeterministic(t *testing.T) {
	// Property 6: identical inputs give byte-identical outputs.
	x := []float64{0, 1, 0, 4, 4, 4, 0, -1, 0, 0}
	s := Settings{PenaltyChange: 2, PenaltyOutlier: 5, MinSegLength: 2, MaxSegLength: 10}
	r1, err := Solve(MeanVar, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	r2, err := Solve(MeanVar, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("repeated Solve diverged (-first +second):\n%s", diff)
	}
}

func TestSolveValidation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		s    Settings
	}{
		{"empty", 0, Settings{MinSegLength: 2, MaxSegLength: 2}},
		{"minseg too small", 5, Settings{MinSegLength: 1, MaxSegLength: 2}},
		{"maxseg less than minseg", 5, Settings{MinSegLength: 3, MaxSegLength: 2}},
		{"maxseg exceeds n", 5, Settings{MinSegLength: 2, MaxSegLength: 6}},
		{"negative penalty change", 5, Settings{MinSegLength: 2, MaxSegLength: 5, PenaltyChange: -1}},
		{"negative penalty outlier", 5, Settings{MinSegLength: 2, MaxSegLength: 5, PenaltyOutlier: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := make([]float64, c.n)
			_, err := Solve(Mean, x, c.s)
			if err == nil {
				t.Errorf("Solve(%q) returned nil error, want a validation error", c.name)
			}
		})
	}
}

func TestOptimalCostNonIncreasing(t *testing.T) {
	// Property 1: opt_cost is never worse than the trivial all-background
	// partition, whose cost is the sum of per-sample baseline costs (0
	// for the mean family under an N(0,1) baseline, since no saving is
	// ever subtracted unless an anomaly wins).
	x := []float64{0.1, -0.2, 0.05, 2.5, 0.3, -0.1, 3.1, 3.0, 0.0}
	s := Settings{PenaltyChange: 4, PenaltyOutlier: 6, MinSegLength: 2, MaxSegLength: 9}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, c := range res.OptimalCost {
		if c > 0+1e-9 {
			t.Errorf("opt_cost[%d] = %v, want <= trivial baseline cost 0", i+1, c)
		}
	}
}

func TestChangepointsRespectSegLengthBounds(t *testing.T) {
	// Property 2.
	x := []float64{0, 0, 3, 3, 3, 3, 3, 0, 0, 0}
	s := Settings{PenaltyChange: 1, PenaltyOutlier: 20, MinSegLength: 2, MaxSegLength: 6}
	res, err := Solve(Mean, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, c := range res.Changepoints {
		if c.Option != 2 {
			continue
		}
		if c.Length() < s.MinSegLength || c.Length() > s.MaxSegLength {
			t.Errorf("changepoint %v has length %d outside [%d,%d]", c, c.Length(), s.MinSegLength, s.MaxSegLength)
		}
	}
}

func TestMeanVarSavingFinite(t *testing.T) {
	// Numeric guard: a near-constant segment must not blow up ln(sigma^2).
	x := []float64{1, 1, 1, 1, 1, 1}
	s := Settings{PenaltyChange: 0.1, PenaltyOutlier: 0.1, MinSegLength: 2, MaxSegLength: 6}
	res, err := Solve(MeanVar, x, s)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, c := range res.OptimalCost {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			t.Errorf("opt_cost[%d] = %v, want finite", i+1, c)
		}
	}
}
