// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

import "gonum.org/v1/capa"

// Status and StatusOK/StatusCancelled are shared with the univariate
// package so callers comparing results across both entry points use
// one enumeration.
type Status = capa.Status

const (
	StatusOK        = capa.StatusOK
	StatusCancelled = capa.StatusCancelled
)

// Settings configures a call to Solve. It repeats the univariate
// Settings fields with identical meaning and adds the
// multivariate-specific lag bound and an optional concurrency knob
// (spec.md §5: per-component statistics updates within one step are
// write-disjoint and may be parallelized at the implementer's
// discretion).
type Settings struct {
	PenaltyChange  float64
	PenaltyOutlier float64
	// PerComponentPenalty is the additional penalty charged for each
	// component marked affected within a collective anomaly,
	// discouraging spurious multi-component attribution (the
	// multivariate CAPA convention this package follows per
	// SPEC_FULL.md §9's resolution of the open extension point).
	PerComponentPenalty float64
	MinSegLength        int
	MaxSegLength        int
	// Lag bounds the per-component onset offset a collective anomaly
	// window may use; 0 <= Lag < MinSegLength.
	Lag int
	// Concurrency, when > 1, fans the per-component statistics update
	// out across components using golang.org/x/sync/errgroup. 0 or 1
	// means sequential.
	Concurrency int
	Cancel      <-chan struct{}
}

// Changepoint is one emitted segment boundary, extended with the
// per-component participation and lag spec.md §3's multivariate
// extension describes. In Result.Changepoints, AffectedComponents,
// StartLag, and EndLag are nil for point anomalies (Option == 1);
// PerStepOptions rows carry them for every option.
type Changepoint struct {
	Start, End int
	Option     int8

	AffectedComponents []int
	StartLag           []int
	EndLag             []int
}

// Length returns End-Start+1.
func (c Changepoint) Length() int {
	return c.End - c.Start + 1
}

// Result is the outcome of a call to Solve.
type Result struct {
	Status       Status
	OptimalCost  []float64
	Changepoints []Changepoint

	// perStep holds one row per index 1..n, each the node's resolved
	// option and affected-component/lag state at that step, in the
	// stride-per-index form changepointreturn_mean_online.cpp writes
	// online. Populated by Solve; retrieved with PerStepOptions.
	perStep []Changepoint
}

// PerStepOptions returns the per-index stride view of the solve: one
// Changepoint-shaped row per observation, carrying that step's option
// and per-component affected/lag state, regardless of whether the
// step ended up part of an emitted Changepoints entry. Start and End
// are both the step's index; the cut position is not recorded. This is the
// online output format changepointreturn_mean_online.cpp produces
// stride-by-stride rather than the assembled batch Changepoints list;
// most callers want Changepoints instead.
func (r Result) PerStepOptions() []Changepoint {
	return r.perStep
}
