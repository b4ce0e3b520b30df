// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

// Family selects the per-observation cost model Solve uses. All
// families assume the caller has pre-standardized x to the family's
// baseline (zero mean unit variance for Mean/MeanVar, rate 1 for
// Poisson) — Solve does not enforce this, it is a caller contract
// (spec.md §6).
type Family int

const (
	// Mean is the mean-only Gaussian family, known unit variance.
	Mean Family = iota
	// MeanVar is the mean-and-variance Gaussian family.
	MeanVar
	// Poisson is the Poisson rate family, baseline rate 1.
	Poisson
)

func (f Family) String() string {
	switch f {
	case Mean:
		return "Mean"
	case MeanVar:
		return "MeanVar"
	case Poisson:
		return "Poisson"
	default:
		return "Family(unknown)"
	}
}

// Settings configures a call to Solve.
type Settings struct {
	// PenaltyChange is the penalty beta added per collective anomaly.
	PenaltyChange float64
	// PenaltyOutlier is the penalty beta' added per point anomaly.
	PenaltyOutlier float64
	// MinSegLength is the minimum length a collective anomaly may
	// have; must be >= 2.
	MinSegLength int
	// MaxSegLength is the maximum length a collective anomaly may
	// have, and the horizon beyond which a candidate is pruned
	// regardless of cost; must be >= MinSegLength and <= n.
	MaxSegLength int
	// Cancel, if non-nil, is polled every 128 steps; a receive (or a
	// closed channel) stops the DP early with StatusCancelled.
	Cancel <-chan struct{}
}

// Changepoint is one emitted segment boundary: a point anomaly
// (Start == End, Option == 1) or a collective anomaly (Option == 2)
// spanning [Start, End] inclusive, 1-based.
type Changepoint struct {
	Start, End int
	Option     int8
}

// Length returns End-Start+1, the segment length.
func (c Changepoint) Length() int {
	return c.End - c.Start + 1
}

// Result is the outcome of a call to Solve.
type Result struct {
	Status Status
	// OptimalCost holds opt_cost[i] for i in [1,n], 0-indexed here
	// (OptimalCost[0] is opt_cost[1]).
	OptimalCost  []float64
	Changepoints []Changepoint
}
