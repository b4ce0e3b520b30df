// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

import "math"

// varFloor is the minimum variance estimate the mean+variance family
// will use in a log, preventing ln of a non-positive number from a
// degenerate (near-constant) candidate segment.
const varFloor = 1e-8

// rateFloor is the minimum Poisson rate estimate treated as "usable";
// at or below it the saving falls back to the numerical guard in
// spec.md §4.2.
const rateFloor = 0

// costFamily is the per-family capability the DP driver closes over
// once at the start of Solve, so the inner loop never performs a type
// switch per candidate (spec.md §9's "no dynamic dispatch inside the
// inner loop"). Each family lives in its own kernel_*.go file.
//
// update folds observation x into nd's running sufficient statistics
// for a segment of length k = i-nd.n+1 and recomputes nd.segCost from
// nd.optCostPrev. pointSaving returns the single-sample saving used by
// Option 1 at the current index.
type costFamily interface {
	update(nd *node, x float64, k int, penaltyChange float64)
	pointSaving(x float64) float64
}

// safeLog returns ln(v), substituting varFloor for non-positive v so
// that a near-zero or negative variance/rate estimate never produces
// -Inf or NaN.
func safeLog(v float64) float64 {
	if v <= 0 {
		v = varFloor
	}
	return math.Log(v)
}

func familyFor(f Family) costFamily {
	switch f {
	case MeanVar:
		return meanVarFamily{}
	case Poisson:
		return poissonFamily{}
	default:
		return meanFamily{}
	}
}
