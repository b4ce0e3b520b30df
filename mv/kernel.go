// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// update folds observation x (length p) into candidate nd's running
// statistics for a window of length k = i-n+1, then recomputes every
// component's per-lag segment cost and its best achievable
// (bestEndCosts) and affected/lag selection (spec.md §9 extension
// point, resolved in DESIGN.md).
//
// Each component's sub-window for onset lag lambda is [n+lambda, i],
// length k-lambda; its sum is recovered exactly from the full window
// sum minus the sum of the first lambda observations, which are
// captured into earlyObs while k <= l. Offset (end) lag is not
// modeled independently — endLag is always 0 — a documented
// simplification of the two-sided extension point spec.md leaves open.
//
// Each component j only ever reads and writes its own slice index
// (cumSum[j], meanOfXs[j], earlyObs[j*l:(j+1)*l], ...), so the per-
// component loop is write-disjoint and, when concurrency > 1, is fanned
// out across components with golang.org/x/sync/errgroup (spec.md §5:
// "data-parallel over nodes, write-disjoint" is the implementer's
// discretion point; this package applies it within a node rather than
// across nodes, since nodes sharing one step are few relative to p in
// the regimes this package targets and distinct nodes are already
// processed one at a time by Solve's caller loop).
func update(nd *node, x []float64, k, l int, penaltyChange, perComponentPenalty float64, concurrency int) {
	p := len(x)
	if concurrency > 1 && p > 1 {
		var g errgroup.Group
		g.SetLimit(concurrency)
		for j := 0; j < p; j++ {
			j := j
			g.Go(func() error {
				updateComponent(nd, x[j], j, k, l, perComponentPenalty)
				return nil
			})
		}
		_ = g.Wait() // updateComponent never returns an error
	} else {
		for j := 0; j < p; j++ {
			updateComponent(nd, x[j], j, k, l, perComponentPenalty)
		}
	}

	var totalContribution float64
	for j := 0; j < p; j++ {
		if nd.affectedComponents[j] == 1 {
			totalContribution += nd.bestEndCosts[j]
		}
	}
	nd.segCost = nd.optCostPrev + totalContribution + penaltyChange
}

// updateComponent updates component j of nd's running statistics and
// per-lag segment costs. It touches only index j of nd's per-component
// slices, so concurrent calls for distinct j are safe.
func updateComponent(nd *node, xj float64, j, k, l int, perComponentPenalty float64) {
	nd.cumSum[j] += xj
	nd.meanOfXs[j] = nd.cumSum[j] / float64(k)

	if k <= l {
		nd.earlyObs[j*l+(k-1)] = xj
	}

	best := math.Inf(1)
	bestLag := 0
	for lag := 0; lag <= l; lag++ {
		if k <= lag {
			nd.segmentCosts[j*(l+1)+lag] = defaultSegmentCost
			continue
		}
		subSum := nd.cumSum[j]
		for e := 0; e < lag; e++ {
			subSum -= nd.earlyObs[j*l+e]
		}
		subK := float64(k - lag)
		mean := subSum / subK
		saving := subK * mean * mean
		cost := -saving + perComponentPenalty
		nd.segmentCosts[j*(l+1)+lag] = cost
		if cost < best {
			best = cost
			bestLag = lag
		}
	}
	nd.bestEndCosts[j] = best
	nd.startLag[j] = bestLag
	nd.endLag[j] = 0
	if best < 0 {
		nd.affectedComponents[j] = 1
	} else {
		nd.affectedComponents[j] = 0
	}
}

// pointSaving returns the single-sample saving for declaring x (length
// p) a point anomaly: the sum of each component's own squared-value
// saving, mirroring the univariate mean family's x^2.
func pointSaving(x []float64) float64 {
	var s float64
	for _, xj := range x {
		s += xj * xj
	}
	return s
}
