// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

import "math"

// cancelPollInterval is how often, in steps, the DP checks
// Settings.Cancel (spec.md §5 "Suspension points").
const cancelPollInterval = 128

// Solve runs the pruned optimal-partition dynamic program over x using
// the given cost family and Settings, returning the penalized
// segmentation (spec.md §6). Parameter validation happens before any
// allocation (error taxonomy kind 1); a positive signal on
// Settings.Cancel stops the DP and returns StatusCancelled with an
// invalid Result (kind 3) — the caller must discard it.
func Solve(family Family, x []float64, s Settings) (Result, error) {
	n := len(x)
	if err := validateSettings(x, s); err != nil {
		return Result{}, err
	}

	fam := familyFor(family)
	list := newCandidateList(n, s.MaxSegLength)
	arena := list.arena

	optCost := make([]float64, n)

	for i := 1; i <= n; i++ {
		xi := x[i-1]

		// Cost Kernel: update every active candidate with n <= i
		// (a candidate with n > i has not yet "started" and is left
		// untouched even though its arena slot already exists — all
		// positions are linked up front at populate time).
		list.forwardFrom(list.firstActive(), func(idx int) bool {
			nd := &arena[idx]
			if nd.n > i {
				return false
			}
			k := i - nd.n + 1
			fam.update(nd, xi, k, s.PenaltyChange)
			if math.IsNaN(nd.segCost) {
				nd.segCost = infCost
			}
			return true
		})

		// Selector: pick the minimum-cost option at this index.
		cost, cut, option := selectOption(list, i, xi, fam, s.PenaltyOutlier, s.MinSegLength)
		arena[i].optCost = cost
		arena[i].optCut = cut
		arena[i].option = option
		optCost[i-1] = cost
		if i+1 < len(arena) {
			arena[i+1].optCostPrev = cost
		}

		// Pruner: drop dominated candidates and those past the
		// maximum segment length.
		prune(list, i, cost, s.PenaltyChange, s.MaxSegLength)

		if s.Cancel != nil && i%cancelPollInterval == 0 {
			select {
			case <-s.Cancel:
				return Result{Status: StatusCancelled}, nil
			default:
			}
		}
	}

	return Result{
		Status:       StatusOK,
		OptimalCost:  optCost,
		Changepoints: traceback(arena, n),
	}, nil
}
