// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

// selectOption implements spec.md §4.3: at index i, compare extending
// the background (option 0), declaring x[i] a point anomaly (option
// 1), and closing a collective anomaly at some active candidate
// (option 2), and return the winning cost, back-pointer, and option
// code. Ties favor the lower option number, then the earliest n,
// which falls out of using strict "<" comparisons in n-increasing
// traversal order.
func selectOption(l *candidateList, i int, x float64, fam costFamily, penaltyOutlier float64, minseglength int) (cost float64, cut int, option int8) {
	arena := l.arena
	optCostPrev := arena[i].optCostPrev

	bestCost := optCostPrev
	bestCut := i - 1
	bestOption := int8(0)

	pointCost := optCostPrev - fam.pointSaving(x) + penaltyOutlier
	if pointCost < bestCost {
		bestCost = pointCost
		bestCut = i - 1
		bestOption = 1
	}

	limit := i - minseglength + 2
	l.forwardFrom(l.firstActive(), func(idx int) bool {
		nd := &arena[idx]
		if nd.n >= limit {
			return false
		}
		if nd.segCost < bestCost {
			bestCost = nd.segCost
			bestCut = nd.n - 1
			bestOption = 2
		}
		return true
	})

	return bestCost, bestCut, bestOption
}
