// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

// selectOption mirrors capa.selectOption (spec.md §4.3), operating on
// the total cross-component segCost computed by update instead of a
// single scalar statistic.
func selectOption(l *candidateList, i int, x []float64, penaltyOutlier float64, minseglength int) (cost float64, cut int, option int8) {
	arena := l.arena
	optCostPrev := arena[i].optCostPrev

	bestCost := optCostPrev
	bestCut := i - 1
	bestOption := int8(0)

	pointCost := optCostPrev - pointSaving(x) + penaltyOutlier
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
