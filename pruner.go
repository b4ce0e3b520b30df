// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

// prune implements spec.md §4.4: after step i has resolved opt_cost[i],
// remove every active candidate that can never win Option 2 at a
// future step (PELT-style dominance), plus any candidate whose segment
// length has reached maxseglength. The head sentinel is never a
// candidate passed here and is never pruned.
func prune(l *candidateList, i int, optCostI, penaltyChange float64, maxseglength int) {
	arena := l.arena
	threshold := optCostI + penaltyChange

	var toUnlink []int
	l.forwardFrom(l.firstActive(), func(idx int) bool {
		nd := &arena[idx]
		if nd.n > i {
			return false
		}
		if nd.segCost > threshold || i-nd.n+1 >= maxseglength {
			toUnlink = append(toUnlink, idx)
		}
		return true
	})
	for _, idx := range toUnlink {
		l.unlink(idx)
	}
}
