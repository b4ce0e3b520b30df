// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

// prune mirrors capa.prune (spec.md §4.4): drop candidates dominated
// under the cost model or past the maximum segment length.
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
