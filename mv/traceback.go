// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

// traceback mirrors capa.traceback, additionally carrying each
// collective anomaly's per-component AffectedComponents/StartLag/
// EndLag, copied at the moment the window closes (spec.md §4.4).
func traceback(arena []node, n int) []Changepoint {
	var hops []Changepoint
	cur := n
	for cur != 0 {
		nd := &arena[cur]
		switch nd.option {
		case 1:
			hops = append(hops, Changepoint{Start: cur, End: cur, Option: 1})
		case 2:
			cp := Changepoint{
				Start:               arena[nd.optCut].n + 1,
				End:                 cur,
				Option:              2,
				AffectedComponents: append([]int(nil), nd.affectedComponents...),
				StartLag:           append([]int(nil), nd.startLag...),
				EndLag:             append([]int(nil), nd.endLag...),
			}
			hops = append(hops, cp)
		}
		cur = nd.optCut
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return hops
}

// perStepRow captures arena[i]'s decision at the moment index i is
// resolved: the stride-per-index view changepointreturn_mean_online.cpp
// writes out online, as opposed to the batch Changepoints traceback
// assembles once the whole series has been seen.
func perStepRow(nd *node, i int) Changepoint {
	return Changepoint{
		Start:              i,
		End:                i,
		Option:             nd.option,
		AffectedComponents: append([]int(nil), nd.affectedComponents...),
		StartLag:           append([]int(nil), nd.startLag...),
		EndLag:             append([]int(nil), nd.endLag...),
	}
}
