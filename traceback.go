// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

// traceback walks opt_cut from node n back to the head sentinel,
// emitting one Changepoint per hop whose option is 1 (point anomaly)
// or 2 (collective anomaly) — option 0 ("extend background") advances
// the walk without producing a boundary, since it closes no segment —
// then reverses the emitted hops into chronological order (spec.md
// §4.4 Traceback). The walk visits the head sentinel in at most n
// steps since opt_cut always points to a node with a strictly smaller
// n (spec.md §3 invariants).
func traceback(arena []node, n int) []Changepoint {
	var hops []Changepoint
	cur := n
	for cur != 0 {
		nd := &arena[cur]
		switch nd.option {
		case 1:
			hops = append(hops, Changepoint{Start: cur, End: cur, Option: 1})
		case 2:
			hops = append(hops, Changepoint{Start: arena[nd.optCut].n + 1, End: cur, Option: 2})
		}
		cur = nd.optCut
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return hops
}
