// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

import "math"

// node is one candidate segment start-point, addressed by its index
// into candidateList.arena rather than by pointer. Stable indices give
// the same "address never changes" guarantee the original pointer-
// linked list relied on for opt_cut, without the aliasing hazards of
// hand-managed heap nodes.
type node struct {
	n           int     // 1-based start-point position; 0 and len(arena)-1 are sentinels
	cumSum      float64 // running sum of x[n..i]; the Poisson family keeps the running mean here
	cumSumSq    float64 // running sum of squares (mean+var family only)
	optCostPrev float64 // opt_cost of node n-1, fixed when that node resolved
	segCost     float64 // candidate total cost if segment [n,i] closes now
	optCost     float64 // valid only once this node's own index has been resolved
	optCut      int     // arena index of the back-pointer; -1 = unresolved
	option      int8    // 0 background, 1 point anomaly, 2 collective; -1 unresolved
	destroyAt   int     // index at which this node must be unlinked

	next, prev int // arena indices
}

// candidateList is the doubly-linked active-candidate set threaded
// through a contiguous arena of length n+2. Index 0 is the head
// sentinel (never pruned, opt_cost 0, n 0); index n+1 is the tail
// sentinel. Both sentinels are permanent arena slots and are never
// unlinked.
type candidateList struct {
	arena []node
	head  int
	tail  int
}

// newCandidateList allocates the backing arena and links sentinel head
// through node[1..n] to sentinel tail. Nodes hold no observations:
// Solve passes x[i-1] to the cost kernel at each step, and the kernel
// folds it into each node's family-specific sufficient statistics.
func newCandidateList(n, maxseglength int) *candidateList {
	arena := make([]node, n+2)
	for i := range arena {
		arena[i] = node{
			n:         i,
			optCut:    -1,
			option:    -1,
			destroyAt: i + maxseglength,
			next:      i + 1,
			prev:      i - 1,
		}
	}
	arena[n+1].next = -1
	arena[0].prev = -1
	arena[0].optCost = 0
	return &candidateList{arena: arena, head: 0, tail: n + 1}
}

// unlink splices node i out of the active list in O(1). i must not be
// a sentinel.
func (l *candidateList) unlink(i int) {
	a := l.arena
	prev, next := a[i].prev, a[i].next
	a[prev].next = next
	if next != -1 {
		a[next].prev = prev
	}
}

// forwardFrom walks the active list starting at arena index start
// (callers pass firstActive()), calling f on each live index in increasing
// n order until f returns false or the tail sentinel is reached. It is
// the shared iteration primitive for the cost kernel's per-step update
// and the selector's minseglength-bounded scan.
func (l *candidateList) forwardFrom(start int, f func(idx int) bool) {
	a := l.arena
	for i := start; i != l.tail && i != -1; i = a[i].next {
		if !f(i) {
			return
		}
	}
}

// firstActive returns the arena index of the node immediately after
// the head sentinel.
func (l *candidateList) firstActive() int {
	return l.arena[l.head].next
}

// infCost marks a candidate whose segment cost has hit a numeric
// degeneracy guard: it remains in the active list (its statistics keep
// updating) but can never win Option 2.
var infCost = math.Inf(1)
