// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

// defaultSegmentCost is the populate-time placeholder for a
// component's segment cost and best-end cost, before any observation
// has updated it. Carried from original_source/src/populate_mean.cpp,
// which initializes best_end_costs[j] and segmentcosts[jj] to 100 so a
// freshly created candidate starts "expensive" rather than winning by
// an uninitialized zero.
const defaultSegmentCost = 100

// node is one multivariate candidate segment start-point, arena-
// indexed exactly as in the sibling capa package (see capa/list.go).
// Per-component bookkeeping is fixed-size, allocated once at populate
// time from p and l (spec.md §9 "value-initialized, statically-sized
// buffers" note) rather than lazily filled.
type node struct {
	n           int
	optCostPrev float64
	optCost     float64
	segCost     float64 // total cost across affected components, this window
	optCut      int
	option      int8
	destroyAt   int
	next, prev  int

	observation []float64 // length p
	meanOfXs    []float64 // length p, running mean per component, recomputed as cumSum[j]/k
	cumSum      []float64 // length p, running sum over the full (untrimmed) window [n,i]
	earlyObs    []float64 // length p*l, the first l observations of each component, for lag-trimmed sums

	// segmentCosts[j*(l+1)+lag] is component j's segment cost if its
	// contributing window starts lag samples after this candidate's n.
	segmentCosts []float64
	// bestEndCosts[j] is the best (minimum) of segmentCosts for
	// component j across all lags considered so far.
	bestEndCosts []float64
	// affectedComponents[j] is 1 if component j participates in the
	// anomaly closing at this candidate, 0 otherwise.
	affectedComponents []int
	startLag           []int
	endLag             []int
}

type candidateList struct {
	arena []node
	head  int
	tail  int
	p, l  int
}

func newCandidateList(n, p, l, maxseglength int) *candidateList {
	arena := make([]node, n+2)
	for i := range arena {
		nd := &arena[i]
		nd.n = i
		nd.optCut = -1
		nd.option = -1
		nd.destroyAt = i + maxseglength
		nd.next = i + 1
		nd.prev = i - 1
		if i >= 1 && i <= n {
			nd.observation = make([]float64, p)
			nd.meanOfXs = make([]float64, p)
			nd.cumSum = make([]float64, p)
			if l > 0 {
				nd.earlyObs = make([]float64, p*l)
			}
			nd.segmentCosts = make([]float64, p*(l+1))
			nd.bestEndCosts = make([]float64, p)
			nd.affectedComponents = make([]int, p)
			nd.startLag = make([]int, p)
			nd.endLag = make([]int, p)
			for j := range nd.bestEndCosts {
				nd.bestEndCosts[j] = defaultSegmentCost
			}
			for j := range nd.segmentCosts {
				nd.segmentCosts[j] = defaultSegmentCost
			}
		}
	}
	arena[n+1].next = -1
	arena[0].prev = -1
	arena[0].optCost = 0

	return &candidateList{arena: arena, head: 0, tail: n + 1, p: p, l: l}
}

func (l *candidateList) unlink(i int) {
	a := l.arena
	prev, next := a[i].prev, a[i].next
	a[prev].next = next
	if next != -1 {
		a[next].prev = prev
	}
}

func (l *candidateList) forwardFrom(start int, f func(idx int) bool) {
	a := l.arena
	for i := start; i != l.tail && i != -1; i = a[i].next {
		if !f(i) {
			return
		}
	}
}

func (l *candidateList) firstActive() int {
	return l.arena[l.head].next
}

// populate copies the p series of length n into the arena's
// observation slices, row-major by component, mirroring
// populate_mean.cpp's per-component copy loop.
func populate(l *candidateList, x [][]float64, n, p int) {
	for i := 1; i <= n; i++ {
		for j := 0; j < p; j++ {
			l.arena[i].observation[j] = x[j][i-1]
		}
	}
}
