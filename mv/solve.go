// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mv

const cancelPollInterval = 128

// Solve runs the multivariate pruned optimal-partition dynamic program
// over p series of equal length n (spec.md §3 multivariate extension,
// §6 external interface). x[j] is series j; all series must share one
// length. Settings.Concurrency, when greater than 1, fans each active
// candidate's per-component statistics update out across components
// using golang.org/x/sync/errgroup (see kernel.go's update), since a
// node's components are write-disjoint within one step (spec.md §5).
func Solve(x [][]float64, s Settings) (Result, error) {
	n, p, err := validate(x, s)
	if err != nil {
		return Result{}, err
	}

	list := newCandidateList(n, p, s.Lag, s.MaxSegLength)
	populate(list, x, n, p)
	arena := list.arena
	optCost := make([]float64, n)
	perStep := make([]Changepoint, n)

	for i := 1; i <= n; i++ {
		xi := make([]float64, p)
		for j := 0; j < p; j++ {
			xi[j] = x[j][i-1]
		}

		var active []int
		list.forwardFrom(list.firstActive(), func(idx int) bool {
			if arena[idx].n > i {
				return false
			}
			active = append(active, idx)
			return true
		})

		for _, idx := range active {
			nd := &arena[idx]
			k := i - nd.n + 1
			update(nd, xi, k, s.Lag, s.PenaltyChange, s.PerComponentPenalty, s.Concurrency)
		}

		cost, cut, option := selectOption(list, i, xi, s.PenaltyOutlier, s.MinSegLength)
		arena[i].optCost = cost
		arena[i].optCut = cut
		arena[i].option = option
		optCost[i-1] = cost
		perStep[i-1] = perStepRow(&arena[i], i)
		if i+1 < len(arena) {
			arena[i+1].optCostPrev = cost
		}

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
		perStep:      perStep,
	}, nil
}
