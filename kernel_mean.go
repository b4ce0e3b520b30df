// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

// meanFamily is the mean-only Gaussian cost, known unit variance.
// Segment cost is squared-error: declaring [s,i] anomalous saves
// k*mean^2 of negative log-likelihood versus the N(0,1) baseline.
type meanFamily struct{}

func (meanFamily) update(nd *node, x float64, k int, penaltyChange float64) {
	nd.cumSum += x
	mean := nd.cumSum / float64(k)
	saving := float64(k) * mean * mean
	nd.segCost = nd.optCostPrev - saving + penaltyChange
}

func (meanFamily) pointSaving(x float64) float64 {
	return x * x
}
