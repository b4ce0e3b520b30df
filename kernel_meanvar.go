// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

// meanVarFamily is the mean-and-variance Gaussian cost: the profile
// log-likelihood saving of N(mu,sigma^2) over the standardized N(0,1)
// baseline (see SPEC_FULL.md §4.2 for the derivation and the open-
// question resolution this formula represents).
type meanVarFamily struct{}

func (meanVarFamily) update(nd *node, x float64, k int, penaltyChange float64) {
	nd.cumSum += x
	nd.cumSumSq += x * x
	kf := float64(k)
	mu := nd.cumSum / kf
	sigma2 := nd.cumSumSq/kf - mu*mu
	if sigma2 < varFloor {
		sigma2 = varFloor
	}
	saving := kf * (mu*mu + sigma2 - 1 - safeLog(sigma2))
	nd.segCost = nd.optCostPrev - saving + penaltyChange
}

func (meanVarFamily) pointSaving(x float64) float64 {
	// A single sample carries no usable variance estimate; the
	// point-anomaly saving degenerates to the mean-only form.
	return x * x
}
