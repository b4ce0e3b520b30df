// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

import "math"

// poissonFamily is the Poisson rate cost, baseline rate 1.
type poissonFamily struct{}

func (poissonFamily) update(nd *node, x float64, k int, penaltyChange float64) {
	// Incremental mean update (equivalent to cumSum/k but avoids
	// re-dividing the running sum on every step).
	kf := float64(k)
	nd.cumSum += (x - nd.cumSum) / kf
	lambda := nd.cumSum
	var saving float64
	if lambda > rateFloor {
		saving = kf * (1 - lambda + lambda*math.Log(lambda))
	} else {
		saving = kf
	}
	nd.segCost = nd.optCostPrev - saving + penaltyChange
}

func (poissonFamily) pointSaving(x float64) float64 {
	if x <= rateFloor {
		return 1
	}
	return 1 - x + x*math.Log(x)
}
