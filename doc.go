// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capa implements penalized changepoint and anomaly detection
// over univariate numeric time series using a pruned optimal-partition
// dynamic program (a CAPA-style algorithm: Collective And Point
// Anomalies).
//
// Given a sequence of pre-standardized observations and a choice of
// cost family, Solve partitions the series into a background regime
// punctuated by collective anomalies (segments with abnormal mean,
// variance, or rate) and point anomalies (single-sample outliers),
// minimizing total penalized cost. The multivariate variant, which
// additionally selects per-component participation and onset/offset
// lag within a collective anomaly window, lives in the sibling mv
// package.
package capa // import "gonum.org/v1/capa"
