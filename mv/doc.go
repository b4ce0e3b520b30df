// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mv implements the multivariate variant of the capa package's
// pruned optimal-partition dynamic program: given p series of equal
// length observed together, it chooses, per candidate collective
// anomaly, which components participate and with what per-component
// onset lag (spec.md §3 "multivariate extension", §9 "extension
// point"). It shares the mean-only Gaussian cost model and the arena/
// index candidate-list architecture of the sibling capa package.
package mv // import "gonum.org/v1/capa/mv"
