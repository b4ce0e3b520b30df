// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyInput signifies Solve was called with a zero-length
// observation buffer.
var ErrEmptyInput = errors.New("capa: empty observation buffer")

// ErrAllocation names the allocation-failure error kind. Solve never
// returns it: a failed arena allocation surfaces as a Go runtime
// panic.
var ErrAllocation = errors.New("capa: unable to size candidate arena")

// ValidationError reports an invalid combination of Settings fields.
// It is returned before any allocation takes place (kind 1 in the
// error taxonomy: invalid parameter, no side effects).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("capa: invalid %s: %s", e.Field, e.Reason)
}

func validateSettings(x []float64, s Settings) error {
	n := len(x)
	if n < 1 {
		return ErrEmptyInput
	}
	if floats.HasNaN(x) {
		return &ValidationError{"x", "must not contain NaN"}
	}
	if s.MinSegLength < 2 {
		return &ValidationError{"MinSegLength", "must be >= 2"}
	}
	if s.MaxSegLength < s.MinSegLength {
		return &ValidationError{"MaxSegLength", "must be >= MinSegLength"}
	}
	if s.MaxSegLength > n {
		return &ValidationError{"MaxSegLength", "must be <= n"}
	}
	if s.PenaltyChange < 0 {
		return &ValidationError{"PenaltyChange", "must be >= 0"}
	}
	if s.PenaltyOutlier < 0 {
		return &ValidationError{"PenaltyOutlier", "must be >= 0"}
	}
	return nil
}
