// SPDX-License-Identifier: MIT
// Package matrix: input validators used by the kernels and by package rank.
//
// Each validator returns a sentinel wrapped with its own name, checks in a
// fixed order (nil, then shape, then values) and allocates nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty – Ensures m is non-nil and has at least one row and one column.
//
// Dense cannot be empty by construction; foreign Matrix implementations can.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateFinite – Ensures every element of m is finite.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates), or the At error of a
// misbehaving implementation.
// Complexity: O(r*c).
// AI-Hints: Only needed for matrices built with WithNoValidateNaNInf or
// foreign implementations; Dense with the default policy is finite by construction.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if !finite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", k/d.c, k%d.c), ErrNaNInf)
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if !finite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
