// SPDX-License-Identifier: MIT
// Package cdmath: sentinel error set.
// Messages are prefixed "cdmath: ..."; violation sites wrap the
// sentinel with the failing condition and callers match via errors.Is.

package cdmath

import "github.com/pkg/errors"

var (
	// ErrInvalidOperation is returned for domain violations: Ln or
	// ToPolar of a zero-magnitude value, and inverse functions whose
	// real-layer domain is violated.
	ErrInvalidOperation = errors.New("cdmath: invalid operation")

	// ErrComplexExponent is returned by Pow when the exponent has a
	// non-zero imaginary part. General complex-to-complex power is
	// intentionally unsupported.
	ErrComplexExponent = errors.New("cdmath: complex exponent not supported")
)
