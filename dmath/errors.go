// SPDX-License-Identifier: MIT
// Package dmath: sentinel error set.
// Every message is prefixed with "dmath: ..." for consistency and easy
// grepping. Domain-violation sites wrap ErrInvalidOperation with the
// violated condition via pkg/errors; callers match with errors.Is.
// No function panics on user-triggered conditions.

package dmath

import "github.com/pkg/errors"

var (
	// ErrInvalidOperation is returned for domain violations: acosh of
	// x < 1, atanh of |x| ≥ 1, asin/acos of |x| > 1, atan2(0, 0), and
	// circular functions of infinite arguments.
	ErrInvalidOperation = errors.New("dmath: invalid operation")
)
