// SPDX-License-Identifier: MIT
package dmath

import (
	"github.com/cockroachdb/apd/v3"
)

// Shared read-only operands; never mutated.
var (
	one      = apd.New(1, 0)
	two      = apd.New(2, 0)
	point1   = apd.New(1, -1)
	point125 = apd.New(125, -3)
)

// guardDigits is the extra working precision carried through
// intermediate steps; results are rounded back to the caller's
// precision exactly once.
const guardDigits = 4

// isNaN reports whether x is a quiet or signaling NaN.
func isNaN(x *apd.Decimal) bool {
	return x.Form == apd.NaN || x.Form == apd.NaNSignaling
}

// isInf reports whether x is ±Infinity.
func isInf(x *apd.Decimal) bool {
	return x.Form == apd.Infinite
}

// nanCheck returns a quiet NaN if any operand is a NaN, nil otherwise.
// Call it before any domain logic.
func nanCheck(xs ...*apd.Decimal) *apd.Decimal {
	for _, x := range xs {
		if isNaN(x) {
			n := new(apd.Decimal)
			n.Form = apd.NaN

			return n
		}
	}

	return nil
}

// guard returns a copy of ctx widened by extra significant digits;
// rounding mode and traps carry over.
func guard(ctx *apd.Context, extra uint32) *apd.Context {
	return ctx.WithPrecision(ctx.Precision + extra)
}

// finish rounds v to ctx's precision in a fresh decimal.
func finish(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := ctx.Round(out, v); err != nil {
		return nil, err
	}

	return out, nil
}

// copySign returns |x| carrying the sign of s, including a negative
// zero s.
func copySign(x, s *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal).Abs(x)
	if s.Negative {
		z.Neg(z)
	}

	return z
}

// dup returns an independent copy of x.
func dup(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(x)
}

// epsilon returns 10^(−prec), the convergence threshold for series
// summed at prec working digits.
func epsilon(prec uint32) *apd.Decimal {
	return apd.New(1, -int32(prec))
}

// seriesIterCap bounds series loops as a safety net; convergence is
// always decided by the term-magnitude criterion first.
func seriesIterCap(prec uint32) int {
	return int(prec) + 16
}
