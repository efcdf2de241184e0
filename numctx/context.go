// SPDX-License-Identifier: MIT
package numctx

import (
	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the significant-digit count used by Default,
// matching the conventional 28-digit decimal default.
const DefaultPrecision uint32 = 28

// Default returns a fresh context with DefaultPrecision significant
// digits, half-even rounding, and apd's default trap set, so that
// invalid operations and division by zero surface as Go errors rather
// than silent condition flags.
func Default() *apd.Context {
	return New(DefaultPrecision, apd.RoundHalfEven)
}

// New returns a fresh context with the given precision and rounding
// mode. Precision must be positive; apd rejects zero-precision
// contexts at the first rounding operation.
func New(prec uint32, rounding apd.Rounder) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(prec)
	ctx.Rounding = rounding

	return ctx
}

// WithPrecision runs fn with a copy of ctx set to prec significant
// digits. The caller's ctx is never modified, so the original
// precision is in force again on every exit path, error or not.
//
// Example:
//
//	err := numctx.WithPrecision(ctx, 50, func(hi *apd.Context) error {
//	    z, err := dmath.Sinh(hi, x)
//	    ...
//	})
func WithPrecision(ctx *apd.Context, prec uint32, fn func(*apd.Context) error) error {
	return fn(ctx.WithPrecision(prec))
}

// dup returns an independent copy of x. Cached constants and function
// results are always handed out as copies so callers cannot corrupt
// shared state.
func dup(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(x)
}
