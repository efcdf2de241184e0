// Package dmath implements real transcendental functions over
// arbitrary-precision decimals (*apd.Decimal), correct across the full
// precision range of the supplied context.
//
// Function families:
//
//   - Hyperbolic:         Sinh, Cosh, Tanh
//   - Inverse hyperbolic: Asinh, Acosh, Atanh
//   - Circular:           Sin, Cos, Tan
//   - Inverse circular:   Asin, Acos, Atan, Atan2
//
// Contract (every function):
//
//   - Signature F(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error);
//     operands are never mutated, the result is a fresh decimal rounded
//     to ctx.Precision.
//   - A NaN operand returns a quiet NaN immediately, before any domain
//     check or formula selection.
//   - Domain violations return ErrInvalidOperation wrapped with the
//     violation site ("atanh(x), |x| > 1"); match with errors.Is.
//   - Overflow/underflow/division conditions trapped by ctx surface as
//     the underlying apd errors, unaltered.
//
// Algorithm switching (magnitude-dependent, for numerical stability):
//
//   - Tanh saturates to exactly ±1 beyond r = precision·ln(10)/2, the
//     point where exp(−2x) underflows the active precision; for
//     |x| < 0.1 it uses sinh(x)/(exp(x)−sinh(x)) to dodge the
//     catastrophic cancellation of cosh(x) ≈ 1.
//   - Asinh reduces odd symmetry first, switches to the asymptotic
//     ln 2 + ln x above 10^(precision/2) (avoids squaring overflow),
//     and to a convergent Taylor series below 0.125.
//   - Series summation stops when the next term drops below
//     10^(−precision), with a hard iteration cap as a safety bound —
//     never a precision-derived fixed count.
//   - Sin/Cos reduce the argument modulo 2π at a working precision wide
//     enough for the operand's magnitude, then sum the Taylor series
//     with guard digits.
//   - Atan folds |x| > 1 through ±π/2 − atan(1/x), then halves the
//     argument via y ← y/(1+sqrt(1+y²)) until |y| < 0.1 before the
//     series.
//
// Complexity: cost scales with the configured precision (series length
// and apd operation cost), not with external events. All functions are
// pure; concurrent use is safe.
package dmath
