// Package decimath is an arbitrary-precision numeric kernel: complex
// decimal arithmetic plus a matched set of circular, hyperbolic and
// inverse transcendental functions over a configurable-precision
// decimal scalar.
//
// 🚀 What is decimath?
//
//	A pure-Go library built on cockroachdb/apd that stays correct across
//	the whole precision range a context allows:
//		• Real transcendentals: sinh/cosh/tanh, asinh/acosh/atanh,
//		  sin/cos/tan, asin/acos/atan, atan2 — with magnitude-dependent
//		  formula switching for numerical stability
//		• Complex scalar: immutable (real, imag) pair with arithmetic,
//		  polar/rectangular conversion and De Moivre power
//		• Complex transcendentals: direct and principal-branch inverse
//		  circular & hyperbolic functions
//		• Precision-keyed constants: π, e, ln 10 computed lazily per
//		  precision, never baked in at one global precision
//
// ✨ Why choose decimath?
//
//   - Explicit contexts – every function takes *apd.Context; no ambient
//     global state, no surprise rounding modes
//   - Principal branches – complex inverses follow the conventional
//     single-valued branch, selected by sign-copy, not case explosions
//   - Honest errors – domain violations return sentinel errors matched
//     with errors.Is; NaN operands short-circuit to NaN
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	numctx/ — context defaults, scoped precision override, π/e/ln10 cache
//	dmath/  — real transcendental functions over *apd.Decimal
//	cdmath/ — complex decimal scalar + complex transcendentals
//	phys/   — CODATA physical constants as decimals
//
// Quick example:
//
//	ctx := numctx.Default()
//	z := cdmath.MustFromString("3", "4")
//	r, _ := cdmath.Abs(ctx, z) // exactly 5
//
//	go get github.com/katalvlaran/decimath
package decimath
