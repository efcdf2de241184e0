// Package cdmath implements a complex scalar over arbitrary-precision
// decimals, with arithmetic, polar/rectangular conversion, De Moivre
// power, and the full set of direct and principal-branch inverse
// circular and hyperbolic functions.
//
// The scalar:
//
//   - Complex is an immutable (real, imag) pair of *apd.Decimal. It
//     exclusively owns its two components: constructors copy their
//     inputs, accessors return copies, operations never mutate their
//     operands. The zero value is 0+0i.
//   - Every accepted host representation (decimal strings, int64,
//     float64, complex128) funnels through a normalizing constructor
//     into the canonical pair before any arithmetic — downstream code
//     is monomorphic.
//   - Polar is a dedicated magnitude/angle record, so a (r, θ) pair
//     cannot be confused with a rectangular pair at compile time.
//     Rect performs no runtime validation of the pair — producing it
//     from ToPolar is the caller's contract.
//   - String renders "C(real, imag)" with trailing fractional zeros
//     stripped.
//
// Branch conventions:
//
//   - Inverse functions return the principal branch. Asin selects its
//     branch by copying the sign of the relevant input component onto
//     each result part rather than by explicit case analysis; Atan's
//     real part follows the same three-way split as the real
//     two-argument arctangent.
//
// Errors:
//
//   - ErrInvalidOperation — zero-magnitude Ln/ToPolar, and domain
//     violations surfacing from the real layer.
//   - ErrComplexExponent — Pow with a non-real exponent; general z**w
//     is a documented limitation, not silently approximated.
//   - A NaN component in any operand short-circuits to a NaN complex
//     before any domain check.
//   - Division by a zero-magnitude divisor is not guarded here; the
//     scalar layer's division error propagates unchanged.
package cdmath
