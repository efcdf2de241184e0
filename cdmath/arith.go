// SPDX-License-Identifier: MIT
package cdmath

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/decimath/dmath"
)

// Add returns z + w, componentwise.
func Add(ctx *apd.Context, z, w Complex) (Complex, error) {
	if z.IsNaN() || w.IsNaN() {
		return nanComplex(), nil
	}

	ed := apd.MakeErrDecimal(ctx)
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Add(re, z.real(), w.real())
	ed.Add(im, z.imag(), w.imag())
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}

	return Complex{re: re, im: im}, nil
}

// Sub returns z − w, componentwise.
func Sub(ctx *apd.Context, z, w Complex) (Complex, error) {
	if z.IsNaN() || w.IsNaN() {
		return nanComplex(), nil
	}

	ed := apd.MakeErrDecimal(ctx)
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Sub(re, z.real(), w.real())
	ed.Sub(im, z.imag(), w.imag())
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}

	return Complex{re: re, im: im}, nil
}

// Mul returns z·w = (ac − bd) + (ad + bc)i.
func Mul(ctx *apd.Context, z, w Complex) (Complex, error) {
	if z.IsNaN() || w.IsNaN() {
		return nanComplex(), nil
	}

	ed := apd.MakeErrDecimal(ctx)
	ac := new(apd.Decimal)
	bd := new(apd.Decimal)
	ad := new(apd.Decimal)
	bc := new(apd.Decimal)
	ed.Mul(ac, z.real(), w.real())
	ed.Mul(bd, z.imag(), w.imag())
	ed.Mul(ad, z.real(), w.imag())
	ed.Mul(bc, z.imag(), w.real())

	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Sub(re, ac, bd)
	ed.Add(im, ad, bc)
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}

	return Complex{re: re, im: im}, nil
}

// Quo returns z / w by multiplying with w's conjugate. A
// zero-magnitude divisor is not guarded here: the scalar layer's
// division error propagates as-is.
func Quo(ctx *apd.Context, z, w Complex) (Complex, error) {
	if z.IsNaN() || w.IsNaN() {
		return nanComplex(), nil
	}

	ed := apd.MakeErrDecimal(ctx)
	den := new(apd.Decimal)
	t := new(apd.Decimal)
	ed.Mul(den, w.real(), w.real())
	ed.Mul(t, w.imag(), w.imag())
	ed.Add(den, den, t)

	// (ac + bd) / den, (bc − ad) / den
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	u := new(apd.Decimal)
	ed.Mul(re, z.real(), w.real())
	ed.Mul(u, z.imag(), w.imag())
	ed.Add(re, re, u)
	ed.Mul(im, z.imag(), w.real())
	ed.Mul(u, z.real(), w.imag())
	ed.Sub(im, im, u)
	ed.Quo(re, re, den)
	ed.Quo(im, im, den)
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}

	return Complex{re: re, im: im}, nil
}

// Conj returns the complex conjugate. Exact: no rounding occurs.
func Conj(z Complex) Complex {
	im := dup(z.imag())

	return Complex{re: dup(z.real()), im: im.Neg(im)}
}

// Neg returns −z. Exact: no rounding occurs.
func Neg(z Complex) Complex {
	re := dup(z.real())
	im := dup(z.imag())

	return Complex{re: re.Neg(re), im: im.Neg(im)}
}

// Abs returns |z| = sqrt(a² + b²). The result is ≥ 0, and zero only
// for the zero value.
func Abs(ctx *apd.Context, z Complex) (*apd.Decimal, error) {
	if z.IsNaN() {
		n := new(apd.Decimal)
		n.Form = apd.NaN

		return n, nil
	}

	ed := apd.MakeErrDecimal(ctx)
	r := new(apd.Decimal)
	t := new(apd.Decimal)
	ed.Mul(r, z.real(), z.real())
	ed.Mul(t, z.imag(), z.imag())
	ed.Add(r, r, t)
	ed.Sqrt(r, r)

	return r, ed.Err()
}

// Phase returns arg(z) = atan2(b, a) in (−π, π].
func Phase(ctx *apd.Context, z Complex) (*apd.Decimal, error) {
	return dmath.Atan2(ctx, z.imag(), z.real())
}

// ToPolar converts z to its polar representation (r, θ). It fails for
// a zero-magnitude value, whose angle is undefined.
func ToPolar(ctx *apd.Context, z Complex) (Polar, error) {
	r, err := Abs(ctx, z)
	if err != nil {
		return Polar{}, err
	}
	if r.IsZero() {
		return Polar{}, errors.Wrap(ErrInvalidOperation, "polar(z), |z| == 0")
	}
	theta, err := Phase(ctx, z)
	if err != nil {
		return Polar{}, err
	}

	return Polar{R: r, Theta: theta}, nil
}

// Rect converts a polar pair back to rectangular form
// (r·cos θ, r·sin θ).
func Rect(ctx *apd.Context, p Polar) (Complex, error) {
	wctx := guard(ctx, guardDigits)
	c, err := dmath.Cos(wctx, p.Theta)
	if err != nil {
		return Complex{}, err
	}
	s, err := dmath.Sin(wctx, p.Theta)
	if err != nil {
		return Complex{}, err
	}

	ed := apd.MakeErrDecimal(wctx)
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Mul(re, p.R, c)
	ed.Mul(im, p.R, s)
	if err = ed.Err(); err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, re, im)
}

// Pow raises z to the power w for real w, via De Moivre's formula:
// r^k·e^(ikθ). A non-zero imaginary part in the exponent returns
// ErrComplexExponent; general z**w is unsupported.
func Pow(ctx *apd.Context, z, w Complex) (Complex, error) {
	if z.IsNaN() || w.IsNaN() {
		return nanComplex(), nil
	}
	if !w.imag().IsZero() {
		return Complex{}, errors.Wrap(ErrComplexExponent, "pow(z, w), Im(w) != 0")
	}

	wctx := guard(ctx, guardDigits)
	p, err := ToPolar(wctx, z)
	if err != nil {
		return Complex{}, err
	}

	ed := apd.MakeErrDecimal(wctx)
	rk := new(apd.Decimal)
	tk := new(apd.Decimal)
	ed.Pow(rk, p.R, w.real())
	ed.Mul(tk, p.Theta, w.real())
	if err = ed.Err(); err != nil {
		return Complex{}, err
	}

	return Rect(ctx, Polar{R: rk, Theta: tk})
}

// PowReal raises z to a real decimal exponent.
func PowReal(ctx *apd.Context, z Complex, k *apd.Decimal) (Complex, error) {
	return Pow(ctx, z, New(k, nil))
}

// Sqrt returns the principal square root, Pow(z, 1/2).
func Sqrt(ctx *apd.Context, z Complex) (Complex, error) {
	return PowReal(ctx, z, half)
}
