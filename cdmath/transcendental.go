// SPDX-License-Identifier: MIT
package cdmath

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/decimath/dmath"
	"github.com/katalvlaran/decimath/numctx"
)

// oneC is the complex unit; shared read-only.
var oneC = FromInt64(1, 0)

// Sin computes sin(z) = sin(a)·cosh(b) + i·cos(a)·sinh(b).
func Sin(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	re, im, err := mixedParts(wctx, z.real(), z.imag())
	if err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, re, im)
}

// Cos computes cos(z) = cos(a)·cosh(b) − i·sin(a)·sinh(b).
func Cos(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	a, b := z.real(), z.imag()
	cosA, err := dmath.Cos(wctx, a)
	if err != nil {
		return Complex{}, err
	}
	coshB, err := dmath.Cosh(wctx, b)
	if err != nil {
		return Complex{}, err
	}
	sinA, err := dmath.Sin(wctx, a)
	if err != nil {
		return Complex{}, err
	}
	sinhB, err := dmath.Sinh(wctx, b)
	if err != nil {
		return Complex{}, err
	}

	ed := apd.MakeErrDecimal(wctx)
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Mul(re, cosA, coshB)
	ed.Mul(im, sinA, sinhB)
	im.Neg(im)
	if err = ed.Err(); err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, re, im)
}

// Tan computes sin(z)/cos(z).
func Tan(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	s, err := Sin(wctx, z)
	if err != nil {
		return Complex{}, err
	}
	c, err := Cos(wctx, z)
	if err != nil {
		return Complex{}, err
	}

	return Quo(ctx, s, c)
}

// Sinh computes sinh(z) = cos(b)·sinh(a) + i·sin(b)·cosh(a).
func Sinh(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	re, im, err := mixedParts(wctx, z.imag(), z.real())
	if err != nil {
		return Complex{}, err
	}

	// mixedParts computes (sin(x)·cosh(y), cos(x)·sinh(y)) with
	// x = b, y = a; sinh wants the swapped pairing.
	return finishParts(ctx, im, re)
}

// Cosh computes cosh(z) = cos(b)·cosh(a) + i·sin(b)·sinh(a).
func Cosh(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	a, b := z.real(), z.imag()
	cosB, err := dmath.Cos(wctx, b)
	if err != nil {
		return Complex{}, err
	}
	coshA, err := dmath.Cosh(wctx, a)
	if err != nil {
		return Complex{}, err
	}
	sinB, err := dmath.Sin(wctx, b)
	if err != nil {
		return Complex{}, err
	}
	sinhA, err := dmath.Sinh(wctx, a)
	if err != nil {
		return Complex{}, err
	}

	ed := apd.MakeErrDecimal(wctx)
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Mul(re, cosB, coshA)
	ed.Mul(im, sinB, sinhA)
	if err = ed.Err(); err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, re, im)
}

// Tanh computes sinh(z)/cosh(z).
func Tanh(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	s, err := Sinh(wctx, z)
	if err != nil {
		return Complex{}, err
	}
	c, err := Cosh(wctx, z)
	if err != nil {
		return Complex{}, err
	}

	return Quo(ctx, s, c)
}

// Exp computes e^z = e^a·(cos b + i·sin b), assembled in polar form.
func Exp(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	expA := new(apd.Decimal)
	if _, err := wctx.Exp(expA, z.real()); err != nil {
		return Complex{}, err
	}

	return Rect(ctx, Polar{R: expA, Theta: dup(z.imag())})
}

// Ln computes the principal value of the complex natural logarithm,
// ln|z| + i·arg(z). The zero value has no logarithm.
func Ln(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	r, err := Abs(wctx, z)
	if err != nil {
		return Complex{}, err
	}
	if r.IsZero() {
		return Complex{}, errors.Wrap(ErrInvalidOperation, "ln(z), |z| == 0")
	}

	lnR := new(apd.Decimal)
	if _, err = wctx.Ln(lnR, r); err != nil {
		return Complex{}, err
	}
	theta, err := dmath.Atan2(wctx, z.imag(), z.real())
	if err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, lnR, theta)
}

// Asin computes the principal arcsine:
//
//	Re = ½·acos(√((a²+b²−1)² + 4b²) − (a²+b²)), signed as a
//	Im = ½·acosh(√((a²+b²−1)² + 4b²) + (a²+b²)), signed as b
//
// The sign-copy selects the branch without case analysis.
func Asin(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	a, b := z.real(), z.imag()

	ed := apd.MakeErrDecimal(wctx)
	t := new(apd.Decimal) // a² + b²
	u := new(apd.Decimal) // √((t−1)² + 4b²)
	v := new(apd.Decimal)
	ed.Mul(t, a, a)
	ed.Mul(v, b, b)
	ed.Add(t, t, v)
	ed.Sub(u, t, one)
	ed.Mul(u, u, u)
	ed.Mul(v, v, apd.New(4, 0))
	ed.Add(u, u, v)
	ed.Sqrt(u, u)

	reArg := new(apd.Decimal)
	imArg := new(apd.Decimal)
	ed.Sub(reArg, u, t)
	ed.Add(imArg, u, t)
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}

	// |u−t| ≤ 1 and u+t ≥ 1 hold mathematically; a few ulps of
	// rounding drift must not trip the real-layer domain checks.
	clampUnit(reArg)
	if imArg.Cmp(one) < 0 {
		imArg.Set(one)
	}

	ac, err := dmath.Acos(wctx, reArg)
	if err != nil {
		return Complex{}, err
	}
	ah, err := dmath.Acosh(wctx, imArg)
	if err != nil {
		return Complex{}, err
	}

	ed.Quo(ac, ac, two)
	ed.Quo(ah, ah, two)
	if err = ed.Err(); err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, copySign(ac, a), copySign(ah, b))
}

// Acos computes the principal arccosine, π/2 − asin(z).
func Acos(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	as, err := Asin(wctx, z)
	if err != nil {
		return Complex{}, err
	}
	hp, err := halfPi(wctx)
	if err != nil {
		return Complex{}, err
	}

	re := new(apd.Decimal)
	if _, err = wctx.Sub(re, hp, as.real()); err != nil {
		return Complex{}, err
	}
	im := dup(as.imag())

	return finishParts(ctx, re, im.Neg(im))
}

// Atan computes the principal arctangent. The real part follows the
// same three-way split as the real two-argument arctangent on (a, b);
// the imaginary part is ½·atanh(2b/(a²+b²+1)).
func Atan(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	a, b := z.real(), z.imag()

	ed := apd.MakeErrDecimal(wctx)
	t := new(apd.Decimal) // a² + b²
	v := new(apd.Decimal)
	ed.Mul(t, a, a)
	ed.Mul(v, b, b)
	ed.Add(t, t, v)
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}

	re := new(apd.Decimal)
	absB := new(apd.Decimal).Abs(b)
	switch {
	case a.Sign() != 0:
		num := new(apd.Decimal)
		den := new(apd.Decimal)
		ed.Sub(num, t, one)
		ed.Mul(den, a, two)
		ed.Quo(num, num, den)
		if err := ed.Err(); err != nil {
			return Complex{}, err
		}
		at, err := dmath.Atan(wctx, num)
		if err != nil {
			return Complex{}, err
		}
		hp, err := halfPi(wctx)
		if err != nil {
			return Complex{}, err
		}
		ed.Add(re, at, copySign(hp, a))
		ed.Quo(re, re, two)
	case absB.Cmp(one) <= 0:
		// a == 0, |b| ≤ 1: the value lies on the imaginary axis.
	default:
		hp, err := halfPi(wctx)
		if err != nil {
			return Complex{}, err
		}
		re = copySign(hp, b)
	}

	imArg := new(apd.Decimal)
	ed.Mul(imArg, b, two)
	ed.Add(v, t, one)
	ed.Quo(imArg, imArg, v)
	if err := ed.Err(); err != nil {
		return Complex{}, err
	}
	ath, err := dmath.Atanh(wctx, imArg)
	if err != nil {
		return Complex{}, err
	}
	im := new(apd.Decimal)
	if _, err = wctx.Quo(im, ath, two); err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, re, im)
}

// Asinh computes ln(z + sqrt(z² + 1)).
func Asinh(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	return logPlusSqrtC(ctx, z, oneC)
}

// Acosh computes ln(z + sqrt(z² − 1)).
func Acosh(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	return logPlusSqrtC(ctx, z, Neg(oneC))
}

// Atanh computes ln((1+z)/(1−z)) / 2.
func Atanh(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	num, err := Add(wctx, oneC, z)
	if err != nil {
		return Complex{}, err
	}
	den, err := Sub(wctx, oneC, z)
	if err != nil {
		return Complex{}, err
	}

	return halfLogQuot(ctx, wctx, num, den)
}

// Acoth computes ln((z+1)/(z−1)) / 2.
func Acoth(ctx *apd.Context, z Complex) (Complex, error) {
	if z.IsNaN() {
		return nanComplex(), nil
	}

	wctx := guard(ctx, guardDigits)
	num, err := Add(wctx, z, oneC)
	if err != nil {
		return Complex{}, err
	}
	den, err := Sub(wctx, z, oneC)
	if err != nil {
		return Complex{}, err
	}

	return halfLogQuot(ctx, wctx, num, den)
}

// mixedParts evaluates (sin(x)·cosh(y), cos(x)·sinh(y)) at wctx's
// precision — the component pair shared by complex sin and, with
// arguments swapped, complex sinh.
func mixedParts(wctx *apd.Context, x, y *apd.Decimal) (re, im *apd.Decimal, err error) {
	sinX, err := dmath.Sin(wctx, x)
	if err != nil {
		return nil, nil, err
	}
	coshY, err := dmath.Cosh(wctx, y)
	if err != nil {
		return nil, nil, err
	}
	cosX, err := dmath.Cos(wctx, x)
	if err != nil {
		return nil, nil, err
	}
	sinhY, err := dmath.Sinh(wctx, y)
	if err != nil {
		return nil, nil, err
	}

	ed := apd.MakeErrDecimal(wctx)
	re = new(apd.Decimal)
	im = new(apd.Decimal)
	ed.Mul(re, sinX, coshY)
	ed.Mul(im, cosX, sinhY)

	return re, im, ed.Err()
}

// logPlusSqrtC evaluates ln(z + sqrt(z² + shift)) for shift = ±1.
func logPlusSqrtC(ctx *apd.Context, z, shift Complex) (Complex, error) {
	wctx := guard(ctx, guardDigits)
	zz, err := Mul(wctx, z, z)
	if err != nil {
		return Complex{}, err
	}
	zz, err = Add(wctx, zz, shift)
	if err != nil {
		return Complex{}, err
	}
	s, err := Sqrt(wctx, zz)
	if err != nil {
		return Complex{}, err
	}
	sum, err := Add(wctx, z, s)
	if err != nil {
		return Complex{}, err
	}

	return Ln(ctx, sum)
}

// halfLogQuot evaluates ln(num/den)/2, rounding to ctx at the end.
func halfLogQuot(ctx, wctx *apd.Context, num, den Complex) (Complex, error) {
	q, err := Quo(wctx, num, den)
	if err != nil {
		return Complex{}, err
	}
	l, err := Ln(wctx, q)
	if err != nil {
		return Complex{}, err
	}

	ed := apd.MakeErrDecimal(wctx)
	re := new(apd.Decimal)
	im := new(apd.Decimal)
	ed.Quo(re, l.real(), two)
	ed.Quo(im, l.imag(), two)
	if err = ed.Err(); err != nil {
		return Complex{}, err
	}

	return finishParts(ctx, re, im)
}

// halfPi returns π/2 at wctx's precision.
func halfPi(wctx *apd.Context) (*apd.Decimal, error) {
	pi, err := numctx.Pi(wctx.Precision)
	if err != nil {
		return nil, err
	}
	if _, err = wctx.Quo(pi, pi, two); err != nil {
		return nil, err
	}

	return pi, nil
}

// clampUnit clamps x into [−1, 1] in place.
func clampUnit(x *apd.Decimal) {
	abs := new(apd.Decimal).Abs(x)
	if abs.Cmp(one) > 0 {
		x.Set(copySign(one, x))
	}
}
