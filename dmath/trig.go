// SPDX-License-Identifier: MIT
package dmath

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/decimath/numctx"
)

// Sin computes the sine of x (radians). The argument is reduced
// modulo 2π at a working precision wide enough for its magnitude,
// then the Taylor series is summed with guard digits.
func Sin(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		return nil, errors.Wrap(ErrInvalidOperation, "sin(x), x is infinite")
	}

	wctx := trigCtx(ctx, x)
	r, err := reduceTwoPi(wctx, x)
	if err != nil {
		return nil, err
	}
	v, err := sinSeries(wctx, r)
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Cos computes the cosine of x (radians).
func Cos(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		return nil, errors.Wrap(ErrInvalidOperation, "cos(x), x is infinite")
	}

	wctx := trigCtx(ctx, x)
	r, err := reduceTwoPi(wctx, x)
	if err != nil {
		return nil, err
	}
	v, err := cosSeries(wctx, r)
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Tan computes sin(x)/cos(x). A cosine that rounds to exactly zero
// propagates the scalar division error.
func Tan(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		return nil, errors.Wrap(ErrInvalidOperation, "tan(x), x is infinite")
	}

	wctx := trigCtx(ctx, x)
	r, err := reduceTwoPi(wctx, x)
	if err != nil {
		return nil, err
	}
	s, err := sinSeries(wctx, r)
	if err != nil {
		return nil, err
	}
	c, err := cosSeries(wctx, r)
	if err != nil {
		return nil, err
	}
	q := new(apd.Decimal)
	if _, err = wctx.Quo(q, s, c); err != nil {
		return nil, err
	}

	return finish(ctx, q)
}

// Atan computes the arctangent of x, in (−π/2, π/2).
func Atan(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}

	v, err := atanRaw(guard(ctx, guardDigits), x)
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Asin computes the arcsine of x, defined for |x| ≤ 1, via
// atan2(x, sqrt(1−x²)).
func Asin(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if absX := new(apd.Decimal).Abs(x); isInf(x) || absX.Cmp(one) > 0 {
		return nil, errors.Wrap(ErrInvalidOperation, "asin(x), |x| > 1")
	}

	s, err := complement(guard(ctx, guardDigits), x)
	if err != nil {
		return nil, err
	}

	return Atan2(ctx, x, s)
}

// Acos computes the arccosine of x, defined for |x| ≤ 1, via
// atan2(sqrt(1−x²), x).
func Acos(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if absX := new(apd.Decimal).Abs(x); isInf(x) || absX.Cmp(one) > 0 {
		return nil, errors.Wrap(ErrInvalidOperation, "acos(x), |x| > 1")
	}

	s, err := complement(guard(ctx, guardDigits), x)
	if err != nil {
		return nil, err
	}

	return Atan2(ctx, s, x)
}

// complement evaluates sqrt(1 − x²) for |x| ≤ 1.
func complement(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)
	s := new(apd.Decimal)
	ed.Mul(s, x, x)
	ed.Sub(s, one, s)
	ed.Sqrt(s, s)

	return s, ed.Err()
}

// trigCtx widens ctx by the operand's integer digit count plus guard
// digits, so that reduction modulo 2π keeps full accuracy even for
// large arguments.
func trigCtx(ctx *apd.Context, x *apd.Decimal) *apd.Context {
	intDigits := x.NumDigits() + int64(x.Exponent)
	if intDigits < 0 {
		intDigits = 0
	}

	return ctx.WithPrecision(ctx.Precision + guardDigits + uint32(intDigits))
}

// reduceTwoPi returns x reduced into (−2π, 2π) at wctx's precision.
func reduceTwoPi(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	pi, err := numctx.Pi(wctx.Precision)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(wctx)
	twoPi := new(apd.Decimal)
	ed.Mul(twoPi, pi, two)
	q := new(apd.Decimal)
	ed.QuoInteger(q, x, twoPi)
	ed.Mul(q, q, twoPi)
	r := new(apd.Decimal)
	ed.Sub(r, x, q)

	return r, ed.Err()
}

// sinSeries sums x − x³/3! + x⁵/5! − … for a reduced argument.
func sinSeries(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)

	sum := dup(x)
	term := dup(x)
	sqNeg := new(apd.Decimal)
	ed.Mul(sqNeg, x, x)
	sqNeg.Neg(sqNeg)

	eps := epsilon(wctx.Precision)
	absTerm := new(apd.Decimal)
	for n, iter := int64(1), 0; iter < int(wctx.Precision)+32; n, iter = n+1, iter+1 {
		ed.Mul(term, term, sqNeg)
		ed.Quo(term, term, apd.New(2*n*(2*n+1), 0))
		ed.Add(sum, sum, term)
		if absTerm.Abs(term); absTerm.Cmp(eps) < 0 {
			break
		}
	}

	return sum, ed.Err()
}

// cosSeries sums 1 − x²/2! + x⁴/4! − … for a reduced argument.
func cosSeries(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)

	sum := apd.New(1, 0)
	term := apd.New(1, 0)
	sqNeg := new(apd.Decimal)
	ed.Mul(sqNeg, x, x)
	sqNeg.Neg(sqNeg)

	eps := epsilon(wctx.Precision)
	absTerm := new(apd.Decimal)
	for n, iter := int64(1), 0; iter < int(wctx.Precision)+32; n, iter = n+1, iter+1 {
		ed.Mul(term, term, sqNeg)
		ed.Quo(term, term, apd.New((2*n-1)*2*n, 0))
		ed.Add(sum, sum, term)
		if absTerm.Abs(term); absTerm.Cmp(eps) < 0 {
			break
		}
	}

	return sum, ed.Err()
}

// atanRaw computes atan(x) at wctx's precision without final
// rounding. |x| > 1 folds through ±π/2 − atan(1/x); the remaining
// argument is halved via y ← y/(1+sqrt(1+y²)) until |y| < 0.1, the
// Gregory series is summed, and the result scaled back by 2^k.
func atanRaw(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if isInf(x) {
		return halfPiSigned(wctx, x)
	}
	if x.IsZero() {
		return dup(x), nil
	}

	if absX := new(apd.Decimal).Abs(x); absX.Cmp(one) > 0 {
		inv := new(apd.Decimal)
		if _, err := wctx.Quo(inv, one, x); err != nil {
			return nil, err
		}
		t, err := atanRaw(wctx, inv)
		if err != nil {
			return nil, err
		}
		hp, err := halfPiSigned(wctx, x)
		if err != nil {
			return nil, err
		}
		if _, err = wctx.Sub(hp, hp, t); err != nil {
			return nil, err
		}

		return hp, nil
	}

	ed := apd.MakeErrDecimal(wctx)
	y := dup(x)
	t := new(apd.Decimal)
	k := 0
	for absY := new(apd.Decimal).Abs(y); absY.Cmp(point1) >= 0; absY.Abs(y) {
		// atan(y) = 2·atan(y / (1 + sqrt(1+y²)))
		ed.Mul(t, y, y)
		ed.Add(t, t, one)
		ed.Sqrt(t, t)
		ed.Add(t, t, one)
		ed.Quo(y, y, t)
		k++
	}
	if err := ed.Err(); err != nil {
		return nil, err
	}

	sum, err := atanSeries(wctx, y)
	if err != nil {
		return nil, err
	}
	if k > 0 {
		if _, err = wctx.Mul(sum, sum, apd.New(int64(1)<<uint(k), 0)); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// atanSeries sums y − y³/3 + y⁵/5 − … for |y| < 0.1.
func atanSeries(wctx *apd.Context, y *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)

	sum := dup(y)
	pow := dup(y)
	sqNeg := new(apd.Decimal)
	ed.Mul(sqNeg, y, y)
	sqNeg.Neg(sqNeg)

	eps := epsilon(wctx.Precision)
	term := new(apd.Decimal)
	absTerm := new(apd.Decimal)
	for n, iter := int64(3), 0; iter < seriesIterCap(wctx.Precision); n, iter = n+2, iter+1 {
		ed.Mul(pow, pow, sqNeg)
		ed.Quo(term, pow, apd.New(n, 0))
		ed.Add(sum, sum, term)
		if absTerm.Abs(term); absTerm.Cmp(eps) < 0 {
			break
		}
	}

	return sum, ed.Err()
}

// halfPiSigned returns π/2 carrying the sign of s.
func halfPiSigned(wctx *apd.Context, s *apd.Decimal) (*apd.Decimal, error) {
	pi, err := numctx.Pi(wctx.Precision)
	if err != nil {
		return nil, err
	}
	if _, err = wctx.Quo(pi, pi, two); err != nil {
		return nil, err
	}

	return copySign(pi, s), nil
}
