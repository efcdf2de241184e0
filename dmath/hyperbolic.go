// SPDX-License-Identifier: MIT
package dmath

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/decimath/numctx"
)

// Sinh computes the hyperbolic sine (exp(x) − exp(−x)) / 2.
func Sinh(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		return dup(x), nil
	}

	v, err := sinhRaw(guard(ctx, guardDigits), x)
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Cosh computes the hyperbolic cosine (exp(x) + exp(−x)) / 2.
func Cosh(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		return new(apd.Decimal).Abs(x), nil
	}

	v, err := coshRaw(guard(ctx, guardDigits), x)
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Tanh computes the hyperbolic tangent with saturation and
// cancellation guards:
//
//   - beyond r = precision·ln(10)/2, exp(−2x) underflows the active
//     precision and the result is exactly ±1;
//   - for |x| < 0.1, cosh(x) ≈ 1 and the naive quotient cancels, so
//     sinh(x)/(exp(x)−sinh(x)) is used instead;
//   - otherwise sinh(x)/cosh(x) directly.
func Tanh(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		if x.Negative {
			return apd.New(-1, 0), nil
		}

		return apd.New(1, 0), nil
	}

	wctx := guard(ctx, guardDigits)
	ln10, err := numctx.Ln10(wctx.Precision)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(wctx)
	r := new(apd.Decimal)
	ed.Mul(r, apd.New(int64(ctx.Precision), 0), ln10)
	ed.Quo(r, r, two)
	if err = ed.Err(); err != nil {
		return nil, err
	}

	if x.Cmp(r) > 0 {
		return apd.New(1, 0), nil
	}
	if x.Cmp(r.Neg(r)) < 0 {
		return apd.New(-1, 0), nil
	}

	s, err := sinhRaw(wctx, x)
	if err != nil {
		return nil, err
	}

	q := new(apd.Decimal)
	absX := new(apd.Decimal).Abs(x)
	if absX.Cmp(point1) < 0 {
		// exp(x) − sinh(x) equals cosh(x) without the cancellation.
		den := new(apd.Decimal)
		ed.Exp(den, x)
		ed.Sub(den, den, s)
		ed.Quo(q, s, den)
	} else {
		c, cerr := coshRaw(wctx, x)
		if cerr != nil {
			return nil, cerr
		}
		ed.Quo(q, s, c)
	}
	if err = ed.Err(); err != nil {
		return nil, err
	}

	return finish(ctx, q)
}

// Asinh computes the inverse hyperbolic sine. Odd symmetry is reduced
// first; above 10^(precision/2) the asymptotic ln 2 + ln x avoids
// overflow in x²; below 0.125 a Taylor series is summed to
// convergence; in between ln(x + sqrt(x²+1)) applies directly.
func Asinh(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) {
		return dup(x), nil
	}
	if x.IsZero() {
		return dup(x), nil
	}
	if x.Negative {
		v, err := Asinh(ctx, new(apd.Decimal).Abs(x))
		if err != nil {
			return nil, err
		}

		return v.Neg(v), nil
	}

	wctx := guard(ctx, guardDigits)
	var (
		v   *apd.Decimal
		err error
	)
	switch {
	case x.Cmp(apd.New(1, int32(ctx.Precision/2))) > 0:
		v, err = lnShifted(wctx, x)
	case x.Cmp(point125) < 0:
		v, err = asinhSeries(wctx, x, ctx.Precision)
	default:
		v, err = logPlusSqrt(wctx, x, one)
	}
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Acosh computes the inverse hyperbolic cosine, defined for x ≥ 1.
func Acosh(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if isInf(x) && !x.Negative {
		return dup(x), nil
	}
	if x.Cmp(one) < 0 {
		return nil, errors.Wrap(ErrInvalidOperation, "acosh(x), x < 1")
	}

	wctx := guard(ctx, guardDigits)
	var (
		v   *apd.Decimal
		err error
	)
	if x.Cmp(apd.New(1, int32(ctx.Precision/2))) > 0 {
		v, err = lnShifted(wctx, x)
	} else {
		negOne := new(apd.Decimal).Neg(one)
		v, err = logPlusSqrt(wctx, x, negOne)
	}
	if err != nil {
		return nil, err
	}

	return finish(ctx, v)
}

// Atanh computes the inverse hyperbolic tangent ln((1+x)/(1−x)) / 2,
// defined for |x| < 1.
func Atanh(ctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(x); n != nil {
		return n, nil
	}
	if absX := new(apd.Decimal).Abs(x); isInf(x) || absX.Cmp(one) >= 0 {
		return nil, errors.Wrap(ErrInvalidOperation, "atanh(x), |x| > 1")
	}

	wctx := guard(ctx, guardDigits)
	ed := apd.MakeErrDecimal(wctx)
	num := new(apd.Decimal)
	den := new(apd.Decimal)
	ed.Add(num, one, x)
	ed.Sub(den, one, x)
	ed.Quo(num, num, den)
	ed.Ln(num, num)
	ed.Quo(num, num, two)
	if err := ed.Err(); err != nil {
		return nil, err
	}

	return finish(ctx, num)
}

// Atan2 computes the two-argument arctangent of y/x with quadrant
// selection (Fortran convention: Atan2(y, x)). The principal value on
// the negative x axis is +π. Atan2(0, 0) is undefined.
func Atan2(ctx *apd.Context, y, x *apd.Decimal) (*apd.Decimal, error) {
	if n := nanCheck(y, x); n != nil {
		return n, nil
	}

	wctx := guard(ctx, guardDigits)
	pi, err := numctx.Pi(wctx.Precision)
	if err != nil {
		return nil, err
	}

	quotAtan := func() (*apd.Decimal, error) {
		q := new(apd.Decimal)
		if _, qerr := wctx.Quo(q, y, x); qerr != nil {
			return nil, qerr
		}

		return atanRaw(wctx, q)
	}

	sx, sy := x.Sign(), y.Sign()
	v := new(apd.Decimal)
	switch {
	case sx > 0:
		if v, err = quotAtan(); err != nil {
			return nil, err
		}
	case sx < 0 && sy >= 0:
		if v, err = quotAtan(); err != nil {
			return nil, err
		}
		if _, err = wctx.Add(v, v, pi); err != nil {
			return nil, err
		}
	case sx < 0:
		if v, err = quotAtan(); err != nil {
			return nil, err
		}
		if _, err = wctx.Sub(v, v, pi); err != nil {
			return nil, err
		}
	case sy > 0:
		if _, err = wctx.Quo(v, pi, two); err != nil {
			return nil, err
		}
	case sy < 0:
		if _, err = wctx.Quo(v, pi, two); err != nil {
			return nil, err
		}
		v.Neg(v)
	default:
		return nil, errors.Wrap(ErrInvalidOperation, "atan2(y, x), x == 0 and y == 0")
	}

	return finish(ctx, v)
}

// sinhRaw evaluates (exp(x) − exp(−x)) / 2 at wctx's precision,
// without final rounding.
func sinhRaw(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)
	ep := new(apd.Decimal)
	en := new(apd.Decimal)
	ed.Exp(ep, x)
	ed.Exp(en, new(apd.Decimal).Neg(x))
	ed.Sub(ep, ep, en)
	ed.Quo(ep, ep, two)

	return ep, ed.Err()
}

// coshRaw evaluates (exp(x) + exp(−x)) / 2 at wctx's precision,
// without final rounding.
func coshRaw(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)
	ep := new(apd.Decimal)
	en := new(apd.Decimal)
	ed.Exp(ep, x)
	ed.Exp(en, new(apd.Decimal).Neg(x))
	ed.Add(ep, ep, en)
	ed.Quo(ep, ep, two)

	return ep, ed.Err()
}

// logPlusSqrt evaluates ln(x + sqrt(x² + shift)) at wctx's precision;
// shift is +1 for asinh and −1 for acosh.
func logPlusSqrt(wctx *apd.Context, x, shift *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)
	t := new(apd.Decimal)
	ed.Mul(t, x, x)
	ed.Add(t, t, shift)
	ed.Sqrt(t, t)
	ed.Add(t, t, x)
	ed.Ln(t, t)

	return t, ed.Err()
}

// lnShifted evaluates the large-argument asymptote ln 2 + ln x.
func lnShifted(wctx *apd.Context, x *apd.Decimal) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)
	ln2 := new(apd.Decimal)
	lnx := new(apd.Decimal)
	ed.Ln(ln2, two)
	ed.Ln(lnx, x)
	ed.Add(lnx, lnx, ln2)

	return lnx, ed.Err()
}

// asinhSeries sums the Taylor expansion of asinh around zero:
//
//	x − (1/2)·x³/3 + (1·3/(2·4))·x⁵/5 − …
//
// valid for |x| < 0.125 where convergence is rapid. Summation stops
// when the next term's magnitude drops below 10^(−prec); the iteration
// cap is a safety bound only.
func asinhSeries(wctx *apd.Context, x *apd.Decimal, prec uint32) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)

	sum := dup(x)
	pow := dup(x)
	coef := apd.New(1, 0)
	xsq := new(apd.Decimal)
	ed.Mul(xsq, x, x)

	eps := epsilon(prec)
	term := new(apd.Decimal)
	absTerm := new(apd.Decimal)
	for n, iter := int64(3), 0; iter < seriesIterCap(prec); n, iter = n+2, iter+1 {
		ed.Mul(pow, pow, xsq)
		// term ratio: −(n−2)² / ((n−1)·n)
		ed.Mul(coef, coef, apd.New(-(n-2)*(n-2), 0))
		ed.Quo(coef, coef, apd.New((n-1)*n, 0))
		ed.Mul(term, coef, pow)
		ed.Add(sum, sum, term)
		if absTerm.Abs(term); absTerm.Cmp(eps) < 0 {
			break
		}
	}

	return sum, ed.Err()
}
