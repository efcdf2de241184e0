// SPDX-License-Identifier: MIT
package cdmath

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// Complex is an immutable complex number with arbitrary-precision
// decimal components. Construct values with New or one of the From*
// constructors; the zero value is 0+0i.
type Complex struct {
	re, im *apd.Decimal
}

// Polar is a magnitude/angle pair as produced by ToPolar and consumed
// by Rect. Keeping it a distinct type makes it impossible to feed a
// rectangular pair where a polar one is expected.
type Polar struct {
	R     *apd.Decimal
	Theta *apd.Decimal
}

// Shared read-only decimal operands; never mutated.
var (
	one  = apd.New(1, 0)
	two  = apd.New(2, 0)
	half = apd.New(5, -1)
)

// New builds a Complex from real and imaginary parts. Both parts are
// copied; a nil part is treated as zero.
func New(re, im *apd.Decimal) Complex {
	z := Complex{re: new(apd.Decimal), im: new(apd.Decimal)}
	if re != nil {
		z.re.Set(re)
	}
	if im != nil {
		z.im.Set(im)
	}

	return z
}

// FromString parses both components from decimal strings.
func FromString(re, im string) (Complex, error) {
	r, _, err := apd.NewFromString(re)
	if err != nil {
		return Complex{}, errors.Wrapf(err, "cdmath: parse real part %q", re)
	}
	i, _, err := apd.NewFromString(im)
	if err != nil {
		return Complex{}, errors.Wrapf(err, "cdmath: parse imaginary part %q", im)
	}

	return Complex{re: r, im: i}, nil
}

// MustFromString is FromString for known-good literals; it panics on
// parse failure.
func MustFromString(re, im string) Complex {
	z, err := FromString(re, im)
	if err != nil {
		panic(err)
	}

	return z
}

// FromInt64 builds a Complex from integer components.
func FromInt64(re, im int64) Complex {
	return Complex{re: apd.New(re, 0), im: apd.New(im, 0)}
}

// FromFloat64 builds a Complex from float components, converted
// exactly (binary-to-decimal, no rounding).
func FromFloat64(re, im float64) (Complex, error) {
	r := new(apd.Decimal)
	if _, err := r.SetFloat64(re); err != nil {
		return Complex{}, errors.Wrap(err, "cdmath: convert real part")
	}
	i := new(apd.Decimal)
	if _, err := i.SetFloat64(im); err != nil {
		return Complex{}, errors.Wrap(err, "cdmath: convert imaginary part")
	}

	return Complex{re: r, im: i}, nil
}

// FromComplex128 normalizes a native complex value a+bi.
func FromComplex128(z complex128) (Complex, error) {
	return FromFloat64(real(z), imag(z))
}

// Real returns a copy of the real part.
func (z Complex) Real() *apd.Decimal {
	return dup(z.real())
}

// Imag returns a copy of the imaginary part.
func (z Complex) Imag() *apd.Decimal {
	return dup(z.imag())
}

// IsNaN reports whether either component is a NaN.
func (z Complex) IsNaN() bool {
	return isNaNd(z.real()) || isNaNd(z.imag())
}

// IsZero reports whether both components are zero.
func (z Complex) IsZero() bool {
	return z.real().IsZero() && z.imag().IsZero()
}

// String renders the value as "C(real, imag)" with trailing
// fractional zeros stripped from both components.
func (z Complex) String() string {
	r := new(apd.Decimal)
	r.Reduce(z.real())
	i := new(apd.Decimal)
	i.Reduce(z.imag())

	return fmt.Sprintf("C(%s, %s)", r, i)
}

// real returns the internal real part, substituting a zero for the
// zero value's nil pointer. Internal callers read it, never write.
func (z Complex) real() *apd.Decimal {
	if z.re == nil {
		return new(apd.Decimal)
	}

	return z.re
}

func (z Complex) imag() *apd.Decimal {
	if z.im == nil {
		return new(apd.Decimal)
	}

	return z.im
}

// nanComplex returns the NaN result every operation yields when any
// operand component is a NaN.
func nanComplex() Complex {
	r := new(apd.Decimal)
	r.Form = apd.NaN
	i := new(apd.Decimal)
	i.Form = apd.NaN

	return Complex{re: r, im: i}
}

// isNaNd reports whether x is a quiet or signaling NaN.
func isNaNd(x *apd.Decimal) bool {
	return x.Form == apd.NaN || x.Form == apd.NaNSignaling
}

// dup returns an independent copy of x.
func dup(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(x)
}

// guard returns a copy of ctx widened by extra significant digits.
func guard(ctx *apd.Context, extra uint32) *apd.Context {
	return ctx.WithPrecision(ctx.Precision + extra)
}

// guardDigits is the working headroom for multi-step formulas; both
// result components are rounded back to the caller's precision once.
const guardDigits = 4

// finishParts rounds both components to ctx's precision and wraps
// them into a Complex.
func finishParts(ctx *apd.Context, re, im *apd.Decimal) (Complex, error) {
	r := new(apd.Decimal)
	if _, err := ctx.Round(r, re); err != nil {
		return Complex{}, err
	}
	i := new(apd.Decimal)
	if _, err := ctx.Round(i, im); err != nil {
		return Complex{}, err
	}

	return Complex{re: r, im: i}, nil
}

// copySign returns |x| carrying the sign of s, including negative
// zero.
func copySign(x, s *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal).Abs(x)
	if s.Negative {
		z.Neg(z)
	}

	return z
}
