// SPDX-License-Identifier: MIT
// Package numctx: lazy precision-keyed constant cache.
// Constants are computed with guard digits, rounded once to the target
// precision, and memoized per distinct precision value. Returned
// values are always copies.

package numctx

import (
	"sync"

	"github.com/cockroachdb/apd/v3"
)

// piGuardDigits is the extra working precision used while summing the
// Machin series, swallowing the rounding noise of the partial sums.
const piGuardDigits = 10

var (
	// one and ten are shared read-only operands; never mutated.
	one = apd.New(1, 0)
	ten = apd.New(10, 0)
)

// constCache memoizes π, e and ln 10 per precision. Guarded by mu;
// values inside the maps are canonical and must not escape uncopied.
var constCache = struct {
	mu   sync.Mutex
	pi   map[uint32]*apd.Decimal
	e    map[uint32]*apd.Decimal
	ln10 map[uint32]*apd.Decimal
}{
	pi:   make(map[uint32]*apd.Decimal),
	e:    make(map[uint32]*apd.Decimal),
	ln10: make(map[uint32]*apd.Decimal),
}

// Pi returns π rounded to prec significant digits.
func Pi(prec uint32) (*apd.Decimal, error) {
	return cached(constCache.pi, prec, computePi)
}

// E returns Euler's number rounded to prec significant digits.
func E(prec uint32) (*apd.Decimal, error) {
	return cached(constCache.e, prec, func(prec uint32) (*apd.Decimal, error) {
		wctx := apd.BaseContext.WithPrecision(prec + 2)
		v := new(apd.Decimal)
		if _, err := wctx.Exp(v, one); err != nil {
			return nil, err
		}

		return roundTo(v, prec)
	})
}

// Ln10 returns the natural logarithm of 10 rounded to prec significant
// digits.
func Ln10(prec uint32) (*apd.Decimal, error) {
	return cached(constCache.ln10, prec, func(prec uint32) (*apd.Decimal, error) {
		wctx := apd.BaseContext.WithPrecision(prec + 2)
		v := new(apd.Decimal)
		if _, err := wctx.Ln(v, ten); err != nil {
			return nil, err
		}

		return roundTo(v, prec)
	})
}

// cached returns a copy of m[prec], computing and memoizing it on
// first use. compute runs under the cache lock; constant evaluation
// is rare and contention-free in practice.
func cached(m map[uint32]*apd.Decimal, prec uint32, compute func(uint32) (*apd.Decimal, error)) (*apd.Decimal, error) {
	constCache.mu.Lock()
	defer constCache.mu.Unlock()

	if v, ok := m[prec]; ok {
		return dup(v), nil
	}
	v, err := compute(prec)
	if err != nil {
		return nil, err
	}
	m[prec] = v

	return dup(v), nil
}

// computePi evaluates Machin's formula π = 16·atan(1/5) − 4·atan(1/239)
// at prec+piGuardDigits working digits, then rounds to prec.
func computePi(prec uint32) (*apd.Decimal, error) {
	wctx := apd.BaseContext.WithPrecision(prec + piGuardDigits)

	a5, err := atanInv(wctx, 5)
	if err != nil {
		return nil, err
	}
	a239, err := atanInv(wctx, 239)
	if err != nil {
		return nil, err
	}

	ed := apd.MakeErrDecimal(wctx)
	pi := new(apd.Decimal)
	ed.Mul(a5, a5, apd.New(16, 0))
	ed.Mul(a239, a239, apd.New(4, 0))
	ed.Sub(pi, a5, a239)
	if err := ed.Err(); err != nil {
		return nil, err
	}

	return roundTo(pi, prec)
}

// atanInv sums the Gregory series for atan(1/k), k ≥ 2, at wctx's
// precision. Terms shrink by a factor k² per step, so the loop bound
// of one iteration per working digit is a safety cap, not the
// convergence criterion.
func atanInv(wctx *apd.Context, k int64) (*apd.Decimal, error) {
	ed := apd.MakeErrDecimal(wctx)

	kd := apd.New(k, 0)
	ksq := apd.New(k*k, 0)
	eps := apd.New(1, -int32(wctx.Precision))

	pow := new(apd.Decimal) // running (1/k)^(2i+1)
	ed.Quo(pow, one, kd)
	sum := new(apd.Decimal).Set(pow)
	term := new(apd.Decimal)

	negate := true
	for n, left := int64(3), int(wctx.Precision)+8; left > 0; n, left = n+2, left-1 {
		ed.Quo(pow, pow, ksq)
		ed.Quo(term, pow, apd.New(n, 0))
		if negate {
			ed.Sub(sum, sum, term)
		} else {
			ed.Add(sum, sum, term)
		}
		negate = !negate
		if term.Cmp(eps) < 0 {
			break
		}
	}

	return sum, ed.Err()
}

// roundTo rounds v to prec significant digits in a fresh decimal.
func roundTo(v *apd.Decimal, prec uint32) (*apd.Decimal, error) {
	tctx := apd.BaseContext.WithPrecision(prec)
	out := new(apd.Decimal)
	if _, err := tctx.Round(out, v); err != nil {
		return nil, err
	}

	return out, nil
}
