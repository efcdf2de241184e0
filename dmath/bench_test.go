package dmath_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decimath/dmath"
	"github.com/katalvlaran/decimath/numctx"
)

// benchmarkUnary runs fn on a fixed argument at the given precision.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkUnary(b *testing.B, prec uint32, lit string,
	fn func(*apd.Context, *apd.Decimal) (*apd.Decimal, error)) {
	ctx := numctx.New(prec, apd.RoundHalfEven)
	x, _, err := apd.NewFromString(lit)
	if err != nil {
		b.Fatalf("parse %q: %v", lit, err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = fn(ctx, x); err != nil {
			b.Fatalf("eval at %s: %v", lit, err)
		}
	}
}

// BenchmarkSin_Prec28 measures the series branch at default precision.
func BenchmarkSin_Prec28(b *testing.B) {
	benchmarkUnary(b, 28, "0.7", dmath.Sin)
}

// BenchmarkSin_Prec50 measures the cost growth with precision.
func BenchmarkSin_Prec50(b *testing.B) {
	benchmarkUnary(b, 50, "0.7", dmath.Sin)
}

// BenchmarkSin_LargeArg measures the mod-2π reduction path.
func BenchmarkSin_LargeArg(b *testing.B) {
	benchmarkUnary(b, 28, "123456.789", dmath.Sin)
}

// BenchmarkTanh_Quotient measures the exp-based quotient branch.
func BenchmarkTanh_Quotient(b *testing.B) {
	benchmarkUnary(b, 28, "1.5", dmath.Tanh)
}

// BenchmarkTanh_Saturated measures the threshold short-circuit.
func BenchmarkTanh_Saturated(b *testing.B) {
	benchmarkUnary(b, 28, "100", dmath.Tanh)
}

// BenchmarkAtan_Halving measures the argument-halving loop plus the
// Gregory series.
func BenchmarkAtan_Halving(b *testing.B) {
	benchmarkUnary(b, 28, "0.95", dmath.Atan)
}

// BenchmarkAsinh_Series measures the small-argument Taylor branch.
func BenchmarkAsinh_Series(b *testing.B) {
	benchmarkUnary(b, 28, "0.05", dmath.Asinh)
}

// BenchmarkAtan2_Quadrant measures the full quadrant resolution with a
// cached π.
func BenchmarkAtan2_Quadrant(b *testing.B) {
	ctx := numctx.Default()
	y := apd.New(-3, 0)
	x := apd.New(-4, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dmath.Atan2(ctx, y, x); err != nil {
			b.Fatalf("atan2: %v", err)
		}
	}
}
