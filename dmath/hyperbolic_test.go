package dmath_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimath/dmath"
	"github.com/katalvlaran/decimath/numctx"
)

// mustDec parses a decimal literal or fails the test.
func mustDec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err, "parse %q", s)

	return d
}

// requireClose asserts |want − got| ≤ eps, evaluated at high precision
// so the comparison itself introduces no rounding.
func requireClose(t *testing.T, want, got *apd.Decimal, eps string, msg string) {
	t.Helper()
	hctx := apd.BaseContext.WithPrecision(60)
	diff := new(apd.Decimal)
	_, err := hctx.Sub(diff, want, got)
	require.NoError(t, err)
	diff.Abs(diff)
	e := mustDec(t, eps)
	require.True(t, diff.Cmp(e) <= 0, "%s: |%s − %s| = %s > %s", msg, want, got, diff, eps)
}

// TestTanh_Saturation verifies the exact ±1 plateau beyond the
// underflow threshold and the exact zero at the origin.
func TestTanh_Saturation(t *testing.T) {
	ctx := numctx.Default()

	got, err := dmath.Tanh(ctx, apd.New(100, 0))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(apd.New(1, 0)), "tanh(100) must be exactly 1")

	got, err = dmath.Tanh(ctx, apd.New(-100, 0))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(apd.New(-1, 0)), "tanh(−100) must be exactly −1")

	got, err = dmath.Tanh(ctx, apd.New(0, 0))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "tanh(0) must be exactly 0")
}

// TestTanh_MatchesQuotient checks the small-argument branch against an
// independent sinh/cosh quotient.
func TestTanh_MatchesQuotient(t *testing.T) {
	ctx := numctx.Default()

	for _, lit := range []string{"0.05", "-0.099", "0.5", "-3", "20"} {
		x := mustDec(t, lit)
		th, err := dmath.Tanh(ctx, x)
		require.NoError(t, err, "tanh(%s)", lit)

		s, err := dmath.Sinh(ctx, x)
		require.NoError(t, err)
		c, err := dmath.Cosh(ctx, x)
		require.NoError(t, err)
		q := new(apd.Decimal)
		_, err = ctx.Quo(q, s, c)
		require.NoError(t, err)

		requireClose(t, q, th, "1e-26", "tanh("+lit+") vs sinh/cosh")
	}
}

// TestSinhCosh_Identity verifies cosh²(x) − sinh²(x) == 1 within
// precision tolerance.
func TestSinhCosh_Identity(t *testing.T) {
	ctx := numctx.Default()

	for _, lit := range []string{"0.1", "1", "-2.5", "7"} {
		x := mustDec(t, lit)
		s, err := dmath.Sinh(ctx, x)
		require.NoError(t, err)
		c, err := dmath.Cosh(ctx, x)
		require.NoError(t, err)

		hctx := apd.BaseContext.WithPrecision(40)
		s2 := new(apd.Decimal)
		c2 := new(apd.Decimal)
		_, err = hctx.Mul(s2, s, s)
		require.NoError(t, err)
		_, err = hctx.Mul(c2, c, c)
		require.NoError(t, err)
		diff := new(apd.Decimal)
		_, err = hctx.Sub(diff, c2, s2)
		require.NoError(t, err)

		requireClose(t, apd.New(1, 0), diff, "1e-20", "cosh²−sinh² at x="+lit)
	}
}

// TestAsinh_OddSymmetry verifies asinh(−x) == −asinh(x) across the
// series, direct and asymptotic branches.
func TestAsinh_OddSymmetry(t *testing.T) {
	ctx := numctx.Default()

	for _, lit := range []string{"0.01", "0.124", "0.5", "3", "1e20"} {
		x := mustDec(t, lit)
		pos, err := dmath.Asinh(ctx, x)
		require.NoError(t, err)
		neg, err := dmath.Asinh(ctx, new(apd.Decimal).Neg(x))
		require.NoError(t, err)

		assert.Zero(t, pos.Cmp(new(apd.Decimal).Neg(neg)),
			"asinh must be odd at x=%s", lit)
	}
}

// TestAsinh_SeriesAgainstLogForm cross-checks the series branch
// against ln(x + sqrt(x²+1)) evaluated at higher precision.
func TestAsinh_SeriesAgainstLogForm(t *testing.T) {
	ctx := numctx.Default()

	for _, lit := range []string{"0.001", "0.05", "0.1", "0.12"} {
		x := mustDec(t, lit)
		got, err := dmath.Asinh(ctx, x)
		require.NoError(t, err, "asinh(%s)", lit)

		hctx := apd.BaseContext.WithPrecision(40)
		want := new(apd.Decimal)
		_, err = hctx.Mul(want, x, x)
		require.NoError(t, err)
		_, err = hctx.Add(want, want, apd.New(1, 0))
		require.NoError(t, err)
		_, err = hctx.Sqrt(want, want)
		require.NoError(t, err)
		_, err = hctx.Add(want, want, x)
		require.NoError(t, err)
		_, err = hctx.Ln(want, want)
		require.NoError(t, err)

		requireClose(t, want, got, "1e-27", "asinh series at x="+lit)
	}
}

// TestAsinh_RoundTrip verifies sinh(asinh(x)) ≈ x.
func TestAsinh_RoundTrip(t *testing.T) {
	ctx := numctx.Default()

	for _, lit := range []string{"0.02", "0.7", "15"} {
		x := mustDec(t, lit)
		a, err := dmath.Asinh(ctx, x)
		require.NoError(t, err)
		back, err := dmath.Sinh(ctx, a)
		require.NoError(t, err)

		requireClose(t, x, back, "1e-25", "sinh(asinh(x)) at x="+lit)
	}
}

// TestAcosh_DomainAndEdge verifies the x ≥ 1 domain and acosh(1) == 0.
func TestAcosh_DomainAndEdge(t *testing.T) {
	ctx := numctx.Default()

	_, err := dmath.Acosh(ctx, mustDec(t, "0.5"))
	assert.ErrorIs(t, err, dmath.ErrInvalidOperation, "acosh(0.5) must fail")
	assert.Contains(t, err.Error(), "x < 1")

	got, err := dmath.Acosh(ctx, apd.New(1, 0))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "acosh(1) must be 0")

	got, err = dmath.Acosh(ctx, apd.New(2, 0))
	require.NoError(t, err)
	// acosh(2) = ln(2 + √3)
	requireClose(t, mustDec(t, "1.316957896924816708625046347"), got, "1e-26", "acosh(2)")
}

// TestAtanh_DomainMessage verifies the |x| < 1 domain with the
// violation spelled out in the error text.
func TestAtanh_DomainMessage(t *testing.T) {
	ctx := numctx.Default()

	_, err := dmath.Atanh(ctx, apd.New(2, 0))
	assert.ErrorIs(t, err, dmath.ErrInvalidOperation, "atanh(2) must fail")
	assert.Contains(t, err.Error(), "|x| > 1", "message must reference the domain")

	_, err = dmath.Atanh(ctx, apd.New(1, 0))
	assert.ErrorIs(t, err, dmath.ErrInvalidOperation, "atanh(1) must fail")

	got, err := dmath.Atanh(ctx, mustDec(t, "0.5"))
	require.NoError(t, err)
	// atanh(0.5) = ln(3)/2
	requireClose(t, mustDec(t, "0.5493061443340548456976226185"), got, "1e-26", "atanh(0.5)")
}

// TestAtan2_Branches walks the quadrant table, including both axis
// conventions and the undefined origin.
func TestAtan2_Branches(t *testing.T) {
	ctx := numctx.Default()
	zero := apd.New(0, 0)
	posOne := apd.New(1, 0)
	negOne := apd.New(-1, 0)

	_, err := dmath.Atan2(ctx, zero, zero)
	assert.ErrorIs(t, err, dmath.ErrInvalidOperation, "atan2(0, 0) must fail")
	assert.Contains(t, err.Error(), "x == 0 and y == 0")

	halfPi := mustDec(t, "1.570796326794896619231321692")
	pi := mustDec(t, "3.141592653589793238462643383")

	got, err := dmath.Atan2(ctx, posOne, zero)
	require.NoError(t, err)
	requireClose(t, halfPi, got, "1e-27", "atan2(1, 0)")

	got, err = dmath.Atan2(ctx, negOne, zero)
	require.NoError(t, err)
	requireClose(t, new(apd.Decimal).Neg(halfPi), got, "1e-27", "atan2(−1, 0)")

	got, err = dmath.Atan2(ctx, zero, negOne)
	require.NoError(t, err)
	requireClose(t, pi, got, "1e-27", "atan2(0, −1) is +π on the branch cut")

	got, err = dmath.Atan2(ctx, negOne, negOne)
	require.NoError(t, err)
	// third quadrant: atan(1) − π = π/4 − π
	requireClose(t, mustDec(t, "-2.356194490192344928846982537"), got, "1e-26", "atan2(−1, −1)")

	got, err = dmath.Atan2(ctx, posOne, posOne)
	require.NoError(t, err)
	requireClose(t, mustDec(t, "0.7853981633974483096156608458"), got, "1e-27", "atan2(1, 1) = π/4")
}

// TestNaN_ShortCircuits verifies NaN operands return NaN without
// tripping domain checks.
func TestNaN_ShortCircuits(t *testing.T) {
	ctx := numctx.Default()
	nan := new(apd.Decimal)
	nan.Form = apd.NaN

	for name, f := range map[string]func(*apd.Context, *apd.Decimal) (*apd.Decimal, error){
		"Sinh": dmath.Sinh, "Cosh": dmath.Cosh, "Tanh": dmath.Tanh,
		"Asinh": dmath.Asinh, "Acosh": dmath.Acosh, "Atanh": dmath.Atanh,
		"Sin": dmath.Sin, "Cos": dmath.Cos, "Atan": dmath.Atan,
	} {
		got, err := f(ctx, nan)
		require.NoError(t, err, "%s(NaN) must not error", name)
		assert.Equal(t, apd.NaN, got.Form, "%s(NaN) must be NaN", name)
	}

	got, err := dmath.Atan2(ctx, nan, apd.New(0, 0))
	require.NoError(t, err, "atan2(NaN, 0) must not error before the domain check")
	assert.Equal(t, apd.NaN, got.Form)
}

// TestScopedPrecision verifies results honor a temporary precision
// override without touching the caller's context.
func TestScopedPrecision(t *testing.T) {
	ctx := numctx.Default()

	err := numctx.WithPrecision(ctx, 10, func(lo *apd.Context) error {
		got, err := dmath.Atanh(lo, mustDec(t, "0.5"))
		require.NoError(t, err)
		assert.LessOrEqual(t, got.NumDigits(), int64(10), "override must cap digits")

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, numctx.DefaultPrecision, ctx.Precision, "caller context must be untouched")
}
