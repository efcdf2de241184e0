package cdmath_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimath/cdmath"
)

// mustDec parses a decimal literal or fails the test.
func mustDec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err, "parse %q", s)

	return d
}

// requireClose asserts |want − got| ≤ eps at high precision.
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

// requireCloseC asserts both components of got are within eps of want.
func requireCloseC(t *testing.T, want, got cdmath.Complex, eps string, msg string) {
	t.Helper()
	requireClose(t, want.Real(), got.Real(), eps, msg+" (real part)")
	requireClose(t, want.Imag(), got.Imag(), eps, msg+" (imaginary part)")
}
