// Package numctx provides the numeric context layer for decimath:
// construction of apd contexts with sane defaults, a scoped precision
// override helper, and a lazy, precision-keyed cache for the
// transcendental constants π, e and ln 10.
//
// Context model:
//
//   - Every decimath function takes an explicit *apd.Context; there is
//     no ambient global context anywhere in the module.
//   - A context is safe for concurrent read. Scoped overrides never
//     mutate the caller's context: WithPrecision hands the callback a
//     copy, so "restoration on every exit path" holds structurally,
//     including on error.
//
// Constant model:
//
//   - Constants are precision-dependent. Pi, E and Ln10 compute their
//     value on first use at a given precision, memoize it, and return
//     defensive copies thereafter. A constant computed at precision p
//     is never reused (truncated or padded) at precision q ≠ p.
//   - π is evaluated with Machin's formula
//     π = 16·atan(1/5) − 4·atan(1/239)
//     at guard precision, then rounded once to the requested precision.
//
// Errors:
//   - Pi/E/Ln10 return an error only if the underlying apd computation
//     traps, which cannot happen for these fixed operands at any
//     positive precision; Must-style callers may safely ignore it.
package numctx
