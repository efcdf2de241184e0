// Package phys provides CODATA physical constants as
// arbitrary-precision decimals.
//
// Each constant is parsed from its decimal literal once at package
// init and handed out as an independent copy, so callers can feed the
// values straight into apd arithmetic without defensive copying of
// their own. Values marked exact are exact by SI definition; the rest
// carry the digits of the 2018 CODATA adjustment.
package phys
