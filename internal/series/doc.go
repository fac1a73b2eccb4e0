// Package series implements the low-precision analytic position series for
// the two bodies no planetary ephemeris adapter covers: the Moon and Pluto.
//
// Both series measure time in days from domain.SeriesEpoch
// (1999-12-31 00:00 UT) and work in degrees throughout. Perturbation
// coefficients are kept as data tables so each term can be checked on its own.
//
// The package also exports the Kepler equation solver shared with the
// Keplerian planetary ephemeris.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package series
