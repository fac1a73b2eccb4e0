// Package kepler implements driven.Ephemeris from mean Keplerian elements
// with linear secular rates, fitted for the years 1800 to 2050.
//
// Positions are computed on the J2000 ecliptic and rotated by the general
// precession in longitude to the equinox of date, the frame the Moon and
// Pluto series use. Accuracy is a few arc-minutes for the inner planets,
// well inside what sign classification needs.
package kepler
