// Package domain holds the astronomy and zodiac types everything else is
// built from: day counts and dates, rectangular and ecliptic coordinates,
// the ten charted bodies, the twelve signs, a body's placement and the
// chart that collects one placement per body.
//
// It imports only the standard library. Every other package may import it.
package domain
