package domain

import "math"

// RectangularVector is a Cartesian ecliptic position.
// Heliocentric and geocentric vectors share the type; only subtract
// vectors that share an origin.
type RectangularVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns v - u.
func (v RectangularVector) Sub(u RectangularVector) RectangularVector {
	return RectangularVector{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Negate returns the vector pointing the opposite way.
func (v RectangularVector) Negate() RectangularVector {
	return RectangularVector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Norm returns the magnitude of the vector.
func (v RectangularVector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// EclipticPosition is a spherical ecliptic position.
// Longitude is always in [0, 360) once produced by ToSpherical.
type EclipticPosition struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`
}

// ToSpherical converts a rectangular vector to ecliptic longitude,
// latitude (both degrees) and distance.
func ToSpherical(v RectangularVector) EclipticPosition {
	lon := RadToDeg(math.Atan2(v.Y, v.X))
	if lon < 0 {
		lon += 360
	}
	// A tiny negative angle plus 360 rounds to exactly 360.
	if lon >= 360 {
		lon -= 360
	}

	return EclipticPosition{
		Longitude: lon,
		Latitude:  RadToDeg(math.Atan2(v.Z, math.Hypot(v.X, v.Y))),
		Distance:  v.Norm(),
	}
}

// ToRectangular converts an ecliptic position back to a rectangular vector.
func ToRectangular(p EclipticPosition) RectangularVector {
	lon := DegToRad(p.Longitude)
	lat := DegToRad(p.Latitude)

	return RectangularVector{
		X: p.Distance * math.Cos(lon) * math.Cos(lat),
		Y: p.Distance * math.Sin(lon) * math.Cos(lat),
		Z: p.Distance * math.Sin(lat),
	}
}

// NormalizeDegrees brings an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// DeltaDegrees returns the signed angular step from a to b in (-180, 180].
func DeltaDegrees(a, b float64) float64 {
	delta := NormalizeDegrees(b - a)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
