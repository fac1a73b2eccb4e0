package domain

import (
	"fmt"
	"math"
)

// Degrees is an angle in decimal degrees.
type Degrees float64

// minuteEpsilon absorbs float error so 8.2° reads 8° 12', not 8° 11'.
const minuteEpsilon = 1e-6

// DegreesMinutes splits the angle into whole degrees and whole arc minutes.
// Minutes are truncated and never exceed 59, so an offset below 30° inside
// a sign always displays as at most 29° 59'.
func (d Degrees) DegreesMinutes() (deg, minutes int) {
	whole := math.Floor(float64(d))
	m := int(math.Floor((float64(d)-whole)*60 + minuteEpsilon))
	return int(whole), min(m, 59)
}

// String formats the angle as degrees and arc minutes, e.g. "12° 5'".
func (d Degrees) String() string {
	deg, m := d.DegreesMinutes()
	return fmt.Sprintf("%d° %d'", deg, m)
}
