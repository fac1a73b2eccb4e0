package series

import (
	"fmt"
	"math"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

const (
	// KeplerTolerance is the convergence threshold of the eccentric anomaly, in degrees.
	KeplerTolerance = 0.005

	// maxKeplerIterations bounds Newton-Raphson; realistic eccentricities
	// converge in well under ten steps.
	maxKeplerIterations = 32
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E by Newton-Raphson. Angles are in degrees. It returns the number
// of iterations taken, or domain.ErrNoConvergence once the cap is hit.
func SolveKepler(meanAnomaly, eccentricity, tolerance float64) (float64, int, error) {
	m := meanAnomaly
	e := eccentricity
	mRad := domain.DegToRad(m)

	e0 := m + domain.RadToDeg(e*math.Sin(mRad)*(1+e*math.Cos(mRad)))
	for i := 1; i <= maxKeplerIterations; i++ {
		e0Rad := domain.DegToRad(e0)
		e1 := e0 - (e0-domain.RadToDeg(e*math.Sin(e0Rad))-m)/(1-e*math.Cos(e0Rad))
		if math.Abs(e0-e1) <= tolerance {
			return e1, i, nil
		}
		e0 = e1
	}

	return 0, maxKeplerIterations, fmt.Errorf("kepler equation M=%.6f e=%.6f: %w", m, e, domain.ErrNoConvergence)
}
