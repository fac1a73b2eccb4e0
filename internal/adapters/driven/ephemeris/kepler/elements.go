package kepler

import "github.com/custodia-labs/astrolabe/internal/core/domain"

// elements are osculating elements at one epoch. Distances are AU, angles degrees.
type elements struct {
	a    float64 // semi-major axis
	e    float64 // eccentricity
	i    float64 // inclination
	l    float64 // mean longitude
	peri float64 // longitude of perihelion
	node float64 // longitude of the ascending node
}

// orbit holds J2000 elements and their rates per Julian century.
type orbit struct {
	epoch elements
	rate  elements
}

// at returns the elements T Julian centuries after J2000.
func (o orbit) at(t float64) elements {
	return elements{
		a:    o.epoch.a + o.rate.a*t,
		e:    o.epoch.e + o.rate.e*t,
		i:    o.epoch.i + o.rate.i*t,
		l:    o.epoch.l + o.rate.l*t,
		peri: o.epoch.peri + o.rate.peri*t,
		node: o.epoch.node + o.rate.node*t,
	}
}

// earthMoonBarycenter stands in for the Earth; the offset is under 5000 km.
var earthMoonBarycenter = orbit{
	epoch: elements{1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0},
	rate:  elements{0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
}

var planets = map[domain.Body]orbit{
	domain.Mercury: {
		epoch: elements{0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593},
		rate:  elements{0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	},
	domain.Venus: {
		epoch: elements{0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255},
		rate:  elements{0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	},
	domain.Mars: {
		epoch: elements{1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891},
		rate:  elements{0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	},
	domain.Jupiter: {
		epoch: elements{5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909},
		rate:  elements{-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	},
	domain.Saturn: {
		epoch: elements{9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448},
		rate:  elements{-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	},
	domain.Uranus: {
		epoch: elements{19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503},
		rate:  elements{-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	},
	domain.Neptune: {
		epoch: elements{30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574},
		rate:  elements{0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
	},
}
