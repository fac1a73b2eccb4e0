package series

import "math"

// trig selects the periodic function of a perturbation term.
type trig func(float64) float64

// term is one periodic perturbation: coef · fn(mm·Mm + d·D + ms·Ms + f·F).
// Coefficients are degrees for longitude and latitude, Earth radii for distance.
type term struct {
	coef float64
	fn   trig
	mm   float64
	d    float64
	ms   float64
	f    float64
}

// lunarArgs are the fundamental lunar arguments in degrees.
type lunarArgs struct {
	mm float64 // Moon mean anomaly
	d  float64 // mean elongation
	ms float64 // Sun mean anomaly
	f  float64 // argument of latitude
}

// eval returns the term's contribution for args.
func (t term) eval(a lunarArgs) float64 {
	arg := t.mm*a.mm + t.d*a.d + t.ms*a.ms + t.f*a.f
	return t.coef * t.fn(arg*math.Pi/180)
}

// sumTerms adds every term of a table.
func sumTerms(table []term, a lunarArgs) float64 {
	var sum float64
	for _, t := range table {
		sum += t.eval(a)
	}
	return sum
}

// moonLongitudeTerms are the twelve largest longitude perturbations, led by
// the evection, the variation and the yearly equation. The ninth term is the
// parallactic equation and the eleventh the reduction to the ecliptic.
var moonLongitudeTerms = []term{
	{coef: -1.274, fn: math.Sin, mm: 1, d: -2},
	{coef: +0.658, fn: math.Sin, d: 2},
	{coef: -0.186, fn: math.Sin, ms: 1},
	{coef: -0.059, fn: math.Sin, mm: 2, d: -2},
	{coef: -0.057, fn: math.Sin, mm: 1, d: -2, ms: 1},
	{coef: +0.053, fn: math.Sin, mm: 1, d: 2},
	{coef: +0.046, fn: math.Sin, d: 2, ms: -1},
	{coef: +0.041, fn: math.Sin, mm: 1, ms: -1},
	{coef: -0.035, fn: math.Sin, d: 1},
	{coef: -0.031, fn: math.Sin, mm: 1, ms: 1},
	{coef: -0.015, fn: math.Sin, d: -2, f: 2},
	{coef: +0.011, fn: math.Sin, mm: 1, d: -4},
}

// moonLatitudeTerms are the five largest latitude perturbations.
var moonLatitudeTerms = []term{
	{coef: -0.173, fn: math.Sin, d: -2, f: 1},
	{coef: -0.055, fn: math.Sin, mm: 1, d: -2, f: -1},
	{coef: -0.046, fn: math.Sin, mm: 1, d: -2, f: 1},
	{coef: +0.033, fn: math.Sin, d: 2, f: 1},
	{coef: +0.017, fn: math.Sin, mm: 2, f: 1},
}

// moonDistanceTerms are the two largest distance perturbations, in Earth radii.
var moonDistanceTerms = []term{
	{coef: -0.58, fn: math.Cos, mm: 1, d: -2},
	{coef: -0.46, fn: math.Cos, d: 2},
}

// harmonic is a sin/cos pair at k·P.
type harmonic struct {
	k   float64
	sin float64
	cos float64
}

// harmonicSeries is a base value, linear in d, plus harmonics of P and one (S-P) cross term.
type harmonicSeries struct {
	base      float64
	rate      float64
	harmonics []harmonic
	crossSin  float64
	crossCos  float64
}

// eval sums the series at d days with arguments s and p in degrees.
func (h harmonicSeries) eval(d, s, p float64) float64 {
	sum := h.base + h.rate*d
	for _, hm := range h.harmonics {
		arg := hm.k * p * math.Pi / 180
		sum += hm.sin*math.Sin(arg) + hm.cos*math.Cos(arg)
	}
	cross := (s - p) * math.Pi / 180
	return sum + h.crossSin*math.Sin(cross) + h.crossCos*math.Cos(cross)
}
