package quadrature

import "math"

// Integrand is a scalar function of one real variable.
type Integrand func(x float64) float64

// Fct is the function being integrated.
func Fct(x float64) float64 {
	return math.Cos(x)
}

// Integral returns the midpoint-rule sum of Fct over n intervals of width h
// starting at a.
//
// The sum is accumulated strictly in ascending interval order, so repeated
// calls with identical arguments return bit-identical results. No validation
// is performed: n <= 0 yields 0.
//
// Parameters:
//   - a: The lower limit of the first interval.
//   - n: The number of intervals.
//   - h: The width of each interval.
//
// Returns:
//   - float64: The approximation of the integral over [a, a+n*h].
func Integral(a float64, n int, h float64) float64 {
	return Cosine.Integrate(Range{Lower: a, Intervals: n, Width: h})
}

// Midpoint applies the midpoint rule to an arbitrary integrand.
// A nil F integrates Fct.
type Midpoint struct {
	F Integrand
}

// Cosine is the integrator used by the drivers.
var Cosine = Midpoint{F: Fct}

// Name identifies the rule in diagnostics.
func (m Midpoint) Name() string {
	return "midpoint"
}

// Integrate evaluates the rule over r.
//
// Products are rounded before they are added, so no architecture may fuse
// them into a multiply-add and the sums stay bit-identical across platforms.
func (m Midpoint) Integrate(r Range) float64 {
	f := m.F
	if f == nil {
		f = Fct
	}
	integ := 0.0
	h := r.Width
	h2 := h / 2.0
	for j := 0; j < r.Intervals; j++ {
		aij := r.Lower + float64(float64(j)*h)
		integ += float64(f(aij+h2) * h)
	}
	return integ
}
