package quadrature

import "math"

// DefaultIntervals is the total number of intervals of the fixed problem.
const DefaultIntervals = 1_000_000_000

// Problem describes a definite integral split into equal-width intervals.
type Problem struct {
	// Lower is the lower limit of integration.
	Lower float64
	// Upper is the upper limit of integration.
	Upper float64
	// Intervals is the total number of intervals.
	Intervals int
}

// DefaultProblem integrates over [0, pi/2] with one billion intervals.
var DefaultProblem = Problem{
	Lower:     0.0,
	Upper:     math.Pi / 2.0,
	Intervals: DefaultIntervals,
}

// Width returns the width of each interval of the full problem.
func (p Problem) Width() float64 {
	return (p.Upper - p.Lower) / float64(p.Intervals)
}

// Range returns the whole problem as a single range.
func (p Problem) Range() Range {
	return Range{Lower: p.Lower, Intervals: p.Intervals, Width: p.Width()}
}

// Range is a contiguous run of equal-width intervals.
type Range struct {
	Lower     float64
	Intervals int
	Width     float64
}

// Upper returns the upper limit covered by the range.
func (r Range) Upper() float64 {
	if r.Intervals <= 0 {
		return r.Lower
	}
	return r.Lower + float64(r.Intervals)*r.Width
}

// PartialResult is one worker's contribution to the aggregate.
type PartialResult struct {
	// WorkerID is the zero-based index of the producing worker.
	WorkerID int
	// Value is the worker's partial sum.
	Value float64
	// CPUTime is the processor time used by the worker's thread, in seconds.
	// It is zero when the platform cannot report it.
	CPUTime float64
}
