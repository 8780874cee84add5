package quadrature

// Partition splits p into w contiguous ranges of equal width.
//
// Every range receives p.Intervals / w intervals; when w does not divide
// p.Intervals the remainder is dropped, so the ranges evaluate
// p.Intervals - p.Intervals%w intervals in total. Each range derives its own
// interval width from its span, which may differ slightly from p.Width().
// When w exceeds p.Intervals every range has zero intervals.
//
// Partition panics if w is not positive; callers validate the worker count.
func Partition(p Problem, w int) []Range {
	if w <= 0 {
		panic("quadrature: non-positive worker count")
	}
	span := (p.Upper - p.Lower) / float64(w)
	num := p.Intervals / w
	ranges := make([]Range, w)
	for i := range ranges {
		ranges[i] = Range{
			Lower:     p.Lower + float64(i)*span,
			Intervals: num,
			Width:     span / float64(num),
		}
	}
	return ranges
}

// EvaluatedIntervals returns the number of intervals a partition of p into w
// ranges actually evaluates.
func EvaluatedIntervals(p Problem, w int) int {
	return (p.Intervals / w) * w
}
