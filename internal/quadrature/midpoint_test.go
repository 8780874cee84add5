package quadrature

import (
	"math"
	"testing"
)

func TestIntegral_CosineOverQuarterTurn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int
		tol  float64
	}{
		{"1k intervals", 1_000, 1e-6},
		{"100k intervals", 100_000, 1e-10},
		{"1M intervals", 1_000_000, 1e-11},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Problem{Lower: 0, Upper: math.Pi / 2, Intervals: tt.n}
			got := Integral(p.Lower, p.Intervals, p.Width())
			if math.Abs(got-1.0) > tt.tol {
				t.Errorf("Integral(n=%d) = %.15f, want 1 within %g", tt.n, got, tt.tol)
			}
		})
	}
}

func TestIntegral_ErrorShrinksQuadratically(t *testing.T) {
	t.Parallel()
	exact := math.Sin(1.0) - math.Sin(0.0)
	prev := 0.0
	for _, n := range []int{64, 128, 256, 512, 1024} {
		h := 1.0 / float64(n)
		err := math.Abs(Integral(0, n, h) - exact)
		if prev != 0 {
			ratio := prev / err
			if ratio < 3.5 || ratio > 4.5 {
				t.Errorf("n=%d: error ratio %.3f, want about 4", n, ratio)
			}
		}
		prev = err
	}
}

func TestIntegral_Deterministic(t *testing.T) {
	t.Parallel()
	h := (math.Pi / 2) / 123_457
	first := Integral(0.25, 123_457, h)
	for i := 0; i < 3; i++ {
		if got := Integral(0.25, 123_457, h); math.Float64bits(got) != math.Float64bits(first) {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestIntegral_NonPositiveCountYieldsZero(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1, -1000} {
		if got := Integral(0, n, 0.1); got != 0 {
			t.Errorf("Integral(n=%d) = %v, want 0", n, got)
		}
	}
}

func TestMidpoint_MatchesIntegralBitForBit(t *testing.T) {
	t.Parallel()
	r := Range{Lower: 0.1, Intervals: 10_001, Width: 1.3 / 10_001}
	want := Integral(r.Lower, r.Intervals, r.Width)

	if got := Cosine.Integrate(r); math.Float64bits(got) != math.Float64bits(want) {
		t.Errorf("Cosine.Integrate = %v, want %v", got, want)
	}
	if got := (Midpoint{}).Integrate(r); math.Float64bits(got) != math.Float64bits(want) {
		t.Errorf("zero Midpoint.Integrate = %v, want %v", got, want)
	}
}

// roundedReference sums the midpoint rule with every product stored, and so
// rounded, before it is used.
func roundedReference(a float64, n int, h float64) float64 {
	integ := 0.0
	h2 := h / 2.0
	for j := 0; j < n; j++ {
		offset := float64(float64(j) * h)
		x := a + offset
		term := float64(math.Cos(x+h2) * h)
		integ = integ + term
	}
	return integ
}

func TestIntegral_ProductsRoundedBeforeAdding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    float64
		n    int
		h    float64
	}{
		{"quarter turn", 0, 100_003, (math.Pi / 2) / 100_003},
		{"offset start", 0.3, 77_777, 0.9 / 77_777},
		{"coarse", 1e-3, 17, 0.1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			want := roundedReference(tt.a, tt.n, tt.h)
			if got := Integral(tt.a, tt.n, tt.h); math.Float64bits(got) != math.Float64bits(want) {
				t.Errorf("Integral = %x, want %x", math.Float64bits(got), math.Float64bits(want))
			}
		})
	}
}

func TestMidpoint_ExactForLinearIntegrand(t *testing.T) {
	t.Parallel()
	m := Midpoint{F: func(x float64) float64 { return 2*x + 1 }}
	got := m.Integrate(Range{Lower: 0, Intervals: 8, Width: 0.25})
	// integral of 2x+1 over [0, 2] is 6
	if math.Abs(got-6) > 1e-12 {
		t.Errorf("Integrate(2x+1) = %v, want 6", got)
	}
}

func TestFct(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{0, 0.5, math.Pi / 3, -2} {
		if Fct(x) != math.Cos(x) {
			t.Errorf("Fct(%v) = %v, want cos", x, Fct(x))
		}
	}
}

func TestIntegral_FullProblem(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping one billion interval run in short mode")
	}
	p := DefaultProblem
	got := Integral(p.Lower, p.Intervals, p.Width())
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Integral(DefaultProblem) = %.12f, want 1 within 1e-9", got)
	}
}
