package charts

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Span is Len except that an empty range has a span of 1 so that it
// can always be used as a divisor.
func (r Range) Span() float64 {
	if n := r.Len(); n != 0 && isFinite(n) {
		return n
	}
	return 1
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Normalize maps v into the range. The result is not clamped.
func (r Range) Normalize(v float64) float64 {
	return (v - r.F) / r.Span()
}

// Values returns c+1 values evenly spaced from the start to the end of
// the range.
func (r Range) Values(c int) []float64 {
	if c <= 0 {
		return nil
	}
	var (
		all  = make([]float64, 0, c+1)
		step = r.Len() / float64(c)
	)
	for i := 0; i < c; i++ {
		all = append(all, r.F+float64(i)*step)
	}
	return append(all, r.T)
}

// Scaler maps the values of a domain onto a range of pixels. The range
// can be reversed, as it is for vertical axes where the origin is at
// the bottom.
type Scaler struct {
	Range
	Domain Range
}

func NumberScaler(dom, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

// ZeroScaler is the scaler from 0 to max that every chart with an
// implicit origin uses.
func ZeroScaler(max float64, rg Range) Scaler {
	return NumberScaler(NewRange(0, max), rg)
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + s.Domain.Normalize(v)*s.Len()
}

// Fraction gives the position of v in the domain, 0 at its start and 1
// at its end.
func (s Scaler) Fraction(v float64) float64 {
	return s.Domain.Normalize(v)
}

// Space is the number of pixels covered by one unit of the domain.
func (s Scaler) Space() float64 {
	return s.Len() / s.Domain.Span()
}

func (s Scaler) Values(c int) []float64 {
	return s.Domain.Values(c)
}

// Ticks gives the values of c evenly spaced ticks, rounded to the
// nearest integer, along with their position.
func (s Scaler) Ticks(c int) ([]float64, []float64) {
	var (
		values = s.Values(c)
		pos    = make([]float64, len(values))
	)
	for i, v := range values {
		pos[i] = s.Scale(v)
		values[i] = roundHalfUp(v)
	}
	return values, pos
}

func roundHalfUp(f float64) float64 {
	r := math.Floor(f + 0.5)
	if r == 0 {
		return 0
	}
	return r
}
