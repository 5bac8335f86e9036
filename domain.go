package charts

import (
	"math"
)

// DefaultMax is the domain used when a chart carries no usable
// number at all.
const DefaultMax = 100.0

// MaxValue returns the largest finite number found in the datasets.
// Points contribute both of their coordinates. It falls back to
// DefaultMax when nothing usable is found or when the largest value is
// zero.
func MaxValue(datasets []Dataset) float64 {
	var (
		max   = math.Inf(-1)
		found bool
	)
	for _, d := range datasets {
		for _, v := range d.Data {
			for _, f := range v.components() {
				if !isFinite(f) {
					continue
				}
				found = true
				max = math.Max(max, f)
			}
		}
	}
	if !found || max == 0 {
		return DefaultMax
	}
	return max
}

// HeatDomain returns the extent of the scalar values of all datasets.
// Points are ignored.
func HeatDomain(datasets []Dataset) Range {
	var (
		rg    Range
		found bool
	)
	for _, d := range datasets {
		for _, v := range d.Data {
			f, ok := v.Float()
			if !ok {
				continue
			}
			if !found {
				rg.F, rg.T = f, f
				found = true
				continue
			}
			rg.F = math.Min(rg.F, f)
			rg.T = math.Max(rg.T, f)
		}
	}
	return rg
}
