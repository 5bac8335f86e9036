package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxValue(t *testing.T) {
	tests := []struct {
		name string
		data []Dataset
		want float64
	}{
		{
			name: "empty",
			want: DefaultMax,
		},
		{
			name: "no values",
			data: []Dataset{{Data: []Value{Missing(), Scalar(math.NaN())}}},
			want: DefaultMax,
		},
		{
			name: "zeros",
			data: []Dataset{{Data: []Value{Scalar(0), Scalar(0)}}},
			want: DefaultMax,
		},
		{
			name: "across datasets",
			data: []Dataset{
				{Data: []Value{Scalar(10), Scalar(20)}},
				{Data: []Value{Scalar(35), Scalar(math.Inf(1))}},
			},
			want: 35,
		},
		{
			name: "points",
			data: []Dataset{{Data: []Value{Point(3, 120), Point(140, 2)}}},
			want: 140,
		},
		{
			name: "negative",
			data: []Dataset{{Data: []Value{Scalar(-5), Scalar(-2)}}},
			want: -2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxValue(tt.data))
		})
	}
}

func TestHeatDomain(t *testing.T) {
	rg := HeatDomain([]Dataset{
		{Data: []Value{Scalar(4), Missing(), Point(100, 100)}},
		{Data: []Value{Scalar(-2), Scalar(9)}},
	})
	assert.Equal(t, -2.0, rg.Min())
	assert.Equal(t, 9.0, rg.Max())
	assert.Equal(t, 11.0, rg.Span())
	assert.InDelta(t, 0.5, rg.Normalize(3.5), 1e-9)

	empty := HeatDomain(nil)
	assert.Equal(t, 0.0, empty.Len())
	assert.Equal(t, 1.0, empty.Span())
}

func TestRangeValues(t *testing.T) {
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, NewRange(0, 100).Values(4))
	assert.Equal(t, []float64{10, 5, 0}, NewRange(10, 0).Values(2))
	assert.Nil(t, NewRange(0, 10).Values(0))
}

func TestScaler(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		sc := ZeroScaler(20, NewRange(0, 320))
		assert.Equal(t, 160.0, sc.Scale(10))
		assert.Equal(t, 320.0, sc.Scale(20))
		assert.Equal(t, 0.5, sc.Fraction(10))
		assert.Equal(t, 16.0, sc.Space())
	})
	t.Run("reversed", func(t *testing.T) {
		sc := ZeroScaler(100, NewRange(180, 20))
		assert.Equal(t, 180.0, sc.Scale(0))
		assert.Equal(t, 20.0, sc.Scale(100))
		assert.Equal(t, 100.0, sc.Scale(50))
	})
	t.Run("offset", func(t *testing.T) {
		sc := NumberScaler(NewRange(10, 30), NewRange(50, 350))
		assert.Equal(t, 50.0, sc.Scale(10))
		assert.Equal(t, 200.0, sc.Scale(20))
	})
	t.Run("empty domain", func(t *testing.T) {
		sc := NumberScaler(NewRange(5, 5), NewRange(0, 100))
		assert.Equal(t, 0.0, sc.Scale(5))
		assert.False(t, math.IsInf(sc.Space(), 0))
	})
	t.Run("not clamped", func(t *testing.T) {
		sc := ZeroScaler(10, NewRange(0, 100))
		assert.Equal(t, 200.0, sc.Scale(20))
		assert.Equal(t, -50.0, sc.Scale(-5))
	})
}

func TestScalerTicks(t *testing.T) {
	values, pos := ZeroScaler(2, NewRange(0, 300)).Ticks(3)
	assert.Equal(t, []float64{0, 1, 1, 2}, values)
	require.Len(t, pos, 4)
	assert.InDelta(t, 100.0, pos[1], 1e-9)
	assert.Equal(t, 300.0, pos[3])

	values, pos = ZeroScaler(10, NewRange(0, 100)).Ticks(0)
	assert.Empty(t, values)
	assert.Empty(t, pos)
}

func TestSpread(t *testing.T) {
	assert.Equal(t, 150.0, spread(0, 1, 300))
	assert.Equal(t, 0.0, spread(0, 4, 300))
	assert.Equal(t, 300.0, spread(3, 4, 300))
}
