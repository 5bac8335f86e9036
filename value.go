package charts

import (
	"bytes"
	"encoding/json"
	"math"
)

type valueKind int8

const (
	kindMissing valueKind = iota
	kindScalar
	kindPoint
)

// Value is one entry of a dataset: a plain number, an x/y point or
// nothing at all when the input could not be read as either.
type Value struct {
	kind valueKind
	num  float64
	x    float64
	y    float64
}

func Scalar(f float64) Value {
	return Value{
		kind: kindScalar,
		num:  f,
	}
}

func Point(x, y float64) Value {
	return Value{
		kind: kindPoint,
		x:    x,
		y:    y,
	}
}

func Missing() Value {
	return Value{}
}

func (v Value) IsScalar() bool {
	return v.kind == kindScalar
}

func (v Value) IsPoint() bool {
	return v.kind == kindPoint
}

func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

// Float returns the number held by a scalar value. ok is false for
// points, missing values and non finite numbers.
func (v Value) Float() (float64, bool) {
	if v.kind != kindScalar || !isFinite(v.num) {
		return 0, false
	}
	return v.num, true
}

// XY returns the coordinates of a point. ok is false unless both
// coordinates are finite.
func (v Value) XY() (float64, float64, bool) {
	if v.kind != kindPoint || !isFinite(v.x) || !isFinite(v.y) {
		return 0, 0, false
	}
	return v.x, v.y, true
}

func (v Value) components() []float64 {
	var list []float64
	switch v.kind {
	case kindScalar:
		list = append(list, v.num)
	case kindPoint:
		list = append(list, v.x, v.y)
	default:
	}
	return list
}

func (v *Value) UnmarshalJSON(b []byte) error {
	*v = Missing()

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '{':
		var pt struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		}
		if err := json.Unmarshal(b, &pt); err != nil {
			pt.X, pt.Y = nil, nil
			var raw map[string]any
			if json.Unmarshal(b, &raw) == nil {
				pt.X = numberField(raw, "x")
				pt.Y = numberField(raw, "y")
			}
		}
		if pt.X == nil && pt.Y == nil {
			return nil
		}
		x, y := math.NaN(), math.NaN()
		if pt.X != nil {
			x = *pt.X
		}
		if pt.Y != nil {
			y = *pt.Y
		}
		*v = Point(x, y)
	case '"', '[', 't', 'f':
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err == nil {
			*v = Scalar(f)
		}
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindScalar:
		return json.Marshal(finiteOrNil(v.num))
	case kindPoint:
		pt := struct {
			X any `json:"x"`
			Y any `json:"y"`
		}{
			X: finiteOrNil(v.x),
			Y: finiteOrNil(v.y),
		}
		return json.Marshal(pt)
	default:
		return []byte("null"), nil
	}
}

func numberField(raw map[string]any, key string) *float64 {
	f, ok := raw[key].(float64)
	if !ok {
		return nil
	}
	return &f
}

func finiteOrNil(f float64) any {
	if !isFinite(f) {
		return nil
	}
	return f
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
