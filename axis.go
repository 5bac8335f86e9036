package charts

import (
	"math"
	"strconv"
)

const FontSize = 12.0

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

func getPosFromAngle(center Pos, angle, radius float64) Pos {
	var (
		x1 = center.X + radius*math.Cos(angle)
		y1 = center.Y + radius*math.Sin(angle)
	)
	return NewPos(x1, y1)
}

// spread places index i of n slots along a segment of the given
// length. A single slot sits in the middle of the segment.
func spread(i, n int, length float64) float64 {
	if n <= 1 {
		return length / 2
	}
	return float64(i) * length / float64(n-1)
}

func formatValue(f float64) string {
	if !isFinite(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func gridLine(class string, from, to Pos, stroke string, width float64) Line {
	return Line{
		Class:       class,
		From:        from,
		To:          to,
		Stroke:      stroke,
		StrokeWidth: width,
	}
}

func tickText(class, str string, pos Pos, anchor string, size float64) Text {
	return Text{
		Class:    class,
		Pos:      pos,
		Content:  str,
		Anchor:   anchor,
		Baseline: "middle",
		Size:     size,
	}
}
