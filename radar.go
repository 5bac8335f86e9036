package charts

import (
	"math"
)

func drawRadar(spec Spec, theme Theme) Figure {
	var (
		style  = theme.Radar
		center = NewPos(style.Size/2, style.Size/2)
		axes   = len(spec.Labels)
		rs     = ZeroScaler(MaxValue(spec.Datasets), NewRange(0, style.Radius))
		fig    Figure
	)
	fig.Width = style.Size
	fig.Height = style.Size
	if axes == 0 {
		return fig
	}

	for _, level := range style.Rings {
		ring := Polygon{
			Class:       "grid",
			Fill:        "none",
			Stroke:      style.Grid,
			StrokeWidth: 0.5,
		}
		for i := 0; i < axes; i++ {
			ring.Points = append(ring.Points, getPosFromAngle(center, radarAngle(i, axes), style.Radius*level))
		}
		fig.Append(ring)
	}
	for i := 0; i < axes; i++ {
		end := getPosFromAngle(center, radarAngle(i, axes), style.Radius)
		fig.Append(gridLine("axis", center, end, style.Grid, 0.5))
	}

	for _, d := range spec.Datasets {
		var (
			fill    = d.BackgroundColor.Or(0, style.Fill)
			stroke  = d.BorderColor
			poly    Polygon
			markers []Shape
		)
		if stroke == "" {
			stroke = style.Stroke
		}
		poly = Polygon{
			Class:       "series",
			Fill:        fill,
			Stroke:      stroke,
			StrokeWidth: 2,
		}
		for i, v := range d.Data {
			f, ok := v.Float()
			if !ok || i >= axes {
				continue
			}
			pos := getPosFromAngle(center, radarAngle(i, axes), rs.Scale(f))
			poly.Points = append(poly.Points, pos)
			markers = append(markers, Circle{
				Class:       "marker",
				Center:      pos,
				Radius:      4,
				Fill:        stroke,
				Stroke:      "white",
				StrokeWidth: 1.5,
			})
		}
		if len(poly.Points) == 0 {
			continue
		}
		fig.Append(poly)
		fig.Append(markers...)
	}

	for i, str := range spec.Labels {
		pos := getPosFromAngle(center, radarAngle(i, axes), style.Radius+style.Offset)
		fig.Append(tickText("label", str, pos, "middle", theme.FontSize*0.8))
	}

	var (
		step = theme.FontSize * 1.4
		top  = style.Size + step/2
	)
	for i, d := range spec.Datasets {
		stroke := d.BorderColor
		if stroke == "" {
			stroke = style.Stroke
		}
		y := top + float64(i)*step
		fig.Append(Circle{
			Class:  "legend",
			Center: NewPos(theme.FontSize/2, y),
			Radius: theme.FontSize / 4,
			Fill:   stroke,
		})
		fig.Append(tickText("legend", d.Label, NewPos(theme.FontSize*1.2, y), "start", theme.FontSize*0.8))
	}
	fig.Height += float64(len(spec.Datasets)) * step
	return fig
}

// radarAngle places axis i of n, starting at 12 o'clock and turning
// clockwise.
func radarAngle(i, n int) float64 {
	return float64(i)*2*math.Pi/float64(n) - math.Pi/2
}
