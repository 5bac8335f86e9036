package charts

import (
	"github.com/midbel/slices"
)

func drawLine(spec Spec, theme Theme) Figure {
	var (
		style = theme.Line
		ys    = ZeroScaler(MaxValue(spec.Datasets), NewRange(style.Base, style.Base-style.PlotHeight))
		fig   Figure
	)
	fig.Width = style.Width
	fig.Height = style.Height

	_, grid := ys.Ticks(4)
	for _, y := range grid {
		fig.Append(gridLine("grid", NewPos(style.Left, y), NewPos(style.Left+style.PlotWidth, y), style.Grid, 0.5))
	}

	var (
		areas   []Shape
		lines   []Shape
		markers []Shape
	)
	for i, d := range spec.Datasets {
		var (
			color = d.BorderColor
			pts   = linePoints(d, ys, style)
		)
		if color == "" {
			color = theme.Palette.At(i)
		}
		if len(pts) == 0 {
			continue
		}
		if area, ok := lineArea(pts, style); ok {
			area.Fill = color
			area.Opacity = style.Opacity
			areas = append(areas, area)
		}
		pat := linePath(d, pts)
		pat.Stroke = color
		pat.StrokeWidth = style.Stroke
		lines = append(lines, pat)

		for _, p := range pts {
			ring := Circle{
				Class:       "marker",
				Center:      p,
				Radius:      style.Marker,
				Fill:        "white",
				Stroke:      color,
				StrokeWidth: style.Marker / 2,
			}
			dot := Circle{
				Class:  "marker-dot",
				Center: p,
				Radius: style.Marker / 2,
				Fill:   color,
			}
			markers = append(markers, ring, dot)
		}
	}
	fig.Append(areas...)
	fig.Append(lines...)
	fig.Append(markers...)

	for i, str := range spec.Labels {
		x := style.Left + spread(i, len(spec.Labels), style.PlotWidth)
		fig.Append(tickText("label", str, NewPos(x, style.LabelY), "middle", theme.FontSize*0.8))
	}
	return fig
}

// linePoints returns the vertices of the finite values of a dataset.
// Missing values keep their slot on the x axis but produce no vertex.
func linePoints(d Dataset, ys Scaler, style LineStyle) []Pos {
	var (
		n   = len(d.Data)
		pts = make([]Pos, 0, n)
	)
	for i, v := range d.Data {
		f, ok := v.Float()
		if !ok {
			continue
		}
		x := style.Left + spread(i, n, style.PlotWidth)
		pts = append(pts, NewPos(x, ys.Scale(f)))
	}
	return pts
}

// linePath connects the vertices, starting a new segment after a
// missing value.
func linePath(d Dataset, pts []Pos) Path {
	pat := Path{
		Class: "line",
		Fill:  "none",
	}
	var (
		j   int
		gap = true
	)
	for _, v := range d.Data {
		if _, ok := v.Float(); !ok {
			gap = true
			continue
		}
		if gap {
			pat.MoveTo(pts[j])
		} else {
			pat.LineTo(pts[j])
		}
		gap = false
		j++
	}
	return pat
}

func lineArea(pts []Pos, style LineStyle) (Polygon, bool) {
	if len(pts) == 0 {
		return Polygon{}, false
	}
	var (
		fst  = slices.Fst(pts)
		lst  = slices.Lst(pts)
		area = Polygon{Class: "area"}
	)
	area.Points = append(area.Points, NewPos(fst.X, style.Base))
	area.Points = append(area.Points, pts...)
	area.Points = append(area.Points, NewPos(lst.X, style.Base))
	return area, true
}
