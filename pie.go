package charts

import (
	"fmt"
)

func drawPie(spec Spec, theme Theme) Figure {
	var (
		style   = theme.Pie
		center  = NewPos(style.Size/2, style.Size/2)
		data, _ = spec.first()
		total   = pieTotal(data)
		angle   float64
		fig     Figure
	)
	fig.Width = style.Size
	fig.Height = style.Size

	if total > 0 && isFinite(total) {
		var labels []Shape
		for i, v := range data.Data {
			f, ok := v.Float()
			if !ok || f <= 0 {
				continue
			}
			var (
				share = f / total
				span  = share * fullcircle
				pat   = pieSlice(center, style.Radius, angle, span)
				mid   = (angle + span/2) * deg2rad
			)
			pat.Fill = data.BackgroundColor.Or(i, theme.Palette.At(i))
			fig.Append(pat)

			txt := tickText("percent", fmt.Sprintf("%d%%", int(roundHalfUp(share*100))), getPosFromAngle(center, mid, style.LabelRadius), "middle", theme.FontSize*0.8)
			labels = append(labels, txt)

			angle += span
		}
		fig.Append(labels...)
	}

	fig.Append(Circle{
		Class:  "hole",
		Center: center,
		Radius: style.Hole,
		Fill:   style.HoleFill,
	})

	var (
		step = theme.FontSize * 1.4
		top  = style.Size + step/2
	)
	for i, str := range spec.Labels {
		y := top + float64(i)*step
		fig.Append(Circle{
			Class:  "legend",
			Center: NewPos(theme.FontSize/2, y),
			Radius: theme.FontSize / 4,
			Fill:   data.BackgroundColor.Or(i, theme.Palette.At(i)),
		})
		fig.Append(tickText("legend", str, NewPos(theme.FontSize*1.2, y), "start", theme.FontSize*0.8))
	}
	if n := len(spec.Labels); n > 0 {
		fig.Height += float64(n) * step
	}
	return fig
}

// pieTotal sums the finite values of the dataset. Negative values
// lower the total even though they get no slice.
func pieTotal(d Dataset) float64 {
	var total float64
	for _, v := range d.Data {
		if f, ok := v.Float(); ok {
			total += f
		}
	}
	return total
}

// pieSlice builds the sector starting at angle (in degrees, clockwise
// from 3 o'clock) and covering span degrees. A full circle is split in
// two arcs since an arc whose ends are the same point draws nothing.
func pieSlice(center Pos, radius, angle, span float64) Path {
	pat := Path{
		Class: "slice",
		Start: angle,
		Span:  span,
	}
	var (
		from = getPosFromAngle(center, angle*deg2rad, radius)
		to   = getPosFromAngle(center, (angle+span)*deg2rad, radius)
	)
	pat.MoveTo(center)
	pat.LineTo(from)
	if span >= fullcircle {
		half := getPosFromAngle(center, (angle+halfcircle)*deg2rad, radius)
		pat.ArcTo(half, radius, radius, false, true)
		pat.ArcTo(from, radius, radius, false, true)
	} else {
		pat.ArcTo(to, radius, radius, span > halfcircle, true)
	}
	pat.ClosePath()
	return pat
}
