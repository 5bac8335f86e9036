package charts

func drawScatter(spec Spec, theme Theme) Figure {
	var (
		style  = theme.Scatter
		max    = MaxValue(spec.Datasets)
		origin = NewPos(style.Left, style.Base)
		xs     = ZeroScaler(max, NewRange(style.Left, style.Left+style.PlotWidth))
		ys     = ZeroScaler(max, NewRange(style.Base, style.Base-style.PlotHeight))
		fig    Figure
	)
	fig.Width = style.Width
	fig.Height = style.Height

	fig.Append(gridLine("axis", origin, NewPos(style.Left+style.PlotWidth, style.Base), style.Grid, 1))
	fig.Append(gridLine("axis", origin, NewPos(style.Left, style.Base-style.PlotHeight), style.Grid, 1))

	values, xpos := xs.Ticks(style.Ticks)
	for i, x := range xpos {
		fig.Append(gridLine("grid-x", NewPos(x, style.Base), NewPos(x, style.Base-style.PlotHeight), style.Grid, 0.5))
		fig.Append(tickText("tick-x", formatValue(values[i]), NewPos(x, style.Base+15), "middle", theme.FontSize*0.8))
	}
	values, ypos := ys.Ticks(style.Ticks)
	for i, y := range ypos {
		fig.Append(gridLine("grid-y", NewPos(style.Left, y), NewPos(style.Left+style.PlotWidth, y), style.Grid, 0.5))
		fig.Append(tickText("tick-y", formatValue(values[i]), NewPos(style.Left-15, y), "end", theme.FontSize*0.8))
	}

	for _, d := range spec.Datasets {
		fill, stroke := scatterColors(d, style)
		for _, v := range d.Data {
			x, y, ok := v.XY()
			if !ok {
				continue
			}
			pos := NewPos(xs.Scale(x), ys.Scale(y))
			fig.Append(Circle{
				Class:       "point",
				Center:      pos,
				Radius:      style.Radius,
				Fill:        fill,
				Stroke:      stroke,
				StrokeWidth: 1.5,
			})
		}
	}

	for i, d := range spec.Datasets {
		var (
			fill, stroke = scatterColors(d, style)
			top          = style.Legend.Y + float64(i)*20
		)
		fig.Append(Circle{
			Class:  "legend",
			Center: NewPos(style.Legend.X+5, top+5),
			Radius: 5,
			Fill:   fill,
			Stroke: stroke,
		})
		fig.Append(tickText("legend", d.Label, NewPos(style.Legend.X+15, top+5), "start", theme.FontSize*0.8))
	}
	return fig
}

func scatterColors(d Dataset, style ScatterStyle) (string, string) {
	var (
		fill   = d.BackgroundColor.Or(0, style.Fill)
		stroke = d.BorderColor
	)
	if stroke == "" {
		stroke = style.Stroke
	}
	return fill, stroke
}
