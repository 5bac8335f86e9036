package charts

func drawBar(spec Spec, theme Theme) Figure {
	var (
		style   = theme.Bar
		data, _ = spec.first()
		xs      = ZeroScaler(MaxValue(spec.Datasets), NewRange(0, style.Width))
		count   = len(spec.Labels)
		fig     Figure
	)
	if n := len(data.Data); n > count {
		count = n
	}
	fig.Width = style.Width
	fig.Height = float64(count) * style.Gap

	for i := 0; i < count; i++ {
		var (
			top   = float64(i) * style.Gap
			label = spec.Label(i)
			value = data.Value(i)
		)
		fig.Append(tickText("label", label, NewPos(0, top+theme.FontSize/2), "start", theme.FontSize))

		f, ok := value.Float()
		str := ""
		if ok {
			str = formatValue(f)
		}
		fig.Append(tickText("value", str, NewPos(style.Width, top+theme.FontSize/2), "end", theme.FontSize*0.8))

		track := Rect{
			Class:  "track",
			Pos:    NewPos(0, top+theme.FontSize+2),
			Width:  style.Width,
			Height: style.Height,
			Fill:   style.Track,
			Radius: style.Height / 2,
		}
		fig.Append(track)
		if !ok {
			continue
		}
		el := track
		el.Class = "bar"
		el.Title = label
		el.Fraction = xs.Fraction(f)
		el.Width = xs.Scale(f)
		el.Fill = data.BackgroundColor.Or(i, style.Fill)
		fig.Append(el)
	}
	return fig
}
