package charts

import (
	"fmt"
)

func drawHeatmap(spec Spec, theme Theme) Figure {
	var (
		style = theme.Heatmap
		dom   = HeatDomain(spec.Datasets)
		cols  = heatColumns(spec)
		rows  = len(spec.Datasets)
		top   = style.Legend + 30
		width = float64(cols) * style.Cell
		fig   Figure
	)
	fig.Width = style.Left + width
	fig.Height = top + float64(rows)*style.Cell + 20

	fig.Append(Rect{
		Class:    "legend",
		Pos:      NewPos(style.Left, 0),
		Width:    width,
		Height:   style.Legend,
		Gradient: []string{style.Low, style.Mid, style.High},
	})
	fig.Append(tickText("legend", fmt.Sprintf("Min: %s", formatValue(dom.Min())), NewPos(style.Left, style.Legend+15), "start", theme.FontSize*0.8))
	fig.Append(tickText("legend", fmt.Sprintf("Max: %s", formatValue(dom.Max())), NewPos(style.Left+width-30, style.Legend+15), "start", theme.FontSize*0.8))

	for r, d := range spec.Datasets {
		y := top + float64(r)*style.Cell
		fig.Append(tickText("row", d.Label, NewPos(style.Left-5, y+style.Cell/2), "end", theme.FontSize*0.8))
		for c, v := range d.Data {
			f, ok := v.Float()
			if !ok {
				continue
			}
			var (
				x    = style.Left + float64(c)*style.Cell
				norm = dom.Normalize(f)
				cell = heatCell(x, y, style, norm)
				txt  = tickText("cell-value", formatValue(f), NewPos(x+style.Cell/2, y+style.Cell/2), "middle", theme.FontSize*0.8)
			)
			cell.Title = fmt.Sprintf("%s / %s", d.Label, spec.Label(c))
			txt.Fill = style.Dark
			if norm > style.Threshold {
				txt.Fill = style.Light
			}
			fig.Append(cell, txt)
		}
	}

	y := top + float64(rows)*style.Cell + 15
	for c := 0; c < cols; c++ {
		x := style.Left + float64(c)*style.Cell + style.Cell/2
		fig.Append(tickText("label", spec.Label(c), NewPos(x, y), "middle", theme.FontSize*0.8))
	}
	return fig
}

func heatCell(x, y float64, style HeatmapStyle, norm float64) Rect {
	return Rect{
		Class:  "cell",
		Pos:    NewPos(x, y),
		Width:  style.Cell - 2,
		Height: style.Cell - 2,
		Radius: 4,
		Fill:   Interpolate(style.Low, style.High, norm),
	}
}

// heatColumns is the widest of the labels and of the datasets.
func heatColumns(spec Spec) int {
	cols := len(spec.Labels)
	for _, d := range spec.Datasets {
		if n := len(d.Data); n > cols {
			cols = n
		}
	}
	return cols
}
