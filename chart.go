package charts

// Figure is everything a renderer needs to draw one chart.
type Figure struct {
	Kind     Kind
	Title    string
	Width    float64
	Height   float64
	Analysis string
	// Diagnostic is set when the chart type is not supported and the
	// figure only shows a dump of the input.
	Diagnostic bool
	// Padding is the room left around the shapes by the renderer.
	Padding Padding

	Shapes []Shape
}

func (f *Figure) Append(shapes ...Shape) {
	f.Shapes = append(f.Shapes, shapes...)
}

// Select returns the shapes playing the given role, in drawing order.
func (f Figure) Select(class string) []Shape {
	var list []Shape
	for _, s := range f.Shapes {
		if s.Role() == class {
			list = append(list, s)
		}
	}
	return list
}

// Texts returns the content of the Text shapes playing the given role.
func (f Figure) Texts(class string) []string {
	var list []string
	for _, s := range f.Select(class) {
		if t, ok := s.(Text); ok {
			list = append(list, t.Content)
		}
	}
	return list
}

type generator func(Spec, Theme) Figure

var generators = map[Kind]generator{
	KindBar:     drawBar,
	KindLine:    drawLine,
	KindPie:     drawPie,
	KindHeatmap: drawHeatmap,
	KindRadar:   drawRadar,
	KindScatter: drawScatter,
}

// Draw computes the figure of a chart. It never fails: a type that is
// not supported gives a figure dumping the input.
func Draw(spec Spec, opts ...Option) Figure {
	return draw(spec, spec.Raw, spec, opts)
}

// DrawReply draws the chart of a reply and attaches its analysis.
func DrawReply(r Reply, opts ...Option) Figure {
	fig := draw(r.Chart, r.Raw, r, opts)
	fig.Analysis = r.Analysis
	return fig
}

// draw dumps raw when the type of the chart is not supported. in is
// dumped instead when raw is empty.
func draw(spec Spec, raw []byte, in any, opts []Option) Figure {
	theme := DefaultTheme()
	for _, o := range opts {
		o(&theme)
	}
	var fig Figure
	if gen, ok := generators[spec.Type]; ok {
		fig = gen(spec, theme)
		fig.Kind = spec.Type
		fig.Title = spec.Title
	} else {
		fig = drawDiagnostic(spec.Type, dumpLines(raw, in), theme)
	}
	fig.Padding = theme.Padding
	return fig
}
