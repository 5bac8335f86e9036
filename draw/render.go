package draw

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"runtime"
	"strings"

	"github.com/midbel/chatcharts"
	"github.com/midbel/slices"
	"github.com/midbel/svg"
	"golang.org/x/sync/errgroup"
)

var ErrSize = errors.New("figure has an invalid size")

const (
	strips      = 48
	analysisRow = charts.FontSize * 1.4
	analysisInk = "#374151"
)

// Render writes fig as a standalone SVG document.
func Render(w io.Writer, fig charts.Figure) error {
	if !isFinite(fig.Width) || !isFinite(fig.Height) || fig.Width < 0 || fig.Height < 0 {
		return fmt.Errorf("%w: %gx%g", ErrSize, fig.Width, fig.Height)
	}
	var (
		pad    = fig.Padding
		width  = fig.Width + pad.Horizontal()
		height = fig.Height + pad.Vertical()
		notes  = analysisLines(fig.Analysis, fig.Width)
	)
	height += float64(len(notes)) * analysisRow

	el := svg.NewSVG()
	el.Dim = svg.NewDim(width, height)
	el.OmitProlog = true
	if fig.Title != "" && !fig.Diagnostic && pad.Top > 0 {
		el.Append(drawTitle(fig.Title, width, pad.Top))
	}

	var area svg.Group
	area.Id = "area"
	area.Transform = svg.Translate(pad.Left, pad.Top)
	for _, s := range fig.Shapes {
		if e := drawShape(s); e != nil {
			area.Append(e)
		}
	}
	el.Append(area.AsElement())

	if len(notes) > 0 {
		el.Append(drawAnalysis(notes, pad.Left, pad.Top+fig.Height))
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// RenderAll renders every figure in its own goroutine. open gives the
// destination of the figure at index i and is closed once the figure is
// written.
func RenderAll(ctx context.Context, figs []charts.Figure, open func(int, charts.Figure) (io.WriteCloser, error)) error {
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())
	for i := range figs {
		i, fig := i, figs[i]
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, err := open(i, fig)
			if err != nil {
				return err
			}
			err = Render(w, fig)
			if e := w.Close(); err == nil {
				err = e
			}
			if err != nil {
				return fmt.Errorf("figure %d (%s): %w", i, fig.Kind, err)
			}
			return nil
		})
	}
	return grp.Wait()
}

func drawTitle(str string, width, height float64) svg.Element {
	txt := newText(str, charts.FontSize*1.2, "")
	txt.Id = "title"
	txt.Pos = svg.NewPos(width/2, height/2)
	txt.Anchor = "middle"
	txt.Baseline = "middle"
	return txt.AsElement()
}

func drawAnalysis(lines []string, left, top float64) svg.Element {
	var grp svg.Group
	grp.Id = "analysis"
	grp.Transform = svg.Translate(left, top)
	for i, str := range lines {
		txt := newText(str, charts.FontSize*0.9, analysisInk)
		txt.Pos = svg.NewPos(0, float64(i+1)*analysisRow)
		txt.Anchor = "start"
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

// analysisLines wraps the analysis on word boundaries so that it fits
// the given width.
func analysisLines(str string, width float64) []string {
	var (
		limit = int(width / (charts.FontSize * 0.5))
		lines []string
		curr  strings.Builder
	)
	if limit <= 0 {
		limit = 1
	}
	for _, para := range strings.Split(strings.TrimSpace(str), "\n") {
		for _, word := range strings.Fields(para) {
			if curr.Len() > 0 && curr.Len()+1+len(word) > limit {
				lines = append(lines, curr.String())
				curr.Reset()
			}
			if curr.Len() > 0 {
				curr.WriteByte(' ')
			}
			curr.WriteString(word)
		}
		if curr.Len() > 0 {
			lines = append(lines, curr.String())
			curr.Reset()
		}
	}
	return lines
}

func drawShape(s charts.Shape) svg.Element {
	switch s := s.(type) {
	case charts.Rect:
		return drawRect(s)
	case charts.Text:
		return drawText(s)
	case charts.Circle:
		return drawCircle(s)
	case charts.Line:
		return drawLine(s)
	case charts.Polygon:
		return drawPolygon(s)
	case charts.Path:
		return drawPath(s)
	default:
		return nil
	}
}

func drawRect(r charts.Rect) svg.Element {
	if !finitePos(r.Pos) || !isFinite(r.Width) || !isFinite(r.Height) {
		return nil
	}
	if len(r.Gradient) > 0 {
		return drawGradient(r)
	}
	var el svg.Rect
	el.Class = classList(r.Class)
	el.Title = html.EscapeString(r.Title)
	el.Pos = svg.NewPos(r.Pos.X, r.Pos.Y)
	el.Dim = svg.NewDim(math.Max(r.Width, 0), math.Max(r.Height, 0))
	el.Fill = newFill(r.Fill, 0)
	if r.Radius > 0 && isFinite(r.Radius) {
		el.RX = r.Radius
		el.RY = r.Radius
	}
	return el.AsElement()
}

// drawGradient approximates a linear gradient with thin strips of
// interpolated colors.
func drawGradient(r charts.Rect) svg.Element {
	var (
		grp  svg.Group
		size = math.Max(r.Width, 0) / strips
	)
	grp.Class = classList(r.Class)
	if len(r.Gradient) == 1 || size == 0 {
		var el svg.Rect
		el.Pos = svg.NewPos(r.Pos.X, r.Pos.Y)
		el.Dim = svg.NewDim(math.Max(r.Width, 0), math.Max(r.Height, 0))
		el.Fill = newFill(slices.Fst(r.Gradient), 0)
		grp.Append(el.AsElement())
		return grp.AsElement()
	}
	for i := 0; i < strips; i++ {
		var el svg.Rect
		el.Pos = svg.NewPos(r.Pos.X+float64(i)*size, r.Pos.Y)
		// overlap the next strip to hide the seams.
		el.Dim = svg.NewDim(size+0.5, math.Max(r.Height, 0))
		el.Fill = newFill(gradientAt(r.Gradient, (float64(i)+0.5)/strips), 0)
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

// gradientAt gives the color at t (0 to 1) of stops spread evenly.
func gradientAt(stops []string, t float64) string {
	switch {
	case t <= 0:
		return slices.Fst(stops)
	case t >= 1:
		return slices.Lst(stops)
	}
	var (
		pos = t * float64(len(stops)-1)
		idx = int(pos)
	)
	return charts.Interpolate(stops[idx], stops[idx+1], pos-float64(idx))
}

func drawText(t charts.Text) svg.Element {
	if !finitePos(t.Pos) {
		return nil
	}
	size := t.Size
	if size <= 0 {
		size = charts.FontSize
	}
	txt := newText(t.Content, size, t.Fill)
	txt.Class = classList(t.Class)
	txt.Pos = svg.NewPos(t.Pos.X, t.Pos.Y)
	txt.Anchor = t.Anchor
	txt.Baseline = t.Baseline
	return txt.AsElement()
}

func drawCircle(c charts.Circle) svg.Element {
	if !finitePos(c.Center) || !isFinite(c.Radius) {
		return nil
	}
	var ci svg.Circle
	ci.Class = classList(c.Class)
	ci.Pos = svg.NewPos(c.Center.X, c.Center.Y)
	ci.Radius = math.Max(c.Radius, 0)
	ci.Fill = newFill(c.Fill, 0)
	if c.Stroke != "" {
		ci.Stroke = svg.NewStroke(c.Stroke, c.StrokeWidth)
	}
	return ci.AsElement()
}

func drawLine(i charts.Line) svg.Element {
	if !finitePos(i.From) || !finitePos(i.To) {
		return nil
	}
	li := svg.NewLine(svg.NewPos(i.From.X, i.From.Y), svg.NewPos(i.To.X, i.To.Y))
	li.Class = classList(i.Class)
	li.Stroke = svg.NewStroke(i.Stroke, i.StrokeWidth)
	return li.AsElement()
}

func drawPolygon(p charts.Polygon) svg.Element {
	var pol svg.Polygon
	for _, pt := range p.Points {
		if finitePos(pt) {
			pol.Points = append(pol.Points, svg.NewPos(pt.X, pt.Y))
		}
	}
	if len(pol.Points) == 0 {
		return nil
	}
	pol.Class = classList(p.Class)
	pol.Rendering = "geometricPrecision"
	pol.Fill = newFill(p.Fill, p.Opacity)
	if p.Stroke != "" {
		pol.Stroke = svg.NewStroke(p.Stroke, p.StrokeWidth)
	}
	return pol.AsElement()
}

func drawPath(p charts.Path) svg.Element {
	if len(p.Steps) == 0 {
		return nil
	}
	var pat svg.Path
	pat.Class = classList(p.Class)
	pat.Rendering = "geometricPrecision"
	pat.Fill = newFill(p.Fill, 0)
	if p.Stroke != "" {
		pat.Stroke = svg.NewStroke(p.Stroke, p.StrokeWidth)
	}
	for _, s := range p.Steps {
		if s.Kind != charts.Close && !finitePos(s.Pos) {
			return nil
		}
		pos := svg.NewPos(s.Pos.X, s.Pos.Y)
		switch s.Kind {
		case charts.MoveTo:
			pat.AbsMoveTo(pos)
		case charts.LineTo:
			pat.AbsLineTo(pos)
		case charts.ArcTo:
			pat.AbsArcTo(pos, s.Rx, s.Ry, 0, s.Large, s.Sweep)
		case charts.Close:
			pat.ClosePath()
		}
	}
	return pat.AsElement()
}

// newText escapes str since the content of a text element is written
// as is. The color goes through the font which otherwise paints the
// text in black.
func newText(str string, size float64, color string) svg.Text {
	txt := svg.NewText(html.EscapeString(str))
	txt.Font = svg.NewFont(size)
	if color != "" {
		txt.Font.Fill = color
	}
	return txt
}

// newFill gives an opaque fill unless opacity is set. An empty color
// fills nothing.
func newFill(color string, opacity float64) svg.Fill {
	fill := svg.NewFill(color)
	fill.Opacity = 1
	if opacity > 0 {
		fill.Opacity = opacity
	}
	return fill
}

func classList(class string) []string {
	if class == "" {
		return nil
	}
	return []string{class}
}

func finitePos(p charts.Pos) bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
