package draw

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/chatcharts"
)

type buffer struct {
	bytes.Buffer
	closed bool
}

func (b *buffer) Close() error {
	b.closed = true
	return nil
}

func sample(kind charts.Kind) charts.Spec {
	spec := charts.Spec{
		Type:   kind,
		Title:  "sample " + kind.String(),
		Labels: charts.Labels{"a", "b", "c"},
		Datasets: []charts.Dataset{
			{Label: "one", Data: []charts.Value{charts.Scalar(1), charts.Scalar(4), charts.Scalar(9)}},
		},
	}
	if kind == charts.KindScatter {
		spec.Datasets[0].Data = []charts.Value{charts.Point(1, 2), charts.Point(3, 4)}
	}
	return spec
}

func TestRender(t *testing.T) {
	tests := []struct {
		kind  charts.Kind
		elems []string
	}{
		{charts.KindBar, []string{"<rect", "<text"}},
		{charts.KindLine, []string{"<path", "<circle", "<line"}},
		{charts.KindPie, []string{"<path", "<circle", "<text"}},
		{charts.KindHeatmap, []string{"<rect", "<text"}},
		{charts.KindRadar, []string{"<polygon", "<line", "<circle"}},
		{charts.KindScatter, []string{"<circle", "<line", "<text"}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, charts.Draw(sample(tt.kind))))

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "<svg"))
			assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
			assert.Contains(t, out, "sample "+tt.kind.String())
			for _, e := range tt.elems {
				assert.Contains(t, out, e)
			}
		})
	}
}

func TestRenderDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, charts.Draw(sample("funnel"))))
	assert.Contains(t, buf.String(), "unsupported chart type: funnel")
	assert.Contains(t, buf.String(), "funnel")
}

func TestRenderAnalysis(t *testing.T) {
	fig := charts.Draw(sample(charts.KindBar))
	fig.Analysis = "commits doubled between march and april"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, fig))
	assert.Contains(t, buf.String(), "commits doubled")
}

func TestRenderInvalidSize(t *testing.T) {
	for _, fig := range []charts.Figure{
		{Width: math.NaN(), Height: 10},
		{Width: 10, Height: math.Inf(1)},
		{Width: -1, Height: 10},
	} {
		err := Render(io.Discard, fig)
		assert.ErrorIs(t, err, ErrSize)
	}
}

func TestRenderSkipsNonFinite(t *testing.T) {
	fig := charts.Figure{Width: 100, Height: 100}
	fig.Append(
		charts.Circle{Class: "bad", Center: charts.NewPos(math.NaN(), 1), Radius: 3},
		charts.Rect{Class: "neg", Pos: charts.NewPos(0, 0), Width: -20, Height: 5, Fill: "red"},
	)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, fig))
	assert.NotContains(t, buf.String(), "NaN")
	assert.NotContains(t, buf.String(), "-20")
}

func TestRenderPadding(t *testing.T) {
	theme := charts.DefaultTheme()
	theme.Padding = charts.Padding{Top: 50, Right: 3, Bottom: 5, Left: 7}

	fig := charts.Draw(sample(charts.KindBar), charts.WithTheme(theme))
	require.Equal(t, theme.Padding, fig.Padding)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, fig))
	out := buf.String()
	assert.Contains(t, out, `width="330"`)
	assert.Contains(t, out, `height="151"`)
	assert.Contains(t, out, `transform="translate(7,50)"`)
	assert.Contains(t, out, `id="title"`)
	assert.Contains(t, out, `y="25"`)

	theme.Padding = charts.Padding{}
	buf.Reset()
	require.NoError(t, Render(&buf, charts.Draw(sample(charts.KindBar), charts.WithTheme(theme))))
	assert.NotContains(t, buf.String(), `id="title"`)
	assert.NotContains(t, buf.String(), "translate(")
}

func TestRenderElements(t *testing.T) {
	fig := charts.Figure{Width: 100, Height: 100}
	fig.Append(
		charts.Rect{Class: "bar", Title: "a < b", Pos: charts.NewPos(1, 2), Width: 30, Height: 12, Fill: "#3b82f6", Radius: 6},
		charts.Text{Class: "label", Pos: charts.NewPos(5, 5), Content: `"x" & <y>`, Fill: "#4b5563", Anchor: "end", Baseline: "middle"},
		charts.Polygon{Class: "area", Points: []charts.Pos{charts.NewPos(0, 0), charts.NewPos(10, 0), charts.NewPos(10, 10)}, Fill: "red", Opacity: 0.2},
		charts.Line{Class: "axis", From: charts.NewPos(0, 0), To: charts.NewPos(0, 50), Stroke: "#e2e8f0", StrokeWidth: 0.5},
	)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, fig))
	out := buf.String()

	assert.Contains(t, out, `class="bar"`)
	assert.Contains(t, out, `rx="6"`)
	assert.Contains(t, out, "<title>a &lt; b</title>")
	assert.Contains(t, out, "&#34;x&#34; &amp; &lt;y&gt;")
	assert.NotContains(t, out, "<y>")
	assert.Contains(t, out, `fill="#4b5563"`)
	assert.Contains(t, out, `text-anchor="end"`)
	assert.Contains(t, out, `dominant-baseline="middle"`)
	assert.Contains(t, out, `points="0,0 10,0 10,10"`)
	assert.Contains(t, out, `fill-opacity="0.20"`)
	assert.Contains(t, out, `stroke-width="0.50"`)
	assert.NotContains(t, out, `fill-opacity="100"`)
}

func TestGradientAt(t *testing.T) {
	stops := []string{"#000000", "#ffffff", "#ff0000"}
	assert.Equal(t, "#000000", gradientAt(stops, 0))
	assert.Equal(t, "#ff0000", gradientAt(stops, 1))
	assert.Equal(t, "rgb(255,255,255)", gradientAt(stops, 0.5))
	assert.Equal(t, "rgb(128,128,128)", gradientAt(stops, 0.25))
}

func TestAnalysisLines(t *testing.T) {
	lines := analysisLines("one two three four five six seven eight nine ten", 60)
	require.Greater(t, len(lines), 1)
	for _, str := range lines {
		assert.LessOrEqual(t, len(str), 10)
	}
	assert.Equal(t, "one two three four five six seven eight nine ten", strings.Join(lines, " "))
	assert.Empty(t, analysisLines("  ", 400))
}

func TestRenderAll(t *testing.T) {
	var (
		kinds = []charts.Kind{charts.KindBar, charts.KindLine, charts.KindPie, charts.KindHeatmap, charts.KindRadar, charts.KindScatter}
		figs  []charts.Figure
		mu    sync.Mutex
		outs  = make(map[int]*buffer)
	)
	for _, k := range kinds {
		figs = append(figs, charts.Draw(sample(k)))
	}
	err := RenderAll(context.Background(), figs, func(i int, _ charts.Figure) (io.WriteCloser, error) {
		mu.Lock()
		defer mu.Unlock()
		outs[i] = &buffer{}
		return outs[i], nil
	})
	require.NoError(t, err)
	require.Len(t, outs, len(kinds))
	for i, k := range kinds {
		assert.True(t, outs[i].closed)
		assert.Contains(t, outs[i].String(), "sample "+k.String())
	}
}

func TestRenderAllError(t *testing.T) {
	figs := []charts.Figure{charts.Draw(sample(charts.KindPie))}
	failure := errors.New("disk full")
	err := RenderAll(context.Background(), figs, func(int, charts.Figure) (io.WriteCloser, error) {
		return nil, failure
	})
	assert.ErrorIs(t, err, failure)
}
