package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	doc := `
palette = ["#111111", "#222222"]
font-size = 14

[bar]
fill = "#abcdef"
gap = 40

[heatmap]
low = "#ffffff"
high = "#000000"

[scatter]
ticks = 0
legend = { x = 10, y = 5 }
`
	theme, err := LoadTheme(strings.NewReader(doc))
	require.NoError(t, err)

	def := DefaultTheme()
	assert.Equal(t, Palette{"#111111", "#222222"}, theme.Palette)
	assert.Equal(t, 14.0, theme.FontSize)
	assert.Equal(t, "#abcdef", theme.Bar.Fill)
	assert.Equal(t, 40.0, theme.Bar.Gap)
	assert.Equal(t, def.Bar.Width, theme.Bar.Width)
	assert.Equal(t, "#ffffff", theme.Heatmap.Low)
	assert.Equal(t, def.Heatmap.Mid, theme.Heatmap.Mid)
	assert.Equal(t, def.Scatter.Ticks, theme.Scatter.Ticks)
	assert.Equal(t, NewPos(10, 5), theme.Scatter.Legend)
	assert.Equal(t, def.Radar, theme.Radar)
}

func TestLoadThemeFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(file, []byte("[pie]\nhole = 0\n"), 0o644))

	theme, err := LoadThemeFile(file)
	require.NoError(t, err)
	assert.Equal(t, 0.0, theme.Pie.Hole)
	assert.Equal(t, DefaultTheme().Pie.Radius, theme.Pie.Radius)

	_, err = LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadThemeInvalid(t *testing.T) {
	_, err := LoadTheme(strings.NewReader("font-size = \"big\""))
	assert.Error(t, err)
}

func TestWithTheme(t *testing.T) {
	var theme Theme
	theme.Bar.Fill = "#010203"

	spec := Spec{
		Type:     KindBar,
		Labels:   Labels{"a"},
		Datasets: []Dataset{{Data: []Value{Scalar(1)}}},
	}
	fig := Draw(spec, WithTheme(theme))
	bars := fig.Select("bar")
	require.Len(t, bars, 1)
	assert.Equal(t, "#010203", bars[0].(Rect).Fill)

	assert.Equal(t, "#3b82f6", DefaultTheme().Bar.Fill)
}
