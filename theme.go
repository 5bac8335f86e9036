package charts

import (
	"io"

	"github.com/BurntSushi/toml"
)

// Padding is the room the renderer keeps around a chart. The title of
// the chart is drawn in the top padding.
type Padding struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type BarStyle struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Gap    float64 `toml:"gap"`
	Fill   string  `toml:"fill"`
	Track  string  `toml:"track"`
}

type LineStyle struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Left       float64 `toml:"left"`
	PlotWidth  float64 `toml:"plot-width"`
	Base       float64 `toml:"base"`
	PlotHeight float64 `toml:"plot-height"`
	LabelY     float64 `toml:"label-y"`
	Marker     float64 `toml:"marker"`
	Stroke     float64 `toml:"stroke"`
	Opacity    float64 `toml:"opacity"`
	Grid       string  `toml:"grid"`
}

type PieStyle struct {
	Size        float64 `toml:"size"`
	Radius      float64 `toml:"radius"`
	LabelRadius float64 `toml:"label-radius"`
	Hole        float64 `toml:"hole"`
	HoleFill    string  `toml:"hole-fill"`
}

type HeatmapStyle struct {
	Cell      float64 `toml:"cell"`
	Legend    float64 `toml:"legend"`
	Left      float64 `toml:"left"`
	Low       string  `toml:"low"`
	Mid       string  `toml:"mid"`
	High      string  `toml:"high"`
	Light     string  `toml:"light"`
	Dark      string  `toml:"dark"`
	Threshold float64 `toml:"threshold"`
}

type RadarStyle struct {
	Size   float64   `toml:"size"`
	Radius float64   `toml:"radius"`
	Offset float64   `toml:"offset"`
	Rings  []float64 `toml:"rings"`
	Fill   string    `toml:"fill"`
	Stroke string    `toml:"stroke"`
	Grid   string    `toml:"grid"`
}

type ScatterStyle struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Left       float64 `toml:"left"`
	PlotWidth  float64 `toml:"plot-width"`
	Base       float64 `toml:"base"`
	PlotHeight float64 `toml:"plot-height"`
	Ticks      int     `toml:"ticks"`
	Radius     float64 `toml:"radius"`
	Fill       string  `toml:"fill"`
	Stroke     string  `toml:"stroke"`
	Grid       string  `toml:"grid"`
	Legend     Pos     `toml:"legend"`
}

// Theme gathers every constant used to lay out the charts.
type Theme struct {
	Palette  Palette `toml:"palette"`
	FontSize float64 `toml:"font-size"`
	Text     string  `toml:"text"`
	Padding  Padding `toml:"padding"`

	Bar     BarStyle     `toml:"bar"`
	Line    LineStyle    `toml:"line"`
	Pie     PieStyle     `toml:"pie"`
	Heatmap HeatmapStyle `toml:"heatmap"`
	Radar   RadarStyle   `toml:"radar"`
	Scatter ScatterStyle `toml:"scatter"`
}

func DefaultTheme() Theme {
	return Theme{
		Palette:  append(Palette{}, Widget10...),
		FontSize: FontSize,
		Text:     "#4b5563",
		Padding: Padding{
			Top:    30,
			Right:  10,
			Bottom: 10,
			Left:   10,
		},
		Bar: BarStyle{
			Width:  320,
			Height: 12,
			Gap:    32,
			Fill:   "#3b82f6",
			Track:  "#e5e7eb",
		},
		Line: LineStyle{
			Width:      400,
			Height:     200,
			Left:       50,
			PlotWidth:  300,
			Base:       180,
			PlotHeight: 160,
			LabelY:     195,
			Marker:     6,
			Stroke:     4,
			Opacity:    0.2,
			Grid:       "#e0e7ff",
		},
		Pie: PieStyle{
			Size:        200,
			Radius:      80,
			LabelRadius: 50,
			Hole:        30,
			HoleFill:    "white",
		},
		Heatmap: HeatmapStyle{
			Cell:      30,
			Legend:    20,
			Left:      100,
			Low:       "#f8fafc",
			Mid:       "#f97316",
			High:      "#ef4444",
			Light:     "white",
			Dark:      "#374151",
			Threshold: 0.6,
		},
		Radar: RadarStyle{
			Size:   300,
			Radius: 100,
			Offset: 20,
			Rings:  []float64{0.25, 0.5, 0.75, 1},
			Fill:   "rgba(99, 102, 241, 0.2)",
			Stroke: "#6366f1",
			Grid:   "#e2e8f0",
		},
		Scatter: ScatterStyle{
			Width:      400,
			Height:     300,
			Left:       50,
			PlotWidth:  300,
			Base:       250,
			PlotHeight: 200,
			Ticks:      4,
			Radius:     6,
			Fill:       "#10b981",
			Stroke:     "#059669",
			Grid:       "#f1f5f9",
			Legend:     NewPos(300, 20),
		},
	}
}

// LoadTheme reads a TOML theme. Keys absent from the document keep
// their default value.
func LoadTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return t, err
	}
	return t.sanitize(), nil
}

func LoadThemeFile(file string) (Theme, error) {
	t := DefaultTheme()
	if _, err := toml.DecodeFile(file, &t); err != nil {
		return t, err
	}
	return t.sanitize(), nil
}

func (t Theme) sanitize() Theme {
	def := DefaultTheme()
	if len(t.Palette) == 0 {
		t.Palette = def.Palette
	}
	if t.FontSize <= 0 {
		t.FontSize = def.FontSize
	}
	if t.Scatter.Ticks <= 0 {
		t.Scatter.Ticks = def.Scatter.Ticks
	}
	if len(t.Radar.Rings) == 0 {
		t.Radar.Rings = def.Radar.Rings
	}
	return t
}

type Option func(*Theme)

func WithTheme(t Theme) Option {
	return func(curr *Theme) {
		*curr = t.sanitize()
	}
}

func WithPalette(p Palette) Option {
	return func(t *Theme) {
		if len(p) > 0 {
			t.Palette = append(Palette{}, p...)
		}
	}
}
