package charts

// Shape is one drawable primitive of a figure. The set of shapes is
// closed: Rect, Path, Circle, Text, Polygon and Line.
type Shape interface {
	Role() string
	shape()
}

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

func (p Pos) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

type Rect struct {
	Class  string
	Pos    Pos
	Width  float64
	Height float64
	Fill   string
	Title  string
	Radius float64
	// Fraction is the share of the full length covered by a bar.
	Fraction float64
	// Gradient lists color stops spread evenly from left to right. It
	// replaces Fill when set.
	Gradient []string
}

type Text struct {
	Class    string
	Pos      Pos
	Content  string
	Anchor   string
	Baseline string
	Fill     string
	Size     float64
}

type Circle struct {
	Class       string
	Center      Pos
	Radius      float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

type Polygon struct {
	Class       string
	Points      []Pos
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

type Line struct {
	Class       string
	From        Pos
	To          Pos
	Stroke      string
	StrokeWidth float64
}

type StepKind int8

const (
	MoveTo StepKind = iota
	LineTo
	ArcTo
	Close
)

type Step struct {
	Kind  StepKind
	Pos   Pos
	Rx    float64
	Ry    float64
	Large bool
	Sweep bool
}

type Path struct {
	Class       string
	Steps       []Step
	Fill        string
	Stroke      string
	StrokeWidth float64
	// Start and Span give the angles, in degrees, of a pie slice.
	Start float64
	Span  float64
}

func (p *Path) MoveTo(pos Pos) {
	p.Steps = append(p.Steps, Step{Kind: MoveTo, Pos: pos})
}

func (p *Path) LineTo(pos Pos) {
	p.Steps = append(p.Steps, Step{Kind: LineTo, Pos: pos})
}

func (p *Path) ArcTo(pos Pos, rx, ry float64, large, sweep bool) {
	s := Step{
		Kind:  ArcTo,
		Pos:   pos,
		Rx:    rx,
		Ry:    ry,
		Large: large,
		Sweep: sweep,
	}
	p.Steps = append(p.Steps, s)
}

func (p *Path) ClosePath() {
	p.Steps = append(p.Steps, Step{Kind: Close})
}

func (p Path) Points() []Pos {
	var list []Pos
	for _, s := range p.Steps {
		if s.Kind == Close {
			continue
		}
		list = append(list, s.Pos)
	}
	return list
}

func (r Rect) Role() string    { return r.Class }
func (t Text) Role() string    { return t.Class }
func (c Circle) Role() string  { return c.Class }
func (p Polygon) Role() string { return p.Class }
func (i Line) Role() string    { return i.Class }
func (p Path) Role() string    { return p.Class }

func (Rect) shape()    {}
func (Text) shape()    {}
func (Circle) shape()  {}
func (Polygon) shape() {}
func (Line) shape()    {}
func (Path) shape()    {}
