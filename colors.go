package charts

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
	Widget10   Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	Widget10 = splitColorString("3b82f6ef444410b981f59e0b6366f1ec489914b8a6f973168b5cf606b6d4")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// PaletteByName returns one of the builtin palettes.
func PaletteByName(name string) (Palette, bool) {
	switch strings.ToLower(name) {
	case "", "widget", "widget10":
		return Widget10, true
	case "category", "category10":
		return Category10, true
	case "tableau", "tableau10":
		return Tableau10, true
	default:
		return nil, false
	}
}

// At cycles over the palette. An empty palette gives the color of
// DefaultColor.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return DefaultColor.Hex()
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

func CategoricalColor(i int) string {
	return Widget10.At(i)
}

type RGB struct {
	R int
	G int
	B int
}

// DefaultColor is what any color that can not be parsed resolves to.
var DefaultColor = RGB{}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R&0xff, c.G&0xff, c.B&0xff)
}

var hexPattern = regexp.MustCompile(`^#?([[:xdigit:]]{6})$`)

// ParseHex reads a #rrggbb color, the leading # being optional. ok is
// false when str does not match and DefaultColor is returned instead.
func ParseHex(str string) (RGB, bool) {
	parts := hexPattern.FindStringSubmatch(str)
	if len(parts) != 2 {
		return DefaultColor, false
	}
	c, err := colorful.Hex("#" + strings.ToLower(parts[1]))
	if err != nil {
		return DefaultColor, false
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

// Interpolate blends two hex colors channel per channel. factor is not
// clamped: values outside [0, 1] extrapolate.
func Interpolate(from, to string, factor float64) string {
	return Blend(from, to, factor).String()
}

func Blend(from, to string, factor float64) RGB {
	var (
		c1, _ = ParseHex(from)
		c2, _ = ParseHex(to)
	)
	return RGB{
		R: lerp(c1.R, c2.R, factor),
		G: lerp(c1.G, c2.G, factor),
		B: lerp(c1.B, c2.B, factor),
	}
}

func lerp(a, b int, factor float64) int {
	v := float64(a) + factor*float64(b-a)
	if !isFinite(v) {
		return a
	}
	return int(math.Floor(v + 0.5))
}
