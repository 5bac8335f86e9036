package charts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	dumpLeft = 10.0
	dumpTop  = 40.0
	dumpStep = 14.0
	dumpSize = 10.0
)

func drawDiagnostic(kind Kind, lines []string, theme Theme) Figure {
	fig := Figure{
		Kind:       kind,
		Diagnostic: true,
		Title:      fmt.Sprintf("unsupported chart type: %s", kind),
	}
	fig.Append(Text{
		Class:    "title",
		Pos:      NewPos(dumpLeft, dumpTop/2),
		Content:  fig.Title,
		Anchor:   "start",
		Baseline: "middle",
		Fill:     theme.Text,
		Size:     theme.FontSize,
	})

	var width float64
	for i, str := range lines {
		fig.Append(Text{
			Class:    "dump",
			Pos:      NewPos(dumpLeft, dumpTop+float64(i)*dumpStep),
			Content:  str,
			Anchor:   "start",
			Baseline: "middle",
			Fill:     theme.Text,
			Size:     dumpSize,
		})
		if w := float64(len(str)) * dumpSize * 0.6; w > width {
			width = w
		}
	}
	fig.Width = width + 2*dumpLeft
	fig.Height = dumpTop + float64(len(lines))*dumpStep
	return fig
}

// dumpLines indents the document as it was received. Values built in
// code have no such document and are marshaled instead.
func dumpLines(raw []byte, in any) []string {
	var buf bytes.Buffer
	if len(raw) > 0 && json.Indent(&buf, raw, "", "  ") == nil {
		return strings.Split(buf.String(), "\n")
	}
	str, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return []string{fmt.Sprintf("%+v", in)}
	}
	return strings.Split(string(str), "\n")
}
