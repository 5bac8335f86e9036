package charts

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
)

type Kind string

const (
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindPie     Kind = "pie"
	KindHeatmap Kind = "heatmap"
	KindRadar   Kind = "radar"
	KindScatter Kind = "scatter"
)

func (k Kind) Known() bool {
	_, ok := generators[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// Spec is the declarative description of a chart as sent by the
// analytics service.
type Spec struct {
	Type     Kind      `json:"type"`
	Title    string    `json:"title"`
	Labels   Labels    `json:"labels"`
	Datasets []Dataset `json:"datasets"`

	// Raw is the document the spec was decoded from. It is empty for
	// specs built in code.
	Raw json.RawMessage `json:"-"`
}

func (s *Spec) UnmarshalJSON(b []byte) error {
	type spec Spec
	var tmp spec
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*s = Spec(tmp)
	s.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// Label returns the label at index i or an empty string when labels
// are shorter than the data.
func (s Spec) Label(i int) string {
	if i < 0 || i >= len(s.Labels) {
		return ""
	}
	return s.Labels[i]
}

func (s Spec) first() (Dataset, bool) {
	if len(s.Datasets) == 0 {
		return Dataset{}, false
	}
	return s.Datasets[0], true
}

type Dataset struct {
	Label           string  `json:"label"`
	Data            []Value `json:"data"`
	BackgroundColor Colors  `json:"backgroundColor"`
	BorderColor     string  `json:"borderColor,omitempty"`
}

func (d Dataset) Value(i int) Value {
	if i < 0 || i >= len(d.Data) {
		return Missing()
	}
	return d.Data[i]
}

// Labels accepts numbers and booleans next to strings so that a label
// list produced with the wrong types still decodes.
type Labels []string

func (s *Labels) UnmarshalJSON(b []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		*s = nil
		return nil
	}
	labels := make([]string, 0, len(list))
	for _, raw := range list {
		labels = append(labels, rawString(raw))
	}
	*s = labels
	return nil
}

// Colors holds either one color for every index or one color per
// index.
type Colors struct {
	All  string
	List []string
}

func SingleColor(c string) Colors {
	return Colors{All: c}
}

func ColorList(cs ...string) Colors {
	return Colors{List: cs}
}

func (c Colors) At(i int) (string, bool) {
	if c.All != "" {
		return c.All, true
	}
	if i < 0 || i >= len(c.List) || c.List[i] == "" {
		return "", false
	}
	return c.List[i], true
}

func (c Colors) Or(i int, fallback string) string {
	if v, ok := c.At(i); ok {
		return v
	}
	return fallback
}

func (c *Colors) UnmarshalJSON(b []byte) error {
	*c = Colors{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		return json.Unmarshal(b, &c.All)
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(b, &list); err != nil {
			return nil
		}
		for _, raw := range list {
			var str string
			if json.Unmarshal(raw, &str) != nil {
				str = ""
			}
			c.List = append(c.List, str)
		}
	default:
	}
	return nil
}

func (c Colors) MarshalJSON() ([]byte, error) {
	if c.All != "" {
		return json.Marshal(c.All)
	}
	if len(c.List) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(c.List)
}

// Reply is the chart flavour of an analytics answer: the chart itself
// and the free text analysis that goes with it.
type Reply struct {
	Chart    Spec   `json:"chart"`
	Analysis string `json:"analysis,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (r *Reply) UnmarshalJSON(b []byte) error {
	var raw struct {
		Chart    Spec            `json:"chart"`
		Analysis json.RawMessage `json:"analysis"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Chart = raw.Chart
	r.Analysis = analysisText(raw.Analysis)
	r.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// Decode reads either a bare chart or a reply wrapping the chart with
// its analysis.
func Decode(r io.Reader) (Reply, error) {
	var raw map[string]json.RawMessage
	buf, err := io.ReadAll(r)
	if err != nil {
		return Reply{}, err
	}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return Reply{}, err
	}
	var reply Reply
	if _, ok := raw["chart"]; ok {
		err = json.Unmarshal(buf, &reply)
	} else {
		err = json.Unmarshal(buf, &reply.Chart)
		reply.Raw = reply.Chart.Raw
	}
	return reply, err
}

func analysisText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var str string
	if json.Unmarshal(raw, &str) == nil {
		return str
	}
	var summary struct {
		Summary string `json:"summary"`
	}
	if json.Unmarshal(raw, &summary) == nil && summary.Summary != "" {
		return summary.Summary
	}
	var buf bytes.Buffer
	if json.Compact(&buf, raw) != nil {
		return string(raw)
	}
	return buf.String()
}

func rawString(raw json.RawMessage) string {
	var str string
	if json.Unmarshal(raw, &str) == nil {
		return str
	}
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}
