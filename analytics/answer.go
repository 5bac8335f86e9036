package analytics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/midbel/chatcharts"
)

// FallbackMessage is shown when a failure carries no usable text.
const FallbackMessage = "Désolé, une erreur est survenue. Veuillez réessayer."

// Answer is the reply to a prompt. Chart is set when the service
// answered with a chart, Text otherwise.
type Answer struct {
	SessionID string
	Text      string
	Chart     *charts.Reply
}

func (a Answer) IsChart() bool {
	return a.Chart != nil
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	var raw struct {
		Response  json.RawMessage `json:"response"`
		SessionID string          `json:"session_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	a.SessionID = raw.SessionID
	a.Text = ""
	a.Chart = nil

	resp := bytes.TrimSpace(raw.Response)
	if len(resp) == 0 || bytes.Equal(resp, []byte("null")) {
		return nil
	}
	if resp[0] == '"' {
		return json.Unmarshal(resp, &a.Text)
	}
	if resp[0] == '{' {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(resp, &probe); err != nil {
			return err
		}
		if _, ok := probe["chart"]; ok {
			var r charts.Reply
			if err := json.Unmarshal(resp, &r); err != nil {
				return err
			}
			a.Chart = &r
			return nil
		}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp, "", "  "); err != nil {
		return err
	}
	a.Text = buf.String()
	return nil
}

// StatusError is a non 2xx reply of the service.
type StatusError struct {
	Code   int
	Detail string
	kind   error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.kind, e.Code, e.Detail)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

func statusError(code int, body []byte) error {
	err := StatusError{
		Code:   code,
		Detail: detailText(body),
		kind:   ErrRejected,
	}
	if err.Detail == "" {
		err.Detail = http.StatusText(code)
	}
	if code >= 500 || code == http.StatusTooManyRequests {
		err.kind = ErrUnavailable
	}
	return &err
}

// detailText extracts the detail member of an error body. Validation
// errors give a list of objects carrying a msg.
func detailText(body []byte) string {
	var raw struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &raw); err != nil || len(raw.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}
	var str string
	if json.Unmarshal(raw.Detail, &str) == nil {
		return str
	}
	var list []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(raw.Detail, &list) == nil {
		var msgs []string
		for _, i := range list {
			if i.Msg != "" {
				msgs = append(msgs, i.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	var buf bytes.Buffer
	if json.Compact(&buf, raw.Detail) != nil {
		return ""
	}
	return buf.String()
}

// Message turns a failure into the text of a chat message. The detail
// given by the service is preferred over the error chain.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	if str := err.Error(); str != "" {
		return str
	}
	return FallbackMessage
}
