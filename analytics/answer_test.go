package analytics

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
		chart bool
	}{
		{
			name:  "text",
			input: `{"response": "no chart for that", "session_id": "s"}`,
			text:  "no chart for that",
		},
		{
			name:  "chart",
			input: `{"response": {"chart": {"type": "pie", "labels": ["a"], "datasets": []}, "analysis": "ok"}, "session_id": "s"}`,
			chart: true,
		},
		{
			name:  "null",
			input: `{"response": null, "session_id": "s"}`,
		},
		{
			name:  "other object",
			input: `{"response": {"rows": 2}, "session_id": "s"}`,
			text:  "{\n  \"rows\": 2\n}",
		},
		{
			name:  "number",
			input: `{"response": 42, "session_id": "s"}`,
			text:  "42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ans Answer
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ans))
			assert.Equal(t, "s", ans.SessionID)
			assert.Equal(t, tt.text, ans.Text)
			assert.Equal(t, tt.chart, ans.IsChart())
		})
	}
}

func TestDetailText(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"detail": "prompt too long"}`, "prompt too long"},
		{`{"detail": [{"msg": "a"}, {"msg": "b"}]}`, "a; b"},
		{`{"detail": {"code": 12}}`, `{"code":12}`},
		{`upstream timeout`, "upstream timeout"},
		{``, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detailText([]byte(tt.body)), tt.body)
	}
}

func TestStatusError(t *testing.T) {
	err := statusError(404, nil)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Not Found", Message(err))

	err = statusError(503, []byte(`{"detail": "busy"}`))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "busy", Message(err))

	assert.ErrorIs(t, statusError(429, nil), ErrUnavailable)
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, FallbackMessage, Message(errors.New("")))
}
