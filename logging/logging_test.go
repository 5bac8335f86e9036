package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"WARN", bolt.WARN},
		{"warning", bolt.WARN},
		{" error ", bolt.ERROR},
		{"verbose", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json", Output: &buf})

	Wrap(logger.Info()).With(
		Kind("pie"),
		Endpoint("http://localhost:8000/analyze"),
		Attempt(2),
		Status(503),
		Shapes(12),
		Duration(150*time.Millisecond),
		Err(errors.New("boom")),
		Err(nil),
	).Msg("rendered")

	out := buf.String()
	assert.Contains(t, out, `"kind":"pie"`)
	assert.Contains(t, out, `"endpoint":"http://localhost:8000/analyze"`)
	assert.Contains(t, out, `"attempt":2`)
	assert.Contains(t, out, `"status":503`)
	assert.Contains(t, out, `"shapes":12`)
	assert.Contains(t, out, `"duration_ms":150`)
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "rendered")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitReplacesDefault(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().With(File("sales.json")).Msg("decoded")
	assert.Contains(t, buf.String(), `"file":"sales.json"`)
}
