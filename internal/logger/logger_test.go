package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONAdapter(t *testing.T) (*ZLogXAdapter, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	adapter, err := NewAdapter(&Config{Level: "debug", JSONFormat: true, Output: &buf})
	require.NoError(t, err)
	return adapter, &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud"})
	assert.Error(t, err)
}

func TestAdapter_FieldsAndErrors(t *testing.T) {
	adapter, buf := newJSONAdapter(t)

	adapter.WithError(errors.New("boom")).WithFields(map[string]any{"session": "s1"}).Warn("save failed")

	entry := lastEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "save failed", entry["message"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "s1", entry["session"])
}

func TestAdapter_APIStatusLevels(t *testing.T) {
	adapter, buf := newJSONAdapter(t)

	cases := map[int]string{
		200: "info",
		303: "info",
		422: "warn",
		500: "error",
	}

	for status, level := range cases {
		adapter.API("GET", "/start-project", "127.0.0.1", status, 3*time.Millisecond)

		entry := lastEntry(t, buf)
		assert.Equal(t, level, entry["level"], "status %d", status)
		assert.Equal(t, float64(status), entry["status_code"])
		assert.Equal(t, "/start-project", entry["path"])
	}
}

func TestAdapter_WithContextAddsRequestID(t *testing.T) {
	adapter, buf := newJSONAdapter(t)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	adapter.WithContext(ctx).Info("hello")
	assert.Equal(t, "req-42", lastEntry(t, buf)["request_id"])

	assert.Same(t, adapter, adapter.WithContext(context.Background()))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().WithField("k", "v").Info("dropped")
	})
}

func TestSuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	adapter, err := NewAdapter(&Config{Level: "debug", JSONFormat: true, UseEmoji: true, Output: &buf})
	require.NoError(t, err)

	adapter.Success("alert sent")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "✅ alert sent", entry["message"])

	adapter.Failure("alert lost")
	entry = lastEntry(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "❌ alert lost", entry["message"])
}

func TestConsoleLayout(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	adapter, err := NewAdapter(&Config{
		Level:          "debug",
		DateTimeLayout: time.RFC3339,
		Colored:        true,
		UseEmoji:       true,
		Output:         &buf,
	})
	require.NoError(t, err)

	adapter.WithFields(map[string]any{"session": "s1", "note": "two words"}).Warn("progress saved")

	line := buf.String()
	assert.Contains(t, line, "◎ WARN")
	assert.Contains(t, line, "│ progress saved")
	assert.Contains(t, line, "session=s1")
	assert.Contains(t, line, `note="two words"`)
	assert.Contains(t, line, "├")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "ab", fit("abcdef", 2))
	assert.Equal(t, "éé", fit("ééé", 2))
}

func TestDurationMarkAndStatusClass(t *testing.T) {
	assert.Equal(t, "⚡", durationMark(time.Microsecond))
	assert.Equal(t, "🐌", durationMark(2*time.Second))

	level, _ := statusClass(404)
	assert.Equal(t, zerolog.WarnLevel, level)
	level, _ = statusClass(503)
	assert.Equal(t, zerolog.ErrorLevel, level)
}
