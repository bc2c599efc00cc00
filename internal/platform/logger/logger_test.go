package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestLevel_String_RoundTrips(t *testing.T) {
	for _, l := range []Level{Debug, Info, Warn, Error} {
		assert.Equal(t, l, ParseLevel(l.String()))
	}
	assert.Equal(t, "warn", Warn.String())
}

func TestNew_JSON_IncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "pet-care", Out: &buf})

	l.With(map[string]any{"module": "tasks"}).Info("task created", map[string]any{
		"task_id": "t-1",
		"":        "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "task created", entry["message"])
	assert.Equal(t, "pet-care", entry["app"])
	assert.Equal(t, "tasks", entry["module"])
	assert.Equal(t, "t-1", entry["task_id"])
	assert.NotContains(t, entry, "")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Out: &buf})

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	l.Warn("shown", nil)
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"a": 1}).Error("x", map[string]any{"b": 2})
}
