package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		err  bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"off", LogLevelNone, false},
		{"loud", LogLevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDefaultLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomLogger(&buf, LogLevelWarn)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("[ToolNode] retrying %s", "add_two_numbers")
	logger.Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[langraph] ")
	assert.Contains(t, out, "[WARN] [ToolNode] retrying add_two_numbers")
	assert.Contains(t, out, "[ERROR] failed")
}

func TestGologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewGologWriterLogger(&buf, LogLevelInfo)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())

	logger.Debug("not shown")
	logger.Info("stored %s", "fact")
	assert.Contains(t, buf.String(), "stored fact")
	assert.NotContains(t, buf.String(), "not shown")

	wrapped := NewGologLogger(golog.New())
	wrapped.SetLevel(LogLevelNone)
	assert.Equal(t, LogLevelNone, wrapped.GetLevel())
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologWriterLogger(&buf, LogLevelInfo)

	logger.Debug("not shown")
	logger.Warn("tool %s failed", "weather")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "tool weather failed", entry["message"])
}

func TestNew(t *testing.T) {
	for _, backend := range []string{"", "std", "golog", "zerolog"} {
		l, err := New(backend, LogLevelDebug, &bytes.Buffer{})
		require.NoError(t, err, backend)
		assert.NotNil(t, l)
	}
	_, err := New("syslog", LogLevelDebug, nil)
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	prev := GetDefaultLogger()
	defer SetDefaultLogger(prev)

	var buf bytes.Buffer
	SetDefaultLogger(NewCustomLogger(&buf, LogLevelDebug))
	Info("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")

	assert.Same(t, GetDefaultLogger(), OrDefault(nil))
	other := NoOpLogger{}
	assert.Equal(t, Logger(other), OrDefault(other))

	SetDefaultLogger(nil)
	assert.IsType(t, NoOpLogger{}, GetDefaultLogger())
}
