package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_JSONWithComponentAndTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(NewLogger(Config{Level: "debug", Format: FormatJSON}, &buf), "engine")

	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
	logger.Debug().Ctx(ctx).Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "engine", entry[FieldComponent])
	assert.Equal(t, "01TESTTRACE", entry[FieldTraceID])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	logger.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cbamquest.log")

	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	require.NoError(t, result.Close(), "closing twice is a no-op")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	t.Run("no file configured", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Output: OutputFile})
		assert.True(t, result.FallbackUsed)
		assert.False(t, result.UsingFile)
		assert.NotEmpty(t, result.FallbackReason)
	})

	t.Run("unwritable path", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

		result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "sub", "x.log")})
		assert.True(t, result.FallbackUsed)
		assert.False(t, result.UsingFile)
	})

	t.Run("stderr default", func(t *testing.T) {
		result := NewLoggerWithPath(DefaultConfig())
		assert.False(t, result.FallbackUsed)
		assert.False(t, result.UsingFile)
		assert.NoError(t, result.Close())
	})
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "info", Format: FormatJSON}, &buf)
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestTraceIDs(t *testing.T) {
	a := GenerateTraceID()
	b := GenerateTraceID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)

	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))
	assert.Len(t, GetOrGenerateTraceID(ctx), 26)

	ctx = ContextWithTraceID(ctx, a)
	assert.Equal(t, a, GetOrGenerateTraceID(ctx))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "denied")
	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}
