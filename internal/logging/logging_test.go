package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chuckle.log")

	logger, closer, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug().Str("component", "test").Msg("hello")
	logger.Info().Msg("world")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "debug", gjson.Get(lines[0], "level").String())
	assert.Equal(t, "test", gjson.Get(lines[0], "component").String())
	assert.Equal(t, "hello", gjson.Get(lines[0], "message").String())
	assert.True(t, gjson.Get(lines[1], "time").Exists())
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chuckle.log")

	logger, closer, err := New(Options{Path: path, Level: "warn"})
	require.NoError(t, err)
	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestNew_StderrAndErrors(t *testing.T) {
	_, closer, err := New(Options{Path: Stderr})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	_, _, err = New(Options{Path: ""})
	assert.Error(t, err)

	_, _, err = New(Options{Path: Stderr, Level: "loud"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
