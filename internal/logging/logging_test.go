package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainLineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: slog.LevelDebug, Stdout: &buf})
	require.NoError(t, err)
	defer closer.Close()

	Core(logger).Info("layer pushed", "layer", "world", "index", 0)

	line := buf.String()
	assert.Contains(t, line, " INFO CORE] layer pushed layer=world index=0\n")
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z `, line)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: slog.LevelInfo, Stdout: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Log(t.Context(), LevelTrace, "also hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN] shown")
}

func TestTraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: LevelTrace, Stdout: &buf})
	require.NoError(t, err)

	Client(logger).Log(t.Context(), LevelTrace, "dispatch", "event", "MouseMoveEvent: x - 1, y - 2")

	assert.Contains(t, buf.String(), `TRACE CLIENT] dispatch event="MouseMoveEvent: x - 1, y - 2"`)
}

func TestGroupsPrefixKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: slog.LevelInfo, Stdout: &buf})
	require.NoError(t, err)

	logger.WithGroup("window").Info("resized", "width", 800)
	logger.Info("size", slog.Group("px", "w", 1, "h", 2))

	assert.Contains(t, buf.String(), "resized window.width=800")
	assert.Contains(t, buf.String(), "size px.w=1 px.h=2")
}

func TestFileGetsUncoloredCopy(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "output.log")
	logger, closer, err := New(Options{Level: slog.LevelInfo, File: path, Color: true, Stdout: &buf})
	require.NoError(t, err)

	Core(logger).Error("boom", "err", "bad")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), " ERROR CORE] boom err=bad\n")
	assert.Contains(t, buf.String(), "boom err=bad")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("trace")
	require.NoError(t, err)
	assert.Equal(t, LevelTrace, l)

	l, err = ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
