package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDebug_NoOpBeforeInit(t *testing.T) {
	CloseLogger()
	LogDebug("dropped %d", 1)
	assert.Empty(t, RunID())
	assert.Empty(t, ErrorHint())
}

func TestErrorHint_NamesLogAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, InitLogger(path))
	t.Cleanup(CloseLogger)

	assert.Equal(t, "details in "+path+" (run "+RunID()[:8]+")", ErrorHint())
}

func TestInitLogger_AppendsWithRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, InitLogger(path))
	t.Cleanup(CloseLogger)

	id := RunID()
	require.Len(t, id, 36)

	LogDebug("appended %s -> %d", "a.csv", 95)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started (run "+id+")")
	assert.Contains(t, string(data), "["+id[:8]+"] ")
	assert.Contains(t, string(data), "appended a.csv -> 95")
	assert.Contains(t, string(data), "logger_test.go")
}

func TestInitLogger_NewRunKeepsOldLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, InitLogger(path))
	first := RunID()
	LogDebug("first run")

	require.NoError(t, InitLogger(path))
	t.Cleanup(CloseLogger)
	assert.NotEqual(t, first, RunID())
	LogDebug("second run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}
