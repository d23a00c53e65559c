package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears every SCORELOG_ variable.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, k := range []string{"SCORELOG_CONFIG", "SCORELOG_DATA_DIR", "SCORELOG_OUTPUT_DIR", "SCORELOG_LOG_FILE", "SCORELOG_NO_OPEN"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, filepath.Join(home, "Desktop"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(home, ".scorelog", "debug.log"), cfg.LogFile)
	assert.True(t, cfg.OpenViewer)
	assert.Equal(t, Plot{WidthIn: 12, HeightIn: 6, DPI: 300, Samples: 300}, cfg.Plot)
}

func TestLoad_FileThenEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".scorelog", "config.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ~/scores\nplot:\n  dpi: 100\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scores"), cfg.DataDir)
	assert.Equal(t, 100, cfg.Plot.DPI)
	assert.Equal(t, 12.0, cfg.Plot.WidthIn, "unset keys keep defaults")

	t.Setenv("SCORELOG_DATA_DIR", "/tmp/elsewhere")
	t.Setenv("SCORELOG_NO_OPEN", "true")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
	assert.False(t, cfg.OpenViewer)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("SCORELOG_OUTPUT_DIR=/tmp/charts\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SCORELOG_OUTPUT_DIR") })
	os.Unsetenv("SCORELOG_OUTPUT_DIR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/charts", cfg.OutputDir)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("open_viewer: false\n"), 0644))
	t.Setenv("SCORELOG_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.OpenViewer)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yml")
	t.Setenv("SCORELOG_CONFIG", path)

	require.NoError(t, os.WriteFile(path, []byte("plot: [not a map\n"), 0644))
	_, err := Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("plot:\n  dpi: 0\n"), 0644))
	_, err = Load()
	assert.ErrorContains(t, err, "dpi")

	require.NoError(t, os.WriteFile(path, []byte("plot:\n  width_in: -1\n"), 0644))
	_, err = Load()
	assert.ErrorContains(t, err, "size")

	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))
	t.Setenv("SCORELOG_NO_OPEN", "maybe")
	_, err = Load()
	assert.ErrorContains(t, err, "SCORELOG_NO_OPEN")
}

func TestSaveAndLoadFile(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.DataDir = "/data"
	cfg.Plot.Samples = 50
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	require.NoError(t, cfg.Save(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func TestInit_WritesDefaultsOnce(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".scorelog", "config.yml")

	cfg, created, err := Init(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, Default(), *cfg)
	assert.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("data_dir: /records\n"), 0644))
	cfg, created, err = Init(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "/records", cfg.DataDir)
}

func TestInit_InvalidExistingFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("plot:\n  dpi: 0\n"), 0644))

	_, created, err := Init(path)
	assert.False(t, created)
	assert.ErrorContains(t, err, "dpi")
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "a", "b"), ExpandHome("~/a/b"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, "rel/~", ExpandHome("rel/~"))
}
