// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	chdirTemp(t)

	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultViewWidth, opts.ViewWidth)
	assert.Equal(t, DefaultViewHeight, opts.ViewHeight)
	assert.Equal(t, DefaultPumpInterval, opts.PumpInterval)
	assert.Equal(t, 60, opts.Settings.WindowlessFrameRate)
	assert.Empty(t, opts.Settings.LogSeverity, "resolved from Debug when the runtime is created")
	assert.Equal(t, "warning", opts.withDefaults().Settings.LogSeverity)
}

func TestLoadOptionsDebugReachesEngine(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CEFUI_DEBUG", "true")

	opts, err := LoadOptions("")
	require.NoError(t, err)
	require.True(t, opts.Debug)

	e := newFakeEngine()
	rt, err := NewRuntime(e, MemoryGraphics{}, opts)
	require.NoError(t, err)
	_, _, err = rt.SetUp(nil)
	require.NoError(t, err)
	assert.Equal(t, "verbose", e.settings.LogSeverity)
}

func TestLoadOptionsExplicitSeverityWinsOverDebug(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cefui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\nengine:\n  log_severity: error\n"), 0o600))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "error", opts.withDefaults().Settings.LogSeverity)
}

func TestLoadOptionsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cefui.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_dir: /opt/cef
view_width: 1024
view_height: 1024
pump_interval: 5ms
engine:
  cache_path: /tmp/cef-cache
  windowless_frame_rate: 30
  no_sandbox: true
`), 0o600))
	t.Setenv("CEFUI_VIEW_HEIGHT", "768")

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cef", opts.BaseDir)
	assert.Equal(t, 1024, opts.ViewWidth)
	assert.Equal(t, 768, opts.ViewHeight, "env overrides file")
	assert.Equal(t, 5*time.Millisecond, opts.PumpInterval)
	assert.Equal(t, "/tmp/cef-cache", opts.Settings.CachePath)
	assert.Equal(t, 30, opts.Settings.WindowlessFrameRate)
	assert.True(t, opts.Settings.NoSandbox)
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadOptions(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, int(ExitConfig), ExitCodeOf(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("view_width: -1\n"), 0o600))
	_, err = LoadOptions(bad)
	require.Error(t, err)
	assert.Equal(t, int(ExitConfig), ExitCodeOf(err))
}

func TestOptionsWithDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warning", Options{}.withDefaults().Settings.LogSeverity)

	o := Options{Debug: true}.withDefaults()
	assert.Equal(t, DefaultViewWidth, o.ViewWidth)
	assert.Equal(t, DefaultViewHeight, o.ViewHeight)
	assert.Equal(t, DefaultPumpInterval, o.PumpInterval)
	assert.Equal(t, "verbose", o.Settings.LogSeverity)
	assert.NotNil(t, o.Logger)
}

// chdirTemp changes into a fresh temp directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
