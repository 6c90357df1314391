package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
	t.Setenv("HOME", t.TempDir())
}

func TestLoadSettings_Defaults(t *testing.T) {
	isolateConfig(t)

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "auto", s.Color)
	assert.True(t, s.Banner)
	assert.Empty(t, s.Menu)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettings_FromFile(t *testing.T) {
	isolateConfig(t)

	cfg := "color: never\nbanner: false\nmenu: demo.yaml\nlog-level: debug\n"
	require.NoError(t, os.WriteFile(".okaara.yaml", []byte(cfg), 0o644))

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "never", s.Color)
	assert.False(t, s.Banner)
	assert.Equal(t, "demo.yaml", s.Menu)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	isolateConfig(t)

	require.NoError(t, os.WriteFile(".okaara.yaml", []byte("color: never\n"), 0o644))
	t.Setenv("OKAARA_COLOR", "always")
	t.Setenv("OKAARA_LOG_LEVEL", "error")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "always", s.Color)
	assert.Equal(t, "error", s.LogLevel)
}

func TestLoadSettings_InvalidColor(t *testing.T) {
	isolateConfig(t)
	t.Setenv("OKAARA_COLOR", "sometimes")

	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color setting")
}

func TestLoadSettings_MalformedFile(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, os.WriteFile(".okaara.yaml", []byte("color: [unclosed\n"), 0o644))

	_, err := LoadSettings()
	require.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte("h\nn\nAda\nq\n"), 0o644))

	script, err := loadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 4, script.Remaining())
}

func TestCreateLogger_BadLevel(t *testing.T) {
	_, err := createLogger(false, "chatty")
	require.Error(t, err)

	logger, err := createLogger(false, "info")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = createLogger(true, "ignored-when-debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
