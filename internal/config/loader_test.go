package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
template: extended
templateDir: /srv/templates
dir: /work
log:
  timestamps: false
defaults:
  name: widget_box
  displayName: Widget Box
  description: A box of widgets
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "extended", cfg.Template)
		assert.Equal(t, "/srv/templates", cfg.TemplateDir)
		assert.Equal(t, "/work", cfg.Dir)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
		assert.Equal(t, "widget_box", cfg.Defaults.Name)
		assert.Equal(t, "Widget Box", cfg.Defaults.DisplayName)
		assert.Equal(t, "A box of widgets", cfg.Defaults.Description)
		assert.True(t, loader.InFile("template"))
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, DefaultTemplate, cfg.Template)
		assert.Equal(t, DefaultDir, cfg.Dir)
		assert.Empty(t, cfg.TemplateDir)
		assert.Nil(t, cfg.Log.Timestamps)
		assert.False(t, loader.InFile("template"))
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("MODKIT_TEMPLATE", "extended")
		t.Setenv("MODKIT_TEMPLATE_DIR", "/env/templates")
		t.Setenv("MODKIT_DIR", "/env/work")
		t.Setenv("MODKIT_DEFAULTS_DISPLAY_NAME", "Env Name")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "extended", cfg.Template)
		assert.Equal(t, "/env/templates", cfg.TemplateDir)
		assert.Equal(t, "/env/work", cfg.Dir)
		assert.Equal(t, "Env Name", cfg.Defaults.DisplayName)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("MODKIT_DIR", "/env/work")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("dir: /file/work\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/work", cfg.Dir)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("template: [unclosed\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})

	t.Run("uses MODKIT_CONFIG when path empty", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "custom.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("template: extended\n"), 0o644))
		t.Setenv("MODKIT_CONFIG", configFile)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "extended", cfg.Template)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("template: \"\"\ndir: \"\"\n"), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, cfg.Template)
	assert.Equal(t, DefaultDir, cfg.Dir)
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	exists, err := ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))
	exists, err = ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.True(t, exists)
}
