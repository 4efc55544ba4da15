package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"default_cv": "cv.yaml",
		"excluded_sections": ["projects", "awards"],
		"port": 9090,
		"theme": "terminal",
		"dev": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cv.yaml", cfg.DefaultCV)
	assert.Equal(t, []string{"projects", "awards"}, cfg.ExcludedSections)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "terminal", cfg.Theme)
	assert.True(t, cfg.Dev)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CV_ENGINE_DEFAULT_CV", "env-cv.yaml")
	t.Setenv("CV_ENGINE_EXCLUDED_SECTIONS", "projects, awards ,")
	t.Setenv("CV_ENGINE_PORT", "8888")
	t.Setenv("CV_ENGINE_DEV", "true")
	t.Setenv("CV_ENGINE_THEME", "minimal")

	cfg := FromEnv()
	assert.Equal(t, "env-cv.yaml", cfg.DefaultCV)
	assert.Equal(t, []string{"projects", "awards"}, cfg.ExcludedSections)
	assert.Equal(t, 8888, cfg.Port)
	assert.True(t, cfg.Dev)
	assert.Equal(t, "minimal", cfg.Theme)
}

func TestFromEnv_Unset(t *testing.T) {
	t.Setenv("CV_ENGINE_DEFAULT_CV", "")
	t.Setenv("CV_ENGINE_EXCLUDED_SECTIONS", "")
	t.Setenv("CV_ENGINE_PORT", "")

	cfg := FromEnv()
	assert.Equal(t, "", cfg.DefaultCV)
	assert.Nil(t, cfg.ExcludedSections)
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate(t *testing.T) {
	t.Run("Zero config is valid", func(t *testing.T) {
		cfg := Config{}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Port out of range", func(t *testing.T) {
		cfg := Config{Port: 70000}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config error")
	})

	t.Run("Default CV must exist", func(t *testing.T) {
		cfg := Config{DefaultCV: filepath.Join(t.TempDir(), "missing.yaml")}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default CV file not found")
	})

	t.Run("Existing default CV passes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cv.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cv:\n"), 0644))

		cfg := Config{DefaultCV: path, Port: 8080}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		DefaultCV:        "default.yaml",
		ExcludedSections: []string{"awards"},
		Port:             8080,
		Theme:            "classic",
	}

	t.Run("Empty fields take defaults", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(defaults)
		assert.Equal(t, "default.yaml", merged.DefaultCV)
		assert.Equal(t, []string{"awards"}, merged.ExcludedSections)
		assert.Equal(t, 8080, merged.Port)
		assert.Equal(t, "classic", merged.Theme)
	})

	t.Run("Set fields win", func(t *testing.T) {
		cfg := Config{
			DefaultCV:        "mine.yaml",
			ExcludedSections: []string{"projects"},
			Port:             9000,
		}
		merged := cfg.MergeWithDefaults(defaults)
		assert.Equal(t, "mine.yaml", merged.DefaultCV)
		assert.Equal(t, []string{"projects"}, merged.ExcludedSections)
		assert.Equal(t, 9000, merged.Port)
		assert.Equal(t, "classic", merged.Theme, "unset fields still merge")
	})
}
