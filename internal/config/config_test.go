package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_url": "https://api.jobmatch.example.com/api",
		"session_file": "/tmp/jobmatch-session.json",
		"timeout_seconds": 15,
		"use_browser": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://api.jobmatch.example.com/api", cfg.APIURL)
	assert.Equal(t, "/tmp/jobmatch-session.json", cfg.SessionFile)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Verbose)
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
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestValidate_ZeroValueIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{APIURL: "https://set.example.com"}
	merged := cfg.MergeWithDefaults(Config{
		APIURL:         "https://default.example.com",
		SessionFile:    "/tmp/session.json",
		TimeoutSeconds: 30,
	})

	assert.Equal(t, "https://set.example.com", merged.APIURL)
	assert.Equal(t, "/tmp/session.json", merged.SessionFile)
	assert.Equal(t, 30, merged.TimeoutSeconds)
}

func TestMergeWithDefaults_EnvSitsBetweenConfigAndDefault(t *testing.T) {
	t.Setenv("JOBMATCH_API_URL", "https://env.example.com")

	merged := (&Config{}).MergeWithDefaults(Config{APIURL: "https://default.example.com"})
	assert.Equal(t, "https://env.example.com", merged.APIURL)

	// An explicit config value still beats the environment.
	merged = (&Config{APIURL: "https://file.example.com"}).MergeWithDefaults(Config{})
	assert.Equal(t, "https://file.example.com", merged.APIURL)
}
