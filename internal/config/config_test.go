package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := manager.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Empty(t, cfg.Headers)
	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `timeoutSeconds: 30
baseUrl: https://api.example.com/v5
logLevel: debug
headers:
  User-Agent: lasso-test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewManager(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "https://api.example.com/v5", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "lasso-test", cfg.Headers["User-Agent"])
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeoutSeconds: [broken"), 0o600))

	_, err := NewManager(path).Load()

	assert.Error(t, err)
}

func TestLoadNormalizesZeroTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeoutSeconds: 0"), 0o600))

	cfg, err := NewManager(path).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := NewManager(path)

	original := &Config{
		TimeoutSeconds: 15,
		Headers:        map[string]string{"Accept": "application/json"},
		BaseURL:        "https://api.example.com",
		LogLevel:       "warn",
	}
	require.NoError(t, manager.Save(original))

	loaded, err := manager.Load()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		input    string
		expected string
	}{
		{
			name:     "no_base_url",
			baseURL:  "",
			input:    "/manga",
			expected: "/manga",
		},
		{
			name:     "relative_path_joined",
			baseURL:  "https://api.example.com/",
			input:    "/manga",
			expected: "https://api.example.com/manga",
		},
		{
			name:     "relative_path_without_slash",
			baseURL:  "https://api.example.com",
			input:    "manga",
			expected: "https://api.example.com/manga",
		},
		{
			name:     "absolute_url_untouched",
			baseURL:  "https://api.example.com",
			input:    "https://other.example.com/ping",
			expected: "https://other.example.com/ping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BaseURL: tt.baseURL}
			assert.Equal(t, tt.expected, cfg.ResolveURL(tt.input))
		})
	}
}
