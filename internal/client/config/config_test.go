package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")

	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "techkatta.db", c.DatabasePath)
}

func TestLoadDefaults_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://api.techkatta.dev")

	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.techkatta.dev", c.APIBaseURL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	withArgs(t, []string{"cli"})

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	withArgs(t, []string{"cli", "-a", "http://api.local:9000", "-t", "5", "-i", "7", "-d", "/tmp/s.db"})

	cfg := LoadConfig()

	assert.Equal(t, "http://api.local:9000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, "/tmp/s.db", cfg.DatabasePath)
}

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = orig })
}
