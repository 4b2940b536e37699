package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, time.Second, cfg.SamplingInterval())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
sampling:
  interval_seconds: 5
probe:
  enabled: false
  url: "http://example.com/ping"
logging:
  level: debug
`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.SamplingInterval())
		assert.False(t, cfg.Probe.Enabled)
		assert.Equal(t, "http://example.com/ping", cfg.Probe.URL)
		assert.Equal(t, "debug", cfg.Logging.Level)

		// omitted field keeps its default
		assert.Equal(t, 30*time.Second, cfg.ProbeInterval())
	})

	t.Run("non-positive intervals are clamped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
sampling:
  interval_seconds: 0
probe:
  interval_seconds: -1
`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, time.Second, cfg.SamplingInterval())
		assert.Equal(t, 30*time.Second, cfg.ProbeInterval())
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sampling: [not a map"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
