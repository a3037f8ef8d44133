package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastitch/vastitch/pkg/fetch"
	"github.com/vastitch/vastitch/pkg/resolve"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, "max_depth: 8\nfetch_timeout: 500ms\nbase_dir: /srv/tags\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.MaxDepth)
		assert.Equal(t, Duration(500*time.Millisecond), cfg.FetchTimeout)
		assert.Equal(t, "/srv/tags", cfg.BaseDir)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "base_dir: fixtures\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, resolve.DefaultMaxDepth, cfg.MaxDepth)
		assert.Equal(t, Duration(fetch.DefaultTimeout), cfg.FetchTimeout)
		assert.Equal(t, "fixtures", cfg.BaseDir)
	})

	t.Run("missing default path", func(t *testing.T) {
		oldwd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(oldwd) })

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeConfig(t, "fetch_timeout: soon\n")

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "invalid duration")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "max_depth: [\n")

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigOptions(t *testing.T) {
	cfg := Config{MaxDepth: 3, FetchTimeout: Duration(time.Second), BaseDir: "x"}

	o := defaultOptions()
	for _, opt := range cfg.Options() {
		opt(o)
	}
	assert.Equal(t, 3, o.maxDepth)
	assert.Equal(t, time.Second, o.fetchTimeout)
	assert.Equal(t, "x", o.baseDir)
}
