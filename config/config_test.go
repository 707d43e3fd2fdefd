package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[main]
server-name = "alpha.example"
metrics = true

[federation]
listen = "127.0.0.1:9999"
request-timeout = "2s"
`), 0o600))

	vip := viper.New()
	require.NoError(t, LoadConfig(path, vip))

	cfg := DefaultConfig()
	require.NoError(t, vip.Unmarshal(&cfg))

	require.Equal(t, "alpha.example", cfg.ServerName)
	require.True(t, cfg.CollectMetrics)
	require.Equal(t, "127.0.0.1:9999", cfg.FEDERATION.Listen)
	require.Equal(t, 2*time.Second, cfg.FEDERATION.RequestTimeout)
	// untouched sections keep their defaults
	require.Equal(t, "./meridian.sql", cfg.DATABASE.Path)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	require.Error(t, LoadConfig("/nonexistent/config.toml", viper.New()))
}

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	require.NoError(t, LoadConfig("", viper.New()))
}
