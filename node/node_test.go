package node

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/config"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[main]
server-name = "alpha.example"

[database]
path = "/tmp/devices.sql"

[federation]
request-timeout = "3s"
`), 0o600))

	conf := config.DefaultConfig()
	require.NoError(t, loadConfig(&conf, path))
	require.Equal(t, "alpha.example", conf.ServerName)
	require.Equal(t, "/tmp/devices.sql", conf.DATABASE.Path)
	require.Equal(t, 3*time.Second, conf.FEDERATION.RequestTimeout)
	require.Equal(t, "0.0.0.0:8448", conf.FEDERATION.Listen)
}

func TestNewApp(t *testing.T) {
	conf := config.DefaultConfig()
	app, err := New(&conf)
	require.NoError(t, err)
	require.NotNil(t, app.log)

	// unknown level falls back instead of failing startup
	logger := app.moduleLogger(DevicesLogger, "chatty")
	require.NotNil(t, logger)
}

func TestGetCommandFlags(t *testing.T) {
	c := GetCommand()
	require.NoError(t, c.PersistentFlags().Parse([]string{
		"--server-name=beta.example",
		"--listen=127.0.0.1:9448",
	}))
	name, err := c.PersistentFlags().GetString("server-name")
	require.NoError(t, err)
	require.Equal(t, "beta.example", name)
}
