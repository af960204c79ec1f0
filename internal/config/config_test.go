package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, cfg *ServerCmdConfig, configContent string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	AddCommonFlags(cmd.Flags(), cfg)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, cmd.Flags().Set("config", configPath))

	return cmd
}

func TestConfigLoader_Defaults(t *testing.T) {
	loader := NewConfigLoader()
	var cfg ServerCmdConfig

	cmd := newTestCommand(t, &cfg, "")

	require.NoError(t, loader.InitializeConfig(cmd))
	require.NoError(t, loader.Load(&cfg))
	require.NoError(t, loader.Validate(&cfg))

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.GracefulShutdown)
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.DB.BusyTimeout)
	assert.Equal(t, 5, cfg.DB.Pool.MaxOpenConnections)
	assert.Equal(t, 5, cfg.DB.Pool.MaxIdleConnections)
	assert.Equal(t, 10*time.Minute, cfg.DB.Pool.MaxLifetime)
}

func TestConfigLoader_FromFile(t *testing.T) {
	loader := NewConfigLoader()
	var cfg ServerCmdConfig

	cmd := newTestCommand(t, &cfg, `
[server]
port = 9999
graceful-shutdown = "5s"

[log]
level = "debug"

[db]
path = "/tmp/custom.db"
busy-timeout = "10s"
`)

	require.NoError(t, loader.InitializeConfig(cmd))
	require.NoError(t, loader.Load(&cfg))
	require.NoError(t, loader.Validate(&cfg))

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.GracefulShutdown)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/custom.db", cfg.DB.Path)
	assert.Equal(t, 10*time.Second, cfg.DB.BusyTimeout)

	// untouched sections keep flag defaults
	assert.Equal(t, time.Minute, cfg.Server.ReadTimeout)
	assert.Equal(t, 5, cfg.DB.Pool.MaxOpenConnections)
}

func TestConfigLoader_ValidateRejectsBadPort(t *testing.T) {
	loader := NewConfigLoader()
	var cfg ServerCmdConfig
	cfg.Server.Port = 0

	assert.Error(t, loader.Validate(&cfg))
}
