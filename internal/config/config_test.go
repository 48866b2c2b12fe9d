package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsacheck/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: machine.yaml
format: json
serve:
  port: 9090
`), 0o644))

	t.Setenv("FSACHECK_OUTPUT", "out.txt")
	t.Setenv("FSACHECK_MCP_TRANSPORT", "sse")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "machine.yaml", cfg.Input)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, 9090, cfg.Serve.Port)
	assert.Equal(t, "sse", cfg.MCP.Transport)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o644))
	_, err = config.Load(viper.New(), path)
	assert.ErrorContains(t, err, "invalid format")
}
