package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	cfgFile = ""

	cmd := &cobra.Command{Use: "sheetflow"}
	InitFlags(cmd)
	return cmd
}

func TestLoadConfigs_EnvKey(t *testing.T) {
	cmd := newTestCmd(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-test-123")

	cfg, err := LoadConfigs(cmd, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", cfg.AI.ApiKey)
	assert.Equal(t, DefaultConfig.AI.BaseURL, cfg.AI.BaseURL)
	assert.Equal(t, DefaultConfig.AI.Model, cfg.AI.Model)
	assert.Equal(t, DefaultConfig.AI.TimeoutSeconds, cfg.AI.TimeoutSeconds)
	assert.Equal(t, DefaultConfig.Theme, cfg.Theme)
}

func TestLoadConfigs_MissingKey(t *testing.T) {
	cmd := newTestCmd(t)

	_, err := LoadConfigs(cmd, t.TempDir())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfigs_PlaceholderKeyTreatedAsMissing(t *testing.T) {
	cmd := newTestCmd(t)
	t.Setenv("DEEPSEEK_API_KEY", "your_api_key_here")

	_, err := LoadConfigs(cmd, t.TempDir())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfigs_EnvOverrides(t *testing.T) {
	cmd := newTestCmd(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-test-123")
	t.Setenv("DEEPSEEK_API_URL", "http://localhost:9999/v1/chat/completions")
	t.Setenv("MODEL", "deepseek-coder")
	t.Setenv("TIMEOUT", "90")

	cfg, err := LoadConfigs(cmd, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v1/chat/completions", cfg.AI.BaseURL)
	assert.Equal(t, "deepseek-coder", cfg.AI.Model)
	assert.Equal(t, 90, cfg.AI.TimeoutSeconds)
}

func TestLoadConfigs_YamlFile(t *testing.T) {
	cmd := newTestCmd(t)
	dir := t.TempDir()

	content := `theme: monokai
ai_client_config:
  api_key: sk-from-file
  model: deepseek-coder
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheetflow-config.yaml"), []byte(content), 0644))

	cfg, err := LoadConfigs(cmd, dir)
	require.NoError(t, err)
	assert.Equal(t, "monokai", cfg.Theme)
	assert.Equal(t, "sk-from-file", cfg.AI.ApiKey)
	assert.Equal(t, "deepseek-coder", cfg.AI.Model)
}

func TestLoadConfigs_ExplicitConfigFileMustExist(t *testing.T) {
	cmd := newTestCmd(t)
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := LoadConfigs(cmd, t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigs_NonPositiveTimeoutFallsBack(t *testing.T) {
	cmd := newTestCmd(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-test-123")
	t.Setenv("TIMEOUT", "0")

	cfg, err := LoadConfigs(cmd, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig.AI.TimeoutSeconds, cfg.AI.TimeoutSeconds)
}
