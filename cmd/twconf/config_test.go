package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twconf.yaml")
	configContent := `
descriptor: configs/tailwind.config.yaml
quiet: true

check:
  strict: true
  output-format: json
  print-values: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "configs/tailwind.config.yaml", k.String("descriptor"))
	assert.True(t, k.Bool("quiet"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "json", k.String("check.output-format"))
	assert.False(t, k.Bool("check.print-values"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.twconf.yaml"))

	assert.Equal(t, "tailwind.config.yaml", descriptorPath(nil))

	config := buildReportConfig()
	assert.True(t, config.PrintSourceValue)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twconf.yaml")
	configContent := `
descriptor: from-file.yaml
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("TWCONF_DESCRIPTOR", "from-env.yaml")
	t.Setenv("TWCONF_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.yaml", k.String("descriptor"))
	assert.True(t, k.Bool("check.strict"))
}

func TestDescriptorPath_ArgumentWins(t *testing.T) {
	resetKoanf()

	t.Setenv("TWCONF_DESCRIPTOR", "from-env.yaml")
	require.NoError(t, loadConfigFromPath("/nonexistent/.twconf.yaml"))

	assert.Equal(t, "from-arg.yaml", descriptorPath([]string{"from-arg.yaml"}))
	assert.Equal(t, "from-env.yaml", descriptorPath(nil))
}

func TestBuildReportConfig_FromConfig(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twconf.yaml")
	configContent := `
color: true
check:
  print-linter-name: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildReportConfig()
	assert.True(t, config.UseColors)
	assert.True(t, config.PrintSourceValue)
	assert.False(t, config.PrintLinterName)
}
