package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/shortcode-cli/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range append(config.EnvVars, "SHORTCODE_OUTPUT_FORMAT", "LOG_LEVEL") {
		t.Setenv(v, "")
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{
		Precise:         lo.ToPtr(true),
		SelfClosingTags: []string{"img", "br"},
		OutputFormat:    "json",
	}
	require.NoError(t, cfg.Save(configPath))

	var buf bytes.Buffer
	require.NoError(t, runShow(configPath, &buf, true))

	output := buf.String()
	assert.Contains(t, output, "Precise:")
	assert.Contains(t, output, "true  (source: config)")
	assert.Contains(t, output, "img,br  (source: config)")
	assert.Contains(t, output, "json  (source: config)")
	assert.Contains(t, output, "Config file: "+configPath)
	assert.NotContains(t, output, "file not found")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{OutputFormat: "json"}).Save(configPath))
	t.Setenv(config.EnvOutput, "yaml")

	var buf bytes.Buffer
	require.NoError(t, runShow(configPath, &buf, true))
	assert.Contains(t, buf.String(), "yaml  (source: SHORTCODE_OUTPUT)")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)

	var buf bytes.Buffer
	require.NoError(t, runShow(filepath.Join(t.TempDir(), "missing.yml"), &buf, true))
	assert.Contains(t, buf.String(), "(file not found)")
}
