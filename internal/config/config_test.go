package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Spec:   "asyncapi.yaml",
				Output: OutputConfig{Format: "text"},
				Log:    LogConfig{Level: "info"},
			},
			wantErr: false,
		},
		{
			name: "missing spec",
			config: Config{
				Output: OutputConfig{Format: "text"},
			},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name: "valid json format",
			config: Config{
				Spec:   "asyncapi.yaml",
				Output: OutputConfig{Format: "json"},
			},
			wantErr: false,
		},
		{
			name: "valid yaml format",
			config: Config{
				Spec:   "asyncapi.yaml",
				Output: OutputConfig{Format: "yaml"},
			},
			wantErr: false,
		},
		{
			name: "invalid format",
			config: Config{
				Spec:   "asyncapi.yaml",
				Output: OutputConfig{Format: "xml"},
			},
			wantErr:     true,
			errContains: "invalid output format",
		},
		{
			name: "invalid log level",
			config: Config{
				Spec:   "asyncapi.yaml",
				Output: OutputConfig{Format: "text"},
				Log:    LogConfig{Level: "verbose"},
			},
			wantErr:     true,
			errContains: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					require.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := LogConfig{Level: tt.level}.SlogLevel()
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")

	cmd = &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().Set("spec", "asyncapi.yaml")

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "asyncapi.yaml", cfg.Spec)
	require.Equal(t, "text", cfg.Output.Format)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Output.Extensions)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: streetlights.yaml
output:
  format: yaml
  extensions: true
log:
  level: debug
`
	configPath := filepath.Join(tmpDir, "asyncmodel.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Change to temp dir so asyncmodel.yaml is found
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "streetlights.yaml", cfg.Spec)
	require.Equal(t, "yaml", cfg.Output.Format)
	require.True(t, cfg.Output.Extensions)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: streetlights.yaml
output:
  format: yaml
  extensions: true
`
	configPath := filepath.Join(tmpDir, "asyncmodel.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	// Set flags that should override file config
	cmd.PersistentFlags().Set("format", "json")
	cmd.PersistentFlags().Set("extensions", "false")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	// Flags should override
	require.Equal(t, "json", cfg.Output.Format)
	require.False(t, cfg.Output.Extensions)
	require.Equal(t, "streetlights.yaml", cfg.Spec)
}

func TestLoadWithExplicitConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: custom.yaml
output:
  format: json
`
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().Set("config", configPath)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "custom.yaml", cfg.Spec)
	require.Equal(t, "json", cfg.Output.Format)
}

func TestLoadInvalidFormat(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().Set("spec", "asyncapi.yaml")
	cmd.PersistentFlags().Set("format", "toml")

	_, err := Load(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid output format")
}

func TestBuildFlagsMap(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	cmd.PersistentFlags().Set("spec", "test.yaml")
	cmd.PersistentFlags().Set("format", "yaml")
	cmd.PersistentFlags().Set("extensions", "true")
	cmd.PersistentFlags().Set("log-level", "debug")

	m := buildFlagsMap(cmd)

	require.Equal(t, "test.yaml", m["spec"])
	require.Equal(t, "yaml", m["output.format"])
	require.Equal(t, true, m["output.extensions"])
	require.Equal(t, "debug", m["log.level"])
}

func TestBuildFlagsMapUnchanged(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	m := buildFlagsMap(cmd)
	require.Empty(t, m)
}
