package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "tia", configBaseName)
	assert.Equal(t, "tia.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "graph.path", graphPathKey)
	assert.Equal(t, "report.directory", reportDirectoryKey)
	assert.Equal(t, "report.default_file", reportDefaultFileKey)
	assert.Equal(t, "impact.parallel", impactParallelKey)
	assert.Equal(t, "target/tia", defaultReportsDir)
	assert.Equal(t, "surefire-tests", defaultReportFile)
	assert.Equal(t, true, defaultImpactParallel)
	assert.Equal(t, time.Duration(0), defaultImpactTimeout)
	assert.Equal(t, "TIA", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"upper case", "WARN", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", " error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "tia.log")

	configureLogger(logPath, true)

	assert.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestReadConfig_MissingFile(t *testing.T) {
	chdirTemp(t)

	assert.NoError(t, readConfig())
}

func TestReadConfig_MalformedFile(t *testing.T) {
	tempDir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("report:\n  directory: [unclosed\n"), 0o600))

	err := readConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestRootCmd_RefusesBrokenConfig(t *testing.T) {
	broken := errors.New("read config tia.yaml: yaml: line 2: did not find expected ',' or ']'")

	originalErr := configErr
	configErr = broken
	t.Cleanup(func() { configErr = originalErr })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-file", filepath.Join(t.TempDir(), "tia.log")})

	require.ErrorIs(t, cmd.Execute(), broken)
}
