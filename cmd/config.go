package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tia"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	graphFlagName       = "graph"
	changedFlagName     = "changed"
	diffFlagName        = "diff"
	baseFlagName        = "base"
	headFlagName        = "head"
	repoFlagName        = "repo"
	reportFileFlagName  = "report-file"
	includeFlagName     = "include"
	dryRunFlagName      = "dry-run"
	timeoutFlagName     = "timeout"
	defaultFileFlagName = "default-file"
	forceFlagName       = "force"

	graphPathKey         = "graph.path"
	changesBaseKey       = "changes.base"
	changesHeadKey       = "changes.head"
	changesRepoKey       = "changes.repo"
	reportDirectoryKey   = "report.directory"
	reportFileKey        = "report.file"
	reportDefaultFileKey = "report.default_file"
	reportIncludeKey     = "report.include"
	impactParallelKey    = "impact.parallel"
	impactTimeoutKey     = "impact.timeout"
	traceFileKey         = "telemetry.trace_file"
	metricsFileKey       = "telemetry.metrics_file"

	defaultGraphPath      = "tia-graph.yaml"
	defaultReportsDir     = "target/tia"
	defaultReportFile     = "surefire-tests"
	defaultImpactParallel = true
	defaultImpactTimeout  = time.Duration(0)
	defaultRepoDir        = "."

	envPrefix = "TIA"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tia.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds the error from reading tia.yaml at startup. Commands
// refuse to run while it is set.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(graphPathKey, defaultGraphPath)
	viper.SetDefault(changesBaseKey, "")
	viper.SetDefault(changesHeadKey, "")
	viper.SetDefault(changesRepoKey, defaultRepoDir)
	viper.SetDefault(reportDirectoryKey, defaultReportsDir)
	viper.SetDefault(reportFileKey, "")
	viper.SetDefault(reportDefaultFileKey, defaultReportFile)
	viper.SetDefault(reportIncludeKey, []string{})
	viper.SetDefault(impactParallelKey, defaultImpactParallel)
	viper.SetDefault(impactTimeoutKey, defaultImpactTimeout)
	viper.SetDefault(traceFileKey, "")
	viper.SetDefault(metricsFileKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig()
}

// readConfig loads tia.yaml when present. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
