package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

const (
	configBaseName   = "linegrep"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	searchParallelKey = "search.parallel"
	searchMaxDepthKey = "search.max_depth"

	defaultSearchParallel = 1
	defaultSearchMaxDepth = 0

	envPrefix = "LINEGREP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ""
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// configErr holds a config file that exists but could not be read. It is
// logged once the logger is up.
var configErr error

func init() {
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(searchParallelKey, defaultSearchParallel)
	viper.SetDefault(searchMaxDepthKey, defaultSearchMaxDepth)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configErr = readConfig(configFolderPath)
}

// readConfig loads linegrep.yaml from dir. A missing file is not an error.
func readConfig(dir string) error {
	viper.SetConfigFile(filepath.Join(dir, configFileName))

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// searchConfig reads the engine tuning from viper.
func searchConfig() m.SearchConfig {
	workers := viper.GetInt(searchParallelKey)
	if workers < 1 {
		workers = 1
	}

	return m.SearchConfig{
		Workers:  workers,
		MaxDepth: viper.GetInt(searchMaxDepthKey),
	}
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
// Logging goes to a rotated file and is off unless log.filename is set, so
// diagnostics never mix with search output.
func configureLogger(logPath string) *slog.Logger {
	if strings.TrimSpace(logPath) == "" {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)

		return logger
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
		Level:     parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
