package logging

import (
	"io"
	"os"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnb-chain/subgraph-store/config"
)

const module = "subgraph-store"

var (
	// Logger is the process wide logger, it writes to stderr until InitLogger is called
	Logger = logging.MustGetLogger(module)

	format = logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05.000} %{shortfile} %{level:.4s} %{message}`,
	)
)

func InitLogger(cfg *config.LogConfig) {
	cfg.Validate()

	var backends []logging.Backend
	if cfg.UseConsoleLogger {
		backends = append(backends, newBackend(os.Stdout, cfg.Level))
	}
	if cfg.UseFileLogger {
		backends = append(backends, newBackend(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxFileSizeInMB,
			MaxBackups: cfg.MaxBackupsOfLogFiles,
			MaxAge:     cfg.MaxAgeToRetainLogFilesInDays,
			Compress:   cfg.Compress,
		}, cfg.Level))
	}
	if len(backends) == 0 {
		backends = append(backends, newBackend(os.Stderr, cfg.Level))
	}
	logging.SetBackend(backends...)
}

func newBackend(w io.Writer, level string) logging.LeveledBackend {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	return leveled
}
