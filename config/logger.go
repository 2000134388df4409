package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. With a log file configured, output
// goes to stdout and to a rotating file.
func NewLogger(cfg LoggingConfig) (*logrus.Logger, func() error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.File == "" {
		log.SetOutput(os.Stdout)
		return log, func() error { return nil }
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     28,
		LocalTime:  true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotating))
	return log, rotating.Close
}
