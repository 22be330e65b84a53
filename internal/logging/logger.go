// Package logging provides per-component logrus loggers configured from the
// environment.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Environment variables read when a logger is first created
const (
	EnvLogLevel  = "WALLGRID_LOG_LEVEL"
	EnvLogCaller = "WALLGRID_LOG_CALLER"
	EnvLogFormat = "WALLGRID_LOG_FORMAT"
)

const defaultLevel = logrus.InfoLevel

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	output    io.Writer = os.Stderr
)

// NewLogger returns the logger for a component, creating it on first use.
// Every entry carries a "component" field.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetLevel(levelFromEnv())

	if os.Getenv(EnvLogCaller) == "true" {
		logger.SetReportCaller(true)
	}

	switch strings.ToLower(os.Getenv(EnvLogFormat)) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetLevel changes the level of every logger created so far. The CLI uses it
// for --verbose.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// SetOutput redirects every existing and future logger to w.
func SetOutput(w io.Writer) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	output = w
	for _, entry := range loggers {
		entry.Logger.SetOutput(w)
	}
}

func levelFromEnv() logrus.Level {
	levelStr := os.Getenv(EnvLogLevel)
	if levelStr == "" {
		return defaultLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return defaultLevel
	}
	return level
}
