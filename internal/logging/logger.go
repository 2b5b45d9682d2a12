// Package logging builds the logrus loggers used by both binaries.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stdout. Development gets coloured text with
// full timestamps; every other env gets JSON. An unparsable level falls back
// to debug in development and info elsewhere.
func New(appName, env, level string) *logrus.Logger {
	return NewWithOutput(os.Stdout, appName, env, level)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(out io.Writer, appName, env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if lvl, err := logrus.ParseLevel(level); err == nil && level != "" {
		logger.SetLevel(lvl)
	}

	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Debug("logger initialized")
	return logger
}
