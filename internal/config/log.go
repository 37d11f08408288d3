package config

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "config",
	Level:  log.InfoLevel,
})

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetLogLevel sets the package logger level.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}
