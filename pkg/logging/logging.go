// Package logging exposes the process-wide structured logger used by the
// pipeline services.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(func() {
		l := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "sheetpack",
		})
		l.SetLevel(log.InfoLevel)
		singleton = &logger{l}
	})
	return singleton
}

// SetLevel adjusts the log level from its config string ("debug", "info",
// "warn", "error"). Unknown values are ignored.
func SetLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return
	}
	getLogger().Logger.SetLevel(parsed)
}

func Debug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
