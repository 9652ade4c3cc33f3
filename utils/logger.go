package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func InitLogger() {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// Set output untuk InfoLogger ke stdout
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Set output untuk ErrorLogger ke stderr
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}

// ConfigureLogger applies the configured level and format to both loggers.
// The error logger never drops below error level.
func ConfigureLogger(level, format string) error {
	if InfoLogger == nil || ErrorLogger == nil {
		InitLogger()
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	InfoLogger.SetLevel(lvl)
	if lvl > logrus.ErrorLevel {
		ErrorLogger.SetLevel(lvl)
	}

	if format == "json" {
		InfoLogger.SetFormatter(&logrus.JSONFormatter{})
		ErrorLogger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
