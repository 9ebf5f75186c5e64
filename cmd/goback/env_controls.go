package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

func envValue(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func envFlagEnabled(name string) bool {
	switch strings.ToLower(envValue(name)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// logFilePath is empty unless file logging was requested.
func logFilePath() string {
	return envValue("GOBACK_LOG_FILE")
}

func logLevel() log.Level {
	switch strings.ToLower(envValue("GOBACK_LOG_LEVEL")) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func spinnerDisabled() bool {
	return envFlagEnabled("GOBACK_NO_SPINNER")
}
