package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "goback"})

// initLogger points logger at GOBACK_LOG_FILE when set. The returned func
// closes the file.
func initLogger() func() {
	path := logFilePath()
	if path == "" {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goback warning: failed to open log file: %v\n", err)
		return func() {}
	}
	setLogger(log.NewWithOptions(f, log.Options{
		Level:           logLevel(),
		Prefix:          "goback",
		ReportTimestamp: true,
	}))
	return func() { _ = f.Close() }
}

func setLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{Prefix: "goback"})
	}
	logger = l
}

// logOp returns a func to call when op finishes; it logs duration and outcome.
//
//	done := logOp("reflog", "dir", dir)
//	out, err := runGit(dir, "reflog")
//	done(err)
func logOp(op string, keyvals ...any) func(error) {
	start := time.Now()
	return func(err error) {
		args := make([]any, 0, len(keyvals)+6)
		args = append(args, "op", op, "duration", time.Since(start).String())
		args = append(args, keyvals...)
		if err != nil {
			args = append(args, "error", err.Error())
			logger.Error("operation failed", args...)
			return
		}
		logger.Info("operation complete", args...)
	}
}
