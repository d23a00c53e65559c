// Package utils provides utility functions for the score tools.
//
// This file implements a debug logger that appends to a log file (by default
// ~/.scorelog/debug.log) for troubleshooting and for keeping a trail of every
// record change.
package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	debugLogger *log.Logger
	logFile     *os.File
	logPath     string
	runID       string
)

// InitLogger opens path for appending and starts logging to it. Each call
// starts a new run with a fresh run id.
func InitLogger(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	CloseLogger()
	logFile = file
	logPath = path
	runID = uuid.NewString()
	debugLogger = log.New(file, "["+runID[:8]+"] ", log.LstdFlags|log.Lshortfile)
	debugLogger.Printf("=== %s started (run %s) ===", filepath.Base(os.Args[0]), runID)
	return nil
}

// CloseLogger stops logging and closes the log file.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
	logFile = nil
	debugLogger = nil
}

// RunID returns the id of the current run, or "" when logging is off.
func RunID() string {
	if debugLogger == nil {
		return ""
	}
	return runID
}

// ErrorHint points the user at the log lines of this run, or returns "" when
// logging is off.
func ErrorHint() string {
	id := RunID()
	if id == "" {
		return ""
	}
	return fmt.Sprintf("details in %s (run %s)", logPath, id[:8])
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	if debugLogger != nil {
		debugLogger.Output(2, fmt.Sprintf(format, args...))
	}
}
