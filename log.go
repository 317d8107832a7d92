// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import (
	"io"
	"log"
	"os"
)

// Level selects the minimum severity that reaches the package logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelSilent disables all package logging.
	LevelSilent
)

var (
	debugLog = log.New(os.Stderr, "[DEBUG] covertree: ", 0)
	infoLog  = log.New(os.Stderr, "[INFO]  covertree: ", 0)
	warnLog  = log.New(os.Stderr, "[WARN]  covertree: ", 0)
	errLog   = log.New(os.Stderr, "[ERROR] covertree: ", 0)
)

var currentLevel = LevelWarn

// SetOutput redirects all package-level log output to w.
func SetOutput(w io.Writer) {
	debugLog.SetOutput(w)
	infoLog.SetOutput(w)
	warnLog.SetOutput(w)
	errLog.SetOutput(w)
}

// SetLevel sets the minimum severity that is actually written.
func SetLevel(l Level) {
	currentLevel = l
}

func logDebugf(format string, args ...any) {
	if currentLevel <= LevelDebug {
		debugLog.Printf(format, args...)
	}
}

func logWarnf(format string, args ...any) {
	if currentLevel <= LevelWarn {
		warnLog.Printf(format, args...)
	}
}

func logErrorf(format string, args ...any) {
	if currentLevel <= LevelError {
		errLog.Printf(format, args...)
	}
}
