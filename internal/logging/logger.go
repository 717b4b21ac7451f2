// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/msondoc

// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Field names used in structured log entries.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldElement = "element"
	FieldInput   = "input"
	FieldOutput  = "output"
	FieldFormat  = "format"
)

var (
	defaultLogger     *log.Logger
	defaultLoggerMu   sync.RWMutex
	defaultLoggerOnce sync.Once
)

// New creates a stderr logger with the specified level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w with the specified level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "msondoc",
	})

	logger.SetStyles(newStyles())
	setLoggerLevel(logger, level)
	return logger
}

// newStyles highlights element path keys; colors are dropped on non-terminal writers.
func newStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Keys[FieldPath] = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styles.Values[FieldPath] = lipgloss.NewStyle().Bold(true)
	styles.Keys[FieldElement] = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	return styles
}

// ParseLevel maps level name to log.Level, info for unknown names.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func setLoggerLevel(logger *log.Logger, level string) {
	logger.SetLevel(ParseLevel(level))
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLoggerMu.Lock()
		defer defaultLoggerMu.Unlock()

		if defaultLogger == nil {
			defaultLogger = New("info")
		}
	})

	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level default logger; nil is ignored.
func SetDefault(logger *log.Logger) {
	if logger == nil {
		return
	}

	Default()

	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(Default(), level)
}
