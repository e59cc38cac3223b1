// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr holds the package logger. By default cefui logs nothing.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newDiscardLogger())
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger sets the logger used by runtimes created without Options.Logger
// and by the bridge callbacks. Pass nil to silence logging again.
//
// Levels used:
//   - Debug: per-browser lifecycle and paint resizes
//   - Info: engine start-up and shutdown
//   - Warn: dropped callbacks and malformed paint buffers
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newDiscardLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
