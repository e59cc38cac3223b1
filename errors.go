// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import "errors"

var (
	// ErrInvalidState is returned when a Runtime operation is called out of
	// order, e.g. SetUp twice or ShutDown after ShutDown.
	ErrInvalidState = errors.New("cefui: runtime is not in a valid state for this call")

	// ErrNotInitialized is returned by operations that need an initialized engine.
	ErrNotInitialized = errors.New("cefui: runtime not initialized")

	// ErrBrowsersOpen is returned by ShutDown while browsers are still
	// registered or waiting for their close to complete.
	ErrBrowsersOpen = errors.New("cefui: browsers still open")

	// ErrBridgeNotLoaded means the bridge library could not be loaded.
	ErrBridgeNotLoaded = errors.New("cefui: bridge library not loaded")
)

// ExitCode is the status a host should exit with when an error carrying it
// reaches main. Values stay between 0 and 125.
type ExitCode uint8

const (
	ExitGraphicsInit ExitCode = 101
	ExitEngineInit   ExitCode = 102
	ExitConfig       ExitCode = 103
	ExitBrowser      ExitCode = 104
)

// HasExitCode is an error with an attached exit code. Any error implementing
// it that reaches main is fatal for the process.
type HasExitCode interface {
	error
	ExitCode() ExitCode
}

// WithExitCodeIfNone attaches exitCode to err unless err is nil or already
// carries one.
func WithExitCodeIfNone(err error, exitCode ExitCode) error {
	if err == nil {
		return nil
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return err
	}
	return withExitCode{err, exitCode}
}

// ExitCodeOf returns the exit code attached to err, or 1 for other non-nil
// errors and 0 for nil.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return int(ecerr.ExitCode())
	}
	return 1
}

type withExitCode struct {
	error
	exitCode ExitCode
}

func (wh withExitCode) Unwrap() error {
	return wh.error
}

func (wh withExitCode) ExitCode() ExitCode {
	return wh.exitCode
}

var _ HasExitCode = withExitCode{}
