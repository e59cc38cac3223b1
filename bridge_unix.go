// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package cefui

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// openLibrary loads the bridge globally so the CEF libraries it pulls in
// resolve against each other.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func bridgeLibName() string {
	if runtime.GOOS == "darwin" {
		return "libcef_bridge.dylib"
	}
	return "libcef_bridge.so"
}
