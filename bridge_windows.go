// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package cefui

import (
	"fmt"
	"syscall"
)

func openLibrary(path string) (uintptr, error) {
	lib, err := syscall.LoadLibrary(path)
	return uintptr(lib), err
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found", name)
	}
	return sym, nil
}

func bridgeLibName() string {
	return "cef_bridge.dll"
}
