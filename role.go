// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import "strings"

// SubprocessMarker is the command-line token the engine adds when it relaunches
// the executable as a renderer, GPU or utility worker.
const SubprocessMarker = "--channel"

// Role is the part a process invocation plays.
type Role int

const (
	RoleMain Role = iota
	RoleSubprocess
)

func (r Role) String() string {
	switch r {
	case RoleMain:
		return "main"
	case RoleSubprocess:
		return "subprocess"
	default:
		return "unknown"
	}
}

// IsMainProcess reports whether args belong to the orchestrating process.
// Workers must not create windows or graphics contexts before handing control
// to the engine.
func IsMainProcess(args []string) bool {
	for _, arg := range args {
		if strings.Contains(arg, SubprocessMarker) {
			return false
		}
	}
	return true
}

// ProcessRole classifies args. See IsMainProcess.
func ProcessRole(args []string) Role {
	if IsMainProcess(args) {
		return RoleMain
	}
	return RoleSubprocess
}
