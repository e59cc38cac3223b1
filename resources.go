// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ResourceOrigin is the origin under which registered resources are served.
const ResourceOrigin = "https://cefui.local/"

// ResourceURL returns the URL a page uses to load the resource registered
// as filePath.
func ResourceURL(filePath string) string {
	return ResourceOrigin + normalizeResourcePath(filePath)
}

func normalizeResourcePath(filePath string) string {
	norm := path.Clean("/" + strings.ReplaceAll(filePath, "\\", "/"))
	return strings.TrimLeft(norm, "/")
}

// RegisterResource serves data at ResourceURL(filePath). Registered resources
// take priority over the network. Register before creating browsers that
// reference them.
func (r *Runtime) RegisterResource(filePath string, data []byte) error {
	if r.state != StateInitialized {
		return ErrNotInitialized
	}
	norm := normalizeResourcePath(filePath)
	if norm == "" || len(data) == 0 {
		return nil
	}
	if err := r.engine.RegisterResource(norm, data); err != nil {
		return fmt.Errorf("registering %q: %w", norm, err)
	}
	return nil
}

// RegisterFS registers every file of fsys, keeping its relative paths so that
// <link>, <script> and <img> references between them resolve.
//
// Example with embed.FS:
//
//	//go:embed ui
//	var uiFiles embed.FS
//	if err := rt.RegisterFS(uiFiles); err != nil { ... }
//	h, err := rt.CreateBrowser(cefui.ResourceURL("ui/index.html"))
func (r *Runtime) RegisterFS(fsys fs.FS) error {
	if r.state != StateInitialized {
		return ErrNotInitialized
	}
	count := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, readErr := fs.ReadFile(fsys, p)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", p, readErr)
		}
		count++
		return r.RegisterResource(p, data)
	})
	if err != nil {
		return fmt.Errorf("walking FS: %w", err)
	}
	r.log.WithField("files", count).Debug("resources registered")
	return nil
}
