// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"ui/index.html", ResourceOrigin + "ui/index.html"},
		{"/ui/index.html", ResourceOrigin + "ui/index.html"},
		{`ui\css\style.css`, ResourceOrigin + "ui/css/style.css"},
		{"ui/../img/logo.png", ResourceOrigin + "img/logo.png"},
		{"../../etc/passwd", ResourceOrigin + "etc/passwd"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResourceURL(tt.in), tt.in)
	}
}

func TestRegisterResource(t *testing.T) {
	t.Parallel()

	e := newFakeEngine()
	rt := newTestRuntime(t, e, Options{})
	assert.ErrorIs(t, rt.RegisterResource("a.html", []byte("x")), ErrNotInitialized)

	_, _, err := rt.SetUp(nil)
	require.NoError(t, err)

	require.NoError(t, rt.RegisterResource(`\ui\a.html`, []byte("<p>a</p>")))
	require.NoError(t, rt.RegisterResource("empty.txt", nil))
	require.NoError(t, rt.RegisterResource("/", []byte("root")))

	assert.Equal(t, map[string][]byte{"ui/a.html": []byte("<p>a</p>")}, e.resources)
}

func TestRegisterFS(t *testing.T) {
	t.Parallel()

	e := newFakeEngine()
	rt := newTestRuntime(t, e, Options{})
	_, _, err := rt.SetUp(nil)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"ui/index.html":       {Data: []byte(`<link href="css/app.css"><img src="img/logo.png">`)},
		"ui/css/app.css":      {Data: []byte("body{}")},
		"ui/img/logo.png":     {Data: []byte{0x89, 'P', 'N', 'G'}},
		"ui/empty/.keep":      {Data: nil},
		"README.md":           {Data: []byte("# ui")},
		"ui/nested/deep/x.js": {Data: []byte("1")},
	}
	require.NoError(t, rt.RegisterFS(fsys))

	assert.Len(t, e.resources, 5)
	assert.Equal(t, []byte("body{}"), e.resources["ui/css/app.css"])
	assert.Contains(t, e.resources, "ui/nested/deep/x.js")
	assert.NotContains(t, e.resources, "ui/empty/.keep")
}

func TestRegisterFSPropagatesEngineErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	engine.EXPECT().ExecuteProcess(gomock.Any()).Return(-1)
	engine.EXPECT().Initialize(gomock.Any()).Return(nil)

	full := errors.New("resource table full")
	engine.EXPECT().RegisterResource("a.css", []byte("a")).Return(nil)
	engine.EXPECT().RegisterResource("b.css", []byte("b")).Return(full)

	rt := newTestRuntime(t, engine, Options{})
	_, _, err := rt.SetUp(nil)
	require.NoError(t, err)

	err = rt.RegisterFS(fstest.MapFS{
		"a.css": {Data: []byte("a")},
		"b.css": {Data: []byte("b")},
		"c.css": {Data: []byte("c")},
	})
	require.ErrorIs(t, err, full)
	assert.ErrorContains(t, err, `"b.css"`)
}
