// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"errors"
	"image"
	"image/color"
)

// fakeEngine is a deterministic in-memory engine. Callbacks are delivered
// only from DoMessageLoopWork, like the real one.
type fakeEngine struct {
	executeCode int
	initErr     error
	createErr   error

	// closeAfter is how many pumps a requested close takes to complete.
	closeAfter int

	settings    Settings
	initialized bool
	shutdown    bool
	pumps       int
	unhandled   int
	resources   map[string][]byte
	browsers    []*fakeBrowser
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		executeCode: -1,
		closeAfter:  2,
		resources:   make(map[string][]byte),
	}
}

func (e *fakeEngine) ExecuteProcess([]string) int { return e.executeCode }

func (e *fakeEngine) Initialize(s Settings) error {
	if e.initErr != nil {
		return e.initErr
	}
	e.settings = s
	e.initialized = true
	return nil
}

func (e *fakeEngine) CreateBrowser(client Client, url string, width, height int) (Browser, error) {
	if e.createErr != nil {
		return nil, e.createErr
	}
	if client.RenderHandler() == nil {
		return nil, errors.New("fake engine only supports windowless browsers")
	}
	if client.DisplayHandler() == nil {
		e.unhandled++
	}
	if client.LoadHandler() == nil {
		e.unhandled++
	}
	b := &fakeBrowser{
		id:     len(e.browsers) + 1,
		engine: e,
		client: client,
		url:    url,
	}
	e.browsers = append(e.browsers, b)
	return b, nil
}

func (e *fakeEngine) DoMessageLoopWork() {
	e.pumps++
	for _, b := range e.browsers {
		b.pump()
	}
}

func (e *fakeEngine) RegisterResource(path string, data []byte) error {
	e.resources[path] = append([]byte(nil), data...)
	return nil
}

func (e *fakeEngine) Shutdown() { e.shutdown = true }

func (e *fakeEngine) browserFor(url string) *fakeBrowser {
	for _, b := range e.browsers {
		if b.url == url {
			return b
		}
	}
	return nil
}

type fakePaint struct {
	dirty         []image.Rectangle
	buffer        []byte
	width, height int
}

type fakeClick struct {
	x, y   int
	button MouseButton
	up     bool
	mods   Modifiers
}

type fakeBrowser struct {
	id     int
	engine *fakeEngine
	client Client
	url    string

	// solid, when set, is painted at the current view size on every pump.
	solid  *color.RGBA
	queued []fakePaint

	resizes   int
	moves     []image.Point
	clicks    []fakeClick
	wheels    []image.Point
	keys      []KeyEvent
	delivered int

	closeRequested bool
	closeIn        int
	closed         bool
}

func (b *fakeBrowser) ID() int { return b.id }

func (b *fakeBrowser) WasResized() { b.resizes++ }

func (b *fakeBrowser) SendMouseMove(x, y int, _ Modifiers) {
	b.moves = append(b.moves, image.Pt(x, y))
}

func (b *fakeBrowser) SendMouseClick(x, y int, button MouseButton, up bool, _ int, mods Modifiers) {
	b.clicks = append(b.clicks, fakeClick{x: x, y: y, button: button, up: up, mods: mods})
}

func (b *fakeBrowser) SendMouseWheel(_, _, dx, dy int, _ Modifiers) {
	b.wheels = append(b.wheels, image.Pt(dx, dy))
}

func (b *fakeBrowser) SendKeyEvent(ev KeyEvent) { b.keys = append(b.keys, ev) }

func (b *fakeBrowser) Close(bool) {
	if b.closeRequested {
		return
	}
	b.closeRequested = true
	b.closeIn = b.engine.closeAfter
}

func (b *fakeBrowser) Closed() bool { return b.closed }

// queuePaint schedules one BGRA frame for the next pump.
func (b *fakeBrowser) queuePaint(buffer []byte, width, height int, dirty ...image.Rectangle) {
	b.queued = append(b.queued, fakePaint{dirty: dirty, buffer: buffer, width: width, height: height})
}

func (b *fakeBrowser) pump() {
	if b.closed {
		return
	}
	if b.closeRequested {
		b.queued = nil
		if b.closeIn--; b.closeIn <= 0 {
			b.closed = true
		}
		return
	}
	vr := b.client.RenderHandler()
	for _, p := range b.queued {
		vr.OnPaint(PaintView, p.dirty, p.buffer, p.width, p.height)
		b.delivered++
	}
	b.queued = nil
	if b.solid != nil {
		r := vr.GetViewRect()
		vr.OnPaint(PaintView, nil, solidBGRA(r.Dx(), r.Dy(), *b.solid), r.Dx(), r.Dy())
		b.delivered++
	}
}

// solidBGRA returns a width x height frame of c in the engine's byte order.
func solidBGRA(width, height int, c color.RGBA) []byte {
	buf := make([]byte, width*height*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = c.B
		buf[i+1] = c.G
		buf[i+2] = c.R
		buf[i+3] = c.A
	}
	return buf
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

var _ Engine = (*fakeEngine)(nil)
