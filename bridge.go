// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"encoding/json"
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

func init() {
	// The engine and the graphics context must be driven from one OS thread.
	runtime.LockOSThread()
}

var (
	cefbExecuteProcess    func(argv *byte, argc int32) int32
	cefbInitialize        func(settingsJSON string) int32
	cefbSetCallbacks      func(paint, viewRect, beforeClose, title, console, loading uintptr)
	cefbCreateBrowser     func(url string, width, height int32) int32
	cefbDoMessageLoopWork func()
	cefbWasResized        func(id int32)
	cefbSendMouseMove     func(id, x, y int32, mods uint32)
	cefbSendMouseClick    func(id, x, y, button, up, clicks int32, mods uint32)
	cefbSendMouseWheel    func(id, x, y, dx, dy int32, mods uint32)
	cefbSendKey           func(id, kind, vk, char int32, mods uint32)
	cefbCloseBrowser      func(id, force int32)
	cefbRegisterResource  func(path string, data *byte, size int64) int32
	cefbShutdown          func()
)

var (
	bridgeOnce sync.Once
	bridgeErr  error

	activeOnce sync.Once
	active     *BridgeEngine
)

func loadBridge(baseDir string) error {
	bridgeOnce.Do(func() {
		bridgeErr = openBridge(baseDir)
	})
	return bridgeErr
}

// openBridge loads the bridge library from baseDir and resolves its symbols.
func openBridge(baseDir string) error {
	libPath := filepath.Join(baseDir, bridgeLibName())
	if abs, err := filepath.Abs(libPath); err == nil {
		libPath = abs
	}
	handle, err := openLibrary(libPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", libPath, err)
	}
	return resolveAllSymbols(handle)
}

func resolveAllSymbols(handle uintptr) error {
	for _, reg := range []struct {
		fptr any
		name string
	}{
		{&cefbExecuteProcess, "cefb_execute_process"},
		{&cefbInitialize, "cefb_initialize"},
		{&cefbSetCallbacks, "cefb_set_callbacks"},
		{&cefbCreateBrowser, "cefb_create_browser"},
		{&cefbDoMessageLoopWork, "cefb_do_message_loop_work"},
		{&cefbWasResized, "cefb_was_resized"},
		{&cefbSendMouseMove, "cefb_send_mouse_move"},
		{&cefbSendMouseClick, "cefb_send_mouse_click"},
		{&cefbSendMouseWheel, "cefb_send_mouse_wheel"},
		{&cefbSendKey, "cefb_send_key"},
		{&cefbCloseBrowser, "cefb_close_browser"},
		{&cefbRegisterResource, "cefb_register_resource"},
		{&cefbShutdown, "cefb_shutdown"},
	} {
		sym, err := getSymbolAddr(handle, reg.name)
		if err != nil {
			return fmt.Errorf("%s: %w (rebuild %s)", reg.name, err, bridgeLibName())
		}
		purego.RegisterFunc(reg.fptr, sym)
	}
	return nil
}

// BridgeEngine is the Engine backed by the CEF bridge shared library
// (cef_bridge.dll, libcef_bridge.so or libcef_bridge.dylib). There is one per
// process because the engine itself is process-wide.
type BridgeEngine struct {
	browsers map[int32]*bridgeBrowser

	// creating receives callbacks that arrive while cefb_create_browser runs,
	// before the new browser id is known.
	creating Client

	// lastID is the highest id cefb_create_browser returned. Ids at or below
	// it belong to an existing or retired browser, never to one being created.
	lastID int32

	log logrus.FieldLogger
}

// NewBridgeEngine loads the bridge library from baseDir (see Options.BaseDir)
// and returns the process-wide engine.
func NewBridgeEngine(baseDir string) (*BridgeEngine, error) {
	if err := loadBridge(resolveBaseDir(baseDir)); err != nil {
		return nil, WithExitCodeIfNone(fmt.Errorf("%w: %w", ErrBridgeNotLoaded, err), ExitEngineInit)
	}
	activeOnce.Do(func() {
		active = &BridgeEngine{
			browsers: make(map[int32]*bridgeBrowser),
			log:      Logger().WithField("engine", "cef"),
		}
		cefbSetCallbacks(
			purego.NewCallback(onPaint),
			purego.NewCallback(onViewRect),
			purego.NewCallback(onBeforeClose),
			purego.NewCallback(onTitleChange),
			purego.NewCallback(onConsoleMessage),
			purego.NewCallback(onLoadingStateChange),
		)
	})
	return active, nil
}

// ExecuteProcess passes args as one NUL-separated buffer plus a count; the
// bridge splits it back into the argv CefMainArgs expects.
func (e *BridgeEngine) ExecuteProcess(args []string) int {
	var argv []byte
	for _, a := range args {
		argv = append(argv, a...)
		argv = append(argv, 0)
	}
	if len(argv) == 0 {
		argv = []byte{0}
	}
	code := cefbExecuteProcess(&argv[0], int32(len(args)))
	runtime.KeepAlive(argv)
	return int(code)
}

func (e *BridgeEngine) Initialize(settings Settings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if rc := cefbInitialize(string(b)); rc != 0 {
		return fmt.Errorf("cefb_initialize failed with code %d", rc)
	}
	return nil
}

func (e *BridgeEngine) CreateBrowser(client Client, url string, width, height int) (Browser, error) {
	e.creating = client
	id := cefbCreateBrowser(url, int32(width), int32(height))
	e.creating = nil
	if id < 0 {
		return nil, fmt.Errorf("cefb_create_browser failed with code %d", id)
	}
	if id > e.lastID {
		e.lastID = id
	}
	b := &bridgeBrowser{id: id, client: client}
	e.browsers[id] = b
	return b, nil
}

func (e *BridgeEngine) DoMessageLoopWork() {
	cefbDoMessageLoopWork()
}

func (e *BridgeEngine) RegisterResource(path string, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if rc := cefbRegisterResource(path, &data[0], int64(len(data))); rc != 0 {
		return fmt.Errorf("cefb_register_resource failed with code %d", rc)
	}
	return nil
}

func (e *BridgeEngine) Shutdown() {
	cefbShutdown()
}

// client returns the client for a callback's browser id. Callbacks for
// closed browsers get nil; unissued ids go to the browser being created.
func (e *BridgeEngine) client(id uintptr) Client {
	bid := int32(id)
	if b, ok := e.browsers[bid]; ok {
		return b.client
	}
	if bid > e.lastID {
		return e.creating
	}
	return nil
}

type bridgeBrowser struct {
	id     int32
	client Client
	closed bool
}

func (b *bridgeBrowser) ID() int { return int(b.id) }

func (b *bridgeBrowser) WasResized() { cefbWasResized(b.id) }

func (b *bridgeBrowser) SendMouseMove(x, y int, mods Modifiers) {
	cefbSendMouseMove(b.id, int32(x), int32(y), uint32(mods))
}

func (b *bridgeBrowser) SendMouseClick(x, y int, button MouseButton, up bool, clickCount int, mods Modifiers) {
	cefbSendMouseClick(b.id, int32(x), int32(y), int32(button), boolToInt32(up), int32(clickCount), uint32(mods))
}

func (b *bridgeBrowser) SendMouseWheel(x, y, deltaX, deltaY int, mods Modifiers) {
	cefbSendMouseWheel(b.id, int32(x), int32(y), int32(deltaX), int32(deltaY), uint32(mods))
}

func (b *bridgeBrowser) SendKeyEvent(ev KeyEvent) {
	cefbSendKey(b.id, int32(ev.Type), int32(ev.WindowsKeyCode), int32(ev.Character), uint32(ev.Modifiers))
}

func (b *bridgeBrowser) Close(force bool) {
	if b.closed {
		return
	}
	cefbCloseBrowser(b.id, boolToInt32(force))
}

func (b *bridgeBrowser) Closed() bool { return b.closed }

func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

// Callbacks below run on the thread inside cefb_do_message_loop_work.

func onPaint(id, kind, rects, rectCount, buffer, width, height uintptr) uintptr {
	c := active.client(id)
	if c == nil || buffer == 0 {
		return 0
	}
	vr := c.RenderHandler()
	if vr == nil {
		return 0
	}
	w, h := int(int32(width)), int(int32(height))
	if w <= 0 || h <= 0 {
		return 0
	}
	var dirty []image.Rectangle
	if rects != 0 && rectCount > 0 {
		for _, r := range unsafe.Slice((*[4]int32)(unsafe.Pointer(rects)), int(rectCount)) {
			dirty = append(dirty, image.Rect(int(r[0]), int(r[1]), int(r[0]+r[2]), int(r[1]+r[3])))
		}
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), w*h*4)
	vr.OnPaint(PaintElementType(kind), dirty, buf, w, h)
	return 1
}

func onViewRect(id, outWidth, outHeight uintptr) uintptr {
	c := active.client(id)
	if c == nil {
		return 0
	}
	vr := c.RenderHandler()
	if vr == nil {
		return 0
	}
	r := vr.GetViewRect()
	*(*int32)(unsafe.Pointer(outWidth)) = int32(r.Dx())
	*(*int32)(unsafe.Pointer(outHeight)) = int32(r.Dy())
	return 1
}

func onBeforeClose(id uintptr) uintptr {
	if b, ok := active.browsers[int32(id)]; ok {
		b.closed = true
		delete(active.browsers, int32(id))
		active.log.WithField("browser", int32(id)).Debug("browser closed")
	}
	return 0
}

func onTitleChange(id, title uintptr) uintptr {
	c := active.client(id)
	if c == nil {
		return 0
	}
	if dh := c.DisplayHandler(); dh != nil {
		dh.OnTitleChange(goString(title))
		return 1
	}
	return 0
}

func onConsoleMessage(id, level, message, source, line uintptr) uintptr {
	c := active.client(id)
	if c == nil {
		return 0
	}
	if dh := c.DisplayHandler(); dh != nil {
		dh.OnConsoleMessage(int(int32(level)), goString(message), goString(source), int(int32(line)))
		return 1
	}
	return 0
}

func onLoadingStateChange(id, isLoading, canGoBack, canGoForward uintptr) uintptr {
	c := active.client(id)
	if c == nil {
		return 0
	}
	if lh := c.LoadHandler(); lh != nil {
		lh.OnLoadingStateChange(isLoading != 0, canGoBack != 0, canGoForward != 0)
		return 1
	}
	return 0
}

// goString copies a NUL-terminated C string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	start := unsafe.Pointer(p)
	n := 0
	for *(*byte)(unsafe.Add(start, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(start), n))
}

var _ Engine = (*BridgeEngine)(nil)
