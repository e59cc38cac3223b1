// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import "image"

//go:generate mockgen -destination=engine_mock_test.go -package=cefui . Engine,Browser

// Engine is the browser engine as seen by the Runtime. The bridge library
// implements it for CEF; tests use in-memory fakes.
//
// Every method must be called from the thread that owns the graphics
// context. Callbacks (paint, view rect, close) are delivered synchronously
// from inside DoMessageLoopWork on that same thread.
type Engine interface {
	// ExecuteProcess runs the engine's process entry point. For worker
	// invocations it blocks until the worker is done and returns its exit
	// status (>= 0). For the main process it returns -1 immediately.
	ExecuteProcess(args []string) int

	// Initialize starts the engine in the main process.
	Initialize(settings Settings) error

	// CreateBrowser creates a windowless browser for url and returns once the
	// instance exists. Loading and the first paint happen later, during
	// DoMessageLoopWork.
	CreateBrowser(client Client, url string, width, height int) (Browser, error)

	// DoMessageLoopWork performs one non-blocking iteration of the engine's
	// message loop.
	DoMessageLoopWork()

	// RegisterResource makes data available to pages under ResourceURL(path).
	RegisterResource(path string, data []byte) error

	// Shutdown stops the engine. All browsers must be closed first.
	Shutdown()
}

// Browser is one engine instance, exclusively owned by a WebCore.
type Browser interface {
	ID() int

	// WasResized tells the engine to query GetViewRect again.
	WasResized()

	SendMouseMove(x, y int, mods Modifiers)
	SendMouseClick(x, y int, button MouseButton, up bool, clickCount int, mods Modifiers)
	SendMouseWheel(x, y, deltaX, deltaY int, mods Modifiers)
	SendKeyEvent(ev KeyEvent)

	// Close starts an asynchronous close. Closed reports true once the engine
	// has torn the instance down and will deliver no further callbacks.
	Close(force bool)
	Closed() bool
}

// Client is the per-browser handler set the engine asks for capabilities.
// A nil result means the capability is unhandled and the engine uses its
// default behavior.
type Client interface {
	RenderHandler() ViewRenderer
	DisplayHandler() DisplayHandler
	LoadHandler() LoadHandler
}

// ViewRenderer receives offscreen rendering callbacks.
type ViewRenderer interface {
	// GetViewRect returns the view rectangle the engine should render.
	GetViewRect() image.Rectangle

	// OnPaint delivers a BGRA buffer of width*height*4 bytes with an
	// upper-left origin. dirty lists the regions that changed.
	OnPaint(kind PaintElementType, dirty []image.Rectangle, buffer []byte, width, height int)
}

// DisplayHandler receives page display notifications.
type DisplayHandler interface {
	OnTitleChange(title string)
	OnConsoleMessage(level int, message, source string, line int)
}

// LoadHandler receives loading state notifications.
type LoadHandler interface {
	OnLoadingStateChange(isLoading, canGoBack, canGoForward bool)
}

// PaintElementType identifies the surface a paint belongs to.
type PaintElementType int

const (
	PaintView PaintElementType = iota
	PaintPopup
)

// MouseButton uses the engine's button numbering.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	default:
		return "unknown"
	}
}

// Modifiers is a set of engine event flags.
type Modifiers uint32

const (
	ModCapsLock     Modifiers = 1 << 0
	ModShift        Modifiers = 1 << 1
	ModControl      Modifiers = 1 << 2
	ModAlt          Modifiers = 1 << 3
	ModLeftButton   Modifiers = 1 << 4
	ModMiddleButton Modifiers = 1 << 5
	ModRightButton  Modifiers = 1 << 6
	ModCommand      Modifiers = 1 << 7
)

// KeyEventType is the engine's key event kind.
type KeyEventType int

const (
	KeyRawDown KeyEventType = iota
	KeyDown
	KeyUp
	KeyChar
)

// KeyEvent is a keyboard event as injected into a browser.
type KeyEvent struct {
	Type           KeyEventType
	WindowsKeyCode int
	Character      rune
	Modifiers      Modifiers
}

// Settings configures engine initialization. It crosses the bridge as JSON.
type Settings struct {
	BrowserSubprocessPath string `json:"browser_subprocess_path,omitempty" mapstructure:"browser_subprocess_path"`
	CachePath             string `json:"cache_path,omitempty" mapstructure:"cache_path"`
	Locale                string `json:"locale,omitempty" mapstructure:"locale"`
	LogFile               string `json:"log_file,omitempty" mapstructure:"log_file"`
	LogSeverity           string `json:"log_severity,omitempty" mapstructure:"log_severity"`
	WindowlessFrameRate   int    `json:"windowless_frame_rate,omitempty" mapstructure:"windowless_frame_rate"`
	BackgroundColor       uint32 `json:"background_color" mapstructure:"background_color"`
	NoSandbox             bool   `json:"no_sandbox" mapstructure:"no_sandbox"`
}
