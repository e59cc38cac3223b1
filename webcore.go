// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Windows virtual-key codes of the modifier keys.
const (
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
	vkLWin    = 0x5B
	vkRWin    = 0x5C
)

// WebCore is one browser session bound to a URL. It owns the browser
// instance, its RenderHandler and its BrowserClient.
//
// Input methods are safe to call at any time: they do nothing until the
// browser exists and after its close was requested.
type WebCore struct {
	url string

	mouseX, mouseY int
	mods           Modifiers

	browser  Browser
	client   *BrowserClient
	renderer *RenderHandler

	closing bool
	log     logrus.FieldLogger
}

func newWebCore(engine Engine, gfx Graphics, url string, width, height int, log logrus.FieldLogger) (*WebCore, error) {
	renderer := newRenderHandler(gfx, width, height, log)
	renderer.init()

	wc := &WebCore{
		url:      url,
		renderer: renderer,
		client:   newBrowserClient(renderer),
		log:      log,
	}

	browser, err := engine.CreateBrowser(wc.client, url, width, height)
	if err != nil {
		renderer.release()
		return nil, fmt.Errorf("creating browser for %s: %w", url, err)
	}
	wc.browser = browser
	wc.log = log.WithField("browser", browser.ID())
	renderer.log = wc.log
	return wc, nil
}

// URL returns the URL the browser was created with.
func (wc *WebCore) URL() string {
	return wc.url
}

// RenderHandler gives compositor code read access to the texture.
func (wc *WebCore) RenderHandler() *RenderHandler {
	return wc.renderer
}

// Ready reports whether input reaches the browser.
func (wc *WebCore) Ready() bool {
	return wc.browser != nil && !wc.closing && !wc.browser.Closed()
}

// Reshape declares a new view size. The engine repaints at that size on its
// own schedule; non-positive sizes are ignored.
func (wc *WebCore) Reshape(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	wc.renderer.resize(width, height)
	if wc.Ready() {
		wc.browser.WasResized()
	}
}

func (wc *WebCore) MouseMove(x, y int) {
	wc.mouseX, wc.mouseY = x, y
	if !wc.Ready() {
		return
	}
	wc.browser.SendMouseMove(x, y, wc.mods)
}

// MouseClick presses or releases btn at the last cursor position.
func (wc *WebCore) MouseClick(btn MouseButton, isRelease bool) {
	if !wc.Ready() {
		return
	}
	flag := buttonModifier(btn)
	if isRelease {
		wc.mods &^= flag
	} else {
		wc.mods |= flag
	}
	wc.browser.SendMouseClick(wc.mouseX, wc.mouseY, btn, isRelease, 1, wc.mods)
}

func (wc *WebCore) MouseWheel(deltaX, deltaY int) {
	if !wc.Ready() {
		return
	}
	wc.browser.SendMouseWheel(wc.mouseX, wc.mouseY, deltaX, deltaY, wc.mods)
}

// KeyPress sends a key down or up for a Windows virtual-key code.
func (wc *WebCore) KeyPress(key int, pressed bool) {
	if !wc.Ready() {
		return
	}
	if flag := keyModifier(key); flag != 0 {
		if pressed {
			wc.mods |= flag
		} else {
			wc.mods &^= flag
		}
	}
	typ := KeyUp
	if pressed {
		typ = KeyRawDown
	}
	wc.browser.SendKeyEvent(KeyEvent{
		Type:           typ,
		WindowsKeyCode: key,
		Modifiers:      wc.mods,
	})
}

// CharInput sends text produced by the OS input method.
func (wc *WebCore) CharInput(r rune) {
	if !wc.Ready() {
		return
	}
	wc.browser.SendKeyEvent(KeyEvent{
		Type:           KeyChar,
		WindowsKeyCode: int(r),
		Character:      r,
		Modifiers:      wc.mods,
	})
}

// close asks the engine to close the browser. The WebCore stays alive until
// closed reports true.
func (wc *WebCore) close() {
	if wc.closing {
		return
	}
	wc.closing = true
	if wc.browser != nil {
		wc.browser.Close(false)
	}
	wc.log.Debug("close requested")
}

func (wc *WebCore) closed() bool {
	return wc.browser == nil || wc.browser.Closed()
}

// release frees the texture once the engine delivers no more callbacks.
func (wc *WebCore) release() {
	wc.renderer.release()
	wc.log.Debug("released")
}

func buttonModifier(btn MouseButton) Modifiers {
	switch btn {
	case MouseLeft:
		return ModLeftButton
	case MouseMiddle:
		return ModMiddleButton
	case MouseRight:
		return ModRightButton
	default:
		return 0
	}
}

func keyModifier(vk int) Modifiers {
	switch vk {
	case vkShift:
		return ModShift
	case vkControl:
		return ModControl
	case vkMenu:
		return ModAlt
	case vkLWin, vkRWin:
		return ModCommand
	default:
		return 0
	}
}
