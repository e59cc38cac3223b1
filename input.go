// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputEvent is an input event routed to one browser with Runtime.Input.
type InputEvent interface {
	dispatch(wc *WebCore)
}

// MouseMoveEvent moves the cursor to view coordinates (X, Y).
type MouseMoveEvent struct {
	X, Y int
}

func (e MouseMoveEvent) dispatch(wc *WebCore) { wc.MouseMove(e.X, e.Y) }

// MouseButtonEvent presses or releases a button at the last cursor position.
type MouseButtonEvent struct {
	Button   MouseButton
	Released bool
}

func (e MouseButtonEvent) dispatch(wc *WebCore) { wc.MouseClick(e.Button, e.Released) }

// MouseWheelEvent scrolls by pixel deltas.
type MouseWheelEvent struct {
	DeltaX, DeltaY int
}

func (e MouseWheelEvent) dispatch(wc *WebCore) { wc.MouseWheel(e.DeltaX, e.DeltaY) }

// KeyPressEvent presses or releases a key, identified by its Windows
// virtual-key code.
type KeyPressEvent struct {
	Key     int
	Pressed bool
}

func (e KeyPressEvent) dispatch(wc *WebCore) { wc.KeyPress(e.Key, e.Pressed) }

// CharEvent types one character.
type CharEvent struct {
	Char rune
}

func (e CharEvent) dispatch(wc *WebCore) { wc.CharInput(e.Char) }

// wheelScale converts ebiten wheel ticks to pixels.
const wheelScale = 100

// inputState is the slice of ebiten input the router reads each tick.
type inputState interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	Wheel() (x, y float64)
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	AppendInputChars(runes []rune) []rune
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenInput) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenInput) AppendInputChars(runes []rune) []rune { return ebiten.AppendInputChars(runes) }

var routedButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseLeft},
	{ebiten.MouseButtonMiddle, MouseMiddle},
	{ebiten.MouseButtonRight, MouseRight},
}

type routedView struct {
	handle Handle
	bounds image.Rectangle

	cursor  image.Point
	hovered bool
	pressed [len(routedButtons)]bool
}

// InputRouter forwards ebiten input to browsers by screen region. Mouse and
// wheel input go to the topmost view under the cursor, keyboard input to the
// focused view. Clicking a view focuses it.
//
// Views are addressed by Handle, so a view whose browser was removed is
// detached on the next Poll without touching the browser.
type InputRouter struct {
	rt    *Runtime
	in    inputState
	views []*routedView
	focus Handle

	down  [len(routedButtons)]bool
	keys  []ebiten.Key
	chars []rune
}

// NewInputRouter returns a router reading ebiten's input state.
func NewInputRouter(rt *Runtime) *InputRouter {
	return &InputRouter{rt: rt, in: ebitenInput{}}
}

// Attach routes input inside bounds (screen coordinates) to h. Views attached
// later sit on top. Attaching a handle again updates its bounds.
func (ir *InputRouter) Attach(h Handle, bounds image.Rectangle) {
	for _, v := range ir.views {
		if v.handle == h {
			v.bounds = bounds
			return
		}
	}
	ir.views = append(ir.views, &routedView{handle: h, bounds: bounds})
}

// Detach stops routing input to h.
func (ir *InputRouter) Detach(h Handle) {
	for i, v := range ir.views {
		if v.handle == h {
			ir.views = append(ir.views[:i], ir.views[i+1:]...)
			break
		}
	}
	if ir.focus == h {
		ir.focus = Handle{}
	}
}

// SetFocus sends keyboard input to h regardless of the cursor position.
func (ir *InputRouter) SetFocus(h Handle) {
	ir.focus = h
}

// Focus returns the focused handle, or the zero Handle.
func (ir *InputRouter) Focus() Handle {
	return ir.focus
}

// Poll reads this tick's input and forwards it. Call it once per frame
// before Runtime.Update.
func (ir *InputRouter) Poll() {
	cursor := image.Pt(ir.in.CursorPosition())
	top := ir.viewAt(cursor)

	var pressed [len(routedButtons)]bool
	for i, b := range routedButtons {
		down := ir.in.IsMouseButtonPressed(b.ebiten)
		pressed[i] = down && !ir.down[i]
		ir.down[i] = down
	}

	for _, v := range append([]*routedView(nil), ir.views...) {
		if !ir.routeMouse(v, v == top, cursor, pressed) {
			ir.Detach(v.handle)
		}
	}

	if !ir.focus.Valid() {
		return
	}
	ir.keys = ir.in.AppendJustPressedKeys(ir.keys[:0])
	for _, k := range ir.keys {
		if vk := VirtualKeyCode(k); vk != 0 {
			ir.send(ir.focus, KeyPressEvent{Key: vk, Pressed: true})
		}
	}
	ir.chars = ir.in.AppendInputChars(ir.chars[:0])
	for _, r := range ir.chars {
		ir.send(ir.focus, CharEvent{Char: r})
	}
	ir.keys = ir.in.AppendJustReleasedKeys(ir.keys[:0])
	for _, k := range ir.keys {
		if vk := VirtualKeyCode(k); vk != 0 {
			ir.send(ir.focus, KeyPressEvent{Key: vk, Pressed: false})
		}
	}
}

// routeMouse forwards mouse input for one view. pressed flags the buttons that
// went down this tick. Buttons pressed inside a view are released to that view
// even if the cursor has left it. It returns false when the view's handle no
// longer resolves.
func (ir *InputRouter) routeMouse(v *routedView, hovered bool, cursor image.Point, pressed [len(routedButtons)]bool) bool {
	local := cursor.Sub(v.bounds.Min)
	if hovered && (!v.hovered || local != v.cursor) {
		if !ir.rt.Input(v.handle, MouseMoveEvent{X: local.X, Y: local.Y}) {
			return false
		}
		v.cursor = local
	}
	v.hovered = hovered

	for i, b := range routedButtons {
		switch {
		case pressed[i] && hovered:
			v.pressed[i] = true
			ir.focus = v.handle
			if !ir.rt.Input(v.handle, MouseButtonEvent{Button: b.button}) {
				return false
			}
		case !ir.down[i] && v.pressed[i]:
			v.pressed[i] = false
			if !ir.rt.Input(v.handle, MouseButtonEvent{Button: b.button, Released: true}) {
				return false
			}
		}
	}

	if hovered {
		if dx, dy := ir.in.Wheel(); dx != 0 || dy != 0 {
			ev := MouseWheelEvent{DeltaX: int(dx * wheelScale), DeltaY: int(dy * wheelScale)}
			if !ir.rt.Input(v.handle, ev) {
				return false
			}
		}
	}
	return true
}

func (ir *InputRouter) send(h Handle, ev InputEvent) {
	if !ir.rt.Input(h, ev) {
		ir.Detach(h)
	}
}

func (ir *InputRouter) viewAt(p image.Point) *routedView {
	for i := len(ir.views) - 1; i >= 0; i-- {
		if p.In(ir.views[i].bounds) {
			return ir.views[i]
		}
	}
	return nil
}
