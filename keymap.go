// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import "github.com/hajimehoshi/ebiten/v2"

// virtualKeys maps ebiten keys without a contiguous range to Windows
// virtual-key codes, which the engine expects on every platform.
var virtualKeys = map[ebiten.Key]int{
	ebiten.KeyBackspace:   0x08,
	ebiten.KeyTab:         0x09,
	ebiten.KeyEnter:       0x0D,
	ebiten.KeyNumpadEnter: 0x0D,
	ebiten.KeyEscape:      0x1B,
	ebiten.KeySpace:       0x20,
	ebiten.KeyPageUp:      0x21,
	ebiten.KeyPageDown:    0x22,
	ebiten.KeyEnd:         0x23,
	ebiten.KeyHome:        0x24,
	ebiten.KeyArrowLeft:   0x25,
	ebiten.KeyArrowUp:     0x26,
	ebiten.KeyArrowRight:  0x27,
	ebiten.KeyArrowDown:   0x28,
	ebiten.KeyPrintScreen: 0x2C,
	ebiten.KeyInsert:      0x2D,
	ebiten.KeyDelete:      0x2E,
	ebiten.KeyPause:       0x13,
	ebiten.KeyCapsLock:    0x14,
	ebiten.KeyNumLock:     0x90,
	ebiten.KeyScrollLock:  0x91,
	ebiten.KeyContextMenu: 0x5D,

	ebiten.KeyShift:        vkShift,
	ebiten.KeyShiftLeft:    vkShift,
	ebiten.KeyShiftRight:   vkShift,
	ebiten.KeyControl:      vkControl,
	ebiten.KeyControlLeft:  vkControl,
	ebiten.KeyControlRight: vkControl,
	ebiten.KeyAlt:          vkMenu,
	ebiten.KeyAltLeft:      vkMenu,
	ebiten.KeyAltRight:     vkMenu,
	ebiten.KeyMeta:         vkLWin,
	ebiten.KeyMetaLeft:     vkLWin,
	ebiten.KeyMetaRight:    vkRWin,

	ebiten.KeyF1:  0x70,
	ebiten.KeyF2:  0x71,
	ebiten.KeyF3:  0x72,
	ebiten.KeyF4:  0x73,
	ebiten.KeyF5:  0x74,
	ebiten.KeyF6:  0x75,
	ebiten.KeyF7:  0x76,
	ebiten.KeyF8:  0x77,
	ebiten.KeyF9:  0x78,
	ebiten.KeyF10: 0x79,
	ebiten.KeyF11: 0x7A,
	ebiten.KeyF12: 0x7B,

	ebiten.KeyNumpadMultiply: 0x6A,
	ebiten.KeyNumpadAdd:      0x6B,
	ebiten.KeyNumpadSubtract: 0x6D,
	ebiten.KeyNumpadDecimal:  0x6E,
	ebiten.KeyNumpadDivide:   0x6F,
	ebiten.KeyNumpadEqual:    0xBB,

	ebiten.KeySemicolon:     0xBA,
	ebiten.KeyEqual:         0xBB,
	ebiten.KeyComma:         0xBC,
	ebiten.KeyMinus:         0xBD,
	ebiten.KeyPeriod:        0xBE,
	ebiten.KeySlash:         0xBF,
	ebiten.KeyBackquote:     0xC0,
	ebiten.KeyBracketLeft:   0xDB,
	ebiten.KeyBackslash:     0xDC,
	ebiten.KeyIntlBackslash: 0xDC,
	ebiten.KeyBracketRight:  0xDD,
	ebiten.KeyQuote:         0xDE,
}

// VirtualKeyCode returns the Windows virtual-key code for k, or 0 when the
// engine has no code for it.
func VirtualKeyCode(k ebiten.Key) int {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return 0x41 + int(k-ebiten.KeyA)
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return 0x30 + int(k-ebiten.KeyDigit0)
	case k >= ebiten.KeyNumpad0 && k <= ebiten.KeyNumpad9:
		return 0x60 + int(k-ebiten.KeyNumpad0)
	}
	return virtualKeys[k]
}
