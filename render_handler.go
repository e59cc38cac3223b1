// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"image"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RenderHandler turns paint callbacks into uploads of one texture and answers
// the engine's view size queries.
//
// It has no locking: paints and compositor reads both happen on the graphics
// thread that pumps Runtime.Update.
type RenderHandler struct {
	gfx Graphics
	tex Texture

	// Declared view size. Only resize changes it; paints never do.
	width  int
	height int

	rgba     []byte
	paints   int
	released bool

	onPaint func(resized bool)
	log     logrus.FieldLogger
	warn    rate.Sometimes
}

func newRenderHandler(gfx Graphics, width, height int, log logrus.FieldLogger) *RenderHandler {
	return &RenderHandler{
		gfx:    gfx,
		width:  width,
		height: height,
		log:    log,
		warn:   rate.Sometimes{First: 3, Interval: 10 * time.Second},
	}
}

// init creates the texture at the declared size.
func (h *RenderHandler) init() {
	if h.tex != nil {
		return
	}
	h.tex = h.gfx.NewTexture(h.width, h.height)
}

func (h *RenderHandler) resize(width, height int) {
	h.width = width
	h.height = height
}

// release disposes the texture. Later paints are ignored.
func (h *RenderHandler) release() {
	if h.released {
		return
	}
	h.released = true
	if h.tex != nil {
		h.tex.Dispose()
	}
	h.rgba = nil
}

// GetViewRect returns the most recently declared view size.
func (h *RenderHandler) GetViewRect() image.Rectangle {
	return image.Rect(0, 0, h.width, h.height)
}

// OnPaint uploads a BGRA frame into the texture. A frame whose size differs
// from the texture resizes the texture to the frame.
func (h *RenderHandler) OnPaint(kind PaintElementType, dirty []image.Rectangle, buffer []byte, width, height int) {
	if h.released || h.tex == nil || kind != PaintView {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	if len(buffer) < width*height*4 {
		h.warn.Do(func() {
			h.log.WithFields(logrus.Fields{
				"width":  width,
				"height": height,
				"bytes":  len(buffer),
			}).Warn("dropping short paint buffer")
		})
		return
	}

	resized := false
	if tw, th := h.tex.Size(); tw != width || th != height {
		h.log.WithFields(logrus.Fields{
			"from": image.Pt(tw, th),
			"to":   image.Pt(width, height),
		}).Debug("resizing texture to paint")
		h.tex.Resize(width, height)
		resized = true
	}

	var regions []image.Rectangle
	if !resized {
		regions = partialDirty(dirty, image.Rect(0, 0, width, height))
	}
	if regions == nil {
		n := width * height * 4
		if cap(h.rgba) < n {
			h.rgba = make([]byte, n)
		}
		h.rgba = h.rgba[:n]
		convertBGRA(h.rgba, buffer, width, height)
		h.tex.WritePixels(h.rgba)
	} else {
		for _, r := range regions {
			n := r.Dx() * r.Dy() * 4
			if cap(h.rgba) < n {
				h.rgba = make([]byte, n)
			}
			convertBGRARegion(h.rgba[:n], buffer, width, r)
			h.tex.WriteRegion(r, h.rgba[:n])
		}
	}

	h.paints++
	if h.onPaint != nil {
		h.onPaint(resized)
	}
}

// Texture returns the texture for compositing. It is nil before init.
func (h *RenderHandler) Texture() Texture {
	return h.tex
}

// TextureID returns the texture id, or 0 before init.
func (h *RenderHandler) TextureID() uint32 {
	if h.tex == nil {
		return 0
	}
	return h.tex.ID()
}

// Paints returns how many frames were uploaded.
func (h *RenderHandler) Paints() int {
	return h.paints
}

var _ ViewRenderer = (*RenderHandler)(nil)
