// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a GPU texture holding 8-bit RGBA pixels. Textures are not safe
// for concurrent use; they belong to the graphics thread.
type Texture interface {
	// ID is non-zero for every live texture.
	ID() uint32
	Size() (width, height int)
	// Resize reallocates the texture. Contents are undefined until the next write.
	Resize(width, height int)
	// WritePixels replaces the whole texture. len(rgba) must be 4*width*height.
	WritePixels(rgba []byte)
	// WriteRegion replaces r, which must lie inside the texture.
	// len(rgba) must be 4*r.Dx()*r.Dy().
	WriteRegion(r image.Rectangle, rgba []byte)
	Dispose()
}

// Graphics creates textures.
type Graphics interface {
	NewTexture(width, height int) Texture
}

var lastTextureID atomic.Uint32

func nextTextureID() uint32 {
	return lastTextureID.Add(1)
}

// EbitenGraphics creates textures backed by ebiten images.
type EbitenGraphics struct{}

// NewEbitenGraphics returns the Graphics used inside an ebiten game.
func NewEbitenGraphics() *EbitenGraphics {
	return &EbitenGraphics{}
}

func (g *EbitenGraphics) NewTexture(width, height int) Texture {
	return &EbitenTexture{
		id:    nextTextureID(),
		image: ebiten.NewImage(width, height),
	}
}

// EbitenTexture is a Texture drawn with ebiten.
type EbitenTexture struct {
	id    uint32
	image *ebiten.Image
}

func (t *EbitenTexture) ID() uint32 { return t.id }

func (t *EbitenTexture) Size() (int, int) {
	if t.image == nil {
		return 0, 0
	}
	b := t.image.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the ebiten image to draw. It changes when the texture is resized.
func (t *EbitenTexture) Image() *ebiten.Image {
	return t.image
}

func (t *EbitenTexture) Resize(width, height int) {
	if t.image != nil {
		t.image.Deallocate()
	}
	t.image = ebiten.NewImage(width, height)
}

func (t *EbitenTexture) WritePixels(rgba []byte) {
	if t.image == nil {
		return
	}
	t.image.WritePixels(rgba)
}

func (t *EbitenTexture) WriteRegion(r image.Rectangle, rgba []byte) {
	if t.image == nil {
		return
	}
	t.image.SubImage(r).(*ebiten.Image).WritePixels(rgba)
}

func (t *EbitenTexture) Dispose() {
	if t.image == nil {
		return
	}
	t.image.Deallocate()
	t.image = nil
}

// MemoryGraphics creates CPU-side textures. It is used by headless hosts
// and tests.
type MemoryGraphics struct{}

func (MemoryGraphics) NewTexture(width, height int) Texture {
	return &MemoryTexture{
		id:  nextTextureID(),
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// MemoryTexture is a Texture stored in an *image.RGBA.
type MemoryTexture struct {
	id       uint32
	img      *image.RGBA
	writes   int
	disposed bool
}

func (t *MemoryTexture) ID() uint32 { return t.id }

func (t *MemoryTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *MemoryTexture) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (t *MemoryTexture) WritePixels(rgba []byte) {
	copy(t.img.Pix, rgba)
	t.writes++
}

func (t *MemoryTexture) WriteRegion(r image.Rectangle, rgba []byte) {
	rowLen := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		dst := t.img.PixOffset(r.Min.X, r.Min.Y+y)
		copy(t.img.Pix[dst:dst+rowLen], rgba[y*rowLen:(y+1)*rowLen])
	}
	t.writes++
}

func (t *MemoryTexture) Dispose() {
	t.disposed = true
}

// At returns the pixel at (x, y).
func (t *MemoryTexture) At(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// Writes returns how many uploads the texture received.
func (t *MemoryTexture) Writes() int { return t.writes }

// Disposed reports whether Dispose was called.
func (t *MemoryTexture) Disposed() bool { return t.disposed }
