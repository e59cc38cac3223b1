// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import "image"

// convertBGRA swaps the engine's BGRA rows into the RGBA order textures
// expect. Alpha is already premultiplied on both sides.
func convertBGRA(dst, src []byte, width, height int) {
	n := width * height * 4
	for i := 0; i < n; i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

// convertBGRARegion converts r out of a BGRA buffer that is stride pixels
// wide into a tightly packed RGBA slice of r.Dx()*r.Dy() pixels.
func convertBGRARegion(dst, src []byte, stride int, r image.Rectangle) {
	d := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		s := (y*stride + r.Min.X) * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			dst[d+0] = src[s+2]
			dst[d+1] = src[s+1]
			dst[d+2] = src[s+0]
			dst[d+3] = src[s+3]
			d += 4
			s += 4
		}
	}
}

// partialDirty returns the dirty rects clipped to bounds, or nil when the
// whole view must be uploaded anyway.
func partialDirty(dirty []image.Rectangle, bounds image.Rectangle) []image.Rectangle {
	if len(dirty) == 0 {
		return nil
	}
	var out []image.Rectangle
	area := 0
	for _, r := range dirty {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		if r == bounds {
			return nil
		}
		area += r.Dx() * r.Dy()
		out = append(out, r)
	}
	// Overlapping rects covering most of the view cost more than one upload.
	if area*2 >= bounds.Dx()*bounds.Dy() {
		return nil
	}
	return out
}
