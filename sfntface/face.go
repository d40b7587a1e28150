// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package sfntface adapts an sfnt.FontFile to golang.org/x/image/font's
// Face interface, far enough to report metrics to a layout consumer.
// Mask rasterization is not this library's job (spec §1's GPU-boundary
// split hands that to the tessellator and the consumer's GPU pipeline),
// so Glyph always reports ok=false.
package sfntface

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/wireglyph/glyphmesh/sfnt"
)

// Options mirror truetype.Options' defaulting convention for a
// rasterization-free face: only Size and DPI are meaningful here.
type Options struct {
	// Size is the font size in points, as in "a 10 point font size".
	//
	// A zero value means to use a 12 point font size.
	Size float64

	// DPI is the dots-per-inch resolution.
	//
	// A zero value means to use 72 DPI.
	DPI float64
}

func (o *Options) size() float64 {
	if o != nil && o.Size > 0 {
		return o.Size
	}
	return 12
}

func (o *Options) dpi() float64 {
	if o != nil && o.DPI > 0 {
		return o.DPI
	}
	return 72
}

// face adapts *sfnt.FontFile to font.Face.
type face struct {
	f     *sfnt.FontFile
	scale fixed.Int26_6
}

// NewFace returns a font.Face backed by f, scaled per opts.
func NewFace(f *sfnt.FontFile, opts *Options) font.Face {
	return &face{
		f:     f,
		scale: fixed.Int26_6(0.5 + (opts.size() * opts.dpi() * 64 / 72)),
	}
}

// Close satisfies font.Face.
func (a *face) Close() error { return nil }

// Metrics satisfies font.Face, scaling the font's hhea-derived line
// metrics into the requested size.
func (a *face) Metrics() font.Metrics {
	lm := a.f.LineMetrics()
	ascent := a.scaleFUnit(int(lm.Ascent))
	descent := -a.scaleFUnit(int(lm.Descent))
	return font.Metrics{
		Height:     ascent + descent + a.scaleFUnit(int(lm.LineGap)),
		Ascent:     ascent,
		Descent:    descent,
		XHeight:    ascent,
		CapHeight:  ascent,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// Kern satisfies font.Face, scaling the font's kern table (if any) into
// the requested size.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 {
	i0, err := a.f.MapCodePoint(uint32(r0))
	if err != nil {
		return 0
	}
	i1, err := a.f.MapCodePoint(uint32(r1))
	if err != nil {
		return 0
	}
	return a.scaleFUnit(int(a.f.Kerning(i0, i1)))
}

// Glyph satisfies font.Face. Rasterization is the GPU boundary's job per
// spec §1, so this adapter never produces a mask.
func (a *face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}

// GlyphBounds satisfies font.Face.
func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	gid, err := a.f.MapCodePoint(uint32(r))
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	outline, err := a.f.Outline(gid)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	if outline.Empty() {
		return fixed.Rectangle26_6{}, a.advance(gid), true
	}
	minX, minY := outline.Points[0].X, outline.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range outline.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: a.scaleFUnit(int(minX)), Y: -a.scaleFUnit(int(maxY))},
		Max: fixed.Point26_6{X: a.scaleFUnit(int(maxX)), Y: -a.scaleFUnit(int(minY))},
	}, a.advance(gid), true
}

// GlyphAdvance satisfies font.Face.
func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	gid, err := a.f.MapCodePoint(uint32(r))
	if err != nil {
		return 0, false
	}
	return a.advance(gid), true
}

func (a *face) advance(gid uint16) fixed.Int26_6 {
	return a.scaleFUnit(int(a.f.HMetric(gid).AdvanceWidth))
}

func (a *face) scaleFUnit(x int) fixed.Int26_6 {
	return fixed.Int26_6(x) * a.scale / fixed.Int26_6(a.f.UnitsPerEm())
}
