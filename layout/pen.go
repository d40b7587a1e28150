// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package layout advances a pen across a sequence of code points,
// yielding each glyph's id, pixel origin, and tessellated mesh.
package layout

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/wireglyph/glyphmesh/sfnt"
	"github.com/wireglyph/glyphmesh/tessellate"
)

// Options are optional arguments to Run, following the same
// zero-value-means-default convention as truetype.Options.
type Options struct {
	// FontSizePx is the requested glyph size in pixels.
	//
	// A zero value means to use 16 pixels.
	FontSizePx float64

	// LetterSpacing is extra space, in pixels, inserted after every
	// glyph's advance.
	LetterSpacing float64

	// LineGap is the pixel distance a newline advances the origin's Y
	// coordinate. A zero value means to use the font's own LineMetrics
	// line gap, scaled to pixels.
	LineGap float64

	// Tessellate controls the tolerance/padding passed to the
	// tessellator for every glyph's mesh.
	Tessellate tessellate.Options
}

func (o *Options) fontSizePx() float64 {
	if o != nil && o.FontSizePx > 0 {
		return o.FontSizePx
	}
	return 16
}

func (o *Options) letterSpacing() float64 {
	if o == nil {
		return 0
	}
	return o.LetterSpacing
}

// Placement is one glyph's position and mesh, as yielded by Run.
type Placement struct {
	Gid    uint16
	Origin fixed.Point26_6
	Mesh   tessellate.StencilCoverMesh
	Wire   tessellate.WireframeMesh
}

// Run iterates the code points of s, advancing a pen starting at origin,
// and yields one Placement per non-newline code point. Kerning is
// applied between consecutive glyphs when the font carries a kern table.
// Per spec §4.K, origin is the baseline/left-edge anchor; converting a
// glyph's font-unit coordinates to pixel space, including the Y-flip, is
// left to the consumer, since the pen here only tracks origins.
//
// Grounded on freetype.Context.DrawString's prev/hasPrev kerning-aware
// pen loop, restructured to return (gid, origin, mesh) tuples instead of
// drawing into an image.
func Run(f *sfnt.FontFile, s string, origin fixed.Point26_6, opts *Options) ([]Placement, error) {
	scale := opts.fontSizePx() / float64(f.UnitsPerEm())
	spacing := toFixed(opts.letterSpacing())
	lineGap := toFixed(lineGapPx(f, opts))

	tessOpts := opts.tessellateOptions()
	var placements []Placement
	pen := origin
	prev, hasPrev := uint16(0), false
	for _, r := range s {
		if r == '\n' {
			pen.X = origin.X
			pen.Y += lineGap
			hasPrev = false
			continue
		}
		gid, err := f.MapCodePoint(uint32(r))
		if err != nil {
			return nil, err
		}
		if hasPrev {
			pen.X += toFixed(float64(f.Kerning(prev, gid)) * scale)
		}

		outline, err := f.Outline(gid)
		if err != nil {
			return nil, err
		}
		placements = append(placements, Placement{
			Gid:    gid,
			Origin: pen,
			Mesh:   tessellate.TessellateStencilCover(outline, &tessOpts),
			Wire:   tessellate.TessellateWireframe(outline, &tessOpts),
		})

		adv := float64(f.HMetric(gid).AdvanceWidth) * scale
		pen.X += toFixed(adv) + spacing
		prev, hasPrev = gid, true
	}
	return placements, nil
}

func (o *Options) tessellateOptions() tessellate.Options {
	if o == nil {
		return tessellate.Options{}
	}
	return o.Tessellate
}

func lineGapPx(f *sfnt.FontFile, o *Options) float64 {
	if o != nil && o.LineGap > 0 {
		return o.LineGap
	}
	scale := o.fontSizePx() / float64(f.UnitsPerEm())
	return float64(f.LineMetrics().LineGap) * scale
}

func toFixed(px float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(px * 64))
}
