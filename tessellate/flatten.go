// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package tessellate

import (
	"math"

	"github.com/wireglyph/glyphmesh/sfnt"
)

// subdivisionDepthCap bounds de Casteljau recursion to at most 4096 chords
// per curve.
const subdivisionDepthCap = 12

// Flattened is a polyline per contour: Points holds every contour's
// flattened vertices back to back, and Ends holds, for each contour, the
// index (into Points) of its last vertex — mirroring sfnt.Outline's
// Contours convention so a caller can reuse contour-range logic.
type Flattened struct {
	Points []sfnt.Vec2
	Ends   []int
}

// Flatten walks a canonical outline's on/off-curve point stream and
// produces one closed polyline per contour, replacing every quadratic
// Bézier segment with adaptively subdivided straight chords. The walk
// state machine (pending anchor, pending off-curve control, implicit
// start/midpoint synthesis) is grounded on
// (*face).drawContour in the teacher's truetype/face.go, which performs
// the same walk to feed a scanline rasterizer's Add1/Add2 calls; here
// each Add1/Add2 is replaced by a straight-line emit or an adaptive
// subdivision, since this package's consumer wants an explicit polyline
// rather than a rasterized mask.
func Flatten(o *sfnt.Outline, opts *Options) Flattened {
	tol := opts.tolerance()
	var out Flattened
	if o.Empty() {
		return out
	}
	for c := range o.Contours {
		start, end := o.ContourRange(c)
		pts := flattenContour(o.Points[start:end+1], o.OnCurve[start:end+1], tol)
		out.Points = append(out.Points, pts...)
		out.Ends = append(out.Ends, len(out.Points)-1)
	}
	return out
}

func flattenContour(points []sfnt.Vec2, onCurve []bool, tol float64) []sfnt.Vec2 {
	n := len(points)
	if n == 0 {
		return nil
	}

	var start sfnt.Vec2
	var others []sfnt.Vec2
	var othersOn []bool
	if onCurve[0] {
		start, others, othersOn = points[0], points[1:], onCurve[1:]
	} else {
		last := points[n-1]
		if onCurve[n-1] {
			start, others, othersOn = last, points[:n-1], onCurve[:n-1]
		} else {
			start = midpoint(points[0], last)
			others, othersOn = points, onCurve
		}
	}

	out := []sfnt.Vec2{start}
	anchor := start
	q0, on0 := start, true
	for i, q := range others {
		on := othersOn[i]
		switch {
		case on && on0:
			out = append(out, q)
			anchor = q
		case on && !on0:
			flattenQuad(anchor, q0, q, tol, subdivisionDepthCap, &out)
			anchor = q
		case !on && on0:
			// No-op: q becomes the pending off-curve control.
		default: // !on && !on0: implicit on-curve midpoint.
			mid := midpoint(q0, q)
			flattenQuad(anchor, q0, mid, tol, subdivisionDepthCap, &out)
			anchor = mid
		}
		q0, on0 = q, on
	}

	// Close the contour back to start.
	var closing []sfnt.Vec2
	if on0 {
		closing = []sfnt.Vec2{start}
	} else {
		flattenQuad(anchor, q0, start, tol, subdivisionDepthCap, &closing)
	}
	// Drop the final vertex: it duplicates start, which callers address via
	// the closing (end -> s) index instead of a repeated coordinate.
	if len(closing) > 0 {
		out = append(out, closing[:len(closing)-1]...)
	}
	return out
}

// flattenQuad adaptively subdivides the quadratic Bézier (p0, ctrl, p1),
// appending terminal chord endpoints to *out. p0 is assumed already
// present in *out.
func flattenQuad(p0, ctrl, p1 sfnt.Vec2, tol float64, depth int, out *[]sfnt.Vec2) {
	if depth <= 0 || chordDeviation(p0, ctrl, p1) <= tol {
		*out = append(*out, p1)
		return
	}
	p01 := midpoint(p0, ctrl)
	p12 := midpoint(ctrl, p1)
	p012 := midpoint(p01, p12)
	flattenQuad(p0, p01, p012, tol, depth-1, out)
	flattenQuad(p012, p12, p1, tol, depth-1, out)
}

// chordDeviation returns the perpendicular distance from ctrl to the chord
// (p0, p1).
func chordDeviation(p0, ctrl, p1 sfnt.Vec2) float64 {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(ctrl.X-p0.X, ctrl.Y-p0.Y)
	}
	cross := dx*(ctrl.Y-p0.Y) - dy*(ctrl.X-p0.X)
	return math.Abs(cross) / length
}

func midpoint(a, b sfnt.Vec2) sfnt.Vec2 {
	return sfnt.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
