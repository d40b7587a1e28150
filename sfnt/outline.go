// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// Vec2 is a 2-D coordinate pair in font units.
type Vec2 struct {
	X, Y float64
}

// Outline is the canonical per-glyph geometry: three parallel arrays
// rather than an object per point, so a read-only view can be handed to
// the tessellator without per-point allocation (see DESIGN.md's "canonical
// outline as a value type" note).
//
// Points holds every point of every contour, in order. OnCurve carries a
// parallel on-/off-curve bit. Contours holds, for each contour, the index
// of its last point in Points; it is monotonically non-decreasing and its
// last entry equals len(Points)-1 when the outline is non-empty.
type Outline struct {
	Points   []Vec2
	OnCurve  []bool
	Contours []int
}

// Empty reports whether the outline has no geometry (e.g. the space
// glyph).
func (o *Outline) Empty() bool {
	return o == nil || len(o.Points) == 0
}

// ContourRange returns the [start, end] point index range (both
// inclusive) of the i'th contour.
func (o *Outline) ContourRange(i int) (start, end int) {
	if i == 0 {
		return 0, o.Contours[0]
	}
	return o.Contours[i-1] + 1, o.Contours[i]
}

// Outline decodes and returns gid's canonical outline, memoizing the
// result. An empty range in loca yields an empty outline (also cached).
func (f *FontFile) Outline(gid uint16) (*Outline, error) {
	if int(gid) >= f.maxp.NumGlyphs {
		return nil, errGidOutOfRange(gid)
	}
	if o := f.cachedOutline(gid); o != nil {
		return o, nil
	}
	o, err := f.decodeOutline(gid, 0, make(map[uint16]bool))
	if err != nil {
		return nil, err
	}
	f.storeOutline(gid, o)
	return o, nil
}

func (f *FontFile) cachedOutline(gid uint16) *Outline {
	f.outlineMu.Lock()
	defer f.outlineMu.Unlock()
	return f.outlineCache[gid]
}

func (f *FontFile) storeOutline(gid uint16, o *Outline) {
	f.outlineMu.Lock()
	defer f.outlineMu.Unlock()
	if existing, ok := f.outlineCache[gid]; ok {
		_ = existing
		return
	}
	f.outlineCache[gid] = o
}
