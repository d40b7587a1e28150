// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// kernTable holds classic-format (version 0, horizontal) kerning pairs,
// sorted by the combined (left<<16 | right) key so lookups can binary
// search. The kern table is optional; fonts without one report zero
// kerning for every pair.
type kernTable struct {
	data  reader
	pairs int
}

// parseKern reads a classic "kern" table if present. Any format it does
// not understand (version != 0, more than one subtable, non-horizontal
// coverage) is treated the same as an absent table: kerning is simply
// unavailable, not a decode error, since kerning is ancillary to layout.
func parseKern(f *FontFile) kernTable {
	d, err := f.table("kern")
	if err != nil {
		return kernTable{}
	}
	if len(d) < 18 {
		return kernTable{}
	}
	version, err := d.u16(0)
	if err != nil || version != 0 {
		return kernTable{}
	}
	numTables, err := d.u16(2)
	if err != nil || numTables != 1 {
		return kernTable{}
	}
	// Subtable header (starting at byte 4): version, length, coverage,
	// nPairs, searchRange, entrySelector, rangeShift, then the pairs
	// themselves at byte 18.
	length, err := d.u16(6)
	if err != nil {
		return kernTable{}
	}
	coverage, err := d.u16(8)
	if err != nil || coverage != 0x0001 {
		return kernTable{}
	}
	nPairs, err := d.u16(10)
	if err != nil || 6*int(nPairs) != int(length)-14 {
		return kernTable{}
	}
	return kernTable{data: d, pairs: int(nPairs)}
}

// Kerning returns the kerning adjustment, in font units, to apply between
// left and right, or zero if the font has no kern table or the pair is
// not listed.
func (t kernTable) Kerning(left, right uint16) int16 {
	if t.pairs == 0 {
		return 0
	}
	want := uint32(left)<<16 | uint32(right)
	lo, hi := 0, t.pairs
	for lo < hi {
		mid := (lo + hi) / 2
		g, err := t.data.u32(18 + 6*mid)
		if err != nil {
			return 0
		}
		switch {
		case g < want:
			lo = mid + 1
		case g > want:
			hi = mid
		default:
			v, err := t.data.i16(18 + 6*mid + 4)
			if err != nil {
				return 0
			}
			return v
		}
	}
	return 0
}

// Kerning returns the kerning adjustment, in font units, between two
// glyphs, from the font's "kern" table (grounded on golang-freetype's
// classic-format reader; see SPEC_FULL.md's supplemented features).
func (f *FontFile) Kerning(left, right uint16) int16 {
	return f.kern.Kerning(left, right)
}
