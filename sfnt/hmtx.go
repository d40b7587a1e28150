// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// HMetric holds the horizontal metrics of a single glyph.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// HmtxTable holds the materialized advance-width and left-side-bearing
// arrays, honoring the "last advance repeats" rule for trailing glyphs.
type HmtxTable struct {
	advance []uint16
	lsb     []int16
}

// HMetric returns the horizontal metrics for the glyph with the given id,
// saturating the advance width to the last defined entry for gid values
// beyond numberOfHMetrics.
func (t HmtxTable) HMetric(gid uint16) HMetric {
	i := int(gid)
	adv := t.advance[len(t.advance)-1]
	if i < len(t.advance) {
		adv = t.advance[i]
	}
	var lsb int16
	if i < len(t.lsb) {
		lsb = t.lsb[i]
	}
	return HMetric{AdvanceWidth: adv, LeftSideBearing: lsb}
}

// HMetric returns the advance width and left-side bearing for gid,
// saturating the advance width for gid >= numberOfHMetrics.
func (f *FontFile) HMetric(gid uint16) HMetric {
	return f.hmtx.HMetric(gid)
}

func parseHmtx(f *FontFile) (HmtxTable, error) {
	d, err := f.table("hmtx")
	if err != nil {
		return HmtxTable{}, err
	}
	nhm := f.hhea.NumberOfHMetrics
	numGlyphs := f.maxp.NumGlyphs

	t := HmtxTable{
		advance: make([]uint16, nhm),
		lsb:     make([]int16, numGlyphs),
	}
	off := 0
	for i := 0; i < nhm; i++ {
		adv, err := d.u16(off)
		if err != nil {
			return HmtxTable{}, err
		}
		lsb, err := d.i16(off + 2)
		if err != nil {
			return HmtxTable{}, err
		}
		t.advance[i] = adv
		t.lsb[i] = lsb
		off += 4
	}
	for i := nhm; i < numGlyphs; i++ {
		lsb, err := d.i16(off)
		if err != nil {
			return HmtxTable{}, err
		}
		t.lsb[i] = lsb
		off += 2
	}
	return t, nil
}
