// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "sort"

// cmapGroup12 is one entry of a format 12 cmap subtable: a contiguous run
// of code points mapped to a contiguous run of glyph ids.
type cmapGroup12 struct {
	startChar, endChar, startGid uint32
}

// cmapSegment4 is one entry of a format 4 cmap subtable.
type cmapSegment4 struct {
	startCode, endCode       uint16
	idDelta                  uint16
	idRangeOffset            uint16
	idRangeOffsetFieldOffset int // absolute offset of this segment's idRangeOffset field, for range-offset dereference
}

// cmapTables holds whichever of format 12 / format 4 this font carries.
// Format 12 is consulted first per spec §4.F / §9 (it covers code points
// beyond the BMP; when both are present and disagree on the BMP, that is
// a font defect this decoder does not treat as fatal).
type cmapTables struct {
	groups12  []cmapGroup12
	segments4 []cmapSegment4
}

// ensureCmap lazily walks the cmap encoding records on first access,
// remembering the first format 12 and first format 4 subtable found.
func (f *FontFile) ensureCmap() error {
	f.cmapOnce.Do(func() {
		f.cmap, f.cmapErr = parseCmap(f)
	})
	return f.cmapErr
}

func parseCmap(f *FontFile) (cmapTables, error) {
	d, err := f.table("cmap")
	if err != nil {
		return cmapTables{}, err
	}
	numTables, err := d.u16(2)
	if err != nil {
		return cmapTables{}, err
	}
	var (
		have12, have4  bool
		offset12, off4 uint32
	)
	for i := 0; i < int(numTables); i++ {
		rec := 4 + 8*i
		// platformID, encodingID at rec, rec+2 are not consulted: spec's
		// precedence rule is purely by subtable format, not platform.
		subOff, err := d.u32(rec + 4)
		if err != nil {
			return cmapTables{}, err
		}
		format, err := d.u16(int(subOff))
		if err != nil {
			continue
		}
		switch format {
		case 12:
			if !have12 {
				have12, offset12 = true, subOff
			}
		case 4:
			if !have4 {
				have4, off4 = true, subOff
			}
		}
	}
	if !have12 && !have4 {
		return cmapTables{}, errUnsupportedCmap()
	}

	var t cmapTables
	if have12 {
		groups, err := parseCmapFormat12(d, int(offset12))
		if err != nil {
			return cmapTables{}, err
		}
		t.groups12 = groups
	}
	if have4 {
		segs, err := parseCmapFormat4(d, int(off4))
		if err != nil {
			return cmapTables{}, err
		}
		t.segments4 = segs
	}
	return t, nil
}

func parseCmapFormat12(d reader, off int) ([]cmapGroup12, error) {
	numGroups, err := d.u32(off + 12)
	if err != nil {
		return nil, err
	}
	groups := make([]cmapGroup12, numGroups)
	p := off + 16
	for i := range groups {
		startChar, err := d.u32(p)
		if err != nil {
			return nil, err
		}
		endChar, err := d.u32(p + 4)
		if err != nil {
			return nil, err
		}
		startGid, err := d.u32(p + 8)
		if err != nil {
			return nil, err
		}
		groups[i] = cmapGroup12{startChar: startChar, endChar: endChar, startGid: startGid}
		p += 12
	}
	return groups, nil
}

func parseCmapFormat4(d reader, off int) ([]cmapSegment4, error) {
	segCountX2, err := d.u16(off + 6)
	if err != nil {
		return nil, err
	}
	segCount := int(segCountX2) / 2
	// Header (14 bytes) then endCode[segCount], reservedPad(2),
	// startCode[segCount], idDelta[segCount], idRangeOffset[segCount],
	// glyphIdArray[...].
	endBase := off + 14
	startBase := endBase + int(segCountX2) + 2
	deltaBase := startBase + int(segCountX2)
	rangeBase := deltaBase + int(segCountX2)

	segs := make([]cmapSegment4, segCount)
	for i := 0; i < segCount; i++ {
		endCode, err := d.u16(endBase + 2*i)
		if err != nil {
			return nil, err
		}
		startCode, err := d.u16(startBase + 2*i)
		if err != nil {
			return nil, err
		}
		idDelta, err := d.u16(deltaBase + 2*i)
		if err != nil {
			return nil, err
		}
		idRangeOffset, err := d.u16(rangeBase + 2*i)
		if err != nil {
			return nil, err
		}
		segs[i] = cmapSegment4{
			startCode:                startCode,
			endCode:                  endCode,
			idDelta:                  idDelta,
			idRangeOffset:            idRangeOffset,
			idRangeOffsetFieldOffset: rangeBase + 2*i,
		}
	}
	return segs, nil
}

// MapCodePoint maps a Unicode code point to a glyph id, per §4.F: prefer a
// format 12 subtable, fall back to format 4, and return 0 (.notdef) if
// neither subtable has an entry for cp.
func (f *FontFile) MapCodePoint(cp uint32) (uint16, error) {
	if err := f.ensureCmap(); err != nil {
		return 0, err
	}
	if len(f.cmap.groups12) > 0 {
		groups := f.cmap.groups12
		i := sort.Search(len(groups), func(i int) bool { return groups[i].endChar >= cp })
		if i < len(groups) && groups[i].startChar <= cp && cp <= groups[i].endChar {
			return uint16(groups[i].startGid + (cp - groups[i].startChar)), nil
		}
	}
	if len(f.cmap.segments4) > 0 {
		return f.mapFormat4(cp), nil
	}
	return 0, nil
}

func (f *FontFile) mapFormat4(cp uint32) uint16 {
	if cp > 0xFFFF {
		return 0
	}
	c := uint16(cp)
	segs := f.cmap.segments4
	i := sort.Search(len(segs), func(i int) bool { return segs[i].endCode >= c })
	if i >= len(segs) {
		return 0
	}
	seg := segs[i]
	if seg.startCode > c {
		return 0
	}
	if seg.idRangeOffset == 0 {
		return uint16(c + seg.idDelta)
	}
	// addr(idRangeOffset[i]) + idRangeOffset[i] + (c - startCode)*2, all
	// relative to the start of the cmap table; idRangeOffsetFieldOffset is
	// that address, recorded when the segment was parsed.
	glyphArrayByteOffset := seg.idRangeOffsetFieldOffset + int(seg.idRangeOffset) + 2*int(c-seg.startCode)
	g, err := f.fullCmapReader().u16(glyphArrayByteOffset)
	if err != nil || g == 0 {
		return 0
	}
	return uint16(uint32(g) + uint32(seg.idDelta))
}

// fullCmapReader returns a reader over the whole cmap table, since format
// 4's idRangeOffset dereference is addressed relative to the field itself,
// which parseCmapFormat4 recorded as an absolute offset into that table.
func (f *FontFile) fullCmapReader() reader {
	info := f.tables["cmap"]
	end := info.Offset + info.Length
	return reader(f.data[info.Offset:end])
}
