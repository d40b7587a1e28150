// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// LocaTable is a materialized per-glyph byte-offset index into glyf.
// Offsets[gid] and Offsets[gid+1] bound glyph gid's bytes; an empty range
// denotes a blank glyph (e.g. the space character).
type LocaTable struct {
	Offsets []uint32
}

// Range returns the [start, end) byte range of glyph gid within glyf.
func (t LocaTable) Range(gid uint16) (start, end uint32) {
	return t.Offsets[gid], t.Offsets[gid+1]
}

func parseLoca(f *FontFile) (LocaTable, error) {
	d, err := f.table("loca")
	if err != nil {
		return LocaTable{}, err
	}
	glyfInfo := f.tables["glyf"]
	n := f.maxp.NumGlyphs + 1
	offsets := make([]uint32, n)
	switch f.head.IndexToLocFormat {
	case Short:
		for i := 0; i < n; i++ {
			v, err := d.u16(2 * i)
			if err != nil {
				return LocaTable{}, err
			}
			offsets[i] = uint32(v) * 2
		}
	default:
		for i := 0; i < n; i++ {
			v, err := d.u32(4 * i)
			if err != nil {
				return LocaTable{}, err
			}
			offsets[i] = v
		}
	}
	for i := 1; i < n; i++ {
		if offsets[i] < offsets[i-1] {
			return LocaTable{}, errLocaInconsistent()
		}
	}
	if n > 0 && offsets[n-1] > glyfInfo.Length {
		return LocaTable{}, errLocaInconsistent()
	}
	return LocaTable{Offsets: offsets}, nil
}
