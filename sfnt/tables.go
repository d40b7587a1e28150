// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "sync"

// TableInfo is a table directory record: a byte range within the font file.
type TableInfo struct {
	Offset, Length uint32
}

// requiredTables lists the tags this decoder must find in order to map
// code points to glyph ids, locate glyph descriptions, and read metrics.
// Order matters only in that it fixes which MissingTable error is reported
// first for a font missing more than one.
var requiredTables = []string{"head", "maxp", "hhea", "hmtx", "loca", "glyf", "cmap"}

// FontFile owns the raw bytes of a parsed sfnt-wrapped TrueType font and
// every value derived from them. It is immutable after LoadFont returns,
// save for the insert-only outline cache and the cmap subtables, which
// are parsed once on first use.
type FontFile struct {
	data   []byte
	tables map[string]TableInfo

	head HeadData
	maxp MaxpData
	hhea HheaData
	loca LocaTable
	hmtx HmtxTable
	kern kernTable

	cmapOnce sync.Once
	cmapErr  error
	cmap     cmapTables

	outlineMu    sync.Mutex
	outlineCache map[uint16]*Outline
}

// table returns the raw bytes of the named table.
func (f *FontFile) table(tag string) (reader, error) {
	info, ok := f.tables[tag]
	if !ok {
		return nil, errMissingTable(tag)
	}
	end := info.Offset + info.Length
	if end < info.Offset || int(end) > len(f.data) {
		return nil, errBadHeader()
	}
	return reader(f.data[info.Offset:end]), nil
}

// LoadFont parses the sfnt table directory and the tables required to
// decode outlines, map code points, and read horizontal metrics. The cmap
// subtables themselves are parsed lazily, on first MapCodePoint call.
func LoadFont(data []byte) (*FontFile, error) {
	if len(data) < 12 {
		return nil, errBadHeader()
	}
	d := reader(data)
	// Scaler type at offset 0 is ignored; numTables at offset 4.
	numTables, err := d.u16(4)
	if err != nil {
		return nil, errBadHeader()
	}
	// Bytes 6:12 are searchRange, entrySelector, rangeShift — skipped.
	n := int(numTables)
	if 12+16*n > len(data) {
		return nil, errBadHeader()
	}
	tables := make(map[string]TableInfo, n)
	for i := 0; i < n; i++ {
		x := 12 + 16*i
		tagBytes, err := d.bytes(x, 4)
		if err != nil {
			return nil, errBadHeader()
		}
		// checksum at x+4:x+8 is ignored.
		offset, err := d.u32(x + 8)
		if err != nil {
			return nil, errBadHeader()
		}
		length, err := d.u32(x + 12)
		if err != nil {
			return nil, errBadHeader()
		}
		tables[string(tagBytes)] = TableInfo{Offset: offset, Length: length}
	}

	for _, tag := range requiredTables {
		if _, ok := tables[tag]; !ok {
			return nil, errMissingTable(tag)
		}
	}

	f := &FontFile{
		data:         data,
		tables:       tables,
		outlineCache: make(map[uint16]*Outline),
	}
	if f.head, err = parseHead(f); err != nil {
		return nil, err
	}
	if f.maxp, err = parseMaxp(f); err != nil {
		return nil, err
	}
	if f.hhea, err = parseHhea(f); err != nil {
		return nil, err
	}
	if f.loca, err = parseLoca(f); err != nil {
		return nil, err
	}
	if f.hmtx, err = parseHmtx(f); err != nil {
		return nil, err
	}
	f.kern = parseKern(f)
	return f, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *FontFile) NumGlyphs() int { return f.maxp.NumGlyphs }

// UnitsPerEm returns the number of font units spanning one em.
func (f *FontFile) UnitsPerEm() int { return f.head.UnitsPerEm }

// LineMetrics holds the font-wide vertical layout values from hhea.
type LineMetrics struct {
	Ascent, Descent, LineGap int16
}

// LineMetrics returns the font's ascent, descent, and line gap.
func (f *FontFile) LineMetrics() LineMetrics {
	return LineMetrics{Ascent: f.hhea.Ascent, Descent: f.hhea.Descent, LineGap: f.hhea.LineGap}
}
