// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// LocaFormat selects whether the loca table stores halved 16-bit offsets
// (Short) or full 32-bit byte offsets (Long).
type LocaFormat int

const (
	Short LocaFormat = iota
	Long
)

// HeadData holds the fields of the head table this decoder consults.
type HeadData struct {
	UnitsPerEm       int
	IndexToLocFormat LocaFormat
}

func parseHead(f *FontFile) (HeadData, error) {
	d, err := f.table("head")
	if err != nil {
		return HeadData{}, err
	}
	upe, err := d.u16(18)
	if err != nil {
		return HeadData{}, err
	}
	if upe == 0 {
		return HeadData{}, errBadHeader()
	}
	ilf, err := d.i16(50)
	if err != nil {
		return HeadData{}, err
	}
	format := Short
	if ilf != 0 {
		format = Long
	}
	return HeadData{UnitsPerEm: int(upe), IndexToLocFormat: format}, nil
}

// MaxpData holds the fields of the maxp table this decoder consults.
type MaxpData struct {
	NumGlyphs int
}

func parseMaxp(f *FontFile) (MaxpData, error) {
	d, err := f.table("maxp")
	if err != nil {
		return MaxpData{}, err
	}
	n, err := d.u16(4)
	if err != nil {
		return MaxpData{}, err
	}
	return MaxpData{NumGlyphs: int(n)}, nil
}

// HheaData holds the fields of the hhea table this decoder consults.
type HheaData struct {
	Ascent, Descent, LineGap int16
	NumberOfHMetrics         int
}

func parseHhea(f *FontFile) (HheaData, error) {
	d, err := f.table("hhea")
	if err != nil {
		return HheaData{}, err
	}
	ascent, err := d.i16(4)
	if err != nil {
		return HheaData{}, err
	}
	descent, err := d.i16(6)
	if err != nil {
		return HheaData{}, err
	}
	lineGap, err := d.i16(8)
	if err != nil {
		return HheaData{}, err
	}
	nhm, err := d.u16(34)
	if err != nil {
		return HheaData{}, err
	}
	if nhm == 0 || int(nhm) > f.maxp.NumGlyphs {
		return HheaData{}, errBadHeader()
	}
	return HheaData{
		Ascent:           ascent,
		Descent:          descent,
		LineGap:          lineGap,
		NumberOfHMetrics: int(nhm),
	}, nil
}
