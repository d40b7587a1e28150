package layout

import (
	"encoding/binary"
	"testing"
)

// sfntTestFont builds a minimal two-glyph sfnt byte buffer: gid0 is the
// empty .notdef glyph, gid1 ('A', mapped via a format 4 cmap) is a
// 100x100 square, advance width 600. A one-pair kern table gives ('A', 'A') a
// -50 unit kern. This mirrors, at a smaller scale, sfnt package's own
// synthetic-font test harness, duplicated here since that harness is
// unexported and package-private.
func sfntTestFont(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm
	// indexToLocFormat (short) left at zero.

	maxp := make([]byte, 32)
	binary.BigEndian.PutUint16(maxp[4:], 2) // numGlyphs

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint16(hhea[34:], 2) // numberOfHMetrics

	hmtx := make([]byte, 8)
	binary.BigEndian.PutUint16(hmtx[0:], 0)   // gid0 advance
	binary.BigEndian.PutUint16(hmtx[4:], 600) // gid1 advance

	// gid1: a 100x100 square, all points on-curve.
	glyf := make([]byte, 10)
	binary.BigEndian.PutUint16(glyf[0:], 1) // numContours
	glyf = append(glyf, 0, 3)               // endPtsOfContours[0] = 3
	glyf = append(glyf, 0, 0)               // instructionLength
	onCurve := byte(0x01)
	glyf = append(glyf, onCurve, onCurve, onCurve, onCurve)
	// deltaX: 0, 100, 0, -100
	glyf = appendI16(glyf, 0)
	glyf = appendI16(glyf, 100)
	glyf = appendI16(glyf, 0)
	glyf = appendI16(glyf, -100)
	// deltaY: 0, 0, 100, 0
	glyf = appendI16(glyf, 0)
	glyf = appendI16(glyf, 0)
	glyf = appendI16(glyf, 100)
	glyf = appendI16(glyf, 0)

	loca := make([]byte, 6) // 3 u16 entries: 0, 0, len(glyf)/2
	binary.BigEndian.PutUint16(loca[2:], 0)
	binary.BigEndian.PutUint16(loca[4:], uint16(len(glyf)/2))

	cmap := buildCmapFormat4ForA()

	kern := make([]byte, 18)
	binary.BigEndian.PutUint16(kern[2:], 1)       // nTables
	binary.BigEndian.PutUint16(kern[4:], 0)       // subtable version
	binary.BigEndian.PutUint16(kern[6:], 14+6)    // subtable length
	binary.BigEndian.PutUint16(kern[8:], 0x0001)  // coverage
	binary.BigEndian.PutUint16(kern[10:], 1)      // nPairs
	pair := make([]byte, 6)
	binary.BigEndian.PutUint16(pair[0:], 1) // left gid
	binary.BigEndian.PutUint16(pair[2:], 1) // right gid
	binary.BigEndian.PutUint16(pair[4:], uint16(int16(-50)))
	kern = append(kern, pair...)

	tables := map[string][]byte{
		"head": head,
		"maxp": maxp,
		"hhea": hhea,
		"hmtx": hmtx,
		"loca": loca,
		"glyf": glyf,
		"cmap": cmap,
		"kern": kern,
	}
	tags := []string{"cmap", "glyf", "head", "hhea", "hmtx", "kern", "loca", "maxp"}

	header := make([]byte, 12+16*len(tags))
	binary.BigEndian.PutUint32(header[0:], 0x00010000)
	binary.BigEndian.PutUint16(header[4:], uint16(len(tags)))
	offset := uint32(len(header))
	var body []byte
	for i, tag := range tags {
		rec := header[12+16*i:]
		copy(rec[0:4], tag)
		binary.BigEndian.PutUint32(rec[8:], offset)
		binary.BigEndian.PutUint32(rec[12:], uint32(len(tables[tag])))
		body = append(body, tables[tag]...)
		offset += uint32(len(tables[tag]))
	}
	return append(header, body...)
}

func appendI16(b []byte, v int16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(v))
	return append(b, tmp[:]...)
}

// buildCmapFormat4ForA builds a single-subtable format 4 cmap mapping
// 'A' (0x41) to gid 1, plus the mandatory 0xFFFF sentinel segment.
func buildCmapFormat4ForA() []byte {
	const segCount = 2 // 'A' segment + sentinel
	segCountX2 := uint16(segCount * 2)

	header := make([]byte, 14)
	binary.BigEndian.PutUint16(header[0:], 4) // format
	binary.BigEndian.PutUint16(header[6:], segCountX2)

	endCodes := appendI16(appendI16(nil, 0x41), int16(uint16(0xFFFF)))
	reservedPad := []byte{0, 0}
	startCodes := appendI16(appendI16(nil, 0x41), int16(uint16(0xFFFF)))
	idRangeOffsets := appendI16(appendI16(nil, 0), 0)

	// idDelta maps code 0x41 directly to gid 1: delta = gid - code. The
	// sentinel segment's delta is always 1, per the cmap format 4 spec.
	idDeltas := appendI16(nil, int16(1-0x41))
	idDeltas = appendI16(idDeltas, 1)

	var body []byte
	body = append(body, endCodes...)
	body = append(body, reservedPad...)
	body = append(body, startCodes...)
	body = append(body, idDeltas...)
	body = append(body, idRangeOffsets...)

	full := append(header, body...)
	binary.BigEndian.PutUint16(full[2:], uint16(len(full)))

	sub := full
	outer := make([]byte, 4+8)
	binary.BigEndian.PutUint16(outer[2:], 1) // numTables
	binary.BigEndian.PutUint16(outer[4:], 3) // platformID
	binary.BigEndian.PutUint16(outer[6:], 1) // encodingID
	binary.BigEndian.PutUint32(outer[8:], uint32(len(outer)))
	return append(outer, sub...)
}
