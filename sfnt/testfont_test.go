package sfnt

// Helpers to assemble synthetic, minimal, valid sfnt byte buffers for
// tests. There is no retrievable real TTF binary in this environment, so
// tests build the smallest fonts that exercise each decoder path,
// mirroring the teacher's own practice of constructing Font/GlyphBuf
// fixtures in freetype_test.go / truetype_test.go, but at the byte level
// since this package decodes raw bytes rather than accepting a parsed
// struct.

import "encoding/binary"

type tableSet map[string][]byte

// buildFont assembles an sfnt header, table directory, and table bodies
// from the given tag -> bytes map.
func buildFont(tables tableSet) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	// Deterministic order keeps tests reproducible.
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if tags[j] < tags[i] {
				tags[i], tags[j] = tags[j], tags[i]
			}
		}
	}

	n := len(tags)
	header := make([]byte, 12+16*n)
	binary.BigEndian.PutUint32(header[0:], 0x00010000)
	binary.BigEndian.PutUint16(header[4:], uint16(n))

	offset := uint32(len(header))
	var body []byte
	for i, tag := range tags {
		data := tables[tag]
		rec := header[12+16*i:]
		copy(rec[0:4], tag)
		binary.BigEndian.PutUint32(rec[8:], offset)
		binary.BigEndian.PutUint32(rec[12:], uint32(len(data)))
		body = append(body, data...)
		offset += uint32(len(data))
	}
	return append(header, body...)
}

func beU16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func beI16(v int16) []byte { return beU16(uint16(v)) }

func beU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func buildHead(unitsPerEm uint16, indexToLocFormat int16) []byte {
	b := make([]byte, 54)
	copy(b[18:20], beU16(unitsPerEm))
	copy(b[50:52], beI16(indexToLocFormat))
	return b
}

func buildMaxp(numGlyphs uint16) []byte {
	b := make([]byte, 32)
	copy(b[4:6], beU16(numGlyphs))
	return b
}

func buildHhea(ascent, descent, lineGap int16, numberOfHMetrics uint16) []byte {
	b := make([]byte, 36)
	copy(b[4:6], beI16(ascent))
	copy(b[6:8], beI16(descent))
	copy(b[8:10], beI16(lineGap))
	copy(b[34:36], beU16(numberOfHMetrics))
	return b
}

func buildHmtx(advances []uint16, lsbs []int16) []byte {
	var b []byte
	for i, a := range advances {
		b = append(b, beU16(a)...)
		b = append(b, beI16(lsbs[i])...)
	}
	for _, l := range lsbs[len(advances):] {
		b = append(b, beI16(l)...)
	}
	return b
}

func buildLocaShort(offsets []uint32) []byte {
	var b []byte
	for _, o := range offsets {
		b = append(b, beU16(uint16(o/2))...)
	}
	return b
}

// simpleGlyph describes a one-or-more-contour outline as lists of points
// per contour; onCurve[c][i] parallels points[c][i].
type simpleGlyph struct {
	contours []simpleContour
}

type simpleContour struct {
	points  []Vec2
	onCurve []bool
}

// encodeSimpleGlyph encodes contours into glyf bytes (header, endPts,
// instructions(0), flags, deltaX, deltaY) — the inverse of
// decodeSimpleGlyph, used to build test fixtures.
func encodeSimpleGlyph(g simpleGlyph) []byte {
	numContours := len(g.contours)
	b := make([]byte, 10)
	copy(b[0:2], beI16(int16(numContours)))

	endPt := -1
	for _, c := range g.contours {
		endPt += len(c.points)
		b = append(b, beU16(uint16(endPt))...)
	}
	b = append(b, beU16(0)...) // instructionLength

	var flags []uint8
	var xs, ys []int16
	for _, c := range g.contours {
		for i, p := range c.points {
			var f uint8
			if c.onCurve[i] {
				f |= flagOnCurve
			}
			flags = append(flags, f)
			xs = append(xs, int16(p.X))
			ys = append(ys, int16(p.Y))
		}
	}
	for _, f := range flags {
		b = append(b, f)
	}
	prev := int16(0)
	for _, x := range xs {
		d := x - prev
		b = append(b, beI16(d)...)
		prev = x
	}
	prev = 0
	for _, y := range ys {
		d := y - prev
		b = append(b, beI16(d)...)
		prev = y
	}
	return b
}

// encodeCompoundGlyph prepends the glyph-level header (numContours = -1,
// zero bbox) to a sequence of already-encoded components.
func encodeCompoundGlyph(components ...[]byte) []byte {
	b := make([]byte, 10)
	copy(b[0:2], beI16(-1))
	for _, c := range components {
		b = append(b, c...)
	}
	return b
}

// encodeComponentXY encodes one component record, ArgsAreXYValues set,
// word-sized args, and no scale/transform.
func encodeComponentXY(componentGid uint16, dx, dy int16, more bool) []byte {
	flags := uint16(flagArgsAreWords | flagArgsAreXY)
	if more {
		flags |= flagMoreComponents
	}
	var b []byte
	b = append(b, beU16(flags)...)
	b = append(b, beU16(componentGid)...)
	b = append(b, beI16(dx)...)
	b = append(b, beI16(dy)...)
	return b
}

// encodeComponentPointAlign encodes one component record using the
// point-index alignment argument mode (ArgsAreXYValues clear).
func encodeComponentPointAlign(componentGid uint16, childPointIdx, parentPointIdx int8, more bool) []byte {
	flags := uint16(flagArgsAreWords)
	if more {
		flags |= flagMoreComponents
	}
	var b []byte
	b = append(b, beU16(flags)...)
	b = append(b, beU16(componentGid)...)
	b = append(b, beI16(int16(childPointIdx))...)
	b = append(b, beI16(int16(parentPointIdx))...)
	return b
}

func buildCmapFormat4(pairs map[uint16]uint16) []byte {
	// One single-code segment per entry of pairs, in sorted order, using an
	// explicit glyphIdArray (idRangeOffset != 0) so the range-offset
	// dereference path is exercised, plus the mandatory 0xFFFF sentinel.
	codes := make([]uint16, 0, len(pairs))
	for c := range pairs {
		codes = append(codes, c)
	}
	for i := 0; i < len(codes); i++ {
		for j := i + 1; j < len(codes); j++ {
			if codes[j] < codes[i] {
				codes[i], codes[j] = codes[j], codes[i]
			}
		}
	}

	segCount := len(codes) + 1 // + sentinel
	segCountX2 := uint16(segCount * 2)

	header := make([]byte, 14)
	copy(header[0:2], beU16(4))
	copy(header[6:8], beU16(segCountX2))

	var endCodes, startCodes, idDeltas, idRangeOffsets, glyphIDArray []byte
	for _, c := range codes {
		endCodes = append(endCodes, beU16(c)...)
		startCodes = append(startCodes, beU16(c)...)
		idDeltas = append(idDeltas, beU16(0)...)
		// idRangeOffset points into glyphIDArray, one slot per segment.
		idRangeOffsets = append(idRangeOffsets, beU16(0)...) // placeholder, patched below
		glyphIDArray = append(glyphIDArray, beU16(pairs[c])...)
	}
	endCodes = append(endCodes, beU16(0xFFFF)...)
	startCodes = append(startCodes, beU16(0xFFFF)...)
	idDeltas = append(idDeltas, beU16(1)...)
	idRangeOffsets = append(idRangeOffsets, beU16(0)...)

	// Patch idRangeOffset for each real segment: offset from that
	// segment's own idRangeOffset slot to its glyphIDArray entry.
	rangeBase := 14 + int(segCountX2) + 2 + int(segCountX2) + int(segCountX2)
	arrayBase := rangeBase + int(segCountX2)
	for i := range codes {
		fieldOff := rangeBase + 2*i
		target := arrayBase + 2*i
		patch := beU16(uint16(target - fieldOff))
		copy(idRangeOffsets[2*i:2*i+2], patch)
	}

	var body []byte
	body = append(body, endCodes...)
	body = append(body, beU16(0)...) // reservedPad
	body = append(body, startCodes...)
	body = append(body, idDeltas...)
	body = append(body, idRangeOffsets...)
	body = append(body, glyphIDArray...)

	full := append(header, body...)
	copy(full[2:4], beU16(uint16(len(full))))
	return full
}

func buildCmapFormat12(groups [][3]uint32) []byte {
	b := make([]byte, 16)
	copy(b[0:2], beU16(12))
	copy(b[12:16], beU32(uint32(len(groups))))
	for _, g := range groups {
		b = append(b, beU32(g[0])...)
		b = append(b, beU32(g[1])...)
		b = append(b, beU32(g[2])...)
	}
	copy(b[4:8], beU32(uint32(len(b))))
	return b
}

// buildCmapHeader wires a set of already-encoded subtables (each keyed by
// an arbitrary platform/encoding pair, content irrelevant to this
// decoder) into one cmap table.
func buildCmapHeader(subtables ...[]byte) []byte {
	n := len(subtables)
	header := make([]byte, 4+8*n)
	copy(header[0:2], beU16(0))
	copy(header[2:4], beU16(uint16(n)))
	offset := uint32(len(header))
	var body []byte
	for i, st := range subtables {
		rec := header[4+8*i:]
		copy(rec[0:2], beU16(3))     // platformID (Windows), arbitrary
		copy(rec[2:4], beU16(1))     // encodingID, arbitrary
		copy(rec[4:8], beU32(offset))
		body = append(body, st...)
		offset += uint32(len(st))
	}
	return append(header, body...)
}
