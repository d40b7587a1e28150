// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// Flags for a simple glyph's per-point flag stream. Grounded on
// freetype/truetype/truetype.go's decodeFlags/decodeCoords.
const (
	flagOnCurve = 1 << iota
	flagXShortVector
	flagYShortVector
	flagRepeat
	flagPositiveXShortVector
	flagPositiveYShortVector
)

// The same flag bits (0x10 and 0x20) are overloaded to have a second
// meaning when their corresponding ShortVector bit is clear.
const (
	flagThisXIsSame = flagPositiveXShortVector
	flagThisYIsSame = flagPositiveYShortVector
)

// Flags for a compound glyph's component records. Only the bits spec §3's
// CompoundFlags lists are consulted; all others are ignored.
const (
	flagArgsAreWords     = 0x0001
	flagArgsAreXY        = 0x0002
	flagScale            = 0x0008
	flagMoreComponents   = 0x0020
	flagXYScale          = 0x0040
	flagTwoByTwo         = 0x0080
	flagHaveInstructions = 0x0100
)

// compoundDepthLimit is the soft recursion cap from spec §7
// (CompoundDepthExceeded).
const compoundDepthLimit = 32

// f2dot14 is a signed 16-bit fixed-point number, scale 1/16384, used for
// compound-glyph transform coefficients.
type f2dot14 int16

func (f f2dot14) float64() float64 { return float64(f) / 16384 }

func (f *FontFile) decodeOutline(gid uint16, depth int, visiting map[uint16]bool) (*Outline, error) {
	if o := f.cachedOutline(gid); o != nil {
		return o, nil
	}
	if depth > compoundDepthLimit {
		return nil, errCompoundDepth()
	}
	if visiting[gid] {
		return nil, errCompoundCycle(gid)
	}
	visiting[gid] = true
	defer delete(visiting, gid)

	start, end := f.loca.Range(gid)
	if start == end {
		o := &Outline{}
		f.storeOutline(gid, o)
		return o, nil
	}
	glyfInfo := f.tables["glyf"]
	glyf := reader(f.data[glyfInfo.Offset+start : glyfInfo.Offset+end])

	numContours, err := glyf.i16(0)
	if err != nil {
		return nil, err
	}

	var o *Outline
	if numContours >= 0 {
		o, err = decodeSimpleGlyph(glyf, int(numContours))
	} else if numContours == -1 {
		o, err = f.decodeCompoundGlyph(glyf, depth, visiting)
	} else {
		return nil, errBadHeader()
	}
	if err != nil {
		return nil, err
	}
	f.storeOutline(gid, o)
	return o, nil
}

// decodeSimpleGlyph decodes a single-contour-set outline: run-length flag
// stream, then delta-encoded X and Y coordinate streams. Grounded on
// GlyphBuf.decodeFlags / decodeCoords / loadSimple.
func decodeSimpleGlyph(glyf reader, numContours int) (*Outline, error) {
	const header = 10 // numContours(2) + bbox(8)
	off := header

	contours := make([]int, numContours)
	for i := 0; i < numContours; i++ {
		v, err := glyf.u16(off)
		if err != nil {
			return nil, err
		}
		contours[i] = int(v)
		off += 2
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = contours[numContours-1] + 1
	}

	instrLen, err := glyf.u16(off)
	if err != nil {
		return nil, err
	}
	off += 2 + int(instrLen)

	flags := make([]uint8, numPoints)
	for i := 0; i < numPoints; {
		c, err := glyf.u8(off)
		if err != nil {
			return nil, err
		}
		off++
		flags[i] = c
		i++
		if c&flagRepeat != 0 {
			count, err := glyf.u8(off)
			if err != nil {
				return nil, err
			}
			off++
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = c
				i++
			}
		}
	}

	xs := make([]float64, numPoints)
	var x int16
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		switch {
		case fl&flagXShortVector != 0:
			mag, err := glyf.u8(off)
			if err != nil {
				return nil, err
			}
			off++
			if fl&flagPositiveXShortVector == 0 {
				x -= int16(mag)
			} else {
				x += int16(mag)
			}
		case fl&flagThisXIsSame == 0:
			dx, err := glyf.i16(off)
			if err != nil {
				return nil, err
			}
			off += 2
			x += dx
		}
		xs[i] = float64(x)
	}

	ys := make([]float64, numPoints)
	var y int16
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		switch {
		case fl&flagYShortVector != 0:
			mag, err := glyf.u8(off)
			if err != nil {
				return nil, err
			}
			off++
			if fl&flagPositiveYShortVector == 0 {
				y -= int16(mag)
			} else {
				y += int16(mag)
			}
		case fl&flagThisYIsSame == 0:
			dy, err := glyf.i16(off)
			if err != nil {
				return nil, err
			}
			off += 2
			y += dy
		}
		ys[i] = float64(y)
	}

	points := make([]Vec2, numPoints)
	onCurve := make([]bool, numPoints)
	for i := 0; i < numPoints; i++ {
		points[i] = Vec2{X: xs[i], Y: ys[i]}
		onCurve[i] = flags[i]&flagOnCurve != 0
	}
	return &Outline{Points: points, OnCurve: onCurve, Contours: contours}, nil
}

// decodeCompoundGlyph composes an outline from references to other
// glyphs, per spec §4.G. Grounded on GlyphBuf.loadCompound for the
// component loop and F2Dot14 transform math; the point-index alignment
// argument mode (ArgsAreXY unset) is implemented directly from spec §4.G
// step 5, since no retrieved example implements it.
func (f *FontFile) decodeCompoundGlyph(glyf reader, depth int, visiting map[uint16]bool) (*Outline, error) {
	const header = 10
	off := header
	out := &Outline{}

	for {
		flags, err := glyf.u16(off)
		if err != nil {
			return nil, err
		}
		componentGid, err := glyf.u16(off + 2)
		if err != nil {
			return nil, err
		}
		off += 4

		var arg1, arg2 int32
		if flags&flagArgsAreWords != 0 {
			a1, err := glyf.i16(off)
			if err != nil {
				return nil, err
			}
			a2, err := glyf.i16(off + 2)
			if err != nil {
				return nil, err
			}
			arg1, arg2 = int32(a1), int32(a2)
			off += 4
		} else {
			a1, err := glyf.i8(off)
			if err != nil {
				return nil, err
			}
			a2, err := glyf.i8(off + 1)
			if err != nil {
				return nil, err
			}
			arg1, arg2 = int32(a1), int32(a2)
			off += 2
		}

		a, b, c, d := 1.0, 0.0, 0.0, 1.0
		switch {
		case flags&flagScale != 0:
			s, err := glyf.i16(off)
			if err != nil {
				return nil, err
			}
			a = f2dot14(s).float64()
			d = a
			off += 2
		case flags&flagXYScale != 0:
			sx, err := glyf.i16(off)
			if err != nil {
				return nil, err
			}
			sy, err := glyf.i16(off + 2)
			if err != nil {
				return nil, err
			}
			a = f2dot14(sx).float64()
			d = f2dot14(sy).float64()
			off += 4
		case flags&flagTwoByTwo != 0:
			va, err := glyf.i16(off)
			if err != nil {
				return nil, err
			}
			vb, err := glyf.i16(off + 2)
			if err != nil {
				return nil, err
			}
			vc, err := glyf.i16(off + 4)
			if err != nil {
				return nil, err
			}
			vd, err := glyf.i16(off + 6)
			if err != nil {
				return nil, err
			}
			a, b, c, d = f2dot14(va).float64(), f2dot14(vb).float64(), f2dot14(vc).float64(), f2dot14(vd).float64()
			off += 8
		}

		child, err := f.decodeOutline(componentGid, depth+1, visiting)
		if err != nil {
			return nil, err
		}

		var dx, dy float64
		if flags&flagArgsAreXY != 0 {
			dx, dy = float64(arg1), float64(arg2)
		} else {
			childIdx := saturateIndex(int(arg1), len(child.Points))
			parentIdx := saturateIndex(int(arg2), len(out.Points))
			var lx, ly float64
			if childIdx >= 0 {
				lx, ly = child.Points[childIdx].X, child.Points[childIdx].Y
			}
			tx := a*lx + b*ly
			ty := c*lx + d*ly
			var px, py float64
			if parentIdx >= 0 {
				px, py = out.Points[parentIdx].X, out.Points[parentIdx].Y
			}
			dx, dy = px-tx, py-ty
		}

		base := len(out.Points)
		for i, p := range child.Points {
			tx := a*p.X + b*p.Y + dx
			ty := c*p.X + d*p.Y + dy
			out.Points = append(out.Points, Vec2{X: tx, Y: ty})
			out.OnCurve = append(out.OnCurve, child.OnCurve[i])
		}
		for _, end := range child.Contours {
			out.Contours = append(out.Contours, end+base)
		}

		if flags&flagMoreComponents == 0 {
			if flags&flagHaveInstructions != 0 {
				n, err := glyf.u16(off)
				if err == nil {
					off += 2 + int(n)
				}
			}
			break
		}
	}
	return out, nil
}

// saturateIndex clamps idx into [0, n) if n > 0, or returns -1 if the
// referenced point array is empty (spec §4.G step 5: "if the parent has
// no assembled points yet, use (0, 0)").
func saturateIndex(idx, n int) int {
	if n == 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
