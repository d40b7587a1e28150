// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package gpu defines the narrow external boundary the tessellator
// produces against: opaque vertex/index byte blobs and a per-draw
// parameter record. Nothing in this module calls into an actual GPU
// device; upload and draw scheduling belong to the consumer.
package gpu

import (
	"encoding/binary"
	"math"
)

// DrawParams is the 32-byte, tightly packed, little-endian per-draw
// parameter record described in spec §4.L/§6. Vertex coordinates in the
// accompanying blobs are raw font units; the GPU stage applies
// scale = fontSizePx / unitsPerEm and the Y-flip.
type DrawParams struct {
	UnitsPerEm float32
	FontSizePx float32
	OriginX    float32
	OriginY    float32
	CanvasW    float32
	CanvasH    float32
	Time       float32
	Pad        float32
}

// drawParamsSize is the encoded size in bytes: 8 float32 fields.
const drawParamsSize = 32

// Encode packs p into a 32-byte little-endian blob.
func (p DrawParams) Encode() []byte {
	b := make([]byte, drawParamsSize)
	putFloat32(b[0:4], p.UnitsPerEm)
	putFloat32(b[4:8], p.FontSizePx)
	putFloat32(b[8:12], p.OriginX)
	putFloat32(b[12:16], p.OriginY)
	putFloat32(b[16:20], p.CanvasW)
	putFloat32(b[20:24], p.CanvasH)
	putFloat32(b[24:28], p.Time)
	putFloat32(b[28:32], p.Pad)
	return b
}

// DecodeDrawParams unpacks a 32-byte little-endian blob produced by
// Encode.
func DecodeDrawParams(b []byte) (DrawParams, bool) {
	if len(b) != drawParamsSize {
		return DrawParams{}, false
	}
	return DrawParams{
		UnitsPerEm: getFloat32(b[0:4]),
		FontSizePx: getFloat32(b[4:8]),
		OriginX:    getFloat32(b[8:12]),
		OriginY:    getFloat32(b[12:16]),
		CanvasW:    getFloat32(b[16:20]),
		CanvasH:    getFloat32(b[20:24]),
		Time:       getFloat32(b[24:28]),
		Pad:        getFloat32(b[28:32]),
	}, true
}

// VertexBlob packs interleaved (x, y) float32 vertex positions into a
// little-endian byte blob, ready for a vertex buffer upload.
func VertexBlob(vertices []float32) []byte {
	b := make([]byte, 4*len(vertices))
	for i, v := range vertices {
		putFloat32(b[4*i:4*i+4], v)
	}
	return b
}

// IndexBlob packs u32 indices into a little-endian byte blob, ready for
// an index buffer upload.
func IndexBlob(indices []uint32) []byte {
	b := make([]byte, 4*len(indices))
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(b[4*i:4*i+4], idx)
	}
	return b
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
