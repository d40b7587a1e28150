// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package tessellate

import (
	"math"

	"github.com/wireglyph/glyphmesh/sfnt"
)

// WireframeMesh is a flattened outline packaged as a vertex/index pair
// suitable for a line-list draw call: interleaved (x, y) vertex positions
// in font units, and index pairs connecting each contour's vertices,
// wrapping the last vertex of a contour back to its first.
type WireframeMesh struct {
	Vertices    []float32
	LineIndices []uint32
}

// TessellateWireframe flattens outline and emits a line-list mesh, per
// spec §4.I/§4.J's wireframe output.
func TessellateWireframe(outline *sfnt.Outline, opts *Options) WireframeMesh {
	flat := Flatten(outline, opts)
	var mesh WireframeMesh
	mesh.Vertices = toFloat32Pairs(flat.Points)
	mesh.LineIndices = lineListIndices(flat.Ends)
	return mesh
}

// StencilCoverMesh is the two-pass fill input: a triangle fan per contour
// for the stencil winding pass, and a padded bounding-box quad for the
// cover pass.
type StencilCoverMesh struct {
	StencilVertices []float32
	FanIndices      []uint32
	CoverVertices   [8]float32 // 4 corners, interleaved (x, y)
	CoverIndices    [6]uint32
}

// TessellateStencilCover flattens outline and emits a stencil-cover mesh,
// per spec §4.J / §6's two-pass non-zero-winding fill technique.
func TessellateStencilCover(outline *sfnt.Outline, opts *Options) StencilCoverMesh {
	flat := Flatten(outline, opts)
	var mesh StencilCoverMesh
	mesh.StencilVertices = toFloat32Pairs(flat.Points)
	mesh.FanIndices = fanIndices(flat.Ends)
	mesh.CoverVertices, mesh.CoverIndices = boundingBoxCover(flat.Points, opts.pad())
	return mesh
}

func toFloat32Pairs(points []sfnt.Vec2) []float32 {
	v := make([]float32, 0, 2*len(points))
	for _, p := range points {
		v = append(v, float32(p.X), float32(p.Y))
	}
	return v
}

// lineListIndices emits (i, i+1) edges within each contour plus the
// closing (end, start) edge, per spec §4.J's "closed polyline edges".
func lineListIndices(ends []int) []uint32 {
	var idx []uint32
	start := 0
	for _, end := range ends {
		for i := start; i < end; i++ {
			idx = append(idx, uint32(i), uint32(i+1))
		}
		if end > start {
			idx = append(idx, uint32(end), uint32(start))
		}
		start = end + 1
	}
	return idx
}

// fanIndices emits triangles (s, i, i+1) for i in [s+1, e), per spec
// §4.J's fan-triangulation rule.
func fanIndices(ends []int) []uint32 {
	var idx []uint32
	start := 0
	for _, end := range ends {
		for i := start + 1; i < end; i++ {
			idx = append(idx, uint32(start), uint32(i), uint32(i+1))
		}
		start = end + 1
	}
	return idx
}

// boundingBoxCover computes the axis-aligned bounding box of points,
// padded by pad on every side, and returns its four corner vertices
// (counter-clockwise from the bottom-left) plus six indices forming two
// triangles, per spec §4.J.
func boundingBoxCover(points []sfnt.Vec2, pad float64) (verts [8]float32, idx [6]uint32) {
	if len(points) == 0 {
		return verts, idx
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	minX -= pad
	minY -= pad
	maxX += pad
	maxY += pad

	verts = [8]float32{
		float32(minX), float32(minY), // 0: bottom-left
		float32(maxX), float32(minY), // 1: bottom-right
		float32(maxX), float32(maxY), // 2: top-right
		float32(minX), float32(maxY), // 3: top-left
	}
	idx = [6]uint32{0, 1, 2, 0, 2, 3}
	return verts, idx
}
