// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package tessellate

// Options are optional arguments to the tessellation functions, following
// the same zero-value-means-default convention as truetype.Options.
type Options struct {
	// Tolerance is the maximum perpendicular deviation, in font units,
	// allowed between a flattened chord and the Bézier curve it
	// approximates.
	//
	// A zero value means to use a tolerance of 0.75 font units.
	Tolerance float64

	// Pad is an additional margin, in font units, added to every side of
	// the bounding-box cover quad, to accommodate vertex-shader geometry
	// distortion downstream.
	//
	// A zero value means no padding.
	Pad float64
}

func (o *Options) tolerance() float64 {
	if o != nil && o.Tolerance > 0 {
		return o.Tolerance
	}
	return 0.75
}

func (o *Options) pad() float64 {
	if o != nil {
		return o.Pad
	}
	return 0
}
