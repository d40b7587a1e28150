// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command glyphdump loads a TrueType font and prints its units-per-em,
// glyph count, and line metrics, plus (with -glyphs) per-glyph
// point/contour counts and advance widths, for inspecting a font file's
// decoded shape without driving a renderer. It does not print the table
// directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wireglyph/glyphmesh/sfnt"
)

var (
	fontFile = flag.String("font", "", "filename of font to dump")
	glyphs   = flag.Bool("glyphs", false, "also dump per-glyph point/contour counts")
)

func main() {
	flag.Parse()

	data, err := os.ReadFile(*fontFile)
	if err != nil {
		log.Fatalf("glyphdump: failed to read %s: %v", *fontFile, err)
	}

	f, err := sfnt.LoadFont(data)
	if err != nil {
		log.Fatalf("glyphdump: failed to load %s: %v", *fontFile, err)
	}

	lm := f.LineMetrics()
	fmt.Printf("unitsPerEm: %d\n", f.UnitsPerEm())
	fmt.Printf("numGlyphs:  %d\n", f.NumGlyphs())
	fmt.Printf("ascent:     %d\n", lm.Ascent)
	fmt.Printf("descent:    %d\n", lm.Descent)
	fmt.Printf("lineGap:    %d\n", lm.LineGap)

	if !*glyphs {
		return
	}
	fmt.Println()
	for gid := 0; gid < f.NumGlyphs(); gid++ {
		o, err := f.Outline(uint16(gid))
		if err != nil {
			fmt.Printf("gid %5d: error: %v\n", gid, err)
			continue
		}
		hm := f.HMetric(uint16(gid))
		fmt.Printf("gid %5d: %4d points, %3d contours, advance %5d\n",
			gid, len(o.Points), len(o.Contours), hm.AdvanceWidth)
	}
}
