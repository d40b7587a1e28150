// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "fmt"

// Kind identifies the category of a DecodeError.
type Kind int

const (
	// Truncated means a read ran past the end of the font's byte buffer.
	Truncated Kind = iota
	// BadHeader means the sfnt table directory itself is malformed.
	BadHeader
	// MissingTable means a table required by this decoder is absent.
	MissingTable
	// LocaInconsistent means the loca table's offsets are non-monotone or
	// fall outside the glyf table.
	LocaInconsistent
	// UnsupportedCmap means no usable format 4 or format 12 cmap subtable
	// was found.
	UnsupportedCmap
	// CompoundCycle means a compound glyph's components form a cycle.
	CompoundCycle
	// CompoundDepthExceeded means compound component recursion exceeded
	// the soft depth limit.
	CompoundDepthExceeded
	// GidOutOfRange means a glyph id was requested that is not less than
	// numGlyphs.
	GidOutOfRange
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case BadHeader:
		return "bad header"
	case MissingTable:
		return "missing table"
	case LocaInconsistent:
		return "loca inconsistent"
	case UnsupportedCmap:
		return "unsupported cmap"
	case CompoundCycle:
		return "compound cycle"
	case CompoundDepthExceeded:
		return "compound depth exceeded"
	case GidOutOfRange:
		return "gid out of range"
	}
	return "unknown"
}

// A DecodeError reports that a font's bytes could not be decoded, per the
// taxonomy in the decoder's design. Tag and Gid are populated when they are
// relevant to Kind (MissingTable sets Tag; CompoundCycle sets Gid).
type DecodeError struct {
	Kind Kind
	Tag  string
	Gid  uint16
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case MissingTable:
		return fmt.Sprintf("sfnt: missing table %q", e.Tag)
	case CompoundCycle:
		return fmt.Sprintf("sfnt: compound glyph cycle at gid %d", e.Gid)
	case GidOutOfRange:
		return fmt.Sprintf("sfnt: glyph id %d out of range", e.Gid)
	default:
		return "sfnt: " + e.Kind.String()
	}
}

// Is reports whether err is a *DecodeError with the same Kind, so that
// callers can write errors.Is(err, &DecodeError{Kind: Truncated}).
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func errTruncated() error                { return &DecodeError{Kind: Truncated} }
func errBadHeader() error                { return &DecodeError{Kind: BadHeader} }
func errMissingTable(tag string) error   { return &DecodeError{Kind: MissingTable, Tag: tag} }
func errLocaInconsistent() error         { return &DecodeError{Kind: LocaInconsistent} }
func errUnsupportedCmap() error          { return &DecodeError{Kind: UnsupportedCmap} }
func errCompoundCycle(gid uint16) error  { return &DecodeError{Kind: CompoundCycle, Gid: gid} }
func errCompoundDepth() error            { return &DecodeError{Kind: CompoundDepthExceeded} }
func errGidOutOfRange(gid uint16) error  { return &DecodeError{Kind: GidOutOfRange, Gid: gid} }
