// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import "strings"

// Extents are vertical font metrics in pixels at a given size.
// Ascent and Descent are both magnitudes.
type Extents struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// Height returns the full vertical extent, line gap included.
func (e Extents) Height() float32 {
	return e.Ascent + e.Descent + e.LineGap
}

// Face provides the metrics of one font face. Implementations must be
// safe for shared read access after construction; none of the methods
// mutate the face.
type Face interface {
	// Extents returns the vertical metrics for the given pixel size.
	Extents(size float32) Extents

	// HasGlyph reports whether the face covers the rune.
	HasGlyph(r rune) bool

	// GlyphID returns the face's glyph id for the rune, or 0 when the
	// rune is not covered.
	GlyphID(r rune) uint32

	// Advance returns the horizontal advance of the rune's glyph in
	// pixels at the given size.
	Advance(r rune, size float32) float32

	// Kern returns the kerning adjustment between two runes in pixels
	// at the given size, usually negative or zero. Faces without
	// kerning data return 0.
	Kern(prev, next rune, size float32) float32
}

// Synthetic is a face with uniform metrics, covering every rune with
// the same advance. It backs text tests that need exact arithmetic,
// and can serve as a last resort fallback.
type Synthetic struct {
	// AdvanceEm, AscentEm, DescentEm and GapEm are fractions of the
	// font size.
	AdvanceEm float32
	AscentEm  float32
	DescentEm float32
	GapEm     float32

	// Missing lists runes the face reports as not covered.
	Missing string

	// Kerning maps rune pairs to adjustments, in fractions of the
	// font size.
	Kerning map[[2]rune]float32
}

// DefaultSynthetic mimics a monospace face: advance 0.5 em, ascent
// 0.8 em, descent 0.2 em, no line gap.
func DefaultSynthetic() Synthetic {
	return Synthetic{AdvanceEm: 0.5, AscentEm: 0.8, DescentEm: 0.2}
}

func (s Synthetic) Extents(size float32) Extents {
	return Extents{Ascent: s.AscentEm * size, Descent: s.DescentEm * size, LineGap: s.GapEm * size}
}

func (s Synthetic) HasGlyph(r rune) bool { return !strings.ContainsRune(s.Missing, r) }

func (s Synthetic) GlyphID(r rune) uint32 {
	if !s.HasGlyph(r) {
		return 0
	}
	return uint32(r)
}

func (s Synthetic) Advance(r rune, size float32) float32 { return s.AdvanceEm * size }

func (s Synthetic) Kern(prev, next rune, size float32) float32 {
	return s.Kerning[[2]rune{prev, next}] * size
}
