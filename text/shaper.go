// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Glyph is one positioned glyph of a shaped run or laid out text.
type Glyph struct {
	// ID is the glyph id in its font's face.
	ID uint32

	// Font is the font the glyph was shaped with. It may differ from
	// the run's font when the shaper fell back for a missing glyph.
	Font fonts.FontId

	// Pos is the glyph origin on the baseline, in pixels. Shapers
	// produce x offsets from the run start; the layout rebases them.
	Pos [2]float32

	// Width is the horizontal advance.
	Width float32

	// Range is the byte range of the source cluster. When a cluster
	// produces several glyphs, the first one carries the full range
	// and the rest carry an empty range at the cluster start, so byte
	// positions map to unique glyph boundaries.
	Range [2]int

	// Whitespace marks clusters of white space, which line breaking
	// lets overflow the wrap width.
	Whitespace bool

	// Color is filled in by the layout's style pass.
	Color colors.Color
}

// Shaper turns a run of text with uniform style into positioned
// glyphs. The engine shapes each style run of a paragraph separately
// and concatenates the results.
//
// Returned glyphs advance from x = 0 on the y = 0 baseline, with byte
// ranges relative to the run, covering it completely under the
// cluster rule described on [Glyph.Range].
type Shaper interface {
	Shape(run string, size float32, font fonts.FontId, fts *fonts.Fonts) ([]Glyph, error)
}
