// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simple implements a metrics-only shaping backend: one glyph
// per rune, advances and kerning straight from the font faces. It has
// no ligatures, mark positioning or script shaping, which keeps it
// dependency free and fully deterministic for tests and for simple
// latin interfaces. See the gt sibling package for full shaping.
package simple

import (
	"unicode"
	"unicode/utf8"

	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Shaper is the metrics-only shaping backend. The zero value is ready
// to use and the shaper is stateless, so one instance may be shared.
type Shaper struct{}

// New returns a new shaper.
func New() *Shaper {
	return &Shaper{}
}

// Shape implements [text.Shaper]. Runes the font does not cover walk
// the fallback chain; control characters map to a zero width space
// glyph so line breaks occupy no room.
func (s *Shaper) Shape(run string, size float32, font fonts.FontId, fts *fonts.Fonts) ([]text.Glyph, error) {
	glyphs := make([]text.Glyph, 0, utf8.RuneCountInString(run))
	var pen float32
	prev := rune(-1)
	prevFont := font
	for i, r := range run {
		id := font
		f := fts.Get(id)
		face := f.Face()
		if !face.HasGlyph(r) {
			for {
				fb, ok := f.Fallback()
				if !ok {
					break
				}
				id = fb
				f = fts.Get(id)
				face = f.Face()
				if face.HasGlyph(r) {
					break
				}
			}
		}

		gid := face.GlyphID(r)
		adv := face.Advance(r, size)
		if len(glyphs) > 0 && prevFont == id {
			k := face.Kern(prev, r, size)
			glyphs[len(glyphs)-1].Width += k
			pen += k
		}
		if unicode.IsControl(r) {
			adv = 0
			gid = face.GlyphID(' ')
		}

		glyphs = append(glyphs, text.Glyph{
			ID:         gid,
			Font:       id,
			Pos:        [2]float32{pen, 0},
			Width:      adv,
			Range:      [2]int{i, i + utf8.RuneLen(r)},
			Whitespace: unicode.IsSpace(r),
		})
		pen += adv
		prev, prevFont = r, id
	}
	return glyphs, nil
}
