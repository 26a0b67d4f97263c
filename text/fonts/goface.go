// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromFixed converts a 26.6 fixed-point value to float32 pixels.
func FromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// ToFixed converts float32 pixels to 26.6 fixed point.
func ToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// GoFace adapts a [golang.org/x/image/font.Face] to the metric [Face]
// interface. Such faces are pre-sized, so the size argument of the
// metric methods is ignored; the wrapped face's own metrics apply.
type GoFace struct {
	face xfont.Face
}

// NewGoFace wraps the given face.
func NewGoFace(face xfont.Face) *GoFace {
	return &GoFace{face: face}
}

func (g *GoFace) Extents(size float32) Extents {
	m := g.face.Metrics()
	gap := m.Height - m.Ascent - m.Descent
	if gap < 0 {
		gap = 0
	}
	return Extents{
		Ascent:  FromFixed(m.Ascent),
		Descent: FromFixed(m.Descent),
		LineGap: FromFixed(gap),
	}
}

func (g *GoFace) HasGlyph(r rune) bool {
	_, ok := g.face.GlyphAdvance(r)
	return ok
}

// GlyphID returns the rune itself: x/image faces expose no glyph
// identifiers, and renderers for them look sprites up by rune.
func (g *GoFace) GlyphID(r rune) uint32 {
	return uint32(r)
}

func (g *GoFace) Advance(r rune, size float32) float32 {
	adv, _ := g.face.GlyphAdvance(r)
	return FromFixed(adv)
}

func (g *GoFace) Kern(prev, next rune, size float32) float32 {
	return FromFixed(g.face.Kern(prev, next))
}
