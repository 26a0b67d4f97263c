// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphics provides the visuals a control can draw: nine
// slice panels, textures, icons, laid out text and clip masks. A
// graphic expands to [Sprite] quads, which the render pass turns
// into draw primitives.
package graphics

import (
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Sprite is one textured quad of an expanded graphic.
type Sprite struct {
	// Texture is the texture handle, as reported by the embedder's
	// resource loader.
	Texture uint32

	// Color is the tint the texture is multiplied by.
	Color colors.Color

	// Rect is the target rect, in the form [left, top, right,
	// bottom], in surface pixels.
	Rect [4]float32

	// UV is the source rect, in the form [x, y, width, height], in
	// coordinates relative to the texture size, from 0 to 1.
	UV [4]float32
}

// Graphic is the visual attached to a control. It is a closed set:
// [Panel], [Texture], [Icon], [Text] and [Mask] implement it, and a
// nil Graphic draws nothing.
//
// The dirty flags let the render pass reuse geometry across frames:
// a color dirty graphic only needs its cached quads re-tinted, while
// one that needs a rebuild must be expanded again.
type Graphic interface {
	// Color returns the tint color.
	Color() colors.Color

	// SetColor replaces the tint color and marks it dirty.
	SetColor(c colors.Color)

	// SetAlpha replaces the alpha channel of the tint color.
	SetAlpha(a uint8)

	// ColorDirty reports whether the color changed since the last
	// [Graphic.ClearDirty].
	ColorDirty() bool

	// NeedRebuild reports whether the cached render geometry is
	// stale and must be rebuilt instead of re-tinted.
	NeedRebuild() bool

	// ClearDirty resets the dirty flags once the render pass has
	// consumed them.
	ClearDirty()

	// MinSize returns the intrinsic size of the graphic, if it has
	// one.
	MinSize(sh text.Shaper, fts *fonts.Fonts) ([2]float32, bool)

	// Clone returns an independent copy. The copy is born color
	// dirty.
	Clone() Graphic

	isGraphic()
}

// ColorOf returns the tint color of g, or white when g is nil.
func ColorOf(g Graphic) colors.Color {
	if g == nil {
		return colors.White
	}
	return g.Color()
}

// SetColor replaces the tint color of g. A nil graphic is left
// alone.
func SetColor(g Graphic, c colors.Color) {
	if g != nil {
		g.SetColor(c)
	}
}

// SetAlpha replaces the alpha channel of g's tint color. A nil
// graphic is left alone.
func SetAlpha(g Graphic, a uint8) {
	if g != nil {
		g.SetAlpha(a)
	}
}

// MinSize returns the intrinsic size of g. A nil graphic has none.
func MinSize(g Graphic, sh text.Shaper, fts *fonts.Fonts) ([2]float32, bool) {
	if g == nil {
		return [2]float32{}, false
	}
	return g.MinSize(sh, fts)
}

// Clone returns an independent copy of g, or nil when g is nil.
func Clone(g Graphic) Graphic {
	if g == nil {
		return nil
	}
	return g.Clone()
}

// Mask draws nothing but clips its descendants to the control rect,
// both when rendering and when hit testing.
type Mask struct{}

func (m *Mask) Color() colors.Color   { return colors.White }
func (m *Mask) SetColor(colors.Color) {}
func (m *Mask) SetAlpha(uint8)        {}
func (m *Mask) ColorDirty() bool      { return false }
func (m *Mask) NeedRebuild() bool     { return false }
func (m *Mask) ClearDirty()           {}
func (m *Mask) Clone() Graphic        { return &Mask{} }
func (m *Mask) isGraphic()            {}

func (m *Mask) MinSize(text.Shaper, *fonts.Fonts) ([2]float32, bool) {
	return [2]float32{}, false
}

func flipUVX(uv *[4]float32) {
	uv[0] += uv[2]
	uv[2] = -uv[2]
}

func flipUVY(uv *[4]float32) {
	uv[1] += uv[3]
	uv[3] = -uv[3]
}
