// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Texture is a section of a texture, stretched over the whole
// control rect.
type Texture struct {
	// Texture is the texture handle.
	Texture uint32

	// UVRect is the source rect, in the form [x, y, width, height]
	// relative to the texture size, from 0 to 1.
	UVRect [4]float32

	color      colors.Color
	colorDirty bool
}

// NewTexture creates a texture graphic from the given texture handle
// and uv rect.
func NewTexture(texture uint32, uvRect [4]float32) *Texture {
	return &Texture{
		Texture:    texture,
		UVRect:     uvRect,
		color:      colors.White,
		colorDirty: true,
	}
}

// WithColor sets the tint color and returns the texture, for chained
// construction.
func (t *Texture) WithColor(c colors.Color) *Texture {
	t.SetColor(c)
	return t
}

// Color returns the tint color.
func (t *Texture) Color() colors.Color { return t.color }

// SetColor replaces the tint color and marks it dirty.
func (t *Texture) SetColor(c colors.Color) {
	t.color = c
	t.colorDirty = true
}

// SetAlpha replaces the alpha channel of the tint color.
func (t *Texture) SetAlpha(a uint8) {
	t.color.A = a
	t.colorDirty = true
}

func (t *Texture) ColorDirty() bool  { return t.colorDirty }
func (t *Texture) NeedRebuild() bool { return false }
func (t *Texture) ClearDirty()       { t.colorDirty = false }
func (t *Texture) isGraphic()        {}

// MinSize is zero: a texture stretches to whatever space the control
// is given.
func (t *Texture) MinSize(text.Shaper, *fonts.Fonts) ([2]float32, bool) {
	return [2]float32{}, true
}

// Clone returns a copy of the texture, born color dirty.
func (t *Texture) Clone() Graphic {
	c := *t
	c.colorDirty = true
	return &c
}

// FlipX mirrors the texture horizontally.
func (t *Texture) FlipX() { flipUVX(&t.UVRect) }

// FlipY mirrors the texture vertically.
func (t *Texture) FlipY() { flipUVY(&t.UVRect) }

// Sprite stretches the texture over the given rect.
func (t *Texture) Sprite(rect [4]float32) Sprite {
	return Sprite{
		Texture: t.Texture,
		Color:   t.color,
		Rect:    rect,
		UV:      t.UVRect,
	}
}
