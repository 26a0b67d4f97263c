// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Icon is a section of a texture drawn at a fixed size. When the
// control is bigger than the icon, the icon keeps its size and is
// centered in the control instead of stretching.
type Icon struct {
	// Texture is the texture handle.
	Texture uint32

	// UVRect is the source rect, in the form [x, y, width, height]
	// relative to the texture size, from 0 to 1.
	UVRect [4]float32

	// Size is the drawn size of the icon, in pixels.
	Size [2]float32

	color      colors.Color
	colorDirty bool
}

// NewIcon creates an icon graphic with the given texture handle, uv
// rect and pixel size.
func NewIcon(texture uint32, uvRect [4]float32, size [2]float32) *Icon {
	return &Icon{
		Texture:    texture,
		UVRect:     uvRect,
		Size:       size,
		color:      colors.White,
		colorDirty: true,
	}
}

// WithColor sets the tint color and returns the icon, for chained
// construction.
func (i *Icon) WithColor(c colors.Color) *Icon {
	i.SetColor(c)
	return i
}

// Color returns the tint color.
func (i *Icon) Color() colors.Color { return i.color }

// SetColor replaces the tint color and marks it dirty.
func (i *Icon) SetColor(c colors.Color) {
	i.color = c
	i.colorDirty = true
}

// SetAlpha replaces the alpha channel of the tint color.
func (i *Icon) SetAlpha(a uint8) {
	i.color.A = a
	i.colorDirty = true
}

func (i *Icon) ColorDirty() bool  { return i.colorDirty }
func (i *Icon) NeedRebuild() bool { return false }
func (i *Icon) ClearDirty()       { i.colorDirty = false }
func (i *Icon) isGraphic()        {}

// MinSize is the icon's fixed size.
func (i *Icon) MinSize(text.Shaper, *fonts.Fonts) ([2]float32, bool) {
	return i.Size, true
}

// Clone returns a copy of the icon, born color dirty.
func (i *Icon) Clone() Graphic {
	c := *i
	c.colorDirty = true
	return &c
}

// FlipX mirrors the icon horizontally.
func (i *Icon) FlipX() { flipUVX(&i.UVRect) }

// FlipY mirrors the icon vertically.
func (i *Icon) FlipY() { flipUVY(&i.UVRect) }

// Sprite centers the icon in the given rect at its fixed size.
func (i *Icon) Sprite(rect [4]float32) Sprite {
	w, h := i.Size[0], i.Size[1]
	x := rect[0] + (rect[2]-rect[0]-w)/2
	y := rect[1] + (rect[3]-rect[1]-h)/2
	return Sprite{
		Texture: i.Texture,
		Color:   i.color,
		Rect:    [4]float32{x, y, x + w, y + h},
		UV:      i.UVRect,
	}
}
