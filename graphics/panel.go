// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Panel is a nine-slice texture: the four corners keep their size,
// the edges stretch along one axis and the center stretches along
// both.
type Panel struct {
	// Texture is the texture handle.
	Texture uint32

	// UVRects are the nine source rects, row-major from the top
	// left, each in the form [x, y, width, height] relative to the
	// texture size.
	UVRects [9][4]float32

	// Border is the left, top, right and bottom border widths, in
	// pixels.
	Border [4]float32

	color      colors.Color
	colorDirty bool
}

// NewPanel creates a nine-slice panel from a single uv rect, split
// into nine equal parts, with the given border widths in pixels.
func NewPanel(texture uint32, uvRect [4]float32, border [4]float32) *Panel {
	w := uvRect[2] / 3
	h := uvRect[3] / 3
	x := [3]float32{uvRect[0], uvRect[0] + w, uvRect[0] + 2*w}
	y := [3]float32{uvRect[1], uvRect[1] + h, uvRect[1] + 2*h}

	p := &Panel{
		Texture:    texture,
		Border:     border,
		color:      colors.White,
		colorDirty: true,
	}
	for i := range p.UVRects {
		p.UVRects[i] = [4]float32{x[i%3], y[i/3], w, h}
	}
	return p
}

// WithColor sets the tint color and returns the panel, for chained
// construction.
func (p *Panel) WithColor(c colors.Color) *Panel {
	p.SetColor(c)
	return p
}

// Color returns the tint color.
func (p *Panel) Color() colors.Color { return p.color }

// SetColor replaces the tint color and marks it dirty.
func (p *Panel) SetColor(c colors.Color) {
	p.color = c
	p.colorDirty = true
}

// SetAlpha replaces the alpha channel of the tint color.
func (p *Panel) SetAlpha(a uint8) {
	p.color.A = a
	p.colorDirty = true
}

func (p *Panel) ColorDirty() bool  { return p.colorDirty }
func (p *Panel) NeedRebuild() bool { return false }
func (p *Panel) ClearDirty()       { p.colorDirty = false }
func (p *Panel) isGraphic()        {}

// MinSize is the smallest size at which the borders keep their
// declared widths.
func (p *Panel) MinSize(text.Shaper, *fonts.Fonts) ([2]float32, bool) {
	return [2]float32{p.Border[0] + p.Border[2], p.Border[1] + p.Border[3]}, true
}

// Clone returns a copy of the panel, born color dirty.
func (p *Panel) Clone() Graphic {
	c := *p
	c.colorDirty = true
	return &c
}

// FlipX mirrors the panel horizontally.
func (p *Panel) FlipX() {
	for i := range p.UVRects {
		flipUVX(&p.UVRects[i])
	}
	p.Border[0], p.Border[2] = p.Border[2], p.Border[0]
	uv := &p.UVRects
	uv[0], uv[2] = uv[2], uv[0]
	uv[3], uv[5] = uv[5], uv[3]
	uv[6], uv[8] = uv[8], uv[6]
}

// FlipY mirrors the panel vertically.
func (p *Panel) FlipY() {
	for i := range p.UVRects {
		flipUVY(&p.UVRects[i])
	}
	p.Border[1], p.Border[3] = p.Border[3], p.Border[1]
	uv := &p.UVRects
	uv[0], uv[6] = uv[6], uv[0]
	uv[1], uv[7] = uv[7], uv[1]
	uv[2], uv[8] = uv[8], uv[2]
}

// Sprites expands the panel over the given rect. Borders wider than
// half the rect are clamped, and the clamped widths are rounded so
// the slices meet on pixel boundaries.
func (p *Panel) Sprites(rect [4]float32) [9]Sprite {
	width := math32.Max(rect[2]-rect[0], 0)
	height := math32.Max(rect[3]-rect[1], 0)
	border := [4]float32{
		math32.Round(math32.Min(p.Border[0], width/2)),
		math32.Round(math32.Min(p.Border[1], height/2)),
		math32.Round(math32.Min(p.Border[2], width/2)),
		math32.Round(math32.Min(p.Border[3], height/2)),
	}

	x := [3]float32{rect[0], rect[0] + border[0], rect[0] + width - border[2]}
	y := [3]float32{rect[1], rect[1] + border[1], rect[1] + height - border[3]}
	w := [3]float32{border[0], x[2] - x[1], border[2]}
	h := [3]float32{border[1], y[2] - y[1], border[3]}

	var out [9]Sprite
	for i := range out {
		out[i] = Sprite{
			Texture: p.Texture,
			Color:   p.color,
			Rect: [4]float32{
				x[i%3],
				y[i/3],
				x[i%3] + w[i%3],
				y[i/3] + h[i/3],
			},
			UV: p.UVRects[i],
		}
	}
	return out
}
