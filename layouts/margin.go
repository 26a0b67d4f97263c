// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
)

// MarginLayout insets every child from the control rect by fixed
// margins. The min size is the largest child min size plus the
// margins.
type MarginLayout struct {
	// Margins are the insets, [left, top, right, bottom].
	Margins [4]float32
}

// NewMargin returns a margin layout with the given insets.
func NewMargin(margins [4]float32) *MarginLayout {
	return &MarginLayout{Margins: margins}
}

func (l *MarginLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	var inner [2]float32
	for _, child := range ctx.Children(this) {
		m := ctx.MinSize(child)
		inner[0] = math32.Max(inner[0], m[0])
		inner[1] = math32.Max(inner[1], m[1])
	}
	return [2]float32{
		inner[0] + l.Margins[0] + l.Margins[2],
		inner[1] + l.Margins[1] + l.Margins[3],
	}
}

func (l *MarginLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	rect := ctx.Rect(this)
	inner := [4]float32{
		rect[0] + l.Margins[0],
		rect[1] + l.Margins[1],
		rect[2] - l.Margins[2],
		rect[3] - l.Margins[3],
	}
	for _, child := range ctx.Children(this) {
		ctx.SetDesignedRect(child, inner)
	}
}

// RatioLayout gives every child the largest width to height ratio
// true rect that fits the control, placed by Align. The min size
// keeps the ratio over the largest child min size.
type RatioLayout struct {
	// Ratio is width over height.
	Ratio float32

	// Align places the inscribed rect inside the control, one entry
	// per axis.
	Align [2]Align
}

// NewRatio returns a ratio layout.
func NewRatio(ratio float32, align [2]Align) *RatioLayout {
	return &RatioLayout{Ratio: ratio, Align: align}
}

func (l *RatioLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	var min [2]float32
	for _, child := range ctx.Children(this) {
		m := ctx.MinSize(child)
		min[0] = math32.Max(min[0], m[0])
		min[1] = math32.Max(min[1], m[1])
	}
	if min[0] > min[1]*l.Ratio {
		return [2]float32{min[0], min[0] / l.Ratio}
	}
	return [2]float32{min[1] * l.Ratio, min[1]}
}

func (l *RatioLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	rect := ctx.Rect(this)
	w := rect[2] - rect[0]
	h := rect[3] - rect[1]
	iw, ih := w, w/l.Ratio
	if ih > h {
		iw, ih = h*l.Ratio, h
	}
	x := rect[0] + l.Align[0].offset(w-iw)
	y := rect[1] + l.Align[1].offset(h-ih)
	inner := [4]float32{x, y, x + iw, y + ih}
	for _, child := range ctx.Children(this) {
		ctx.SetDesignedRect(child, inner)
	}
}
