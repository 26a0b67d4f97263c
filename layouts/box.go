// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
)

// VBoxLayout stacks children top to bottom. Each child spans the full
// width inside the margins; heights are the child min sizes, with
// leftover height split between expanding children by their RatioY
// weights. When nothing expands, Align places the whole stack.
type VBoxLayout struct {
	// Spacing is the gap between consecutive children.
	Spacing float32

	// Margins inset the stack from the control rect, [left, top,
	// right, bottom].
	Margins [4]float32

	// Align places the stack in leftover vertical space when no
	// child expands.
	Align Align
}

// NewVBox returns a vertical box layout.
func NewVBox(spacing float32, margins [4]float32, align Align) *VBoxLayout {
	return &VBoxLayout{Spacing: spacing, Margins: margins, Align: align}
}

func (l *VBoxLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	return boxMinSize(this, ctx, 1, l.Spacing, l.Margins)
}

func (l *VBoxLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	boxArrange(this, ctx, 1, l.Spacing, l.Margins, l.Align)
}

// HBoxLayout is [VBoxLayout] turned sideways: children go left to
// right, expansion and Align work on the horizontal axis.
type HBoxLayout struct {
	Spacing float32
	Margins [4]float32
	Align   Align
}

// NewHBox returns a horizontal box layout.
func NewHBox(spacing float32, margins [4]float32, align Align) *HBoxLayout {
	return &HBoxLayout{Spacing: spacing, Margins: margins, Align: align}
}

func (l *HBoxLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	return boxMinSize(this, ctx, 0, l.Spacing, l.Margins)
}

func (l *HBoxLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	boxArrange(this, ctx, 0, l.Spacing, l.Margins, l.Align)
}

// boxMinSize sums the child min sizes along the main axis and takes
// the max across it. axis is 0 for a horizontal box, 1 for a vertical
// one.
func boxMinSize(this core.Id, ctx *core.MinSizeContext, axis int, spacing float32, margins [4]float32) [2]float32 {
	min := [2]float32{margins[0] + margins[2], margins[1] + margins[3]}
	children := ctx.Children(this)
	if len(children) == 0 {
		return min
	}
	cross := 1 - axis
	min[axis] += spacing * float32(len(children)-1)
	var maxCross float32
	for _, child := range children {
		m := ctx.MinSize(child)
		min[axis] += m[axis]
		maxCross = math32.Max(maxCross, m[cross])
	}
	min[cross] += maxCross
	return min
}

func boxArrange(this core.Id, ctx *core.LayoutContext, axis int, spacing float32, margins [4]float32, align Align) {
	children := ctx.Children(this)
	if len(children) == 0 {
		return
	}
	reserved := spacing * float32(len(children)-1)
	var weight float32
	for _, child := range children {
		layouting := ctx.Layouting(child)
		reserved += layouting.MinSize()[axis]
		if expands(layouting, axis) {
			weight += ratio(layouting, axis)
		}
	}

	rect := ctx.Rect(this)
	cross := 1 - axis
	lo := rect[cross] + margins[cross]
	hi := rect[cross+2] - margins[cross+2]

	span := rect[axis+2] - rect[axis] - margins[axis] - margins[axis+2]
	free := span - reserved
	pos := rect[axis] + margins[axis]
	grow := free > 0 && weight != 0
	if !grow {
		pos += align.offset(free)
	}
	for _, child := range children {
		layouting := ctx.Layouting(child)
		size := layouting.MinSize()[axis]
		if grow && expands(layouting, axis) {
			size += free * ratio(layouting, axis) / weight
		}
		var out [4]float32
		out[axis], out[axis+2] = pos, pos+size
		out[cross], out[cross+2] = lo, hi
		ctx.SetDesignedRect(child, out)
		pos += spacing + size
	}
}
