// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
)

// Slider drags a handle child over a slide area child, mapping the
// pointer x linearly into [min, max] and snapping to the nearest
// integer. A left press anywhere on the slider grabs the pointer, so
// the drag keeps working outside the control. onChange runs on every
// value update during the drag, onRelease once the button goes up;
// either may be nil.
type Slider struct {
	core.BehaviourBase
	handle    core.Id
	slideArea core.Id
	dragging  bool
	mouseX    float32
	min       float32
	max       float32
	value     float32
	style     style.OnFocusStyle
	onChange  func(value float32, this core.Id, ctx *core.Context)
	onRelease func(value float32, this core.Id, ctx *core.Context)
}

func NewSlider(
	handle, slideArea core.Id,
	min, max, start float32,
	st style.OnFocusStyle,
	onChange, onRelease func(value float32, this core.Id, ctx *core.Context),
) *Slider {
	return &Slider{
		handle:    handle,
		slideArea: slideArea,
		min:       min,
		max:       max,
		value:     start,
		style:     st,
		onChange:  onChange,
		onRelease: onRelease,
	}
}

// Value reports the current value.
func (s *Slider) Value() float32 {
	return s.value
}

func (s *Slider) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputFocus
}

func (s *Slider) OnActive(this core.Id, ctx *core.Context) {
	s.setHandlePos(this, ctx)
	ctx.SetGraphic(this, graphics.Clone(s.style.Normal))
}

func (s *Slider) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	if focus {
		ctx.SetGraphic(this, graphics.Clone(s.style.Focus))
	} else {
		ctx.SetGraphic(this, graphics.Clone(s.style.Normal))
	}
}

func (s *Slider) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		s.dragging = true
		ctx.LockOver(true, mouse.Pointer)
		s.mouseX = mouse.Pos[0]
		s.updateValue(ctx)
		s.setHandlePos(this, ctx)
		if s.onChange != nil {
			s.onChange(s.value, this, ctx)
		}
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		if s.dragging {
			s.dragging = false
			s.setHandlePos(this, ctx)
			ctx.LockOver(false, mouse.Pointer)
			if s.onRelease != nil {
				s.onRelease(s.value, this, ctx)
			}
		}
	case mouse.Event == events.MouseMoved:
		s.mouseX = mouse.Pos[0]
		if s.dragging {
			prev := s.value
			s.updateValue(ctx)
			s.setHandlePos(this, ctx)
			if s.value != prev && s.onChange != nil {
				s.onChange(s.value, this, ctx)
			}
		}
	}
	return true
}

func (s *Slider) updateValue(ctx *core.Context) {
	area := ctx.Rect(s.slideArea)
	rel := float32(0)
	if w := area[2] - area[0]; w != 0 {
		rel = (s.mouseX - area[0]) / w
	}
	rel = math32.Max(0, math32.Min(1, rel))
	s.value = math32.Round(rel*(s.max-s.min) + s.min)
}

// setHandlePos pins the handle's horizontal anchors to the value's
// position along the slide area, expressed as a fraction of this
// control so the handle stays put across resizes.
func (s *Slider) setHandlePos(this core.Id, ctx *core.Context) {
	thisRect := ctx.Rect(this)
	area := ctx.Rect(s.slideArea)

	rel := float32(0)
	if s.max > s.min {
		rel = (s.value - s.min) / (s.max - s.min)
	}
	rel = math32.Max(0, math32.Min(1, rel))

	width := thisRect[2] - thisRect[0]
	if width == 0 {
		return
	}
	marginLeft := (area[0] - thisRect[0]) / width
	marginRight := (thisRect[2] - area[2]) / width
	x := marginLeft + (1-marginLeft-marginRight)*rel

	anchors := ctx.Anchors(s.handle)
	anchors[0] = x
	anchors[2] = x
	ctx.SetAnchors(s.handle, anchors)
}
