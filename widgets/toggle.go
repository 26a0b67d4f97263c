// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
)

// Toggle is a checkbox. It sits on the background control; button is
// the box child it tints on hover and press, marker is the check mark
// child whose alpha tracks the state. Every state change, including
// the initial one, is announced with [ToggleChanged], and sending
// [SetValue] to the control flips it programmatically.
type Toggle struct {
	core.BehaviourBase
	click           bool
	value           bool
	button          core.Id
	marker          core.Id
	buttonStyle     style.ButtonStyle
	backgroundStyle style.OnFocusStyle
}

func NewToggle(button, marker core.Id, value bool, buttonStyle style.ButtonStyle, backgroundStyle style.OnFocusStyle) *Toggle {
	return &Toggle{
		value:           value,
		button:          button,
		marker:          marker,
		buttonStyle:     buttonStyle,
		backgroundStyle: backgroundStyle,
	}
}

// Value reports the current state.
func (t *Toggle) Value() bool {
	return t.value
}

func (t *Toggle) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputFocus
}

func (t *Toggle) OnStart(this core.Id, ctx *core.Context) {
	ctx.SendEvent(ToggleChanged{Id: this, Value: t.value})
	ctx.SetGraphic(this, graphics.Clone(t.backgroundStyle.Normal))
	ctx.SetGraphic(t.button, graphics.Clone(t.buttonStyle.Normal))
	t.setMarker(ctx)
}

func (t *Toggle) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	if focus {
		ctx.SetGraphic(this, graphics.Clone(t.backgroundStyle.Focus))
	} else {
		ctx.SetGraphic(this, graphics.Clone(t.backgroundStyle.Normal))
	}
}

func (t *Toggle) OnEvent(event any, this core.Id, ctx *core.Context) {
	if set, ok := event.(SetValue); ok {
		t.value = set.Value
		t.setMarker(ctx)
		ctx.SendEvent(ToggleChanged{Id: this, Value: t.value})
	}
}

func (t *Toggle) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseEnter:
		graphics.SetColor(ctx.Graphic(t.button), colors.RGBA(190, 190, 190, 255))
	case mouse.Event == events.MouseExit:
		t.click = false
		graphics.SetColor(ctx.Graphic(t.button), colors.RGBA(200, 200, 200, 255))
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		t.click = true
		graphics.SetColor(ctx.Graphic(t.button), colors.RGBA(170, 170, 170, 255))
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		graphics.SetColor(ctx.Graphic(t.button), colors.RGBA(190, 190, 190, 255))
		if t.click {
			t.value = !t.value
			t.setMarker(ctx)
			ctx.SendEvent(ToggleChanged{Id: this, Value: t.value})
		}
	}
	return true
}

func (t *Toggle) setMarker(ctx *core.Context) {
	if t.value {
		graphics.SetAlpha(ctx.Graphic(t.marker), 255)
	} else {
		graphics.SetAlpha(ctx.Graphic(t.marker), 0)
	}
}
