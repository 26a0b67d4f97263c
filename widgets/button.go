// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
)

const (
	buttonNormal = iota
	buttonHover
	buttonPressed
)

// Button swaps its control's graphic between the four button styles
// and fires a callback on click. A press followed by a release over
// the control counts; leaving the control in between cancels it.
type Button struct {
	core.BehaviourBase
	state   uint8
	focus   bool
	onClick func(this core.Id, ctx *core.Context)
	style   style.ButtonStyle
}

func NewButton(st style.ButtonStyle, onClick func(this core.Id, ctx *core.Context)) *Button {
	return &Button{style: st, onClick: onClick}
}

// NewFocusableButton wraps a Button in an [OnKeyboardEvent] adapter,
// making it reachable with Tab and activable with Return or Space.
func NewFocusableButton(st style.ButtonStyle, onClick func(this core.Id, ctx *core.Context)) *OnKeyboardEvent {
	return NewOnKeyboardEvent(func(event events.KeyEvent, this core.Id, ctx *core.Context) bool {
		if event.Kind != events.KeyDown {
			return false
		}
		switch event.Code {
		case key.CodeReturn, key.CodeSpace:
			onClick(this, ctx)
			return true
		}
		return false
	}).Extends(NewButton(st, onClick))
}

func (b *Button) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (b *Button) OnActive(this core.Id, ctx *core.Context) {
	ctx.SetGraphic(this, graphics.Clone(b.style.Normal))
}

func (b *Button) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseEnter:
		b.state = buttonHover
		ctx.SetGraphic(this, graphics.Clone(b.style.Hover))
	case mouse.Event == events.MouseExit:
		b.state = buttonNormal
		if b.focus {
			ctx.SetGraphic(this, graphics.Clone(b.style.Focus))
		} else {
			ctx.SetGraphic(this, graphics.Clone(b.style.Normal))
		}
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		b.state = buttonPressed
		ctx.SetGraphic(this, graphics.Clone(b.style.Pressed))
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		if b.state == buttonPressed {
			b.onClick(this, ctx)
		}
		b.state = buttonHover
		ctx.SetGraphic(this, graphics.Clone(b.style.Hover))
	}
	return true
}

func (b *Button) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	b.focus = focus
	if b.state != buttonNormal {
		return
	}
	if focus {
		ctx.SetGraphic(this, graphics.Clone(b.style.Focus))
	} else {
		ctx.SetGraphic(this, graphics.Clone(b.style.Normal))
	}
}
