// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
)

const (
	dragLeft uint8 = 1 << iota
	dragRight
	dragTop
	dragBottom
)

// all four borders at once is a plain move
const dragMove = dragLeft | dragRight | dragTop | dragBottom

// windowGrip is the width of the resize band inside each border.
const windowGrip = 5.0

// Window moves and resizes its own control by dragging. A left press
// within windowGrip of a border grabs that border, corners grab two,
// and a press anywhere else moves the whole window. The drag locks
// the pointer, honours the control's min size and keeps the grab
// point inside the parent rect so the window stays reachable.
type Window struct {
	core.BehaviourBase
	state        uint8
	startPos     [2]float32
	startMargins [4]float32
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (w *Window) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		rect := ctx.Rect(this)
		if mouse.Pos[0]-rect[0] < windowGrip {
			w.state |= dragLeft
		} else if rect[2]-mouse.Pos[0] < windowGrip {
			w.state |= dragRight
		}
		if mouse.Pos[1]-rect[1] < windowGrip {
			w.state |= dragTop
		} else if rect[3]-mouse.Pos[1] < windowGrip {
			w.state |= dragBottom
		}
		if w.state == 0 {
			w.state = dragMove
		}
		ctx.LockOver(true, mouse.Pointer)
		margins := ctx.Margins(this)
		min := ctx.MinSize(this)
		if margins[2]-margins[0] < min[0] {
			margins[2] = margins[0] + min[0]
		}
		if margins[3]-margins[1] < min[1] {
			margins[3] = margins[1] + min[1]
		}
		w.startPos = mouse.Pos
		w.startMargins = margins
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		w.state = 0
		ctx.LockOver(false, mouse.Pointer)
	case mouse.Event == events.MouseMoved:
		if w.state == 0 {
			break
		}
		desktop := ctx.Rect(ctx.Parent(this))
		x := math32.Min(math32.Max(mouse.Pos[0], desktop[0]), desktop[2])
		y := math32.Min(math32.Max(mouse.Pos[1], desktop[1]), desktop[3])
		delta := [2]float32{x - w.startPos[0], y - w.startPos[1]}

		margins := w.startMargins
		if w.state == dragMove {
			ctx.SetMargins(this, [4]float32{
				margins[0] + delta[0],
				margins[1] + delta[1],
				margins[2] + delta[0],
				margins[3] + delta[1],
			})
			break
		}
		min := ctx.MinSize(this)
		if w.state&dragLeft != 0 {
			margins[0] += delta[0]
		}
		if w.state&dragTop != 0 {
			margins[1] += delta[1]
		}
		if w.state&dragRight != 0 {
			margins[2] += delta[0]
		}
		if w.state&dragBottom != 0 {
			margins[3] += delta[1]
		}
		if margins[2]-margins[0] < min[0] {
			if w.state&dragLeft != 0 {
				margins[0] = margins[2] - min[0]
			} else {
				margins[2] = margins[0] + min[0]
			}
		}
		if margins[3]-margins[1] < min[1] {
			if w.state&dragTop != 0 {
				margins[1] = margins[3] - min[1]
			} else {
				margins[3] = margins[1] + min[1]
			}
		}
		ctx.SetMargins(this, margins)
	}
	return true
}
