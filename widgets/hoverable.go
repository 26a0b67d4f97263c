// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
)

// Hoverable shows a tooltip while the pointer is over the control.
// hover is the tooltip control, anchored to a point and sized by its
// own layout; label is the Text child receiving the tooltip string.
// The tooltip follows the pointer, anchored at its fraction of the
// surface.
type Hoverable struct {
	core.BehaviourBase
	isOver bool
	text   string
	hover  core.Id
	label  core.Id
}

func NewHoverable(hover, label core.Id, text string) *Hoverable {
	return &Hoverable{hover: hover, label: label, text: text}
}

func (h *Hoverable) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (h *Hoverable) OnStart(this core.Id, ctx *core.Context) {
	ctx.Deactive(h.hover)
}

func (h *Hoverable) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch mouse.Event {
	case events.MouseEnter:
		ctx.Active(h.hover)
		if label, ok := ctx.Graphic(h.label).(*graphics.Text); ok {
			label.SetString(h.text)
		}
		ctx.DirtyLayout(h.label)
		ctx.MoveToFront(h.hover)
		h.isOver = true
	case events.MouseExit:
		ctx.Deactive(h.hover)
		h.isOver = false
	case events.MouseMoved:
		if h.isOver {
			size := ctx.Size(core.Root)
			x := mouse.Pos[0] / size[0]
			y := mouse.Pos[1] / size[1]
			ctx.SetAnchors(h.hover, [4]float32{x, y, x, y})
		}
	}
	return true
}
