// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
)

// TextAction binds a mouse callback to a byte range of the text, for
// links and the like. The callback hears synthesized Enter and Exit
// as the pointer crosses the range's glyphs, Moved while over them,
// and Down and Up only while over them.
type TextAction struct {
	Range   [2]int
	OnMouse func(mouse events.MouseInfo, this core.Id, ctx *core.Context)
}

type interactiveAction struct {
	TextAction
	on bool
}

// InteractiveText dispatches mouse events to byte ranges of its
// control's Text graphic. The pointer position is resolved against
// the laid out glyphs, so wrapping and alignment are accounted for.
type InteractiveText struct {
	core.BehaviourBase
	actions []interactiveAction
}

func NewInteractiveText(actions ...TextAction) *InteractiveText {
	t := &InteractiveText{actions: make([]interactiveAction, len(actions))}
	for i, a := range actions {
		t.actions[i].TextAction = a
	}
	return t
}

func (t *InteractiveText) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (t *InteractiveText) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	txt, ok := ctx.Graphic(this).(*graphics.Text)
	if !ok {
		return false
	}
	switch mouse.Event {
	case events.MouseExit:
		for i := range t.actions {
			a := &t.actions[i]
			if a.on {
				a.on = false
				a.OnMouse(mouse, this, ctx)
			}
		}
	case events.MouseDown, events.MouseUp:
		for i := range t.actions {
			a := &t.actions[i]
			if a.on {
				a.OnMouse(mouse, this, ctx)
			}
		}
	case events.MouseMoved:
		anchor := txt.Anchor(ctx.Rect(this))
		layout := txt.Layout(ctx.Shaper(), ctx.Fonts())
		pos := [2]float32{mouse.Pos[0] - anchor[0], mouse.Pos[1] - anchor[1]}
		index := hitByte(layout, pos)
		for i := range t.actions {
			a := &t.actions[i]
			on := index >= 0 && index >= a.Range[0] && index < a.Range[1]
			if on && !a.on {
				enter := mouse
				enter.Event = events.MouseEnter
				a.OnMouse(enter, this, ctx)
			} else if !on && a.on {
				exit := mouse
				exit.Event = events.MouseExit
				a.OnMouse(exit, this, ctx)
			}
			if on {
				a.OnMouse(mouse, this, ctx)
			}
			a.on = on
		}
	}
	return true
}

// hitByte resolves a position relative to the text anchor to the byte
// index of the cluster under it, -1 when it misses the glyphs.
func hitByte(l *text.TextLayout, pos [2]float32) int {
	lines := l.Lines()
	if len(lines) == 0 {
		return -1
	}
	li := l.LineFromY(pos[1])
	ln := &lines[li]
	if pos[1] < ln.Y-ln.Ascent || pos[1] >= ln.Y+ln.Descent {
		return -1
	}
	glyphs := l.Glyphs()
	for g := ln.Glyphs[0]; g < ln.Glyphs[1]; g++ {
		gl := &glyphs[g]
		if gl.Width <= 0 || pos[0] < gl.Pos[0] || pos[0] >= gl.Pos[0]+gl.Width {
			continue
		}
		// marks carry an empty range; the cluster's first glyph has
		// the byte range
		for g > 0 && glyphs[g].Range[0] == glyphs[g].Range[1] {
			g--
		}
		return glyphs[g].Range[0]
	}
	return -1
}
