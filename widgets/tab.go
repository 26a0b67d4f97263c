// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
)

// Select asks a [TabButton] to become the selected one of its group.
type Select struct{}

// unselected tells the previously selected tab to stand down.
type unselected struct{}

// ButtonGroup holds the selection shared by a set of [TabButton]s.
// Copies of a group are handles to the same selection.
type ButtonGroup struct {
	inner *buttonGroupState
}

type buttonGroupState struct {
	selected core.Id
	onChange func(selected core.Id, ctx *core.Context)
}

// NewButtonGroup creates a group. onChange, which may be nil, runs
// whenever the selection moves to another tab.
func NewButtonGroup(onChange func(selected core.Id, ctx *core.Context)) ButtonGroup {
	return ButtonGroup{inner: &buttonGroupState{onChange: onChange}}
}

// Selected returns the selected tab control, zero when none yet.
func (g ButtonGroup) Selected() core.Id {
	return g.inner.selected
}

func (g ButtonGroup) setSelected(selected core.Id, ctx *core.Context) {
	g.inner.selected = selected
	if g.inner.onChange != nil {
		g.inner.onChange(selected, ctx)
	}
}

// TabButton is the radio button of a tab row. Selecting it unselects
// the rest of its group; the selected tab keeps its page control
// active, the others keep theirs inactive. Send [Select] to pick a
// tab programmatically.
type TabButton struct {
	core.BehaviourBase
	group    ButtonGroup
	page     core.Id
	selected bool
	click    bool
	style    style.TabStyle
}

// NewTabButton creates a tab bound to the page control. Exactly one
// tab of a group should start selected.
func NewTabButton(group ButtonGroup, page core.Id, selected bool, st style.TabStyle) *TabButton {
	return &TabButton{group: group, page: page, selected: selected, style: st}
}

func (t *TabButton) selectTab(this core.Id, ctx *core.Context) {
	if prev := t.group.Selected(); !prev.IsZero() {
		if prev == this {
			return
		}
		ctx.SendEventTo(prev, unselected{})
	}
	t.selected = true
	ctx.Active(t.page)
	t.group.setSelected(this, ctx)
	ctx.SetGraphic(this, graphics.Clone(t.style.Selected))
}

func (t *TabButton) unselectTab(this core.Id, ctx *core.Context) {
	ctx.Deactive(t.page)
	t.selected = false
	ctx.SetGraphic(this, graphics.Clone(t.style.Unselected))
}

func (t *TabButton) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (t *TabButton) OnStart(this core.Id, ctx *core.Context) {
	if t.selected {
		t.selectTab(this, ctx)
	} else {
		t.unselectTab(this, ctx)
	}
}

func (t *TabButton) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch event.(type) {
	case unselected:
		t.unselectTab(this, ctx)
	case Select:
		t.selectTab(this, ctx)
	}
}

func (t *TabButton) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseEnter:
		t.click = false
		if !t.selected {
			ctx.SetGraphic(this, graphics.Clone(t.style.Hover))
		}
	case mouse.Event == events.MouseExit:
		if !t.selected {
			ctx.SetGraphic(this, graphics.Clone(t.style.Unselected))
		}
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		if !t.selected {
			t.click = true
			ctx.SetGraphic(this, graphics.Clone(t.style.Pressed))
		}
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		if !t.selected {
			if t.click {
				t.selectTab(this, ctx)
			} else {
				ctx.SetGraphic(this, graphics.Clone(t.style.Unselected))
			}
		}
	}
	return true
}
