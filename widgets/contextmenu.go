// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/style"
)

// repos re-anchors an open popup that would overflow the surface. The
// widget sends it to itself right after opening; queued events only
// run once layout settled, so the handler sees the popup's final size.
type repos struct{}

// ContextMenu opens a popup of its menu at the pointer when the right
// button releases over the control. The popup flips left or up when it
// would overflow the surface, and a press anywhere outside closes it.
type ContextMenu struct {
	core.BehaviourBase
	menu  *Menu
	style *style.MenuStyle

	blocker core.Id
	open    core.Id
}

// NewContextMenu creates a context menu behaviour for the control
// whose area accepts the right click.
func NewContextMenu(st *style.MenuStyle, menu *Menu) *ContextMenu {
	return &ContextMenu{menu: menu, style: st}
}

func (c *ContextMenu) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (c *ContextMenu) OnStart(this core.Id, ctx *core.Context) {
	c.blocker = ctx.CreateControl().
		Active(false).
		Behaviour(NewBlocker(func(_ core.Id, ctx *core.Context) {
			ctx.SendEventTo(this, CloseMenu{})
		})).
		Build()
}

func (c *ContextMenu) OnDeactive(this core.Id, ctx *core.Context) {
	c.closeMenu(ctx)
}

func (c *ContextMenu) OnRemove(this core.Id, ctx *core.Context) {
	c.closeMenu(ctx)
	ctx.Remove(c.blocker)
}

func (c *ContextMenu) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch event.(type) {
	case ItemClicked, CloseMenu:
		c.closeMenu(ctx)
	case repos:
		if c.open.IsZero() {
			return
		}
		desktop := ctx.Rect(ctx.Parent(c.open))
		menuRect := ctx.Rect(c.open)
		width := menuRect[2] - menuRect[0]
		height := menuRect[3] - menuRect[1]
		margins := ctx.Margins(c.open)
		if menuRect[2] > desktop[2] && menuRect[0]-width > 0 {
			margins[0] -= width
			margins[2] = margins[0]
		}
		if menuRect[3] > desktop[3] && menuRect[1]-height > 0 {
			margins[1] -= height
			margins[3] = margins[1]
		}
		ctx.SetMargins(c.open, margins)
	}
}

func (c *ContextMenu) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	if mouse.Event != events.MouseUp || mouse.Button != events.RightButton {
		return false
	}
	if !c.open.IsZero() {
		return false
	}
	c.open = openMenuPopup(ctx, c.menu, c.style, this, mouse.Pos)
	ctx.SendEventTo(this, repos{})
	// the popup build is still queued and commits after this front move
	ctx.MoveToFront(c.blocker)
	ctx.Active(c.blocker)
	return true
}

func (c *ContextMenu) closeMenu(ctx *core.Context) {
	if c.open.IsZero() {
		return
	}
	ctx.Remove(c.open)
	c.open = core.Id{}
	ctx.Deactive(c.blocker)
}
