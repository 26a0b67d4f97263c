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

// setIndex tells a MenuItem its row index after the menu rebuilds.
type setIndex struct {
	index int
}

// showMenu populates and raises a DropdownMenu.
type showMenu[T any] struct {
	owner    core.Id
	selected int
	items    []T
}

// menuClosed tells the owner its menu closed without a selection.
type menuClosed struct{}

// MenuItem is one row of a [DropdownMenu]: a button that reports a
// click to the menu together with its row index. Create one per item
// from the menu's createItem callback.
type MenuItem struct {
	core.BehaviourBase
	index int
	state uint8
	menu  core.Id
	focus bool
	style style.ButtonStyle
}

// NewMenuItem creates a row behaviour reporting to the menu.
func NewMenuItem(menu core.Id, st style.ButtonStyle) *MenuItem {
	return &MenuItem{menu: menu, style: st}
}

func (m *MenuItem) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputFocus
}

func (m *MenuItem) OnActive(this core.Id, ctx *core.Context) {
	ctx.SetGraphic(this, graphics.Clone(m.style.Normal))
}

func (m *MenuItem) OnEvent(event any, this core.Id, ctx *core.Context) {
	if ev, ok := event.(setIndex); ok {
		m.index = ev.index
	}
}

func (m *MenuItem) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseEnter:
		m.state = buttonHover
		ctx.SetGraphic(this, graphics.Clone(m.style.Hover))
	case mouse.Event == events.MouseExit:
		m.state = buttonNormal
		if m.focus {
			ctx.SetGraphic(this, graphics.Clone(m.style.Focus))
		} else {
			ctx.SetGraphic(this, graphics.Clone(m.style.Normal))
		}
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		m.state = buttonPressed
		ctx.SetGraphic(this, graphics.Clone(m.style.Pressed))
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		if m.state == buttonPressed {
			ctx.SendEventTo(m.menu, ItemClicked{Index: m.index})
		}
		m.state = buttonHover
		ctx.SetGraphic(this, graphics.Clone(m.style.Hover))
	}
	return true
}

func (m *MenuItem) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	m.focus = focus
	if m.state != buttonNormal {
		return
	}
	if focus {
		ctx.SetGraphic(this, graphics.Clone(m.style.Focus))
	} else {
		ctx.SetGraphic(this, graphics.Clone(m.style.Normal))
	}
}

// DropdownMenu is the popup a [Dropdown] raises: on show it rebuilds
// one row per item through createItem, focuses the selected row and
// activates the blocker behind itself. A clicked row reports back to
// the owner and closes the menu.
//
// The control starts inactive; give it a vertical box layout, for
// example layouts.NewVBox(0, [4]float32{1, 1, 1, 1}, layouts.Start).
// The blocker spans the surface with a [Blocker] behaviour whose press
// sends [CloseMenu] to the menu.
type DropdownMenu[T any] struct {
	core.BehaviourBase
	blocker    core.Id
	owner      core.Id
	createItem func(item T, menu core.Id, ctx *core.Context) core.Id
}

// NewDropdownMenu creates the popup behaviour. createItem builds one
// row control, parented to menu, typically with a [MenuItem]
// behaviour; the menu delivers the row index afterwards.
func NewDropdownMenu[T any](blocker core.Id, createItem func(item T, menu core.Id, ctx *core.Context) core.Id) *DropdownMenu[T] {
	return &DropdownMenu[T]{blocker: blocker, createItem: createItem}
}

// OnDeactive releases the blocker, so deactivating the menu from
// outside, as [Dropdown] does on its own deactivation, closes cleanly.
func (m *DropdownMenu[T]) OnDeactive(this core.Id, ctx *core.Context) {
	ctx.Deactive(m.blocker)
}

func (m *DropdownMenu[T]) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch ev := event.(type) {
	case showMenu[T]:
		m.owner = ev.owner
		if ev.selected < 0 {
			ctx.SetFocus(this)
		}
		for _, child := range ctx.Children(this) {
			ctx.Remove(child)
		}
		for i, item := range ev.items {
			id := m.createItem(item, this, ctx)
			ctx.SendEventTo(id, setIndex{index: i})
			if ev.selected == i {
				ctx.SetFocus(id)
			}
		}
		ctx.Active(m.blocker)
		ctx.MoveToFront(m.blocker)
		ctx.MoveToFront(this)
	case CloseMenu:
		m.close(this, ctx)
	case ItemClicked:
		ctx.SendEventTo(m.owner, ev)
		m.close(this, ctx)
	}
}

func (m *DropdownMenu[T]) close(this core.Id, ctx *core.Context) {
	ctx.Deactive(this)
	ctx.Deactive(m.blocker)
	ctx.SendEventTo(m.owner, menuClosed{})
}

// Dropdown swaps its control's graphic like a button and raises its
// menu just below the control on click, flipping above it when the
// popup would overflow the surface. A selection updates the remembered
// index and runs onSelect; clicking the control again or outside the
// popup closes it.
type Dropdown[T any] struct {
	core.BehaviourBase
	items    []T
	selected int
	menu     core.Id
	state    uint8
	focus    bool
	opened   bool
	onSelect func(index int, item T, this core.Id, ctx *core.Context)
	style    style.ButtonStyle
}

// NewDropdown creates a dropdown over the items. menu is a control
// with a [DropdownMenu] behaviour for the same item type. Nothing is
// selected at the start.
func NewDropdown[T any](items []T, menu core.Id, onSelect func(index int, item T, this core.Id, ctx *core.Context), st style.ButtonStyle) *Dropdown[T] {
	return &Dropdown[T]{items: items, selected: -1, menu: menu, onSelect: onSelect, style: st}
}

// Selected returns the index of the selected item, -1 for none.
func (d *Dropdown[T]) Selected() int {
	return d.selected
}

func (d *Dropdown[T]) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputFocus
}

func (d *Dropdown[T]) OnActive(this core.Id, ctx *core.Context) {
	ctx.SetGraphic(this, graphics.Clone(d.style.Normal))
}

func (d *Dropdown[T]) OnDeactive(this core.Id, ctx *core.Context) {
	if d.opened {
		d.opened = false
		ctx.Deactive(d.menu)
	}
}

func (d *Dropdown[T]) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch ev := event.(type) {
	case ItemClicked:
		d.selected = ev.Index
		d.opened = false
		if d.onSelect != nil {
			d.onSelect(ev.Index, d.items[ev.Index], this, ctx)
		}
	case menuClosed:
		d.opened = false
	case repos:
		if !d.opened {
			return
		}
		desktop := ctx.Rect(ctx.Parent(d.menu))
		menuRect := ctx.Rect(d.menu)
		height := menuRect[3] - menuRect[1]
		r := ctx.Rect(this)
		if menuRect[3] > desktop[3] && r[1]-height > 0 {
			margins := ctx.Margins(d.menu)
			margins[1] = r[1] - height
			margins[3] = margins[1]
			ctx.SetMargins(d.menu, margins)
		}
	}
}

func (d *Dropdown[T]) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseEnter:
		d.state = buttonHover
		ctx.SetGraphic(this, graphics.Clone(d.style.Hover))
	case mouse.Event == events.MouseExit:
		d.state = buttonNormal
		if d.focus {
			ctx.SetGraphic(this, graphics.Clone(d.style.Focus))
		} else {
			ctx.SetGraphic(this, graphics.Clone(d.style.Normal))
		}
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		d.state = buttonPressed
		ctx.SetGraphic(this, graphics.Clone(d.style.Pressed))
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		if d.state == buttonPressed {
			if !d.opened {
				d.open(this, ctx)
			} else {
				d.opened = false
				ctx.Deactive(d.menu)
			}
		}
		d.state = buttonHover
		ctx.SetGraphic(this, graphics.Clone(d.style.Hover))
	}
	return true
}

func (d *Dropdown[T]) open(this core.Id, ctx *core.Context) {
	d.opened = true
	ctx.Active(d.menu)
	r := ctx.Rect(this)
	ctx.SetAnchors(d.menu, [4]float32{0, 0, 0, 0})
	ctx.SetMargins(d.menu, [4]float32{r[0], r[3], r[2], r[3]})
	ctx.SendEventTo(d.menu, showMenu[T]{owner: this, selected: d.selected, items: d.items})
	ctx.SendEventTo(this, repos{})
}

func (d *Dropdown[T]) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	d.focus = focus
	if d.state != buttonNormal {
		return
	}
	if focus {
		ctx.SetGraphic(this, graphics.Clone(d.style.Focus))
	} else {
		ctx.SetGraphic(this, graphics.Clone(d.style.Normal))
	}
}
