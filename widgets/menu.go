// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/layouts"
	"github.com/Rodrigodd/giui-sub001/style"
)

// Item is one entry of a [Menu].
type Item interface {
	isItem()
}

// Separator is a horizontal rule between entries.
type Separator struct{}

// ItemButton is a clickable entry. OnClick runs when the pointer
// presses and releases over the entry.
type ItemButton struct {
	Label   string
	OnClick func(this core.Id, ctx *core.Context)
}

// SubMenu is an entry that opens the nested menu beside it while
// hovered.
type SubMenu struct {
	Menu *Menu
}

func (Separator) isItem()  {}
func (ItemButton) isItem() {}
func (SubMenu) isItem()    {}

// Menu is the model of one menu: a name, shown by [MenuBar] on the
// header and by [SubMenu] on the entry, and the entries themselves.
// The same Menu can back any number of popups.
type Menu struct {
	Name  string
	Items []Item
}

// NewMenu creates a menu model.
func NewMenu(name string, items ...Item) *Menu {
	return &Menu{Name: name, Items: items}
}

// Blocker covers the surface under an open popup, swallowing every
// mouse event so the page below stops reacting. A press runs onDown,
// which the popup owner uses to close. The control is created by the
// embedder spanning the whole surface, starts inactive and is
// activated by the widget that raises the popup.
type Blocker struct {
	core.BehaviourBase
	onDown func(this core.Id, ctx *core.Context)
}

// NewBlocker creates a blocker behaviour. onDown may be nil.
func NewBlocker(onDown func(this core.Id, ctx *core.Context)) *Blocker {
	return &Blocker{onDown: onDown}
}

func (b *Blocker) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (b *Blocker) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	if mouse.Event == events.MouseDown && b.onDown != nil {
		b.onDown(this, ctx)
	}
	return true
}

// openMenuPopup builds a popup for the menu with its top left corner
// at pos, parented to the root so it floats over the page. The popup
// anchors to a zero area; the min size computed from the rows widens
// it rightwards and downwards.
func openMenuPopup(ctx *core.Context, menu *Menu, st *style.MenuStyle, owner core.Id, pos [2]float32) core.Id {
	return ctx.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{pos[0], pos[1], pos[0], pos[1]}).
		Graphic(graphics.Clone(st.Button.Normal)).
		Layout(layouts.NewVBox(0, [4]float32{}, layouts.Start)).
		Behaviour(NewMenuBehaviour(menu, st, owner)).
		Build()
}

// MenuBehaviour drives one open menu popup: it builds a row per item,
// highlights the row under the pointer, opens submenus on hover and
// fires the entry callbacks. [MenuBar], [ContextMenu] and submenu
// entries create these; give the control a vertical box layout when
// assembling one directly.
//
// A click on an [ItemButton] runs its callback and sends [ItemClicked]
// with the row index to the owner. Each popup in a submenu chain
// forwards the event to its own owner, so it ends up at the widget
// that opened the root popup, which closes the whole chain.
type MenuBehaviour struct {
	core.BehaviourBase
	menu  *Menu
	style *style.MenuStyle
	owner core.Id

	rows  []core.Id
	over  int
	open  int
	popup core.Id
	click bool
}

// NewMenuBehaviour creates the behaviour for one popup of the menu.
// Events announcing clicks go to owner; the zero id sends them to the
// application listeners instead.
func NewMenuBehaviour(menu *Menu, st *style.MenuStyle, owner core.Id) *MenuBehaviour {
	return &MenuBehaviour{menu: menu, style: st, owner: owner, over: -1, open: -1}
}

func (m *MenuBehaviour) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (m *MenuBehaviour) OnStart(this core.Id, ctx *core.Context) {
	m.rows = make([]core.Id, len(m.menu.Items))
	for i, item := range m.menu.Items {
		switch it := item.(type) {
		case Separator:
			row := ctx.CreateControl().
				MinSize([2]float32{0, 5}).
				Parent(this).
				Build()
			ctx.CreateControl().
				Margins([4]float32{8, 2, -8, -2}).
				Graphic(graphics.Clone(m.style.Separator)).
				Parent(row).
				Build()
			m.rows[i] = row
		case ItemButton:
			row := ctx.CreateControl().
				Layout(layouts.NewMargin([4]float32{18, 2, 18, 2})).
				Parent(this).
				Build()
			ctx.CreateControl().
				Graphic(graphics.NewText(it.Label, [2]int8{-1, 0}, m.style.Text)).
				Layout(layouts.FitGraphic{}).
				Parent(row).
				Build()
			m.rows[i] = row
		case SubMenu:
			row := ctx.CreateControl().
				Layout(layouts.NewHBox(0, [4]float32{18, 2, 2, 2}, layouts.Start)).
				Parent(this).
				Build()
			ctx.CreateControl().
				Graphic(graphics.NewText(it.Menu.Name, [2]int8{-1, 0}, m.style.Text)).
				Layout(layouts.FitGraphic{}).
				ExpandX(true).
				Parent(row).
				Build()
			ctx.CreateControl().
				MinSize([2]float32{16, 16}).
				FillY(core.ShrinkCenter).
				Graphic(graphics.Clone(m.style.Arrow)).
				Parent(row).
				Build()
			m.rows[i] = row
		}
	}
}

func (m *MenuBehaviour) OnDeactive(this core.Id, ctx *core.Context) {
	m.closeSubMenu(ctx)
	if m.over >= 0 {
		m.restoreOver(ctx)
		m.over = -1
	}
	m.click = false
}

func (m *MenuBehaviour) OnRemove(this core.Id, ctx *core.Context) {
	if m.open >= 0 {
		ctx.Remove(m.popup)
		m.open = -1
		m.popup = core.Id{}
	}
}

func (m *MenuBehaviour) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch event.(type) {
	case ItemClicked, CloseMenu:
		m.closeSubMenu(ctx)
		m.notifyOwner(event, ctx)
	}
}

func (m *MenuBehaviour) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch mouse.Event {
	case events.MouseEnter, events.MouseMoved:
		m.setOver(m.rowAt(mouse.Pos, ctx), this, ctx)
	case events.MouseExit:
		// keep the highlight on the row whose submenu is open, so
		// the path into the popup stays visible.
		if m.over >= 0 && m.over != m.open {
			m.restoreOver(ctx)
		}
		m.over = -1
		m.click = false
	case events.MouseDown:
		if mouse.Button == events.LeftButton {
			m.click = true
		}
	case events.MouseUp:
		if mouse.Button != events.LeftButton || !m.click || m.over < 0 {
			break
		}
		m.click = false
		if it, ok := m.menu.Items[m.over].(ItemButton); ok {
			if it.OnClick != nil {
				it.OnClick(this, ctx)
			}
			m.notifyOwner(ItemClicked{Index: m.over}, ctx)
		}
	}
	return true
}

// notifyOwner sends the event to the owner control, or to the
// application listeners when there is none.
func (m *MenuBehaviour) notifyOwner(event any, ctx *core.Context) {
	if m.owner.IsZero() {
		ctx.SendEvent(event)
		return
	}
	ctx.SendEventTo(m.owner, event)
}

// rowAt returns the index of the row under pos, topmost first, or -1.
func (m *MenuBehaviour) rowAt(pos [2]float32, ctx *core.Context) int {
	for i := len(m.rows) - 1; i >= 0; i-- {
		r := ctx.Rect(m.rows[i])
		if pos[0] >= r[0] && pos[0] < r[2] && pos[1] >= r[1] && pos[1] < r[3] {
			return i
		}
	}
	return -1
}

func (m *MenuBehaviour) setOver(i int, this core.Id, ctx *core.Context) {
	if i == m.over {
		return
	}
	if m.over >= 0 && m.over != m.open {
		m.restoreOver(ctx)
	}
	m.over = i
	m.click = false
	if i < 0 {
		return
	}
	switch m.menu.Items[i].(type) {
	case ItemButton, SubMenu:
		ctx.SetGraphic(m.rows[i], graphics.Clone(m.style.Button.Hover))
	}
	m.openSubMenu(i, this, ctx)
}

func (m *MenuBehaviour) restoreOver(ctx *core.Context) {
	switch m.menu.Items[m.over].(type) {
	case ItemButton, SubMenu:
		ctx.SetGraphic(m.rows[m.over], graphics.Clone(m.style.Button.Normal))
	}
}

// openSubMenu closes any open submenu and, if the row is a [SubMenu],
// opens its popup at the row's right edge. Hovering any other row kind
// only closes.
func (m *MenuBehaviour) openSubMenu(i int, this core.Id, ctx *core.Context) {
	if m.open == i {
		return
	}
	m.closeSubMenu(ctx)
	sub, ok := m.menu.Items[i].(SubMenu)
	if !ok {
		return
	}
	r := ctx.Rect(m.rows[i])
	m.open = i
	m.popup = openMenuPopup(ctx, sub.Menu, m.style, this, [2]float32{r[2], r[1]})
}

func (m *MenuBehaviour) closeSubMenu(ctx *core.Context) {
	if m.open < 0 {
		return
	}
	if m.open != m.over {
		ctx.SetGraphic(m.rows[m.open], graphics.Clone(m.style.Button.Normal))
	}
	ctx.Remove(m.popup)
	m.open = -1
	m.popup = core.Id{}
}

// MenuBar lays a header per menu across its control and opens the
// matching popup below a clicked header. While a menu is open, moving
// over another header switches to it, clicking the open header or
// anywhere outside closes, and the blocker is held active.
//
// Give the control a horizontal box layout. The blocker is a control
// spanning the surface with a [Blocker] behaviour whose press sends
// [CloseMenu] to the bar; assemble it over the page content and under
// the bar, starting inactive.
type MenuBar struct {
	core.BehaviourBase
	menus   []*Menu
	style   *style.MenuStyle
	blocker core.Id

	headers []core.Id
	over    int
	open    int
	popup   core.Id
}

// NewMenuBar creates a menu bar behaviour over the menu models.
func NewMenuBar(st *style.MenuStyle, blocker core.Id, menus []*Menu) *MenuBar {
	return &MenuBar{menus: menus, style: st, blocker: blocker, over: -1, open: -1}
}

func (m *MenuBar) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (m *MenuBar) OnStart(this core.Id, ctx *core.Context) {
	m.headers = make([]core.Id, len(m.menus))
	for i, menu := range m.menus {
		header := ctx.CreateControl().
			Graphic(graphics.Clone(m.style.Button.Normal)).
			Layout(layouts.NewMargin([4]float32{2, 2, 2, 2})).
			Parent(this).
			Build()
		ctx.CreateControl().
			Graphic(graphics.NewText(menu.Name, [2]int8{0, 0}, m.style.Text)).
			Layout(layouts.FitGraphic{}).
			Parent(header).
			Build()
		m.headers[i] = header
	}
}

func (m *MenuBar) OnDeactive(this core.Id, ctx *core.Context) {
	m.closeMenu(ctx)
	if m.over >= 0 {
		ctx.SetGraphic(m.headers[m.over], graphics.Clone(m.style.Button.Normal))
		m.over = -1
	}
}

func (m *MenuBar) OnRemove(this core.Id, ctx *core.Context) {
	if m.open >= 0 {
		ctx.Remove(m.popup)
		m.open = -1
		m.popup = core.Id{}
		if !m.blocker.IsZero() {
			ctx.Deactive(m.blocker)
		}
	}
}

func (m *MenuBar) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch event.(type) {
	case ItemClicked, CloseMenu:
		m.closeMenu(ctx)
	}
}

func (m *MenuBar) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch mouse.Event {
	case events.MouseEnter, events.MouseMoved:
		m.setOver(m.headerAt(mouse.Pos, ctx), this, ctx)
	case events.MouseExit:
		if m.over >= 0 && m.over != m.open {
			ctx.SetGraphic(m.headers[m.over], graphics.Clone(m.style.Button.Normal))
		}
		m.over = -1
	case events.MouseDown:
		if mouse.Button != events.LeftButton {
			break
		}
		if m.over < 0 || m.over == m.open {
			m.closeMenu(ctx)
		} else {
			m.openMenu(m.over, this, ctx)
		}
	}
	return true
}

func (m *MenuBar) headerAt(pos [2]float32, ctx *core.Context) int {
	for i := len(m.headers) - 1; i >= 0; i-- {
		r := ctx.Rect(m.headers[i])
		if pos[0] >= r[0] && pos[0] < r[2] && pos[1] >= r[1] && pos[1] < r[3] {
			return i
		}
	}
	return -1
}

func (m *MenuBar) setOver(i int, this core.Id, ctx *core.Context) {
	if i == m.over {
		return
	}
	if m.over >= 0 && m.over != m.open {
		ctx.SetGraphic(m.headers[m.over], graphics.Clone(m.style.Button.Normal))
	}
	m.over = i
	if i < 0 {
		return
	}
	if i != m.open {
		ctx.SetGraphic(m.headers[i], graphics.Clone(m.style.Button.Hover))
	}
	if m.open >= 0 && i != m.open {
		m.openMenu(i, this, ctx)
	}
}

func (m *MenuBar) openMenu(i int, this core.Id, ctx *core.Context) {
	if m.open == i {
		return
	}
	first := m.open < 0
	if m.open >= 0 {
		ctx.Remove(m.popup)
		if m.open != m.over {
			ctx.SetGraphic(m.headers[m.open], graphics.Clone(m.style.Button.Normal))
		}
	}
	m.open = i
	ctx.SetGraphic(m.headers[i], graphics.Clone(m.style.Button.Pressed))
	r := ctx.Rect(m.headers[i])
	m.popup = openMenuPopup(ctx, m.menus[i], m.style, this, [2]float32{r[0], r[3]})
	if first && !m.blocker.IsZero() {
		ctx.Active(m.blocker)
	}
}

func (m *MenuBar) closeMenu(ctx *core.Context) {
	if m.open < 0 {
		return
	}
	ctx.Remove(m.popup)
	g := m.style.Button.Normal
	if m.open == m.over {
		g = m.style.Button.Hover
	}
	ctx.SetGraphic(m.headers[m.open], graphics.Clone(g))
	m.open = -1
	m.popup = core.Id{}
	if !m.blocker.IsZero() {
		ctx.Deactive(m.blocker)
	}
}
