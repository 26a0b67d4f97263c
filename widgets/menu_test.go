// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/layouts"
	"github.com/Rodrigodd/giui-sub001/widgets"
)

// buildMenuBar assembles a 20 pixel bar across the top of the surface,
// with the blocker under it.
func buildMenuBar(g *core.Gui, menus ...*widgets.Menu) (bar, blocker core.Id) {
	barB := g.CreateControl().
		Anchors([4]float32{0, 0, 1, 0}).
		Margins([4]float32{0, 0, 0, 20}).
		Layout(layouts.NewHBox(0, [4]float32{}, layouts.Start))
	barId := barB.Id()
	blocker = g.CreateControl().
		Active(false).
		Behaviour(widgets.NewBlocker(func(_ core.Id, ctx *core.Context) {
			ctx.SendEventTo(barId, widgets.CloseMenu{})
		})).
		Build()
	bar = barB.Behaviour(widgets.NewMenuBar(menuStyle(), blocker, menus)).Build()
	return bar, blocker
}

func fileMenu(clicks *[]string) *widgets.Menu {
	log := func(label string) func(core.Id, *core.Context) {
		return func(core.Id, *core.Context) { *clicks = append(*clicks, label) }
	}
	return widgets.NewMenu("File",
		widgets.ItemButton{Label: "New", OnClick: log("New")},
		widgets.ItemButton{Label: "Open", OnClick: log("Open")},
		widgets.Separator{},
		widgets.ItemButton{Label: "Exit", OnClick: log("Exit")},
	)
}

func editMenu() *widgets.Menu {
	return widgets.NewMenu("Edit",
		widgets.ItemButton{Label: "Undo"},
		widgets.ItemButton{Label: "Redo"},
	)
}

func TestMenuBarOpenAndPick(t *testing.T) {
	g := newTextGui()
	var clicks []string
	bar, blocker := buildMenuBar(g, fileMenu(&clicks), editMenu())
	g.PrepareRender()

	headers := g.Children(bar)
	require.Len(t, headers, 2)
	assert.Equal(t, [4]float32{0, 0, 36, 20}, g.Rect(headers[0]))
	assert.Equal(t, [4]float32{36, 0, 72, 20}, g.Rect(headers[1]))
	assert.Equal(t, normalTint, tint(g, headers[0]))
	assert.False(t, g.IsActive(blocker))

	clickAt(g, 10, 10)
	g.PrepareRender()

	require.Len(t, g.Children(core.Root), 3)
	assert.True(t, g.IsActive(blocker))
	assert.Equal(t, pressedTint, tint(g, headers[0]))
	popup := g.Children(core.Root)[2]
	assert.Equal(t, normalTint, tint(g, popup))
	assert.Equal(t, [4]float32{0, 20, 68, 85}, g.Rect(popup))
	rows := g.Children(popup)
	require.Len(t, rows, 4)
	assert.Equal(t, [4]float32{0, 20, 68, 40}, g.Rect(rows[0]))
	assert.Equal(t, [4]float32{0, 40, 68, 60}, g.Rect(rows[1]))
	assert.Equal(t, [4]float32{0, 60, 68, 65}, g.Rect(rows[2]))
	assert.Equal(t, [4]float32{0, 65, 68, 85}, g.Rect(rows[3]))

	g.MouseMoved(core.DefaultPointer, 30, 30)
	assert.Equal(t, hoverTint, tint(g, rows[0]))

	clickAt(g, 30, 30)
	g.PrepareRender()

	assert.Equal(t, []string{"New"}, clicks)
	assert.Len(t, g.Children(core.Root), 2)
	assert.False(t, g.IsActive(blocker))
	assert.Equal(t, normalTint, tint(g, headers[0]))
	assert.Empty(t, g.TakeEvents())
}

func TestMenuBarSwitchMenus(t *testing.T) {
	g := newTextGui()
	var clicks []string
	bar, blocker := buildMenuBar(g, fileMenu(&clicks), editMenu())
	g.PrepareRender()
	headers := g.Children(bar)

	clickAt(g, 10, 10)
	g.PrepareRender()
	assert.Equal(t, [4]float32{0, 20, 68, 85}, g.Rect(g.Children(core.Root)[2]))

	// while open, moving over another header switches to its menu
	g.MouseMoved(core.DefaultPointer, 50, 10)
	g.PrepareRender()
	require.Len(t, g.Children(core.Root), 3)
	assert.Equal(t, [4]float32{36, 20, 104, 60}, g.Rect(g.Children(core.Root)[2]))
	assert.Equal(t, normalTint, tint(g, headers[0]))
	assert.Equal(t, pressedTint, tint(g, headers[1]))
	assert.True(t, g.IsActive(blocker))

	// clicking the open header closes it
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	g.MouseUp(core.DefaultPointer, events.LeftButton)
	g.PrepareRender()
	assert.Len(t, g.Children(core.Root), 2)
	assert.Equal(t, hoverTint, tint(g, headers[1]))
	assert.False(t, g.IsActive(blocker))
	assert.Empty(t, clicks)
}

func TestMenuBarBlockerCloses(t *testing.T) {
	g := newTextGui()
	var pageClicks, clicks []string
	page := controlAt(g, [4]float32{0, 100, 200, 120},
		widgets.NewButton(btnStyle(), func(core.Id, *core.Context) {
			pageClicks = append(pageClicks, "page")
		}))
	bar, blocker := buildMenuBar(g, fileMenu(&clicks), editMenu())
	g.PrepareRender()
	headers := g.Children(bar)

	clickAt(g, 10, 10)
	g.PrepareRender()
	assert.True(t, g.IsActive(blocker))

	// a press on the page lands on the blocker: the menu closes and
	// the button below never hears it
	clickAt(g, 100, 110)
	g.PrepareRender()
	assert.Empty(t, pageClicks)
	assert.Len(t, g.Children(core.Root), 3)
	assert.False(t, g.IsActive(blocker))
	assert.Equal(t, normalTint, tint(g, headers[0]))
	assert.Equal(t, normalTint, tint(g, page))

	// with the menu gone the same click reaches the button
	clickAt(g, 100, 110)
	assert.Equal(t, []string{"page"}, pageClicks)
	assert.Empty(t, clicks)
}

func TestMenuSeparatorInert(t *testing.T) {
	g := newTextGui()
	var clicks []string
	_, _ = buildMenuBar(g, fileMenu(&clicks), editMenu())
	g.PrepareRender()

	clickAt(g, 10, 10)
	g.PrepareRender()
	popup := g.Children(core.Root)[2]
	rows := g.Children(popup)

	// a separator neither highlights nor clicks
	clickAt(g, 30, 62)
	g.PrepareRender()
	assert.Len(t, g.Children(core.Root), 3)
	assert.Empty(t, clicks)
	assert.Equal(t, colors.White, tint(g, rows[2]))

	clickAt(g, 30, 70)
	g.PrepareRender()
	assert.Equal(t, []string{"Exit"}, clicks)
	assert.Len(t, g.Children(core.Root), 2)
}

func TestMenuSubmenu(t *testing.T) {
	g := newTextGui()
	var clicks []string
	menu := widgets.NewMenu("",
		widgets.ItemButton{Label: "Copy", OnClick: func(core.Id, *core.Context) {
			clicks = append(clicks, "Copy")
		}},
		widgets.SubMenu{Menu: widgets.NewMenu("More",
			widgets.ItemButton{Label: "Paste", OnClick: func(core.Id, *core.Context) {
				clicks = append(clicks, "Paste")
			}},
		)},
	)
	popup := g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{10, 10, 10, 10}).
		Layout(layouts.NewVBox(0, [4]float32{}, layouts.Start)).
		Behaviour(widgets.NewMenuBehaviour(menu, menuStyle(), core.Id{})).
		Build()
	g.PrepareRender()

	assert.Equal(t, [4]float32{10, 10, 78, 50}, g.Rect(popup))
	rows := g.Children(popup)
	require.Len(t, rows, 2)
	assert.Equal(t, [4]float32{10, 10, 78, 30}, g.Rect(rows[0]))
	assert.Equal(t, [4]float32{10, 30, 78, 50}, g.Rect(rows[1]))

	// hovering the entry opens the submenu at its right edge
	g.MouseMoved(core.DefaultPointer, 40, 40)
	g.PrepareRender()
	require.Len(t, g.Children(core.Root), 2)
	sub := g.Children(core.Root)[1]
	assert.Equal(t, [4]float32{78, 30, 154, 50}, g.Rect(sub))
	assert.Equal(t, hoverTint, tint(g, rows[1]))

	// the highlight stays on the entry while the pointer crosses into
	// the submenu
	g.MouseMoved(core.DefaultPointer, 100, 40)
	assert.Equal(t, hoverTint, tint(g, rows[1]))

	clickAt(g, 100, 40)
	g.PrepareRender()

	assert.Equal(t, []string{"Paste"}, clicks)
	assert.Len(t, g.Children(core.Root), 1)
	assert.Equal(t, normalTint, tint(g, rows[1]))
	assert.Contains(t, g.TakeEvents(), widgets.ItemClicked{Index: 0})
}
