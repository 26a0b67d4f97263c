// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/widgets"
)

func buildTabs(g *core.Gui, onChange func(selected core.Id, ctx *core.Context)) (tab1, tab2, page1, page2 core.Id) {
	group := widgets.NewButtonGroup(onChange)
	page1 = controlAt(g, [4]float32{0, 20, 200, 200}, nil)
	page2 = controlAt(g, [4]float32{0, 20, 200, 200}, nil)
	tab1 = controlAt(g, [4]float32{0, 0, 50, 20}, widgets.NewTabButton(group, page1, true, tabStyle()))
	tab2 = controlAt(g, [4]float32{50, 0, 100, 20}, widgets.NewTabButton(group, page2, false, tabStyle()))
	return tab1, tab2, page1, page2
}

func TestTabInitialSelection(t *testing.T) {
	g := newGui()
	var selected []core.Id
	tab1, tab2, page1, page2 := buildTabs(g, func(s core.Id, _ *core.Context) {
		selected = append(selected, s)
	})
	g.PrepareRender()

	require.Equal(t, []core.Id{tab1}, selected)
	assert.True(t, g.IsActive(page1))
	assert.False(t, g.IsActive(page2))
	assert.Equal(t, selectedTint, tint(g, tab1))
	assert.Equal(t, normalTint, tint(g, tab2))
}

func TestTabClickSwitches(t *testing.T) {
	g := newGui()
	var selected []core.Id
	tab1, tab2, page1, page2 := buildTabs(g, func(s core.Id, _ *core.Context) {
		selected = append(selected, s)
	})
	g.PrepareRender()

	// hover and press show on the unselected tab
	g.MouseMoved(core.DefaultPointer, 75, 10)
	assert.Equal(t, hoverTint, tint(g, tab2))
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	assert.Equal(t, pressedTint, tint(g, tab2))
	g.MouseUp(core.DefaultPointer, events.LeftButton)

	require.Equal(t, []core.Id{tab1, tab2}, selected)
	assert.False(t, g.IsActive(page1))
	assert.True(t, g.IsActive(page2))
	assert.Equal(t, selectedTint, tint(g, tab2))
	assert.Equal(t, normalTint, tint(g, tab1))

	// clicking the selected tab changes nothing
	clickAt(g, 75, 10)
	require.Equal(t, []core.Id{tab1, tab2}, selected)
	assert.Equal(t, selectedTint, tint(g, tab2))
}

func TestTabSelectEvent(t *testing.T) {
	g := newGui()
	var selected []core.Id
	tab1, tab2, page1, page2 := buildTabs(g, func(s core.Id, _ *core.Context) {
		selected = append(selected, s)
	})
	g.PrepareRender()

	g.SendEventTo(tab2, widgets.Select{})
	require.Equal(t, []core.Id{tab1, tab2}, selected)
	assert.False(t, g.IsActive(page1))
	assert.True(t, g.IsActive(page2))

	g.SendEventTo(tab1, widgets.Select{})
	require.Equal(t, []core.Id{tab1, tab2, tab1}, selected)
	assert.True(t, g.IsActive(page1))
	assert.False(t, g.IsActive(page2))

	// selecting the selected tab again is a no-op
	g.SendEventTo(tab1, widgets.Select{})
	require.Equal(t, []core.Id{tab1, tab2, tab1}, selected)
}

func TestTabHoverLeavesSelectedAlone(t *testing.T) {
	g := newGui()
	tab1, _, _, _ := buildTabs(g, nil)
	g.PrepareRender()

	g.MouseMoved(core.DefaultPointer, 25, 10)
	assert.Equal(t, selectedTint, tint(g, tab1))
	g.MouseMoved(core.DefaultPointer, 25, 150)
	assert.Equal(t, selectedTint, tint(g, tab1))
}
