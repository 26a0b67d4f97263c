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
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/widgets"
)

// listModel is a ListBuilder of fixed 40x20 items that records every
// model call and remembers the control of each index.
type listModel struct {
	widgets.ListBuilderBase
	count     int
	focusable bool
	created   []int
	removed   []int
	ids       map[int]core.Id
}

func newListModel(count int) *listModel {
	return &listModel{count: count, ids: map[int]core.Id{}}
}

func (m *listModel) ItemCount(widgets.BuilderContext) int { return m.count }

func (m *listModel) CreateItem(index int, list core.Id, cb *core.ControlBuilder, ctx widgets.BuilderContext) *core.ControlBuilder {
	m.created = append(m.created, index)
	m.ids[index] = cb.Id()
	cb.MinSize([2]float32{40, 20})
	if m.focusable {
		cb.Behaviour(&focusTaker{})
	}
	return cb
}

func (m *listModel) RemoveItem(index int, item core.Id, ctx widgets.BuilderContext) {
	m.removed = append(m.removed, index)
}

func (m *listModel) resetLog() {
	m.created, m.removed = nil, nil
}

// buildList assembles a 100x100 list over the model, with 12 pixel
// scrollbars and a fixed content width of 80.
func buildList(g *core.Gui, model widgets.ListBuilder) (list, view, vBar, vHandle core.Id) {
	lb := g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{0, 0, 100, 100})
	view = g.CreateControl().
		Parent(lb.Id()).
		Graphic(&graphics.Mask{}).
		Layout(widgets.NewListViewLayout(true, true)).
		Build()
	vBarB := g.CreateControl().
		Parent(lb.Id()).
		MinSize([2]float32{12, 0})
	vHandle = g.CreateControl().Parent(vBarB.Id()).Build()
	vBar = vBarB.Behaviour(widgets.NewScrollBar(vHandle, lb.Id(), true, btnStyle())).Build()
	hBarB := g.CreateControl().
		Parent(lb.Id()).
		MinSize([2]float32{0, 12})
	hHandle := g.CreateControl().Parent(hBarB.Id()).Build()
	hBar := hBarB.Behaviour(widgets.NewScrollBar(hHandle, lb.Id(), false, btnStyle())).Build()
	l := widgets.NewList(80, 0, [4]float32{}, view, vBar, vHandle, hBar, hHandle, model)
	list = lb.Behaviour(l).Layout(l).Build()
	return list, view, vBar, vHandle
}

func TestListFillsView(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	_, view, vBar, vHandle := buildList(g, model)
	g.PrepareRender()

	// six 20 pixel items cross the 100 pixel view
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, model.created)
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, 0, 88, 100}, g.Rect(view))
	assert.Equal(t, [4]float32{0, 0, 88, 20}, g.Rect(model.ids[0]))
	assert.Equal(t, [4]float32{0, 100, 88, 120}, g.Rect(model.ids[5]))

	assert.True(t, g.IsActive(vBar))
	assert.Equal(t, [4]float32{88, 0, 100, 100}, g.Rect(vBar))
	rectNear(t, [4]float32{88, 0, 100, 25}, g.Rect(vHandle))
}

func TestListWheelScroll(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	_, view, _, vHandle := buildList(g, model)
	g.PrepareRender()
	model.resetLog()

	g.MouseMoved(core.DefaultPointer, 50, 50)
	g.Scroll(core.DefaultPointer, 0, -30)
	g.PrepareRender()

	// item 0 slid out, item 6 came in
	require.Equal(t, []int{6}, model.created)
	require.Equal(t, []int{0}, model.removed)
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, -10, 88, 10}, g.Rect(model.ids[1]))
	rectNear(t, [4]float32{88, 7.5, 100, 32.5}, g.Rect(vHandle))

	model.resetLog()
	g.Scroll(core.DefaultPointer, 0, 30)
	g.PrepareRender()

	require.Equal(t, []int{0}, model.created)
	require.Equal(t, []int{6}, model.removed)
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, 0, 88, 20}, g.Rect(model.ids[0]))
	rectNear(t, [4]float32{88, 0, 100, 25}, g.Rect(vHandle))
}

func TestListSetScrollPosition(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	list, view, _, vHandle := buildList(g, model)
	g.PrepareRender()
	model.resetLog()

	// half of the 15 item scroll range lands at item 7.5
	g.SendEventTo(list, widgets.SetScrollPosition{Vertical: true, Value: 0.5})
	g.PrepareRender()

	require.Equal(t, []int{7, 8, 9, 10, 11, 12}, model.created)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, model.removed)
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, -10, 88, 10}, g.Rect(model.ids[7]))
	assert.Equal(t, [4]float32{0, 90, 88, 110}, g.Rect(model.ids[12]))
	rectNear(t, [4]float32{88, 37.5, 100, 62.5}, g.Rect(vHandle))
}

func TestListShrinkDeactivatesBar(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	list, view, vBar, _ := buildList(g, model)
	g.PrepareRender()
	g.SendEventTo(list, widgets.SetScrollPosition{Vertical: true, Value: 0.5})
	g.PrepareRender()
	model.resetLog()

	// the model shrinks below the view; the list refills from the
	// bottom, finds the gap and restarts from the top, bar gone
	model.count = 3
	g.SendEventTo(list, widgets.UpdateItems{})
	g.PrepareRender()

	require.Equal(t, []int{2, 1, 0}, model.created)
	require.Equal(t, []int{7, 8, 9, 10, 11, 12}, model.removed)
	assert.Len(t, g.Children(view), 3)
	assert.False(t, g.IsActive(vBar))
	assert.Equal(t, [4]float32{0, 0, 100, 100}, g.Rect(view))
	assert.Equal(t, [4]float32{0, 0, 100, 20}, g.Rect(model.ids[0]))
	assert.Equal(t, [4]float32{0, 40, 100, 60}, g.Rect(model.ids[2]))
}

func TestListFocusedItemParked(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	model.focusable = true
	list, view, _, _ := buildList(g, model)
	g.PrepareRender()

	clickAt(g, 50, 30)
	require.Equal(t, model.ids[1], g.Focus())

	// the focused item survives the jump, parked below the view
	g.SendEventTo(list, widgets.SetScrollPosition{Vertical: true, Value: 0.5})
	g.PrepareRender()
	require.Equal(t, []int{0, 2, 3, 4, 5}, model.removed)
	assert.Len(t, g.Children(view), 7)
	assert.Equal(t, [4]float32{0, 1110, 88, 1210}, g.Rect(model.ids[1]))
	assert.Equal(t, model.ids[1], g.Focus())

	// keys still route through it into the list
	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeDown}))
	g.PrepareRender()
	assert.Len(t, g.Children(view), 7)

	// focusing a visible item releases the parked one
	clickAt(g, 50, 50)
	require.Equal(t, model.ids[11], g.Focus())
	g.PrepareRender()
	assert.Len(t, g.Children(view), 6)
}

func TestListParkedRemovedOnFocusLoss(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	model.focusable = true
	list, view, _, _ := buildList(g, model)
	g.PrepareRender()

	clickAt(g, 50, 30)
	g.SendEventTo(list, widgets.SetScrollPosition{Vertical: true, Value: 0.5})
	g.PrepareRender()
	assert.Len(t, g.Children(view), 7)

	g.SetFocus(core.Id{})
	g.PrepareRender()
	assert.Len(t, g.Children(view), 6)
}

func TestListKeyboard(t *testing.T) {
	g := newGui()
	model := newListModel(20)
	model.focusable = true
	_, view, _, _ := buildList(g, model)
	g.PrepareRender()

	clickAt(g, 50, 10)
	require.Equal(t, model.ids[0], g.Focus())

	// scrolling down parks the focused first item
	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeDown}))
	g.PrepareRender()
	assert.Len(t, g.Children(view), 7)
	assert.Equal(t, [4]float32{0, 1110, 88, 1210}, g.Rect(model.ids[0]))

	// scrolling back reuses the parked control in place
	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeUp}))
	g.PrepareRender()
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, 0, 88, 20}, g.Rect(model.ids[0]))
	assert.Equal(t, model.ids[0], g.Focus())

	// End fills the view with the last items
	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeEnd}))
	g.PrepareRender()
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, 80, 88, 100}, g.Rect(model.ids[19]))

	// Home comes back to the top, reusing the parked item again
	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeHome}))
	g.PrepareRender()
	assert.Len(t, g.Children(view), 6)
	assert.Equal(t, [4]float32{0, 0, 88, 20}, g.Rect(model.ids[0]))
	assert.Equal(t, model.ids[0], g.Focus())
}
