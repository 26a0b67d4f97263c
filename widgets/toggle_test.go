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
	"github.com/Rodrigodd/giui-sub001/widgets"
)

// buildToggle assembles a checkbox: a 60x20 background, the box child
// the toggle tints, and the mark child whose alpha tracks the value.
func buildToggle(g *core.Gui, value bool) (tg, button, marker core.Id, beh *widgets.Toggle) {
	tgb := g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{0, 0, 60, 20})
	button = g.CreateControl().
		Parent(tgb.Id()).
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{2, 2, 18, 18}).
		Graphic(tex(colors.White)).
		Build()
	marker = g.CreateControl().
		Parent(button).
		Anchors([4]float32{0, 0, 1, 1}).
		Margins([4]float32{2, 2, -2, -2}).
		Graphic(tex(colors.Black)).
		Build()
	beh = widgets.NewToggle(button, marker, value, btnStyle(), focusStyle())
	tg = tgb.Behaviour(beh).Build()
	return tg, button, marker, beh
}

func TestToggleClickFlips(t *testing.T) {
	g := newGui()
	tg, button, marker, beh := buildToggle(g, false)
	g.PrepareRender()

	// the initial state is announced and the mark is hidden
	require.Equal(t, []any{widgets.ToggleChanged{Id: tg, Value: false}}, g.TakeEvents())
	assert.False(t, beh.Value())
	assert.Equal(t, uint8(0), tint(g, marker).A)
	assert.Equal(t, normalTint, tint(g, button))

	clickAt(g, 30, 10)
	require.Equal(t, []any{widgets.ToggleChanged{Id: tg, Value: true}}, g.TakeEvents())
	assert.True(t, beh.Value())
	assert.Equal(t, uint8(255), tint(g, marker).A)

	clickAt(g, 30, 10)
	require.Equal(t, []any{widgets.ToggleChanged{Id: tg, Value: false}}, g.TakeEvents())
	assert.False(t, beh.Value())
	assert.Equal(t, uint8(0), tint(g, marker).A)
}

func TestTogglePressCancelledByExit(t *testing.T) {
	g := newGui()
	_, button, _, beh := buildToggle(g, false)
	g.PrepareRender()
	g.TakeEvents()

	g.MouseMoved(core.DefaultPointer, 30, 10)
	assert.Equal(t, colors.RGBA(190, 190, 190, 255), tint(g, button))
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	assert.Equal(t, colors.RGBA(170, 170, 170, 255), tint(g, button))

	g.MouseMoved(core.DefaultPointer, 150, 150)
	assert.Equal(t, colors.RGBA(200, 200, 200, 255), tint(g, button))
	g.MouseMoved(core.DefaultPointer, 30, 10)
	g.MouseUp(core.DefaultPointer, events.LeftButton)

	assert.False(t, beh.Value())
	assert.Empty(t, g.TakeEvents())
}

func TestToggleSetValue(t *testing.T) {
	g := newGui()
	tg, _, marker, beh := buildToggle(g, true)
	g.PrepareRender()
	require.Equal(t, []any{widgets.ToggleChanged{Id: tg, Value: true}}, g.TakeEvents())
	assert.Equal(t, uint8(255), tint(g, marker).A)

	g.SendEventTo(tg, widgets.SetValue{Value: false})
	require.Equal(t, []any{widgets.ToggleChanged{Id: tg, Value: false}}, g.TakeEvents())
	assert.False(t, beh.Value())
	assert.Equal(t, uint8(0), tint(g, marker).A)
}

func TestToggleListener(t *testing.T) {
	g := newGui()
	var got []bool
	events.Add(g.Listeners(), func(ev widgets.ToggleChanged) { got = append(got, ev.Value) })
	buildToggle(g, false)
	g.PrepareRender()
	clickAt(g, 30, 10)

	assert.Equal(t, []bool{false, true}, got)
	// a heard event does not pile up for TakeEvents
	assert.Empty(t, g.TakeEvents())
}

func TestToggleFocusGraphic(t *testing.T) {
	g := newGui()
	tg, _, _, _ := buildToggle(g, false)
	g.PrepareRender()
	assert.Equal(t, normalTint, tint(g, tg))

	g.SetFocus(tg)
	assert.Equal(t, focusTint, tint(g, tg))
	g.SetFocus(core.Id{})
	assert.Equal(t, normalTint, tint(g, tg))
}
