// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
	"github.com/Rodrigodd/giui-sub001/text/shapers/simple"
)

// The style fixtures tint the same texture differently per state, so a
// test can tell which graphic a widget installed by reading the color
// back with Gui.Graphic.
var (
	normalTint    = colors.RGBA(10, 10, 10, 255)
	hoverTint     = colors.RGBA(20, 20, 20, 255)
	pressedTint   = colors.RGBA(30, 30, 30, 255)
	focusTint     = colors.RGBA(40, 40, 40, 255)
	selectedTint  = colors.RGBA(50, 50, 50, 255)
	separatorTint = colors.RGBA(60, 60, 60, 255)
	arrowTint     = colors.RGBA(70, 70, 70, 255)
)

func tex(c colors.Color) graphics.Graphic {
	return graphics.NewTexture(1, [4]float32{0, 0, 1, 1}).WithColor(c)
}

// tint reads back the color of a control's graphic.
func tint(g *core.Gui, id core.Id) colors.Color {
	return graphics.ColorOf(g.Graphic(id))
}

func btnStyle() style.ButtonStyle {
	return style.ButtonStyle{
		Normal:  tex(normalTint),
		Hover:   tex(hoverTint),
		Pressed: tex(pressedTint),
		Focus:   tex(focusTint),
	}
}

func focusStyle() style.OnFocusStyle {
	return style.OnFocusStyle{Normal: tex(normalTint), Focus: tex(focusTint)}
}

func tabStyle() style.TabStyle {
	return style.TabStyle{
		Unselected: tex(normalTint),
		Hover:      tex(hoverTint),
		Pressed:    tex(pressedTint),
		Selected:   tex(selectedTint),
	}
}

func menuStyle() *style.MenuStyle {
	return &style.MenuStyle{
		Button:    btnStyle(),
		Text:      text.Style{Color: colors.Black, FontSize: 16},
		Separator: tex(separatorTint),
		Arrow:     tex(arrowTint),
	}
}

// newGui creates a surface without text support, enough for the
// widgets that never shape a label.
func newGui() *core.Gui {
	return core.New(200, 200, nil, nil)
}

// newTextGui creates a surface with a synthetic monospace font: at
// size 16 every glyph advances 8 pixels and a line is 16 tall, so
// label driven min sizes come out as round numbers.
func newTextGui() *core.Gui {
	fts := &fonts.Fonts{}
	fts.Add(fonts.NewFont(fonts.Synthetic{AdvanceEm: 0.5, AscentEm: 0.75, DescentEm: 0.25}))
	return core.New(200, 200, fts, simple.New())
}

// controlAt builds a control with a fixed pixel rect on the surface.
func controlAt(g *core.Gui, rect [4]float32, b core.Behaviour) core.Id {
	return g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins(rect).
		Behaviour(b).
		Build()
}

// clickAt moves the pointer to the position and presses and releases
// the left button there.
func clickAt(g *core.Gui, x, y float32) {
	g.MouseMoved(core.DefaultPointer, x, y)
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	g.MouseUp(core.DefaultPointer, events.LeftButton)
}

// focusTaker is a focusable leaf, for tests that need the focus chain
// to start below the widget under test.
type focusTaker struct {
	core.BehaviourBase
}

func (f *focusTaker) InputFlags() core.InputFlags { return core.InputFocus }

// rectNear asserts a rect component wise within a hundredth of a
// pixel, absorbing the float accumulation of anchor math.
func rectNear(t *testing.T, want, got [4]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 0.01, "rect component %d", i)
	}
}
