// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets_test

import (
	"testing"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/widgets"
)

func buildWindow(g *core.Gui) core.Id {
	return g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{40, 40, 120, 100}).
		MinSize([2]float32{30, 20}).
		Behaviour(widgets.NewWindow()).
		Build()
}

func TestWindowDrag(t *testing.T) {
	g := newGui()
	win := buildWindow(g)
	g.PrepareRender()
	rectNear(t, [4]float32{40, 40, 120, 100}, g.Rect(win))

	// pressing away from the borders moves the whole window
	g.MouseMoved(core.DefaultPointer, 80, 70)
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	g.MouseMoved(core.DefaultPointer, 90, 85)
	g.PrepareRender()
	rectNear(t, [4]float32{50, 55, 130, 115}, g.Rect(win))

	// the drag point clamps to the desktop, not the window rect
	g.MouseMoved(core.DefaultPointer, 250, 75)
	g.PrepareRender()
	rectNear(t, [4]float32{160, 45, 240, 105}, g.Rect(win))

	// releasing ends the drag
	g.MouseUp(core.DefaultPointer, events.LeftButton)
	g.MouseMoved(core.DefaultPointer, 100, 70)
	g.PrepareRender()
	rectNear(t, [4]float32{160, 45, 240, 105}, g.Rect(win))
}

func TestWindowResizeBorder(t *testing.T) {
	g := newGui()
	win := buildWindow(g)
	g.PrepareRender()

	// grabbing within five pixels of the left border resizes it alone
	g.MouseMoved(core.DefaultPointer, 43, 70)
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	g.MouseMoved(core.DefaultPointer, 63, 90)
	g.PrepareRender()
	rectNear(t, [4]float32{60, 40, 120, 100}, g.Rect(win))

	// the border stops at the min width
	g.MouseMoved(core.DefaultPointer, 115, 90)
	g.PrepareRender()
	rectNear(t, [4]float32{90, 40, 120, 100}, g.Rect(win))
	g.MouseUp(core.DefaultPointer, events.LeftButton)
}

func TestWindowResizeCorner(t *testing.T) {
	g := newGui()
	win := buildWindow(g)
	g.PrepareRender()

	// a corner press grabs both borders
	g.MouseMoved(core.DefaultPointer, 118, 98)
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	g.MouseMoved(core.DefaultPointer, 142, 130)
	g.PrepareRender()
	rectNear(t, [4]float32{40, 40, 144, 132}, g.Rect(win))

	// shrinking below the min size pins both axes
	g.MouseMoved(core.DefaultPointer, 50, 45)
	g.PrepareRender()
	rectNear(t, [4]float32{40, 40, 70, 60}, g.Rect(win))
	g.MouseUp(core.DefaultPointer, events.LeftButton)
}
