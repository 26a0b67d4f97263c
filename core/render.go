// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// RenderContext is the view of a settled tree that a render pass
// walks: resolved rects, graphics and paint ordered children. It is
// only valid until the next call into [Gui].
type RenderContext struct {
	gui *Gui
}

// RenderContext settles pending lifecycle hooks and layout, clears
// the render dirty flag and returns the view of the resulting tree.
func (g *Gui) RenderContext() *RenderContext {
	g.PrepareRender()
	return &RenderContext{gui: g}
}

// Fonts returns the font store shared by the text graphics.
func (c *RenderContext) Fonts() *fonts.Fonts { return c.gui.Fonts() }

// Shaper returns the text shaper shared by the text graphics.
func (c *RenderContext) Shaper() text.Shaper { return c.gui.Shaper() }

// Rect returns the resolved rect of the control, [left, top, right,
// bottom], in surface pixels.
func (c *RenderContext) Rect(id Id) [4]float32 { return c.gui.Rect(id) }

// Graphic returns the graphic of the control, nil when it has none.
func (c *RenderContext) Graphic(id Id) graphics.Graphic { return c.gui.Graphic(id) }

// ActiveChildren returns the direct children with the active flag
// set, bottommost first in paint order.
func (c *RenderContext) ActiveChildren(id Id) []Id { return c.gui.ActiveChildren(id) }
