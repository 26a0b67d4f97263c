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
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/layouts"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/widgets"
)

// Two areas share one tooltip control. The tooltip hangs below and
// right of the pointer so following it does not steal the hover.
func TestHoverableTooltip(t *testing.T) {
	g := newTextGui()

	hover := g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{3, 6, 6, 9}).
		Graphic(tex(normalTint)).
		Layout(layouts.NewMargin([4]float32{3, 3, 3, 3})).
		Build()
	label := g.CreateControl().
		Parent(hover).
		Graphic(graphics.NewText("", [2]int8{-1, 0}, text.Style{Color: colors.White, FontSize: 16})).
		Layout(layouts.FitGraphic{}).
		Build()
	controlAt(g, [4]float32{0, 0, 100, 100}, widgets.NewHoverable(hover, label, "hint"))
	controlAt(g, [4]float32{100, 0, 200, 100}, widgets.NewHoverable(hover, label, "expand"))

	txt, ok := g.Graphic(label).(*graphics.Text)
	require.True(t, ok)

	// the tooltip starts hidden
	g.PrepareRender()
	assert.False(t, g.IsActive(hover))

	// entering the first area shows it at the pointer, sized to the
	// text plus the margins
	g.MouseMoved(core.DefaultPointer, 50, 40)
	g.PrepareRender()
	assert.True(t, g.IsActive(hover))
	assert.Equal(t, "hint", txt.String())
	rectNear(t, [4]float32{53, 46, 91, 68}, g.Rect(hover))
	rectNear(t, [4]float32{56, 49, 88, 65}, g.Rect(label))

	// the tooltip follows the pointer
	g.MouseMoved(core.DefaultPointer, 60, 30)
	g.PrepareRender()
	rectNear(t, [4]float32{63, 36, 101, 58}, g.Rect(hover))

	// crossing into the second area swaps the text and resizes
	g.MouseMoved(core.DefaultPointer, 120, 50)
	g.PrepareRender()
	assert.True(t, g.IsActive(hover))
	assert.Equal(t, "expand", txt.String())
	rectNear(t, [4]float32{123, 56, 177, 78}, g.Rect(hover))

	// leaving both areas hides it again
	g.MouseMoved(core.DefaultPointer, 150, 150)
	g.PrepareRender()
	assert.False(t, g.IsActive(hover))
}
