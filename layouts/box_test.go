// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/layouts"
)

func TestVBoxDistribution(t *testing.T) {
	g := core.New(200, 300, nil, nil)
	box := g.CreateControl().
		Layout(layouts.NewVBox(5, [4]float32{10, 10, 10, 10}, layouts.Start)).
		Build()
	a := g.CreateControl().Parent(box).MinSize([2]float32{0, 20}).Build()
	b := g.CreateControl().Parent(box).MinSize([2]float32{0, 40}).ExpandY(true).Build()
	c := g.CreateControl().Parent(box).MinSize([2]float32{0, 60}).Build()

	assert.Equal(t, [4]float32{10, 10, 190, 30}, g.Rect(a))
	assert.Equal(t, [4]float32{10, 35, 190, 225}, g.Rect(b))
	assert.Equal(t, [4]float32{10, 230, 190, 290}, g.Rect(c))
}

func TestVBoxMinSize(t *testing.T) {
	g := core.New(400, 400, nil, nil)
	box := g.CreateControl().
		Layout(layouts.NewVBox(5, [4]float32{10, 10, 10, 10}, layouts.Start)).
		FillX(core.ShrinkStart).FillY(core.ShrinkStart).
		Build()
	g.CreateControl().Parent(box).MinSize([2]float32{30, 20}).Build()
	g.CreateControl().Parent(box).MinSize([2]float32{50, 40}).Build()

	// the shrink fills collapse the box onto its computed min size
	assert.Equal(t, [4]float32{0, 0, 70, 85}, g.Rect(box))
}

func TestVBoxAlign(t *testing.T) {
	for _, tt := range []struct {
		align layouts.Align
		tops  [2]float32
	}{
		{layouts.Start, [2]float32{0, 10}},
		{layouts.Center, [2]float32{35, 45}},
		{layouts.End, [2]float32{70, 80}},
	} {
		g := core.New(100, 100, nil, nil)
		box := g.CreateControl().
			Layout(layouts.NewVBox(0, [4]float32{}, tt.align)).
			Build()
		a := g.CreateControl().Parent(box).MinSize([2]float32{0, 10}).Build()
		b := g.CreateControl().Parent(box).MinSize([2]float32{0, 20}).Build()

		assert.Equal(t, tt.tops[0], g.Rect(a)[1], "align %d", tt.align)
		assert.Equal(t, tt.tops[1], g.Rect(b)[1], "align %d", tt.align)
	}
}

func TestHBoxDistribution(t *testing.T) {
	g := core.New(300, 100, nil, nil)
	box := g.CreateControl().
		Layout(layouts.NewHBox(5, [4]float32{10, 10, 10, 10}, layouts.Start)).
		Build()
	a := g.CreateControl().Parent(box).MinSize([2]float32{20, 0}).Build()
	b := g.CreateControl().Parent(box).MinSize([2]float32{40, 0}).ExpandX(true).Build()
	c := g.CreateControl().Parent(box).MinSize([2]float32{60, 0}).Build()

	assert.Equal(t, [4]float32{10, 10, 30, 90}, g.Rect(a))
	assert.Equal(t, [4]float32{35, 10, 225, 90}, g.Rect(b))
	assert.Equal(t, [4]float32{230, 10, 290, 90}, g.Rect(c))
}

func TestBoxSplitsFreeSpaceEqually(t *testing.T) {
	g := core.New(200, 100, nil, nil)
	box := g.CreateControl().
		Layout(layouts.NewHBox(0, [4]float32{}, layouts.Start)).
		Build()
	a := g.CreateControl().Parent(box).ExpandX(true).Build()
	b := g.CreateControl().Parent(box).ExpandX(true).Build()

	assert.Equal(t, [4]float32{0, 0, 100, 100}, g.Rect(a))
	assert.Equal(t, [4]float32{100, 0, 200, 100}, g.Rect(b))
}

// weightedVBox sets ratio weights on the children before running the
// box passes, the way a widget layout tunes its parts.
type weightedVBox struct {
	layouts.VBoxLayout
	weights []float32
}

func (w *weightedVBox) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	for i, child := range ctx.Children(this) {
		ctx.Layouting(child).RatioY = w.weights[i]
	}
	w.VBoxLayout.UpdateLayouts(this, ctx)
}

func TestBoxExpandWeights(t *testing.T) {
	g := core.New(100, 200, nil, nil)
	box := g.CreateControl().
		Layout(&weightedVBox{weights: []float32{1, 3}}).
		Build()
	a := g.CreateControl().Parent(box).ExpandY(true).Build()
	b := g.CreateControl().Parent(box).ExpandY(true).Build()

	require.Equal(t, [4]float32{0, 0, 100, 50}, g.Rect(a))
	require.Equal(t, [4]float32{0, 50, 100, 200}, g.Rect(b))
}

func TestBoxIdempotent(t *testing.T) {
	g := core.New(321, 123, nil, nil)
	box := g.CreateControl().
		Layout(layouts.NewVBox(3, [4]float32{1, 2, 3, 4}, layouts.Center)).
		Build()
	a := g.CreateControl().Parent(box).MinSize([2]float32{10, 7}).Build()
	b := g.CreateControl().Parent(box).MinSize([2]float32{10, 13}).ExpandY(true).Build()

	first := [2][4]float32{g.Rect(a), g.Rect(b)}
	g.Resize(321, 123) // same size, forces a fresh pass
	second := [2][4]float32{g.Rect(a), g.Rect(b)}
	assert.Equal(t, first, second)
}
