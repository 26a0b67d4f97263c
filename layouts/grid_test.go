// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/layouts"
)

func TestGridCells(t *testing.T) {
	// two columns whose widths and heights come from the largest
	// child in each track
	g := core.New(59, 44, nil, nil)
	grid := g.CreateControl().
		Layout(layouts.NewGrid([2]float32{5, 5}, [4]float32{2, 2, 2, 2}, 2)).
		Build()
	mins := [][2]float32{{10, 10}, {20, 20}, {30, 5}, {5, 15}}
	cells := make([]core.Id, len(mins))
	for i, m := range mins {
		cells[i] = g.CreateControl().Parent(grid).MinSize(m).Build()
	}

	// col0 = 30, col1 = 20, row0 = 20, row1 = 15; the surface is the
	// exact min size, so nothing stretches
	assert.Equal(t, [4]float32{2, 2, 32, 22}, g.Rect(cells[0]))
	assert.Equal(t, [4]float32{37, 2, 57, 22}, g.Rect(cells[1]))
	assert.Equal(t, [4]float32{2, 27, 32, 42}, g.Rect(cells[2]))
	assert.Equal(t, [4]float32{37, 27, 57, 42}, g.Rect(cells[3]))
}

func TestGridExpandTracks(t *testing.T) {
	g := core.New(100, 44, nil, nil)
	grid := g.CreateControl().
		Layout(layouts.NewGrid([2]float32{5, 5}, [4]float32{2, 2, 2, 2}, 2)).
		Build()
	a := g.CreateControl().Parent(grid).MinSize([2]float32{30, 20}).Build()
	b := g.CreateControl().Parent(grid).MinSize([2]float32{20, 20}).ExpandX(true).Build()
	c := g.CreateControl().Parent(grid).MinSize([2]float32{30, 15}).Build()
	d := g.CreateControl().Parent(grid).MinSize([2]float32{20, 15}).Build()

	// the second column absorbs the extra 41 px
	assert.Equal(t, [4]float32{2, 2, 32, 22}, g.Rect(a))
	assert.Equal(t, [4]float32{37, 2, 98, 22}, g.Rect(b))
	assert.Equal(t, [4]float32{2, 27, 32, 42}, g.Rect(c))
	assert.Equal(t, [4]float32{37, 27, 98, 42}, g.Rect(d))
}

func TestGridFewerChildrenThanColumns(t *testing.T) {
	g := core.New(100, 100, nil, nil)
	grid := g.CreateControl().
		Layout(layouts.NewGrid([2]float32{4, 4}, [4]float32{}, 3)).
		FillX(core.ShrinkStart).FillY(core.ShrinkStart).
		Build()
	a := g.CreateControl().Parent(grid).MinSize([2]float32{10, 10}).Build()
	b := g.CreateControl().Parent(grid).MinSize([2]float32{10, 10}).Build()

	// one row of two cells: 10+4+10 wide, 10 tall
	assert.Equal(t, [4]float32{0, 0, 24, 10}, g.Rect(grid))
	assert.Equal(t, [4]float32{0, 0, 10, 10}, g.Rect(a))
	assert.Equal(t, [4]float32{14, 0, 24, 10}, g.Rect(b))
}

func TestGridPartialLastRow(t *testing.T) {
	g := core.New(50, 50, nil, nil)
	grid := g.CreateControl().
		Layout(layouts.NewGrid([2]float32{}, [4]float32{}, 2)).
		Build()
	for i := 0; i < 2; i++ {
		g.CreateControl().Parent(grid).MinSize([2]float32{10, 10}).Build()
	}
	last := g.CreateControl().Parent(grid).MinSize([2]float32{10, 10}).Build()

	// third child starts the second row, first column
	r := g.Rect(last)
	assert.Equal(t, float32(0), r[0])
	assert.Greater(t, r[1], float32(0))
}
