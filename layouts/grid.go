// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
)

// GridLayout places children in rows of Columns cells, filled left to
// right, top to bottom. A column is as wide as the widest min size in
// it, a row as tall as the tallest; leftover space goes to columns and
// rows that contain an expanding child, weighted by the largest ratio
// in the track.
type GridLayout struct {
	// Spacing is the gap between adjacent cells, [horizontal,
	// vertical].
	Spacing [2]float32

	// Margins inset the grid from the control rect.
	Margins [4]float32

	// Columns is the number of cells per row.
	Columns int

	// track state carried from the min size pass to the arrange pass
	cols []gridTrack
	rows []gridTrack
}

type gridTrack struct {
	min    float32
	expand bool
	weight float32
}

// NewGrid returns a grid layout with the given number of columns.
func NewGrid(spacing [2]float32, margins [4]float32, columns int) *GridLayout {
	return &GridLayout{Spacing: spacing, Margins: margins, Columns: columns}
}

func (l *GridLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	min := [2]float32{l.Margins[0] + l.Margins[2], l.Margins[1] + l.Margins[3]}
	children := ctx.Children(this)
	if len(children) == 0 || l.Columns <= 0 {
		l.cols = l.cols[:0]
		l.rows = l.rows[:0]
		return min
	}

	columns := l.Columns
	if len(children) < columns {
		columns = len(children)
	}
	rows := (len(children) + l.Columns - 1) / l.Columns
	l.cols = resizeTracks(l.cols, columns)
	l.rows = resizeTracks(l.rows, rows)

	for i, child := range children {
		layouting := ctx.Layouting(child)
		m := layouting.MinSize()
		col := &l.cols[i%l.Columns]
		col.min = math32.Max(col.min, m[0])
		col.expand = col.expand || layouting.IsExpandX()
		col.weight = math32.Max(col.weight, layouting.RatioX)
		row := &l.rows[i/l.Columns]
		row.min = math32.Max(row.min, m[1])
		row.expand = row.expand || layouting.IsExpandY()
		row.weight = math32.Max(row.weight, layouting.RatioY)
	}

	min[0] += l.Spacing[0] * float32(columns-1)
	min[1] += l.Spacing[1] * float32(rows-1)
	for _, t := range l.cols {
		min[0] += t.min
	}
	for _, t := range l.rows {
		min[1] += t.min
	}
	return min
}

func (l *GridLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	children := ctx.Children(this)
	if len(children) == 0 || len(l.cols) == 0 || len(l.rows) == 0 {
		return
	}
	rect := ctx.Rect(this)
	colEdges := arrangeTracks(l.cols, rect[0]+l.Margins[0], rect[2]-l.Margins[2], l.Spacing[0])
	rowEdges := arrangeTracks(l.rows, rect[1]+l.Margins[1], rect[3]-l.Margins[3], l.Spacing[1])
	for i, child := range children {
		col := colEdges[i%l.Columns]
		row := rowEdges[i/l.Columns]
		ctx.SetDesignedRect(child, [4]float32{col[0], row[0], col[1], row[1]})
	}
}

// arrangeTracks turns track min sizes into absolute [start, end]
// edges along one axis, splitting free space between expanding
// tracks.
func arrangeTracks(tracks []gridTrack, lo, hi, spacing float32) [][2]float32 {
	reserved := spacing * float32(len(tracks)-1)
	var weight float32
	for _, t := range tracks {
		reserved += t.min
		if t.expand {
			weight += t.weight
		}
	}
	free := hi - lo - reserved
	grow := free > 0 && weight != 0

	edges := make([][2]float32, len(tracks))
	pos := lo
	for i, t := range tracks {
		size := t.min
		if grow && t.expand {
			size += free * t.weight / weight
		}
		edges[i] = [2]float32{pos, pos + size}
		pos += spacing + size
	}
	return edges
}

func resizeTracks(tracks []gridTrack, n int) []gridTrack {
	if cap(tracks) < n {
		return make([]gridTrack, n)
	}
	tracks = tracks[:n]
	for i := range tracks {
		tracks[i] = gridTrack{}
	}
	return tracks
}
