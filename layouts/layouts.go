// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layouts provides the stock [core.Layout] strategies: boxes
// that stack children along one axis, a grid, a margin inset, an
// aspect ratio inscription and a fit to the control's own graphic.
//
// All of them hand children designed rects, so a child can still opt
// out of filling its cell with the fill parameters on its [core.Rect].
package layouts

import "github.com/Rodrigodd/giui-sub001/core"

// Align places content inside leftover space along one axis.
type Align int8

const (
	// Start aligns to the left or top.
	Start Align = -1

	// Center centers.
	Center Align = 0

	// End aligns to the right or bottom.
	End Align = 1
)

// offset returns how far into a span of free pixels the content
// starts.
func (a Align) offset(free float32) float32 {
	switch a {
	case Center:
		return free / 2
	case End:
		return free
	}
	return 0
}

func expands(r *core.Rect, axis int) bool {
	if axis == 0 {
		return r.IsExpandX()
	}
	return r.IsExpandY()
}

func ratio(r *core.Rect, axis int) float32 {
	if axis == 0 {
		return r.RatioX
	}
	return r.RatioY
}
