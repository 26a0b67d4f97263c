// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layouts

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/graphics"
)

// FitGraphic sizes the control to the intrinsic size of its own
// graphic: the texture extent, the icon size, or the text layout min
// size. Children, if any, keep the default anchor placement.
type FitGraphic struct {
	core.LayoutBase
}

func (FitGraphic) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	min, ok := graphics.MinSize(ctx.Graphic(this), ctx.Shaper(), ctx.Fonts())
	if !ok {
		return [2]float32{}
	}
	return min
}
