// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/chewxy/math32"

// RectFill sets how a control fills the rect its parent layout
// designed for it, per axis.
type RectFill int8

const (
	// Fill occupies the whole designed span.
	Fill RectFill = iota

	// ShrinkStart shrinks to the min size, anchored to the start of
	// the designed span.
	ShrinkStart

	// ShrinkCenter shrinks to the min size, centered in the designed
	// span.
	ShrinkCenter

	// ShrinkEnd shrinks to the min size, anchored to the end of the
	// designed span.
	ShrinkEnd
)

// Rect is the layout state of a control: the resolved rect in surface
// pixels, the anchors and margins relative to the parent, the min
// size, and the expand and fill parameters its parent layout reads.
//
// Coordinate arrays are in the form [left, top, right, bottom], with
// the origin at the top left of the surface.
type Rect struct {
	// Anchors hold the fractions of the parent rect that each edge is
	// attached to, used by the default anchor layout.
	Anchors [4]float32

	// Margins are offsets in pixels added to each anchored edge.
	Margins [4]float32

	// RatioX and RatioY weight how much of the free space an
	// expanding control receives relative to its expanding siblings.
	RatioX float32
	RatioY float32

	rect        [4]float32
	minSize     [2]float32
	userMinSize [2]float32
	expandX     bool
	expandY     bool
	fillX       RectFill
	fillY       RectFill
}

func defaultRect() Rect {
	return Rect{
		Anchors: [4]float32{0, 0, 1, 1},
		RatioX:  1,
		RatioY:  1,
	}
}

// Rect returns the resolved rect, [left, top, right, bottom].
func (r *Rect) Rect() [4]float32 {
	return r.rect
}

// SetRect replaces the resolved rect. Parent layouts should prefer
// [Rect.SetDesignedRect], which honors the fill parameters.
func (r *Rect) SetRect(rect [4]float32) {
	if cmpFloat(r.rect[0], rect[0]) &&
		cmpFloat(r.rect[1], rect[1]) &&
		cmpFloat(r.rect[2], rect[2]) &&
		cmpFloat(r.rect[3], rect[3]) {
		return
	}
	r.rect = rect
}

// SetDesignedRect resolves the rect the parent layout designed,
// applying the fill parameters per axis. A span below the min size is
// pinned at its start and widened to the min size.
func (r *Rect) SetDesignedRect(rect [4]float32) {
	out := rect
	if rect[2]-rect[0] <= r.minSize[0] {
		out[2] = out[0] + r.minSize[0]
	} else {
		switch r.fillX {
		case Fill:
		case ShrinkStart:
			out[2] = out[0] + r.minSize[0]
		case ShrinkCenter:
			out[0] = rect[0] + (rect[2]-rect[0]-r.minSize[0])/2
			out[2] = out[0] + r.minSize[0]
		case ShrinkEnd:
			out[0] = out[2] - r.minSize[0]
		}
	}
	if rect[3]-rect[1] <= r.minSize[1] {
		out[3] = out[1] + r.minSize[1]
	} else {
		switch r.fillY {
		case Fill:
		case ShrinkStart:
			out[3] = out[1] + r.minSize[1]
		case ShrinkCenter:
			out[1] = rect[1] + (rect[3]-rect[1]-r.minSize[1])/2
			out[3] = out[1] + r.minSize[1]
		case ShrinkEnd:
			out[1] = out[3] - r.minSize[1]
		}
	}
	r.SetRect(out)
}

// MinSize returns the effective min size, the max of the layout
// computed min size and the user set one.
func (r *Rect) MinSize() [2]float32 {
	return r.minSize
}

// SetMinSize raises the user set min size. The effective min size
// never goes below it, whatever the control's layout computes. The
// rect is widened right away if it is smaller than the new min.
func (r *Rect) SetMinSize(minSize [2]float32) {
	r.userMinSize = minSize
	r.minSize[0] = math32.Max(r.minSize[0], minSize[0])
	r.minSize[1] = math32.Max(r.minSize[1], minSize[1])
	if r.Width() < r.minSize[0] {
		r.rect[2] = r.rect[0] + r.minSize[0]
	}
	if r.Height() < r.minSize[1] {
		r.rect[3] = r.rect[1] + r.minSize[1]
	}
}

// setLayoutMinSize stores the min size computed by the control's
// layout, clamped from below by the user set min size.
func (r *Rect) setLayoutMinSize(minSize [2]float32) {
	r.minSize[0] = math32.Max(minSize[0], r.userMinSize[0])
	r.minSize[1] = math32.Max(minSize[1], r.userMinSize[1])
}

// Width returns the width of the resolved rect.
func (r *Rect) Width() float32 {
	return r.rect[2] - r.rect[0]
}

// Height returns the height of the resolved rect.
func (r *Rect) Height() float32 {
	return r.rect[3] - r.rect[1]
}

// Size returns the size of the resolved rect.
func (r *Rect) Size() [2]float32 {
	return [2]float32{r.Width(), r.Height()}
}

// Center returns the center point of the resolved rect.
func (r *Rect) Center() [2]float32 {
	return [2]float32{
		(r.rect[0] + r.rect[2]) / 2,
		(r.rect[1] + r.rect[3]) / 2,
	}
}

// TopLeft returns the top left corner of the resolved rect.
func (r *Rect) TopLeft() [2]float32 {
	return [2]float32{r.rect[0], r.rect[1]}
}

// Contains reports whether the point is inside the rect. Points on
// the edges are outside.
func (r *Rect) Contains(x, y float32) bool {
	return x > r.rect[0] && x < r.rect[2] && y > r.rect[1] && y < r.rect[3]
}

// RelativeX maps a surface x coordinate to the 0 to 1 range across
// the rect width.
func (r *Rect) RelativeX(x float32) float32 {
	return (x - r.rect[0]) / r.Width()
}

// IsExpandX reports whether the control wants free horizontal space
// from its parent layout.
func (r *Rect) IsExpandX() bool {
	return r.expandX
}

// SetExpandX sets whether the control wants free horizontal space.
func (r *Rect) SetExpandX(expand bool) {
	r.expandX = expand
}

// IsExpandY reports whether the control wants free vertical space
// from its parent layout.
func (r *Rect) IsExpandY() bool {
	return r.expandY
}

// SetExpandY sets whether the control wants free vertical space.
func (r *Rect) SetExpandY(expand bool) {
	r.expandY = expand
}

// FillX returns the horizontal fill parameter.
func (r *Rect) FillX() RectFill {
	return r.fillX
}

// SetFillX sets the horizontal fill parameter.
func (r *Rect) SetFillX(fill RectFill) {
	r.fillX = fill
}

// FillY returns the vertical fill parameter.
func (r *Rect) FillY() RectFill {
	return r.fillY
}

// SetFillY sets the vertical fill parameter.
func (r *Rect) SetFillY(fill RectFill) {
	r.fillY = fill
}

// float32 machine epsilon
const floatEps = 1.1920929e-7

// cmpFloat reports whether a and b are equal within one unit of
// relative rounding error.
func cmpFloat(a, b float32) bool {
	return math32.Abs(a-b) <= floatEps*math32.Max(math32.Abs(a), math32.Abs(b))
}
