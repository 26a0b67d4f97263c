// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
)

// scrollStep is the pixel step of the arrow keys in a ScrollView or
// List.
const scrollStep = 30

// dragThreshold is how far a press must move before it turns into a
// content drag.
const dragThreshold = 5

// ScrollBar drives one axis of a ScrollView or List. It sits on the
// bar control; handle is the child the scrolled control anchors along
// the bar. Dragging the handle and clicking the track both send
// [SetScrollPosition] to scrollView.
type ScrollBar struct {
	core.BehaviourBase
	handle     core.Id
	scrollView core.Id
	dragging   bool
	dragStart  float32
	mousePos   float32
	currValue  float32
	vertical   bool
	style      style.ButtonStyle
}

func NewScrollBar(handle, scrollView core.Id, vertical bool, st style.ButtonStyle) *ScrollBar {
	return &ScrollBar{handle: handle, scrollView: scrollView, vertical: vertical, style: st}
}

func (s *ScrollBar) InputFlags() core.InputFlags {
	return core.InputMouse
}

func (s *ScrollBar) OnActive(this core.Id, ctx *core.Context) {
	ctx.SetGraphic(s.handle, graphics.Clone(s.style.Normal))
}

func (s *ScrollBar) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	axis := 0
	if s.vertical {
		axis = 1
	}
	switch {
	case mouse.Event == events.MouseExit:
		ctx.SetGraphic(s.handle, graphics.Clone(s.style.Normal))
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		s.dragging = true
		ctx.SetGraphic(s.handle, graphics.Clone(s.style.Pressed))
		ctx.LockOver(true, mouse.Pointer)

		handleRect := ctx.Rect(s.handle)
		areaRect := ctx.Rect(ctx.Parent(s.handle))
		handleSize := handleRect[axis+2] - handleRect[axis]
		areaSize := areaRect[axis+2] - areaRect[axis] - handleSize
		s.dragStart = s.mousePos
		if areaSize <= 0 {
			s.currValue = 0
		} else if s.mousePos < handleRect[axis] || s.mousePos > handleRect[axis+2] {
			// track click: jump the handle center to the pointer
			s.currValue = (s.mousePos - (areaRect[axis] + handleSize/2)) / areaSize
			ctx.SendEventTo(s.scrollView, SetScrollPosition{Vertical: s.vertical, Value: s.currValue})
		} else {
			s.currValue = (handleRect[axis] - areaRect[axis]) / areaSize
		}
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		if s.dragging {
			s.dragging = false
			ctx.LockOver(false, mouse.Pointer)
			ctx.SetGraphic(s.handle, graphics.Clone(s.style.Hover))
		}
	case mouse.Event == events.MouseMoved:
		s.mousePos = mouse.Pos[axis]
		if s.dragging {
			handleRect := ctx.Rect(s.handle)
			areaRect := ctx.Rect(ctx.Parent(s.handle))
			handleSize := handleRect[axis+2] - handleRect[axis]
			areaSize := areaRect[axis+2] - areaRect[axis] - handleSize
			value := float32(0)
			if areaSize != 0 {
				value = s.currValue + (s.mousePos-s.dragStart)/areaSize
			}
			ctx.SendEventTo(s.scrollView, SetScrollPosition{Vertical: s.vertical, Value: value})
		} else {
			handleRect := ctx.Rect(s.handle)
			if s.mousePos < handleRect[axis] || s.mousePos > handleRect[axis+2] {
				ctx.SetGraphic(s.handle, graphics.Clone(s.style.Normal))
			} else {
				ctx.SetGraphic(s.handle, graphics.Clone(s.style.Hover))
			}
		}
	}
	return true
}

// setHandleAnchors anchors a scrollbar handle along its bar for a
// view covering [start, end] of the content, both in 0..1. When the
// handle would get thinner than its min size the span is rescaled so
// the grown handle still reaches the ends of the track. length is the
// view length on the bar's axis.
func setHandleAnchors(ctx *core.LayoutContext, handle core.Id, vertical bool, start, end, length float32) {
	axis := 0
	if vertical {
		axis = 1
	}
	handleMin := ctx.MinSize(handle)[axis]
	if gap := handleMin - (end-start)*length; gap > 0 && length > 0 {
		start *= 1 - gap/length
		end *= 1 - gap/length
	}
	r := ctx.Layouting(handle)
	if r == nil {
		return
	}
	r.Anchors[axis] = start
	r.Anchors[axis+2] = end
}

// ViewLayout is the layout of the view control inside a ScrollView.
// Its min size passes the content's min size through on the axes that
// do not scroll, and it positions nothing: the ScrollView's layout
// places the content.
type ViewLayout struct {
	h bool
	v bool
}

// NewViewLayout creates the view layout; h and v tell which axes
// scroll.
func NewViewLayout(h, v bool) *ViewLayout {
	return &ViewLayout{h: h, v: v}
}

func (l *ViewLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	children := ctx.Children(this)
	if len(children) == 0 {
		return [2]float32{}
	}
	contentMin := ctx.MinSize(children[0])
	var minSize [2]float32
	if !l.h {
		minSize[0] = contentMin[0]
	}
	if !l.v {
		minSize[1] = contentMin[1]
	}
	return minSize
}

func (l *ViewLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {}

// ScrollView scrolls a content control behind a clipped view. It is
// both the behaviour and the layout of the scroll view control, whose
// children are the view (with a [graphics.Mask] and a [ViewLayout]),
// and optionally an horizontal and a vertical scrollbar. The content
// is the single child of the view.
//
// Scroll events, arrow keys, Home, End, PageUp and PageDown move the
// content, as does dragging it once the pointer travels past a small
// threshold. The bars activate only while the content overflows their
// axis.
type ScrollView struct {
	core.BehaviourBase
	deltaX  float32
	deltaY  float32
	view    core.Id
	content core.Id
	hBar    core.Id
	hHandle core.Id
	vBar    core.Id
	vHandle core.Id

	pressed   bool
	dragging  bool
	pressPos  [2]float32
	lastMouse [2]float32
}

func NewScrollView(view, content core.Id) *ScrollView {
	return &ScrollView{view: view, content: content}
}

// WithHorizontalBar attaches the horizontal scrollbar and its handle.
func (s *ScrollView) WithHorizontalBar(bar, handle core.Id) *ScrollView {
	s.hBar, s.hHandle = bar, handle
	return s
}

// WithVerticalBar attaches the vertical scrollbar and its handle.
func (s *ScrollView) WithVerticalBar(bar, handle core.Id) *ScrollView {
	s.vBar, s.vHandle = bar, handle
	return s
}

func (s *ScrollView) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputScroll
}

func (s *ScrollView) OnStart(this core.Id, ctx *core.Context) {
	if !s.hBar.IsZero() {
		ctx.MoveToFront(s.hBar)
	}
	if !s.vBar.IsZero() {
		ctx.MoveToFront(s.vBar)
	}
}

func (s *ScrollView) OnActive(this core.Id, ctx *core.Context) {
	contentSize := ctx.MinSize(s.content)
	viewSize := ctx.Size(s.view)
	if !s.hHandle.IsZero() && contentSize[0] > 0 {
		anchors := ctx.Anchors(s.hHandle)
		anchors[0] = s.deltaX / contentSize[0]
		anchors[2] = math32.Min(1, (s.deltaX+viewSize[0])/contentSize[0])
		ctx.SetAnchors(s.hHandle, anchors)
	}
	if !s.vHandle.IsZero() && contentSize[1] > 0 {
		anchors := ctx.Anchors(s.vHandle)
		anchors[1] = s.deltaY / contentSize[1]
		anchors[3] = math32.Min(1, (s.deltaY+viewSize[1])/contentSize[1])
		ctx.SetAnchors(s.vHandle, anchors)
	}
}

func (s *ScrollView) OnEvent(event any, this core.Id, ctx *core.Context) {
	if set, ok := event.(SetScrollPosition); ok {
		if set.Vertical {
			total := ctx.Size(s.content)[1] - ctx.Size(s.view)[1]
			s.deltaY = set.Value * total
		} else {
			total := ctx.Size(s.content)[0] - ctx.Size(s.view)[0]
			s.deltaX = set.Value * total
		}
		ctx.DirtyLayout(s.view)
	}
}

func (s *ScrollView) OnScrollEvent(delta [2]float32, this core.Id, ctx *core.Context) {
	s.deltaX += delta[0]
	s.deltaY -= delta[1]
	ctx.DirtyLayout(s.view)
}

func (s *ScrollView) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		s.pressed = true
		s.pressPos = mouse.Pos
		s.lastMouse = mouse.Pos
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		s.pressed = false
		if s.dragging {
			s.dragging = false
			ctx.LockOver(false, mouse.Pointer)
		}
	case mouse.Event == events.MouseMoved:
		if s.pressed && !s.dragging {
			dx := mouse.Pos[0] - s.pressPos[0]
			dy := mouse.Pos[1] - s.pressPos[1]
			if dx*dx+dy*dy > dragThreshold*dragThreshold {
				s.dragging = true
				ctx.LockOver(true, mouse.Pointer)
			}
		}
		if s.dragging {
			s.deltaX -= mouse.Pos[0] - s.lastMouse[0]
			s.deltaY -= mouse.Pos[1] - s.lastMouse[1]
			ctx.DirtyLayout(s.view)
		}
		s.lastMouse = mouse.Pos
	}
	return true
}

func (s *ScrollView) OnKeyboardEvent(event events.KeyEvent, this core.Id, ctx *core.Context) bool {
	if event.Kind != events.KeyDown {
		return false
	}
	switch event.Code {
	case key.CodeUp:
		s.deltaY -= scrollStep
	case key.CodeDown:
		s.deltaY += scrollStep
	case key.CodeLeft:
		s.deltaX -= scrollStep
	case key.CodeRight:
		s.deltaX += scrollStep
	case key.CodeHome:
		s.deltaY = 0
	case key.CodeEnd:
		s.deltaY = math32.Inf(1)
	case key.CodePageUp:
		s.deltaY -= ctx.Size(s.view)[1] - 40
	case key.CodePageDown:
		s.deltaY += ctx.Size(s.view)[1] - 40
	default:
		return false
	}
	ctx.DirtyLayout(s.view)
	return true
}

func (s *ScrollView) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	minSize := ctx.MinSize(s.view)
	contentMin := ctx.MinSize(s.content)

	var hBarSize, vBarSize [2]float32
	if s.hBar.IsZero() {
		minSize[0] = contentMin[0]
	} else {
		hBarSize = ctx.MinSize(s.hBar)
	}
	if s.vBar.IsZero() {
		minSize[1] = contentMin[1]
	} else {
		vBarSize = ctx.MinSize(s.vBar)
	}

	minSize[0] = math32.Max(minSize[0], hBarSize[0])
	minSize[1] = math32.Max(minSize[1], vBarSize[1])
	minSize[0] += vBarSize[0]
	minSize[1] += hBarSize[1]
	return minSize
}

func (s *ScrollView) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	thisRect := ctx.Rect(this)
	contentSize := ctx.MinSize(s.content)
	thisWidth := thisRect[2] - thisRect[0]
	thisHeight := thisRect[3] - thisRect[1]

	hActive := false
	hBarSize := float32(0)
	if !s.hBar.IsZero() {
		hActive = thisWidth < contentSize[0]
		if hActive {
			hBarSize = ctx.MinSize(s.hBar)[1]
		}
	}
	vActive := false
	vBarSize := float32(0)
	if !s.vBar.IsZero() {
		vActive = thisHeight-hBarSize < contentSize[1]
		if vActive {
			vBarSize = ctx.MinSize(s.vBar)[0]
		}
	}
	// the vertical bar just ate some width; recheck the horizontal one
	if !s.hBar.IsZero() && !hActive && thisWidth-vBarSize < contentSize[0] {
		hActive = true
		hBarSize = ctx.MinSize(s.hBar)[1]
	}

	if !s.hBar.IsZero() {
		if ctx.IsActive(s.hBar) != hActive {
			if hActive {
				ctx.Active(s.hBar)
			} else {
				ctx.Deactive(s.hBar)
			}
		}
	}
	if !s.vBar.IsZero() {
		if ctx.IsActive(s.vBar) != vActive {
			if vActive {
				ctx.Active(s.vBar)
			} else {
				ctx.Deactive(s.vBar)
			}
		}
	}

	if hActive {
		ctx.SetDesignedRect(s.hBar, [4]float32{
			thisRect[0], thisRect[3] - hBarSize, thisRect[2] - vBarSize, thisRect[3],
		})
	}
	if vActive {
		ctx.SetDesignedRect(s.vBar, [4]float32{
			thisRect[2] - vBarSize, thisRect[1], thisRect[2], thisRect[3] - hBarSize,
		})
	}

	ctx.SetDesignedRect(s.view, [4]float32{
		thisRect[0], thisRect[1], thisRect[2] - vBarSize, thisRect[3] - hBarSize,
	})

	viewWidth := thisWidth - vBarSize
	viewHeight := thisHeight - hBarSize

	if s.deltaX < 0 || viewWidth > contentSize[0] {
		s.deltaX = 0
	} else if s.deltaX > contentSize[0]-viewWidth {
		s.deltaX = contentSize[0] - viewWidth
	}
	if s.deltaY < 0 || viewHeight > contentSize[1] {
		s.deltaY = 0
	} else if s.deltaY > contentSize[1]-viewHeight {
		s.deltaY = contentSize[1] - viewHeight
	}

	var contentRect [4]float32
	if contentSize[0] < viewWidth {
		contentRect[0] = thisRect[0]
		contentRect[2] = thisRect[0] + viewWidth
	} else {
		contentRect[0] = thisRect[0] - s.deltaX
		contentRect[2] = thisRect[0] - s.deltaX + contentSize[0]
	}
	if contentSize[1] < viewHeight {
		contentRect[1] = thisRect[1]
		contentRect[3] = thisRect[1] + viewHeight
	} else {
		contentRect[1] = thisRect[1] - s.deltaY
		contentRect[3] = thisRect[1] - s.deltaY + contentSize[1]
	}

	if hActive && !s.hHandle.IsZero() && contentSize[0] > 0 {
		start := s.deltaX / contentSize[0]
		end := math32.Min(1, (s.deltaX+viewWidth)/contentSize[0])
		setHandleAnchors(ctx, s.hHandle, false, start, end, viewWidth)
	}
	if vActive && !s.vHandle.IsZero() && contentSize[1] > 0 {
		start := s.deltaY / contentSize[1]
		end := math32.Min(1, (s.deltaY+viewHeight)/contentSize[1])
		setHandleAnchors(ctx, s.vHandle, true, start, end, viewHeight)
	}

	// the content is the view's child; the view layout leaves it to
	// this one
	if r := ctx.Layouting(s.content); r != nil {
		r.SetDesignedRect(contentRect)
	}
}
