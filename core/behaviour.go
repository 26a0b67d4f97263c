// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/Rodrigodd/giui-sub001/events"

// InputFlags declare which input events a behaviour wants to receive.
// The router never delivers an event class a control did not opt in
// to.
type InputFlags uint8

const (
	// InputMouse receives enter, exit, move, down and up events when
	// the pointer is over the control.
	InputMouse InputFlags = 1 << iota

	// InputScroll receives scroll deltas when the pointer is over the
	// control.
	InputScroll

	// InputFocus makes the control focusable by click and reachable
	// by Tab traversal.
	InputFocus

	// InputKeyboard receives character input while the control is on
	// the focus chain. Raw key events reach the chain regardless.
	InputKeyboard

	// InputPointerEventsMask gates hit testing of the whole subtree
	// on the pointer being inside the control rect, the same way a
	// [graphics.Mask] does.
	InputPointerEventsMask
)

// Has reports whether all the given flags are set.
func (f InputFlags) Has(flags InputFlags) bool {
	return f&flags == flags
}

// Behaviour gives a control its logic. All methods run on the gui
// thread with a [Context] that records mutations, applied when the
// dispatch returns.
//
// Embed [BehaviourBase] to implement only the methods of interest.
type Behaviour interface {
	// InputFlags returns the input event classes the behaviour wants.
	InputFlags() InputFlags

	// OnStart runs once, after the control is built and its parent
	// has started.
	OnStart(this Id, ctx *Context)

	// OnActive runs every time the control becomes really active,
	// after layout has settled. Parents hear it before children.
	OnActive(this Id, ctx *Context)

	// OnDeactive runs every time the control stops being really
	// active. Children hear it before parents.
	OnDeactive(this Id, ctx *Context)

	// OnRemove runs when the control is removed, after OnDeactive.
	// Children hear it before parents.
	OnRemove(this Id, ctx *Context)

	// OnEvent receives events sent directly to this control with
	// SendEventTo.
	OnEvent(event any, this Id, ctx *Context)

	// OnMouseEvent receives pointer events when InputMouse is set.
	// Returning true consumes the event, stopping it from bubbling to
	// the ancestors under the pointer.
	OnMouseEvent(mouse events.MouseInfo, this Id, ctx *Context) bool

	// OnScrollEvent receives the scroll delta, in pixels, when
	// InputScroll is set.
	OnScrollEvent(delta [2]float32, this Id, ctx *Context)

	// OnFocusChange runs when keyboard focus moves onto or off the
	// control, and on its ancestors when focus moves in or out of
	// their subtree.
	OnFocusChange(focus bool, this Id, ctx *Context)

	// OnKeyboardEvent receives key presses, releases and character
	// input while the control is on the focus chain. Returning true
	// consumes the event.
	OnKeyboardEvent(event events.KeyEvent, this Id, ctx *Context) bool
}

// BehaviourBase is a no op [Behaviour] for embedding.
type BehaviourBase struct{}

func (BehaviourBase) InputFlags() InputFlags                          { return 0 }
func (BehaviourBase) OnStart(this Id, ctx *Context)                   {}
func (BehaviourBase) OnActive(this Id, ctx *Context)                  {}
func (BehaviourBase) OnDeactive(this Id, ctx *Context)                {}
func (BehaviourBase) OnRemove(this Id, ctx *Context)                  {}
func (BehaviourBase) OnEvent(event any, this Id, ctx *Context)        {}
func (BehaviourBase) OnFocusChange(focus bool, this Id, ctx *Context) {}

func (BehaviourBase) OnMouseEvent(mouse events.MouseInfo, this Id, ctx *Context) bool {
	return false
}

func (BehaviourBase) OnScrollEvent(delta [2]float32, this Id, ctx *Context) {}

func (BehaviourBase) OnKeyboardEvent(event events.KeyEvent, this Id, ctx *Context) bool {
	return false
}

// Layout positions the children of a control. The engine runs
// [Layout.ComputeMinSize] bottom up over the really active tree, then
// [Layout.UpdateLayouts] top down, so a layout always sees settled
// child min sizes and a settled own rect.
//
// Embed [LayoutBase] to override only one of the passes. A control
// built without a layout gets the LayoutBase anchor behavior.
type Layout interface {
	// ComputeMinSize returns the min size of the control, usually an
	// aggregate of the min sizes of its children. The effective min
	// is clamped from below by the user set min size.
	ComputeMinSize(this Id, ctx *MinSizeContext) [2]float32

	// UpdateLayouts sets the rects of the direct children, through
	// [LayoutContext.SetRect] or [LayoutContext.SetDesignedRect].
	UpdateLayouts(this Id, ctx *LayoutContext)
}

// LayoutBase is the default [Layout]: it reports no min size of its
// own and positions each child by its anchors and margins relative to
// the parent rect.
type LayoutBase struct{}

func (LayoutBase) ComputeMinSize(this Id, ctx *MinSizeContext) [2]float32 {
	return [2]float32{}
}

func (LayoutBase) UpdateLayouts(this Id, ctx *LayoutContext) {
	rect := ctx.Rect(this)
	pos := [2]float32{rect[0], rect[1]}
	size := [2]float32{rect[2] - rect[0], rect[3] - rect[1]}
	for _, child := range ctx.Children(this) {
		layouting := ctx.Layouting(child)
		var out [4]float32
		for i := range out {
			out[i] = pos[i%2] + size[i%2]*layouting.Anchors[i] + layouting.Margins[i]
		}
		ctx.SetDesignedRect(child, out)
	}
}
