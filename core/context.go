// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"time"

	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Context is the view of the gui a behaviour callback gets. Reads are
// live; mutations are recorded and applied when the callback returns,
// so the tree never changes under it. A structural change made
// through the context, building, removing, activating, reparenting,
// only becomes visible afterwards.
type Context struct {
	gui *Gui

	events      []any
	eventsTo    []eventTo
	dirtys      []Id
	renderDirty bool
}

type eventTo struct {
	id    Id
	event any
}

func newContext(g *Gui) *Context {
	return &Context{gui: g}
}

// drop applies the recorded mutations: events first, directed events
// next, layout dirt last.
func (c *Context) drop() {
	g := c.gui
	if c.renderDirty {
		g.redraw = true
	}
	for _, event := range c.events {
		g.sendEventInternal(event)
	}
	for _, et := range c.eventsTo {
		event := et.event
		g.callEvent(et.id, func(b Behaviour, this Id, ctx *Context) {
			b.OnEvent(event, this, ctx)
		})
	}
	for _, id := range c.dirtys {
		g.dirtyLayout(id)
	}
}

// Modifiers returns the modifier keys currently held.
func (c *Context) Modifiers() key.Modifiers {
	return c.gui.modifiers
}

// Fonts returns the font store shared by the text graphics.
func (c *Context) Fonts() *fonts.Fonts {
	return c.gui.fonts
}

// Shaper returns the text shaper shared by the text graphics.
func (c *Context) Shaper() text.Shaper {
	return c.gui.shaper
}

// Clipboard returns the clipboard the embedder injected.
func (c *Context) Clipboard() Clipboard {
	return c.gui.clipboard
}

// SurfaceSize returns the surface size, in pixels.
func (c *Context) SurfaceSize() [2]float32 {
	return c.gui.SurfaceSize()
}

// Focus returns the focused control, zero when none.
func (c *Context) Focus() Id {
	return c.gui.focus
}

// IsFocused reports whether the control is the keyboard focus or an
// ancestor of it. Containers use it to find which of their children
// holds the focus.
func (c *Context) IsFocused(id Id) bool {
	f := c.gui.focus
	if f.IsZero() {
		return false
	}
	return f == id || c.gui.controls.isDescendant(id, f)
}

// CreateControl starts building a control. The build commits when
// the callback returns; the id is good immediately.
func (c *Context) CreateControl() *ControlBuilder {
	id := c.gui.controls.reserve()
	return newControlBuilder(id, func(b *ControlBuilder) {
		c.events = append(c.events, builtControl{builder: b})
	})
}

// SendEvent queues a control event, or an application event for the
// listeners.
func (c *Context) SendEvent(event any) {
	c.events = append(c.events, event)
}

// SendEventTo queues an event for a control's [Behaviour.OnEvent].
func (c *Context) SendEventTo(id Id, event any) {
	c.eventsTo = append(c.eventsTo, eventTo{id: id, event: event})
}

// ScheduleEvent schedules an event for the control at the given
// instant. The registration happens right away and the cancel handle
// is returned; see [Gui.ScheduleEvent].
func (c *Context) ScheduleEvent(id Id, event any, at time.Time) uint64 {
	return c.gui.ScheduleEvent(id, event, at)
}

// CancelScheduledEvent drops a pending scheduled delivery.
func (c *Context) CancelScheduledEvent(handle uint64) {
	c.gui.CancelScheduledEvent(handle)
}

// SetFocus queues moving the keyboard focus to the control. The zero
// id clears it.
func (c *Context) SetFocus(id Id) {
	c.events = append(c.events, RequestFocus{Id: id})
}

// LockOver pins mouse routing of the pointer to the control under it,
// or releases it. A drag behaviour locks on Down and releases on Up,
// so it keeps hearing moves that leave its rect.
func (c *Context) LockOver(lock bool, pointer uint64) {
	c.events = append(c.events, SetLockOver{Lock: lock, Pointer: pointer})
}

// Active queues setting the control's active flag.
func (c *Context) Active(id Id) {
	c.events = append(c.events, ActiveControl{Id: id})
}

// Deactive queues clearing the control's active flag.
func (c *Context) Deactive(id Id) {
	c.events = append(c.events, DeactiveControl{Id: id})
}

// Remove queues removing the control and its whole subtree.
func (c *Context) Remove(id Id) {
	c.events = append(c.events, RemoveControl{Id: id})
}

// SetParent queues moving the control under a new parent.
func (c *Context) SetParent(id, parent Id) {
	c.events = append(c.events, SetParent{Id: id, Parent: parent})
}

// MoveToFront makes the control the topmost of its siblings. The
// reorder happens right away.
func (c *Context) MoveToFront(id Id) {
	if c.gui.lookup(id, "MoveToFront") == nil {
		return
	}
	c.gui.controls.moveToFront(id)
	c.dirtys = append(c.dirtys, id)
}

// MoveToBack makes the control the bottommost of its siblings.
func (c *Context) MoveToBack(id Id) {
	if c.gui.lookup(id, "MoveToBack") == nil {
		return
	}
	c.gui.controls.moveToBack(id)
	c.dirtys = append(c.dirtys, id)
}

// DirtyLayout requests a fresh layout pass over the control once the
// callback returns.
func (c *Context) DirtyLayout(id Id) {
	c.dirtys = append(c.dirtys, id)
}

// Rect returns the control's resolved rect, [left, top, right,
// bottom].
func (c *Context) Rect(id Id) [4]float32 {
	if cc := c.gui.lookup(id, "Rect"); cc != nil {
		return cc.rect.Rect()
	}
	return [4]float32{}
}

// Size returns the size of the control's resolved rect.
func (c *Context) Size(id Id) [2]float32 {
	if cc := c.gui.lookup(id, "Size"); cc != nil {
		return cc.rect.Size()
	}
	return [2]float32{}
}

// MinSize returns the control's effective min size.
func (c *Context) MinSize(id Id) [2]float32 {
	if cc := c.gui.lookup(id, "MinSize"); cc != nil {
		return cc.rect.MinSize()
	}
	return [2]float32{}
}

// SetMinSize raises the control's user min size and queues a layout
// pass.
func (c *Context) SetMinSize(id Id, minSize [2]float32) {
	if cc := c.gui.lookup(id, "SetMinSize"); cc != nil {
		cc.rect.SetMinSize(minSize)
		c.dirtys = append(c.dirtys, id)
	}
}

// Margins returns the control's margins.
func (c *Context) Margins(id Id) [4]float32 {
	if cc := c.gui.lookup(id, "Margins"); cc != nil {
		return cc.rect.Margins
	}
	return [4]float32{}
}

// SetMargins replaces the control's margins and queues a layout pass.
func (c *Context) SetMargins(id Id, margins [4]float32) {
	if cc := c.gui.lookup(id, "SetMargins"); cc != nil {
		cc.rect.Margins = margins
		c.dirtys = append(c.dirtys, id)
	}
}

// Anchors returns the control's anchors.
func (c *Context) Anchors(id Id) [4]float32 {
	if cc := c.gui.lookup(id, "Anchors"); cc != nil {
		return cc.rect.Anchors
	}
	return [4]float32{}
}

// SetAnchors replaces the control's anchors and queues a layout pass.
func (c *Context) SetAnchors(id Id, anchors [4]float32) {
	if cc := c.gui.lookup(id, "SetAnchors"); cc != nil {
		cc.rect.Anchors = anchors
		c.dirtys = append(c.dirtys, id)
	}
}

// Graphic returns the control's graphic, nil when it has none. The
// caller is assumed to mutate it, so the frame redraws.
func (c *Context) Graphic(id Id) graphics.Graphic {
	if cc := c.gui.lookup(id, "Graphic"); cc != nil {
		c.renderDirty = true
		return cc.graphic
	}
	return nil
}

// SetGraphic replaces the control's graphic. The min size it
// contributes may change, so a layout pass is queued too.
func (c *Context) SetGraphic(id Id, graphic graphics.Graphic) {
	if cc := c.gui.lookup(id, "SetGraphic"); cc != nil {
		cc.graphic = graphic
		c.renderDirty = true
		c.dirtys = append(c.dirtys, id)
	}
}

// IsActive reports the control's own active flag.
func (c *Context) IsActive(id Id) bool {
	if cc := c.gui.lookup(id, "IsActive"); cc != nil {
		return cc.active
	}
	return false
}

// Parent returns the control's parent, zero for the root.
func (c *Context) Parent(id Id) Id {
	if cc := c.gui.lookup(id, "Parent"); cc != nil {
		return cc.parent
	}
	return Id{}
}

// Children returns the control's children that have the active flag
// set, bottommost first in paint order.
func (c *Context) Children(id Id) []Id {
	if c.gui.lookup(id, "Children") == nil {
		return nil
	}
	return c.gui.controls.activeChildren(id)
}

// MinSizeContext is the view a [Layout] gets during the bottom up min
// size pass. The children of the control it runs for already have
// settled min sizes.
type MinSizeContext struct {
	gui  *Gui
	this Id
}

// Fonts returns the font store, for measuring text.
func (c *MinSizeContext) Fonts() *fonts.Fonts {
	return c.gui.fonts
}

// Shaper returns the text shaper, for measuring text.
func (c *MinSizeContext) Shaper() text.Shaper {
	return c.gui.shaper
}

// Graphic returns the graphic of the control, nil when it has none.
func (c *MinSizeContext) Graphic(id Id) graphics.Graphic {
	if cc := c.gui.lookup(id, "Graphic"); cc != nil {
		return cc.graphic
	}
	return nil
}

// MinSize returns the effective min size of the control.
func (c *MinSizeContext) MinSize(id Id) [2]float32 {
	if cc := c.gui.lookup(id, "MinSize"); cc != nil {
		return cc.rect.MinSize()
	}
	return [2]float32{}
}

// Layouting returns the layout state of the control, for reading
// margins, anchors and the expand parameters.
func (c *MinSizeContext) Layouting(id Id) *Rect {
	if cc := c.gui.lookup(id, "Layouting"); cc != nil {
		return &cc.rect
	}
	return nil
}

// Children returns the control's children with the active flag set.
func (c *MinSizeContext) Children(id Id) []Id {
	if c.gui.lookup(id, "Children") == nil {
		return nil
	}
	return c.gui.controls.activeChildren(id)
}

// LayoutContext is the view a [Layout] gets during the top down
// arrange pass. It sets the rects of the direct children of the
// control it runs for, and nothing else: deeper controls are reached
// by their own parents later in the pass.
type LayoutContext struct {
	gui  *Gui
	this Id
}

// Fonts returns the font store.
func (c *LayoutContext) Fonts() *fonts.Fonts {
	return c.gui.fonts
}

// Shaper returns the text shaper.
func (c *LayoutContext) Shaper() text.Shaper {
	return c.gui.shaper
}

// Rect returns the resolved rect of the control.
func (c *LayoutContext) Rect(id Id) [4]float32 {
	if cc := c.gui.lookup(id, "Rect"); cc != nil {
		return cc.rect.Rect()
	}
	return [4]float32{}
}

// MinSize returns the effective min size of the control.
func (c *LayoutContext) MinSize(id Id) [2]float32 {
	if cc := c.gui.lookup(id, "MinSize"); cc != nil {
		return cc.rect.MinSize()
	}
	return [2]float32{}
}

// Layouting returns the layout state of the control.
func (c *LayoutContext) Layouting(id Id) *Rect {
	if cc := c.gui.lookup(id, "Layouting"); cc != nil {
		return &cc.rect
	}
	return nil
}

// Children returns the control's children with the active flag set,
// bottommost first in paint order.
func (c *LayoutContext) Children(id Id) []Id {
	if c.gui.lookup(id, "Children") == nil {
		return nil
	}
	return c.gui.controls.activeChildren(id)
}

// Graphic returns the graphic of the control, nil when it has none.
// The caller is assumed to mutate it, so the frame redraws.
func (c *LayoutContext) Graphic(id Id) graphics.Graphic {
	if cc := c.gui.lookup(id, "Graphic"); cc != nil {
		c.gui.redraw = true
		return cc.graphic
	}
	return nil
}

// IsActive reports the control's own active flag.
func (c *LayoutContext) IsActive(id Id) bool {
	if cc := c.gui.lookup(id, "IsActive"); cc != nil {
		return cc.active
	}
	return false
}

// SetRect sets the resolved rect of a direct child.
func (c *LayoutContext) SetRect(id Id, rect [4]float32) {
	cc := c.child(id, "SetRect")
	if cc == nil {
		return
	}
	cc.rect.SetRect(c.sanitize(id, rect))
}

// SetDesignedRect hands a direct child the rect the layout designed
// for it, letting the child's fill parameters shrink inside it.
func (c *LayoutContext) SetDesignedRect(id Id, rect [4]float32) {
	cc := c.child(id, "SetDesignedRect")
	if cc == nil {
		return
	}
	cc.rect.SetDesignedRect(c.sanitize(id, rect))
}

// DirtyLayout marks a strict descendant for relayout. Direct children
// must be laid out here and now, with SetRect or SetDesignedRect,
// not deferred.
func (c *LayoutContext) DirtyLayout(id Id) {
	cc := c.gui.lookup(id, "DirtyLayout")
	if cc == nil {
		return
	}
	if cc.parent == c.this {
		if Debug {
			panic("giui: layout deferred its direct child " + id.String() + " instead of setting its rect")
		}
		slog.Error("layout deferred a direct child instead of setting its rect",
			"id", id, "this", c.this)
		return
	}
	if !c.gui.controls.isDescendant(c.this, id) {
		if Debug {
			panic("giui: layout of " + c.this.String() + " dirtied " + id.String() + " outside its subtree")
		}
		slog.Error("layout dirtied a control outside its subtree", "id", id, "this", c.this)
		return
	}
	c.gui.dirtyLayout(id)
}

// Active sets the control's active flag. The flag flips right away;
// the hooks still run deferred.
func (c *LayoutContext) Active(id Id) {
	c.gui.activeControl(id)
}

// Deactive clears the control's active flag.
func (c *LayoutContext) Deactive(id Id) {
	c.gui.deactiveControl(id)
}

// Remove queues removing the control and its subtree for after the
// pass.
func (c *LayoutContext) Remove(id Id) {
	c.gui.lazyEvents = append(c.gui.lazyEvents, lazyEvent{kind: lazyOnRemove, id: id})
}

// CreateControl starts building a control. The build commits the
// moment [ControlBuilder.Build] runs, so a layout can make a row and
// position it in the same pass.
func (c *LayoutContext) CreateControl() *ControlBuilder {
	id := c.gui.controls.reserve()
	return newControlBuilder(id, func(b *ControlBuilder) {
		c.gui.buildControl(b)
		c.gui.startControl(b.id)
	})
}

// MoveToFront makes the control the topmost of its siblings.
func (c *LayoutContext) MoveToFront(id Id) {
	if c.gui.lookup(id, "MoveToFront") == nil {
		return
	}
	c.gui.controls.moveToFront(id)
	c.gui.redraw = true
}

// MoveToBack makes the control the bottommost of its siblings.
func (c *LayoutContext) MoveToBack(id Id) {
	if c.gui.lookup(id, "MoveToBack") == nil {
		return
	}
	c.gui.controls.moveToBack(id)
	c.gui.redraw = true
}

// RecomputeMinSize runs the bottom up min size pass over the
// control's subtree right away, so rects built mid pass have an
// honest min size before they are positioned.
func (c *LayoutContext) RecomputeMinSize(id Id) {
	if c.gui.lookup(id, "RecomputeMinSize") == nil {
		return
	}
	c.gui.computeMinSizes(id)
}

func (c *LayoutContext) child(id Id, op string) *control {
	cc := c.gui.lookup(id, op)
	if cc == nil {
		return nil
	}
	if cc.parent != c.this {
		if Debug {
			panic("giui: " + op + " on " + id.String() + ", which is not a child of " + c.this.String())
		}
		slog.Error("layout touched a control it does not own",
			"op", op, "id", id, "this", c.this)
		return nil
	}
	return cc
}

// sanitize clamps rects with a negative span, which point at a layout
// bug, to an empty span.
func (c *LayoutContext) sanitize(id Id, rect [4]float32) [4]float32 {
	if rect[2] < rect[0] || rect[3] < rect[1] {
		slog.Error("layout computed a negative span", "id", id, "rect", rect)
		if rect[2] < rect[0] {
			rect[2] = rect[0]
		}
		if rect[3] < rect[1] {
			rect[3] = rect[1]
		}
	}
	return rect
}
