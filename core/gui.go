// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core implements the control tree and the engine that runs
// it: a generational arena of controls, a two pass layout driver, and
// the router that turns raw window input into behaviour callbacks.
//
// The engine draws nothing itself. Each frame the embedder feeds
// window events through [Gui], asks [Gui.RenderDirty] whether
// anything changed, and hands the tree to the render package, which
// turns it into draw primitives for the embedder's own renderer.
//
// Controls are made of parts: a [Rect] holding layout state, an
// optional [graphics.Graphic] for looks, an optional [Behaviour] for
// logic and an optional [Layout] to place children. Behaviours talk
// back to the engine through a [Context], whose mutations are applied
// when the dispatch returns, so the tree never changes under a
// running callback.
package core

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Debug turns misuse that is normally only logged into panics, such
// as a layout touching controls outside the subtree it owns.
var Debug = false

// Clipboard is the system clipboard as the embedder exposes it. A
// [Gui] starts with a no op implementation.
type Clipboard interface {
	ReadText() string
	WriteText(text string)
}

type nopClipboard struct{}

func (nopClipboard) ReadText() string { return "" }
func (nopClipboard) WriteText(string) {}

// Gui owns a control tree and routes input through it.
//
// A Gui is not safe for concurrent use. Every method must run on the
// goroutine the embedder handles window events on.
type Gui struct {
	controls  *controls
	fonts     *fonts.Fonts
	shaper    text.Shaper
	clock     func() time.Time
	clipboard Clipboard

	modifiers key.Modifiers
	inputs    []*pointerInput
	focus     Id

	resources map[reflect.Type]any
	listeners events.Listeners
	pending   []any

	lazyEvents   []lazyEvent
	dirtyLayouts []Id
	updating     bool

	schedule    scheduleQueue
	scheduled   map[uint64]*scheduledEvent
	scheduleSeq uint64

	redraw        bool
	cursor        Cursor
	cursorChanged bool
}

// New creates a gui for a surface of the given size, in pixels. The
// fonts and the shaper back every text graphic in the tree.
func New(width, height float32, fts *fonts.Fonts, shaper text.Shaper) *Gui {
	g := &Gui{
		controls:  newControls(width, height),
		fonts:     fts,
		shaper:    shaper,
		clock:     time.Now,
		clipboard: nopClipboard{},
		resources: map[reflect.Type]any{},
		scheduled: map[uint64]*scheduledEvent{},
		inputs:    []*pointerInput{newPointerInput(DefaultPointer)},
		redraw:    true,
	}
	g.listeners.Init()
	return g
}

// SetClock replaces the time source used for click timing and
// scheduled events. Tests use it to drive time by hand.
func (g *Gui) SetClock(clock func() time.Time) {
	g.clock = clock
}

// Fonts returns the font store shared by the text graphics.
func (g *Gui) Fonts() *fonts.Fonts {
	return g.fonts
}

// Shaper returns the text shaper shared by the text graphics.
func (g *Gui) Shaper() text.Shaper {
	return g.shaper
}

// Clipboard returns the clipboard in use.
func (g *Gui) Clipboard() Clipboard {
	return g.clipboard
}

// SetClipboard injects the embedder's clipboard. A nil clipboard
// restores the no op one.
func (g *Gui) SetClipboard(clipboard Clipboard) {
	if clipboard == nil {
		clipboard = nopClipboard{}
	}
	g.clipboard = clipboard
}

// Modifiers returns the modifier keys currently held.
func (g *Gui) Modifiers() key.Modifiers {
	return g.modifiers
}

// Set stores a value in the gui's resource registry, keyed by its
// type. Widgets fetch shared assets back with [Get], style sheets
// above all.
func Set[T any](g *Gui, value T) {
	g.resources[reflect.TypeOf((*T)(nil)).Elem()] = &value
}

// Get returns a pointer to the resource of type T. It panics when no
// such resource was set: a gui running styled widgets must be seeded
// with their styles first.
func Get[T any](g *Gui) *T {
	v, ok := g.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		panic("giui: no resource of type " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return v.(*T)
}

// Resize updates the surface size, in pixels. The root rect follows
// it and the tree is laid out again.
func (g *Gui) Resize(width, height float32) {
	g.controls.get(Root).rect.SetRect([4]float32{0, 0, width, height})
	g.dirtyLayout(Root)
	g.lazyUpdate()
}

// SurfaceSize returns the current surface size.
func (g *Gui) SurfaceSize() [2]float32 {
	return g.controls.get(Root).rect.Size()
}

// CreateControl starts building a control. The build commits the
// moment [ControlBuilder.Build] runs; inside a behaviour use
// [Context.CreateControl] instead.
func (g *Gui) CreateControl() *ControlBuilder {
	id := g.controls.reserve()
	return newControlBuilder(id, func(b *ControlBuilder) {
		g.buildControl(b)
		g.startControl(b.id)
		g.lazyUpdate()
	})
}

// ActiveControl sets the control's active flag. The subtree becomes
// really active, and is laid out, rendered and hit tested again, once
// every ancestor is active as well.
func (g *Gui) ActiveControl(id Id) {
	g.activeControl(id)
	g.lazyUpdate()
}

// DeactiveControl clears the control's active flag, deactivating its
// whole subtree.
func (g *Gui) DeactiveControl(id Id) {
	g.deactiveControl(id)
	g.lazyUpdate()
}

// RemoveControl removes the control and its whole subtree, running
// the deactive and remove hooks children first. Removing [Root]
// removes all of its children instead.
func (g *Gui) RemoveControl(id Id) {
	g.lazyEvents = append(g.lazyEvents, lazyEvent{kind: lazyOnRemove, id: id, dirtyParent: true})
	g.lazyUpdate()
}

// ClearControls removes every control but the root.
func (g *Gui) ClearControls() {
	g.lazyUpdate()
	g.lazyEvents = append(g.lazyEvents, lazyEvent{kind: lazyOnRemove, id: Root})
	g.lazyUpdate()
}

// MoveToFront makes the control the topmost of its siblings, last to
// paint and first to hit test.
func (g *Gui) MoveToFront(id Id) {
	if g.lookup(id, "MoveToFront") == nil {
		return
	}
	g.controls.moveToFront(id)
	g.dirtyLayout(id)
	g.lazyUpdate()
}

// MoveToBack makes the control the bottommost of its siblings.
func (g *Gui) MoveToBack(id Id) {
	if g.lookup(id, "MoveToBack") == nil {
		return
	}
	g.controls.moveToBack(id)
	g.dirtyLayout(id)
	g.lazyUpdate()
}

// SendEvent dispatches a control event, one of the types in this
// package, or delivers any other value to the application listeners.
// Unhandled application events pile up for [Gui.TakeEvents].
func (g *Gui) SendEvent(event any) {
	g.sendEventInternal(event)
	g.lazyUpdate()
}

// SendEventTo delivers the event straight to the control's
// [Behaviour.OnEvent].
func (g *Gui) SendEventTo(id Id, event any) {
	g.callEvent(id, func(b Behaviour, this Id, ctx *Context) {
		b.OnEvent(event, this, ctx)
	})
}

func (g *Gui) sendEventInternal(event any) {
	switch ev := event.(type) {
	case builtControl:
		g.buildControl(ev.builder)
		g.startControl(ev.builder.id)
	case ActiveControl:
		g.activeControl(ev.Id)
	case DeactiveControl:
		g.deactiveControl(ev.Id)
	case RemoveControl:
		g.lazyEvents = append(g.lazyEvents, lazyEvent{kind: lazyOnRemove, id: ev.Id, dirtyParent: true})
	case SetParent:
		g.setParentOf(ev.Id, ev.Parent)
	case RequestFocus:
		g.setFocus(ev.Id)
	case SetLockOver:
		in := g.pointer(ev.Pointer)
		if in == nil {
			slog.Error("lock over for an unknown pointer", "pointer", ev.Pointer)
			return
		}
		in.overLocked = ev.Lock
		if ev.Lock && !in.hover.IsZero() {
			if c := g.controls.get(in.hover); c != nil {
				in.lockInside = c.rect.Contains(in.pos[0], in.pos[1])
			}
		}
	case Cursor:
		g.cursor = ev
		g.cursorChanged = true
	default:
		if g.listeners.Call(event) == 0 {
			g.pending = append(g.pending, event)
		}
	}
}

// Listeners returns the registry application code subscribes typed
// event handlers on, through [events.Add].
func (g *Gui) Listeners() *events.Listeners {
	return &g.listeners
}

// TakeEvents drains the application events no listener handled since
// the last call.
func (g *Gui) TakeEvents() []any {
	out := g.pending
	g.pending = nil
	return out
}

// RenderDirty reports whether anything changed since the last
// [Gui.PrepareRender], letting the embedder skip idle frames.
func (g *Gui) RenderDirty() bool {
	return g.redraw || len(g.lazyEvents) > 0 || len(g.dirtyLayouts) > 0
}

// PrepareRender settles pending lifecycle hooks and layout and clears
// the render dirty flag. The render pass calls it before walking the
// tree.
func (g *Gui) PrepareRender() {
	g.lazyUpdate()
	g.redraw = false
}

// TakeCursorChange returns the cursor a behaviour asked for since the
// last call, if any.
func (g *Gui) TakeCursorChange() (Cursor, bool) {
	if !g.cursorChanged {
		return CursorDefault, false
	}
	g.cursorChanged = false
	return g.cursor, true
}

// Rect returns the resolved rect of the control, [left, top, right,
// bottom], in surface pixels.
func (g *Gui) Rect(id Id) [4]float32 {
	if c := g.lookup(id, "Rect"); c != nil {
		return c.rect.Rect()
	}
	return [4]float32{}
}

// Graphic returns the graphic of the control, nil when it has none.
func (g *Gui) Graphic(id Id) graphics.Graphic {
	if c := g.lookup(id, "Graphic"); c != nil {
		return c.graphic
	}
	return nil
}

// Parent returns the parent of the control. The root, and stale ids,
// have the zero parent.
func (g *Gui) Parent(id Id) Id {
	if c := g.lookup(id, "Parent"); c != nil {
		return c.parent
	}
	return Id{}
}

// Children returns the direct children of the control, bottommost
// first in paint order.
func (g *Gui) Children(id Id) []Id {
	if g.lookup(id, "Children") == nil {
		return nil
	}
	return g.controls.children(id)
}

// ActiveChildren returns the direct children with the active flag
// set, bottommost first in paint order.
func (g *Gui) ActiveChildren(id Id) []Id {
	if g.lookup(id, "ActiveChildren") == nil {
		return nil
	}
	return g.controls.activeChildren(id)
}

// IsActive reports the control's own active flag. A control can be
// active yet dormant because an ancestor is not.
func (g *Gui) IsActive(id Id) bool {
	if c := g.lookup(id, "IsActive"); c != nil {
		return c.active
	}
	return false
}

// lookup resolves an id for an operation, logging at debug level and
// returning nil when it is stale.
func (g *Gui) lookup(id Id, op string) *control {
	c := g.controls.get(id)
	if c == nil {
		slog.Debug("operation on a stale control id", "op", op, "id", id)
	}
	return c
}

func (g *Gui) buildControl(b *ControlBuilder) {
	c := g.controls.slot(b.id)
	if c == nil || c.state != slotReserved {
		panic("giui: building control " + b.id.String() + " twice")
	}
	parent := b.parent
	if parent.IsZero() {
		parent = Root
	}
	if g.controls.slot(parent) == nil {
		slog.Debug("parent removed before the build committed, dropping the control",
			"id", b.id, "parent", parent)
		g.controls.release(b.id)
		return
	}
	c.rect = b.rect
	c.graphic = b.graphic
	c.behaviour = b.behaviour
	c.layout = b.layout
	if c.layout == nil {
		c.layout = LayoutBase{}
	}
	c.active = b.active
	c.state = slotBuilt
	g.controls.appendChild(parent, b.id)
}

// startControl promotes a built control to started, queues its hooks
// and recursively starts children that were waiting on it. A control
// whose parent has not started stays built until the parent does.
func (g *Gui) startControl(id Id) {
	c := g.controls.slot(id)
	if c == nil || c.state != slotBuilt {
		return
	}
	p := g.controls.slot(c.parent)
	if p.state != slotStarted {
		slog.Debug("delayed start, the parent has not started yet", "id", id, "parent", c.parent)
		return
	}
	c.state = slotStarted
	g.dirtyLayout(c.parent)
	if c.behaviour != nil {
		g.lazyEvents = append(g.lazyEvents, lazyEvent{kind: lazyOnStart, id: id})
	}
	if c.active && p.reallyActive {
		g.markReallyActive(id)
	}
	for _, child := range g.controls.children(id) {
		g.startControl(child)
	}
}

// markReallyActive marks the control and its started active
// descendants really active, queueing their OnActive hooks parents
// first. Built children that have not started yet are left alone;
// their own start marks them.
func (g *Gui) markReallyActive(id Id) {
	stack := []Id{id}
	for len(stack) > 0 {
		n := len(stack) - 1
		it := stack[n]
		stack = stack[:n]
		c := g.controls.slot(it)
		if c == nil || c.reallyActive || c.state != slotStarted {
			continue
		}
		c.reallyActive = true
		if !g.cancelLazy(lazyOnDeactive, it) {
			g.lazyEvents = append(g.lazyEvents, lazyEvent{kind: lazyOnActive, id: it})
		}
		children := g.controls.activeChildren(it)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

func (g *Gui) activeControl(id Id) {
	c := g.lookup(id, "ActiveControl")
	if c == nil || c.active {
		return
	}
	c.active = true
	if !c.parent.IsZero() {
		g.dirtyLayout(c.parent)
	}
	if id == Root || g.controls.slot(c.parent).reallyActive {
		g.markReallyActive(id)
	}
}

func (g *Gui) deactiveControl(id Id) {
	c := g.lookup(id, "DeactiveControl")
	if c == nil || !c.active {
		return
	}
	c.active = false
	if !c.parent.IsZero() {
		g.dirtyLayout(c.parent)
	}
	if c.reallyActive {
		g.deactivateSubtree(id)
	}
}

// deactivateSubtree clears really active over the subtree, detaches
// it from the pointers and the focus, and queues the OnDeactive hooks
// children before parents.
func (g *Gui) deactivateSubtree(id Id) {
	var order []Id
	stack := []Id{id}
	for len(stack) > 0 {
		n := len(stack) - 1
		it := stack[n]
		stack = stack[:n]
		c := g.controls.slot(it)
		if c == nil || !c.reallyActive {
			continue
		}
		g.dropFromPointers(it, true)
		if g.focus == it {
			g.setFocus(Id{})
		}
		// the hooks above may have grown the arena
		c = g.controls.slot(it)
		if c == nil {
			continue
		}
		c.reallyActive = false
		if !g.cancelLazy(lazyOnActive, it) {
			order = append(order, it)
		}
		children := g.controls.activeChildren(it)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		g.lazyEvents = append(g.lazyEvents, lazyEvent{kind: lazyOnDeactive, id: order[i]})
	}
}

// setParentOf moves the control and its subtree under a new parent,
// on top of the new sibling list. Activation follows the new
// ancestry.
func (g *Gui) setParentOf(id, parent Id) {
	c := g.lookup(id, "SetParent")
	if c == nil || g.lookup(parent, "SetParent") == nil {
		return
	}
	if id == Root {
		slog.Error("cannot reparent the root control")
		return
	}
	if parent == id || g.controls.isDescendant(id, parent) {
		if Debug {
			panic("giui: reparenting " + id.String() + " under its own subtree")
		}
		slog.Error("reparenting a control under its own subtree", "id", id, "parent", parent)
		return
	}
	if c.parent == parent {
		g.controls.moveToFront(id)
		return
	}
	if !c.parent.IsZero() {
		g.dirtyLayout(c.parent)
	}
	g.dirtyLayout(parent)
	p := g.controls.slot(parent)
	was := c.reallyActive
	now := c.active && p.reallyActive
	if was && !now {
		g.deactivateSubtree(id)
		// the deactive hooks may have grown the arena
		c = g.controls.slot(id)
		p = g.controls.slot(parent)
		if c == nil || p == nil {
			return
		}
	}
	g.controls.unlink(id)
	g.controls.appendChild(parent, id)
	if c.state == slotBuilt && p.state == slotStarted {
		g.startControl(id)
	} else if !was && now {
		g.markReallyActive(id)
	}
}

// lazyUpdate drains the lifecycle hook queue and settles layout.
// Reentering is a no op, so hooks that trigger further dispatch do
// not recurse; the outer drain picks their events up.
func (g *Gui) lazyUpdate() {
	if g.updating {
		return
	}
	g.updating = true
	defer func() { g.updating = false }()
	for {
		for len(g.lazyEvents) > 0 {
			e := g.lazyEvents[0]
			g.lazyEvents = g.lazyEvents[1:]
			switch e.kind {
			case lazyOnStart:
				g.lazyStart(e.id)
			case lazyOnActive:
				g.lazyActive(e.id)
			case lazyOnDeactive:
				g.lazyDeactive(e.id)
			case lazyOnRemove:
				g.lazyRemove(e.id, e.dirtyParent)
			}
		}
		g.updateLayout()
		if len(g.lazyEvents) == 0 {
			return
		}
	}
}

func (g *Gui) lazyStart(id Id) {
	if g.controls.get(id) == nil {
		slog.Debug("control removed before its start hook ran", "id", id)
		return
	}
	g.callEvent(id, func(b Behaviour, this Id, ctx *Context) {
		b.OnStart(this, ctx)
	})
}

func (g *Gui) lazyActive(id Id) {
	g.updateLayout()
	c := g.controls.get(id)
	if c == nil || !c.reallyActive {
		return
	}
	g.callEvent(id, func(b Behaviour, this Id, ctx *Context) {
		b.OnActive(this, ctx)
	})
}

func (g *Gui) lazyDeactive(id Id) {
	g.updateLayout()
	c := g.controls.get(id)
	if c == nil || c.reallyActive {
		return
	}
	g.callEvent(id, func(b Behaviour, this Id, ctx *Context) {
		b.OnDeactive(this, ctx)
	})
}

// lazyRemove removes the control and its subtree. Really active
// controls hear OnDeactive, every control hears OnRemove, children
// before parents both times, then the slots are freed. Removing the
// root keeps the root and removes its children.
func (g *Gui) lazyRemove(id Id, dirtyParent bool) {
	c := g.controls.get(id)
	if c == nil {
		slog.Debug("control removed twice", "id", id)
		return
	}
	var order []Id
	if id == Root {
		for _, child := range g.controls.children(Root) {
			order = g.appendSubtree(order, child)
		}
	} else {
		if dirtyParent && !c.parent.IsZero() {
			g.dirtyLayout(c.parent)
		}
		g.controls.unlink(id)
		c.parent = Id{}
		order = g.appendSubtree(order, id)
	}
	for _, it := range order {
		g.dropFromPointers(it, false)
		if g.focus == it {
			g.focus = Id{}
		}
	}
	g.updateLayout()
	for i := len(order) - 1; i >= 0; i-- {
		it := order[i]
		cc := g.controls.slot(it)
		if cc != nil && cc.reallyActive {
			cc.reallyActive = false
			g.callEvent(it, func(b Behaviour, this Id, ctx *Context) {
				b.OnDeactive(this, ctx)
			})
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		g.callEvent(order[i], func(b Behaviour, this Id, ctx *Context) {
			b.OnRemove(this, ctx)
		})
	}
	// the hooks may have created controls inside the dying subtree,
	// so collect it again before freeing
	order = order[:0]
	if id == Root {
		for _, child := range g.controls.children(Root) {
			order = g.appendSubtree(order, child)
		}
		root := g.controls.slot(Root)
		root.firstChild = Id{}
		root.lastChild = Id{}
	} else {
		order = g.appendSubtree(order, id)
	}
	for _, it := range order {
		g.cancelLazyFor(it)
		g.controls.release(it)
	}
	g.redraw = true
}

func (g *Gui) appendSubtree(order []Id, id Id) []Id {
	order = append(order, id)
	for _, child := range g.controls.children(id) {
		order = g.appendSubtree(order, child)
	}
	return order
}

// cancelLazy drops the first queued lazy event matching kind and id,
// reporting whether one was found. Activation toggles annihilate
// their pending opposite, so a control never hears OnActive or
// OnDeactive for a change that was undone before the hooks ran.
func (g *Gui) cancelLazy(kind lazyKind, id Id) bool {
	for i, e := range g.lazyEvents {
		if e.kind == kind && e.id == id {
			g.lazyEvents = append(g.lazyEvents[:i], g.lazyEvents[i+1:]...)
			return true
		}
	}
	return false
}

// cancelLazyFor drops every queued lazy event aimed at the control.
func (g *Gui) cancelLazyFor(id Id) {
	out := g.lazyEvents[:0]
	for _, e := range g.lazyEvents {
		if e.id != id {
			out = append(out, e)
		}
	}
	g.lazyEvents = out
}

// callEvent runs one behaviour callback with a fresh context and
// applies the context mutations when it returns. Pending lifecycle
// hooks settle first, unless a drain is already running.
func (g *Gui) callEvent(id Id, f func(b Behaviour, this Id, ctx *Context)) {
	g.lazyUpdate()
	c := g.controls.get(id)
	if c == nil || c.behaviour == nil {
		return
	}
	ctx := newContext(g)
	f(c.behaviour, id, ctx)
	ctx.drop()
}

// callEventHandled is callEvent for callbacks that report whether
// they consumed the event.
func (g *Gui) callEventHandled(id Id, f func(b Behaviour, this Id, ctx *Context) bool) bool {
	g.lazyUpdate()
	c := g.controls.get(id)
	if c == nil || c.behaviour == nil {
		return false
	}
	ctx := newContext(g)
	handled := f(c.behaviour, id, ctx)
	ctx.drop()
	return handled
}

// callEventChain runs the callback on the control and then each
// ancestor in turn, until one consumes the event.
func (g *Gui) callEventChain(id Id, f func(b Behaviour, this Id, ctx *Context) bool) bool {
	for it := id; !it.IsZero(); {
		if g.callEventHandled(it, f) {
			return true
		}
		c := g.controls.get(it)
		if c == nil {
			return false
		}
		it = c.parent
	}
	return false
}

// dirtyLayout marks the control's layout stale. Geometry is emitted
// from the tree on render, so layout dirt also makes the frame
// redraw.
func (g *Gui) dirtyLayout(id Id) {
	g.dirtyLayouts = append(g.dirtyLayouts, id)
	g.redraw = true
}
