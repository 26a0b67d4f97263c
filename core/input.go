// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"
	"time"
	"unicode"

	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
)

// DefaultPointer is the pointer id of the system mouse. It is always
// registered; touch contacts come and go with [Gui.MouseEnter] and
// [Gui.MouseExit] under their own ids.
const DefaultPointer uint64 = 0

// A down within this long and this far from the previous one
// continues the click sequence.
const (
	clickTime   = 500 * time.Millisecond
	clickRadius = float32(4)
)

// pointerInput is the routing state of one pointer.
type pointerInput struct {
	id uint64

	pos    [2]float32
	hasPos bool

	buttons     events.ButtonState
	clickCount  int
	lastDown    time.Time
	hasDown     bool
	lastDownPos [2]float32

	// clickOwner is the control the click sequence belongs to. The
	// count resets when the pointer hovers a different control, but
	// survives leaving the surface, so a touch lifting and falling
	// back on the same control continues the sequence.
	clickOwner Id

	// overStack is the chain of really active controls under the
	// pointer, root first. hover is its deepest member that takes
	// mouse input, currScroll the deepest that takes scroll.
	overStack  []Id
	hover      Id
	currScroll Id

	// overLocked pins mouse routing to hover, skipping the walk
	// until released.
	overLocked bool
	lockInside bool
}

func newPointerInput(id uint64) *pointerInput {
	return &pointerInput{id: id}
}

func (in *pointerInput) mouseInfo(event events.MouseEvent, button events.MouseButton) events.MouseInfo {
	return events.MouseInfo{
		Event:      event,
		Button:     button,
		Pointer:    in.id,
		Pos:        in.pos,
		Buttons:    in.buttons,
		ClickCount: in.clickCount,
		Click:      in.clickCount > 0 && event == events.MouseUp && button == events.LeftButton,
	}
}

// pointer finds the record of a pointer id, nil when unknown.
func (g *Gui) pointer(id uint64) *pointerInput {
	for _, in := range g.inputs {
		if in.id == id {
			return in
		}
	}
	return nil
}

// MouseEnter registers a pointer entering the surface.
func (g *Gui) MouseEnter(pointer uint64) {
	if g.pointer(pointer) != nil {
		if pointer != DefaultPointer {
			slog.Error("pointer entered twice", "pointer", pointer)
		}
		return
	}
	g.inputs = append(g.inputs, newPointerInput(pointer))
}

// MouseMoved routes a pointer move: the chain of controls under the
// pointer is recomputed, controls left and reached hear Exit and
// Enter, and the move bubbles from the deepest control under the
// pointer until one consumes it.
func (g *Gui) MouseMoved(pointer uint64, x, y float32) {
	g.lazyUpdate()
	in := g.pointer(pointer)
	if in == nil {
		slog.Error("mouse moved for an unknown pointer", "pointer", pointer)
		return
	}
	in.pos = [2]float32{x, y}
	in.hasPos = true
	if in.overLocked && !in.hover.IsZero() {
		c := g.controls.get(in.hover)
		if c != nil {
			if inside := c.rect.Contains(x, y); inside != in.lockInside {
				in.lockInside = inside
				event := events.MouseExit
				if inside {
					event = events.MouseEnter
				}
				g.callEventHandled(in.hover, mouseFn(in.mouseInfo(event, events.NoButton)))
			}
			g.callEventHandled(in.hover, mouseFn(in.mouseInfo(events.MouseMoved, events.NoButton)))
			return
		}
		in.overLocked = false
	}
	g.updateOver(in)
	g.bubbleMouse(in, in.mouseInfo(events.MouseMoved, events.NoButton))
}

// MouseDown routes a button press. The deepest focusable control
// under the pointer takes the keyboard focus, or the focus clears
// when there is none. A left press within half a second and a few
// pixels of the previous one raises the click count.
func (g *Gui) MouseDown(pointer uint64, button events.MouseButton) {
	g.lazyUpdate()
	in := g.pointer(pointer)
	if in == nil {
		slog.Error("mouse down for an unknown pointer", "pointer", pointer)
		return
	}
	in.buttons = in.buttons.Set(button, true)
	target := Id{}
	for j := len(in.overStack) - 1; j >= 0; j-- {
		c := g.controls.get(in.overStack[j])
		if c != nil && c.flags().Has(InputFocus) {
			target = in.overStack[j]
			break
		}
	}
	g.setFocus(target)
	if button == events.LeftButton && !in.hover.IsZero() {
		now := g.clock()
		dx := in.pos[0] - in.lastDownPos[0]
		dy := in.pos[1] - in.lastDownPos[1]
		near := dx*dx+dy*dy <= clickRadius*clickRadius
		if in.hasDown && near && now.Sub(in.lastDown) < clickTime {
			in.clickCount++
		} else {
			in.clickCount = 1
		}
		in.lastDown = now
		in.hasDown = true
		in.lastDownPos = in.pos
		in.clickOwner = in.hover
	}
	info := in.mouseInfo(events.MouseDown, button)
	if in.overLocked && !in.hover.IsZero() {
		g.callEventHandled(in.hover, mouseFn(info))
		return
	}
	g.bubbleMouse(in, info)
}

// MouseUp routes a button release. The handler already observes the
// button released, and a left release with the click count running
// reads as a click.
func (g *Gui) MouseUp(pointer uint64, button events.MouseButton) {
	g.lazyUpdate()
	in := g.pointer(pointer)
	if in == nil {
		slog.Error("mouse up for an unknown pointer", "pointer", pointer)
		return
	}
	in.buttons = in.buttons.Set(button, false)
	info := in.mouseInfo(events.MouseUp, button)
	if in.overLocked && !in.hover.IsZero() {
		g.callEventHandled(in.hover, mouseFn(info))
		return
	}
	g.bubbleMouse(in, info)
}

// Scroll routes a scroll delta, in pixels, to the deepest control
// under the pointer that asked for scroll input.
func (g *Gui) Scroll(pointer uint64, deltaX, deltaY float32) {
	g.lazyUpdate()
	in := g.pointer(pointer)
	if in == nil {
		slog.Error("scroll for an unknown pointer", "pointer", pointer)
		return
	}
	if in.currScroll.IsZero() {
		return
	}
	delta := [2]float32{deltaX, deltaY}
	g.callEvent(in.currScroll, func(b Behaviour, this Id, ctx *Context) {
		b.OnScrollEvent(delta, this, ctx)
	})
}

// MouseExit routes the pointer leaving the surface. Controls under it
// hear Exit, held buttons reset and any over lock releases, but the
// click sequence survives, so a touch lifting and falling again can
// continue it. Pointers other than the default one are dropped.
func (g *Gui) MouseExit(pointer uint64) {
	g.lazyUpdate()
	in := g.pointer(pointer)
	if in == nil {
		slog.Error("mouse exit for an unknown pointer", "pointer", pointer)
		return
	}
	g.exitPointer(in)
	if pointer != DefaultPointer {
		g.inputs = slices.DeleteFunc(g.inputs, func(p *pointerInput) bool {
			return p.id == pointer
		})
	}
}

// WindowFocusLost handles the window losing focus: every pointer
// exits and the held modifiers reset. Keyboard focus inside the tree
// is kept.
func (g *Gui) WindowFocusLost() {
	g.lazyUpdate()
	ids := make([]uint64, 0, len(g.inputs))
	for _, in := range g.inputs {
		ids = append(ids, in.id)
	}
	for _, id := range ids {
		if in := g.pointer(id); in != nil {
			g.exitPointer(in)
		}
	}
	g.inputs = slices.DeleteFunc(g.inputs, func(p *pointerInput) bool {
		return p.id != DefaultPointer
	})
	g.modifiers = 0
}

func (g *Gui) exitPointer(in *pointerInput) {
	in.buttons = events.ButtonState{}
	in.overLocked = false
	stack := in.overStack
	in.overStack = nil
	in.hover = Id{}
	in.currScroll = Id{}
	for j := len(stack) - 1; j >= 0; j-- {
		c := g.controls.get(stack[j])
		if c == nil || !c.flags().Has(InputMouse) {
			continue
		}
		g.callEventHandled(stack[j], mouseFn(in.mouseInfo(events.MouseExit, events.NoButton)))
	}
}

// updateOver recomputes the chain of controls under the pointer and
// emits the Exit and Enter events the change implies: exits innermost
// first, then enters outermost first. Hovering a different control
// resets the click count.
func (g *Gui) updateOver(in *pointerInput) {
	stack := g.hitWalk(in.pos[0], in.pos[1])
	old := in.overStack
	i := 0
	for i < len(old) && i < len(stack) && old[i] == stack[i] {
		i++
	}
	for j := len(old) - 1; j >= i; j-- {
		c := g.controls.get(old[j])
		if c == nil || !c.flags().Has(InputMouse) {
			continue
		}
		g.callEventHandled(old[j], mouseFn(in.mouseInfo(events.MouseExit, events.NoButton)))
	}
	hover, currScroll := Id{}, Id{}
	for j := len(stack) - 1; j >= 0; j-- {
		c := g.controls.get(stack[j])
		if c == nil {
			continue
		}
		if hover.IsZero() && c.flags().Has(InputMouse) {
			hover = stack[j]
		}
		if currScroll.IsZero() && c.flags().Has(InputScroll) {
			currScroll = stack[j]
		}
	}
	if !hover.IsZero() && !in.clickOwner.IsZero() && hover != in.clickOwner {
		in.clickCount = 0
	}
	for j := i; j < len(stack); j++ {
		c := g.controls.get(stack[j])
		if c == nil || !c.flags().Has(InputMouse) {
			continue
		}
		g.callEventHandled(stack[j], mouseFn(in.mouseInfo(events.MouseEnter, events.NoButton)))
	}
	in.overStack = stack
	in.hover = hover
	in.currScroll = currScroll
}

// hitWalk returns the chain of really active controls under the
// point, from the root down. Each step descends into the topmost
// child whose rect contains the point, so a sibling higher in the
// paint order occludes the ones below, and a control never hit tests
// outside its own rect.
func (g *Gui) hitWalk(x, y float32) []Id {
	stack := []Id{Root}
	curr := Root
walk:
	for {
		c := g.controls.get(curr)
		for it := c.lastChild; !it.IsZero(); {
			cc := g.controls.slot(it)
			if cc.state == slotStarted && cc.reallyActive && cc.rect.Contains(x, y) {
				stack = append(stack, it)
				curr = it
				continue walk
			}
			it = cc.prevSibling
		}
		return stack
	}
}

// bubbleMouse delivers a mouse event to the controls under the
// pointer that take mouse input, deepest first, until one consumes
// it.
func (g *Gui) bubbleMouse(in *pointerInput, info events.MouseInfo) {
	stack := in.overStack
	for j := len(stack) - 1; j >= 0; j-- {
		c := g.controls.get(stack[j])
		if c == nil || !c.flags().Has(InputMouse) {
			continue
		}
		if g.callEventHandled(stack[j], mouseFn(info)) {
			return
		}
	}
}

func mouseFn(info events.MouseInfo) func(b Behaviour, this Id, ctx *Context) bool {
	return func(b Behaviour, this Id, ctx *Context) bool {
		return b.OnMouseEvent(info, this, ctx)
	}
}

// dropFromPointers forgets the control in every pointer record. When
// sendExit is set, a pointer over it delivers a last Exit.
func (g *Gui) dropFromPointers(id Id, sendExit bool) {
	for _, in := range g.inputs {
		if in.currScroll == id {
			in.currScroll = Id{}
		}
		i := slices.Index(in.overStack, id)
		if i >= 0 {
			in.overStack = slices.Delete(in.overStack, i, i+1)
		}
		if in.hover == id {
			in.hover = Id{}
			in.overLocked = false
		}
		if in.clickOwner == id {
			in.clickOwner = Id{}
			in.clickCount = 0
		}
		if i >= 0 && sendExit {
			c := g.controls.get(id)
			if c != nil && c.flags().Has(InputMouse) {
				g.updateLayout()
				g.callEventHandled(id, mouseFn(in.mouseInfo(events.MouseExit, events.NoButton)))
			}
		}
	}
}

// KeyDown routes a key press. It goes to the focused control first
// and bubbles up its ancestors; left unconsumed, Tab and Shift+Tab
// walk the focus across the focusable controls and Escape drops it.
// It reports whether anything consumed the press.
func (g *Gui) KeyDown(event events.KeyEvent) bool {
	g.lazyUpdate()
	event.Kind = events.KeyDown
	g.modifiers = event.Mods
	if !g.focus.IsZero() {
		if g.callEventChain(g.focus, keyFn(event)) {
			return true
		}
	}
	switch event.Code {
	case key.CodeTab:
		return g.cycleFocus(!event.Mods.HasAll(key.Shift))
	case key.CodeEscape:
		if !g.focus.IsZero() {
			g.setFocus(Id{})
			return true
		}
	}
	return false
}

// KeyUp routes a key release to the focus chain.
func (g *Gui) KeyUp(event events.KeyEvent) {
	g.lazyUpdate()
	event.Kind = events.KeyUp
	g.modifiers = event.Mods
	if g.focus.IsZero() {
		return
	}
	g.callEventChain(g.focus, keyFn(event))
}

// CharInput routes typed text up the focus chain. Only controls that
// asked for keyboard input hear it, and control characters are
// dropped; shortcuts belong to [Gui.KeyDown].
func (g *Gui) CharInput(ch rune) {
	g.lazyUpdate()
	if g.focus.IsZero() || unicode.IsControl(ch) {
		return
	}
	event := events.KeyEvent{Kind: events.KeyChar, Rune: ch, Mods: g.modifiers}
	for it := g.focus; !it.IsZero(); {
		c := g.controls.get(it)
		if c == nil {
			return
		}
		parent := c.parent
		if c.flags().Has(InputKeyboard) && g.callEventHandled(it, keyFn(event)) {
			return
		}
		it = parent
	}
}

func keyFn(event events.KeyEvent) func(b Behaviour, this Id, ctx *Context) bool {
	return func(b Behaviour, this Id, ctx *Context) bool {
		return b.OnKeyboardEvent(event, this, ctx)
	}
}

// SetFocus moves the keyboard focus to the control, or clears it
// given the zero id. Controls that are not really active refuse the
// focus.
func (g *Gui) SetFocus(id Id) {
	g.setFocus(id)
	g.lazyUpdate()
}

// Focus returns the focused control, zero when none.
func (g *Gui) Focus() Id {
	return g.focus
}

func (g *Gui) setFocus(id Id) {
	g.lazyUpdate()
	if !id.IsZero() {
		c := g.controls.get(id)
		if c == nil || !c.reallyActive {
			id = Id{}
		}
	}
	if g.focus == id {
		return
	}
	prev := g.focus
	g.focus = id
	lca := Id{}
	if !prev.IsZero() && !id.IsZero() {
		lca = g.controls.lowestCommonAncestor(prev, id)
	}
	for it := prev; !it.IsZero() && it != lca; {
		c := g.controls.get(it)
		if c == nil {
			break
		}
		next := c.parent
		g.callEvent(it, func(b Behaviour, this Id, ctx *Context) {
			b.OnFocusChange(false, this, ctx)
		})
		it = next
	}
	for it := id; !it.IsZero(); {
		c := g.controls.get(it)
		if c == nil {
			break
		}
		next := c.parent
		g.callEvent(it, func(b Behaviour, this Id, ctx *Context) {
			b.OnFocusChange(true, this, ctx)
		})
		it = next
	}
}

// cycleFocus moves the focus to the next or previous focusable
// control in tree order, wrapping around. With no current focus the
// walk starts from the beginning, or from the end going backwards.
func (g *Gui) cycleFocus(forward bool) bool {
	var list []Id
	var walk func(id Id)
	walk = func(id Id) {
		c := g.controls.get(id)
		if c == nil || !c.reallyActive {
			return
		}
		list = append(list, id)
		for _, child := range g.controls.activeChildren(id) {
			walk(child)
		}
	}
	walk(Root)
	n := len(list)
	start := slices.Index(list, g.focus)
	if start < 0 && !forward {
		start = n
	}
	for i := 1; i <= n; i++ {
		var idx int
		if forward {
			idx = (start + i) % n
		} else {
			idx = ((start-i)%n + n) % n
		}
		c := g.controls.get(list[idx])
		if c != nil && c.flags().Has(InputFocus) {
			g.setFocus(list[idx])
			return true
		}
	}
	return false
}
