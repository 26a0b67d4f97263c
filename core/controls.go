// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/Rodrigodd/giui-sub001/graphics"

// slotState is the lifecycle of an arena slot. A slot is reserved the
// moment a builder is created, built when the builder commits, and
// started once its parent has started. Hooks and layout only ever see
// started controls.
type slotState int8

const (
	slotFree slotState = iota
	slotReserved
	slotBuilt
	slotStarted
)

type control struct {
	generation uint32
	state      slotState

	rect      Rect
	graphic   graphics.Graphic
	behaviour Behaviour
	layout    Layout

	parent      Id
	firstChild  Id
	lastChild   Id
	prevSibling Id
	nextSibling Id

	// active is the flag set by the user. reallyActive is the derived
	// one: active and all ancestors really active. Only really active
	// controls are laid out, rendered and hit tested.
	active       bool
	reallyActive bool
}

func (c *control) flags() InputFlags {
	if c.behaviour == nil {
		return 0
	}
	return c.behaviour.InputFlags()
}

// controls is the generational arena the tree lives in. Child lists
// are intrusive: each control links to its parent, siblings and first
// and last child. The last child is the topmost one, both in paint
// order and in hit testing.
type controls struct {
	slots []control
	free  []uint32
}

func newControls(width, height float32) *controls {
	root := control{
		generation:   1,
		state:        slotStarted,
		active:       true,
		reallyActive: true,
		rect:         defaultRect(),
		layout:       LayoutBase{},
	}
	root.rect.SetRect([4]float32{0, 0, width, height})
	return &controls{slots: []control{root}}
}

// get returns the control named by id, or nil when the id is stale or
// the slot was freed. Using an id that was reserved but never built
// is a programming error and panics.
func (cs *controls) get(id Id) *control {
	c := cs.slot(id)
	if c != nil && c.state == slotReserved {
		panic("giui: " + id.String() + " is reserved but was never built")
	}
	return c
}

// slot is get without the reserved panic, for the build path.
func (cs *controls) slot(id Id) *control {
	if int(id.index) >= len(cs.slots) {
		return nil
	}
	c := &cs.slots[id.index]
	if c.generation != id.generation || c.state == slotFree {
		return nil
	}
	return c
}

func (cs *controls) reserve() Id {
	if n := len(cs.free); n > 0 {
		i := cs.free[n-1]
		cs.free = cs.free[:n-1]
		cs.slots[i].state = slotReserved
		return Id{index: i, generation: cs.slots[i].generation}
	}
	cs.slots = append(cs.slots, control{generation: 1, state: slotReserved})
	return Id{index: uint32(len(cs.slots) - 1), generation: 1}
}

// release frees the slot and bumps its generation, turning every
// outstanding copy of the id stale.
func (cs *controls) release(id Id) {
	c := &cs.slots[id.index]
	*c = control{generation: c.generation + 1}
	cs.free = append(cs.free, id.index)
}

func (cs *controls) appendChild(parent, child Id) {
	p := cs.slot(parent)
	c := cs.slot(child)
	c.parent = parent
	c.prevSibling = p.lastChild
	c.nextSibling = Id{}
	if p.lastChild.IsZero() {
		p.firstChild = child
	} else {
		cs.slot(p.lastChild).nextSibling = child
	}
	p.lastChild = child
}

func (cs *controls) prependChild(parent, child Id) {
	p := cs.slot(parent)
	c := cs.slot(child)
	c.parent = parent
	c.prevSibling = Id{}
	c.nextSibling = p.firstChild
	if p.firstChild.IsZero() {
		p.lastChild = child
	} else {
		cs.slot(p.firstChild).prevSibling = child
	}
	p.firstChild = child
}

// unlink detaches the control from its parent's child list. The
// parent field is kept; the caller decides its fate.
func (cs *controls) unlink(child Id) {
	c := cs.slot(child)
	if c.parent.IsZero() {
		return
	}
	p := cs.slot(c.parent)
	if c.prevSibling.IsZero() {
		p.firstChild = c.nextSibling
	} else {
		cs.slot(c.prevSibling).nextSibling = c.nextSibling
	}
	if c.nextSibling.IsZero() {
		p.lastChild = c.prevSibling
	} else {
		cs.slot(c.nextSibling).prevSibling = c.prevSibling
	}
	c.prevSibling = Id{}
	c.nextSibling = Id{}
}

// children returns the direct children in paint order, bottommost
// first.
func (cs *controls) children(id Id) []Id {
	c := cs.slot(id)
	if c == nil {
		return nil
	}
	var out []Id
	for it := c.firstChild; !it.IsZero(); it = cs.slot(it).nextSibling {
		out = append(out, it)
	}
	return out
}

// activeChildren returns the direct children with the active flag
// set, in paint order.
func (cs *controls) activeChildren(id Id) []Id {
	c := cs.slot(id)
	if c == nil {
		return nil
	}
	var out []Id
	for it := c.firstChild; !it.IsZero(); {
		cc := cs.slot(it)
		if cc.active {
			out = append(out, it)
		}
		it = cc.nextSibling
	}
	return out
}

// moveToFront makes the control the topmost among its siblings.
func (cs *controls) moveToFront(id Id) {
	c := cs.slot(id)
	if c == nil || c.parent.IsZero() {
		return
	}
	parent := c.parent
	if cs.slot(parent).lastChild == id {
		return
	}
	cs.unlink(id)
	cs.appendChild(parent, id)
}

// moveToBack makes the control the bottommost among its siblings.
func (cs *controls) moveToBack(id Id) {
	c := cs.slot(id)
	if c == nil || c.parent.IsZero() {
		return
	}
	parent := c.parent
	if cs.slot(parent).firstChild == id {
		return
	}
	cs.unlink(id)
	cs.prependChild(parent, id)
}

// isDescendant reports whether descendant sits strictly below
// ancestor in the tree.
func (cs *controls) isDescendant(ancestor, descendant Id) bool {
	c := cs.slot(descendant)
	if c == nil {
		return false
	}
	for it := c.parent; !it.IsZero(); it = cs.slot(it).parent {
		if it == ancestor {
			return true
		}
	}
	return false
}

// controlStack returns the chain from the control up to the root, the
// control itself first.
func (cs *controls) controlStack(id Id) []Id {
	var out []Id
	for it := id; !it.IsZero(); {
		c := cs.slot(it)
		if c == nil {
			break
		}
		out = append(out, it)
		it = c.parent
	}
	return out
}

// lowestCommonAncestor returns the deepest control that is an
// ancestor of both a and b, or the zero id when they share none.
func (cs *controls) lowestCommonAncestor(a, b Id) Id {
	sa := cs.controlStack(a)
	sb := cs.controlStack(b)
	var lca Id
	i, j := len(sa)-1, len(sb)-1
	for i >= 0 && j >= 0 && sa[i] == sb[j] {
		lca = sa[i]
		i--
		j--
	}
	return lca
}
