// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// updateLayout runs the layout passes if anything requested them.
// The dirty list is the trigger, not the scope: one pass lays out the
// whole really active tree, which already covers every dirty control,
// so requests filed during the pass are spent with it.
func (g *Gui) updateLayout() {
	if len(g.dirtyLayouts) == 0 {
		return
	}
	g.dirtyLayouts = g.dirtyLayouts[:0]
	g.updateAllLayouts()
	g.dirtyLayouts = g.dirtyLayouts[:0]
	g.redraw = true
}

// updateAllLayouts lays out the really active tree: a bottom up min
// size pass, then a top down arrange pass. In the arrange pass each
// control's layout positions its direct children, so by the time a
// control runs its own rect is already resolved.
func (g *Gui) updateAllLayouts() {
	order := g.collectActive(Root)
	g.minSizePass(order)
	for _, id := range order {
		c := g.controls.slot(id)
		// a layout earlier in the pass may have removed or
		// deactivated this one
		if c == nil || c.state != slotStarted || !c.reallyActive {
			continue
		}
		layout := c.layout
		ctx := LayoutContext{gui: g, this: id}
		layout.UpdateLayouts(id, &ctx)
	}
}

// computeMinSizes runs the bottom up min size pass over a subtree,
// for layouts that build controls mid arrange and need their min
// sizes before positioning them.
func (g *Gui) computeMinSizes(root Id) {
	g.minSizePass(g.collectActive(root))
}

func (g *Gui) minSizePass(order []Id) {
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		c := g.controls.slot(id)
		if c == nil {
			continue
		}
		layout := c.layout
		ctx := MinSizeContext{gui: g, this: id}
		min := layout.ComputeMinSize(id, &ctx)
		// the arena may have grown under the layout call
		if c = g.controls.slot(id); c != nil {
			c.rect.setLayoutMinSize(min)
		}
	}
}

// collectActive gathers the started, really active subtree with
// parents before their descendants. Reversing it therefore visits
// every child before its parent.
func (g *Gui) collectActive(root Id) []Id {
	order := make([]Id, 0, len(g.controls.slots))
	stack := []Id{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := g.controls.slot(id)
		if c == nil || c.state != slotStarted || !c.reallyActive {
			continue
		}
		order = append(order, id)
		stack = append(stack, g.controls.activeChildren(id)...)
	}
	return order
}
