// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
)

// f32Epsilon is one float32 ulp at 1.0, the relative tolerance of
// sameFloat.
const f32Epsilon = 1.1920929e-7

// sameFloat reports whether two floats are equal within a relative
// epsilon.
func sameFloat(a, b float32) bool {
	return math32.Abs(a-b) <= f32Epsilon*math32.Max(math32.Abs(a), math32.Abs(b))
}

// BuilderContext is the context surface a [ListBuilder] works
// through. Both [*core.Context] and [*core.LayoutContext] satisfy it,
// so items build the same way from event handlers and from layout
// passes.
type BuilderContext interface {
	CreateControl() *core.ControlBuilder
	Remove(id core.Id)
	Graphic(id core.Id) graphics.Graphic
	Children(id core.Id) []core.Id
}

var (
	_ BuilderContext = (*core.Context)(nil)
	_ BuilderContext = (*core.LayoutContext)(nil)
)

// ListBuilder is the item model of a [List]. The list owns the item
// controls; the model only describes them.
type ListBuilder interface {
	// ItemCount returns how many items the list has. It may change
	// between layouts; send [UpdateItems] to the list after it does.
	ItemCount(ctx BuilderContext) int

	// CreateItem builds the control of one item. The returned builder
	// is committed by the list with the list view as parent; any extra
	// controls must be built under it. list is the list control, for
	// callbacks that send it events.
	CreateItem(index int, list core.Id, cb *core.ControlBuilder, ctx BuilderContext) *core.ControlBuilder

	// UpdateItem refreshes a control created earlier for the index.
	// Returning false discards the control and CreateItem runs again
	// in its place.
	UpdateItem(index int, item core.Id, ctx BuilderContext) bool

	// RemoveItem runs right before the list removes an item control
	// that left the view or was rejected by UpdateItem.
	RemoveItem(index int, item core.Id, ctx BuilderContext)

	// FinishedLayout runs after a layout pass updated the items, so a
	// model can clear a pending-update flag once instead of per item.
	FinishedLayout()

	// OnEvent receives the events sent to the list control that the
	// list itself did not handle.
	OnEvent(event any, this core.Id, ctx *core.Context)
}

// ListBuilderBase provides the optional [ListBuilder] hooks as no-ops,
// leaving ItemCount and CreateItem to the embedding model.
type ListBuilderBase struct{}

func (ListBuilderBase) UpdateItem(index int, item core.Id, ctx BuilderContext) bool { return true }
func (ListBuilderBase) RemoveItem(index int, item core.Id, ctx BuilderContext)     {}
func (ListBuilderBase) FinishedLayout()                                            {}
func (ListBuilderBase) OnEvent(event any, this core.Id, ctx *core.Context)         {}

// createdItem tracks one live item control. y is the top of the item
// relative to the top of the view when it was last placed.
type createdItem struct {
	id     core.Id
	index  int
	y      float32
	height float32
}

// itemSet keeps created items sorted by item index.
type itemSet struct {
	items []createdItem
}

func (s *itemSet) search(index int) (int, bool) {
	return slices.BinarySearchFunc(s.items, index, func(it createdItem, i int) int {
		return cmp.Compare(it.index, i)
	})
}

func (s *itemSet) get(index int) *createdItem {
	if i, ok := s.search(index); ok {
		return &s.items[i]
	}
	return nil
}

func (s *itemSet) insert(it createdItem) {
	i, ok := s.search(it.index)
	if ok {
		s.items[i] = it
		return
	}
	s.items = slices.Insert(s.items, i, it)
}

func (s *itemSet) remove(index int) (createdItem, bool) {
	i, ok := s.search(index)
	if !ok {
		return createdItem{}, false
	}
	it := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return it, true
}

func (s *itemSet) first() *createdItem {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[0]
}

func (s *itemSet) last() *createdItem {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

func (s *itemSet) empty() bool {
	return len(s.items) == 0
}

func (s *itemSet) clear() {
	s.items = s.items[:0]
}

// takeAll moves every item of from into the set, from's entries
// winning on a shared index.
func (s *itemSet) takeAll(from *itemSet) {
	for _, it := range from.items {
		s.insert(it)
	}
	from.items = from.items[:0]
}

// List is a virtualising vertical list: only the item controls
// crossing the view exist, created and removed as the list scrolls.
// It is both the behaviour and the layout of the list control, whose
// children are the view (with a [graphics.Mask] and a
// [ListViewLayout]) and the two scrollbars. The items the
// [ListBuilder] creates become children of the view.
//
// A focused item is kept alive when it scrolls out, parked outside
// the view, so keyboard input still routes through it. The vertical
// scrollbar maps to fractional item indices, not pixels, since only
// the visible items have a known height.
type List struct {
	core.BehaviourBase
	space        float32
	margins      [4]float32
	contentWidth float32
	// horizontal scroll, in pixels
	deltaX     float32
	lastDeltaX float32
	// absolute vertical target for the next layout, in items
	setY    float32
	hasSetY bool
	// vertical scroll variation for the next layout, in pixels
	deltaY float32
	// view top and bottom, in fractional item indices
	startY float32
	endY   float32

	lastRect    [4]float32
	view        core.Id
	vBar        core.Id
	vHandle     core.Id
	hBar        core.Id
	hHandle     core.Id
	created     itemSet
	lastCreated itemSet
	focused     *createdItem
	// the focused item control parked outside the view, zero when the
	// focused item is in view or nothing is focused
	parked  core.Id
	builder ListBuilder
}

// NewList creates the list. contentWidth is the fixed width items are
// laid against; spacing separates the items and margins pad the whole
// run. The bars and their handles must be children of the list
// control, the handles under their bars.
func NewList(contentWidth, spacing float32, margins [4]float32, view, vBar, vHandle, hBar, hHandle core.Id, builder ListBuilder) *List {
	return &List{
		space:        spacing,
		margins:      margins,
		contentWidth: contentWidth,
		lastDeltaX:   math32.NaN(),
		hasSetY:      true,
		view:         view,
		vBar:         vBar,
		vHandle:      vHandle,
		hBar:         hBar,
		hHandle:      hHandle,
		builder:      builder,
	}
}

// ListViewLayout is the layout of the view control inside a List. Min
// size passes through on the non-scrolling axes; the items are
// positioned by the list itself.
type ListViewLayout struct {
	h bool
	v bool
}

// NewListViewLayout creates the view layout; h and v tell which axes
// scroll.
func NewListViewLayout(h, v bool) *ListViewLayout {
	return &ListViewLayout{h: h, v: v}
}

func (l *ListViewLayout) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
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

func (l *ListViewLayout) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {}

func (l *List) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputScroll
}

func (l *List) OnStart(this core.Id, ctx *core.Context) {
	ctx.MoveToFront(l.hBar)
	ctx.MoveToFront(l.vBar)
}

func (l *List) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	l.focused = nil
	if focus {
		for i := range l.created.items {
			if ctx.IsFocused(l.created.items[i].id) {
				it := l.created.items[i]
				l.focused = &it
				break
			}
		}
	}
	// a parked control whose item is no longer the focused one is done
	if !l.parked.IsZero() && (l.focused == nil || l.focused.id != l.parked) {
		ctx.Remove(l.parked)
		l.parked = core.Id{}
	}
	if l.focused == nil {
		return
	}
	// scroll the focused item into the view, with some air around it
	viewHeight := ctx.Size(l.view)[1]
	if l.focused.y+l.focused.height >= viewHeight {
		l.deltaY += l.focused.y + l.focused.height - viewHeight + 10
	} else if l.focused.y <= 0 {
		l.deltaY -= -l.focused.y + 10
	}
	ctx.DirtyLayout(this)
}

func (l *List) OnEvent(event any, this core.Id, ctx *core.Context) {
	switch set := event.(type) {
	case SetScrollPosition:
		if set.Vertical {
			total := float32(l.builder.ItemCount(ctx)) - (l.endY - l.startY)
			l.setY = math32.Max(0, set.Value) * total
			l.hasSetY = true
		} else {
			total := l.contentWidth - ctx.Size(l.view)[0]
			l.deltaX = math32.Max(0, set.Value) * total
		}
		ctx.DirtyLayout(l.view)
		ctx.DirtyLayout(this)
	case UpdateItems:
		l.setY = l.startY
		l.hasSetY = true
		ctx.DirtyLayout(this)
	default:
		l.builder.OnEvent(event, this, ctx)
	}
}

func (l *List) OnScrollEvent(delta [2]float32, this core.Id, ctx *core.Context) {
	if !sameFloat(delta[0], 0) {
		l.deltaX += delta[0]
		ctx.DirtyLayout(l.view)
	}
	// with every item on screen there is nothing to scroll vertically
	if sameFloat(l.startY, 0) && sameFloat(l.endY, float32(l.builder.ItemCount(ctx))) {
		return
	}
	if !sameFloat(delta[1], 0) {
		l.deltaY -= delta[1]
		ctx.DirtyLayout(l.view)
	}
}

func (l *List) OnKeyboardEvent(event events.KeyEvent, this core.Id, ctx *core.Context) bool {
	if event.Kind != events.KeyDown {
		return false
	}
	switch event.Code {
	case key.CodeUp:
		l.deltaY -= scrollStep
	case key.CodeDown:
		l.deltaY += scrollStep
	case key.CodeLeft:
		l.deltaX -= scrollStep
	case key.CodeRight:
		l.deltaX += scrollStep
	case key.CodeHome:
		// a zero delta would read as no change; jump instead
		l.setY = 0
		l.hasSetY = true
	case key.CodeEnd:
		l.deltaY = math32.Inf(1)
	case key.CodePageUp:
		l.deltaY -= ctx.Size(l.view)[1] - 40
	case key.CodePageDown:
		l.deltaY += ctx.Size(l.view)[1] - 40
	default:
		return false
	}
	ctx.DirtyLayout(l.view)
	return true
}

// refreshItem reuses an existing item control for the index, or
// replaces it when the model rejects the update.
func (l *List) refreshItem(i int, old createdItem, list core.Id, ctx *core.LayoutContext, fromBottom bool) createdItem {
	if l.builder.UpdateItem(i, old.id, ctx) {
		ctx.RecomputeMinSize(old.id)
		if !fromBottom {
			ctx.MoveToFront(old.id)
		}
		return old
	}
	l.builder.RemoveItem(i, old.id, ctx)
	ctx.Remove(old.id)
	id := l.builder.CreateItem(i, list, ctx.CreateControl(), ctx).Parent(l.view).Build()
	ctx.RecomputeMinSize(id)
	return createdItem{id: id, index: i}
}

// createItemGeneric places the item control for index i, creating or
// reusing it, and returns its height with margins. yOf maps that
// height to the top of the item.
func (l *List) createItemGeneric(i int, list core.Id, yOf func(height float32) float32, ctx *core.LayoutContext, viewRect [4]float32, fromBottom bool) float32 {
	focused := l.focused != nil && l.focused.index == i
	var x createdItem
	if focused {
		x = *l.focused
		l.focused = nil
		if x.id == l.parked {
			l.parked = core.Id{}
		}
		l.lastCreated.remove(i)
		x = l.refreshItem(i, x, list, ctx, fromBottom)
	} else if old, ok := l.lastCreated.remove(i); ok {
		x = l.refreshItem(i, old, list, ctx, fromBottom)
	} else {
		id := l.builder.CreateItem(i, list, ctx.CreateControl(), ctx).Parent(l.view).Build()
		ctx.RecomputeMinSize(id)
		x = createdItem{id: id, index: i}
	}
	if fromBottom {
		ctx.MoveToBack(x.id)
	}

	topMargin := float32(0)
	if i == 0 {
		topMargin = l.margins[1]
	}
	bottomMargin := l.space
	if i+1 == l.builder.ItemCount(ctx) {
		bottomMargin = l.margins[3]
	}
	minHeight := ctx.MinSize(x.id)[1]
	if minHeight <= 0 {
		// a zero height item would stall the fill loops
		slog.Error("list item has no min height", "id", x.id, "index", i)
		minHeight = 1
	}
	height := minHeight + topMargin + bottomMargin
	y := yOf(height)
	if r := ctx.Layouting(x.id); r != nil {
		r.SetDesignedRect([4]float32{
			viewRect[0] + l.margins[0] - l.deltaX,
			y + topMargin,
			math32.Max(viewRect[2], viewRect[0]+l.contentWidth) - l.margins[2] - l.deltaX,
			y + height - bottomMargin,
		})
	}
	x.y = y - viewRect[1]
	x.height = height
	if focused {
		f := x
		l.focused = &f
	}
	l.created.insert(x)
	return height
}

func (l *List) createItem(i int, list core.Id, y float32, ctx *core.LayoutContext, viewRect [4]float32) float32 {
	return l.createItemGeneric(i, list, func(float32) float32 { return y }, ctx, viewRect, false)
}

// createItemAt places the item holding the fractional index startY at
// the view top, and returns the y below it.
func (l *List) createItemAt(startY float32, list core.Id, ctx *core.LayoutContext, viewRect [4]float32) float32 {
	i := int(startY)
	var y float32
	height := l.createItemGeneric(i, list, func(height float32) float32 {
		y = viewRect[1] - (startY-math32.Floor(startY))*height
		return y
	}, ctx, viewRect, false)
	return y + height
}

func (l *List) createItemFromBottom(i int, list core.Id, y float32, ctx *core.LayoutContext, viewRect [4]float32) float32 {
	return l.createItemGeneric(i, list, func(height float32) float32 { return y - height }, ctx, viewRect, true)
}

func (l *List) setStartYFromFirst() {
	first := l.created.first()
	if first == nil {
		return
	}
	gap := -first.y / first.height
	if gap < 0 || gap >= 1 {
		slog.Error("list start gap out of range", "gap", gap, "index", first.index, "y", first.y)
		gap = math32.Min(math32.Max(gap, 0), 1-f32Epsilon)
	}
	l.startY = float32(first.index) + gap
}

func (l *List) setEndYFromLast(viewHeight float32) {
	last := l.created.last()
	if last == nil {
		return
	}
	gap := (viewHeight - last.y) / last.height
	if gap < 0 || gap >= 1 {
		slog.Error("list end gap out of range", "gap", gap, "index", last.index, "y", last.y)
	}
	gap = math32.Min(math32.Max(gap, 0), 1-f32Epsilon)
	l.endY = float32(last.index) + gap
}

func (l *List) createItemsFromTop(viewRect [4]float32, list core.Id, ctx *core.LayoutContext) {
	l.lastCreated.takeAll(&l.created)

	i := 0
	l.startY = 0
	l.deltaY = 0

	y := viewRect[1]
	itemCount := l.builder.ItemCount(ctx)

	for y <= viewRect[3] {
		if i >= itemCount {
			// not enough items to fill the view
			l.endY = float32(itemCount)
			return
		}
		y += l.createItem(i, list, y, ctx, viewRect)
		i++
	}
	l.setEndYFromLast(viewRect[3] - viewRect[1])
}

func (l *List) createItemsFromBottom(viewRect [4]float32, list core.Id, ctx *core.LayoutContext) {
	l.lastRect = viewRect
	itemCount := l.builder.ItemCount(ctx)
	l.endY = float32(itemCount)

	l.lastCreated.takeAll(&l.created)

	if itemCount == 0 {
		l.startY = 0
		return
	}

	i := itemCount - 1
	y := viewRect[3]
	for y > viewRect[1] {
		y -= l.createItemFromBottom(i, list, y, ctx, viewRect)
		// when the top item still leaves a gap, restart from the top
		if i == 0 {
			if y > viewRect[1] {
				l.createItemsFromTop(viewRect, list, ctx)
			}
			break
		}
		i--
	}
	if i > 0 || y <= viewRect[1] {
		l.setStartYFromFirst()
	}
}

func (l *List) createItemsFromAStartY(startY float32, viewRect [4]float32, list core.Id, ctx *core.LayoutContext) {
	startY = math32.Max(0, startY)
	if sameFloat(startY, 0) {
		l.createItemsFromTop(viewRect, list, ctx)
		return
	}

	l.startY = startY
	i := int(startY)

	if i >= l.builder.ItemCount(ctx) {
		l.createItemsFromBottom(viewRect, list, ctx)
		return
	}

	y := l.createItemAt(startY, list, ctx, viewRect)
	i++

	if i >= l.builder.ItemCount(ctx) && y < viewRect[3] {
		l.createItemsFromBottom(viewRect, list, ctx)
		return
	}

	for y <= viewRect[3] {
		y += l.createItem(i, list, y, ctx, viewRect)
		i++
		if i >= l.builder.ItemCount(ctx) {
			if y < viewRect[3] {
				l.createItemsFromBottom(viewRect, list, ctx)
				return
			}
			break
		}
	}
	l.setEndYFromLast(viewRect[3] - viewRect[1])
}

// createItems fills the view for this layout, reusing last layout's
// items where their index still shows.
func (l *List) createItems(viewRect [4]float32, list core.Id, ctx *core.LayoutContext) {
	sameRect := sameFloat(viewRect[0], l.lastRect[0]) &&
		sameFloat(viewRect[1], l.lastRect[1]) &&
		sameFloat(viewRect[2], l.lastRect[2]) &&
		sameFloat(viewRect[3], l.lastRect[3])
	if sameRect && sameFloat(0, l.deltaY) && !l.hasSetY &&
		sameFloat(l.lastDeltaX, l.deltaX) && l.builder.ItemCount(ctx) > 0 {
		return
	}

	l.created, l.lastCreated = l.lastCreated, l.created

	l.lastRect = viewRect
	l.lastDeltaX = l.deltaX
	deltaY := l.deltaY
	l.deltaY = 0
	hasSetY := l.hasSetY
	l.hasSetY = false

	if l.lastCreated.empty() {
		l.createItemsFromTop(viewRect, list, ctx)
		return
	}
	if hasSetY {
		l.createItemsFromAStartY(l.setY, viewRect, list, ctx)
		return
	}

	if deltaY < 0 {
		// create items above
		i := int(l.startY)
		start := l.lastCreated.get(i)
		if start == nil {
			l.createItemsFromTop(viewRect, list, ctx)
			return
		}
		y := start.y + viewRect[1] - deltaY
		for y > viewRect[1] {
			if i == 0 {
				l.createItemsFromTop(viewRect, list, ctx)
				return
			}
			i--
			y -= l.createItemFromBottom(i, list, y, ctx, viewRect)
		}
	}

	i := int(l.startY)
	start := l.lastCreated.get(i)
	if start == nil {
		l.createItemsFromTop(viewRect, list, ctx)
		return
	}
	y := start.y + viewRect[1] - deltaY

	if i >= l.builder.ItemCount(ctx) && y < viewRect[3] {
		l.createItemsFromBottom(viewRect, list, ctx)
		return
	}

	// create items below, if necessary
	for y <= viewRect[3] {
		y += l.createItem(i, list, y, ctx, viewRect)
		i++
		if i >= l.builder.ItemCount(ctx) {
			if y < viewRect[3] {
				l.createItemsFromBottom(viewRect, list, ctx)
				return
			}
			break
		}
	}

	// give items that slid out back to lastCreated
	for {
		first := l.created.first()
		if first == nil || first.y+first.height > 0 {
			break
		}
		it, _ := l.created.remove(first.index)
		l.lastCreated.insert(it)
	}
	for {
		last := l.created.last()
		if last == nil || last.y <= viewRect[3]-viewRect[1] {
			break
		}
		it, _ := l.created.remove(last.index)
		l.lastCreated.insert(it)
	}

	if l.created.empty() {
		l.createItemsFromTop(viewRect, list, ctx)
		return
	}
	l.setStartYFromFirst()
	l.setEndYFromLast(viewRect[3] - viewRect[1])
}

func (l *List) ComputeMinSize(this core.Id, ctx *core.MinSizeContext) [2]float32 {
	minSize := ctx.MinSize(l.view)
	hBarSize := ctx.MinSize(l.hBar)
	vBarSize := ctx.MinSize(l.vBar)

	minSize[0] = math32.Max(minSize[0], hBarSize[0])
	minSize[1] = math32.Max(minSize[1], vBarSize[1])
	minSize[0] += vBarSize[0]
	minSize[1] += hBarSize[1]
	return minSize
}

func (l *List) UpdateLayouts(this core.Id, ctx *core.LayoutContext) {
	thisRect := ctx.Rect(this)
	thisWidth := thisRect[2] - thisRect[0]

	// assume the vertical bar will be there, then verify
	vBarSize := ctx.MinSize(l.vBar)[0]

	hActive := thisWidth-vBarSize < l.contentWidth
	hBarSize := float32(0)
	if hActive {
		hBarSize = ctx.MinSize(l.hBar)[1]
	}

	viewRect := [4]float32{
		thisRect[0],
		thisRect[1],
		thisRect[2] - vBarSize,
		thisRect[3] - hBarSize,
	}

	viewWidth := viewRect[2] - viewRect[0]
	if l.deltaX < 0 || viewWidth > l.contentWidth {
		l.deltaX = 0
	} else if l.deltaX > l.contentWidth-viewWidth {
		l.deltaX = l.contentWidth - viewWidth
	}

	l.createItems(viewRect, this, ctx)
	l.builder.FinishedLayout()

	for i := range l.lastCreated.items {
		x := &l.lastCreated.items[i]
		if l.focused != nil && x.id == l.focused.id {
			// park the focused item outside the view instead of
			// removing it, so keyboard input keeps routing through it
			l.parked = x.id
			if r := ctx.Layouting(x.id); r != nil {
				r.SetDesignedRect([4]float32{
					viewRect[0] + l.margins[0] - l.deltaX,
					viewRect[3] + 1010,
					math32.Max(viewRect[2], viewRect[0]+l.contentWidth) - l.margins[2] - l.deltaX,
					viewRect[3] + 1110,
				})
			}
		} else {
			l.builder.RemoveItem(x.index, x.id, ctx)
			ctx.Remove(x.id)
		}
	}
	l.lastCreated.clear()

	// with every item on screen the vertical bar goes away
	vActive := !(sameFloat(l.startY, 0) && sameFloat(l.endY, float32(l.builder.ItemCount(ctx))))

	if !vActive {
		vBarSize = 0
		viewRect[2] = thisRect[2]
		// the first fill assumed the vertical bar existed; redo wider
		l.createItemsFromTop(viewRect, this, ctx)

		viewWidth := viewRect[2] - viewRect[0]
		if l.deltaX < 0 || viewWidth > l.contentWidth {
			l.deltaX = 0
		} else if l.deltaX > l.contentWidth-viewWidth {
			l.deltaX = l.contentWidth - viewWidth
		}

		hActive = thisWidth-vBarSize < l.contentWidth
		hBarSize = 0
		if hActive {
			hBarSize = ctx.MinSize(l.hBar)[1]
		}
	}

	ctx.SetDesignedRect(l.view, viewRect)

	if ctx.IsActive(l.hBar) != hActive {
		if hActive {
			ctx.Active(l.hBar)
		} else {
			ctx.Deactive(l.hBar)
		}
	}
	if ctx.IsActive(l.vBar) != vActive {
		if vActive {
			ctx.Active(l.vBar)
		} else {
			ctx.Deactive(l.vBar)
		}
	}

	if hActive {
		ctx.SetDesignedRect(l.hBar, [4]float32{
			thisRect[0], thisRect[3] - hBarSize, thisRect[2] - vBarSize, thisRect[3],
		})
	}
	if vActive {
		ctx.SetDesignedRect(l.vBar, [4]float32{
			thisRect[2] - vBarSize, thisRect[1], thisRect[2], thisRect[3] - hBarSize,
		})
	}

	if hActive {
		viewWidth := viewRect[2] - viewRect[0]
		start := l.deltaX / l.contentWidth
		end := math32.Min(1, (l.deltaX+viewWidth)/l.contentWidth)
		setHandleAnchors(ctx, l.hHandle, false, start, end, viewWidth)
	}
	if vActive {
		viewHeight := viewRect[3] - viewRect[1]
		count := float32(l.builder.ItemCount(ctx))
		if count > 0 {
			start := l.startY / count
			end := math32.Min(1, l.endY/count)
			setHandleAnchors(ctx, l.vHandle, true, start, end, viewHeight)
		}
	}
}
