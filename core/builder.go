// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/Rodrigodd/giui-sub001/graphics"

// ControlBuilder assembles one control. It is obtained from
// [Gui.CreateControl], [Context.CreateControl] or
// [LayoutContext.CreateControl], and the control only joins the tree
// once [ControlBuilder.Build] runs. The id is reserved up front, so
// it can be handed to children or captured by behaviours before the
// build commits.
type ControlBuilder struct {
	commit func(b *ControlBuilder)

	id        Id
	rect      Rect
	graphic   graphics.Graphic
	behaviour Behaviour
	layout    Layout
	parent    Id
	active    bool
	built     bool
}

func newControlBuilder(id Id, commit func(b *ControlBuilder)) *ControlBuilder {
	return &ControlBuilder{
		commit: commit,
		id:     id,
		rect:   defaultRect(),
		active: true,
	}
}

// Id returns the reserved id of the control being built.
func (b *ControlBuilder) Id() Id {
	return b.id
}

// Anchors sets the fractions of the parent rect each edge anchors to.
func (b *ControlBuilder) Anchors(anchors [4]float32) *ControlBuilder {
	b.rect.Anchors = anchors
	return b
}

// Margins sets the pixel offsets added to each anchored edge.
func (b *ControlBuilder) Margins(margins [4]float32) *ControlBuilder {
	b.rect.Margins = margins
	return b
}

// MinSize sets the user min size of the control.
func (b *ControlBuilder) MinSize(minSize [2]float32) *ControlBuilder {
	b.rect.SetMinSize(minSize)
	return b
}

// FillX sets how the control fills its designed rect horizontally.
func (b *ControlBuilder) FillX(fill RectFill) *ControlBuilder {
	b.rect.SetFillX(fill)
	return b
}

// FillY sets how the control fills its designed rect vertically.
func (b *ControlBuilder) FillY(fill RectFill) *ControlBuilder {
	b.rect.SetFillY(fill)
	return b
}

// ExpandX marks the control as wanting free horizontal space from
// its parent layout.
func (b *ControlBuilder) ExpandX(expand bool) *ControlBuilder {
	b.rect.SetExpandX(expand)
	return b
}

// ExpandY marks the control as wanting free vertical space from its
// parent layout.
func (b *ControlBuilder) ExpandY(expand bool) *ControlBuilder {
	b.rect.SetExpandY(expand)
	return b
}

// Graphic sets the visual of the control.
func (b *ControlBuilder) Graphic(graphic graphics.Graphic) *ControlBuilder {
	b.graphic = graphic
	return b
}

// Behaviour sets the logic of the control.
func (b *ControlBuilder) Behaviour(behaviour Behaviour) *ControlBuilder {
	b.behaviour = behaviour
	return b
}

// Layout sets the layout that will position the control's children.
// Without one, the children follow their anchors and margins.
func (b *ControlBuilder) Layout(layout Layout) *ControlBuilder {
	b.layout = layout
	return b
}

// Parent sets the parent. The zero id, the default, parents to
// [Root]. The parent id may still be reserved, letting parents and
// children build in any order.
func (b *ControlBuilder) Parent(parent Id) *ControlBuilder {
	b.parent = parent
	return b
}

// Active sets the initial active flag. Controls start active by
// default.
func (b *ControlBuilder) Active(active bool) *ControlBuilder {
	b.active = active
	return b
}

// Build commits the control and returns its id. Each builder commits
// exactly once.
func (b *ControlBuilder) Build() Id {
	if b.built {
		panic("giui: control " + b.id.String() + " built twice")
	}
	b.built = true
	b.commit(b)
	return b.id
}
