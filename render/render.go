// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns a control tree into an ordered list of draw
// [Primitive]s for the embedder to rasterize. The walk is paint
// ordered: a control draws before, and therefore under, its children
// and later siblings. [graphics.Mask] controls clip their subtree,
// emitting PushClip and PopClip pairs and skipping subtrees that fall
// wholly outside the clip.
package render

import (
	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/base/errors"
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Kind discriminates the draw primitives.
type Kind uint8

const (
	// SolidRect is an untextured quad filled with Color.
	SolidRect Kind = iota

	// Textured is a quad sampling the UV region of Texture, tinted
	// by Color.
	Textured

	// Text is a positioned glyph run, in absolute surface
	// coordinates. The embedder rasterizes it through its own glyph
	// cache; each glyph carries its own color.
	Text

	// PushClip restricts the primitives up to the matching PopClip
	// to Rect. Pushed rects are already intersected with the
	// enclosing clip.
	PushClip

	// PopClip ends the innermost PushClip.
	PopClip
)

// Primitive is one draw command.
type Primitive struct {
	Kind Kind

	// Rect is the target rect, [left, top, right, bottom], in
	// surface pixels. For Text it is the rect of the control the
	// run was laid out in.
	Rect [4]float32

	// UV is the source rect of Textured primitives, in the form
	// [x, y, width, height], in coordinates relative to the texture
	// size.
	UV [4]float32

	// Color is the fill or tint color. For Text it is the run's
	// default color.
	Color colors.Color

	// Texture is the texture handle of Textured primitives. A
	// graphic with the zero texture handle is emitted as SolidRect.
	Texture uint32

	// Glyphs is the run of Text primitives, whitespace clusters
	// omitted.
	Glyphs []text.Glyph
}

// Renderer emits the primitives of a [core.Gui] tree, caching each
// control's geometry across frames: a control whose rect, clip and
// graphic are unchanged reuses its last primitives, and one that is
// only color dirty is re-tinted without being rebuilt.
//
// The zero value is ready to use. The returned slice is reused by the
// next call to Render.
type Renderer struct {
	out   []Primitive
	cache map[core.Id]*cacheEntry
	frame uint64
}

type cacheEntry struct {
	frame   uint64
	rect    [4]float32
	clip    [4]float32
	clipped bool
	prims   []Primitive
}

// Render walks the gui once with a throwaway [Renderer]. Embedders
// that draw every frame should keep a Renderer so unchanged controls
// reuse their geometry.
func Render(g *core.Gui) []Primitive {
	var r Renderer
	return r.Render(g)
}

// Render emits the primitives for one frame. It settles pending
// lifecycle hooks and layout first, so the tree it draws is the tree
// the next event will see.
func (r *Renderer) Render(g *core.Gui) []Primitive {
	ctx := g.RenderContext()
	r.frame++
	r.out = r.out[:0]
	if r.cache == nil {
		r.cache = make(map[core.Id]*cacheEntry)
	}
	r.walk(ctx, core.Root, [4]float32{}, false)
	for id, e := range r.cache {
		if e.frame != r.frame {
			delete(r.cache, id)
		}
	}
	return r.out
}

func (r *Renderer) walk(ctx *core.RenderContext, id core.Id, clip [4]float32, clipped bool) {
	rect := ctx.Rect(id)
	g := ctx.Graphic(id)

	if _, isMask := g.(*graphics.Mask); isMask {
		inner := rect
		if clipped {
			var ok bool
			if inner, ok = intersect(inner, clip); !ok {
				return
			}
		}
		mark := len(r.out)
		r.out = append(r.out, Primitive{Kind: PushClip, Rect: inner})
		for _, child := range ctx.ActiveChildren(id) {
			r.walk(ctx, child, inner, true)
		}
		if len(r.out) == mark+1 {
			// nothing drew inside the clip
			r.out = r.out[:mark]
		} else {
			r.out = append(r.out, Primitive{Kind: PopClip})
		}
		return
	}

	if g != nil {
		r.emit(ctx, id, g, rect, clip, clipped)
	}
	for _, child := range ctx.ActiveChildren(id) {
		r.walk(ctx, child, clip, clipped)
	}
}

func (r *Renderer) emit(ctx *core.RenderContext, id core.Id, g graphics.Graphic, rect, clip [4]float32, clipped bool) {
	if clipped && !intersects(rect, clip) {
		// wholly outside the clip; the dirty flags stay set so the
		// control rebuilds when it scrolls back in
		return
	}

	e := r.cache[id]
	switch {
	case e == nil:
		e = &cacheEntry{}
		r.cache[id] = e
		e.prims = build(ctx, g, rect, nil)
	case e.rect != rect || e.clip != clip || e.clipped != clipped || g.NeedRebuild():
		e.prims = build(ctx, g, rect, e.prims[:0])
	case g.ColorDirty():
		e.prims = retint(ctx, g, rect, e.prims)
	}
	e.frame, e.rect, e.clip, e.clipped = r.frame, rect, clip, clipped
	g.ClearDirty()

	r.out = append(r.out, e.prims...)
}

// retint refreshes only the colors of cached primitives. Text spans
// are restyled in place by the graphic, so its primitives are re-read
// from the cached layout without reshaping.
func retint(ctx *core.RenderContext, g graphics.Graphic, rect [4]float32, prims []Primitive) []Primitive {
	if _, isText := g.(*graphics.Text); isText {
		return build(ctx, g, rect, prims[:0])
	}
	c := g.Color()
	for i := range prims {
		prims[i].Color = c
	}
	return prims
}

func build(ctx *core.RenderContext, g graphics.Graphic, rect [4]float32, dst []Primitive) []Primitive {
	switch g := g.(type) {
	case *graphics.Panel:
		for _, s := range g.Sprites(rect) {
			dst = appendSprite(dst, s)
		}
	case *graphics.Texture:
		dst = appendSprite(dst, g.Sprite(rect))
	case *graphics.Icon:
		dst = appendSprite(dst, g.Sprite(rect))
	case *graphics.Text:
		dst = appendText(dst, g, rect, ctx.Shaper(), ctx.Fonts())
	}
	return dst
}

// appendSprite converts one textured quad, dropping degenerate ones
// so a borderless panel emits a single slice.
func appendSprite(dst []Primitive, s graphics.Sprite) []Primitive {
	if s.Rect[2]-s.Rect[0] <= 0 || s.Rect[3]-s.Rect[1] <= 0 {
		return dst
	}
	if s.Texture == 0 {
		return append(dst, Primitive{Kind: SolidRect, Rect: s.Rect, Color: s.Color})
	}
	return append(dst, Primitive{Kind: Textured, Rect: s.Rect, UV: s.UV, Color: s.Color, Texture: s.Texture})
}

// appendText lays the text out at the control width and emits its
// selection rects under a single glyph run, both offset by the align
// anchor.
func appendText(dst []Primitive, t *graphics.Text, rect [4]float32, sh text.Shaper, fts *fonts.Fonts) []Primitive {
	t.SetMaxWidth(rect[2] - rect[0])
	l := t.Layout(sh, fts)
	errors.Log(l.Err())
	anchor := t.Anchor(rect)

	for _, sr := range l.Rects() {
		p := Primitive{Kind: SolidRect, Color: sr.Color, Rect: [4]float32{
			sr.Rect[0] + anchor[0], sr.Rect[1] + anchor[1],
			sr.Rect[2] + anchor[0], sr.Rect[3] + anchor[1],
		}}
		if p.Rect[2] > p.Rect[0] && p.Rect[3] > p.Rect[1] {
			dst = append(dst, p)
		}
	}

	src := l.Glyphs()
	glyphs := make([]text.Glyph, 0, len(src))
	for _, gl := range src {
		if gl.Whitespace {
			continue
		}
		gl.Pos[0] += anchor[0]
		gl.Pos[1] += anchor[1]
		glyphs = append(glyphs, gl)
	}
	if len(glyphs) > 0 {
		dst = append(dst, Primitive{Kind: Text, Rect: rect, Color: t.Color(), Glyphs: glyphs})
	}
	return dst
}

func intersect(a, b [4]float32) ([4]float32, bool) {
	out := [4]float32{
		math32.Max(a[0], b[0]),
		math32.Max(a[1], b[1]),
		math32.Min(a[2], b[2]),
		math32.Min(a[3], b[3]),
	}
	return out, out[0] < out[2] && out[1] < out[3]
}

func intersects(a, b [4]float32) bool {
	return a[0] < b[2] && b[0] < a[2] && a[1] < b[3] && b[1] < a[3]
}
