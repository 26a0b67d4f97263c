// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Text lays out a spanned string relative to an anchor point of the
// control rect. The layout is cached and only rebuilt when the
// content, style, alignment or wrap width change.
type Text struct {
	// span is authoritative until the first layout is built; after
	// that the layout's copy is, and span is refreshed from it
	// whenever the layout is dropped.
	span     text.SpannedString
	align    [2]int8
	maxWidth float32
	layout   *text.TextLayout

	textDirty  bool
	colorDirty bool
}

// NewText creates a text graphic with the given content, alignment
// and default style. Each alignment axis is -1 (start), 0 (center)
// or 1 (end).
func NewText(s string, align [2]int8, style text.Style) *Text {
	return NewSpannedText(text.NewSpannedString(s, style), align)
}

// NewSpannedText creates a text graphic from an already spanned
// string.
func NewSpannedText(span text.SpannedString, align [2]int8) *Text {
	return &Text{
		span:       span,
		align:      align,
		textDirty:  true,
		colorDirty: true,
	}
}

// WithColor sets the default text color and returns the graphic, for
// chained construction.
func (t *Text) WithColor(c colors.Color) *Text {
	t.SetColor(c)
	return t
}

// spanned returns the authoritative spanned string.
func (t *Text) spanned() *text.SpannedString {
	if t.layout != nil {
		return t.layout.Spanned()
	}
	return &t.span
}

// detach folds the laid out state back into the source string so the
// layout is rebuilt with new settings on the next use.
func (t *Text) detach() {
	if t.layout != nil {
		t.span = *t.layout.Spanned()
		t.layout = nil
	}
	t.textDirty = true
}

// String returns the current text.
func (t *Text) String() string {
	return t.spanned().String()
}

// SetString replaces the text, dropping every span.
func (t *Text) SetString(s string) {
	t.detach()
	t.span.SetString(s)
}

// SetSpanned replaces the whole spanned string.
func (t *Text) SetSpanned(span text.SpannedString) {
	t.span = span
	t.layout = nil
	t.textDirty = true
}

// Style returns the default text style.
func (t *Text) Style() text.Style {
	return t.spanned().Style()
}

// SetStyle replaces the default style, dropping shape spans.
func (t *Text) SetStyle(style text.Style) {
	t.detach()
	t.span.SetStyle(style)
}

// Align returns the per axis alignment.
func (t *Text) Align() [2]int8 { return t.align }

// SetAlign changes the per axis alignment.
func (t *Text) SetAlign(align [2]int8) {
	if align == t.align {
		return
	}
	t.align = align
	t.detach()
}

// MaxWidth returns the wrap width, zero meaning unbounded.
func (t *Text) MaxWidth() float32 { return t.maxWidth }

// SetMaxWidth changes the wrap width. Zero disables wrapping.
func (t *Text) SetMaxWidth(w float32) {
	if w == t.maxWidth {
		return
	}
	t.maxWidth = w
	t.detach()
}

// Layout returns the cached text layout, building it on first use.
// Callers that mutate the layout must call [Text.MarkDirty] so the
// render pass rebuilds its geometry.
func (t *Text) Layout(sh text.Shaper, fts *fonts.Fonts) *text.TextLayout {
	if t.layout == nil {
		settings := text.LayoutSettings{MaxWidth: t.maxWidth, Align: t.align}
		t.layout = text.NewTextLayout(t.span, settings, sh, fts)
	}
	return t.layout
}

// MarkDirty flags the glyph geometry as stale.
func (t *Text) MarkDirty() { t.textDirty = true }

// Anchor returns the point of the rect the layout hangs from, per
// the text's alignment. Glyph and caret coordinates are offsets from
// this point.
func (t *Text) Anchor(rect [4]float32) [2]float32 {
	return [2]float32{
		rect[0] + anchorFrac(t.align[0])*(rect[2]-rect[0]),
		rect[1] + anchorFrac(t.align[1])*(rect[3]-rect[1]),
	}
}

func anchorFrac(a int8) float32 {
	switch {
	case a < 0:
		return 0
	case a > 0:
		return 1
	}
	return 0.5
}

// Color returns the default text color.
func (t *Text) Color() colors.Color {
	return t.spanned().Style().Color
}

// SetColor replaces the default text color, recoloring the cached
// layout without reshaping it.
func (t *Text) SetColor(c colors.Color) {
	if t.layout != nil {
		t.layout.Spanned().SetColor(c)
		t.layout.Restyle()
	} else {
		t.span.SetColor(c)
	}
	t.colorDirty = true
}

// SetAlpha replaces the alpha channel of the default text color.
func (t *Text) SetAlpha(a uint8) {
	c := t.Color()
	c.A = a
	t.SetColor(c)
}

func (t *Text) ColorDirty() bool  { return t.colorDirty }
func (t *Text) NeedRebuild() bool { return t.textDirty }
func (t *Text) isGraphic()        {}

func (t *Text) ClearDirty() {
	t.colorDirty = false
	t.textDirty = false
}

// MinSize is the size of the laid out text at its current wrap
// width.
func (t *Text) MinSize(sh text.Shaper, fts *fonts.Fonts) ([2]float32, bool) {
	return t.Layout(sh, fts).Size(), true
}

// Clone returns a copy of the text graphic. The copy shares no span
// storage with the original and lays out from scratch.
func (t *Text) Clone() Graphic {
	return &Text{
		span:       t.spanned().Clone(),
		align:      t.align,
		maxWidth:   t.maxWidth,
		textDirty:  true,
		colorDirty: true,
	}
}
