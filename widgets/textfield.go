// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chewxy/math32"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/style"
	"github.com/Rodrigodd/giui-sub001/text"
)

// textFieldMargin keeps the caret this many pixels clear of the field
// edges while scrolling.
const textFieldMargin = 5.0

var selectionColor = colors.RGBA(51, 153, 255, 255)

// TextField is a single line text editor. label is the child holding
// the Text graphic, which keeps whatever string it was built with;
// caret is a child drawn behind the label whose margins the field
// drives, as a 1 px bar at the caret or as the selection box. The
// text scrolls horizontally to keep the caret in view.
//
// Return emits [SubmitText]. Ctrl+C, Ctrl+X and Ctrl+V go through the
// clipboard configured on the Gui, Ctrl+A selects all, and Ctrl with
// the arrow keys moves over words. Sending [ClearText] empties the
// field.
type TextField struct {
	core.BehaviourBase
	caret     core.Id
	label     core.Id
	editor    text.TextEditor
	textWidth float32
	xScroll   float32
	onFocus   bool
	mouseX    float32
	mouseDown bool
	style     style.OnFocusStyle
}

func NewTextField(caret, label core.Id, st style.OnFocusStyle) *TextField {
	return &TextField{caret: caret, label: label, style: st}
}

func (t *TextField) InputFlags() core.InputFlags {
	return core.InputMouse | core.InputFocus | core.InputKeyboard | core.InputScroll
}

// layout returns the label's text graphic and its layout, nil when
// the label has no text graphic.
func (t *TextField) layout(ctx *core.Context) (*graphics.Text, *text.TextLayout) {
	txt, ok := ctx.Graphic(t.label).(*graphics.Text)
	if !ok {
		return nil, nil
	}
	return txt, txt.Layout(ctx.Shaper(), ctx.Fonts())
}

func (t *TextField) OnStart(this core.Id, ctx *core.Context) {
	t.refresh(this, ctx)
	ctx.MoveToFront(t.label)
	ctx.SetGraphic(this, graphics.Clone(t.style.Normal))
}

func (t *TextField) OnEvent(event any, this core.Id, ctx *core.Context) {
	if _, ok := event.(ClearText); ok {
		txt, l := t.layout(ctx)
		if txt == nil {
			return
		}
		t.editor.SelectAll(l)
		t.editor.InsertText(l, "", ctx.Shaper(), ctx.Fonts())
		t.refresh(this, ctx)
	}
}

func (t *TextField) OnFocusChange(focus bool, this core.Id, ctx *core.Context) {
	t.onFocus = focus
	if focus {
		ctx.SetGraphic(this, graphics.Clone(t.style.Focus))
	} else {
		ctx.SetGraphic(this, graphics.Clone(t.style.Normal))
	}
	t.updateCaret(this, ctx, true)
}

func (t *TextField) OnScrollEvent(delta [2]float32, this core.Id, ctx *core.Context) {
	d := delta[1]
	if math32.Abs(delta[0]) > math32.Abs(delta[1]) {
		d = delta[0]
	}
	t.xScroll -= d
	t.updateCaret(this, ctx, false)
}

func (t *TextField) OnMouseEvent(mouse events.MouseInfo, this core.Id, ctx *core.Context) bool {
	switch {
	case mouse.Event == events.MouseDown && mouse.Button == events.LeftButton:
		_, l := t.layout(ctx)
		if l == nil {
			return true
		}
		x := mouse.Pos[0] - (ctx.Rect(this)[0] - t.xScroll)
		t.editor.SetCursorFromByte(l, l.ByteIndexFromX(0, x), false)
		t.mouseDown = true
		ctx.LockOver(true, mouse.Pointer)
		t.updateCaret(this, ctx, true)
	case mouse.Event == events.MouseUp && mouse.Button == events.LeftButton:
		t.mouseDown = false
		ctx.LockOver(false, mouse.Pointer)
	case mouse.Event == events.MouseMoved:
		t.mouseX = mouse.Pos[0]
		if t.mouseDown {
			_, l := t.layout(ctx)
			if l == nil {
				return true
			}
			x := t.mouseX - (ctx.Rect(this)[0] - t.xScroll)
			t.editor.SetCursorFromByte(l, l.ByteIndexFromX(0, x), true)
			t.updateCaret(this, ctx, true)
		}
	}
	return true
}

func (t *TextField) OnKeyboardEvent(event events.KeyEvent, this core.Id, ctx *core.Context) bool {
	txt, l := t.layout(ctx)
	if txt == nil {
		return false
	}
	sh, fts := ctx.Shaper(), ctx.Fonts()
	ctrl := event.Mods.HasAll(key.Control)
	shift := event.Mods.HasAll(key.Shift)

	if event.Kind == events.KeyChar {
		t.editor.InsertText(l, string(event.Rune), sh, fts)
		t.refresh(this, ctx)
		return true
	}
	if event.Kind != events.KeyDown {
		return false
	}
	switch event.Code {
	case key.CodeC, key.CodeX:
		if !ctrl || !t.editor.HasSelection() {
			return false
		}
		rng := t.editor.SelectionRange(l)
		ctx.Clipboard().WriteText(l.String()[rng[0]:rng[1]])
		if event.Code == key.CodeX {
			t.editor.InsertText(l, "", sh, fts)
			t.refresh(this, ctx)
		}
	case key.CodeV:
		if !ctrl {
			return false
		}
		paste := strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}, ctx.Clipboard().ReadText())
		t.editor.InsertText(l, paste, sh, fts)
		t.refresh(this, ctx)
	case key.CodeA:
		if !ctrl {
			return false
		}
		t.editor.SelectAll(l)
		t.updateCaret(this, ctx, false)
	case key.CodeReturn:
		ctx.SendEvent(SubmitText{Id: this, Text: l.String()})
	case key.CodeBackspace:
		t.editor.DeleteHor(l, -1, sh, fts)
		t.refresh(this, ctx)
	case key.CodeDelete:
		t.editor.DeleteHor(l, 1, sh, fts)
		t.refresh(this, ctx)
	case key.CodeLeft:
		if ctrl {
			t.moveCaretTo(l, wordLeft(l.String(), t.editor.CursorByte(l)), true, shift)
		} else {
			t.editor.MoveHor(l, -1, shift)
		}
		t.updateCaret(this, ctx, true)
	case key.CodeRight:
		if ctrl {
			t.moveCaretTo(l, wordRight(l.String(), t.editor.CursorByte(l)), false, shift)
		} else {
			t.editor.MoveHor(l, 1, shift)
		}
		t.updateCaret(this, ctx, true)
	case key.CodeHome:
		t.moveCaretTo(l, 0, true, shift)
		t.updateCaret(this, ctx, true)
	case key.CodeEnd:
		t.moveCaretTo(l, len(l.String()), false, shift)
		t.updateCaret(this, ctx, true)
	default:
		return false
	}
	return true
}

// moveCaretTo places the cursor at an absolute byte index. Without
// shift an existing selection collapses to the edge in the direction
// of motion instead of moving.
func (t *TextField) moveCaretTo(l *text.TextLayout, target int, left, shift bool) {
	if !shift && t.editor.HasSelection() {
		rng := t.editor.SelectionRange(l)
		if left {
			t.editor.SetCursorFromByte(l, rng[0], false)
		} else {
			t.editor.SetCursorFromByte(l, rng[1], false)
		}
		return
	}
	t.editor.SetCursorFromByte(l, target, shift)
}

// refresh propagates an edit: the label min size follows the text and
// the caret snaps back into view.
func (t *TextField) refresh(this core.Id, ctx *core.Context) {
	txt, l := t.layout(ctx)
	if txt == nil {
		return
	}
	size := l.Size()
	t.textWidth = size[0]
	ctx.SetMinSize(t.label, size)
	txt.MarkDirty()
	t.updateCaret(this, ctx, true)
}

// updateCaret scrolls the text to keep the caret in view and shapes
// the caret child: a 1 px bar at the cursor while focused, the
// selection box while a selection exists, collapsed otherwise.
func (t *TextField) updateCaret(this core.Id, ctx *core.Context, focusCaret bool) {
	txt, l := t.layout(ctx)
	if txt == nil {
		return
	}
	pos, height := t.editor.Caret(l)
	// caret coordinates are relative to the label's text anchor; the
	// x offset is reconstructed from xScroll below, the y offset
	// follows the label's placement in the field
	y := pos[1] + txt.Anchor(ctx.Rect(t.label))[1] - ctx.Rect(this)[1]

	width := ctx.Size(this)[0]
	if width > t.textWidth {
		t.xScroll = -textFieldMargin
	} else if focusCaret {
		if pos[0]-t.xScroll > width-textFieldMargin {
			t.xScroll = pos[0] - (width - textFieldMargin)
		}
		if pos[0]-t.xScroll < textFieldMargin {
			t.xScroll = pos[0] - textFieldMargin
		}
	} else {
		if t.textWidth-t.xScroll < width-textFieldMargin {
			t.xScroll = t.textWidth - (width - textFieldMargin)
		}
		if t.xScroll < -textFieldMargin {
			t.xScroll = -textFieldMargin
		}
	}

	margins := ctx.Margins(t.label)
	margins[0] = -t.xScroll
	ctx.SetMargins(t.label, margins)

	x := pos[0] - t.xScroll
	if t.editor.HasSelection() {
		graphics.SetColor(ctx.Graphic(t.caret), selectionColor)
		rng := t.editor.SelectionRange(l)
		a := l.PixelPositionFromByte(rng[0])[0] - t.xScroll
		b := l.PixelPositionFromByte(rng[1])[0] - t.xScroll
		if a > b {
			a, b = b, a
		}
		ctx.SetMargins(t.caret, [4]float32{a, y, b, y + height})
	} else {
		graphics.SetColor(ctx.Graphic(t.caret), colors.Black)
		if t.onFocus {
			ctx.SetMargins(t.caret, [4]float32{x, y, x + 1, y + height})
		} else {
			ctx.SetMargins(t.caret, [4]float32{})
		}
	}
}

// wordLeft returns the byte index of the start of the word left of i:
// whitespace first, then the word itself.
func wordLeft(s string, i int) int {
	for i > 0 {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= n
	}
	for i > 0 {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsSpace(r) {
			break
		}
		i -= n
	}
	return i
}

// wordRight returns the byte index of the start of the word right of
// i: the rest of the current word, then the whitespace after it.
func wordRight(s string, i int) int {
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += n
	}
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += n
	}
	return i
}
