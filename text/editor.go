// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Position is a caret position in laid out text: a line index and a
// column counted in grapheme clusters.
type Position struct {
	Line   int
	Column int
}

// Less orders positions by line, then column.
func (p Position) Less(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// TextEditor tracks a cursor and an anchor over a [TextLayout] and
// edits the underlying text through it. The selection is the range
// between anchor and cursor; when they are equal it is a plain caret.
// The zero value is a caret at the start of the text.
//
// The editor holds positions, not the layout, so one editor follows a
// layout that is relaid out elsewhere.
type TextEditor struct {
	cursor Position
	anchor Position

	// cursorX keeps the caret x across vertical motion, so moving
	// through a short line does not lose the column.
	cursorX float32
}

// Cursor returns the cursor position.
func (e *TextEditor) Cursor() Position {
	return e.cursor
}

// HasSelection reports whether cursor and anchor differ.
func (e *TextEditor) HasSelection() bool {
	return e.cursor != e.anchor
}

// selectionBounds returns the selection in position order.
func (e *TextEditor) selectionBounds() (start, end Position) {
	if e.anchor.Less(e.cursor) {
		return e.anchor, e.cursor
	}
	return e.cursor, e.anchor
}

// SelectionRange returns the selected byte range, cursor and anchor
// ordered. An empty selection yields an empty range at the caret.
func (e *TextEditor) SelectionRange(l *TextLayout) [2]int {
	if !e.HasSelection() {
		b := e.byteFromPosition(l, e.cursor)
		return [2]int{b, b}
	}
	a := e.byteFromPosition(l, e.cursor)
	b := e.byteFromPosition(l, e.anchor)
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// CursorByte returns the byte index of the cursor.
func (e *TextEditor) CursorByte(l *TextLayout) int {
	return e.byteFromPosition(l, e.cursor)
}

// Caret returns the top left corner and the height of the caret at
// the cursor, relative to the layout anchor.
func (e *TextEditor) Caret(l *TextLayout) (pos [2]float32, height float32) {
	b := e.byteFromPosition(l, e.cursor)
	lines := l.Lines()
	if len(lines) == 0 {
		return [2]float32{}, 0
	}
	ln := &lines[l.LineForByte(b)]
	p := l.PixelPositionFromByte(b)
	return [2]float32{p[0], ln.Y - ln.Ascent}, ln.Height()
}

// SetCursorFromByte places the cursor at the given byte index. With
// expandSelection the anchor stays, extending the selection.
func (e *TextEditor) SetCursorFromByte(l *TextLayout, i int, expandSelection bool) {
	pos := e.positionFromByte(l, i)
	e.setCursor(pos, expandSelection)
	e.cursorX = l.PixelPositionFromByte(e.byteFromPosition(l, pos))[0]
}

// SelectAll selects the whole text, with the cursor at the end.
func (e *TextEditor) SelectAll(l *TextLayout) {
	e.anchor = e.positionFromByte(l, 0)
	e.cursor = e.positionFromByte(l, len(l.String()))
	e.cursorX = l.PixelPositionFromByte(len(l.String()))[0]
}

// MoveHor moves the cursor by delta grapheme clusters, right when
// positive. Without expandSelection a non empty selection collapses
// to its edge in the direction of motion instead of moving.
func (e *TextEditor) MoveHor(l *TextLayout, delta int, expandSelection bool) {
	moved := e.offsetPosition(l, e.cursor, delta)
	switch {
	case expandSelection:
		e.cursor = moved
	case e.HasSelection():
		start, end := e.selectionBounds()
		if delta > 0 {
			moved = end
		} else {
			moved = start
		}
		e.cursor = moved
		e.anchor = moved
	default:
		e.cursor = moved
		e.anchor = moved
	}
	e.cursorX = l.PixelPositionFromByte(e.byteFromPosition(l, e.cursor))[0]
}

// MoveVert moves the cursor by delta lines, down when positive,
// keeping the caret x from the last horizontal motion.
func (e *TextEditor) MoveVert(l *TextLayout, delta int, expandSelection bool) {
	n := len(l.Lines())
	if n == 0 {
		return
	}
	line := clampInt(e.cursor.Line+delta, 0, n-1)
	b := l.ByteIndexFromX(line, e.cursorX)
	e.setCursor(e.positionFromByte(l, b), expandSelection)
}

// MoveLineStart moves the cursor to the start of its line.
func (e *TextEditor) MoveLineStart(l *TextLayout, expandSelection bool) {
	a, _ := e.lineBytes(l, e.cursor.Line)
	e.setCursor(e.positionFromByte(l, a), expandSelection)
	e.cursorX = l.PixelPositionFromByte(a)[0]
}

// MoveLineEnd moves the cursor to the end of its line, before the
// line break if the line ends in one.
func (e *TextEditor) MoveLineEnd(l *TextLayout, expandSelection bool) {
	_, b := e.lineBytes(l, e.cursor.Line)
	e.setCursor(e.positionFromByte(l, b), expandSelection)
	e.cursorX = l.PixelPositionFromByte(b)[0]
}

// InsertText replaces the selection with the given text and places
// the caret after it. An empty selection inserts at the caret; empty
// text deletes the selection.
func (e *TextEditor) InsertText(l *TextLayout, s string, sh Shaper, fts *fonts.Fonts) {
	rng := e.SelectionRange(l)
	l.ReplaceRange(rng[0], rng[1], s, sh, fts)
	target := rng[0] + len(s)
	pos := e.positionFromByte(l, target)
	e.cursor = pos
	e.anchor = pos
	e.cursorX = l.PixelPositionFromByte(e.byteFromPosition(l, pos))[0]
}

// DeleteHor deletes the selection if there is one. Otherwise it
// deletes delta grapheme clusters from the caret, right when
// positive.
func (e *TextEditor) DeleteHor(l *TextLayout, delta int, sh Shaper, fts *fonts.Fonts) {
	if !e.HasSelection() {
		e.anchor = e.offsetPosition(l, e.anchor, delta)
	}
	e.InsertText(l, "", sh, fts)
}

func (e *TextEditor) setCursor(pos Position, expandSelection bool) {
	e.cursor = pos
	if !expandSelection {
		e.anchor = pos
	}
}

// lineBytes returns the byte range of the line's editable content:
// its start and its end stripped of the trailing line break and of
// the layout's trailing sentinel.
func (e *TextEditor) lineBytes(l *TextLayout, line int) (int, int) {
	lines := l.Lines()
	if len(lines) == 0 {
		return 0, 0
	}
	line = clampInt(line, 0, len(lines)-1)
	ln := &lines[line]
	a := ln.Range[0]
	b := min(ln.Range[1], len(l.String()))
	s := l.String()[a:b]
	s = strings.TrimRight(s, "\n")
	s = strings.TrimRight(s, "\r")
	return a, a + len(s)
}

// positionFromByte converts a byte index to a line and grapheme
// column, clamping out of range indices.
func (e *TextEditor) positionFromByte(l *TextLayout, i int) Position {
	i = clampInt(i, 0, len(l.String()))
	line := l.LineForByte(i)
	a, _ := e.lineBytes(l, line)
	lines := l.Lines()
	var b int
	if len(lines) > 0 {
		b = min(lines[line].Range[1], len(l.String()))
	}
	col := 0
	gr := uniseg.NewGraphemes(l.String()[a:b])
	for gr.Next() {
		start, _ := gr.Positions()
		if a+start >= i {
			break
		}
		col++
	}
	return Position{Line: line, Column: col}
}

// byteFromPosition converts a line and grapheme column back to a
// byte index, clamping out of range columns to the line content.
func (e *TextEditor) byteFromPosition(l *TextLayout, pos Position) int {
	lines := l.Lines()
	if len(lines) == 0 {
		return 0
	}
	line := clampInt(pos.Line, 0, len(lines)-1)
	a := lines[line].Range[0]
	b := min(lines[line].Range[1], len(l.String()))
	gr := uniseg.NewGraphemes(l.String()[a:b])
	col := 0
	off := a
	for gr.Next() {
		if col == pos.Column {
			start, _ := gr.Positions()
			return a + start
		}
		_, end := gr.Positions()
		off = a + end
		col++
	}
	return off
}

// offsetPosition moves a position by delta grapheme clusters over the
// whole text, crossing line boundaries, clamping at the text ends.
func (e *TextEditor) offsetPosition(l *TextLayout, pos Position, delta int) Position {
	if delta == 0 {
		return pos
	}
	bounds := graphemeBoundaries(l.String())
	b := e.byteFromPosition(l, pos)
	i := sort.SearchInts(bounds, b)
	i = clampInt(i+delta, 0, len(bounds)-1)
	return e.positionFromByte(l, bounds[i])
}

// graphemeBoundaries returns the byte offsets of every grapheme
// cluster boundary of s, including 0 and len(s).
func graphemeBoundaries(s string) []int {
	bounds := []int{0}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		_, end := gr.Positions()
		bounds = append(bounds, end)
	}
	return bounds
}
