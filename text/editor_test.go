// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/shapers/simple"
)

func TestEditorMoveHor(t *testing.T) {
	l, _ := layoutOf("hello world", LayoutSettings{})
	var e TextEditor

	assert.Equal(t, Position{}, e.Cursor())
	e.MoveHor(l, 1, false)
	assert.Equal(t, 1, e.CursorByte(l))
	e.MoveHor(l, 10, false)
	assert.Equal(t, 11, e.CursorByte(l))
	// clamped at the text end
	e.MoveHor(l, 5, false)
	assert.Equal(t, 11, e.CursorByte(l))
	e.MoveHor(l, -12, false)
	assert.Equal(t, 0, e.CursorByte(l))
	assert.False(t, e.HasSelection())
}

func TestEditorSelection(t *testing.T) {
	l, _ := layoutOf("hello world", LayoutSettings{})
	var e TextEditor

	e.MoveHor(l, 2, false)
	e.MoveHor(l, 3, true)
	assert.True(t, e.HasSelection())
	assert.Equal(t, [2]int{2, 5}, e.SelectionRange(l))

	// moving without expanding collapses to the selection edge in the
	// direction of motion
	e.MoveHor(l, -1, false)
	assert.False(t, e.HasSelection())
	assert.Equal(t, 2, e.CursorByte(l))

	e.MoveHor(l, 3, true)
	e.MoveHor(l, 1, false)
	assert.Equal(t, 5, e.CursorByte(l))

	e.SetCursorFromByte(l, 0, false)
	e.SetCursorFromByte(l, 3, true)
	assert.Equal(t, [2]int{0, 3}, e.SelectionRange(l))
}

func TestEditorSelectAll(t *testing.T) {
	l, _ := layoutOf("ab\ncd", LayoutSettings{})
	var e TextEditor

	e.SelectAll(l)
	assert.True(t, e.HasSelection())
	assert.Equal(t, [2]int{0, 5}, e.SelectionRange(l))
	assert.Equal(t, Position{Line: 1, Column: 2}, e.Cursor())
}

func TestEditorInsertText(t *testing.T) {
	l, fts := layoutOf("hello world", LayoutSettings{})
	sh := simple.New()
	var e TextEditor

	e.MoveHor(l, 5, true)
	e.InsertText(l, "goodbye", sh, fts)
	assert.Equal(t, "goodbye world", l.String())
	assert.Equal(t, 7, e.CursorByte(l))
	assert.False(t, e.HasSelection())

	// an empty selection inserts at the caret
	e.InsertText(l, ",", sh, fts)
	assert.Equal(t, "goodbye, world", l.String())
	assert.Equal(t, 8, e.CursorByte(l))
}

func TestEditorDeleteHor(t *testing.T) {
	l, fts := layoutOf("hello", LayoutSettings{})
	sh := simple.New()
	var e TextEditor

	e.SetCursorFromByte(l, 5, false)
	e.DeleteHor(l, -1, sh, fts)
	assert.Equal(t, "hell", l.String())
	assert.Equal(t, 4, e.CursorByte(l))

	e.SetCursorFromByte(l, 0, false)
	e.DeleteHor(l, 1, sh, fts)
	assert.Equal(t, "ell", l.String())
	assert.Equal(t, 0, e.CursorByte(l))

	// with a selection the delta is ignored and the selection goes
	e.SetCursorFromByte(l, 1, false)
	e.SetCursorFromByte(l, 3, true)
	e.DeleteHor(l, 1, sh, fts)
	assert.Equal(t, "e", l.String())
	assert.Equal(t, 1, e.CursorByte(l))
}

func TestEditorMoveVert(t *testing.T) {
	l, _ := layoutOf("ab\ncd", LayoutSettings{})
	var e TextEditor

	e.SetCursorFromByte(l, 1, false)
	e.MoveVert(l, 1, false)
	assert.Equal(t, 4, e.CursorByte(l))
	assert.Equal(t, Position{Line: 1, Column: 1}, e.Cursor())
	e.MoveVert(l, -1, false)
	assert.Equal(t, 1, e.CursorByte(l))

	// clamped at the last line
	e.MoveVert(l, 5, false)
	assert.Equal(t, Position{Line: 1, Column: 1}, e.Cursor())

	e.SetCursorFromByte(l, 0, false)
	e.MoveVert(l, 1, true)
	assert.True(t, e.HasSelection())
	assert.Equal(t, [2]int{0, 3}, e.SelectionRange(l))
}

func TestEditorMoveVertKeepsColumn(t *testing.T) {
	l, _ := layoutOf("abcd\nx\nefgh", LayoutSettings{})
	var e TextEditor

	// crossing a short line keeps the caret x for the next one
	e.SetCursorFromByte(l, 3, false)
	e.MoveVert(l, 1, false)
	assert.Equal(t, Position{Line: 1, Column: 1}, e.Cursor())
	e.MoveVert(l, 1, false)
	assert.Equal(t, Position{Line: 2, Column: 3}, e.Cursor())
	assert.Equal(t, 10, e.CursorByte(l))
}

func TestEditorLineStartEnd(t *testing.T) {
	l, _ := layoutOf("ab\ncd", LayoutSettings{})
	var e TextEditor

	e.SetCursorFromByte(l, 1, false)
	e.MoveLineEnd(l, false)
	// the caret stops before the line break
	assert.Equal(t, 2, e.CursorByte(l))
	e.MoveLineStart(l, false)
	assert.Equal(t, 0, e.CursorByte(l))

	e.SetCursorFromByte(l, 4, false)
	e.MoveLineEnd(l, false)
	assert.Equal(t, 5, e.CursorByte(l))
	e.MoveLineStart(l, false)
	assert.Equal(t, 3, e.CursorByte(l))
}

func TestEditorGraphemeClusters(t *testing.T) {
	// "a" plus a combining acute is a single grapheme cluster
	l, fts := layoutOf("áb", LayoutSettings{})
	sh := simple.New()
	var e TextEditor

	e.MoveHor(l, 1, false)
	assert.Equal(t, 3, e.CursorByte(l))
	assert.Equal(t, Position{Line: 0, Column: 1}, e.Cursor())
	e.MoveHor(l, 1, false)
	assert.Equal(t, 4, e.CursorByte(l))

	e.DeleteHor(l, -1, sh, fts)
	assert.Equal(t, "á", l.String())
	e.DeleteHor(l, -1, sh, fts)
	assert.Equal(t, "", l.String())
}

func TestEditorCaret(t *testing.T) {
	l, _ := layoutOf("ab\ncd", LayoutSettings{})
	var e TextEditor

	pos, height := e.Caret(l)
	assert.Equal(t, [2]float32{0, 0}, pos)
	assert.Equal(t, float32(16), height)

	e.SetCursorFromByte(l, 4, false)
	pos, height = e.Caret(l)
	assert.Equal(t, [2]float32{8, 16}, pos)
	assert.Equal(t, float32(16), height)
}

func TestEditorEmptyText(t *testing.T) {
	l, fts := layoutOf("", LayoutSettings{})
	sh := simple.New()
	var e TextEditor

	pos, height := e.Caret(l)
	assert.Equal(t, [2]float32{0, 0}, pos)
	assert.Equal(t, float32(16), height)

	e.InsertText(l, "x", sh, fts)
	require.Equal(t, "x", l.String())
	assert.Equal(t, 1, e.CursorByte(l))
}
