// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
	"github.com/Rodrigodd/giui-sub001/events/key"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/widgets"
)

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) ReadText() string   { return c.text }
func (c *fakeClipboard) WriteText(s string) { c.text = s }

// buildTextField assembles a 100x20 field at the surface origin, so
// caret margins read back as surface coordinates.
func buildTextField(g *core.Gui, content string) (field, caret, label core.Id) {
	fb := g.CreateControl().
		Anchors([4]float32{0, 0, 0, 0}).
		Margins([4]float32{0, 0, 100, 20})
	caret = g.CreateControl().
		Parent(fb.Id()).
		Anchors([4]float32{0, 0, 0, 0}).
		Graphic(graphics.NewTexture(1, [4]float32{0, 0, 1, 1}).WithColor(colors.Black)).
		Build()
	label = g.CreateControl().
		Parent(fb.Id()).
		Anchors([4]float32{0, 0, 0, 0}).
		Graphic(graphics.NewText(content, [2]int8{-1, 0}, text.Style{Color: colors.Black, FontSize: 16})).
		Build()
	field = fb.Behaviour(widgets.NewTextField(caret, label, focusStyle())).Build()
	return field, caret, label
}

// submit presses Return on the focused field and returns the text of
// the emitted event.
func submit(t *testing.T, g *core.Gui, field core.Id) string {
	t.Helper()
	require.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeReturn}))
	for _, ev := range g.TakeEvents() {
		if s, ok := ev.(widgets.SubmitText); ok && s.Id == field {
			return s.Text
		}
	}
	t.Fatal("no submit event")
	return ""
}

func TestTextFieldClickAndType(t *testing.T) {
	g := newTextGui()
	field, caret, label := buildTextField(g, "abcd")
	g.PrepareRender()

	// unfocused: the text sits at the margin and no caret shows
	assert.Equal(t, normalTint, tint(g, field))
	assert.Equal(t, [4]float32{5, 0, 37, 16}, g.Rect(label))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, g.Rect(caret))

	// the caret lands on the closest glyph boundary
	clickAt(g, 20, 10)
	g.PrepareRender()
	assert.Equal(t, field, g.Focus())
	assert.Equal(t, focusTint, tint(g, field))
	assert.Equal(t, [4]float32{21, 0, 22, 16}, g.Rect(caret))

	g.CharInput('X')
	g.PrepareRender()
	assert.Equal(t, [4]float32{29, 0, 30, 16}, g.Rect(caret))
	assert.Equal(t, [4]float32{5, 0, 45, 16}, g.Rect(label))
	assert.Equal(t, "abXcd", submit(t, g, field))

	g.SendEventTo(field, widgets.ClearText{})
	g.PrepareRender()
	assert.Equal(t, [4]float32{5, 0, 6, 16}, g.Rect(caret))
	assert.Equal(t, "", submit(t, g, field))
}

func TestTextFieldEditingKeys(t *testing.T) {
	g := newTextGui()
	field, caret, _ := buildTextField(g, "ab cd ef")
	g.PrepareRender()
	g.SetFocus(field)
	g.PrepareRender()
	assert.Equal(t, [4]float32{5, 0, 6, 16}, g.Rect(caret))

	press := func(code key.Code, mods key.Modifiers) {
		assert.True(t, g.KeyDown(events.KeyEvent{Code: code, Mods: mods}))
		g.PrepareRender()
	}

	press(key.CodeRight, 0)
	assert.Equal(t, [4]float32{13, 0, 14, 16}, g.Rect(caret))
	press(key.CodeEnd, 0)
	assert.Equal(t, [4]float32{69, 0, 70, 16}, g.Rect(caret))
	press(key.CodeBackspace, 0)
	assert.Equal(t, [4]float32{61, 0, 62, 16}, g.Rect(caret))
	press(key.CodeHome, 0)
	press(key.CodeDelete, 0)
	assert.Equal(t, [4]float32{5, 0, 6, 16}, g.Rect(caret))

	// words: over "b", over the space, and back
	press(key.CodeRight, key.Control)
	assert.Equal(t, [4]float32{21, 0, 22, 16}, g.Rect(caret))
	press(key.CodeLeft, key.Control)
	assert.Equal(t, [4]float32{5, 0, 6, 16}, g.Rect(caret))

	// a selection turns the caret into the highlight box
	press(key.CodeRight, key.Shift)
	press(key.CodeRight, key.Shift)
	assert.Equal(t, [4]float32{5, 0, 21, 16}, g.Rect(caret))
	assert.Equal(t, colors.RGBA(51, 153, 255, 255), tint(g, caret))

	// typing replaces the selection
	g.CharInput('z')
	g.PrepareRender()
	assert.Equal(t, [4]float32{13, 0, 14, 16}, g.Rect(caret))
	assert.Equal(t, colors.Black, tint(g, caret))
	assert.Equal(t, "zcd e", submit(t, g, field))
}

func TestTextFieldHomeEndCollapseSelection(t *testing.T) {
	g := newTextGui()
	field, caret, _ := buildTextField(g, "hello")
	g.PrepareRender()
	g.SetFocus(field)

	press := func(code key.Code, mods key.Modifiers) {
		assert.True(t, g.KeyDown(events.KeyEvent{Code: code, Mods: mods}))
		g.PrepareRender()
	}
	press(key.CodeRight, 0)
	press(key.CodeRight, 0)
	press(key.CodeRight, key.Shift)
	press(key.CodeRight, key.Shift)
	assert.Equal(t, [4]float32{21, 0, 37, 16}, g.Rect(caret))

	// End first collapses the selection to its right edge, only the
	// next press reaches the line end
	press(key.CodeEnd, 0)
	assert.Equal(t, [4]float32{37, 0, 38, 16}, g.Rect(caret))
	press(key.CodeEnd, 0)
	assert.Equal(t, [4]float32{45, 0, 46, 16}, g.Rect(caret))
}

func TestTextFieldClipboard(t *testing.T) {
	g := newTextGui()
	clip := &fakeClipboard{}
	g.SetClipboard(clip)
	field, _, _ := buildTextField(g, "hello world")
	g.PrepareRender()
	g.SetFocus(field)

	press := func(code key.Code, mods key.Modifiers) {
		assert.True(t, g.KeyDown(events.KeyEvent{Code: code, Mods: mods}))
	}

	press(key.CodeRight, key.Control|key.Shift)
	press(key.CodeC, key.Control)
	assert.Equal(t, "hello ", clip.text)

	press(key.CodeX, key.Control)
	assert.Equal(t, "hello ", clip.text)

	// pasting strips control characters
	press(key.CodeEnd, 0)
	clip.text = "a\nb\tc"
	press(key.CodeV, key.Control)
	assert.Equal(t, "worldabc", submit(t, g, field))

	// copy without a selection is not consumed
	assert.False(t, g.KeyDown(events.KeyEvent{Code: key.CodeC, Mods: key.Control}))
}

func TestTextFieldScrollsToCaret(t *testing.T) {
	g := newTextGui()
	field, caret, label := buildTextField(g, "aaaaaaaaaaaaaaaaaaaa")
	g.PrepareRender()
	assert.Equal(t, [4]float32{5, 0, 165, 16}, g.Rect(label))

	g.SetFocus(field)
	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeEnd}))
	g.PrepareRender()
	assert.Equal(t, [4]float32{95, 0, 96, 16}, g.Rect(caret))
	assert.Equal(t, [4]float32{-65, 0, 95, 16}, g.Rect(label))

	assert.True(t, g.KeyDown(events.KeyEvent{Code: key.CodeHome}))
	g.PrepareRender()
	assert.Equal(t, [4]float32{5, 0, 6, 16}, g.Rect(caret))
	assert.Equal(t, [4]float32{5, 0, 165, 16}, g.Rect(label))
}

func TestTextFieldWheelScrollClamps(t *testing.T) {
	g := newTextGui()
	_, _, label := buildTextField(g, "aaaaaaaaaaaaaaaaaaaa")
	g.PrepareRender()

	g.MouseMoved(core.DefaultPointer, 50, 10)
	g.Scroll(core.DefaultPointer, 0, -10)
	g.PrepareRender()
	assert.Equal(t, [4]float32{-5, 0, 155, 16}, g.Rect(label))

	// back past the left margin clamps
	g.Scroll(core.DefaultPointer, 0, 100)
	g.PrepareRender()
	assert.Equal(t, [4]float32{5, 0, 165, 16}, g.Rect(label))

	// far past the end clamps to the right margin
	g.Scroll(core.DefaultPointer, 0, -1000)
	g.PrepareRender()
	assert.Equal(t, [4]float32{-65, 0, 95, 16}, g.Rect(label))

	// the dominant axis wins, here the horizontal one
	g.Scroll(core.DefaultPointer, 30, -5)
	g.PrepareRender()
	assert.Equal(t, [4]float32{-35, 0, 125, 16}, g.Rect(label))
}

func TestTextFieldDragSelects(t *testing.T) {
	g := newTextGui()
	_, caret, _ := buildTextField(g, "abcd")
	g.PrepareRender()

	g.MouseMoved(core.DefaultPointer, 20, 10)
	g.MouseDown(core.DefaultPointer, events.LeftButton)
	g.PrepareRender()
	assert.Equal(t, [4]float32{21, 0, 22, 16}, g.Rect(caret))

	g.MouseMoved(core.DefaultPointer, 40, 10)
	g.PrepareRender()
	assert.Equal(t, [4]float32{21, 0, 37, 16}, g.Rect(caret))
	assert.Equal(t, colors.RGBA(51, 153, 255, 255), tint(g, caret))

	// the pointer lock keeps the drag alive outside the field
	g.MouseMoved(core.DefaultPointer, 150, 10)
	g.PrepareRender()
	assert.Equal(t, [4]float32{21, 0, 37, 16}, g.Rect(caret))
	g.MouseUp(core.DefaultPointer, events.LeftButton)

	clickAt(g, 5, 10)
	g.PrepareRender()
	assert.Equal(t, [4]float32{5, 0, 6, 16}, g.Rect(caret))
	assert.Equal(t, colors.Black, tint(g, caret))
}
