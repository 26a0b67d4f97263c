// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
	"github.com/Rodrigodd/giui-sub001/text/shapers/simple"
)

// testFonts returns a store with one synthetic face: at size 16
// every glyph advances 8 pixels, with ascent 12 and descent 4.
func testFonts() *fonts.Fonts {
	fts := &fonts.Fonts{}
	fts.Add(fonts.NewFont(fonts.Synthetic{AdvanceEm: 0.5, AscentEm: 0.75, DescentEm: 0.25}))
	return fts
}

func testStyle() text.Style {
	return text.Style{Color: colors.Black, FontSize: 16}
}

func TestPanelUVRects(t *testing.T) {
	p := graphics.NewPanel(1, [4]float32{0, 0, 0.75, 0.75}, [4]float32{4, 4, 4, 4})

	assert.Equal(t, [4]float32{0, 0, 0.25, 0.25}, p.UVRects[0])
	assert.Equal(t, [4]float32{0.25, 0, 0.25, 0.25}, p.UVRects[1])
	assert.Equal(t, [4]float32{0.5, 0, 0.25, 0.25}, p.UVRects[2])
	assert.Equal(t, [4]float32{0.25, 0.25, 0.25, 0.25}, p.UVRects[4])
	assert.Equal(t, [4]float32{0.5, 0.5, 0.25, 0.25}, p.UVRects[8])
}

func TestPanelMinSize(t *testing.T) {
	p := graphics.NewPanel(0, [4]float32{0, 0, 1, 1}, [4]float32{4, 2, 6, 8})
	size, ok := p.MinSize(nil, nil)
	require.True(t, ok)
	assert.Equal(t, [2]float32{10, 10}, size)
}

func TestPanelSprites(t *testing.T) {
	p := graphics.NewPanel(7, [4]float32{0, 0, 0.75, 0.75}, [4]float32{4, 2, 6, 8})
	sprites := p.Sprites([4]float32{10, 10, 110, 60})

	assert.Equal(t, [4]float32{10, 10, 14, 12}, sprites[0].Rect)
	assert.Equal(t, [4]float32{14, 12, 104, 52}, sprites[4].Rect)
	assert.Equal(t, [4]float32{104, 52, 110, 60}, sprites[8].Rect)
	for i, s := range sprites {
		assert.Equal(t, uint32(7), s.Texture)
		assert.Equal(t, colors.White, s.Color)
		assert.Equal(t, p.UVRects[i], s.UV)
	}
}

func TestPanelSpritesClampBorder(t *testing.T) {
	p := graphics.NewPanel(0, [4]float32{0, 0, 1, 1}, [4]float32{4, 4, 4, 4})
	sprites := p.Sprites([4]float32{0, 0, 6, 4})

	// borders shrink to half the rect, so the center is empty
	assert.Equal(t, [4]float32{0, 0, 3, 2}, sprites[0].Rect)
	assert.Equal(t, [4]float32{3, 2, 3, 2}, sprites[4].Rect)
	assert.Equal(t, [4]float32{3, 2, 6, 4}, sprites[8].Rect)
}

func TestPanelSpritesEmptyRect(t *testing.T) {
	p := graphics.NewPanel(0, [4]float32{0, 0, 1, 1}, [4]float32{4, 4, 4, 4})
	for _, s := range p.Sprites([4]float32{10, 10, 5, 5}) {
		assert.Equal(t, [4]float32{10, 10, 10, 10}, s.Rect)
	}
}

func TestPanelFlipX(t *testing.T) {
	p := graphics.NewPanel(0, [4]float32{0, 0, 0.75, 0.75}, [4]float32{1, 2, 3, 4})
	p.FlipX()

	assert.Equal(t, [4]float32{3, 2, 1, 4}, p.Border)
	// the top right corner, mirrored, lands on the top left
	assert.Equal(t, [4]float32{0.75, 0, -0.25, 0.25}, p.UVRects[0])
	assert.Equal(t, [4]float32{0.5, 0, -0.25, 0.25}, p.UVRects[1])
	assert.Equal(t, [4]float32{0.25, 0, -0.25, 0.25}, p.UVRects[2])
}

func TestPanelFlipY(t *testing.T) {
	p := graphics.NewPanel(0, [4]float32{0, 0, 0.75, 0.75}, [4]float32{1, 2, 3, 4})
	p.FlipY()

	assert.Equal(t, [4]float32{1, 4, 3, 2}, p.Border)
	assert.Equal(t, [4]float32{0, 0.75, 0.25, -0.25}, p.UVRects[0])
	assert.Equal(t, [4]float32{0, 0.25, 0.25, -0.25}, p.UVRects[6])
}

func TestTextureSprite(t *testing.T) {
	uv := [4]float32{0.25, 0.5, 0.25, 0.125}
	tx := graphics.NewTexture(2, uv).WithColor(colors.Color{R: 255, G: 0, B: 0, A: 255})

	s := tx.Sprite([4]float32{1, 2, 3, 4})
	assert.Equal(t, uint32(2), s.Texture)
	assert.Equal(t, [4]float32{1, 2, 3, 4}, s.Rect)
	assert.Equal(t, uv, s.UV)
	assert.Equal(t, colors.Color{R: 255, G: 0, B: 0, A: 255}, s.Color)

	size, ok := tx.MinSize(nil, nil)
	require.True(t, ok)
	assert.Equal(t, [2]float32{0, 0}, size)
}

func TestIconSprite(t *testing.T) {
	ic := graphics.NewIcon(3, [4]float32{0, 0, 1, 1}, [2]float32{16, 8})

	s := ic.Sprite([4]float32{0, 0, 48, 40})
	assert.Equal(t, [4]float32{16, 16, 32, 24}, s.Rect)

	size, ok := ic.MinSize(nil, nil)
	require.True(t, ok)
	assert.Equal(t, [2]float32{16, 8}, size)
}

func TestColorDirtyTracking(t *testing.T) {
	p := graphics.NewPanel(0, [4]float32{0, 0, 1, 1}, [4]float32{1, 1, 1, 1})
	assert.True(t, p.ColorDirty())
	assert.False(t, p.NeedRebuild())

	p.ClearDirty()
	assert.False(t, p.ColorDirty())

	p.SetColor(colors.Black)
	assert.True(t, p.ColorDirty())

	p.ClearDirty()
	p.SetAlpha(128)
	assert.True(t, p.ColorDirty())
	assert.Equal(t, colors.Color{R: 0, G: 0, B: 0, A: 128}, p.Color())

	p.ClearDirty()
	clone := p.Clone()
	assert.True(t, clone.ColorDirty())
	assert.False(t, p.ColorDirty())
}

func TestNilGraphic(t *testing.T) {
	assert.Equal(t, colors.White, graphics.ColorOf(nil))
	assert.NotPanics(t, func() {
		graphics.SetColor(nil, colors.Black)
		graphics.SetAlpha(nil, 0)
	})
	_, ok := graphics.MinSize(nil, nil, nil)
	assert.False(t, ok)
}

func TestMask(t *testing.T) {
	m := &graphics.Mask{}
	assert.Equal(t, colors.White, m.Color())
	m.SetColor(colors.Black)
	assert.Equal(t, colors.White, m.Color())
	_, ok := m.MinSize(nil, nil)
	assert.False(t, ok)
}

func TestTextMinSize(t *testing.T) {
	fts := testFonts()
	sh := simple.New()
	txt := graphics.NewText("ab", [2]int8{-1, -1}, testStyle())

	size, ok := txt.MinSize(sh, fts)
	require.True(t, ok)
	assert.Equal(t, [2]float32{16, 16}, size)
}

func TestTextWrapSize(t *testing.T) {
	fts := testFonts()
	sh := simple.New()
	txt := graphics.NewText("aa bb", [2]int8{-1, -1}, testStyle())

	size, _ := txt.MinSize(sh, fts)
	assert.Equal(t, [2]float32{40, 16}, size)

	txt.SetMaxWidth(20)
	assert.True(t, txt.NeedRebuild())
	size, _ = txt.MinSize(sh, fts)
	assert.Equal(t, [2]float32{16, 32}, size)
}

func TestTextSetString(t *testing.T) {
	fts := testFonts()
	sh := simple.New()
	txt := graphics.NewText("ab", [2]int8{-1, -1}, testStyle())
	txt.Layout(sh, fts)
	txt.ClearDirty()

	txt.SetString("abc")
	assert.True(t, txt.NeedRebuild())
	assert.Equal(t, "abc", txt.String())
	size, _ := txt.MinSize(sh, fts)
	assert.Equal(t, [2]float32{24, 16}, size)
}

func TestTextSetColor(t *testing.T) {
	fts := testFonts()
	sh := simple.New()
	red := colors.Color{R: 255, G: 0, B: 0, A: 255}
	txt := graphics.NewText("ab", [2]int8{-1, -1}, testStyle())
	txt.Layout(sh, fts)
	txt.ClearDirty()

	txt.SetColor(red)
	assert.True(t, txt.ColorDirty())
	assert.False(t, txt.NeedRebuild())
	assert.Equal(t, red, txt.Color())
	assert.Equal(t, red, txt.Layout(sh, fts).Glyphs()[0].Color)
}

func TestTextEditThroughLayout(t *testing.T) {
	fts := testFonts()
	sh := simple.New()
	txt := graphics.NewText("ab", [2]int8{-1, -1}, testStyle())

	l := txt.Layout(sh, fts)
	l.ReplaceRange(1, 1, "xy", sh, fts)
	txt.MarkDirty()
	assert.Equal(t, "axyb", txt.String())

	// changing a setting rebuilds the layout without losing the edit
	txt.SetAlign([2]int8{0, 0})
	assert.Equal(t, "axyb", txt.String())
	size, _ := txt.MinSize(sh, fts)
	assert.Equal(t, [2]float32{32, 16}, size)
}

func TestTextAnchor(t *testing.T) {
	rect := [4]float32{0, 0, 100, 50}

	txt := graphics.NewText("x", [2]int8{-1, -1}, testStyle())
	assert.Equal(t, [2]float32{0, 0}, txt.Anchor(rect))

	txt.SetAlign([2]int8{0, 0})
	assert.Equal(t, [2]float32{50, 25}, txt.Anchor(rect))

	txt.SetAlign([2]int8{1, 1})
	assert.Equal(t, [2]float32{100, 50}, txt.Anchor(rect))
}

func TestTextClone(t *testing.T) {
	fts := testFonts()
	sh := simple.New()
	txt := graphics.NewText("ab", [2]int8{-1, -1}, testStyle())
	txt.Layout(sh, fts)

	clone := txt.Clone().(*graphics.Text)
	assert.True(t, clone.ColorDirty())

	txt.SetString("other")
	assert.Equal(t, "ab", clone.String())
	size, _ := clone.MinSize(sh, fts)
	assert.Equal(t, [2]float32{16, 16}, size)
}
