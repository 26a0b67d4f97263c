// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style loads graphic descriptions from TOML and YAML style
// sheets, resolving texture and font names through an embedder
// callback, and publishes the results as named prototypes that
// controls instantiate independent copies of. A [Watcher] reloads a
// sheet file whenever it changes on disk.
package style

import (
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Resources resolves the asset names a style sheet refers to. It is
// implemented by the embedder, which owns the texture uploads and the
// font store.
type Resources interface {
	// LoadTexture loads the named texture and returns its handle and
	// size in pixels. Sheet uv rects are given in pixels and are
	// normalized by this size. The zero handle draws as an
	// untextured fill.
	LoadTexture(name string) (handle, width, height uint32, err error)

	// LoadFont loads the named font and returns its id.
	LoadFont(name string) (fonts.FontId, error)
}

// GraphicModifier is implemented by [Resources] that want to adjust
// each graphic a sheet produces, for example re-tinting a theme.
type GraphicModifier interface {
	ModifyGraphic(g graphics.Graphic) graphics.Graphic
}

// OnFocusStyle is the graphic pair of a control that only reacts to
// keyboard focus.
type OnFocusStyle struct {
	Normal graphics.Graphic
	Focus  graphics.Graphic
}

// Clone returns a deep copy of the style.
func (s *OnFocusStyle) Clone() *OnFocusStyle {
	return &OnFocusStyle{
		Normal: graphics.Clone(s.Normal),
		Focus:  graphics.Clone(s.Focus),
	}
}

// ButtonStyle has one graphic per interaction state of a button.
type ButtonStyle struct {
	Normal  graphics.Graphic
	Hover   graphics.Graphic
	Pressed graphics.Graphic
	Focus   graphics.Graphic
}

// Clone returns a deep copy of the style.
func (s *ButtonStyle) Clone() *ButtonStyle {
	return &ButtonStyle{
		Normal:  graphics.Clone(s.Normal),
		Hover:   graphics.Clone(s.Hover),
		Pressed: graphics.Clone(s.Pressed),
		Focus:   graphics.Clone(s.Focus),
	}
}

// TabStyle has one graphic per state of a tab button. A selected tab
// keeps the Selected graphic regardless of hover.
type TabStyle struct {
	Unselected graphics.Graphic
	Hover      graphics.Graphic
	Pressed    graphics.Graphic
	Selected   graphics.Graphic
}

// Clone returns a deep copy of the style.
func (s *TabStyle) Clone() *TabStyle {
	return &TabStyle{
		Unselected: graphics.Clone(s.Unselected),
		Hover:      graphics.Clone(s.Hover),
		Pressed:    graphics.Clone(s.Pressed),
		Selected:   graphics.Clone(s.Selected),
	}
}

// MenuStyle styles menus and menu bars: the per item button states,
// the text style of the item labels, the separator line and the
// submenu arrow.
type MenuStyle struct {
	Button    ButtonStyle
	Text      text.Style
	Separator graphics.Graphic
	Arrow     graphics.Graphic
}

// Clone returns a deep copy of the style.
func (s *MenuStyle) Clone() *MenuStyle {
	return &MenuStyle{
		Button:    *s.Button.Clone(),
		Text:      s.Text,
		Separator: graphics.Clone(s.Separator),
		Arrow:     graphics.Clone(s.Arrow),
	}
}
