// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts holds the font store shared by text layout and
// shaping. Fonts are identified by a small [FontId] handle; each font
// wraps a metric [Face] and may name a fallback font to consult for
// glyphs it does not cover.
package fonts

import "fmt"

// FontId identifies a font inside a [Fonts] store. The first font
// added has id 0, which is also the zero value.
type FontId uint32

// Fonts is the font store. It is published once and never mutated
// afterwards, so it can be shared freely by reference.
type Fonts struct {
	fonts []Font
}

// Font couples a metric face with an optional fallback font to
// consult for glyphs the face does not cover.
type Font struct {
	face        Face
	fallback    FontId
	hasFallback bool
}

// NewFont returns a font over the given face, with no fallback.
func NewFont(face Face) Font {
	return Font{face: face}
}

// Face returns the font's metric face.
func (f *Font) Face() Face {
	return f.face
}

// Fallback returns the fallback font id, if one is set.
func (f *Font) Fallback() (FontId, bool) {
	return f.fallback, f.hasFallback
}

// SetFallback sets the fallback font consulted for missing glyphs.
func (f *Font) SetFallback(id FontId) {
	f.fallback = id
	f.hasFallback = true
}

// Add adds the font to the store and returns its id.
func (fs *Fonts) Add(font Font) FontId {
	fs.fonts = append(fs.fonts, font)
	return FontId(len(fs.fonts) - 1)
}

// AddTTF parses OpenType/TrueType font data and adds it to the store.
func (fs *Fonts) AddTTF(data []byte) (FontId, error) {
	face, err := ParseTTF(data)
	if err != nil {
		return 0, err
	}
	return fs.Add(NewFont(face)), nil
}

// Len returns the number of fonts in the store.
func (fs *Fonts) Len() int {
	return len(fs.fonts)
}

// Get returns the font with the given id. An unknown id is a
// programming error and panics.
func (fs *Fonts) Get(id FontId) *Font {
	if int(id) >= len(fs.fonts) {
		panic(fmt.Sprintf("fonts: unknown font id %d (did you forget to load fonts?)", id))
	}
	return &fs.fonts[id]
}

// SetFallback sets the fallback of the font with the given id.
func (fs *Fonts) SetFallback(id, fallback FontId) {
	fs.Get(id).SetFallback(fallback)
}
