// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"bytes"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"
)

// OpenType is a [Face] over a parsed OpenType/TrueType font, backed
// by go-text/typesetting. Sizes are interpreted as the line height of
// the face, ascent plus descent, so a run of text at size 16 measures
// 16 pixels tall.
type OpenType struct {
	face *font.Face
	upem float32
	ext  font.FontExtents

	// span is ascender minus descender, in font units.
	span float32
}

// ParseTTF parses a single-face OpenType/TrueType font.
func ParseTTF(data []byte) (*OpenType, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: parsing font: %w", err)
	}
	return NewOpenType(face), nil
}

// ParseTTC parses a font collection and returns all faces in it.
func ParseTTC(data []byte) ([]*OpenType, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: parsing font collection: %w", err)
	}
	ots := make([]*OpenType, len(faces))
	for i, face := range faces {
		ots[i] = NewOpenType(face)
	}
	return ots, nil
}

// NewOpenType wraps an already parsed typesetting face.
func NewOpenType(face *font.Face) *OpenType {
	ot := &OpenType{face: face, upem: float32(face.Upem())}
	ot.ext, _ = face.FontHExtents()
	ot.span = math32.Abs(ot.ext.Ascender) + math32.Abs(ot.ext.Descender)
	if ot.span == 0 {
		ot.span = ot.upem
	}
	return ot
}

// Face returns the underlying typesetting face, for shaping backends
// that operate on it directly.
func (ot *OpenType) Face() *font.Face {
	return ot.face
}

func (ot *OpenType) scale(size float32) float32 {
	if ot.span == 0 {
		return 0
	}
	return size / ot.span
}

// EmSize converts a line height size to the equivalent em size of
// the face. Shaping backends that scale by em need it to match the
// face's metrics.
func (ot *OpenType) EmSize(size float32) float32 {
	if ot.span == 0 {
		return size
	}
	return size * ot.upem / ot.span
}

func (ot *OpenType) Extents(size float32) Extents {
	s := ot.scale(size)
	return Extents{
		Ascent:  math32.Abs(ot.ext.Ascender) * s,
		Descent: math32.Abs(ot.ext.Descender) * s,
		LineGap: math32.Abs(ot.ext.LineGap) * s,
	}
}

func (ot *OpenType) HasGlyph(r rune) bool {
	_, ok := ot.face.Cmap.Lookup(r)
	return ok
}

func (ot *OpenType) GlyphID(r rune) uint32 {
	gid, ok := ot.face.Cmap.Lookup(r)
	if !ok {
		return 0
	}
	return uint32(gid)
}

func (ot *OpenType) Advance(r rune, size float32) float32 {
	gid, ok := ot.face.Cmap.Lookup(r)
	if !ok {
		return 0
	}
	return ot.face.HorizontalAdvance(gid) * ot.scale(size)
}

// Kern returns 0: pair adjustments for OpenType fonts are applied by
// shaping backends, not by the metric face.
func (ot *OpenType) Kern(prev, next rune, size float32) float32 {
	return 0
}
