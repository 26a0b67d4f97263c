// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text implements spanned strings, cached line-breaking text
// layout with caret queries, and a cursor/selection editor over a
// layout. Shaping is delegated to a [Shaper]; see the shapers
// subpackages for the provided backends.
package text

import (
	"slices"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Style is the default style of a [SpannedString]: the color, size
// and font used where no span overrides them.
type Style struct {
	Color    colors.Color
	FontSize float32
	Font     fonts.FontId
}

// ShapeSpan overrides font size and font over a byte range. Shape
// spans affect glyph generation, so changing them requires reshaping.
type ShapeSpan struct {
	// Range is the byte range [start, end) into the string.
	Range    [2]int
	FontSize float32
	Font     fonts.FontId
}

// SpanKind discriminates the [StyleSpan] variants.
type SpanKind int8

const (
	// SpanColor recolors the glyphs in the range.
	SpanColor SpanKind = iota
	// SpanSelection draws a background rect behind the range and
	// optionally recolors its glyphs.
	SpanSelection
)

// StyleSpan overlays styling that does not affect shaping over a byte
// range of the string.
type StyleSpan struct {
	// Range is the byte range [start, end) into the string.
	Range [2]int
	Kind  SpanKind

	// Color is the glyph color for SpanColor spans.
	Color colors.Color

	// Background is the rect color for SpanSelection spans.
	Background colors.Color

	// Foreground recolors the selected glyphs when HasForeground is
	// set.
	Foreground    colors.Color
	HasForeground bool
}

// SpannedString is a string with overlaid, typed per-range style
// attributes. Shape spans (font, size) are kept sorted and
// non-overlapping; style spans are kept in insertion order and may
// overlap.
type SpannedString struct {
	str        string
	style      Style
	shapeSpans []ShapeSpan
	styleSpans []StyleSpan
}

// NewSpannedString returns a spanned string with the given default
// style and no spans.
func NewSpannedString(s string, style Style) SpannedString {
	return SpannedString{str: s, style: style}
}

func (s *SpannedString) String() string {
	return s.str
}

// Len returns the length of the string in bytes.
func (s *SpannedString) Len() int {
	return len(s.str)
}

// Style returns the default style.
func (s *SpannedString) Style() Style {
	return s.style
}

// SetStyle replaces the default style and drops all shape spans, so
// the whole string shapes with the new style.
func (s *SpannedString) SetStyle(style Style) {
	s.style = style
	s.shapeSpans = nil
}

// SetColor replaces the default color, keeping every span. Color
// spans still take precedence over it.
func (s *SpannedString) SetColor(c colors.Color) {
	s.style.Color = c
}

// SetString replaces the content and drops every span.
func (s *SpannedString) SetString(str string) {
	s.str = str
	s.shapeSpans = nil
	s.styleSpans = nil
}

// Clone returns a copy that shares no span storage with the
// original.
func (s *SpannedString) Clone() SpannedString {
	c := *s
	c.shapeSpans = slices.Clone(s.shapeSpans)
	c.styleSpans = slices.Clone(s.styleSpans)
	return c
}

// StyleSpans returns the style spans, in insertion order.
func (s *SpannedString) StyleSpans() []StyleSpan {
	return s.styleSpans
}

// AddStyleSpan overlays the given span. Out of range bounds are
// clamped; an empty range is dropped.
func (s *SpannedString) AddStyleSpan(span StyleSpan) {
	span.Range = clampRange(span.Range, len(s.str))
	if span.Range[0] >= span.Range[1] {
		return
	}
	s.styleSpans = append(s.styleSpans, span)
}

// AddColorSpan recolors the glyphs of the given byte range.
func (s *SpannedString) AddColorSpan(rng [2]int, c colors.Color) {
	s.AddStyleSpan(StyleSpan{Range: rng, Kind: SpanColor, Color: c})
}

// AddSelection draws a selection background behind the given byte
// range.
func (s *SpannedString) AddSelection(rng [2]int, background colors.Color) {
	s.AddStyleSpan(StyleSpan{Range: rng, Kind: SpanSelection, Background: background})
}

// ClearSelections removes all SpanSelection spans.
func (s *SpannedString) ClearSelections() {
	s.styleSpans = slices.DeleteFunc(s.styleSpans, func(sp StyleSpan) bool {
		return sp.Kind == SpanSelection
	})
}

// ClearStyleSpans removes all style spans.
func (s *SpannedString) ClearStyleSpans() {
	s.styleSpans = nil
}

// AddShapeSpan overrides font and size over the span's range,
// trimming or splitting any previous shape span it overlaps.
func (s *SpannedString) AddShapeSpan(span ShapeSpan) {
	span.Range = clampRange(span.Range, len(s.str))
	if span.Range[0] >= span.Range[1] {
		return
	}
	var out []ShapeSpan
	for _, old := range s.shapeSpans {
		out = append(out, subtractRange(old, span.Range)...)
	}
	out = append(out, span)
	slices.SortFunc(out, func(a, b ShapeSpan) int {
		return a.Range[0] - b.Range[0]
	})
	s.shapeSpans = out
}

// subtractRange returns the parts of old outside rng.
func subtractRange(old ShapeSpan, rng [2]int) []ShapeSpan {
	if old.Range[1] <= rng[0] || old.Range[0] >= rng[1] {
		return []ShapeSpan{old}
	}
	var parts []ShapeSpan
	if old.Range[0] < rng[0] {
		left := old
		left.Range[1] = rng[0]
		parts = append(parts, left)
	}
	if old.Range[1] > rng[1] {
		right := old
		right.Range[0] = rng[1]
		parts = append(parts, right)
	}
	return parts
}

// shapeRuns returns sorted, contiguous shape runs covering the whole
// string, filling gaps between shape spans with the default style.
func (s *SpannedString) shapeRuns() []ShapeSpan {
	def := ShapeSpan{FontSize: s.style.FontSize, Font: s.style.Font}
	if len(s.str) == 0 {
		return nil
	}
	var runs []ShapeSpan
	pos := 0
	for _, sp := range s.shapeSpans {
		if sp.Range[0] > pos {
			gap := def
			gap.Range = [2]int{pos, sp.Range[0]}
			runs = append(runs, gap)
		}
		runs = append(runs, sp)
		pos = sp.Range[1]
	}
	if pos < len(s.str) {
		gap := def
		gap.Range = [2]int{pos, len(s.str)}
		runs = append(runs, gap)
	}
	return runs
}

// ReplaceRange splices the byte range [start, end) with the given
// string. Span ranges after the splice shift; ranges straddling it
// are trimmed to the surviving text, and an insertion strictly inside
// a span grows it.
func (s *SpannedString) ReplaceRange(start, end int, str string) {
	r := clampRange([2]int{start, end}, len(s.str))
	start, end = r[0], r[1]
	s.str = s.str[:start] + str + s.str[end:]
	delta := len(str) - (end - start)

	adjust := func(p int, growsAtStart bool) int {
		switch {
		case p < start || (p == start && !growsAtStart):
			return p
		case p >= end:
			return p + delta
		default:
			return start
		}
	}
	fix := func(rng [2]int) [2]int {
		inside := rng[0] < start && rng[1] > end
		a := adjust(rng[0], false)
		b := adjust(rng[1], inside || rng[1] > end)
		if b < a {
			b = a
		}
		return [2]int{a, b}
	}

	for i := range s.shapeSpans {
		s.shapeSpans[i].Range = fix(s.shapeSpans[i].Range)
	}
	s.shapeSpans = slices.DeleteFunc(s.shapeSpans, func(sp ShapeSpan) bool {
		return sp.Range[0] >= sp.Range[1]
	})
	for i := range s.styleSpans {
		s.styleSpans[i].Range = fix(s.styleSpans[i].Range)
	}
	s.styleSpans = slices.DeleteFunc(s.styleSpans, func(sp StyleSpan) bool {
		return sp.Range[0] >= sp.Range[1]
	})
}

func clampRange(rng [2]int, n int) [2]int {
	if rng[0] < 0 {
		rng[0] = 0
	}
	if rng[1] > n {
		rng[1] = n
	}
	if rng[1] < rng[0] {
		rng[1] = rng[0]
	}
	return rng
}
