// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/segmenter"

	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Alignment values for [LayoutSettings.Align]: -1 aligns to the
// start (left/top), 0 centers, 1 aligns to the end (right/bottom).
const (
	AlignStart  int8 = -1
	AlignCenter int8 = 0
	AlignEnd    int8 = 1
)

// LayoutSettings parameterise a [TextLayout].
type LayoutSettings struct {
	// MaxWidth is the wrap width in pixels. Zero or negative means
	// unbounded (no wrapping).
	MaxWidth float32

	// Align positions lines relative to the layout anchor, per axis.
	// Glyph coordinates are relative to that anchor, so a centered
	// layout has glyphs at negative x.
	Align [2]int8
}

func alignFrac(a int8) float32 {
	switch {
	case a < 0:
		return 0
	case a > 0:
		return 1
	}
	return 0.5
}

// Line is one laid out line of text.
type Line struct {
	// Ascent, Descent and LineGap are the line's vertical metrics,
	// all magnitudes.
	Ascent  float32
	Descent float32
	LineGap float32

	// X and Y position the line: X is the aligned start offset and Y
	// the baseline, both relative to the layout anchor.
	X float32
	Y float32

	// Width is the visible width, excluding trailing whitespace.
	Width float32

	// Range is the byte range of the line, including any trailing
	// whitespace and line break.
	Range [2]int

	// Glyphs indexes the layout's glyph slice.
	Glyphs [2]int
}

// Height returns the line height, ascent plus descent. The gap to
// the next line is not included.
func (l *Line) Height() float32 {
	return l.Ascent + l.Descent
}

// StyleRect is a rectangle emitted by selection spans, drawn behind
// the glyphs.
type StyleRect struct {
	Rect  [4]float32
	Color colors.Color
}

// TextLayout is the cached result of laying out a [SpannedString]:
// broken lines, positioned glyphs and selection rects, plus the min
// size measured before wrapping. A trailing sentinel space is laid
// out after the source text so there is a well defined caret position
// past the last byte.
type TextLayout struct {
	src      SpannedString
	settings LayoutSettings
	lines    []Line
	glyphs   []Glyph
	rects    []StyleRect
	minSize  [2]float32
	err      error
}

// NewTextLayout lays out the given spanned string. On a shaping
// failure the layout is empty and [TextLayout.Err] reports the cause.
func NewTextLayout(src SpannedString, settings LayoutSettings, sh Shaper, fts *fonts.Fonts) *TextLayout {
	l := &TextLayout{src: src, settings: settings}
	l.relayout(sh, fts)
	return l
}

// Err returns the error of the last layout, if shaping failed.
func (l *TextLayout) Err() error {
	return l.err
}

// String returns the source text, without the sentinel.
func (l *TextLayout) String() string {
	return l.src.String()
}

// Spanned returns the source spanned string. Mutating it through the
// pointer requires a relayout to take effect; prefer
// [TextLayout.ReplaceRange] and [TextLayout.Restyle].
func (l *TextLayout) Spanned() *SpannedString {
	return &l.src
}

// Settings returns the layout settings.
func (l *TextLayout) Settings() LayoutSettings {
	return l.settings
}

// MinSize returns the size of the unwrapped text: the widest
// paragraph by the summed line heights.
func (l *TextLayout) MinSize() [2]float32 {
	return l.minSize
}

// Size returns the dimensions of the laid out text at the current
// wrap width. Without a wrap width this equals [TextLayout.MinSize].
func (l *TextLayout) Size() [2]float32 {
	var w float32
	for i := range l.lines {
		w = math32.Max(w, l.lines[i].Width)
	}
	return [2]float32{w, l.totalHeight()}
}

// Lines returns the laid out lines.
func (l *TextLayout) Lines() []Line {
	return l.lines
}

// Glyphs returns the positioned glyphs, including the sentinel.
func (l *TextLayout) Glyphs() []Glyph {
	return l.glyphs
}

// Rects returns the selection rects, in span order.
func (l *TextLayout) Rects() []StyleRect {
	return l.rects
}

// ReplaceRange splices the source byte range [start, end) with the
// given string and lays the text out again.
func (l *TextLayout) ReplaceRange(start, end int, s string, sh Shaper, fts *fonts.Fonts) {
	l.src.ReplaceRange(start, end, s)
	l.relayout(sh, fts)
}

// SetMaxWidth changes the wrap width and lays the text out again.
func (l *TextLayout) SetMaxWidth(w float32, sh Shaper, fts *fonts.Fonts) {
	l.settings.MaxWidth = w
	l.relayout(sh, fts)
}

// Restyle recomputes glyph colors and selection rects from the
// current style spans without reshaping.
func (l *TextLayout) Restyle() {
	l.applyStyles()
}

// breakPoint is a line break opportunity after Byte.
type breakPoint struct {
	Byte      int
	Mandatory bool
}

func (l *TextLayout) relayout(sh Shaper, fts *fonts.Fonts) {
	l.lines = nil
	l.glyphs = nil
	l.rects = nil
	l.minSize = [2]float32{}
	l.err = nil

	// working copy with the sentinel appended, shaped with the
	// default style
	work := l.src
	srcLen := len(work.str)
	work.str += " "
	work.AddShapeSpan(ShapeSpan{
		Range:    [2]int{srcLen, srcLen + 1},
		FontSize: work.style.FontSize,
		Font:     work.style.Font,
	})

	breaks := lineBreaks(work.str)
	if err := l.shapeParagraphs(&work, breaks, sh, fts); err != nil {
		l.lines = nil
		l.glyphs = nil
		l.err = err
		return
	}
	l.computeMinSize()
	if l.settings.MaxWidth > 0 {
		l.breakLines(breaks)
	}
	l.positionLines()
	l.applyStyles()
}

// lineBreaks returns the UAX#14 break opportunities of the text, in
// byte offsets.
func lineBreaks(s string) []breakPoint {
	runes := []rune(s)
	bytePos := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		bytePos[i] = b
		b += len(string(r))
	}
	bytePos[len(runes)] = b

	var seg segmenter.Segmenter
	seg.Init(runes)
	var breaks []breakPoint
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		end := line.Offset + len(line.Text)
		breaks = append(breaks, breakPoint{Byte: bytePos[end], Mandatory: line.IsMandatoryBreak})
	}
	// the text end is always a valid break
	if len(breaks) == 0 || breaks[len(breaks)-1].Byte < len(s) {
		breaks = append(breaks, breakPoint{Byte: len(s)})
	}
	return breaks
}

// shapeParagraphs shapes each paragraph (mandatory-break segment)
// unwrapped, producing one provisional line per paragraph.
func (l *TextLayout) shapeParagraphs(work *SpannedString, breaks []breakPoint, sh Shaper, fts *fonts.Fonts) error {
	runs := work.shapeRuns()
	start := 0
	for _, bp := range breaks {
		if !bp.Mandatory && bp.Byte != len(work.str) {
			continue
		}
		if err := l.shapeParagraph(work.str, runs, start, bp.Byte, sh, fts); err != nil {
			return err
		}
		start = bp.Byte
	}
	return nil
}

func (l *TextLayout) shapeParagraph(s string, runs []ShapeSpan, start, end int, sh Shaper, fts *fonts.Fonts) error {
	line := Line{Range: [2]int{start, end}, Glyphs: [2]int{len(l.glyphs), len(l.glyphs)}}
	penX := float32(0)
	for _, run := range runs {
		a := max(run.Range[0], start)
		b := min(run.Range[1], end)
		if a >= b {
			continue
		}
		glyphs, err := sh.Shape(s[a:b], run.FontSize, run.Font, fts)
		if err != nil {
			return err
		}
		for _, g := range glyphs {
			g.Pos[0] += penX
			g.Range[0] += a
			g.Range[1] += a
			l.glyphs = append(l.glyphs, g)
		}
		if n := len(glyphs); n > 0 {
			last := glyphs[n-1]
			penX += last.Pos[0] + last.Width
		}
		ext := fts.Get(run.Font).Face().Extents(run.FontSize)
		line.Ascent = math32.Max(line.Ascent, ext.Ascent)
		line.Descent = math32.Max(line.Descent, ext.Descent)
		line.LineGap = math32.Max(line.LineGap, ext.LineGap)
	}
	line.Glyphs[1] = len(l.glyphs)
	line.Width = l.visibleWidth(line.Glyphs[0], line.Glyphs[1])
	l.lines = append(l.lines, line)
	return nil
}

// visibleWidth measures glyphs [a, b) excluding trailing whitespace.
func (l *TextLayout) visibleWidth(a, b int) float32 {
	for b > a && l.glyphs[b-1].Whitespace {
		b--
	}
	if b == a {
		return 0
	}
	first := l.glyphs[a].Pos[0]
	last := l.glyphs[b-1]
	return last.Pos[0] + last.Width - first
}

// computeMinSize measures the unwrapped paragraphs.
func (l *TextLayout) computeMinSize() {
	var w float32
	for i := range l.lines {
		w = math32.Max(w, l.lines[i].Width)
	}
	l.minSize = [2]float32{w, l.totalHeight()}
}

// totalHeight is the stacked height of the lines, top of the first to
// bottom of the last.
func (l *TextLayout) totalHeight() float32 {
	var h float32
	for i := range l.lines {
		h += l.lines[i].Height() + l.lines[i].LineGap
	}
	if n := len(l.lines); n > 0 {
		h -= l.lines[n-1].LineGap
	}
	return h
}

// breakLines greedily wraps the provisional paragraph lines at break
// opportunities so each line's visible width fits the wrap width.
// Trailing whitespace may overflow; a segment that cannot fit at all
// breaks at the first overflowing glyph.
func (l *TextLayout) breakLines(breaks []breakPoint) {
	maxW := l.settings.MaxWidth
	var out []Line
	for _, para := range l.lines {
		out = append(out, l.breakParagraph(para, breaks, maxW)...)
	}
	l.lines = out
}

func (l *TextLayout) breakParagraph(para Line, breaks []breakPoint, maxW float32) []Line {
	if para.Glyphs[0] == para.Glyphs[1] {
		return []Line{para}
	}
	var lines []Line
	lineStart := para.Glyphs[0]
	lastFit := -1
	g := para.Glyphs[0]
	bi := 0
	flush := func(end int) {
		if end <= lineStart {
			end = lineStart + 1
		}
		ln := para
		ln.Glyphs = [2]int{lineStart, end}
		ln.Range = [2]int{l.glyphs[lineStart].Range[0], byteEnd(l.glyphs[lineStart:end])}
		ln.Width = l.visibleWidth(lineStart, end)
		lines = append(lines, ln)
		lineStart = end
		lastFit = -1
	}
	for g < para.Glyphs[1] {
		// advance to the break opportunity at or after this glyph
		for bi < len(breaks) && breaks[bi].Byte <= l.glyphs[g].Range[0] {
			bi++
		}
		segEnd := para.Glyphs[1]
		if bi < len(breaks) {
			segEnd = g
			for segEnd < para.Glyphs[1] && l.glyphs[segEnd].Range[1] <= breaks[bi].Byte {
				segEnd++
			}
		}
		if l.visibleWidth(lineStart, segEnd) <= maxW {
			lastFit = segEnd
			g = segEnd
			continue
		}
		if lastFit > lineStart {
			flush(lastFit)
			continue
		}
		// no opportunity fits: break at the first overflowing glyph
		ov := lineStart + 1
		for ov < segEnd && l.visibleWidth(lineStart, ov+1) <= maxW {
			ov++
		}
		flush(ov)
	}
	if lineStart < para.Glyphs[1] || len(lines) == 0 {
		flush(para.Glyphs[1])
	}
	return lines
}

func byteEnd(glyphs []Glyph) int {
	end := 0
	for i := range glyphs {
		end = max(end, glyphs[i].Range[1])
	}
	return end
}

// positionLines assigns each line its y baseline and aligned x
// offset, and rebases glyph positions from run space to layout space.
func (l *TextLayout) positionLines() {
	y := -alignFrac(l.settings.Align[1]) * l.totalHeight()
	fx := alignFrac(l.settings.Align[0])
	for i := range l.lines {
		ln := &l.lines[i]
		y += ln.Ascent
		ln.Y = y
		ln.X = -fx * ln.Width
		var startX float32
		if ln.Glyphs[0] < ln.Glyphs[1] {
			startX = l.glyphs[ln.Glyphs[0]].Pos[0]
		}
		for g := ln.Glyphs[0]; g < ln.Glyphs[1]; g++ {
			l.glyphs[g].Pos[0] += ln.X - startX
			l.glyphs[g].Pos[1] += y
		}
		y += ln.Descent + ln.LineGap
	}
}

// applyStyles colors glyphs and produces selection rects from the
// source style spans. The default color applies first, then spans in
// insertion order.
func (l *TextLayout) applyStyles() {
	l.rects = l.rects[:0]
	def := l.src.Style().Color
	for i := range l.glyphs {
		l.glyphs[i].Color = def
	}
	for _, span := range l.src.StyleSpans() {
		switch span.Kind {
		case SpanColor:
			l.recolor(span.Range, span.Color)
		case SpanSelection:
			l.selectionRects(span)
			if span.HasForeground {
				l.recolor(span.Range, span.Foreground)
			}
		}
	}
}

func (l *TextLayout) recolor(rng [2]int, c colors.Color) {
	// continuation glyphs (empty range) take the color of their
	// cluster head
	in := false
	for i := range l.glyphs {
		g := &l.glyphs[i]
		if g.Range[1] > g.Range[0] {
			in = g.Range[0] >= rng[0] && g.Range[0] < rng[1]
		}
		if in {
			g.Color = c
		}
	}
}

func (l *TextLayout) selectionRects(span StyleSpan) {
	for i := range l.lines {
		ln := &l.lines[i]
		a := max(span.Range[0], ln.Range[0])
		b := min(span.Range[1], ln.Range[1])
		if a >= b {
			continue
		}
		x0 := float32(math32.MaxFloat32)
		x1 := float32(-math32.MaxFloat32)
		in := false
		for g := ln.Glyphs[0]; g < ln.Glyphs[1]; g++ {
			gl := &l.glyphs[g]
			if gl.Range[1] > gl.Range[0] {
				in = gl.Range[0] >= a && gl.Range[0] < b
			}
			if in {
				x0 = math32.Min(x0, gl.Pos[0])
				x1 = math32.Max(x1, gl.Pos[0]+gl.Width)
			}
		}
		if x0 > x1 {
			continue
		}
		l.rects = append(l.rects, StyleRect{
			Rect:  [4]float32{x0, ln.Y - ln.Ascent, x1, ln.Y + ln.Descent},
			Color: span.Background,
		})
	}
}

// LineForByte returns the index of the line containing the byte
// index, clamping out of range indices.
func (l *TextLayout) LineForByte(i int) int {
	n := len(l.lines)
	if n == 0 {
		return 0
	}
	li := sort.Search(n, func(k int) bool { return l.lines[k].Range[1] > i })
	if li >= n {
		return n - 1
	}
	return li
}

// LineFromY returns the index of the line at y, relative to the
// layout anchor, clamping beyond the first and last line.
func (l *TextLayout) LineFromY(y float32) int {
	n := len(l.lines)
	if n == 0 {
		return 0
	}
	for i := range l.lines {
		ln := &l.lines[i]
		if y < ln.Y+ln.Descent+ln.LineGap {
			return i
		}
	}
	return n - 1
}

// clusterRange returns the byte range of the cluster the glyph
// belongs to. Glyphs with an empty range defer to the carrying glyph
// at the start of the cluster.
func (l *TextLayout) clusterRange(g int) [2]int {
	for g > 0 && l.glyphs[g].Range[0] == l.glyphs[g].Range[1] {
		g--
	}
	return l.glyphs[g].Range
}

// ByteIndexFromX returns the byte index of the caret position closest
// to x on the given line. The caret falls after a cluster once x
// passes the middle of its glyph; past the line it sits on the last
// cluster's start.
func (l *TextLayout) ByteIndexFromX(line int, x float32) int {
	if len(l.lines) == 0 {
		return 0
	}
	line = clampInt(line, 0, len(l.lines)-1)
	ln := &l.lines[line]
	a, b := ln.Glyphs[0], ln.Glyphs[1]
	if a >= b {
		return ln.Range[0]
	}
	// linear scan: marks can sit left of the pen position, so glyph
	// x is not monotonic
	for g := a; g < b; g++ {
		gl := &l.glyphs[g]
		if gl.Width <= 0 {
			continue
		}
		if x < gl.Pos[0]+gl.Width {
			rng := l.clusterRange(g)
			if x > gl.Pos[0]+gl.Width/2 && g+1 < b {
				return rng[1]
			}
			return rng[0]
		}
	}
	return l.clusterRange(b - 1)[0]
}

// PixelPositionFromByte returns the caret position for the byte
// index: the x of its cluster boundary and the top of its line,
// relative to the layout anchor.
func (l *TextLayout) PixelPositionFromByte(i int) [2]float32 {
	if len(l.lines) == 0 {
		return [2]float32{}
	}
	li := l.LineForByte(i)
	ln := &l.lines[li]
	x := ln.X
	for g := ln.Glyphs[0]; g < ln.Glyphs[1]; g++ {
		gl := &l.glyphs[g]
		if gl.Range[1] > gl.Range[0] && i >= gl.Range[0] && i < gl.Range[1] {
			// left edge of the cluster, including its continuation
			// glyphs
			x = gl.Pos[0]
			for p := g + 1; p < ln.Glyphs[1]; p++ {
				nxt := &l.glyphs[p]
				if nxt.Range[0] != nxt.Range[1] || nxt.Range[0] != gl.Range[0] {
					break
				}
				x = math32.Min(x, nxt.Pos[0])
			}
			break
		}
		x = math32.Max(x, gl.Pos[0]+gl.Width)
	}
	return [2]float32{x, ln.Y - ln.Ascent}
}

// ByteIndexFromPosition resolves a point relative to the layout
// anchor to a caret byte index.
func (l *TextLayout) ByteIndexFromPosition(pos [2]float32) int {
	return l.ByteIndexFromX(l.LineFromY(pos[1]), pos[0])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
