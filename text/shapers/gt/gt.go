// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gt implements the go-text/typesetting shaping backend, with
// harfbuzz shaping, script segmentation and font fallback. Fonts used
// with it must carry [fonts.OpenType] faces.
package gt

import (
	"fmt"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/Rodrigodd/giui-sub001/text"
	"github.com/Rodrigodd/giui-sub001/text/fonts"
)

// Shaper is the go-text shaping backend. It is stateful scratch space
// and not safe for concurrent use; give each goroutine its own.
type Shaper struct {
	shaper   shaping.HarfbuzzShaper
	splitter shaping.Segmenter
}

// New returns a new shaper.
func New() *Shaper {
	return &Shaper{}
}

// chainEntry is one font of a fallback chain with its opentype face.
type chainEntry struct {
	id fonts.FontId
	ot *fonts.OpenType
}

// resolver implements shaping.Fontmap over a fallback chain.
type resolver struct {
	chain []chainEntry
}

func newResolver(id fonts.FontId, fts *fonts.Fonts) (*resolver, error) {
	rv := &resolver{}
	for {
		f := fts.Get(id)
		ot, ok := f.Face().(*fonts.OpenType)
		if !ok {
			if len(rv.chain) == 0 {
				return nil, fmt.Errorf("gt: font %d is not an opentype face", id)
			}
			// skip fallbacks the backend cannot shape with
		} else {
			rv.chain = append(rv.chain, chainEntry{id: id, ot: ot})
		}
		fb, ok := f.Fallback()
		if !ok {
			return rv, nil
		}
		id = fb
	}
}

// ResolveFace returns the face of the first font in the chain that
// covers the rune, or the primary face when none does.
func (rv *resolver) ResolveFace(r rune) *font.Face {
	for i := range rv.chain {
		if rv.chain[i].ot.HasGlyph(r) {
			return rv.chain[i].ot.Face()
		}
	}
	return rv.chain[0].ot.Face()
}

// entryFor maps a face picked by the splitter back to its chain
// entry.
func (rv *resolver) entryFor(face *font.Face) chainEntry {
	for i := range rv.chain {
		if rv.chain[i].ot.Face() == face {
			return rv.chain[i]
		}
	}
	return rv.chain[0]
}

// Shape implements [text.Shaper].
func (s *Shaper) Shape(run string, size float32, fontId fonts.FontId, fts *fonts.Fonts) ([]text.Glyph, error) {
	if run == "" {
		return nil, nil
	}
	rv, err := newResolver(fontId, fts)
	if err != nil {
		return nil, err
	}

	runes := []rune(run)
	runeByte := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		runeByte[i] = b
		b += len(string(r))
	}
	runeByte[len(runes)] = b

	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      rv.chain[0].ot.Face(),
		Size:      fonts.ToFixed(rv.chain[0].ot.EmSize(size)),
	}

	var glyphs []text.Glyph
	var pen float32
	// index of the glyph carrying the current cluster's byte range
	carrier := -1
	for _, sub := range s.splitter.Split(in, rv) {
		if sub.Face == nil {
			continue
		}
		entry := rv.entryFor(sub.Face)
		sub.Size = fonts.ToFixed(entry.ot.EmSize(size))
		out := s.shaper.Shape(sub)
		for _, g := range out.Glyphs {
			cluster := runeByte[g.ClusterIndex]
			rng := [2]int{cluster, len(run)}
			if carrier >= 0 && glyphs[carrier].Range[0] == cluster {
				// continuation glyph of the same cluster: the first
				// glyph keeps the full range, the rest get an empty
				// one
				rng = [2]int{cluster, cluster}
			} else {
				if carrier >= 0 {
					glyphs[carrier].Range[1] = max(glyphs[carrier].Range[0], cluster)
				}
				carrier = len(glyphs)
			}
			adv := fonts.FromFixed(g.XAdvance)
			glyphs = append(glyphs, text.Glyph{
				ID:         uint32(g.GlyphID),
				Font:       entry.id,
				Pos:        [2]float32{pen + fonts.FromFixed(g.XOffset), -fonts.FromFixed(g.YOffset)},
				Width:      adv,
				Range:      rng,
				Whitespace: unicode.IsSpace(runes[g.ClusterIndex]),
			})
			pen += adv
		}
	}
	return glyphs, nil
}
