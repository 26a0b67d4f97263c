// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Rodrigodd/giui-sub001/base/errors"
	"github.com/Rodrigodd/giui-sub001/colors"
	"github.com/Rodrigodd/giui-sub001/graphics"
	"github.com/Rodrigodd/giui-sub001/text"
)

// Sheet maps graphic names to their descriptors, as parsed from a
// TOML or YAML document. The same descriptor shapes work in both
// formats:
//
//	[button-normal.panel]
//	texture = "button.png"
//	uv_rect = [0, 0, 30, 30]
//	border = 10
//
//	button-normal:
//	  panel:
//	    texture: button.png
//	    uv_rect: [0, 0, 30, 30]
//	    border: 10
type Sheet map[string]Desc

// Desc describes one graphic. Exactly one of the kind fields is set.
type Desc struct {
	Panel   *PanelDesc   `toml:"panel,omitempty" yaml:"panel,omitempty"`
	Texture *TextureDesc `toml:"texture,omitempty" yaml:"texture,omitempty"`
	Icon    *IconDesc    `toml:"icon,omitempty" yaml:"icon,omitempty"`
	Text    *TextDesc    `toml:"text,omitempty" yaml:"text,omitempty"`
}

// PanelDesc describes a nine-slice [graphics.Panel]. UVRect is
// [x, y, width, height] in pixels of the named texture. Border is a
// single width for all four sides or a [left, top, right, bottom]
// array.
type PanelDesc struct {
	Texture string `toml:"texture" yaml:"texture"`
	UVRect  any    `toml:"uv_rect" yaml:"uv_rect"`
	Border  any    `toml:"border,omitempty" yaml:"border,omitempty"`
	Color   any    `toml:"color,omitempty" yaml:"color,omitempty"`
}

// TextureDesc describes a stretched [graphics.Texture]. UVRect is
// [x, y, width, height] in pixels of the named texture.
type TextureDesc struct {
	Texture string `toml:"texture" yaml:"texture"`
	UVRect  any    `toml:"uv_rect" yaml:"uv_rect"`
	Color   any    `toml:"color,omitempty" yaml:"color,omitempty"`
}

// IconDesc describes a fixed-size centered [graphics.Icon]. UVRect is
// [x, y, width, height] in pixels of the named texture and Size is
// the drawn [width, height] in pixels.
type IconDesc struct {
	Texture string `toml:"texture" yaml:"texture"`
	UVRect  any    `toml:"uv_rect" yaml:"uv_rect"`
	Size    any    `toml:"size" yaml:"size"`
	Color   any    `toml:"color,omitempty" yaml:"color,omitempty"`
}

// TextDesc describes a [graphics.Text]. Font is a font name resolved
// through [Resources.LoadFont]. Align is a [horizontal, vertical]
// pair of -1 (start), 0 (center) or 1 (end), defaulting to centered.
type TextDesc struct {
	Text     string `toml:"text,omitempty" yaml:"text,omitempty"`
	Font     string `toml:"font" yaml:"font"`
	FontSize any    `toml:"font_size" yaml:"font_size"`
	Align    any    `toml:"align,omitempty" yaml:"align,omitempty"`
	Color    any    `toml:"color,omitempty" yaml:"color,omitempty"`
}

// ParseTOML parses a TOML style sheet.
func ParseTOML(data []byte) (Sheet, error) {
	var s Sheet
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("style: parse toml: %w", err)
	}
	return s, nil
}

// ParseYAML parses a YAML style sheet.
func ParseYAML(data []byte) (Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("style: parse yaml: %w", err)
	}
	return s, nil
}

// Clone returns a deep copy of the sheet.
func (s Sheet) Clone() Sheet {
	out := make(Sheet, len(s))
	err := copier.CopyWithOption(&out, &s, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("style.Sheet.Clone", "err", err)
	}
	return out
}

// Build resolves every descriptor into a graphic, loading textures
// and fonts through res. When res implements [GraphicModifier], each
// graphic passes through it before being returned.
func (s Sheet) Build(res Resources) (map[string]graphics.Graphic, error) {
	out := make(map[string]graphics.Graphic, len(s))
	for name, d := range s {
		g, err := d.build(res)
		if err != nil {
			return nil, fmt.Errorf("style: style %q: %w", name, err)
		}
		if m, ok := res.(GraphicModifier); ok {
			g = m.ModifyGraphic(g)
		}
		out[name] = g
	}
	return out, nil
}

func (d Desc) build(res Resources) (graphics.Graphic, error) {
	set := 0
	for _, kind := range []bool{d.Panel != nil, d.Texture != nil, d.Icon != nil, d.Text != nil} {
		if kind {
			set++
		}
	}
	if set == 0 {
		return nil, errors.New("missing graphic kind (panel, texture, icon or text)")
	}
	if set > 1 {
		return nil, errors.New("more than one graphic kind")
	}
	switch {
	case d.Panel != nil:
		return d.Panel.build(res)
	case d.Texture != nil:
		return d.Texture.build(res)
	case d.Icon != nil:
		return d.Icon.build(res)
	default:
		return d.Text.build(res)
	}
}

func (d *PanelDesc) build(res Resources) (graphics.Graphic, error) {
	tex, uv, err := loadTexture(res, d.Texture, d.UVRect)
	if err != nil {
		return nil, err
	}
	border, err := parseBorder(d.Border)
	if err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	c, err := parseColor(d.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	return graphics.NewPanel(tex, uv, border).WithColor(c), nil
}

func (d *TextureDesc) build(res Resources) (graphics.Graphic, error) {
	tex, uv, err := loadTexture(res, d.Texture, d.UVRect)
	if err != nil {
		return nil, err
	}
	c, err := parseColor(d.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	return graphics.NewTexture(tex, uv).WithColor(c), nil
}

func (d *IconDesc) build(res Resources) (graphics.Graphic, error) {
	tex, uv, err := loadTexture(res, d.Texture, d.UVRect)
	if err != nil {
		return nil, err
	}
	if d.Size == nil {
		return nil, errors.New("missing size")
	}
	size, err := nums(d.Size, 2)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	c, err := parseColor(d.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	return graphics.NewIcon(tex, uv, [2]float32{size[0], size[1]}).WithColor(c), nil
}

func (d *TextDesc) build(res Resources) (graphics.Graphic, error) {
	if d.Font == "" {
		return nil, errors.New("missing font")
	}
	font, err := res.LoadFont(d.Font)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", d.Font, err)
	}
	if d.FontSize == nil {
		return nil, errors.New("missing font_size")
	}
	size, ok := num(d.FontSize)
	if !ok {
		return nil, fmt.Errorf("font_size: expected a number, got %T", d.FontSize)
	}
	align, err := parseAlign(d.Align)
	if err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}
	c, err := parseColor(d.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	return graphics.NewText(d.Text, align, text.Style{
		Color:    c,
		FontSize: size,
		Font:     font,
	}), nil
}

// loadTexture resolves a texture name and normalizes its pixel-space
// uv rect by the returned size.
func loadTexture(res Resources, name string, uvRect any) (uint32, [4]float32, error) {
	if name == "" {
		return 0, [4]float32{}, errors.New("missing texture")
	}
	handle, w, h, err := res.LoadTexture(name)
	if err != nil {
		return 0, [4]float32{}, fmt.Errorf("load texture %q: %w", name, err)
	}
	if w == 0 || h == 0 {
		return 0, [4]float32{}, fmt.Errorf("texture %q has zero size", name)
	}
	if uvRect == nil {
		return 0, [4]float32{}, errors.New("missing uv_rect")
	}
	px, err := nums(uvRect, 4)
	if err != nil {
		return 0, [4]float32{}, fmt.Errorf("uv_rect: %w", err)
	}
	uv := [4]float32{
		px[0] / float32(w),
		px[1] / float32(h),
		px[2] / float32(w),
		px[3] / float32(h),
	}
	return handle, uv, nil
}

// num converts a decoded scalar to float32. TOML integers decode as
// int64 and YAML integers as int, so both are accepted.
func num(v any) (float32, bool) {
	switch n := v.(type) {
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	case float32:
		return n, true
	case float64:
		return float32(n), true
	}
	return 0, false
}

// nums converts a decoded array of exactly want scalars.
func nums(v any, want int) ([]float32, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of %d numbers, got %T", want, v)
	}
	if len(arr) != want {
		return nil, fmt.Errorf("expected %d numbers, got %d", want, len(arr))
	}
	out := make([]float32, want)
	for i, e := range arr {
		f, ok := num(e)
		if !ok {
			return nil, fmt.Errorf("expected a number, got %T", e)
		}
		out[i] = f
	}
	return out, nil
}

// parseColor accepts "#RRGGBB", "#RRGGBBAA" and [r, g, b, a] arrays
// with 0-255 components. Nil yields white.
func parseColor(v any) (colors.Color, error) {
	switch c := v.(type) {
	case nil:
		return colors.White, nil
	case string:
		return colors.FromHex(c)
	}
	n, err := nums(v, 4)
	if err != nil {
		return colors.Color{}, err
	}
	for _, e := range n {
		if e < 0 || e > 255 {
			return colors.Color{}, fmt.Errorf("component %v out of range 0-255", e)
		}
	}
	return colors.RGBA(uint8(n[0]), uint8(n[1]), uint8(n[2]), uint8(n[3])), nil
}

// parseBorder accepts one width for all four sides or a
// [left, top, right, bottom] array. Nil yields no border.
func parseBorder(v any) ([4]float32, error) {
	if v == nil {
		return [4]float32{}, nil
	}
	if f, ok := num(v); ok {
		return [4]float32{f, f, f, f}, nil
	}
	n, err := nums(v, 4)
	if err != nil {
		return [4]float32{}, err
	}
	return [4]float32{n[0], n[1], n[2], n[3]}, nil
}

// parseAlign accepts a [horizontal, vertical] pair of -1, 0 or 1.
// Nil yields centered.
func parseAlign(v any) ([2]int8, error) {
	if v == nil {
		return [2]int8{}, nil
	}
	n, err := nums(v, 2)
	if err != nil {
		return [2]int8{}, err
	}
	var out [2]int8
	for i, e := range n {
		if e != -1 && e != 0 && e != 1 {
			return [2]int8{}, fmt.Errorf("value %v is not -1, 0 or 1", e)
		}
		out[i] = int8(e)
	}
	return out, nil
}
