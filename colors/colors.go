// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the RGBA color type shared by graphics,
// text styling and style sheets.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGBA returns the color with the given channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA returns the color as an [image/color.NRGBA].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, c.A}
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// FromHex parses a hex color of the form "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional. The six digit form is fully opaque.
func FromHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 6:
		n, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
		}
		return Color{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, nil
	case 8:
		n, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
		}
		return Color{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
	}
	return Color{}, fmt.Errorf("colors: invalid hex color %q: must have 6 or 8 digits", s)
}

// MustFromHex is [FromHex] that panics on a malformed literal.
func MustFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalText parses the hex forms accepted by [FromHex], so the
// type can be used directly in decoded documents.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText renders the color in the form accepted by [FromHex].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
