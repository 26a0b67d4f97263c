// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes and modifier flags carried by
// keyboard events. The set of codes is the one the canonical widgets
// need; window integrations map their native codes onto it.
package key

import "strings"

// Modifiers are the currently held modifier keys, as a bitmask.
type Modifiers int64

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// HasAll reports whether all given modifiers are held.
func (m Modifiers) HasAll(mods Modifiers) bool {
	return m&mods == mods
}

// HasAny reports whether any of the given modifiers is held.
func (m Modifiers) HasAny(mods Modifiers) bool {
	return m&mods != 0
}

func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range [...]struct {
		bit  Modifiers
		name string
	}{{Control, "Control"}, {Shift, "Shift"}, {Alt, "Alt"}, {Meta, "Meta"}} {
		if m&f.bit != 0 {
			if sb.Len() > 0 {
				sb.WriteByte('+')
			}
			sb.WriteString(f.name)
		}
	}
	return sb.String()
}

// Code identifies a physical key independent of modifier state.
type Code int32

const (
	CodeUnknown Code = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	CodeSpace
	CodeTab
	CodeReturn
	CodeEscape
	CodeBackspace
	CodeDelete

	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
)

var codeNames = map[Code]string{
	CodeUnknown:   "Unknown",
	CodeSpace:     "Space",
	CodeTab:       "Tab",
	CodeReturn:    "Return",
	CodeEscape:    "Escape",
	CodeBackspace: "Backspace",
	CodeDelete:    "Delete",
	CodeLeft:      "Left",
	CodeRight:     "Right",
	CodeUp:        "Up",
	CodeDown:      "Down",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PageUp",
	CodePageDown:  "PageDown",
}

func (c Code) String() string {
	if c >= CodeA && c <= CodeZ {
		return string(rune('A' + (c - CodeA)))
	}
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Unknown"
}
