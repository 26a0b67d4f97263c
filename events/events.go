// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input event types the engine routes to
// control behaviours, and a typed listener registry for application
// level events.
package events

import (
	"fmt"

	"github.com/Rodrigodd/giui-sub001/events/key"
)

// MouseButton is a mouse button, or [NoButton] for events that do not
// involve one.
type MouseButton int8

const (
	NoButton MouseButton = iota
	LeftButton
	MiddleButton
	RightButton
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "Left"
	case MiddleButton:
		return "Middle"
	case RightButton:
		return "Right"
	}
	return "None"
}

// MouseEvent is the kind of a mouse event delivered to a behaviour.
type MouseEvent int8

const (
	MouseNone MouseEvent = iota
	MouseEnter
	MouseExit
	MouseMoved
	MouseDown
	MouseUp
)

func (e MouseEvent) String() string {
	switch e {
	case MouseEnter:
		return "Enter"
	case MouseExit:
		return "Exit"
	case MouseMoved:
		return "Moved"
	case MouseDown:
		return "Down"
	case MouseUp:
		return "Up"
	}
	return "None"
}

// ButtonState is the pressed state of the buttons of one pointer.
// It is updated before an Up event is delivered, so a handler for Up
// already observes the button released.
type ButtonState struct {
	Left, Middle, Right bool
}

// Pressed reports the state of the given button.
func (s ButtonState) Pressed(b MouseButton) bool {
	switch b {
	case LeftButton:
		return s.Left
	case MiddleButton:
		return s.Middle
	case RightButton:
		return s.Right
	}
	return false
}

func (s *ButtonState) set(b MouseButton, pressed bool) {
	switch b {
	case LeftButton:
		s.Left = pressed
	case MiddleButton:
		s.Middle = pressed
	case RightButton:
		s.Right = pressed
	}
}

// Set returns the state with the given button set. It is meant for
// the router and for tests that synthesize events.
func (s ButtonState) Set(b MouseButton, pressed bool) ButtonState {
	s.set(b, pressed)
	return s
}

// MouseInfo is the mouse event payload delivered to
// [Behaviour.OnMouseEvent]. One MouseInfo describes one pointer; on
// platforms with touch input each contact is a distinct pointer id
// with independent position, button and click state.
type MouseInfo struct {
	// Event is the kind of this event.
	Event MouseEvent

	// Button is the button of a Down or Up event, NoButton otherwise.
	Button MouseButton

	// Pointer is the id of the mouse or touch contact this event
	// belongs to.
	Pointer uint64

	// Pos is the pointer position in surface pixels.
	Pos [2]float32

	// Buttons is the pointer's current button state.
	Buttons ButtonState

	// ClickCount is the pointer's running click count. It is carried
	// on every event: moving onto a different control resets it to 0,
	// a Down more than 500 ms or 4 px away from the previous click
	// resets it to 1.
	ClickCount int

	// Click is set on the Up(Left) that completes a click: the press
	// and release happened in the same control, within 4 px and
	// 500 ms.
	Click bool
}

func (m MouseInfo) String() string {
	s := fmt.Sprintf("%v{Pos: [%g,%g], Pointer: %d, Count: %d", m.Event, m.Pos[0], m.Pos[1], m.Pointer, m.ClickCount)
	if m.Button != NoButton {
		s += ", Button: " + m.Button.String()
	}
	if m.Click {
		s += ", Click"
	}
	return s + "}"
}

// KeyKind discriminates the keyboard event variants.
type KeyKind int8

const (
	KeyDown KeyKind = iota
	KeyUp
	KeyChar
)

// KeyEvent is a keyboard event: a key press or release, or a composed
// character (KeyChar, carrying Rune).
type KeyEvent struct {
	Kind KeyKind
	Code key.Code
	Rune rune
	Mods key.Modifiers
}

func (e KeyEvent) String() string {
	switch e.Kind {
	case KeyUp:
		return fmt.Sprintf("KeyUp{%v, Mods: %v}", e.Code, e.Mods)
	case KeyChar:
		return fmt.Sprintf("KeyChar{%q, Mods: %v}", e.Rune, e.Mods)
	}
	return fmt.Sprintf("KeyDown{%v, Mods: %v}", e.Code, e.Mods)
}
