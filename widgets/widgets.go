// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides the canonical behaviours of the toolkit:
// buttons, toggles, sliders, text fields, scroll views, virtualised
// lists, tabs, menus, dropdowns and context menus.
//
// A widget is a plain [core.Behaviour] (some are also their control's
// [core.Layout]) wired in through [core.ControlBuilder.Behaviour]. The
// composite ones take the ids of their child controls at construction,
// so the caller stays in charge of the control tree and of the
// graphics on it; the styles come from package style. Widgets announce
// themselves with the event types below, delivered through
// [core.Gui.TakeEvents] or to a control via OnEvent.
package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
)

// SubmitText announces the text of a TextField being committed with
// Return.
type SubmitText struct {
	Id   core.Id
	Text string
}

// ClearText empties a TextField when sent to it.
type ClearText struct{}

// ToggleChanged announces the state of a Toggle. It is sent when the
// toggle starts and on every flip.
type ToggleChanged struct {
	Id    core.Id
	Value bool
}

// SetValue sets the state of a Toggle when sent to it.
type SetValue struct {
	Value bool
}

// SetScrollPosition scrolls a ScrollView or a List when sent to it.
// Value is the normalized position of the view over the content, 0 at
// the start and 1 at the end.
type SetScrollPosition struct {
	Vertical bool
	Value    float32
}

// UpdateItems makes a List drop its visible items back onto the
// builder, recreating or updating each one. Send it after the model
// behind the builder changed.
type UpdateItems struct{}

// ItemClicked announces a selection in a Menu, MenuBar, Dropdown or
// ContextMenu, delivered to the owner control given when the menu
// opened.
type ItemClicked struct {
	Index int
}

// CloseMenu closes the open popup of a MenuBehaviour, MenuBar,
// Dropdown or ContextMenu when sent to it. The blockers those widgets
// raise send it when the pointer presses outside the popup.
type CloseMenu struct{}
