// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"github.com/Rodrigodd/giui-sub001/core"
	"github.com/Rodrigodd/giui-sub001/events"
)

// OnKeyboardEvent extends a behaviour with a keyboard callback. The
// wrapped control becomes focusable, the inner behaviour keeps
// hearing every event, and a key press goes to the inner behaviour
// first; the callback only sees what it leaves unconsumed.
type OnKeyboardEvent struct {
	core.Behaviour
	onKeyboard func(event events.KeyEvent, this core.Id, ctx *core.Context) bool
}

// NewOnKeyboardEvent creates the adapter around a no-op behaviour.
// Chain [OnKeyboardEvent.Extends] to wrap an existing one.
func NewOnKeyboardEvent(onKeyboard func(event events.KeyEvent, this core.Id, ctx *core.Context) bool) *OnKeyboardEvent {
	return &OnKeyboardEvent{Behaviour: core.BehaviourBase{}, onKeyboard: onKeyboard}
}

// Extends replaces the inner behaviour and returns the adapter.
func (k *OnKeyboardEvent) Extends(inner core.Behaviour) *OnKeyboardEvent {
	k.Behaviour = inner
	return k
}

func (k *OnKeyboardEvent) InputFlags() core.InputFlags {
	return core.InputFocus | core.InputMouse | k.Behaviour.InputFlags()
}

func (k *OnKeyboardEvent) OnKeyboardEvent(event events.KeyEvent, this core.Id, ctx *core.Context) bool {
	return k.Behaviour.OnKeyboardEvent(event, this, ctx) || k.onKeyboard(event, this, ctx)
}
