// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Control events. Sending one of these through [Gui.SendEvent] or
// [Context.SendEvent] drives the engine instead of reaching the
// application listeners.
type (
	// ActiveControl sets the active flag of the control.
	ActiveControl struct{ Id Id }

	// DeactiveControl clears the active flag of the control.
	DeactiveControl struct{ Id Id }

	// RemoveControl removes the control and its whole subtree.
	// Removing [Root] removes all of its children instead.
	RemoveControl struct{ Id Id }

	// SetParent moves the control, and its subtree, under a new
	// parent. Reparenting a control below itself is a cycle and is
	// rejected.
	SetParent struct {
		Id     Id
		Parent Id
	}

	// RequestFocus moves the keyboard focus to the control. A zero id
	// clears it.
	RequestFocus struct{ Id Id }

	// SetLockOver locks mouse event routing of the pointer to the
	// control currently under it, or releases the lock. While locked,
	// the hover walk is skipped and the control hears every mouse
	// event of that pointer, inside its rect or not.
	SetLockOver struct {
		Lock    bool
		Pointer uint64
	}
)

// builtControl commits a deferred builder when the context that
// created it drops.
type builtControl struct{ builder *ControlBuilder }

// Cursor names the pointer cursor the embedder should show. A
// behaviour changes it by sending the value as an event; the embedder
// collects the change with [Gui.TakeCursorChange].
type Cursor int8

const (
	CursorDefault Cursor = iota
	CursorText
	CursorPointer
	CursorCrosshair
	CursorMove
	CursorResizeEW
	CursorResizeNS
	CursorNotAllowed
	CursorWait
)

// lazyEvent is a queued lifecycle hook. The queue is drained by
// lazyUpdate, outside any behaviour dispatch, with layout settled
// before each hook runs.
type lazyKind int8

const (
	lazyOnStart lazyKind = iota
	lazyOnRemove
	lazyOnActive
	lazyOnDeactive
)

type lazyEvent struct {
	kind lazyKind
	id   Id

	// dirtyParent marks the parent layout dirty when a removal
	// unlinks the control, but not when the whole tree is cleared.
	dirtyParent bool
}
