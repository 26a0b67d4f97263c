// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "fmt"

// Id is a generational handle to a control. The zero Id never names a
// control, so it doubles as the "no control" value in fields and
// return values.
//
// An Id stays comparable and cheap to copy. After the control it
// names is removed, the slot's generation is bumped and every
// surviving copy of the Id goes stale: operations on it are ignored
// and logged at debug level.
type Id struct {
	index      uint32
	generation uint32
}

// Root is the id of the root control. The root always exists, is
// always active, and cannot be removed; removing it removes all of
// its children instead.
var Root = Id{index: 0, generation: 1}

// IsZero reports whether the id is the zero "no control" value.
func (i Id) IsZero() bool {
	return i == Id{}
}

// Index returns the arena slot index of the id.
func (i Id) Index() int {
	return int(i.index)
}

func (i Id) String() string {
	return fmt.Sprintf("%v:%v", i.generation, i.index)
}
