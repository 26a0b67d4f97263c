// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "reflect"

// Listeners registers lists of listener functions keyed by the
// dynamic type of the event value. Listeners are closures with all
// context captured, registered on the engine by the application.
type Listeners map[reflect.Type][]func(ev any)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[reflect.Type][]func(any))
}

// AddType adds a listener for events of the given type.
func (ls *Listeners) AddType(typ reflect.Type, fun func(any)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Add registers a listener for events of type T.
func Add[T any](ls *Listeners, fun func(ev T)) {
	ls.AddType(reflect.TypeOf((*T)(nil)).Elem(), func(ev any) {
		fun(ev.(T))
	})
}

// Call delivers the event to every listener registered for its type,
// in registration order, and reports how many listeners ran.
func (ls Listeners) Call(ev any) int {
	if ls == nil || ev == nil {
		return 0
	}
	fns := ls[reflect.TypeOf(ev)]
	for _, fun := range fns {
		fun(ev)
	}
	return len(fns)
}
