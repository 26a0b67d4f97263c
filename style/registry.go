// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"log/slog"

	"github.com/Rodrigodd/giui-sub001/graphics"
)

// Registry holds named graphic prototypes. Prototypes are never
// handed out directly: [Registry.Graphic] instantiates an
// independent copy each time, so controls can re-tint their graphic
// without affecting each other. Like the rest of the toolkit the
// registry is not synchronized.
type Registry struct {
	protos map[string]graphics.Graphic
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{protos: map[string]graphics.Graphic{}}
}

// Register adds or replaces the prototype under name.
func (r *Registry) Register(name string, g graphics.Graphic) {
	r.protos[name] = g
}

// Has reports whether a prototype is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.protos[name]
	return ok
}

// Graphic instantiates a copy of the named prototype. An unknown
// name returns nil.
func (r *Registry) Graphic(name string) graphics.Graphic {
	g, ok := r.protos[name]
	if !ok {
		slog.Warn("style.Registry.Graphic: unknown style", "name", name)
		return nil
	}
	return graphics.Clone(g)
}

// LoadSheet builds every graphic in the sheet through res and
// registers the results, replacing prototypes with the same names.
// On error the registry is left unchanged.
func (r *Registry) LoadSheet(s Sheet, res Resources) error {
	gs, err := s.Build(res)
	if err != nil {
		return err
	}
	for name, g := range gs {
		r.protos[name] = g
	}
	return nil
}
