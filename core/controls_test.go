// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rodrigodd/giui-sub001/core"
)

func TestIdStaysStaleAfterSlotReuse(t *testing.T) {
	g := core.New(200, 200, nil, nil)
	a := g.CreateControl().MinSize([2]float32{10, 10}).Build()
	g.RemoveControl(a)

	// building more controls may reuse a's slot, but never its id
	var fresh []core.Id
	for i := 0; i < 4; i++ {
		fresh = append(fresh, g.CreateControl().Build())
	}
	assert.Equal(t, [4]float32{}, g.Rect(a))
	assert.False(t, g.IsActive(a))
	assert.NotContains(t, fresh, a)
	for _, id := range fresh {
		assert.Equal(t, core.Root, g.Parent(id))
		assert.True(t, g.IsActive(id))
	}
}

func TestRemoveDeepTree(t *testing.T) {
	g := core.New(200, 200, nil, nil)
	var log []string
	p := g.CreateControl().Behaviour(&recorder{name: "p", log: &log}).Build()
	c := g.CreateControl().Parent(p).Behaviour(&recorder{name: "c", log: &log}).Build()
	g.CreateControl().Parent(c).Behaviour(&recorder{name: "gc", log: &log}).Build()

	log = nil
	g.RemoveControl(p)
	require.Equal(t, []string{
		"gc deactive", "c deactive", "p deactive",
		"gc remove", "c remove", "p remove",
	}, log)
	assert.Empty(t, g.Children(core.Root))
}

func TestRemoveBranchKeepsSiblings(t *testing.T) {
	g := core.New(200, 200, nil, nil)
	p := g.CreateControl().Build()
	a := g.CreateControl().Parent(p).Build()
	b := g.CreateControl().Parent(p).Build()
	c := g.CreateControl().Parent(p).Build()

	g.RemoveControl(b)
	assert.Equal(t, []core.Id{a, c}, g.Children(p))
	assert.Equal(t, core.Id{}, g.Parent(b))
	assert.Equal(t, p, g.Parent(a))
	assert.Equal(t, p, g.Parent(c))
}

func TestBuilderBuildTwicePanics(t *testing.T) {
	g := core.New(200, 200, nil, nil)
	b := g.CreateControl()
	b.Build()
	assert.Panics(t, func() { b.Build() })
}

func TestReservedIdUsePanics(t *testing.T) {
	g := core.New(200, 200, nil, nil)
	b := g.CreateControl()
	id := b.Id()
	assert.Panics(t, func() { g.Rect(id) })

	b.Build()
	assert.NotPanics(t, func() { g.Rect(id) })
}
