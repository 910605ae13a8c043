// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolAddGet(t *testing.T) {
	p := Pool[string]{}
	a := p.Add("a")
	b := p.Add("b")
	assert.Equal(t, 2, p.Len())
	assert.NotEqual(t, a, b)

	v, ok := p.Get(a)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = p.Get(b)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestPoolNilHandle(t *testing.T) {
	p := Pool[string]{}
	var h Handle
	assert.True(t, h.IsNil())
	assert.False(t, h.IsSome())
	assert.False(t, p.Alive(h))

	_, ok := p.Get(h)
	assert.False(t, ok)
	_, ok = p.Remove(h)
	assert.False(t, ok)

	h = p.Add("a")
	assert.False(t, h.IsNil())
	assert.True(t, h.IsSome())
}

func TestPoolRemoveStale(t *testing.T) {
	p := Pool[int]{}
	a := p.Add(1)
	v, ok := p.Remove(a)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, p.Len())

	// stale handle must not resolve, even after the slot is reused
	assert.False(t, p.Alive(a))
	b := p.Add(2)
	assert.False(t, p.Alive(a))
	assert.True(t, p.Alive(b))
	_, ok = p.Get(a)
	assert.False(t, ok)

	// double remove is a no-op
	_, ok = p.Remove(a)
	assert.False(t, ok)
	assert.Equal(t, 1, p.Len())
}

func TestPoolAll(t *testing.T) {
	p := Pool[int]{}
	a := p.Add(1)
	p.Add(2)
	c := p.Add(3)
	p.Remove(a)

	got := map[int]bool{}
	for h, v := range p.All() {
		assert.True(t, p.Alive(h))
		got[v] = true
	}
	assert.Equal(t, map[int]bool{2: true, 3: true}, got)

	v, ok := p.Get(c)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
