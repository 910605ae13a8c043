// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(10, 20, 110, 70)
	assert.Equal(t, Vec2(100, 50), b.Size())
	assert.Equal(t, Vec2(60, 45), b.Center())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2Empty().IsEmpty())

	assert.Equal(t, B2(0, 0, 8, 4), B2FromRect(image.Rect(0, 0, 8, 4)))
	assert.Equal(t, image.Rect(10, 20, 110, 70), b.ToRect())
}

func TestBox2Contains(t *testing.T) {
	b := B2(10, 20, 110, 70)
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.True(t, b.ContainsPoint(Vec2(60, 45)))
	assert.True(t, b.ContainsPoint(Vec2(110, 70)))
	assert.False(t, b.ContainsPoint(Vec2(111, 45)))
	assert.False(t, b.ContainsPoint(Vec2(60, 19)))

	assert.True(t, b.ContainsBox(B2(20, 30, 40, 50)))
	assert.False(t, b.ContainsBox(B2(0, 0, 40, 50)))
	assert.True(t, b.IntersectsBox(B2(0, 0, 40, 50)))
	assert.False(t, b.IntersectsBox(B2(200, 200, 300, 300)))
}

func TestBox2Expand(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 2, 1, 5), b)

	b.ExpandByBox(B2(0, 0, 10, 10))
	assert.Equal(t, B2(-1, 0, 10, 10), b)

	assert.Equal(t, B2(0, 0, 5, 5), B2(0, 0, 2, 2).Union(B2(1, 1, 5, 5)))
	assert.Equal(t, B2(5, 5, 7, 7), B2(0, 0, 2, 2).Translate(Vec2(5, 5)))
}
