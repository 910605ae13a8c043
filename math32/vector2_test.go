// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)
}

func TestVector2Math(t *testing.T) {
	assert.Equal(t, Vec2(4, 6), Vec2(1, 2).Add(Vec2(3, 4)))
	assert.Equal(t, Vec2(-2, -2), Vec2(1, 2).Sub(Vec2(3, 4)))
	assert.Equal(t, Vec2(3, 8), Vec2(1, 2).Mul(Vec2(3, 4)))
	assert.Equal(t, Vec2(2, 4), Vec2(4, 8).DivScalar(2))
	assert.Equal(t, Vec2(350, 275), Vec2(700, 550).MulScalar(0.5))
	assert.Equal(t, Vec2(-1, 2), Vec2(1, -2).Negate())
	assert.Equal(t, Vec2(1, 2), Vec2(1, 4).Min(Vec2(3, 2)))
	assert.Equal(t, Vec2(3, 4), Vec2(1, 4).Max(Vec2(3, 2)))
	assert.Equal(t, Vec2(1, 2), Vec2(0, 3).Clamp(Vec2(1, 1), Vec2(2, 2)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
}

func TestVector2Conversions(t *testing.T) {
	assert.Equal(t, image.Pt(3, 4), Vec2(3.6, 4.2).ToPoint())
	assert.Equal(t, image.Pt(4, 5), Vec2(3.6, 4.2).ToPointCeil())
	assert.Equal(t, fixed.P(2, 3), Vec2(2, 3).ToFixed())
	assert.Equal(t, "(1, 2)", Vec2(1, 2).String())
}
