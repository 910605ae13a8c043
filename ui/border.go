// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "cogentcore.org/uix/pool"

// Border is a container that renders a stroked outline around its
// single child. It is the permanent body wrapper of a [Popup].
type Border struct {
	WidgetBase

	// StrokeWidth is the width of the outline stroke.
	StrokeWidth float32
}

// RawCopy returns a deep copy of this border.
func (bd *Border) RawCopy() Node {
	c := &Border{}
	nodeCopy(c, bd)
	return c
}

// BorderBuilder builds a [Border] container.
type BorderBuilder struct {
	// Widget is the base widget configuration.
	Widget *WidgetBuilder

	// StrokeWidth is the outline stroke width. Defaults to 1.
	StrokeWidth float32

	// Child is the single wrapped child, nil for an empty border.
	Child pool.Handle
}

// NewBorderBuilder returns a new [BorderBuilder] with default settings.
func NewBorderBuilder() *BorderBuilder {
	return &BorderBuilder{Widget: NewWidgetBuilder(), StrokeWidth: 1}
}

// SetStrokeWidth sets the outline stroke width.
func (b *BorderBuilder) SetStrokeWidth(width float32) *BorderBuilder {
	b.StrokeWidth = width
	return b
}

// SetChild sets the single wrapped child. A nil handle is allowed and
// leaves the border empty.
func (b *BorderBuilder) SetChild(child pool.Handle) *BorderBuilder {
	b.Child = child
	return b
}

// Build registers the border and returns its handle.
func (b *BorderBuilder) Build(ui *Interface) pool.Handle {
	bd := &Border{
		WidgetBase:  b.Widget.AddChild(b.Child).Base(),
		StrokeWidth: b.StrokeWidth,
	}
	return ui.AddNode(bd)
}
