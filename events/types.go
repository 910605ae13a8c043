// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the raw input samples delivered to widgets
// outside of the routed message queue.
package events

import "cogentcore.org/uix/math32"

// Types determines the type of input event.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See [Mouse.Button] for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// See [Mouse.Button] for which.
	MouseUp

	// MouseMove happens when the mouse is moving with no button down.
	MouseMove
)

func (t Types) String() string {
	switch t {
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	}
	return "UnknownType"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Event is the interface satisfied by all raw input events.
type Event interface {
	// Type returns the type of this event.
	Type() Types

	// HasPos returns whether this event has a screen position.
	HasPos() bool

	// Pos returns the screen position of this event,
	// or the zero vector if it has none.
	Pos() math32.Vector2
}
