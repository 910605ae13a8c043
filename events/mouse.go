// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/uix/math32"
)

// Mouse is a basic mouse event for button presses, releases, and moves.
type Mouse struct {
	// Typ is the type of this event (MouseDown, MouseUp, MouseMove).
	Typ Types

	// Button is the mouse button involved, NoButton for moves.
	Button Buttons

	// Where is the screen position of the event.
	Where math32.Vector2
}

// NewMouse returns a new [Mouse] button event of the given type.
func NewMouse(typ Types, but Buttons, where math32.Vector2) *Mouse {
	return &Mouse{Typ: typ, Button: but, Where: where}
}

// NewMouseMove returns a new [Mouse] move event at the given position.
func NewMouseMove(where math32.Vector2) *Mouse {
	return &Mouse{Typ: MouseMove, Where: where}
}

func (ev *Mouse) Type() Types {
	return ev.Typ
}

func (ev *Mouse) HasPos() bool {
	return true
}

func (ev *Mouse) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Typ, ev.Button, ev.Where)
}
