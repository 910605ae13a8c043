// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"strconv"

	"cogentcore.org/uix/events"
	"cogentcore.org/uix/math32"
	"cogentcore.org/uix/pool"
)

// Placements are the positioning strategies for a [Popup].
type Placements int32

const (
	// PlacementLeftTop places the popup in the top-left screen corner.
	PlacementLeftTop Placements = iota

	// PlacementRightTop places the popup in the top-right screen corner.
	PlacementRightTop

	// PlacementCenter centers the popup on the screen.
	PlacementCenter

	// PlacementLeftBottom places the popup in the bottom-left screen corner.
	PlacementLeftBottom

	// PlacementRightBottom places the popup in the bottom-right screen corner.
	PlacementRightBottom

	// PlacementCursor places the popup at the cursor position sampled
	// at the time the open transition is processed.
	PlacementCursor

	// PlacementPosition places the popup at the explicit position
	// given in [Placement.Position].
	PlacementPosition
)

func (p Placements) String() string {
	switch p {
	case PlacementLeftTop:
		return "LeftTop"
	case PlacementRightTop:
		return "RightTop"
	case PlacementCenter:
		return "Center"
	case PlacementLeftBottom:
		return "LeftBottom"
	case PlacementRightBottom:
		return "RightBottom"
	case PlacementCursor:
		return "Cursor"
	case PlacementPosition:
		return "Position"
	}
	return "Placements(" + strconv.Itoa(int(p)) + ")"
}

// Placement specifies how a [Popup] is positioned on the screen.
// It is an immutable value compared with ==; Position is only
// meaningful for [PlacementPosition] and zero otherwise.
type Placement struct {
	Kind     Placements
	Position math32.Vector2
}

// PlacementAt returns a [Placement] at the given explicit position.
func PlacementAt(pos math32.Vector2) Placement {
	return Placement{Kind: PlacementPosition, Position: pos}
}

// Resolve returns the desired local position for a widget of the given
// actual size on the given screen, with the given cursor position.
// Before any measure pass has run, size is zero and corner placements
// degenerate accordingly; callers invalidate layout alongside every
// placement-affecting mutation so a fresh measure precedes the next
// render.
func (p Placement) Resolve(size, screen, cursor math32.Vector2) math32.Vector2 {
	switch p.Kind {
	case PlacementLeftTop:
		return math32.Vector2{}
	case PlacementRightTop:
		return math32.Vec2(screen.X-size.X, 0)
	case PlacementCenter:
		return screen.Sub(size).MulScalar(0.5)
	case PlacementLeftBottom:
		return math32.Vec2(0, screen.Y-size.Y)
	case PlacementRightBottom:
		return screen.Sub(size)
	case PlacementCursor:
		return cursor
	default:
		return p.Position
	}
}

// Popup is a transient overlay widget. It wraps its replaceable content
// in a permanent [Border] body, participates in the UI manager's
// picking restriction stack while open (unless [Popup.StaysOpen]), and
// dismisses itself on a pointer press outside its bounds. Construct it
// with [PopupBuilder]; it starts hidden and closed.
type Popup struct {
	WidgetBase

	// Placement is the current positioning strategy, applied when the
	// open transition is processed.
	Placement Placement

	// StaysOpen exempts this popup from the picking restriction stack
	// and from outside-click dismissal. It is fixed at construction.
	StaysOpen bool

	// IsOpen is the current logical state, kept 1:1 with visibility by
	// the open/close transitions. Do not set directly.
	IsOpen bool

	// Content is the caller-supplied payload node, a child of Body.
	// It may be nil and is replaced via [PopupContent] messages.
	Content pool.Handle

	// Body is the permanent [Border] wrapper created by the builder.
	// It is never nil and never reassigned.
	Body pool.Handle
}

// HandleMessage processes the popup transitions. All guards are
// idempotent no-ops, not errors.
func (p *Popup) HandleMessage(ui *Interface, msg *Message) {
	switch data := msg.Data.(type) {
	case PopupOpen:
		if p.IsOpen {
			return
		}
		p.IsOpen = true
		p.SetVisible(true)
		if !p.StaysOpen && ui.TopPickingRestriction() != p.Self {
			ui.PushPickingRestriction(p.Self)
		}
		p.Send(WidgetTopmost{})
		p.SetDesiredPosition(p.Placement.Resolve(p.ActualSize(), ui.ScreenSize(), ui.CursorPosition()))
		msg.Handled = true
	case PopupClose:
		if !p.IsOpen {
			return
		}
		p.IsOpen = false
		p.SetVisible(false)
		if !p.StaysOpen {
			ui.PopPickingRestriction()
		}
		if ui.CapturedNode() == p.Self {
			ui.ReleaseMouseCapture()
		}
		msg.Handled = true
	case PopupContent:
		if p.Content.IsSome() {
			ui.RemoveNode(p.Content)
		}
		p.Content = data.Content
		ui.LinkNodes(p.Content, p.Body)
		msg.Handled = true
	case PopupPlacement:
		p.Placement = data.Placement
		p.InvalidateLayout()
		msg.Handled = true
	default:
		p.WidgetBase.HandleMessage(ui, msg)
	}
}

// HandleOSEvent dismisses the popup on a pointer press outside its
// screen bounds, when it is open, does not stay open, and is the top
// picking restriction. It only enqueues the close; the transition
// completes at the next message flush.
func (p *Popup) HandleOSEvent(self pool.Handle, ui *Interface, e events.Event) {
	m, ok := e.(*events.Mouse)
	if !ok || m.Typ != events.MouseDown {
		return
	}
	if !p.IsOpen || p.StaysOpen || ui.TopPickingRestriction() != self {
		return
	}
	if !p.ScreenBounds().ContainsPoint(ui.CursorPosition()) {
		p.Close()
	}
}

// Resolve rewrites the popup's handle fields against the given mapping.
// Body is a required structural link and must have a mapping entry;
// Content may legitimately be absent.
func (p *Popup) Resolve(m HandleMapping) {
	p.WidgetBase.Resolve(m)
	m.Resolve(&p.Content)
	m.MustResolve(&p.Body)
}

// RawCopy returns a deep copy of this popup. The copy starts closed and
// hidden; placement, the stays-open policy, and the content and body
// handles carry over (the handles are rewritten by a later Resolve).
func (p *Popup) RawCopy() Node {
	c := &Popup{}
	nodeCopy(c, p)
	c.IsOpen = false
	c.Visible = false
	return c
}

// Open requests the open transition. It is a no-op if the popup is
// already open; otherwise it invalidates layout synchronously and
// enqueues [PopupOpen], which takes effect at the next message flush.
func (p *Popup) Open() {
	if p.IsOpen {
		return
	}
	p.InvalidateLayout()
	p.Send(PopupOpen{})
}

// Close requests the close transition. It is a no-op if the popup is
// already closed; otherwise it invalidates layout synchronously and
// enqueues [PopupClose], which takes effect at the next message flush.
//
// When multiple popups are open at once, they must close in LIFO order
// relative to their opens; the restriction stack is shared and closing
// out of order corrupts it.
func (p *Popup) Close() {
	if !p.IsOpen {
		return
	}
	p.InvalidateLayout()
	p.Send(PopupClose{})
}

// SetPlacement sets the positioning strategy. It is a no-op if the
// placement is unchanged; otherwise it invalidates layout synchronously
// and enqueues [PopupPlacement]. The new placement is applied at the
// next open transition.
func (p *Popup) SetPlacement(placement Placement) {
	if p.Placement == placement {
		return
	}
	p.Placement = placement
	p.InvalidateLayout()
	p.Send(PopupPlacement{Placement: placement})
}

// PopupBuilder builds a [Popup] with its permanent [Border] body
// wrapping the optional content node.
type PopupBuilder struct {
	// Widget is the base widget configuration.
	Widget *WidgetBuilder

	// Placement is the initial positioning strategy. Defaults to
	// [PlacementCursor].
	Placement Placement

	// StaysOpen exempts the popup from the restriction stack and
	// outside-click dismissal. Defaults to false.
	StaysOpen bool

	// Content is the optional payload node. Defaults to nil.
	Content pool.Handle
}

// NewPopupBuilder returns a new [PopupBuilder] with default settings.
func NewPopupBuilder() *PopupBuilder {
	return &PopupBuilder{
		Widget:    NewWidgetBuilder(),
		Placement: Placement{Kind: PlacementCursor},
	}
}

// SetPlacement sets the initial positioning strategy.
func (b *PopupBuilder) SetPlacement(placement Placement) *PopupBuilder {
	b.Placement = placement
	return b
}

// SetStaysOpen sets the stays-open policy.
func (b *PopupBuilder) SetStaysOpen(staysOpen bool) *PopupBuilder {
	b.StaysOpen = staysOpen
	return b
}

// SetContent sets the content node.
func (b *PopupBuilder) SetContent(content pool.Handle) *PopupBuilder {
	b.Content = content
	return b
}

// Build constructs the body wrapping the content, registers the popup
// hidden and closed with the body as its child, and flushes the message
// queue so the popup starts in a materialized rest state. It returns
// the popup's handle.
func (b *PopupBuilder) Build(ui *Interface) pool.Handle {
	body := NewBorderBuilder().SetChild(b.Content).Build(ui)

	p := &Popup{
		WidgetBase: b.Widget.AddChild(body).SetVisible(false).Base(),
		Placement:  b.Placement,
		StaysOpen:  b.StaysOpen,
		Content:    b.Content,
		Body:       body,
	}
	h := ui.AddNode(p)

	ui.FlushMessages()

	return h
}
